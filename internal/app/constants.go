package app

// Layout constants define the default dimensions and spacing for the UI
const (
	// DefaultNavWidth is the maximum width allocated to the section pane
	DefaultNavWidth = 26

	// NavWidthDivider determines the section pane width as
	// terminal_width / this value on narrow terminals
	NavWidthDivider = 4

	// DefaultCardWidth is the outer width of a card when the config leaves
	// card_width unset.
	DefaultCardWidth = 38

	// MinCardWidth is the narrowest card that still fits a labelled bar.
	MinCardWidth = 24

	// CardGap is the number of blank columns between cards in a row.
	CardGap = 1

	// FooterMinRows is the default number of rows reserved for the bottom
	// status/help area.
	FooterMinRows = 2
	// FooterMaxRows is the expanded footer height used when content does not
	// fit within FooterMinRows.
	FooterMaxRows = 3
)

// Input limits define maximum sizes for user input
const (
	// FilterCharLimit is the maximum length of the card filter query
	FilterCharLimit = 60
)

// Rendering constants
const (
	// HelpWidthBucket is the granularity for width-based help render
	// caching. Widths are rounded down to a multiple of this value.
	HelpWidthBucket = 20
)
