// render.go draws the setting cards.
//
// Card rendering is a pure function of the catalog, the translator, an
// AppState and a width. The interactive model and the `table` command both
// go through RenderCards, so a card looks the same in the UI and on stdout.
//
// Numeric fields pass through the exposure package. A value it rejects
// renders as a localized "invalid value" line instead of a bar.
package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/photo-settings/internal/catalog"
	"github.com/treykane/photo-settings/internal/exposure"
	"github.com/treykane/photo-settings/internal/i18n"
)

// RenderCards renders the cards of state.Section whose fields match query,
// laid out in as many columns as width allows. cardWidth <= 0 selects
// DefaultCardWidth.
func RenderCards(cat *catalog.Catalog, tr *i18n.Translator, state AppState, width, cardWidth int, query string) string {
	var entries []catalog.Entry
	for _, e := range cat.Entries(state.Language, state.Section) {
		if e.Matches(query) {
			entries = append(entries, e)
		}
	}
	if len(entries) == 0 {
		return mutedStyle.Render(tr.T(state.Language, "card.empty", map[string]any{"Query": query}))
	}

	r := cardRenderer{tr: tr, state: state, width: effectiveCardWidth(cardWidth, width)}
	cards := make([]string, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, r.render(e))
	}
	return layoutCards(cards, width, r.width)
}

func (m *Model) renderCards(state AppState, width int) string {
	return RenderCards(m.catalog, m.tr, state, width, m.cardWidth, m.filterQuery())
}

// effectiveCardWidth fits the configured card width into the available
// width, never going below MinCardWidth unless the pane itself is smaller.
func effectiveCardWidth(configured, available int) int {
	w := configured
	if w <= 0 {
		w = DefaultCardWidth
	}
	w = max(w, MinCardWidth)
	if available > 0 {
		w = min(w, available)
	}
	return w
}

// layoutCards arranges cards left to right, wrapping to a new row when the
// next card would not fit.
func layoutCards(cards []string, width, cardWidth int) string {
	perRow := 1
	if width > 0 {
		perRow = max(1, (width+CardGap)/(cardWidth+CardGap))
	}
	gap := strings.Repeat(" ", CardGap)

	rows := make([]string, 0, (len(cards)+perRow-1)/perRow)
	for start := 0; start < len(cards); start += perRow {
		end := min(len(cards), start+perRow)
		parts := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				parts = append(parts, gap)
			}
			parts = append(parts, cards[i])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return strings.Join(rows, "\n")
}

// cardRenderer renders single cards for one state at one width.
type cardRenderer struct {
	tr    *i18n.Translator
	state AppState
	width int
}

func (r cardRenderer) t(id string, data map[string]any) string {
	return r.tr.T(r.state.Language, id, data)
}

func (r cardRenderer) innerWidth() int {
	return max(1, r.width-cardStyle.GetHorizontalFrameSize())
}

func (r cardRenderer) render(e catalog.Entry) string {
	inner := r.innerWidth()
	lines := []string{titleStyle.Render(truncate(e.Value, inner))}

	switch r.state.Section {
	case catalog.SectionAperture:
		lines = append(lines, r.field("card.conditions", e.Conditions))
		lines = append(lines, r.stopStrip(e.Value))
		lines = append(lines, r.isoScale(e.ISO))
		lines = append(lines, r.field("card.shutter", e.Shutter))
	case catalog.SectionShutter:
		lines = append(lines, r.field("card.conditions", e.Conditions))
		lines = append(lines, r.apertureScale(e.Aperture))
		lines = append(lines, r.isoScale(e.ISO))
		lines = append(lines, r.field("card.aperture", e.Aperture))
	case catalog.SectionScenes:
		lines = append(lines, r.field("card.settings", e.Settings))
	}

	lines = slices.DeleteFunc(lines, func(line string) bool { return line == "" })
	return cardStyle.Width(r.width - cardStyle.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

// field renders "Label: value", wrapping the value to the card width.
func (r cardRenderer) field(labelID, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	text := mutedStyle.Render(r.t(labelID, nil)+":") + " " + value
	return lipgloss.NewStyle().Width(r.innerWidth()).Render(text)
}

// stopStrip marks where a single aperture value sits among the canonical
// stops. Aperture cards use it; ranges go through apertureScale.
func (r cardRenderer) stopStrip(value string) string {
	segments, err := exposure.ApertureSegments(value)
	if err != nil {
		return r.invalid(value, err)
	}
	return truncate(renderStopStrip(segments), r.innerWidth())
}

// apertureScale renders the f/1.8 … f/8 bar for an aperture range.
func (r cardRenderer) apertureScale(value string) string {
	percent, err := exposure.ApertureProgress(value)
	if err != nil {
		return r.invalid(value, err)
	}
	low, high := fmt.Sprintf("f/%g", exposure.MinAperture), fmt.Sprintf("f/%g", exposure.MaxAperture)
	return renderScale(low, value, high, percent, r.innerWidth(), apertureBarColor)
}

// isoScale renders the ISO 100 … ISO 800 bar.
func (r cardRenderer) isoScale(value string) string {
	percent, err := exposure.ISOProgress(value)
	if err != nil {
		return r.invalid(value, err)
	}
	low, high := fmt.Sprintf("ISO %d", exposure.MinISO), fmt.Sprintf("ISO %d", exposure.MaxISO)
	return renderScale(low, "ISO "+value, high, percent, r.innerWidth(), isoBarColor)
}

func (r cardRenderer) invalid(value string, err error) string {
	appLog.Warn("invalid card value", "section", r.state.Section, "value", value, "error", err)
	return errorStyle.Render(truncate(r.t("card.invalid", map[string]any{"Value": value}), r.innerWidth()))
}

// renderStopStrip draws the canonical stops, styled by segment label.
func renderStopStrip(segments exposure.Segments) string {
	stops := exposure.Stops()
	var b strings.Builder
	for i, stop := range stops {
		b.WriteString(segmentStyle(segments[i]).Render(fmt.Sprintf(" %g ", stop)))
	}
	return b.String()
}

// renderScale draws a labelled bar on two lines: the scale ends with the
// value between them, then the bar and its percentage.
func renderScale(low, value, high string, percent float64, width int, color string) string {
	return spreadLabels(width, low, value, high) + "\n" + renderBar(percent, width, color)
}

// spreadLabels puts left and right at the edges of width columns with mid
// centred between them. When they do not fit only mid is kept.
func spreadLabels(width int, left, mid, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(mid) - lipgloss.Width(right)
	if gap < 2 {
		return valueLabel.Render(truncate(mid, width))
	}
	leftGap := gap / 2
	return mutedStyle.Render(left) +
		strings.Repeat(" ", leftGap) +
		valueLabel.Render(mid) +
		strings.Repeat(" ", gap-leftGap) +
		mutedStyle.Render(right)
}

// renderBar draws "[bar] NN%" in exactly width columns when width allows
// it.
func renderBar(percent float64, width int, color string) string {
	suffix := fmt.Sprintf(" %3.0f%%", percent)
	barWidth := width - lipgloss.Width(suffix)
	if barWidth < 1 {
		return truncate(strings.TrimSpace(suffix), width)
	}

	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	return bar.ViewAs(percent/100) + suffix
}
