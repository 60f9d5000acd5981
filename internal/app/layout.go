// layout.go centralizes terminal layout calculations.
//
// The UI is a horizontal split: a narrow section pane on the left and the
// cards pane on the right. The footer reserves two or three rows depending
// on how much help text fits. The cards pane loses one extra row to its
// header bar.
package app

// LayoutDimensions holds all calculated layout dimensions for the UI.
type LayoutDimensions struct {
	LeftWidth      int // width of the section pane, border included
	RightWidth     int // width of the cards pane, border included
	ContentHeight  int // terminal height minus footer
	ViewportWidth  int // usable width inside the cards pane
	ViewportHeight int // usable height inside the cards pane, below the header
}

// calculateLayout computes all UI dimensions from the terminal size.
func (m *Model) calculateLayout() LayoutDimensions {
	leftWidth := min(DefaultNavWidth, m.width/NavWidthDivider)
	rightWidth := max(0, m.width-leftWidth)
	contentHeight := max(0, m.height-m.footerHeightForWidth(m.width))

	pane, _ := m.rightPaneStyles()
	return LayoutDimensions{
		LeftWidth:      leftWidth,
		RightWidth:     rightWidth,
		ContentHeight:  contentHeight,
		ViewportWidth:  max(0, rightWidth-pane.GetHorizontalFrameSize()),
		ViewportHeight: max(0, contentHeight-pane.GetVerticalFrameSize()-1),
	}
}

// footerHeightForWidth prefers FooterMinRows and expands to FooterMaxRows
// when the footer segments do not fit.
func (m *Model) footerHeightForWidth(width int) int {
	_, fit := m.buildStatusRows(width, FooterMinRows)
	if fit {
		return FooterMinRows
	}
	return FooterMaxRows
}

// applyLayout resizes the viewport to the calculated layout.
func (m *Model) applyLayout(layout LayoutDimensions) {
	m.viewport.Width = layout.ViewportWidth
	m.viewport.Height = layout.ViewportHeight
}
