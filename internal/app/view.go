package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/photo-settings/internal/catalog"
	"github.com/treykane/photo-settings/internal/i18n"
)

// View draws the full UI (section pane + cards pane + status footer).
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	footerHeight := m.footerHeightForWidth(m.width)
	layout := m.calculateLayout()
	leftPane := m.renderNav(layout.LeftWidth, layout.ContentHeight)
	rightPane := m.renderRight(layout.RightWidth, layout.ContentHeight)
	row := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
	row = padBlock(row, m.width, layout.ContentHeight)

	view := row + "\n" + m.renderStatus(m.width, footerHeight)
	return padBlock(view, m.width, m.height)
}

// renderNav draws the left pane: title, language badge, the section list
// with the current section highlighted, and the filter input.
func (m *Model) renderNav(width, height int) string {
	innerWidth := max(0, width-paneStyle.GetHorizontalFrameSize())
	innerHeight := max(0, height-paneStyle.GetVerticalFrameSize())

	lines := []string{
		truncate(titleStyle.Render(m.t("app.title", nil)), innerWidth),
		truncate(badgeStyle.Render(strings.ToUpper(i18n.Code(m.state.Language))), innerWidth),
		"",
	}
	for i, s := range catalog.Sections() {
		line := truncate(fmt.Sprintf("%d %s", i+1, m.sectionTitle(s)), innerWidth)
		if s == m.state.Section {
			line = selectedStyle.Width(innerWidth).Render(line)
		}
		lines = append(lines, line)
	}

	if m.mode == modeFilter || m.filterQuery() != "" {
		m.filter.Width = max(0, innerWidth-lipgloss.Width(m.filter.Prompt)-1)
		lines = append(lines, "", truncate(m.filter.View(), innerWidth))
	}

	content := padBlock(strings.Join(lines, "\n"), innerWidth, innerHeight)
	return paneStyle.Width(max(0, width-paneStyle.GetHorizontalBorderSize())).Render(content)
}

// renderRight draws the cards (or help) viewport under a header bar.
func (m *Model) renderRight(width, height int) string {
	pane, header := m.rightPaneStyles()
	innerWidth := max(0, width-pane.GetHorizontalFrameSize())
	innerHeight := max(0, height-pane.GetVerticalFrameSize())
	contentHeight := max(0, innerHeight-1)

	label := m.sectionTitle(m.state.Section)
	if m.showHelp {
		label = "? " + m.t("key.help", nil)
	} else if query := m.filterQuery(); query != "" {
		label += "  " + m.t("filter.active", map[string]any{"Query": query})
	}

	bar := header.Width(innerWidth).Render(" " + truncate(label, max(0, innerWidth-1)))
	body := padBlock(m.viewport.View(), innerWidth, contentHeight)
	return pane.Width(max(0, width-pane.GetHorizontalBorderSize())).Render(bar + "\n" + body)
}

func (m *Model) rightPaneStyles() (lipgloss.Style, lipgloss.Style) {
	if m.showHelp {
		return helpPane, helpHeader
	}
	return cardsPane, cardsHeader
}

func (m *Model) sectionTitle(s catalog.Section) string {
	return m.t("section."+string(s), nil)
}
