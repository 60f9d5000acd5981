package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/photo-settings/internal/catalog"
)

// handleBrowseAction dispatches an action resolved from a key press in
// browse mode. Unknown actions are ignored.
func (m *Model) handleBrowseAction(action string) (tea.Model, tea.Cmd) {
	switch action {
	case actionQuit:
		return m, tea.Quit
	case actionHelp:
		return m.toggleHelp()
	case actionSectionNext:
		m.setState(m.state.NextSection())
	case actionSectionPrev:
		m.setState(m.state.PrevSection())
	case actionSectionAperture:
		m.setState(m.state.WithSection(catalog.SectionAperture))
	case actionSectionShutter:
		m.setState(m.state.WithSection(catalog.SectionShutter))
	case actionSectionScenes:
		m.setState(m.state.WithSection(catalog.SectionScenes))
	case actionLanguageToggle:
		return m.toggleLanguage()
	case actionScrollUp:
		m.viewport.LineUp(1)
	case actionScrollDown:
		m.viewport.LineDown(1)
	case actionPageUp:
		m.viewport.ViewUp()
	case actionPageDown:
		m.viewport.ViewDown()
	case actionJumpTop:
		m.viewport.GotoTop()
	case actionJumpBottom:
		m.viewport.GotoBottom()
	case actionFilter:
		return m, m.startFilter()
	case actionFilterClear:
		m.clearFilterOrHelp()
	}
	return m, nil
}

// toggleLanguage switches between Italian and English in place; the
// section and scroll position are kept.
func (m *Model) toggleLanguage() (tea.Model, tea.Cmd) {
	offset := m.viewport.YOffset
	m.state = m.state.ToggleLanguage()
	m.refreshContent()
	m.viewport.SetYOffset(offset)
	m.filter.Placeholder = m.t("filter.placeholder", nil)
	m.status = m.t("language.switched", map[string]any{"Name": m.t("language.name", nil)})
	return m, tea.SetWindowTitle(m.t("app.title", nil))
}

func (m *Model) toggleHelp() (tea.Model, tea.Cmd) {
	m.showHelp = !m.showHelp
	if m.showHelp {
		m.status = ""
	}
	m.applyLayout(m.calculateLayout())
	m.refreshContent()
	m.viewport.GotoTop()
	return m, nil
}

func (m *Model) clearFilterOrHelp() {
	switch {
	case m.showHelp:
		m.toggleHelp()
	case m.filterQuery() != "":
		m.filter.Reset()
		m.status = m.t("filter.cleared", nil)
		m.refreshContent()
		m.viewport.GotoTop()
	}
}

func (m *Model) startFilter() tea.Cmd {
	m.mode = modeFilter
	m.showHelp = false
	m.filter.Placeholder = m.t("filter.placeholder", nil)
	m.status = ""
	m.refreshContent()
	return m.filter.Focus()
}

// handleFilterKey edits the filter query. Enter keeps the filter, Esc
// drops it; the cards update as the query changes.
func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if shouldIgnoreInput(msg) {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.filter.Reset()
		m.filter.Blur()
		m.mode = modeBrowse
		m.status = m.t("filter.cleared", nil)
		m.refreshContent()
		m.viewport.GotoTop()
		return m, nil
	case "enter":
		m.filter.Blur()
		m.mode = modeBrowse
		if query := m.filterQuery(); query != "" {
			m.status = m.t("filter.active", map[string]any{"Query": query})
		}
		return m, nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if before != m.filter.Value() {
		m.refreshContent()
		m.viewport.GotoTop()
	}
	return m, cmd
}

func (m *Model) filterQuery() string {
	return strings.TrimSpace(m.filter.Value())
}

// shouldIgnoreInput drops rune input carrying control characters, which
// some terminals emit as stray escape responses.
func shouldIgnoreInput(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes {
		return false
	}
	for _, r := range msg.String() {
		if r < 32 || r == 127 {
			return true
		}
	}
	return false
}
