package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/photo-settings/internal/catalog"
	"github.com/treykane/photo-settings/internal/config"
	"github.com/treykane/photo-settings/internal/i18n"
)

// mode controls which input widget receives key presses.
type mode int

const (
	modeBrowse mode = iota
	modeFilter
)

// Options configures New. Nil Catalog and Translator are loaded from the
// embedded data.
type Options struct {
	Config     config.Config
	Catalog    *catalog.Catalog
	Translator *i18n.Translator
}

// Model holds the Bubble Tea state for the entire UI.
type Model struct {
	state     AppState
	catalog   *catalog.Catalog
	tr        *i18n.Translator
	cardWidth int

	// UI widgets
	viewport viewport.Model
	filter   textinput.Model
	mode     mode
	status   string
	showHelp bool

	helpCache map[helpCacheKey]string

	// Layout sizing
	width  int
	height int

	keyForAction map[string][]string
	keyToAction  map[string]string
}

// New prepares the initial UI model from the resolved configuration.
func New(opts Options) (*Model, error) {
	cat := opts.Catalog
	if cat == nil {
		loaded, err := catalog.Load()
		if err != nil {
			return nil, err
		}
		cat = loaded
	}
	tr := opts.Translator
	if tr == nil {
		loaded, err := i18n.NewTranslator()
		if err != nil {
			return nil, err
		}
		tr = loaded
	}

	state := AppState{
		Language: opts.Config.LanguageTag(),
		Section:  opts.Config.StartSection(),
	}

	filter := textinput.New()
	filter.CharLimit = FilterCharLimit
	applyFilterTheme(&filter)

	m := &Model{
		state:     state,
		catalog:   cat,
		tr:        tr,
		cardWidth: opts.Config.CardWidth,
		viewport:  viewport.New(0, 0),
		filter:    filter,
		mode:      modeBrowse,
		helpCache: map[helpCacheKey]string{},
	}
	m.status = m.t("status.ready", nil)
	if err := m.loadKeybindings(opts.Config); err != nil {
		m.setStatusError(m.t("status.keymap_ignored", nil), err, "path", opts.Config.KeymapFile)
	}
	return m, nil
}

// State returns the language and section currently displayed.
func (m *Model) State() AppState {
	return m.state
}

// Init sets the terminal title.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.t("app.title", nil))
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout(m.calculateLayout())
		m.refreshContent()
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeFilter {
			return m.handleFilterKey(msg)
		}
		return m.handleBrowseAction(m.actionForKey(msg.String()))
	}
	return m, nil
}

// setState switches to s, closing the help panel and scrolling to the top
// when anything changed.
func (m *Model) setState(s AppState) {
	if s == m.state && !m.showHelp {
		return
	}
	m.state = s
	m.showHelp = false
	m.refreshContent()
	m.viewport.GotoTop()
}

// refreshContent re-renders the right pane for the current state and size.
func (m *Model) refreshContent() {
	if m.viewport.Width <= 0 {
		return
	}
	if m.showHelp {
		m.viewport.SetContent(m.renderHelp(m.state, m.viewport.Width))
		return
	}
	m.viewport.SetContent(m.renderCards(m.state, m.viewport.Width))
}

func (m *Model) t(id string, data map[string]any) string {
	return m.tr.T(m.state.Language, id, data)
}
