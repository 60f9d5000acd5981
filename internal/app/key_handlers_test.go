package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/treykane/photo-settings/internal/catalog"
	"github.com/treykane/photo-settings/internal/config"
)

func TestSectionNavigationWraps(t *testing.T) {
	m := newTestModel(t, config.Config{})

	press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.State().Section; got != catalog.SectionShutter {
		t.Fatalf("expected shutter after right, got %q", got)
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.State().Section; got != catalog.SectionAperture {
		t.Fatalf("expected wrap to aperture, got %q", got)
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.State().Section; got != catalog.SectionScenes {
		t.Fatalf("expected wrap back to scenes, got %q", got)
	}
	press(t, m, runeKey("2"))
	if got := m.State().Section; got != catalog.SectionShutter {
		t.Fatalf("expected jump to shutter, got %q", got)
	}
}

func TestToggleLanguageKeepsSection(t *testing.T) {
	m := newTestModel(t, config.Config{Section: "scenes"})

	press(t, m, runeKey("t"))
	if got := m.State().Language; got != language.Italian {
		t.Fatalf("expected italian after toggle, got %v", got)
	}
	if got := m.State().Section; got != catalog.SectionScenes {
		t.Fatalf("expected section to stay scenes, got %q", got)
	}
	if m.status != "Lingua: Italiano" {
		t.Fatalf("unexpected status %q", m.status)
	}

	press(t, m, runeKey("t"))
	if got := m.State().Language; got != language.English {
		t.Fatalf("expected english after second toggle, got %v", got)
	}
}

func TestQuitReturnsQuitCommand(t *testing.T) {
	m := newTestModel(t, config.Config{})

	cmd := press(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestFilterNarrowsCards(t *testing.T) {
	m := newTestModel(t, config.Config{})

	press(t, m, runeKey("/"))
	if m.mode != modeFilter {
		t.Fatal("expected filter mode")
	}
	press(t, m, runeKey("b"), runeKey("o"), runeKey("k"))
	if got := m.filterQuery(); got != "bok" {
		t.Fatalf("expected query %q, got %q", "bok", got)
	}

	out := m.renderCards(m.State(), 100)
	if !containsPlain(out, "f/1.8") {
		t.Fatalf("expected f/1.8 card, got:\n%s", out)
	}
	if containsPlain(out, "f/5.6") {
		t.Fatalf("expected f/5.6 card to be filtered out, got:\n%s", out)
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeBrowse {
		t.Fatal("expected browse mode after enter")
	}
	if m.status != "Filter: bok" {
		t.Fatalf("unexpected status %q", m.status)
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.filterQuery(); got != "" {
		t.Fatalf("expected esc to clear filter, got %q", got)
	}
	if m.status != "Filter cleared" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestFilterEscCancels(t *testing.T) {
	m := newTestModel(t, config.Config{})

	press(t, m, runeKey("/"), runeKey("x"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeBrowse {
		t.Fatal("expected browse mode after esc")
	}
	if got := m.filterQuery(); got != "" {
		t.Fatalf("expected empty filter, got %q", got)
	}
}

func TestFilterIgnoresControlRunes(t *testing.T) {
	m := newTestModel(t, config.Config{})

	press(t, m, runeKey("/"), runeKey("\x1b]11;rgb:0000/0000/0000"))
	if got := m.filter.Value(); got != "" {
		t.Fatalf("expected control sequence to be ignored, got %q", got)
	}
}

func TestHelpToggleAndSectionChangeClosesHelp(t *testing.T) {
	m := newTestModel(t, config.Config{})

	press(t, m, runeKey("?"))
	if !m.showHelp {
		t.Fatal("expected help to be shown")
	}
	if len(m.helpCache) != 1 {
		t.Fatalf("expected one cached help render, got %d", len(m.helpCache))
	}

	press(t, m, runeKey("3"))
	if m.showHelp {
		t.Fatal("expected section change to close help")
	}
	if got := m.State().Section; got != catalog.SectionScenes {
		t.Fatalf("expected scenes, got %q", got)
	}

	press(t, m, runeKey("?"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHelp {
		t.Fatal("expected esc to close help")
	}
}

func TestUnboundKeyIsIgnored(t *testing.T) {
	m := newTestModel(t, config.Config{})
	before := m.State()

	if cmd := press(t, m, runeKey("z")); cmd != nil {
		t.Fatal("expected no command for unbound key")
	}
	if m.State() != before {
		t.Fatal("expected state to be unchanged")
	}
}
