package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/photo-settings/internal/config"
)

func newTestModel(t *testing.T, cfg config.Config) *Model {
	t.Helper()
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	m, err := New(Options{Config: cfg})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}
