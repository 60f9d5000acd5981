package app

import (
	"golang.org/x/text/language"

	"github.com/treykane/photo-settings/internal/catalog"
	"github.com/treykane/photo-settings/internal/i18n"
)

// AppState is what the user is looking at: the language and the section.
// It is a plain value. Every render function receives it explicitly, and
// every change produces a new value.
type AppState struct {
	Language language.Tag
	Section  catalog.Section
}

// DefaultState is Italian, aperture section.
func DefaultState() AppState {
	return AppState{Language: i18n.Default, Section: catalog.DefaultSection}
}

// ToggleLanguage switches between Italian and English, keeping the section.
func (s AppState) ToggleLanguage() AppState {
	s.Language = i18n.Toggle(s.Language)
	return s
}

// WithSection returns s showing section.
func (s AppState) WithSection(section catalog.Section) AppState {
	s.Section = section
	return s
}

// NextSection moves forward one section, wrapping.
func (s AppState) NextSection() AppState {
	return s.WithSection(s.Section.Next())
}

// PrevSection moves back one section, wrapping.
func (s AppState) PrevSection() AppState {
	return s.WithSection(s.Section.Prev())
}
