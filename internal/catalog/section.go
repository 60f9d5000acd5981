package catalog

import (
	"fmt"
	"strings"
)

// Section identifies one page of cards.
type Section string

const (
	SectionAperture Section = "aperture"
	SectionShutter  Section = "shutter"
	SectionScenes   Section = "scenes"
)

// DefaultSection is shown on startup when nothing else is configured.
const DefaultSection = SectionAperture

var sectionOrder = []Section{SectionAperture, SectionShutter, SectionScenes}

// Sections returns every section in display order.
func Sections() []Section {
	return append([]Section(nil), sectionOrder...)
}

// ParseSection accepts a section name, case-insensitively.
func ParseSection(value string) (Section, error) {
	name := Section(strings.ToLower(strings.TrimSpace(value)))
	for _, s := range sectionOrder {
		if s == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown section %q (want one of aperture, shutter, scenes)", value)
}

// Index returns the display position of s, or -1 for an unknown section.
func (s Section) Index() int {
	for i, candidate := range sectionOrder {
		if candidate == s {
			return i
		}
	}
	return -1
}

// Next returns the following section, wrapping around.
func (s Section) Next() Section {
	return s.step(1)
}

// Prev returns the preceding section, wrapping around.
func (s Section) Prev() Section {
	return s.step(-1)
}

func (s Section) step(delta int) Section {
	idx := s.Index()
	if idx < 0 {
		return DefaultSection
	}
	n := len(sectionOrder)
	return sectionOrder[((idx+delta)%n+n)%n]
}
