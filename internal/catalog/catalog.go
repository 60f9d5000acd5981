// Package catalog holds the bilingual exposure reference tables shown on
// the setting cards.
//
// The tables are compiled into the binary from catalog.toml. Load decodes
// and validates them once; a Catalog is read-only afterwards and safe to
// share.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/treykane/photo-settings/internal/exposure"
)

//go:embed catalog.toml
var catalogTOML []byte

// Entry is one card. Fields that do not apply to the entry's section are
// empty: aperture cards carry ISO and Shutter, shutter cards carry ISO and
// Aperture, scene cards carry Settings.
type Entry struct {
	Value      string `toml:"value"`
	Conditions string `toml:"conditions"`
	ISO        string `toml:"iso"`
	Shutter    string `toml:"shutter"`
	Aperture   string `toml:"aperture"`
	Settings   string `toml:"settings"`
}

// Matches reports whether query appears in any visible field, ignoring case.
// An empty query matches everything.
func (e Entry) Matches(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range []string{e.Value, e.Conditions, e.ISO, e.Shutter, e.Aperture, e.Settings} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

type table struct {
	Aperture []Entry `toml:"aperture"`
	Shutter  []Entry `toml:"shutter"`
	Scenes   []Entry `toml:"scenes"`
}

func (t table) section(s Section) []Entry {
	switch s {
	case SectionAperture:
		return t.Aperture
	case SectionShutter:
		return t.Shutter
	case SectionScenes:
		return t.Scenes
	}
	return nil
}

// Catalog is the decoded set of tables, keyed by language.
type Catalog struct {
	tables    map[language.Tag]table
	languages []language.Tag
}

// Load decodes the embedded tables.
func Load() (*Catalog, error) {
	return parse(catalogTOML)
}

func parse(data []byte) (*Catalog, error) {
	raw := map[string]table{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	c := &Catalog{tables: make(map[language.Tag]table, len(raw))}
	for _, name := range []string{"it", "en"} {
		t, ok := raw[name]
		if !ok {
			return nil, fmt.Errorf("catalog: missing language %q", name)
		}
		tag := language.Make(name)
		c.tables[tag] = t
		c.languages = append(c.languages, tag)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate checks the tables the card renderer depends on: every section
// has entries, the numeric fields parse, and both languages agree on the
// number of cards.
func (c *Catalog) validate() error {
	reference := c.languages[0]
	for _, tag := range c.languages {
		t := c.tables[tag]
		for _, s := range sectionOrder {
			entries := t.section(s)
			if len(entries) == 0 {
				return fmt.Errorf("catalog %s: section %s has no entries", tag, s)
			}
			if want := len(c.tables[reference].section(s)); len(entries) != want {
				return fmt.Errorf("catalog %s: section %s has %d entries, %s has %d", tag, s, len(entries), reference, want)
			}
			for i, e := range entries {
				if err := validateEntry(s, e); err != nil {
					return fmt.Errorf("catalog %s: %s[%d]: %w", tag, s, i, err)
				}
			}
		}
	}
	return nil
}

func validateEntry(s Section, e Entry) error {
	if strings.TrimSpace(e.Value) == "" {
		return fmt.Errorf("value is required")
	}
	switch s {
	case SectionAperture:
		if _, err := exposure.ParseAperture(e.Value); err != nil {
			return err
		}
		if _, err := exposure.ParseISO(e.ISO); err != nil {
			return err
		}
	case SectionShutter:
		if _, err := exposure.ParseAperture(e.Aperture); err != nil {
			return err
		}
		if _, err := exposure.ParseISO(e.ISO); err != nil {
			return err
		}
	case SectionScenes:
		if strings.TrimSpace(e.Settings) == "" {
			return fmt.Errorf("settings are required")
		}
	}
	return nil
}

// Languages returns the languages present in the catalog.
func (c *Catalog) Languages() []language.Tag {
	return append([]language.Tag(nil), c.languages...)
}

// Entries returns the cards of a section in the given language. Languages
// are matched on their base, so "en-GB" reads the English table. An
// unknown language falls back to the first catalog language.
func (c *Catalog) Entries(lang language.Tag, s Section) []Entry {
	t, ok := c.tables[baseTag(lang)]
	if !ok {
		t = c.tables[c.languages[0]]
	}
	return append([]Entry(nil), t.section(s)...)
}

func baseTag(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	return language.Make(base.String())
}
