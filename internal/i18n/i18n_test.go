package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name  string
		prefs []string
		want  language.Tag
	}{
		{name: "no preference", prefs: nil, want: language.Italian},
		{name: "empty", prefs: []string{""}, want: language.Italian},
		{name: "posix locale", prefs: []string{"en_US.UTF-8"}, want: language.English},
		{name: "bcp47", prefs: []string{"it-IT"}, want: language.Italian},
		{name: "C locale skipped", prefs: []string{"C", "en_GB"}, want: language.English},
		{name: "unsupported", prefs: []string{"de_DE.UTF-8"}, want: language.Italian},
		{name: "first supported wins", prefs: []string{"en", "it"}, want: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.prefs...))
		})
	}
}

func TestParse(t *testing.T) {
	tag, ok := Parse("EN")
	assert.True(t, ok)
	assert.Equal(t, language.English, tag)

	tag, ok = Parse("it_CH")
	assert.True(t, ok)
	assert.Equal(t, language.Italian, tag)

	_, ok = Parse("fr")
	assert.False(t, ok)

	_, ok = Parse("")
	assert.False(t, ok)
}

func TestToggleIsAnInvolution(t *testing.T) {
	for _, tag := range Supported() {
		assert.Equal(t, tag, Toggle(Toggle(tag)))
		assert.NotEqual(t, tag, Toggle(tag))
	}
	assert.Equal(t, language.English, Toggle(language.Italian))
	assert.Equal(t, language.Italian, Toggle(language.English))
}

func TestTranslatorRendersBothLanguages(t *testing.T) {
	tr, err := NewTranslator()
	require.NoError(t, err)

	assert.Equal(t, "Apertura", tr.T(language.Italian, "section.aperture", nil))
	assert.Equal(t, "Aperture", tr.T(language.English, "section.aperture", nil))
	assert.Equal(t, "Filter: bokeh", tr.T(language.English, "filter.active", map[string]any{"Query": "bokeh"}))
}

func TestTranslatorFallsBack(t *testing.T) {
	tr, err := NewTranslator()
	require.NoError(t, err)

	assert.Equal(t, "Tempi", tr.T(language.German, "section.shutter", nil))
	assert.Equal(t, "missing.id", tr.T(language.English, "missing.id", nil))
	assert.Equal(t, "", tr.T(language.English, "", nil))
}

func TestMessageFilesDefineTheSameIDs(t *testing.T) {
	tr, err := NewTranslator()
	require.NoError(t, err)

	ids := []string{
		"app.title", "section.aperture", "section.shutter", "section.scenes",
		"card.conditions", "card.shutter", "card.aperture", "card.settings",
		"card.invalid", "card.empty", "language.name", "language.switched",
		"filter.placeholder", "filter.active", "filter.cleared", "status.ready",
		"footer.keys", "footer.status", "key.section", "key.language", "key.scroll",
		"key.filter", "key.help", "key.quit", "help.body", "status.keymap_ignored",
	}
	for _, tag := range Supported() {
		for _, id := range ids {
			got := tr.T(tag, id, nil)
			assert.NotEqual(t, id, got, "%s missing %s", tag, id)
		}
	}
}
