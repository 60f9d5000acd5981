package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []language.Tag{language.Italian, language.English}, c.Languages())
	for _, tag := range c.Languages() {
		for _, s := range Sections() {
			assert.Len(t, c.Entries(tag, s), 4, "%s/%s", tag, s)
		}
	}
}

func TestEntriesAreTranslatedInPlace(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	it := c.Entries(language.Italian, SectionAperture)
	en := c.Entries(language.English, SectionAperture)
	require.Equal(t, len(it), len(en))
	for i := range it {
		assert.Equal(t, it[i].Value, en[i].Value)
		assert.Equal(t, it[i].ISO, en[i].ISO)
		assert.NotEqual(t, it[i].Conditions, en[i].Conditions)
	}
	assert.Equal(t, "Poca luce, effetto bokeh", it[0].Conditions)
	assert.Equal(t, "Low light, bokeh effect", en[0].Conditions)
}

func TestEntriesMatchRegionalLanguage(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	scenes := c.Entries(language.MustParse("en-GB"), SectionScenes)
	require.NotEmpty(t, scenes)
	assert.Equal(t, "Landscape", scenes[0].Value)

	fallback := c.Entries(language.German, SectionScenes)
	assert.Equal(t, "Paesaggio", fallback[0].Value)
}

func TestEntriesReturnsCopy(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	entries := c.Entries(language.English, SectionShutter)
	entries[0].Value = "changed"
	assert.Equal(t, "1/1000+", c.Entries(language.English, SectionShutter)[0].Value)
}

func TestParseRejectsBrokenTables(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "missing language",
			data: `[[it.aperture]]
value = "f/2"
iso = "100"
`,
			want: `missing language "en"`,
		},
		{
			name: "unparseable aperture",
			data: validTables("f/abc"),
			want: "invalid input format",
		},
		{
			name: "not toml",
			data: "[[it",
			want: "decode catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseRejectsMismatchedLengths(t *testing.T) {
	data := validTables("f/2") + `
[[en.scenes]]
value = "Extra"
settings = "f/4"
`
	_, err := parse([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "section scenes has 2 entries")
}

func TestEntryMatches(t *testing.T) {
	e := Entry{Value: "f/1.8", Conditions: "Low light, bokeh effect", ISO: "100-400"}

	assert.True(t, e.Matches(""))
	assert.True(t, e.Matches("BOKEH"))
	assert.True(t, e.Matches("1.8"))
	assert.False(t, e.Matches("tripod"))
}

func validTables(aperture string) string {
	var b strings.Builder
	for _, lang := range []string{"it", "en"} {
		b.WriteString("[[" + lang + ".aperture]]\nvalue = \"" + aperture + "\"\niso = \"100\"\n\n")
		b.WriteString("[[" + lang + ".shutter]]\nvalue = \"1/60\"\niso = \"100\"\naperture = \"f/4\"\n\n")
		b.WriteString("[[" + lang + ".scenes]]\nvalue = \"HDR\"\nsettings = \"f/8\"\n\n")
	}
	return b.String()
}
