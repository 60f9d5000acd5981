package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/language"

	"github.com/treykane/photo-settings/internal/catalog"
	"github.com/treykane/photo-settings/internal/exposure"
	"github.com/treykane/photo-settings/internal/i18n"
)

func containsPlain(rendered, want string) bool {
	return strings.Contains(ansi.Strip(rendered), want)
}

func loadFixtures(t *testing.T) (*catalog.Catalog, *i18n.Translator) {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	tr, err := i18n.NewTranslator()
	if err != nil {
		t.Fatalf("load translator: %v", err)
	}
	return cat, tr
}

func TestRenderCardsShowsEverySection(t *testing.T) {
	cat, tr := loadFixtures(t)

	cases := []struct {
		state AppState
		want  []string
	}{
		{
			state: AppState{Language: language.English, Section: catalog.SectionAperture},
			want:  []string{"f/1.8", "Low light, bokeh effect", "1/60-1/250", " 1.8  2.8 ", "ISO 100", "ISO 800"},
		},
		{
			state: AppState{Language: language.Italian, Section: catalog.SectionShutter},
			want:  []string{"1/1000+", "Azione veloce, sport", "f/1.8-4", "f/8", "Diaframma", "ISO 400-800"},
		},
		{
			state: AppState{Language: language.Italian, Section: catalog.SectionScenes},
			want:  []string{"Paesaggio", "Impostazioni", "f/8, ISO 100"},
		},
	}

	for _, tc := range cases {
		out := RenderCards(cat, tr, tc.state, 70, 70, "")
		for _, want := range tc.want {
			if !containsPlain(out, want) {
				t.Fatalf("%s/%s: expected %q in:\n%s", tc.state.Language, tc.state.Section, want, out)
			}
		}
	}
}

func TestRenderCardsEmptyFilter(t *testing.T) {
	cat, tr := loadFixtures(t)
	state := AppState{Language: language.English, Section: catalog.SectionScenes}

	out := RenderCards(cat, tr, state, 80, 0, "nothing-matches")
	if !containsPlain(out, `No cards match "nothing-matches"`) {
		t.Fatalf("expected empty message, got %q", out)
	}
}

func TestCardShowsInvalidValueInsteadOfBar(t *testing.T) {
	_, tr := loadFixtures(t)
	r := cardRenderer{
		tr:    tr,
		state: AppState{Language: language.English, Section: catalog.SectionAperture},
		width: 60,
	}

	out := r.render(catalog.Entry{Value: "f/wide", ISO: "lots"})
	if !containsPlain(out, "Invalid value: f/wide") {
		t.Fatalf("expected invalid aperture line, got:\n%s", out)
	}
	if !containsPlain(out, "Invalid value: lots") {
		t.Fatalf("expected invalid iso line, got:\n%s", out)
	}
	if containsPlain(out, "%") {
		t.Fatalf("expected no progress bar, got:\n%s", out)
	}
}

func TestApertureCardShowsStripAndISOBar(t *testing.T) {
	_, tr := loadFixtures(t)
	r := cardRenderer{
		tr:    tr,
		state: AppState{Language: language.English, Section: catalog.SectionAperture},
		width: 60,
	}

	out := ansi.Strip(r.render(catalog.Entry{Value: "f/5.6", Conditions: "Landscapes", ISO: "100", Shutter: "1/125"}))
	if !strings.Contains(out, " 1.8  2.8  4  5.6  8 ") {
		t.Fatalf("expected stop strip, got:\n%s", out)
	}
	if got := strings.Count(out, "%"); got != 1 {
		t.Fatalf("expected only the ISO bar, got %d bars:\n%s", got, out)
	}
	if !strings.Contains(out, "ISO 100") || !strings.Contains(out, "ISO 800") {
		t.Fatalf("expected ISO scale ends, got:\n%s", out)
	}
	if strings.Contains(out, "f/8") {
		t.Fatalf("expected no aperture scale on aperture card, got:\n%s", out)
	}
}

func TestShutterCardShowsApertureBarWithoutStrip(t *testing.T) {
	_, tr := loadFixtures(t)
	r := cardRenderer{
		tr:    tr,
		state: AppState{Language: language.English, Section: catalog.SectionShutter},
		width: 60,
	}

	out := ansi.Strip(r.render(catalog.Entry{Value: "1/1000+", Conditions: "Sports", ISO: "400-800", Aperture: "f/1.8-4"}))
	if strings.Contains(out, " 1.8  2.8 ") {
		t.Fatalf("expected no stop strip for an aperture range, got:\n%s", out)
	}
	if got := strings.Count(out, "%"); got != 2 {
		t.Fatalf("expected aperture and ISO bars, got %d:\n%s", got, out)
	}
	for _, want := range []string{"f/1.8", "f/1.8-4", "f/8", "ISO 100", "ISO 400-800", "ISO 800", "Aperture: f/1.8-4"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestSpreadLabels(t *testing.T) {
	out := ansi.Strip(spreadLabels(30, "ISO 100", "ISO 400", "ISO 800"))
	if lipgloss.Width(out) != 30 {
		t.Fatalf("expected 30 columns, got %d: %q", lipgloss.Width(out), out)
	}
	if !strings.HasPrefix(out, "ISO 100") || !strings.HasSuffix(out, "ISO 800") || !strings.Contains(out, "ISO 400") {
		t.Fatalf("unexpected label row %q", out)
	}

	narrow := ansi.Strip(spreadLabels(10, "ISO 100", "ISO 400", "ISO 800"))
	if narrow != "ISO 400" {
		t.Fatalf("expected only the value when narrow, got %q", narrow)
	}
}

func TestRenderBarFillsWidth(t *testing.T) {
	for _, width := range []int{10, 30, 44} {
		out := renderBar(42.857, width, isoBarColor)
		if got := lipgloss.Width(out); got != width {
			t.Fatalf("width %d: rendered %d columns: %q", width, got, out)
		}
		if !containsPlain(out, " 43%") {
			t.Fatalf("expected rounded percentage, got %q", out)
		}
	}
}

func TestRenderBarTooNarrowFallsBackToText(t *testing.T) {
	out := renderBar(100, 3, isoBarColor)
	if got := lipgloss.Width(out); got > 3 {
		t.Fatalf("expected at most 3 columns, got %d", got)
	}
}

func TestRenderStopStrip(t *testing.T) {
	segments, err := exposure.ApertureSegments("f/4")
	if err != nil {
		t.Fatalf("segments: %v", err)
	}
	out := ansi.Strip(renderStopStrip(segments))
	if out != " 1.8  2.8  4  5.6  8 " {
		t.Fatalf("unexpected strip %q", out)
	}
}

func TestEffectiveCardWidth(t *testing.T) {
	cases := []struct {
		configured, available, want int
	}{
		{configured: 0, available: 200, want: DefaultCardWidth},
		{configured: 10, available: 200, want: MinCardWidth},
		{configured: 50, available: 40, want: 40},
		{configured: 50, available: 0, want: 50},
	}
	for _, tc := range cases {
		if got := effectiveCardWidth(tc.configured, tc.available); got != tc.want {
			t.Fatalf("effectiveCardWidth(%d, %d) = %d, want %d", tc.configured, tc.available, got, tc.want)
		}
	}
}

func TestLayoutCardsWrapsRows(t *testing.T) {
	card := lipgloss.NewStyle().Width(10).Render("x")
	cards := []string{card, card, card}

	out := layoutCards(cards, 21, 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two rows, got %d: %q", len(lines), out)
	}
	if got := lipgloss.Width(lines[0]); got != 21 {
		t.Fatalf("expected first row to hold two cards, got width %d", got)
	}
}
