package app

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/treykane/photo-settings/internal/i18n"
)

// helpCacheKey identifies one rendered help page.
type helpCacheKey struct {
	lang  string
	width int
}

// renderHelp renders the localized help markdown through Glamour. Renders
// are cached per language and width bucket; key labels come from the
// active bindings so rebinding a key updates the help text.
func (m *Model) renderHelp(state AppState, width int) string {
	bucket := helpWidthBucket(width)
	key := helpCacheKey{lang: i18n.Code(state.Language), width: bucket}
	if cached, ok := m.helpCache[key]; ok {
		return cached
	}

	source := m.tr.T(state.Language, "help.body", map[string]any{
		"Next":     m.primaryActionKey(actionSectionNext, "→"),
		"Prev":     m.primaryActionKey(actionSectionPrev, "←"),
		"Language": m.primaryActionKey(actionLanguageToggle, "T"),
		"Up":       m.primaryActionKey(actionScrollUp, "↑"),
		"Down":     m.primaryActionKey(actionScrollDown, "↓"),
		"Filter":   m.primaryActionKey(actionFilter, "/"),
		"Help":     m.primaryActionKey(actionHelp, "?"),
		"Quit":     m.primaryActionKey(actionQuit, "Q"),
	})
	out := renderMarkdown(source, bucket)
	m.helpCache[key] = out
	return out
}

// renderMarkdown renders markdown for the terminal, falling back to the
// source text if Glamour fails.
func renderMarkdown(content string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		appLog.Warn("create markdown renderer", "error", err)
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		appLog.Warn("render markdown", "error", err)
		return content
	}
	return strings.TrimRight(out, "\n")
}

// glamourStyle reads PHOTO_SETTINGS_GLAMOUR_STYLE, then GLAMOUR_STYLE,
// defaulting to "dark".
func glamourStyle() string {
	for _, key := range []string{"PHOTO_SETTINGS_GLAMOUR_STYLE", "GLAMOUR_STYLE"} {
		if style := strings.TrimSpace(os.Getenv(key)); style != "" {
			return style
		}
	}
	return "dark"
}

func helpWidthBucket(width int) int {
	if width <= 0 {
		return 80
	}
	if width < HelpWidthBucket {
		return width
	}
	return (width / HelpWidthBucket) * HelpWidthBucket
}
