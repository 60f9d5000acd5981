// Package i18n resolves the UI language and translates interface strings.
//
// Only Italian and English are supported. Messages live in the embedded
// active.<lang>.toml files and are rendered through go-i18n so they can
// carry template placeholders.
package i18n

import (
	"embed"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/treykane/photo-settings/internal/logging"
)

//go:embed active.*.toml
var localeFS embed.FS

var log = logging.New("i18n")

// Default is the language used when nothing else matches.
var Default = language.Italian

var supported = []language.Tag{language.Italian, language.English}

var matcher = language.NewMatcher(supported)

// Supported returns the supported languages; the first is the default.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Match picks the best supported language for the given preferences.
// Preferences may be BCP 47 tags ("en-US") or POSIX locales
// ("en_US.UTF-8"). Empty and unparseable preferences are skipped.
func Match(prefs ...string) language.Tag {
	tags := make([]language.Tag, 0, len(prefs))
	for _, pref := range prefs {
		tag, ok := parseLocale(pref)
		if ok {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return Default
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	return supported[idx]
}

// Parse resolves a single language name strictly: it must name a supported
// language.
func Parse(value string) (language.Tag, bool) {
	tag, ok := parseLocale(value)
	if !ok {
		return Default, false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence < language.High {
		return Default, false
	}
	return supported[idx], true
}

// Toggle switches between Italian and English.
func Toggle(tag language.Tag) language.Tag {
	if Code(tag) == "it" {
		return language.English
	}
	return language.Italian
}

// Code returns the two-letter base of tag.
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

func parseLocale(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	value = strings.ReplaceAll(value, "_", "-")
	if value == "" || value == "C" || value == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// Translator renders UI messages for a language.
type Translator struct {
	bundle   *i18n.Bundle
	fallback language.Tag
}

// NewTranslator loads the embedded message files.
func NewTranslator() (*Translator, error) {
	bundle := i18n.NewBundle(Default)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, tag := range supported {
		file := "active." + Code(tag) + ".toml"
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, err
		}
	}
	return &Translator{bundle: bundle, fallback: Default}, nil
}

// T renders the message id in lang. Missing messages fall back to the
// default language and then to the id itself.
func (t *Translator) T(lang language.Tag, id string, data map[string]any) string {
	if id == "" {
		return ""
	}
	localizer := i18n.NewLocalizer(t.bundle, lang.String(), t.fallback.String())
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		log.Warn("localize failed", "id", id, "lang", lang.String(), "error", err)
		return id
	}
	return msg
}
