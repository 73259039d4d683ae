package main

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

var localeFiles = []string{
	"locales/active.en.toml",
	"locales/active.de.toml",
}

// labels looks up the demo's user-facing strings in one language.
type labels struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

func newLabels(locale string) (*labels, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, name := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(locales, name); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
	}

	tag := language.English
	if locale != "" {
		parsed, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, err)
		}
		tag = parsed
	}

	return &labels{
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		tag:       tag,
	}, nil
}

// get returns the message id, or the id itself when it cannot be localized.
func (l *labels) get(id string, data map[string]any) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}

func (l *labels) item(n int) string {
	return l.get("ItemLabel", map[string]any{"Index": n})
}

func (l *labels) title(count int) string {
	return l.localizer.MustLocalize(&i18n.LocalizeConfig{
		MessageID:    "ListTitle",
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
}
