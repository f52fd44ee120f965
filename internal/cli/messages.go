package cli

import (
	"embed"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var messageFS embed.FS

// messages is the bundle behind tr and trn. The CLI eats its own cooking:
// its output is itself a set of localized messages, embedded as TOML and
// rendered through go-i18n.
var messages = newBundle()

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, file := range []string{"active.en.toml", "active.es.toml"} {
		if _, err := bundle.LoadMessageFileFS(messageFS, file); err != nil {
			log.Printf("cli: load %s: %v", file, err)
		}
	}
	return bundle
}

// tr renders a CLI message in the language selected with --lang, falling
// back to English and finally to the message id itself.
func tr(id string, data map[string]any) string {
	return localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
}

// trn is tr for messages with plural forms.
func trn(id string, count int, data map[string]any) string {
	if data == nil {
		data = map[string]any{}
	}
	data["Count"] = count
	return localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data, PluralCount: count})
}

func localize(cfg *i18n.LocalizeConfig) string {
	langs := make([]string, 0, 2)
	if cliLang != "" {
		langs = append(langs, cliLang)
	}
	langs = append(langs, language.English.String())

	msg, err := i18n.NewLocalizer(messages, langs...).Localize(cfg)
	if err != nil {
		return cfg.MessageID
	}
	return msg
}
