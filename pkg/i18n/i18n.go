package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLanguage is used when the caller asks for nothing or something unknown.
var DefaultLanguage = language.MustParse("nb")

type Translator struct {
	bundle *goi18n.Bundle
}

// New loads the embedded nb and en message files.
func New() (*Translator, error) {
	bundle := goi18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, file := range []string{"locales/active.nb.json", "locales/active.en.json"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return &Translator{bundle: bundle}, nil
}

// T localizes messageID for the first matching language in langs.
// Unknown ids come back as the id itself so a missing string never breaks a mail.
func (t *Translator) T(messageID string, data map[string]any, langs ...string) string {
	loc := goi18n.NewLocalizer(t.bundle, langs...)
	msg, err := loc.Localize(&goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}
