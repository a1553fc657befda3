package internal

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle

	localeMu  sync.RWMutex
	locale    = language.English
	localizer *i18n.Localizer
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		files, err := fs.Glob(localeFS, "locales/*.toml")
		if err != nil {
			GetInternalLogger().Error("Failed to list message files", "error", err)
			return
		}
		for _, f := range files {
			if _, err := bundle.LoadMessageFileFS(localeFS, f); err != nil {
				GetInternalLogger().Error("Failed to load message file", "file", f, "error", err)
			}
		}
	})
	return bundle
}

// SetLocale selects the language used for built-in messages.
// Languages without a message file fall back to English.
func SetLocale(tag string) error {
	t, err := language.Parse(tag)
	if err != nil {
		return fmt.Errorf("parse locale %q: %w", tag, err)
	}

	localeMu.Lock()
	defer localeMu.Unlock()
	locale = t
	localizer = i18n.NewLocalizer(getBundle(), t.String())
	return nil
}

// Locale returns the current message language.
func Locale() language.Tag {
	localeMu.RLock()
	defer localeMu.RUnlock()
	return locale
}

func getLocalizer() *i18n.Localizer {
	localeMu.RLock()
	l := localizer
	localeMu.RUnlock()
	if l != nil {
		return l
	}

	localeMu.Lock()
	defer localeMu.Unlock()
	if localizer == nil {
		localizer = i18n.NewLocalizer(getBundle(), locale.String())
	}
	return localizer
}

// Localize renders message id in the current locale.
// Returns fallback when no language has the message.
func Localize(id, fallback string, data map[string]any) string {
	msg, err := getLocalizer().Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if msg != "" {
		return msg
	}
	if err != nil {
		GetInternalLogger().Warn("Missing message", "id", id, "locale", Locale().String(), "error", err)
	}
	return fallback
}
