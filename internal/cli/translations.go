package cli

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed translations/*.json
var translationFiles embed.FS

// Translation holds translations for a specific language
type Translation map[string]string

// Translations holds all loaded translations
type Translations map[string]Translation

var (
	translations     Translations
	translationsOnce sync.Once
	translationsErr  error
)

var supportedLanguages = []string{"en", "ru"}

// LoadTranslations loads all translation files once
func LoadTranslations() error {
	translationsOnce.Do(func() {
		loaded := make(Translations, len(supportedLanguages))

		for _, lang := range supportedLanguages {
			data, err := translationFiles.ReadFile("translations/" + lang + ".json")
			if err != nil {
				translationsErr = err
				return
			}

			var trans Translation

			err = json.Unmarshal(data, &trans)
			if err != nil {
				translationsErr = fmt.Errorf("failed to parse %s translations: %w", lang, err)
				return
			}

			loaded[lang] = trans
		}

		translations = loaded
	})

	return translationsErr
}

// ResolveLanguage picks the flag value when supported, otherwise the locale from the environment
func ResolveLanguage(flag string, getenv func(string) string) string {
	if lang := normalizeLanguage(flag); lang != "" {
		return lang
	}

	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if lang := normalizeLanguage(getenv(key)); lang != "" {
			return lang
		}
	}

	return "en"
}

// normalizeLanguage reduces a locale such as "ru_RU.UTF-8" to a supported code
func normalizeLanguage(locale string) string {
	lang := strings.ToLower(strings.TrimSpace(locale))
	lang, _, _ = strings.Cut(lang, ".")
	lang, _, _ = strings.Cut(lang, "_")
	lang, _, _ = strings.Cut(lang, "-")

	for _, supported := range supportedLanguages {
		if lang == supported {
			return lang
		}
	}

	return ""
}

// GetTranslation returns the translation for a given key and language
func GetTranslation(lang, key string) string {
	_ = LoadTranslations()

	if trans, exists := translations[lang]; exists {
		if text, exists := trans[key]; exists {
			return text
		}
	}

	// Fallback to English
	if trans, exists := translations["en"]; exists {
		if text, exists := trans[key]; exists {
			return text
		}
	}

	return key
}
