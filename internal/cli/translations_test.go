package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTranslations(t *testing.T) {
	require.NoError(t, LoadTranslations())

	// Every English key must exist in every other language
	for _, lang := range supportedLanguages {
		for key := range translations["en"] {
			_, ok := translations[lang][key]
			assert.True(t, ok, "language %s is missing key %s", lang, key)
		}
	}
}

func TestGetTranslation(t *testing.T) {
	assert.Equal(t, "Invalid file paths", GetTranslation("en", "error_paths_title"))
	assert.Equal(t, "Неверные пути к файлам", GetTranslation("ru", "error_paths_title"))
	assert.Equal(t, "Invalid file paths", GetTranslation("de", "error_paths_title"))
	assert.Equal(t, "no_such_key", GetTranslation("en", "no_such_key"))
}

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		env      map[string]string
		expected string
	}{
		{name: "default", expected: "en"},
		{name: "flag", flag: "ru", expected: "ru"},
		{name: "flag upper case", flag: "RU", expected: "ru"},
		{name: "unsupported flag falls back to env", flag: "de", env: map[string]string{"LANG": "ru_RU.UTF-8"}, expected: "ru"},
		{name: "lc_all wins over lang", env: map[string]string{"LC_ALL": "en_US.UTF-8", "LANG": "ru_RU.UTF-8"}, expected: "en"},
		{name: "posix locale", env: map[string]string{"LANG": "C"}, expected: "en"},
		{name: "dash separated", env: map[string]string{"LANG": "ru-RU"}, expected: "ru"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveLanguage(tt.flag, env(tt.env)))
		})
	}
}
