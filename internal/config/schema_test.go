package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/blackwell-systems/zoteroxy/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalDoc() map[string]any {
	return map[string]any{
		"zotero":   map[string]any{"api_key": "K"},
		"library":  map[string]any{"id": "1", "name": "N"},
		"settings": map[string]any{"base_url": "http://h/"},
	}
}

func TestResolve_MinimalDocumentUsesDefaults(t *testing.T) {
	cfg, err := config.Resolve(minimalDoc())
	require.NoError(t, err)

	assert.Equal(t, "K", cfg.Zotero.APIKey)
	assert.Equal(t, config.LibraryGroup, cfg.Library.Type)
	assert.Equal(t, "1", cfg.Library.ID)
	assert.Equal(t, "N", cfg.Library.Name)
	assert.Equal(t, "", cfg.Library.Owner)
	assert.Equal(t, "", cfg.Library.Description)
	assert.Equal(t, "http://h", cfg.Settings.BaseURL)
	assert.Empty(t, cfg.Settings.Tags)
	assert.Equal(t, 3600, cfg.Settings.CacheDuration)
	assert.Equal(t, 3600, cfg.Settings.CacheFileDuration)
	assert.Equal(t, "cache", cfg.Settings.CacheDirectory)
}

func TestResolve_ReportsAllMissingPaths(t *testing.T) {
	_, err := config.Resolve(map[string]any{
		"library": map[string]any{"id": "1", "name": "N"},
	})
	var missing *config.MissingConfigurationError
	require.True(t, errors.As(err, &missing), "got %v", err)
	assert.Equal(t, []string{"zotero.api_key", "settings.base_url"}, missing.Missing)
	assert.Contains(t, err.Error(), "zotero.api_key")
	assert.Contains(t, err.Error(), "settings.base_url")
}

func TestResolve_MissingSetEqualsAbsentRequired(t *testing.T) {
	cases := []struct {
		name string
		doc  any
		want []string
	}{
		{"nil document", nil, []string{"zotero.api_key", "library.id", "library.name", "settings.base_url"}},
		{"not a mapping", []any{"x"}, []string{"zotero.api_key", "library.id", "library.name", "settings.base_url"}},
		{"section is scalar", map[string]any{
			"zotero":   "oops",
			"library":  map[string]any{"id": "1", "name": "N"},
			"settings": map[string]any{"base_url": "u"},
		}, []string{"zotero.api_key"}},
		{"only library name missing", map[string]any{
			"zotero":   map[string]any{"api_key": "K"},
			"library":  map[string]any{"id": "1"},
			"settings": map[string]any{"base_url": "u"},
		}, []string{"library.name"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := config.Resolve(c.doc)
			var missing *config.MissingConfigurationError
			require.True(t, errors.As(err, &missing))
			assert.ElementsMatch(t, c.want, missing.Missing)
		})
	}
}

func TestResolve_DefaultedPathsAreNeverRequired(t *testing.T) {
	p := config.NewParser(minimalDoc())
	require.NoError(t, p.Validate())
	assert.False(t, p.Has("library", "type"))
	assert.Equal(t, "group", p.GetOrDefault("library", "type").String(""))
}

func TestResolve_PartialSubtreeInheritsMissingLeaves(t *testing.T) {
	doc := minimalDoc()
	doc["settings"] = map[string]any{
		"base_url": "http://h",
		"cache": map[string]any{
			"file": map[string]any{"directory": "/var/cache/zoteroxy/"},
		},
	}
	cfg, err := config.Resolve(doc)
	require.NoError(t, err)
	assert.Equal(t, 3600, cfg.Settings.CacheDuration)
	assert.Equal(t, 3600, cfg.Settings.CacheFileDuration)
	assert.Equal(t, "/var/cache/zoteroxy", cfg.Settings.CacheDirectory)
}

func TestResolve_DocumentValuesOverrideDefaults(t *testing.T) {
	doc := minimalDoc()
	doc["library"] = map[string]any{
		"type": "user", "id": 42, "name": "N", "owner": "o", "description": "d",
	}
	doc["settings"] = map[string]any{
		"base_url": "http://h",
		"tags":     []any{"a", "a", "b"},
		"cache": map[string]any{
			"duration": 60,
			"file":     map[string]any{"duration": 120},
		},
	}
	cfg, err := config.Resolve(doc)
	require.NoError(t, err)

	assert.Equal(t, config.LibraryUser, cfg.Library.Type)
	assert.Equal(t, "42", cfg.Library.ID)
	assert.Equal(t, "o", cfg.Library.Owner)
	assert.Equal(t, "d", cfg.Library.Description)
	assert.Equal(t, config.NewTagSet("a", "b"), cfg.Settings.Tags)
	assert.Len(t, cfg.Settings.Tags, 2)
	assert.Equal(t, 60, cfg.Settings.CacheDuration)
	assert.Equal(t, 120, cfg.Settings.CacheFileDuration)
}

func TestResolve_BaseURLNormalizationIsIdempotent(t *testing.T) {
	for _, in := range []string{"http://x", "http://x/", "http://x///"} {
		doc := minimalDoc()
		doc["settings"] = map[string]any{"base_url": in}
		cfg, err := config.Resolve(doc)
		require.NoError(t, err)
		assert.Equal(t, "http://x", cfg.Settings.BaseURL, in)
	}
}

func TestResolve_UncoercibleValueFallsBackToDefault(t *testing.T) {
	doc := minimalDoc()
	doc["settings"] = map[string]any{
		"base_url": "http://h",
		"cache":    map[string]any{"duration": "an hour"},
	}
	cfg, err := config.Resolve(doc)
	require.NoError(t, err)
	assert.Equal(t, 3600, cfg.Settings.CacheDuration)
}

func TestResolve_OutOfRangeDurationFallsBackToDefault(t *testing.T) {
	doc := minimalDoc()
	doc["settings"] = map[string]any{
		"base_url": "http://h",
		"cache": map[string]any{
			"duration": 1e30,
			"file":     map[string]any{"duration": "010"},
		},
	}
	cfg, err := config.Resolve(doc)
	require.NoError(t, err)
	assert.Equal(t, 3600, cfg.Settings.CacheDuration)
	assert.Equal(t, 10, cfg.Settings.CacheFileDuration)
}

func TestResolve_CacheDirectoryExpandsHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	doc := minimalDoc()
	doc["settings"] = map[string]any{
		"base_url": "http://h",
		"cache":    map[string]any{"file": map[string]any{"directory": "~/zcache/"}},
	}
	cfg, err := config.Resolve(doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "zcache"), cfg.Settings.CacheDirectory)
}

func TestTagSet(t *testing.T) {
	s := config.NewTagSet("b", "a", "b")
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("c"))
	assert.Equal(t, []string{"a", "b"}, s.Sorted())
	assert.Equal(t, []string{}, config.NewTagSet().Sorted())
}

func TestRedacted(t *testing.T) {
	cfg := config.Config{Zotero: config.ZoteroConfig{APIKey: "abcdefgh"}}
	assert.Equal(t, "****efgh", cfg.Redacted().Zotero.APIKey)
	assert.Equal(t, "abcdefgh", cfg.Zotero.APIKey)

	short := config.Config{Zotero: config.ZoteroConfig{APIKey: "abc"}}
	assert.Equal(t, "***", short.Redacted().Zotero.APIKey)
}
