package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable holding the config file path.
const EnvConfig = "ZOTEROXY_CONFIG"

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "zoteroxy", "config.yml")
}

// Path picks the config file: an explicit path wins, then $ZOTEROXY_CONFIG,
// then DefaultPath.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return DefaultPath()
}

// Load reads the config file at path and resolves it. Any format viper
// understands (YAML, JSON, TOML) is accepted, chosen by file extension.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Resolve(v.AllSettings())
}

// ParseYAML decodes YAML bytes and resolves them. Keys are matched
// case-insensitively, as they are by Load.
func ParseYAML(data []byte) (*Config, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	return Resolve(lowerKeys(doc))
}

// lowerKeys lowercases mapping keys at every level, the way viper does.
func lowerKeys(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	out := make(map[string]any, len(m))
	for k, val := range m {
		out[strings.ToLower(k)] = lowerKeys(val)
	}
	return out
}

// Marshal encodes a resolved config back into the document layout, so the
// output is itself a valid config file.
func Marshal(cfg *Config) ([]byte, error) {
	doc := documentYAML{
		Zotero: zoteroYAML{APIKey: cfg.Zotero.APIKey},
		Library: libraryYAML{
			Type:        string(cfg.Library.Type),
			ID:          cfg.Library.ID,
			Name:        cfg.Library.Name,
			Owner:       cfg.Library.Owner,
			Description: cfg.Library.Description,
		},
		Settings: settingsYAML{
			BaseURL: cfg.Settings.BaseURL,
			Tags:    cfg.Settings.Tags.Sorted(),
			Cache: cacheYAML{
				Duration: cfg.Settings.CacheDuration,
				File: fileCacheYAML{
					Duration:  cfg.Settings.CacheFileDuration,
					Directory: cfg.Settings.CacheDirectory,
				},
			},
		},
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

// Redacted returns a copy with the API key masked for display.
func (c Config) Redacted() Config {
	key := c.Zotero.APIKey
	switch {
	case key == "":
	case len(key) <= 4:
		c.Zotero.APIKey = strings.Repeat("*", len(key))
	default:
		c.Zotero.APIKey = strings.Repeat("*", len(key)-4) + key[len(key)-4:]
	}
	return c
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

type documentYAML struct {
	Zotero   zoteroYAML   `yaml:"zotero"`
	Library  libraryYAML  `yaml:"library"`
	Settings settingsYAML `yaml:"settings"`
}

type zoteroYAML struct {
	APIKey string `yaml:"api_key"`
}

type libraryYAML struct {
	Type        string `yaml:"type"`
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Owner       string `yaml:"owner"`
	Description string `yaml:"description"`
}

type settingsYAML struct {
	BaseURL string    `yaml:"base_url"`
	Tags    []string  `yaml:"tags"`
	Cache   cacheYAML `yaml:"cache"`
}

type cacheYAML struct {
	Duration int           `yaml:"duration"`
	File     fileCacheYAML `yaml:"file"`
}

type fileCacheYAML struct {
	Duration  int    `yaml:"duration"`
	Directory string `yaml:"directory"`
}
