package config

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/blackwell-systems/zoteroxy/internal/tree"
)

// Config is the resolved zoteroxy configuration. It is built once at
// startup and never modified afterwards.
type Config struct {
	Zotero   ZoteroConfig
	Library  LibraryConfig
	Settings SettingsConfig
}

// ZoteroConfig holds Zotero web API credentials.
type ZoteroConfig struct {
	APIKey string
}

// LibraryType distinguishes personal and group libraries.
type LibraryType string

const (
	LibraryUser  LibraryType = "user"
	LibraryGroup LibraryType = "group"
)

// LibraryConfig identifies the proxied library.
type LibraryConfig struct {
	Type        LibraryType
	ID          string
	Name        string
	Owner       string
	Description string
}

// SettingsConfig holds proxy behaviour settings. Durations are in seconds.
type SettingsConfig struct {
	BaseURL           string
	Tags              TagSet
	CacheDuration     int
	CacheFileDuration int
	CacheDirectory    string
}

// TagSet is an unordered set of tags.
type TagSet map[string]struct{}

// NewTagSet collapses duplicates.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Contains reports whether tag is in the set.
func (s TagSet) Contains(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Sorted returns the tags in lexical order.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// defaults mirrors the document layout. Paths without an entry here have
// no default and resolve to the zero value when not required.
var defaults = tree.Of(map[string]any{
	"zotero": map[string]any{},
	"library": map[string]any{
		"type":        string(LibraryGroup),
		"owner":       "",
		"description": "",
	},
	"settings": map[string]any{
		"tags": []any{},
		"cache": map[string]any{
			"duration": 3600,
			"file": map[string]any{
				"duration":  3600,
				"directory": "cache",
			},
		},
	},
})

// required lists the paths a document must set itself.
var required = [][]string{
	{"zotero", "api_key"},
	{"library", "id"},
	{"library", "name"},
	{"settings", "base_url"},
}

// MissingConfigurationError lists every required dotted path absent from a
// configuration document.
type MissingConfigurationError struct {
	Missing []string
}

func (e *MissingConfigurationError) Error() string {
	return "missing required configuration: " + strings.Join(e.Missing, ", ")
}

// Parser resolves a parsed configuration document against the defaults.
type Parser struct {
	doc tree.Node
}

// NewParser wraps a decoded document (nested maps, lists and scalars).
func NewParser(document any) *Parser {
	return &Parser{doc: tree.Of(document)}
}

// Has reports whether the document itself sets path.
func (p *Parser) Has(path ...string) bool {
	return p.doc.Has(path...)
}

// GetOrDefault returns the document value at path, or the default leaf.
func (p *Parser) GetOrDefault(path ...string) tree.Node {
	return tree.Lookup(p.doc, defaults, path...)
}

// Validate checks all required paths and reports every missing one at once.
func (p *Parser) Validate() error {
	var missing []string
	for _, path := range required {
		if !p.Has(path...) {
			missing = append(missing, strings.Join(path, "."))
		}
	}
	if len(missing) > 0 {
		return &MissingConfigurationError{Missing: missing}
	}
	return nil
}

// Config validates the document and builds the resolved snapshot.
func (p *Parser) Config() (*Config, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Config{
		Zotero:   p.zotero(),
		Library:  p.library(),
		Settings: p.settings(),
	}, nil
}

// Resolve is NewParser(document).Config().
func Resolve(document any) (*Config, error) {
	return NewParser(document).Config()
}

func (p *Parser) str(path ...string) string {
	return p.GetOrDefault(path...).String(defaults.At(path...).String(""))
}

func (p *Parser) integer(path ...string) int {
	return int(p.GetOrDefault(path...).Int(defaults.At(path...).Int(0)))
}

func (p *Parser) zotero() ZoteroConfig {
	return ZoteroConfig{APIKey: p.str("zotero", "api_key")}
}

func (p *Parser) library() LibraryConfig {
	return LibraryConfig{
		Type:        LibraryType(p.str("library", "type")),
		ID:          p.str("library", "id"),
		Name:        p.str("library", "name"),
		Owner:       p.str("library", "owner"),
		Description: p.str("library", "description"),
	}
}

func (p *Parser) settings() SettingsConfig {
	return SettingsConfig{
		BaseURL:           strings.TrimRight(p.str("settings", "base_url"), "/"),
		Tags:              NewTagSet(p.GetOrDefault("settings", "tags").Strings()...),
		CacheDuration:     p.integer("settings", "cache", "duration"),
		CacheFileDuration: p.integer("settings", "cache", "file", "duration"),
		CacheDirectory:    filepath.Clean(ExpandHome(p.str("settings", "cache", "file", "directory"))),
	}
}
