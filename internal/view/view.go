// Package view builds the aggregate JSON documents served alongside the
// per-item serializations: library key info and the public settings.
package view

import (
	"sort"

	"github.com/blackwell-systems/zoteroxy/internal/config"
	"github.com/blackwell-systems/zoteroxy/internal/zotero"
)

// KeyInfo summarises the proxied library.
type KeyInfo struct {
	Type        string   `json:"type"`
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Owner       string   `json:"owner"`
	Description string   `json:"description"`
	Items       int      `json:"items"`
	Tags        []string `json:"tags"`
}

// Library is the configured library together with its fetched items.
type Library struct {
	Config config.LibraryConfig
	Items  []zotero.LibraryItem
}

// KeyInfo folds the serialized items into a summary: their count and the
// sorted set of tags they carry.
func (l Library) KeyInfo() KeyInfo {
	seen := map[string]struct{}{}
	tags := []string{}
	for _, it := range l.Items {
		for _, t := range it.Serialize().Tags {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)

	return KeyInfo{
		Type:        string(l.Config.Type),
		ID:          l.Config.ID,
		Name:        l.Config.Name,
		Owner:       l.Config.Owner,
		Description: l.Config.Description,
		Items:       len(l.Items),
		Tags:        tags,
	}
}

// Settings is the public part of the settings. The API key and cache
// directory are never exposed.
type Settings struct {
	Tags  []string      `json:"tags"`
	Cache CacheSettings `json:"cache"`
}

// CacheSettings holds the cache duration in seconds.
type CacheSettings struct {
	Duration int `json:"duration"`
}

// NewSettings builds the settings view.
func NewSettings(s config.SettingsConfig) Settings {
	return Settings{
		Tags:  s.Tags.Sorted(),
		Cache: CacheSettings{Duration: s.CacheDuration},
	}
}
