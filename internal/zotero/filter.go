package zotero

import "strings"

// Filter selects library items. Empty fields match everything.
type Filter struct {
	Tags   []string // item must carry at least one of these
	Search string   // matches key, title, author names or any tag
}

// Apply returns the subset of items matching all non-empty filter fields.
func (f Filter) Apply(items []LibraryItem) []LibraryItem {
	out := []LibraryItem{}
	for _, it := range items {
		if len(f.Tags) > 0 && !hasAnyTag(it, f.Tags) {
			continue
		}
		if f.Search != "" && !matchesSearch(it, f.Search) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// ByKey returns the first item with the given key, or nil.
func ByKey(items []LibraryItem, key string) *LibraryItem {
	for i := range items {
		if items[i].Key == key {
			return &items[i]
		}
	}
	return nil
}

func hasAnyTag(it LibraryItem, tags []string) bool {
	for _, want := range tags {
		for _, t := range it.Tags {
			if strings.EqualFold(t, want) {
				return true
			}
		}
	}
	return false
}

func matchesSearch(it LibraryItem, q string) bool {
	q = strings.ToLower(q)
	contains := func(s string) bool { return strings.Contains(strings.ToLower(s), q) }

	if contains(it.Key) || contains(it.Title) {
		return true
	}
	for _, a := range it.Authors {
		if contains(a.FirstName) || (a.LastName != nil && contains(*a.LastName)) {
			return true
		}
	}
	for _, t := range it.Tags {
		if contains(t) {
			return true
		}
	}
	return false
}
