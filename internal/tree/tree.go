// Package tree wraps decoded YAML/JSON documents in a total accessor.
//
// A Node is one of four kinds: a mapping, a sequence, a scalar, or absent.
// Every lookup on a Node returns another Node, so walking a path through a
// malformed or partial document never panics; the typed accessors take the
// fallback value to use when the node is absent, null, or of the wrong shape.
package tree

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Kind classifies a Node.
type Kind int

const (
	Absent Kind = iota
	Mapping
	Sequence
	Scalar
)

func (k Kind) String() string {
	switch k {
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	case Scalar:
		return "scalar"
	default:
		return "absent"
	}
}

// Node is an immutable view of a decoded value.
type Node struct {
	value   any
	present bool
}

// Missing is the absent node.
var Missing = Node{}

// Of wraps a decoded value. A nil value is present but null.
func Of(v any) Node {
	return Node{value: v, present: true}
}

// Kind reports the node's shape.
func (n Node) Kind() Kind {
	if !n.present {
		return Absent
	}
	switch n.value.(type) {
	case map[string]any, map[any]any:
		return Mapping
	case []any, []string:
		return Sequence
	default:
		return Scalar
	}
}

// Present reports whether the node exists, null included.
func (n Node) Present() bool { return n.present }

// IsNull reports whether the node exists and holds null.
func (n Node) IsNull() bool { return n.present && n.value == nil }

// Value returns the wrapped value, or nil when absent.
func (n Node) Value() any { return n.value }

// Get returns the child under key. It is absent when n is not a mapping or
// has no such key.
func (n Node) Get(key string) Node {
	switch m := n.value.(type) {
	case map[string]any:
		if v, ok := m[key]; ok {
			return Of(v)
		}
	case map[any]any:
		if v, ok := m[key]; ok {
			return Of(v)
		}
	}
	return Missing
}

// At descends one key at a time and stops at the first missing step.
func (n Node) At(path ...string) Node {
	cur := n
	for _, key := range path {
		cur = cur.Get(key)
		if !cur.present {
			return Missing
		}
	}
	return cur
}

// Has reports whether every key of path exists.
func (n Node) Has(path ...string) bool {
	return n.At(path...).present
}

// Or returns n when it is present, otherwise fallback.
func (n Node) Or(fallback Node) Node {
	if n.present {
		return n
	}
	return fallback
}

// Lookup resolves path in doc and falls back to the same path in defaults.
// The fallback is per path: a partially specified subtree in doc only
// inherits the leaves it does not set.
func Lookup(doc, defaults Node, path ...string) Node {
	return doc.At(path...).Or(defaults.At(path...))
}

// Items returns the elements of a sequence, or nil for any other kind.
func (n Node) Items() []Node {
	switch s := n.value.(type) {
	case []any:
		out := make([]Node, len(s))
		for i, v := range s {
			out[i] = Of(v)
		}
		return out
	case []string:
		out := make([]Node, len(s))
		for i, v := range s {
			out[i] = Of(v)
		}
		return out
	}
	return nil
}

// String coerces a scalar to a string. Absent, null, non-scalar and
// uncoercible nodes yield def.
func (n Node) String(def string) string {
	if s, ok := n.scalarString(); ok {
		return s
	}
	return def
}

// OptString is String without a default: nil stands for "absent".
func (n Node) OptString() *string {
	if s, ok := n.scalarString(); ok {
		return &s
	}
	return nil
}

func (n Node) scalarString() (string, bool) {
	if n.Kind() != Scalar || n.value == nil {
		return "", false
	}
	s, err := cast.ToStringE(n.value)
	if err != nil {
		return "", false
	}
	return s, true
}

// Int coerces a scalar to an integer, falling back to def. Strings are
// read as base 10 and numbers outside the int64 range yield def.
func (n Node) Int(def int64) int64 {
	if n.Kind() != Scalar || n.value == nil {
		return def
	}
	switch v := n.value.(type) {
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return def
		}
		return i
	case float64:
		if !fitsInt64(v) {
			return def
		}
	case float32:
		if !fitsInt64(float64(v)) {
			return def
		}
	case uint64:
		if v > math.MaxInt64 {
			return def
		}
	case uint:
		if uint64(v) > math.MaxInt64 {
			return def
		}
	}
	v, err := cast.ToInt64E(n.value)
	if err != nil {
		return def
	}
	return v
}

func fitsInt64(f float64) bool {
	return !math.IsNaN(f) && f >= math.MinInt64 && f < math.MaxInt64
}

// Strings coerces a sequence of scalars to strings. A single scalar is a
// one-element list. Null elements and nested containers are skipped.
func (n Node) Strings() []string {
	switch n.Kind() {
	case Sequence:
		items := n.Items()
		out := make([]string, 0, len(items))
		for _, it := range items {
			if s, ok := it.scalarString(); ok {
				out = append(out, s)
			}
		}
		return out
	case Scalar:
		if s, ok := n.scalarString(); ok {
			return []string{s}
		}
	}
	return []string{}
}

// GoString renders the node for test failure messages.
func (n Node) GoString() string {
	if !n.present {
		return "tree.Missing"
	}
	return fmt.Sprintf("tree.Of(%#v)", n.value)
}
