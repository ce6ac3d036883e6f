package tree_test

import (
	"encoding/json"
	"testing"

	"github.com/blackwell-systems/zoteroxy/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func decodeJSON(t *testing.T, s string) tree.Node {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return tree.Of(v)
}

func TestKind(t *testing.T) {
	cases := []struct {
		in   string
		want tree.Kind
	}{
		{`{}`, tree.Mapping},
		{`[]`, tree.Sequence},
		{`"x"`, tree.Scalar},
		{`1`, tree.Scalar},
		{`null`, tree.Scalar},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, decodeJSON(t, c.in).Kind(), c.in)
	}
	assert.Equal(t, tree.Absent, tree.Missing.Kind())
}

func TestAt_DescendsMappings(t *testing.T) {
	n := decodeJSON(t, `{"a":{"b":{"c":"leaf"}}}`)
	assert.Equal(t, "leaf", n.At("a", "b", "c").String(""))
	assert.True(t, n.Has("a", "b"))
	assert.False(t, n.Has("a", "x"))
}

func TestAt_StopsAtScalar(t *testing.T) {
	n := decodeJSON(t, `{"a":"scalar"}`)
	assert.False(t, n.Has("a", "b"))
	assert.Equal(t, tree.Absent, n.At("a", "b", "c").Kind())
}

func TestAt_NullIsPresent(t *testing.T) {
	n := decodeJSON(t, `{"a":null}`)
	assert.True(t, n.Has("a"))
	assert.True(t, n.At("a").IsNull())
	assert.Equal(t, "fallback", n.At("a").String("fallback"))
	assert.Nil(t, n.At("a").OptString())
}

func TestLookup_PerPathFallback(t *testing.T) {
	defaults := tree.Of(map[string]any{
		"cache": map[string]any{"duration": 3600, "file": map[string]any{"duration": 60}},
	})
	doc := decodeJSON(t, `{"cache":{"duration":10}}`)

	assert.Equal(t, int64(10), tree.Lookup(doc, defaults, "cache", "duration").Int(0))
	assert.Equal(t, int64(60), tree.Lookup(doc, defaults, "cache", "file", "duration").Int(0))
	assert.Equal(t, tree.Absent, tree.Lookup(doc, defaults, "nope").Kind())
}

func TestYAMLMappings(t *testing.T) {
	var v any
	require.NoError(t, yaml.Unmarshal([]byte("library:\n  id: 1234\n  name: N\n"), &v))
	n := tree.Of(v)
	assert.Equal(t, "1234", n.At("library", "id").String(""))
	assert.Equal(t, "N", n.At("library", "name").String(""))
}

func TestLegacyAnyKeyedMapping(t *testing.T) {
	n := tree.Of(map[any]any{"k": map[any]any{"v": "x"}})
	assert.Equal(t, "x", n.At("k", "v").String(""))
}

func TestInt(t *testing.T) {
	n := decodeJSON(t, `{"f":10,"s":"42","bad":"ten","list":[1]}`)
	assert.Equal(t, int64(10), n.Get("f").Int(0))
	assert.Equal(t, int64(42), n.Get("s").Int(0))
	assert.Equal(t, int64(7), n.Get("bad").Int(7))
	assert.Equal(t, int64(7), n.Get("list").Int(7))
	assert.Equal(t, int64(7), n.Get("missing").Int(7))
}

func TestInt_OutOfRangeFallsBack(t *testing.T) {
	n := decodeJSON(t, `{"big":1e30,"small":-1e30,"edge":9223372036854775807,"frac":2.9}`)
	assert.Equal(t, int64(7), n.Get("big").Int(7))
	assert.Equal(t, int64(7), n.Get("small").Int(7))
	// 2^63 as a float64 is already out of range.
	assert.Equal(t, int64(7), n.Get("edge").Int(7))
	assert.Equal(t, int64(2), n.Get("frac").Int(7))

	assert.Equal(t, int64(7), tree.Of(float32(1e20)).Int(7))
	assert.Equal(t, int64(7), tree.Of(uint64(1<<63)).Int(7))
	assert.Equal(t, int64(-5), tree.Of(-5).Int(7))
}

func TestInt_StringsAreDecimal(t *testing.T) {
	cases := map[string]int64{
		"010":  10,
		"08":   8,
		" 42 ": 42,
		"0x10": 7,
		"1e3":  7,
		"":     7,
	}
	for in, want := range cases {
		assert.Equal(t, want, tree.Of(in).Int(7), in)
	}
}

func TestString_RejectsContainers(t *testing.T) {
	n := decodeJSON(t, `{"m":{},"l":[]}`)
	assert.Equal(t, "d", n.Get("m").String("d"))
	assert.Equal(t, "d", n.Get("l").String("d"))
	assert.Nil(t, n.Get("m").OptString())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, decodeJSON(t, `["a",null,"b",{}]`).Strings())
	assert.Equal(t, []string{"solo"}, decodeJSON(t, `"solo"`).Strings())
	assert.Equal(t, []string{}, tree.Missing.Strings())
	assert.Equal(t, []string{"x"}, tree.Of([]string{"x"}).Strings())
}

func TestItems_NonSequence(t *testing.T) {
	assert.Nil(t, decodeJSON(t, `{}`).Items())
	assert.Len(t, decodeJSON(t, `[1,2,3]`).Items(), 3)
}
