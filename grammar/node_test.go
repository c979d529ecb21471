package grammar

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func widgetSchema() *Schema {
	return NewSchema("widget",
		&Field{Name: "name", Types: String},
		&Field{Name: "width", Types: Int},
		&Field{Name: "ratio", Types: Float},
		&Field{Name: "tags", Types: List},
		&Field{Name: "meta", Types: Map},
		&Field{Name: "visible", Types: Bool},
		&Field{Name: "part", Node: "part"},
		&Field{Name: "parts", Types: List, Elem: "part"},
		&Field{Name: "level", Types: Int, Default: 3},
	)
}

func partSchema() *Schema {
	return NewSchema("part",
		&Field{Name: "name", Types: String},
		&Field{Name: "width", Types: Int},
	)
}

func newPart(t *testing.T, name string) *Node {
	t.Helper()
	part := NewNode(partSchema())
	assert.NoError(t, part.Set("name", name))
	return &part
}

func TestNodeSetGet(t *testing.T) {
	node := NewNode(widgetSchema())

	assert.NoError(t, node.Set("name", "gear"))
	assert.Equal(t, "gear", node.Get("name"))

	err := node.Set("width", "wide")
	var mismatch *TypeMismatchError
	assert.ErrorAs(t, err, &mismatch)
	assert.False(t, node.Has("width"), "failed set must not store")

	err = node.Set("unknown", 1)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)

	assert.NoError(t, node.Set("width", 10))
	assert.NoError(t, node.Set("width", 20))
	assert.Equal(t, 20, node.Get("width"))

	err = node.Set("width", 1.5)
	assert.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 20, node.Get("width"), "failed overwrite must keep previous value")
}

func TestNodeDefaults(t *testing.T) {
	node := NewNode(widgetSchema())
	assert.Equal(t, 3, node.Get("level"), "unset attribute falls back to the declared default")
	_, ok := node.Attr("level")
	assert.False(t, ok, "defaults are not explicit values")

	assert.NoError(t, node.Set("level", 7))
	assert.Equal(t, 7, node.Get("level"))
	node.Del("level")
	assert.Equal(t, 3, node.Get("level"))
}

func TestNodeDel(t *testing.T) {
	node := NewNode(widgetSchema())
	assert.NoError(t, node.Set("name", "gear"))
	node.Del("name")
	assert.False(t, node.Has("name"))
	node.Del("name")
	node.Del("unknown")
	assert.Equal(t, map[string]any{"level": 3}, node.Grammar())
}

func TestNodeGrammar(t *testing.T) {
	node := NewNode(widgetSchema())
	assert.NoError(t, node.Set("name", "gear"))
	assert.NoError(t, node.Set("tags", []any{"a", "b"}))

	part := newPart(t, "axle")
	assert.NoError(t, part.Set("width", 2))
	assert.NoError(t, node.Set("part", part))

	parts := NewKeyedListOf("name", "part")
	assert.NoError(t, parts.Insert("axle", newPart(t, "axle")))
	assert.NoError(t, parts.Insert("rim", newPart(t, "rim")))
	assert.NoError(t, node.Set("parts", parts))

	expect := map[string]any{
		"name":  "gear",
		"level": 3,
		"tags":  []any{"a", "b"},
		"part":  map[string]any{"name": "axle", "width": 2},
		"parts": []any{
			map[string]any{"name": "axle"},
			map[string]any{"name": "rim"},
		},
	}
	assert.Equal(t, expect, node.Grammar())
}

func TestNodeGrammarIdempotent(t *testing.T) {
	node := NewNode(widgetSchema())
	assert.NoError(t, node.Set("name", "gear"))
	assert.Equal(t, node.Grammar(), node.Grammar())
}

func TestNodeSetPath(t *testing.T) {
	node := NewNode(widgetSchema())
	part := newPart(t, "axle")
	assert.NoError(t, node.Set("part", part))

	assert.NoError(t, node.SetPath([]string{"part", "width"}, 5))
	assert.Equal(t, 5, part.Get("width"))

	err := node.SetPath([]string{"part", "width"}, "wide")
	var mismatch *TypeMismatchError
	assert.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 5, part.Get("width"))

	err = node.SetPath([]string{"missing", "width"}, 5)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)

	assert.NoError(t, node.DelPath([]string{"part", "width"}))
	assert.False(t, part.Has("width"))
}

func TestNodeSetPathThroughKeyedList(t *testing.T) {
	node := NewNode(widgetSchema())
	parts := NewKeyedListOf("name", "part")
	assert.NoError(t, parts.Insert("axle", newPart(t, "axle")))
	assert.NoError(t, node.Set("parts", parts))

	assert.NoError(t, node.SetPath([]string{"parts", "axle", "width"}, 9))
	elem, err := parts.Get("axle")
	assert.NoError(t, err)
	assert.Equal(t, 9, elem.GrammarNode().Get("width"))

	err = node.SetPath([]string{"parts", "rim", "width"}, 9)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestJSONRoundTrip(t *testing.T) {
	node := NewNode(widgetSchema())
	assert.NoError(t, node.Set("name", "gear"))
	assert.NoError(t, node.Set("width", 10))
	assert.NoError(t, node.Set("meta", map[string]any{"top": 1, "left": 2}))
	part := newPart(t, "axle")
	assert.NoError(t, node.Set("part", part))

	text, err := ToJSON(&node)
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal([]byte(text), &decoded))
	again, err := json.MarshalIndent(decoded, "", "  ")
	assert.NoError(t, err)
	assert.Equal(t, text, string(again))
}

func TestToYAML(t *testing.T) {
	node := NewNode(widgetSchema())
	assert.NoError(t, node.Set("name", "gear"))
	text, err := ToYAML(&node)
	assert.NoError(t, err)
	assert.Contains(t, text, "name: gear")
	assert.Contains(t, text, "level: 3")
}

func TestFingerprint(t *testing.T) {
	first := NewNode(widgetSchema())
	assert.NoError(t, first.Set("name", "gear"))
	second := NewNode(widgetSchema())
	assert.NoError(t, second.Set("name", "gear"))

	one, err := Fingerprint(&first)
	assert.NoError(t, err)
	two, err := Fingerprint(&second)
	assert.NoError(t, err)
	assert.Equal(t, one, two, "equal trees hash equally")

	assert.NoError(t, second.Set("width", 10))
	three, err := Fingerprint(&second)
	assert.NoError(t, err)
	assert.NotEqual(t, one, three)
}
