package vega

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wrobstory/vincent/grammar"
)

func valueRef(t *testing.T, value any) *ValueRef {
	t.Helper()
	ref := NewValueRef()
	assert.NoError(t, ref.Set("value", value))
	return ref
}

func TestTypechecking(t *testing.T) {
	tests := []struct {
		description string
		node        grammar.Grammarer
		attr        string
		value       any
		valid       bool
	}{
		{
			description: "data url is a string",
			node:        NewData(""),
			attr:        "url",
			value:       "data.json",
			valid:       true,
		},
		{
			description: "data values reject non-list",
			node:        NewData(""),
			attr:        "values",
			value:       "rows",
		},
		{
			description: "data values accept row mappings",
			node:        NewData(""),
			attr:        "values",
			value:       []any{map[string]any{"x": 1}},
			valid:       true,
		},
		{
			description: "data values reject string rows",
			node:        NewData(""),
			attr:        "values",
			value:       []any{"row"},
		},
		{
			description: "scale range accepts a preset name",
			node:        NewScale("x"),
			attr:        "range",
			value:       "width",
			valid:       true,
		},
		{
			description: "scale range accepts a list",
			node:        NewScale("x"),
			attr:        "range",
			value:       []any{0, 100},
			valid:       true,
		},
		{
			description: "scale domain accepts a data reference",
			node:        NewScale("x"),
			attr:        "domain",
			value:       NewDataRef(),
			valid:       true,
		},
		{
			description: "scale domain rejects a number",
			node:        NewScale("x"),
			attr:        "domain",
			value:       1,
		},
		{
			description: "scale nice accepts a bool",
			node:        NewScale("x"),
			attr:        "nice",
			value:       true,
			valid:       true,
		},
		{
			description: "axis ticks is an int",
			node:        NewAxis(),
			attr:        "ticks",
			value:       1.5,
		},
		{
			description: "mark from is a mark reference",
			node:        NewMark(),
			attr:        "from",
			value:       NewScale("x"),
		},
		{
			description: "mark properties node",
			node:        NewMark(),
			attr:        "properties",
			value:       NewMarkProperties(),
			valid:       true,
		},
		{
			description: "property set slots hold value references",
			node:        NewPropertySet(),
			attr:        "x",
			value:       1,
		},
		{
			description: "legend values is a list",
			node:        NewLegend(),
			attr:        "values",
			value:       "a",
		},
		{
			description: "transform type is a string",
			node:        NewTransform(),
			attr:        "type",
			value:       1,
		},
	}
	for _, tc := range tests {
		err := tc.node.GrammarNode().Set(tc.attr, tc.value)
		if tc.valid {
			assert.NoError(t, err, tc.description)
			continue
		}
		var mismatch *grammar.TypeMismatchError
		assert.ErrorAs(t, err, &mismatch, tc.description)
		assert.False(t, tc.node.GrammarNode().Has(tc.attr), tc.description)
	}
}

func TestSparseProjection(t *testing.T) {
	assert.Equal(t, map[string]any{}, NewPropertySet().Grammar())
	assert.Equal(t, map[string]any{}, NewAxis().Grammar())
	assert.Equal(t, map[string]any{}, NewValueRef().Grammar())
	assert.Equal(t, map[string]any{"name": "x"}, NewScale("x").Grammar())
}

func TestEnumChecks(t *testing.T) {
	mark := NewMark()
	assert.NoError(t, mark.Set("type", "rect"))
	assert.NoError(t, mark.Set("type", "group"))
	assert.EqualError(t, mark.Set("type", "bar"),
		"mark type must be one of [rect symbol path arc area line image text group]")

	axis := NewAxis()
	assert.NoError(t, axis.Set("type", "x"))
	assert.Error(t, axis.Set("type", "z"))
	assert.NoError(t, axis.Set("layer", "front"))
	assert.Error(t, axis.Set("layer", "middle"))

	legend := NewLegend()
	assert.NoError(t, legend.Set("orient", "left"))
	assert.Error(t, legend.Set("orient", "top"))

	transform := NewTransform()
	assert.NoError(t, transform.Set("type", "stack"))
	assert.Error(t, transform.Set("type", "mangle"))
}

func TestPropertySetValueChecks(t *testing.T) {
	props := NewPropertySet()

	assert.NoError(t, props.Set("fill", valueRef(t, "steelblue")))
	assert.Error(t, props.Set("fill", valueRef(t, 1)))

	assert.NoError(t, props.Set("fillOpacity", valueRef(t, 0.5)))
	assert.EqualError(t, props.Set("fillOpacity", valueRef(t, 2)),
		"fillOpacity must be between 0 and 1")

	assert.NoError(t, props.Set("strokeWidth", valueRef(t, 1)))
	assert.EqualError(t, props.Set("strokeWidth", valueRef(t, -1)),
		"strokeWidth cannot be negative")

	assert.NoError(t, props.Set("shape", valueRef(t, "circle")))
	assert.EqualError(t, props.Set("shape", valueRef(t, "star")),
		"star is not a valid shape")

	fieldRef := NewValueRef()
	assert.NoError(t, fieldRef.Set("field", "data.val"))
	assert.NoError(t, props.Set("fillOpacity", fieldRef),
		"checks only apply to a set value")
}

func TestVisualizationLayoutChecks(t *testing.T) {
	vis := NewVisualization()

	assert.NoError(t, vis.Set("width", 500))
	assert.EqualError(t, vis.Set("width", -1), "width cannot be negative")

	assert.NoError(t, vis.Set("padding", 20))
	assert.NoError(t, vis.Set("padding", "auto"))
	assert.EqualError(t, vis.Set("padding", "loose"), "padding can only be auto or strict")
	assert.NoError(t, vis.Set("padding",
		map[string]any{"top": 1, "left": 2, "right": 3, "bottom": 4}))
	assert.EqualError(t, vis.Set("padding", map[string]any{"top": 1}),
		`padding must have keys "top", "left", "right", "bottom"`)

	assert.NoError(t, vis.Set("viewport", []any{800, 600}))
	assert.EqualError(t, vis.Set("viewport", []any{800}),
		"viewport must have 2 dimensions")
	assert.EqualError(t, vis.Set("viewport", []any{800, -600}),
		"viewport dimensions cannot be negative")
}

func TestDataName(t *testing.T) {
	assert.Equal(t, "table", NewData("").Name())
	assert.Equal(t, "points", NewData("points").Name())

	data := NewData("points")
	assert.NoError(t, data.Validate())
	data.Del("name")
	assert.EqualError(t, data.Validate(), "name is required for data")
}
