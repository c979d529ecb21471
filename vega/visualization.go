package vega

import (
	"fmt"

	"github.com/wrobstory/vincent/grammar"
)

var paddingSides = []string{"top", "left", "right", "bottom"}

// checkPadding accepts a non-negative number, a mapping with all four
// sides, or the strings "auto" and "strict".
func checkPadding(v any) error {
	switch padding := v.(type) {
	case map[string]any:
		for _, side := range paddingSides {
			value, ok := padding[side]
			if !ok {
				return fmt.Errorf(`padding must have keys "top", "left", "right", "bottom"`)
			}
			number, isNumber := grammar.AsNumber(value)
			if !isNumber {
				return &grammar.TypeMismatchError{
					Attribute: "padding." + side,
					Allowed:   []string{"int"},
					Value:     value,
				}
			}
			if number < 0 {
				return fmt.Errorf("padding cannot be negative")
			}
		}
	case string:
		if padding != "auto" && padding != "strict" {
			return fmt.Errorf("padding can only be auto or strict")
		}
	default:
		if number, ok := grammar.AsNumber(v); ok && number < 0 {
			return fmt.Errorf("padding cannot be negative")
		}
	}
	return nil
}

// checkViewport accepts a bounding box of two non-negative dimensions.
func checkViewport(v any) error {
	dims, ok := v.([]any)
	if !ok {
		return nil
	}
	if len(dims) != 2 {
		return fmt.Errorf("viewport must have 2 dimensions")
	}
	for _, dim := range dims {
		number, isNumber := grammar.AsNumber(dim)
		if !isNumber {
			return &grammar.TypeMismatchError{
				Attribute: "viewport dimension",
				Allowed:   []string{"int"},
				Value:     dim,
			}
		}
		if number < 0 {
			return fmt.Errorf("viewport dimensions cannot be negative")
		}
	}
	return nil
}

var visualizationSchema = grammar.NewSchema(KindVisualization,
	&grammar.Field{Name: "name", Types: grammar.String},
	&grammar.Field{Name: "width", Types: grammar.Int, Check: nonNegative("width"), Default: 400},
	&grammar.Field{Name: "height", Types: grammar.Int, Check: nonNegative("height"), Default: 200},
	&grammar.Field{Name: "viewport", Types: grammar.List, Check: checkViewport},
	&grammar.Field{
		Name:  "padding",
		Types: grammar.Int | grammar.Map | grammar.String,
		Check: checkPadding,
		Default: map[string]any{
			"top": 10, "left": 30, "bottom": 20, "right": 10,
		},
	},
	&grammar.Field{Name: "data", Types: grammar.List, Elem: KindData},
	&grammar.Field{Name: "scales", Types: grammar.List, Elem: KindScale},
	&grammar.Field{Name: "axes", Types: grammar.List, Elem: KindAxis},
	&grammar.Field{Name: "marks", Types: grammar.List, Elem: KindMark},
	&grammar.Field{Name: "legends", Types: grammar.List, Elem: KindLegend},
)

// Visualization is the root of a Vega definition. It owns the data,
// scales, axes, marks, and legends collections plus the top-level layout
// attributes; its projection is a complete Vega document.
type Visualization struct{ grammar.Node }

// collections lists the keyed collections and the element attribute each
// one keys on.
var collections = []struct{ name, attr, elem string }{
	{"data", "name", KindData},
	{"scales", "name", KindScale},
	{"axes", "type", KindAxis},
	{"marks", "type", KindMark},
}

// NewVisualization creates a visualization with empty collections: data
// and scales are keyed on each element's name, axes and marks on type, and
// legends stay a plain list.
func NewVisualization() *Visualization {
	vis := &Visualization{Node: grammar.NewNode(visualizationSchema)}
	for _, c := range collections {
		mustSet(&vis.Node, c.name, grammar.NewKeyedListOf(c.attr, c.elem))
	}
	mustSet(&vis.Node, "legends", []any{})
	return vis
}

// keyed returns the named collection as a keyed container. A plain list,
// schema-valid for the same field, is converted and stored back so later
// mutations through the container stick.
func (v *Visualization) keyed(name string) *grammar.KeyedList {
	if list, ok := v.Get(name).(*grammar.KeyedList); ok {
		return list
	}
	var attr, elem string
	for _, c := range collections {
		if c.name == name {
			attr, elem = c.attr, c.elem
			break
		}
	}
	list := grammar.NewKeyedListOf(attr, elem)
	if stored, ok := v.Get(name).([]any); ok {
		for _, item := range stored {
			if node, isNode := item.(grammar.Grammarer); isNode {
				mustAppend(list, node)
			}
		}
	}
	mustSet(&v.Node, name, list)
	return list
}

// Data returns the data collection.
func (v *Visualization) Data() *grammar.KeyedList {
	return v.keyed("data")
}

// Scales returns the scale collection.
func (v *Visualization) Scales() *grammar.KeyedList {
	return v.keyed("scales")
}

// Axes returns the axis collection, keyed on axis type.
func (v *Visualization) Axes() *grammar.KeyedList {
	return v.keyed("axes")
}

// Marks returns the mark collection, keyed on mark type.
func (v *Visualization) Marks() *grammar.KeyedList {
	return v.keyed("marks")
}

// Legends returns the legend list. A keyed container stored on the field
// contributes its elements in order.
func (v *Visualization) Legends() []any {
	switch stored := v.Get("legends").(type) {
	case []any:
		return stored
	case *grammar.KeyedList:
		out := make([]any, 0, stored.Len())
		for _, item := range stored.Items() {
			out = append(out, item)
		}
		return out
	}
	return nil
}

// AddLegend appends a legend visualizing the named scale and returns it
// for further styling.
func (v *Visualization) AddLegend(title, scale string) (*Legend, error) {
	legend := NewLegend()
	if title != "" {
		if err := legend.Set("title", title); err != nil {
			return nil, err
		}
	}
	if err := legend.Set("fill", scale); err != nil {
		return nil, err
	}
	if err := legend.Set("offset", 0); err != nil {
		return nil, err
	}
	if err := legend.Set("properties", NewLegendProperties()); err != nil {
		return nil, err
	}
	if err := v.Set("legends", append(v.Legends(), legend)); err != nil {
		return nil, err
	}
	return legend, nil
}

// AxisTitles applies titles to the x and y axes, creating the axes when
// none exist yet.
func (v *Visualization) AxisTitles(x, y string) error {
	axes := v.Axes()
	if axes.Len() == 0 {
		for _, axis := range []struct{ kind, title string }{{"x", x}, {"y", y}} {
			a := NewAxis()
			if err := a.Set("type", axis.kind); err != nil {
				return err
			}
			if axis.title != "" {
				if err := a.Set("title", axis.title); err != nil {
					return err
				}
			}
			if err := axes.Append(a); err != nil {
				return err
			}
		}
		return nil
	}
	for _, key := range axes.Keys() {
		title := ""
		switch key {
		case "x":
			title = x
		case "y":
			title = y
		default:
			continue
		}
		if title == "" {
			continue
		}
		axis, err := axes.Get(key)
		if err != nil {
			return err
		}
		if err := axis.GrammarNode().Set("title", title); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the visualization contents. With requireAll, the data,
// scales, axes, and marks collections must each be non-empty; in all cases
// duplicate keys within a collection are rejected.
func (v *Visualization) Validate(requireAll bool) error {
	for _, c := range collections {
		collection := v.keyed(c.name)
		if collection.Len() == 0 {
			if requireAll {
				return fmt.Errorf("%s must be defined for valid visualization", c.name)
			}
			continue
		}
		seen := map[string]bool{}
		for _, key := range collection.Keys() {
			if key == "" {
				continue
			}
			if seen[key] {
				return fmt.Errorf("%s has duplicate key %q", c.name, key)
			}
			seen[key] = true
		}
	}
	for _, item := range v.Data().Items() {
		if data, ok := item.(*Data); ok {
			if err := data.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
