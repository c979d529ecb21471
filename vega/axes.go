package vega

import "github.com/wrobstory/vincent/grammar"

var axisPropertiesSchema = grammar.NewSchema(KindAxisProperties,
	&grammar.Field{Name: "majorTicks", Node: KindPropertySet},
	&grammar.Field{Name: "minorTicks", Node: KindPropertySet},
	&grammar.Field{Name: "ticks", Node: KindPropertySet},
	&grammar.Field{Name: "labels", Node: KindPropertySet},
	&grammar.Field{Name: "title", Node: KindPropertySet},
	&grammar.Field{Name: "axis", Node: KindPropertySet},
)

// AxisProperties holds custom styling for the subcomponents of an axis:
// major and minor ticks, labels, the title, and the axis line itself.
type AxisProperties struct{ grammar.Node }

// NewAxisProperties creates an empty axis properties node.
func NewAxisProperties() *AxisProperties {
	return &AxisProperties{Node: grammar.NewNode(axisPropertiesSchema)}
}

var axisSchema = grammar.NewSchema(KindAxis,
	&grammar.Field{Name: "type", Types: grammar.String, Check: stringEnum("axis type", "x", "y")},
	&grammar.Field{Name: "title", Types: grammar.String},
	&grammar.Field{Name: "titleOffset", Types: grammar.Int},
	&grammar.Field{Name: "grid", Types: grammar.Bool},
	&grammar.Field{Name: "layer", Types: grammar.String, Check: stringEnum("axis layer", "front", "back")},
	&grammar.Field{Name: "scale", Types: grammar.String},
	&grammar.Field{Name: "orient", Types: grammar.String},
	&grammar.Field{Name: "format", Types: grammar.String},
	&grammar.Field{Name: "ticks", Types: grammar.Int},
	&grammar.Field{Name: "values", Types: grammar.List},
	&grammar.Field{Name: "subdivide", Types: grammar.Number},
	&grammar.Field{Name: "tickPadding", Types: grammar.Int},
	&grammar.Field{Name: "tickSize", Types: grammar.Int},
	&grammar.Field{Name: "tickSizeMajor", Types: grammar.Int},
	&grammar.Field{Name: "tickSizeMinor", Types: grammar.Int},
	&grammar.Field{Name: "tickSizeEnd", Types: grammar.Int},
	&grammar.Field{Name: "offset", Types: grammar.Int},
	&grammar.Field{Name: "properties", Node: KindAxisProperties},
)

// Axis is the visual cue the viewer reads marks against. Its type names
// the dimension it annotates, and scale names the Scale it is drawn from.
type Axis struct{ grammar.Node }

// NewAxis creates an empty axis.
func NewAxis() *Axis {
	return &Axis{Node: grammar.NewNode(axisSchema)}
}
