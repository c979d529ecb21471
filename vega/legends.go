package vega

import "github.com/wrobstory/vincent/grammar"

var legendPropertiesSchema = grammar.NewSchema(KindLegendProperties,
	&grammar.Field{Name: "title", Node: KindPropertySet},
	&grammar.Field{Name: "labels", Node: KindPropertySet},
	&grammar.Field{Name: "symbols", Node: KindPropertySet},
	&grammar.Field{Name: "gradient", Node: KindPropertySet},
	&grammar.Field{Name: "legend", Node: KindPropertySet},
)

// LegendProperties enables custom mark properties for the elements of a
// legend.
type LegendProperties struct{ grammar.Node }

// NewLegendProperties creates an empty legend properties node.
func NewLegendProperties() *LegendProperties {
	return &LegendProperties{Node: grammar.NewNode(legendPropertiesSchema)}
}

var legendSchema = grammar.NewSchema(KindLegend,
	&grammar.Field{Name: "size", Types: grammar.String},
	&grammar.Field{Name: "shape", Types: grammar.String},
	&grammar.Field{Name: "fill", Types: grammar.String},
	&grammar.Field{Name: "stroke", Types: grammar.String},
	&grammar.Field{Name: "orient", Types: grammar.String, Check: stringEnum("legend orient", "left", "right")},
	&grammar.Field{Name: "offset", Types: grammar.Int},
	&grammar.Field{Name: "title", Types: grammar.String},
	&grammar.Field{Name: "format", Types: grammar.String},
	&grammar.Field{Name: "values", Types: grammar.List},
	&grammar.Field{Name: "properties", Node: KindLegendProperties},
)

// Legend visualizes one or more scales: size, shape, fill, and stroke each
// name the scale that determines that aspect of a legend item.
type Legend struct{ grammar.Node }

// NewLegend creates an empty legend.
func NewLegend() *Legend {
	return &Legend{Node: grammar.NewNode(legendSchema)}
}
