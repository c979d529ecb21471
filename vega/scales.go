package vega

import "github.com/wrobstory/vincent/grammar"

var dataRefSchema = grammar.NewSchema(KindDataRef,
	&grammar.Field{Name: "data", Types: grammar.String},
	&grammar.Field{Name: "field", Types: grammar.String | grammar.List},
)

// DataRef names the data set and field(s) a scale draws its domain or
// range from. When multiple fields are given, all of their values are
// included.
type DataRef struct{ grammar.Node }

// NewDataRef creates an empty scale data reference.
func NewDataRef() *DataRef {
	return &DataRef{Node: grammar.NewNode(dataRefSchema)}
}

var scaleSchema = grammar.NewSchema(KindScale,
	&grammar.Field{Name: "name", Types: grammar.String},
	&grammar.Field{Name: "type", Types: grammar.String},
	&grammar.Field{Name: "domain", Types: grammar.List, Node: KindDataRef},
	&grammar.Field{Name: "domainMin", Types: grammar.Number, Node: KindDataRef},
	&grammar.Field{Name: "domainMax", Types: grammar.Number, Node: KindDataRef},
	&grammar.Field{Name: "range", Types: grammar.List | grammar.String},
	&grammar.Field{Name: "rangeMin", Types: grammar.Number, Node: KindDataRef},
	&grammar.Field{Name: "rangeMax", Types: grammar.Number, Node: KindDataRef},
	&grammar.Field{Name: "reverse", Types: grammar.Bool},
	&grammar.Field{Name: "round", Types: grammar.Bool},
	&grammar.Field{Name: "points", Types: grammar.Bool},
	&grammar.Field{Name: "clamp", Types: grammar.Bool},
	&grammar.Field{Name: "nice", Types: grammar.Bool | grammar.String},
	&grammar.Field{Name: "exponent", Types: grammar.Number},
	&grammar.Field{Name: "zero", Types: grammar.Bool},
	&grammar.Field{Name: "padding", Types: grammar.Number},
)

// Scale maps data from the data space (numbers, categories, timestamps) to
// the visual space (pixel extents, colors). An unset type means linear.
type Scale struct{ grammar.Node }

// NewScale creates a scale with the given name.
func NewScale(name string) *Scale {
	scale := &Scale{Node: grammar.NewNode(scaleSchema)}
	if name != "" {
		mustSet(&scale.Node, "name", name)
	}
	return scale
}
