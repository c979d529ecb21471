package vega

import "github.com/wrobstory/vincent/grammar"

var validMarkTypes = []string{
	"rect", "symbol", "path", "arc", "area", "line", "image", "text", "group",
}

var markPropertiesSchema = grammar.NewSchema(KindMarkProperties,
	&grammar.Field{Name: "enter", Node: KindPropertySet},
	&grammar.Field{Name: "exit", Node: KindPropertySet},
	&grammar.Field{Name: "update", Node: KindPropertySet},
	&grammar.Field{Name: "hover", Node: KindPropertySet},
)

// MarkProperties groups the property sets a mark applies on each of the
// four Vega events: enter when data is loaded, exit when it is removed,
// update for all non-exiting data, and hover on mouse-over.
type MarkProperties struct{ grammar.Node }

// NewMarkProperties creates an empty mark properties node.
func NewMarkProperties() *MarkProperties {
	return &MarkProperties{Node: grammar.NewNode(markPropertiesSchema)}
}

var markRefSchema = grammar.NewSchema(KindMarkRef,
	&grammar.Field{Name: "data", Types: grammar.String},
	&grammar.Field{Name: "transform", Types: grammar.List, Elem: KindTransform},
)

// MarkRef names the source data of a mark, with an optional transform
// pipeline applied before visualization.
type MarkRef struct{ grammar.Node }

// NewMarkRef creates an empty mark data reference.
func NewMarkRef() *MarkRef {
	return &MarkRef{Node: grammar.NewNode(markRefSchema)}
}

var markSchema = grammar.NewSchema(KindMark,
	&grammar.Field{Name: "name", Types: grammar.String},
	&grammar.Field{Name: "description", Types: grammar.String},
	&grammar.Field{Name: "type", Types: grammar.String, Check: stringEnum("mark type", validMarkTypes...)},
	&grammar.Field{Name: "from", Node: KindMarkRef},
	&grammar.Field{Name: "properties", Node: KindMarkProperties},
	&grammar.Field{Name: "key", Types: grammar.String},
	&grammar.Field{Name: "delay", Node: KindValueRef},
	&grammar.Field{Name: "ease", Types: grammar.String},
	&grammar.Field{Name: "marks", Types: grammar.List, Elem: KindMark},
	&grammar.Field{Name: "scales", Types: grammar.List, Elem: KindScale},
)

// Mark is the visual object the viewer sees: a bar, a line, a label. It
// binds source data to appearance property sets. Group marks may nest
// child marks and scales.
type Mark struct{ grammar.Node }

// NewMark creates an empty mark.
func NewMark() *Mark {
	return &Mark{Node: grammar.NewNode(markSchema)}
}
