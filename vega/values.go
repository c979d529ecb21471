package vega

import "github.com/wrobstory/vincent/grammar"

var valueRefSchema = grammar.NewSchema(KindValueRef,
	&grammar.Field{Name: "value", Types: grammar.String | grammar.Number},
	&grammar.Field{Name: "field", Types: grammar.String},
	&grammar.Field{Name: "datum", Types: grammar.String},
	&grammar.Field{Name: "group", Types: grammar.String},
	&grammar.Field{Name: "parent", Types: grammar.String},
	&grammar.Field{Name: "scale", Types: grammar.String},
	&grammar.Field{Name: "mult", Types: grammar.Number},
	&grammar.Field{Name: "offset", Types: grammar.Number},
	&grammar.Field{Name: "band", Types: grammar.Bool},
)

// ValueRef defines a mark property: either a constant value or a reference
// to a data field, optionally passed through a named scale, multiplier, and
// offset.
type ValueRef struct{ grammar.Node }

// NewValueRef creates an empty value reference.
func NewValueRef() *ValueRef {
	return &ValueRef{Node: grammar.NewNode(valueRefSchema)}
}
