package vega

import "github.com/wrobstory/vincent/grammar"

var validTransformTypes = []string{
	"array", "copy", "cross", "facet", "filter", "flatten", "fold",
	"formula", "slice", "sort", "stats", "truncate", "unique", "window",
	"zip", "force", "geo", "geopath", "link", "pie", "stack", "treemap",
	"wordcloud",
}

var transformSchema = grammar.NewSchema(KindTransform,
	&grammar.Field{Name: "type", Types: grammar.String, Check: stringEnum("transform type", validTransformTypes...)},
	&grammar.Field{Name: "fields", Types: grammar.List},
	&grammar.Field{Name: "from", Types: grammar.String},
	&grammar.Field{Name: "as", Types: grammar.String | grammar.List},
	&grammar.Field{Name: "keys", Types: grammar.List},
	&grammar.Field{Name: "sort", Types: grammar.String},
	&grammar.Field{Name: "test", Types: grammar.String},
	&grammar.Field{Name: "field", Types: grammar.String},
	&grammar.Field{Name: "expr", Types: grammar.String},
	&grammar.Field{Name: "by", Types: grammar.String | grammar.List},
	&grammar.Field{Name: "value", Types: grammar.String},
	&grammar.Field{Name: "median", Types: grammar.Bool},
	&grammar.Field{Name: "with", Types: grammar.String},
	&grammar.Field{Name: "key", Types: grammar.String},
	&grammar.Field{Name: "withKey", Types: grammar.String},
	&grammar.Field{Name: "default", Types: grammar.Number | grammar.String},
	&grammar.Field{Name: "links", Types: grammar.String},
	&grammar.Field{Name: "size", Types: grammar.Int | grammar.List},
	&grammar.Field{Name: "iterations", Types: grammar.Int},
	&grammar.Field{Name: "charge", Types: grammar.Int | grammar.String},
	&grammar.Field{Name: "linkDistance", Types: grammar.Int | grammar.String},
	&grammar.Field{Name: "linkStrength", Types: grammar.Int | grammar.String},
	&grammar.Field{Name: "friction", Types: grammar.Number},
	&grammar.Field{Name: "theta", Types: grammar.Number},
	&grammar.Field{Name: "gravity", Types: grammar.Number},
	&grammar.Field{Name: "alpha", Types: grammar.Number},
	&grammar.Field{Name: "point", Types: grammar.String},
	&grammar.Field{Name: "height", Types: grammar.String},
	&grammar.Field{Name: "offset", Types: grammar.String},
	&grammar.Field{Name: "order", Types: grammar.String},
	&grammar.Field{Name: "projection", Types: grammar.String},
	&grammar.Field{Name: "center", Types: grammar.List},
	&grammar.Field{Name: "translate", Types: grammar.List},
	&grammar.Field{Name: "scale", Types: grammar.Int},
	&grammar.Field{Name: "rotate", Types: grammar.Int | grammar.String | grammar.Map},
	&grammar.Field{Name: "font", Types: grammar.String},
	&grammar.Field{Name: "fontSize", Types: grammar.String},
	&grammar.Field{Name: "fontWeight", Types: grammar.String},
	&grammar.Field{Name: "text", Types: grammar.String},
	&grammar.Field{Name: "diagonal", Types: grammar.Bool},
	&grammar.Field{Name: "assign", Types: grammar.Bool},
	&grammar.Field{Name: "output", Types: grammar.String},
	&grammar.Field{Name: "limit", Types: grammar.Int},
	&grammar.Field{Name: "ellipsis", Types: grammar.String},
	&grammar.Field{Name: "wordbreak", Types: grammar.Bool},
	&grammar.Field{Name: "step", Types: grammar.Number},
	&grammar.Field{Name: "precision", Types: grammar.Number},
	&grammar.Field{Name: "clipAngle", Types: grammar.Number},
	&grammar.Field{Name: "shape", Types: grammar.String},
	&grammar.Field{Name: "padding", Types: grammar.Int | grammar.List},
	&grammar.Field{Name: "lon", Types: grammar.String},
	&grammar.Field{Name: "lat", Types: grammar.String},
	&grammar.Field{Name: "source", Types: grammar.String},
	&grammar.Field{Name: "target", Types: grammar.String},
)

// Transform performs operations on a data set prior to visualization, such
// as filtering, grouping, or layout computation. The type attribute names
// the transform; the remaining attributes are transform-specific
// parameters.
type Transform struct{ grammar.Node }

// NewTransform creates an empty transform.
func NewTransform() *Transform {
	return &Transform{Node: grammar.NewNode(transformSchema)}
}
