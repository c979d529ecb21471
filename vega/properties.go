package vega

import "github.com/wrobstory/vincent/grammar"

var validShapes = []string{
	"circle", "square", "cross", "diamond", "triangle-up", "triangle-down",
}

var propertySetSchema = grammar.NewSchema(KindPropertySet,
	&grammar.Field{Name: "x", Node: KindValueRef},
	&grammar.Field{Name: "x2", Node: KindValueRef},
	&grammar.Field{Name: "width", Node: KindValueRef},
	&grammar.Field{Name: "y", Node: KindValueRef},
	&grammar.Field{Name: "y2", Node: KindValueRef},
	&grammar.Field{Name: "height", Node: KindValueRef},
	&grammar.Field{Name: "opacity", Node: KindValueRef},
	&grammar.Field{Name: "fill", Node: KindValueRef, Check: refString("fill")},
	&grammar.Field{Name: "fillOpacity", Node: KindValueRef, Check: refUnitInterval("fillOpacity")},
	&grammar.Field{Name: "stroke", Node: KindValueRef, Check: refString("stroke")},
	&grammar.Field{Name: "strokeWidth", Node: KindValueRef, Check: refNonNegative("strokeWidth")},
	&grammar.Field{Name: "strokeOpacity", Node: KindValueRef, Check: refUnitInterval("strokeOpacity")},
	&grammar.Field{Name: "size", Node: KindValueRef, Check: refNonNegative("size")},
	&grammar.Field{Name: "shape", Node: KindValueRef, Check: refEnum("shape", validShapes...)},
	&grammar.Field{Name: "path", Node: KindValueRef, Check: refString("path")},
	&grammar.Field{Name: "innerRadius", Node: KindValueRef},
	&grammar.Field{Name: "outerRadius", Node: KindValueRef},
	&grammar.Field{Name: "startAngle", Node: KindValueRef},
	&grammar.Field{Name: "endAngle", Node: KindValueRef},
	&grammar.Field{Name: "interpolate", Node: KindValueRef},
	&grammar.Field{Name: "tension", Node: KindValueRef},
	&grammar.Field{Name: "url", Node: KindValueRef},
	&grammar.Field{Name: "align", Node: KindValueRef},
	&grammar.Field{Name: "baseline", Node: KindValueRef},
	&grammar.Field{Name: "text", Node: KindValueRef},
	&grammar.Field{Name: "dx", Node: KindValueRef},
	&grammar.Field{Name: "dy", Node: KindValueRef},
	&grammar.Field{Name: "angle", Node: KindValueRef},
	&grammar.Field{Name: "font", Node: KindValueRef},
	&grammar.Field{Name: "fontSize", Node: KindValueRef},
	&grammar.Field{Name: "fontWeight", Node: KindValueRef},
	&grammar.Field{Name: "fontStyle", Node: KindValueRef},
)

// PropertySet defines the appearance details of marks and of axis and
// legend components. Every attribute is a ValueRef; value-level checks
// apply only to the "value" side of a reference, which Vega ignores when
// "field" is set.
type PropertySet struct{ grammar.Node }

// NewPropertySet creates an empty property set.
func NewPropertySet() *PropertySet {
	return &PropertySet{Node: grammar.NewNode(propertySetSchema)}
}
