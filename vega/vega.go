// Package vega maps the Vega visualization grammar 1:1 onto typed grammar
// nodes. Each node type carries a static field descriptor table; attribute
// assignment validates against it, and the projection of a node tree is a
// Vega JSON document.
package vega

import (
	"fmt"

	"github.com/wrobstory/vincent/grammar"
)

// Schema type names for the Vega node types.
const (
	KindVisualization    = "visualization"
	KindData             = "data"
	KindScale            = "scale"
	KindDataRef          = "dataRef"
	KindAxis             = "axis"
	KindAxisProperties   = "axisProperties"
	KindMark             = "mark"
	KindMarkRef          = "markRef"
	KindMarkProperties   = "markProperties"
	KindPropertySet      = "propertySet"
	KindValueRef         = "valueRef"
	KindTransform        = "transform"
	KindLegend           = "legend"
	KindLegendProperties = "legendProperties"
)

// mustSet stores a schema-correct value during construction; it can only
// fail on a programming error in this package.
func mustSet(node *grammar.Node, name string, value any) {
	if err := node.Set(name, value); err != nil {
		panic(err)
	}
}

// mustAppend adds a schema-correct element to a collection; it can only
// fail on a programming error in this package.
func mustAppend(list *grammar.KeyedList, node grammar.Grammarer) {
	if err := list.Append(node); err != nil {
		panic(err)
	}
}

// refValue extracts the "value" attribute of an assigned ValueRef.
func refValue(v any) (any, bool) {
	node, ok := v.(grammar.Grammarer)
	if !ok {
		return nil, false
	}
	return node.GrammarNode().Attr("value")
}

// refString checks that a ValueRef's value, when set, is a string.
func refString(attr string) grammar.CheckFunc {
	return func(v any) error {
		value, ok := refValue(v)
		if !ok {
			return nil
		}
		if _, isString := value.(string); !isString {
			return &grammar.TypeMismatchError{
				Attribute: attr + ".value",
				Allowed:   []string{"string"},
				Value:     value,
			}
		}
		return nil
	}
}

// refUnitInterval checks that a ValueRef's value, when set, is a number
// between 0 and 1.
func refUnitInterval(attr string) grammar.CheckFunc {
	return func(v any) error {
		value, ok := refValue(v)
		if !ok {
			return nil
		}
		number, isNumber := grammar.AsNumber(value)
		if !isNumber {
			return &grammar.TypeMismatchError{
				Attribute: attr + ".value",
				Allowed:   []string{"int", "float"},
				Value:     value,
			}
		}
		if number < 0 || number > 1 {
			return fmt.Errorf("%s must be between 0 and 1", attr)
		}
		return nil
	}
}

// refNonNegative checks that a ValueRef's value, when set, is a
// non-negative number.
func refNonNegative(attr string) grammar.CheckFunc {
	return func(v any) error {
		value, ok := refValue(v)
		if !ok {
			return nil
		}
		number, isNumber := grammar.AsNumber(value)
		if !isNumber {
			return &grammar.TypeMismatchError{
				Attribute: attr + ".value",
				Allowed:   []string{"int", "float"},
				Value:     value,
			}
		}
		if number < 0 {
			return fmt.Errorf("%s cannot be negative", attr)
		}
		return nil
	}
}

// refEnum checks that a ValueRef's value, when set, is one of the allowed
// strings.
func refEnum(attr string, allowed ...string) grammar.CheckFunc {
	return func(v any) error {
		value, ok := refValue(v)
		if !ok {
			return nil
		}
		text, isString := value.(string)
		if !isString {
			return &grammar.TypeMismatchError{
				Attribute: attr + ".value",
				Allowed:   []string{"string"},
				Value:     value,
			}
		}
		for _, candidate := range allowed {
			if text == candidate {
				return nil
			}
		}
		return fmt.Errorf("%s is not a valid %s", text, attr)
	}
}

// stringEnum checks that a string attribute is one of the allowed values.
func stringEnum(attr string, allowed ...string) grammar.CheckFunc {
	return func(v any) error {
		text, ok := v.(string)
		if !ok {
			return nil
		}
		for _, candidate := range allowed {
			if text == candidate {
				return nil
			}
		}
		return fmt.Errorf("%s must be one of %v", attr, allowed)
	}
}

// nonNegative checks that a numeric attribute is not negative.
func nonNegative(attr string) grammar.CheckFunc {
	return func(v any) error {
		number, ok := grammar.AsNumber(v)
		if !ok {
			return nil
		}
		if number < 0 {
			return fmt.Errorf("%s cannot be negative", attr)
		}
		return nil
	}
}
