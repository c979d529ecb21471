package grammar

import "strings"

// Type is a bitmask of runtime kinds a field accepts.
type Type uint16

const (
	String Type = 1 << iota
	Int
	Float
	Bool
	List
	Map

	// Number accepts any numeric value.
	Number = Int | Float
)

var typeNames = []struct {
	bit  Type
	name string
}{
	{String, "string"},
	{Int, "int"},
	{Float, "float"},
	{Bool, "bool"},
	{List, "list"},
	{Map, "map"},
}

func (t Type) String() string {
	var names []string
	for _, tn := range typeNames {
		if t&tn.bit != 0 {
			names = append(names, tn.name)
		}
	}
	return strings.Join(names, "|")
}

// CheckFunc applies a value-level rule after type checking passes.
type CheckFunc func(value any) error

// Field describes one named attribute of a grammar node: the runtime kinds
// it accepts, the node schema its value may conform to, and an optional
// value-level check. Validation is a pure function of the candidate value;
// storage is the node's concern.
type Field struct {
	Name    string    // key used in the projected grammar
	Types   Type      // accepted scalar and container kinds
	Node    string    // accepted node schema name, empty if none
	Elem    string    // required element schema for list values, empty if unconstrained
	Check   CheckFunc // optional value-level rule
	Default any       // emitted by the projection when the attribute is unset
}

// Validate returns nil if value's runtime type is among the field's
// accepted types and any value-level check passes. The candidate is never
// stored here.
func (f *Field) Validate(value any) error {
	if value == nil {
		return f.mismatch(value)
	}
	switch v := value.(type) {
	case string:
		if f.Types&String == 0 {
			return f.mismatch(value)
		}
	case bool:
		if f.Types&Bool == 0 {
			return f.mismatch(value)
		}
	case []any:
		if f.Types&List == 0 {
			return f.mismatch(value)
		}
		if f.Elem != "" {
			for _, item := range v {
				if err := f.validateElem(item); err != nil {
					return err
				}
			}
		}
	case map[string]any:
		if f.Types&Map == 0 {
			return f.mismatch(value)
		}
	case *KeyedList:
		if f.Types&List == 0 {
			return f.mismatch(value)
		}
		if f.Elem != "" {
			for _, item := range v.Items() {
				if err := f.validateElem(item); err != nil {
					return err
				}
			}
		}
	case Grammarer:
		if f.Node == "" || v.GrammarNode().SchemaName() != f.Node {
			return f.mismatch(value)
		}
	default:
		if isInt(value) {
			if f.Types&Int == 0 {
				return f.mismatch(value)
			}
			break
		}
		if isFloat(value) {
			if f.Types&Float == 0 {
				return f.mismatch(value)
			}
			break
		}
		return f.mismatch(value)
	}
	if f.Check != nil {
		return f.Check(value)
	}
	return nil
}

func (f *Field) validateElem(item any) error {
	node, ok := item.(Grammarer)
	if !ok || node.GrammarNode().SchemaName() != f.Elem {
		return &TypeMismatchError{Attribute: f.Name, Allowed: []string{f.Elem}, Value: item}
	}
	return nil
}

func (f *Field) mismatch(value any) error {
	var allowed []string
	if s := f.Types.String(); s != "" {
		allowed = strings.Split(s, "|")
	}
	if f.Node != "" {
		allowed = append(allowed, f.Node)
	}
	return &TypeMismatchError{Attribute: f.Name, Allowed: allowed, Value: value}
}

func isInt(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

func isFloat(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	}
	return false
}

// AsNumber widens any numeric value to float64.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
