package grammar

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldValidate(t *testing.T) {
	child := NewNode(NewSchema("child"))
	other := NewNode(NewSchema("other"))

	tests := []struct {
		description string
		field       *Field
		value       any
		valid       bool
	}{
		{
			description: "string accepted",
			field:       &Field{Name: "name", Types: String},
			value:       "x",
			valid:       true,
		},
		{
			description: "string rejected for int field",
			field:       &Field{Name: "width", Types: Int},
			value:       "wide",
		},
		{
			description: "int widths widened",
			field:       &Field{Name: "width", Types: Int},
			value:       int64(10),
			valid:       true,
		},
		{
			description: "int rejected for float-only field",
			field:       &Field{Name: "ratio", Types: Float},
			value:       1,
		},
		{
			description: "number accepts both int and float",
			field:       &Field{Name: "mult", Types: Number},
			value:       1.5,
			valid:       true,
		},
		{
			description: "bool accepted",
			field:       &Field{Name: "flag", Types: Bool},
			value:       true,
			valid:       true,
		},
		{
			description: "nil always rejected",
			field:       &Field{Name: "name", Types: String},
			value:       nil,
		},
		{
			description: "list accepted",
			field:       &Field{Name: "tags", Types: List},
			value:       []any{"a", "b"},
			valid:       true,
		},
		{
			description: "map accepted",
			field:       &Field{Name: "meta", Types: Map},
			value:       map[string]any{"top": 1},
			valid:       true,
		},
		{
			description: "node of declared schema accepted",
			field:       &Field{Name: "child", Node: "child"},
			value:       &child,
			valid:       true,
		},
		{
			description: "node of another schema rejected",
			field:       &Field{Name: "child", Node: "child"},
			value:       &other,
		},
		{
			description: "node rejected when no schema declared",
			field:       &Field{Name: "name", Types: String},
			value:       &child,
		},
		{
			description: "list element schema enforced",
			field:       &Field{Name: "children", Types: List, Elem: "child"},
			value:       []any{&other},
		},
		{
			description: "keyed list satisfies list",
			field:       &Field{Name: "children", Types: List, Elem: "child"},
			value:       NewKeyedListOf("name", "child"),
			valid:       true,
		},
	}
	for _, tc := range tests {
		err := tc.field.Validate(tc.value)
		if tc.valid {
			assert.NoError(t, err, tc.description)
			continue
		}
		assert.Error(t, err, tc.description)
		var mismatch *TypeMismatchError
		assert.ErrorAs(t, err, &mismatch, tc.description)
	}
}

func TestFieldCheck(t *testing.T) {
	field := &Field{
		Name:  "width",
		Types: Int,
		Check: func(v any) error {
			if number, ok := AsNumber(v); ok && number < 0 {
				return fmt.Errorf("width cannot be negative")
			}
			return nil
		},
	}
	assert.NoError(t, field.Validate(10))
	err := field.Validate(-1)
	assert.EqualError(t, err, "width cannot be negative")
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "string", String.String())
	assert.Equal(t, "int|float", Number.String())
	assert.Equal(t, "string|bool", (String | Bool).String())
}

func TestAsNumber(t *testing.T) {
	for _, value := range []any{1, int8(1), int64(1), uint32(1), float32(1), 1.0} {
		number, ok := AsNumber(value)
		assert.True(t, ok, "%T", value)
		assert.Equal(t, 1.0, number)
	}
	_, ok := AsNumber("1")
	assert.False(t, ok)
}
