package vega

import (
	"fmt"

	"github.com/wrobstory/vincent/grammar"
)

// DefaultDataName is assigned when a Data node is created without a name.
const DefaultDataName = "table"

// checkValues accepts tabular rows: each element is a row mapping or a raw
// number.
func checkValues(v any) error {
	rows, ok := v.([]any)
	if !ok {
		return nil
	}
	for i, row := range rows {
		if _, isMap := row.(map[string]any); isMap {
			continue
		}
		if _, isNumber := grammar.AsNumber(row); isNumber {
			continue
		}
		return &grammar.TypeMismatchError{
			Attribute: fmt.Sprintf("values[%d]", i),
			Allowed:   []string{"int", "float", "map"},
			Value:     row,
		}
	}
	return nil
}

var dataSchema = grammar.NewSchema(KindData,
	&grammar.Field{Name: "name", Types: grammar.String},
	&grammar.Field{Name: "url", Types: grammar.String},
	&grammar.Field{Name: "values", Types: grammar.List, Check: checkValues},
	&grammar.Field{Name: "source", Types: grammar.String},
	&grammar.Field{Name: "transform", Types: grammar.List, Elem: KindTransform},
	&grammar.Field{Name: "format", Types: grammar.Map},
)

// Data holds one data set of the visualization: inline tabular values, or
// a url reference with an optional format descriptor, plus an optional
// transform pipeline. Other components refer to it by name.
type Data struct{ grammar.Node }

// NewData creates a data set with the given name; an empty name defaults
// to "table".
func NewData(name string) *Data {
	if name == "" {
		name = DefaultDataName
	}
	data := &Data{Node: grammar.NewNode(dataSchema)}
	mustSet(&data.Node, "name", name)
	return data
}

// Name returns the data set's name.
func (d *Data) Name() string {
	name, _ := d.Get("name").(string)
	return name
}

// Validate checks the data set is complete enough to serialize: the name
// is required for other components to reference it.
func (d *Data) Validate() error {
	if d.Name() == "" {
		return fmt.Errorf("name is required for data")
	}
	return nil
}
