package grammar

// Schema is an immutable, named table of field descriptors for one node
// type. Schemas are built once as package-level metadata; nodes share them.
type Schema struct {
	name   string
	fields []*Field
	byName map[string]*Field
}

// NewSchema builds a schema from a field descriptor table.
func NewSchema(name string, fields ...*Field) *Schema {
	byName := make(map[string]*Field, len(fields))
	for _, field := range fields {
		byName[field.Name] = field
	}
	return &Schema{name: name, fields: fields, byName: byName}
}

// Name returns the schema's type name.
func (s *Schema) Name() string {
	return s.name
}

// Field returns the descriptor for the named attribute.
func (s *Schema) Field(name string) (*Field, bool) {
	field, ok := s.byName[name]
	return field, ok
}

// Fields returns the descriptors in declaration order.
func (s *Schema) Fields() []*Field {
	return s.fields
}
