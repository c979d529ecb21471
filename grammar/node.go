package grammar

// Grammarer is satisfied by every grammar node. Typed node types satisfy it
// by embedding Node.
type Grammarer interface {
	GrammarNode() *Node
}

// Node is one schema-typed grammar object: a sparse set of validated
// attributes keyed by field name. Mutations fail fast; a fully constructed
// node is always valid for projection.
type Node struct {
	schema *Schema
	attrs  map[string]any
}

// NewNode creates an empty node for the given schema.
func NewNode(schema *Schema) Node {
	return Node{schema: schema, attrs: map[string]any{}}
}

// GrammarNode returns the node itself; it anchors the Grammarer interface
// for embedding types.
func (n *Node) GrammarNode() *Node {
	return n
}

// Schema returns the node's field descriptor table.
func (n *Node) Schema() *Schema {
	return n.schema
}

// SchemaName returns the node's schema type name.
func (n *Node) SchemaName() string {
	return n.schema.name
}

// Set validates value against the attribute's field descriptor and stores
// it on success. On failure the previous value (or absence) is untouched.
func (n *Node) Set(name string, value any) error {
	field, ok := n.schema.Field(name)
	if !ok {
		return &NotFoundError{Kind: "attribute", Name: name}
	}
	if err := field.Validate(value); err != nil {
		return err
	}
	n.attrs[name] = value
	return nil
}

// Get returns the stored value, or the field's declared default when the
// attribute was never set, or nil.
func (n *Node) Get(name string) any {
	if value, ok := n.attrs[name]; ok {
		return value
	}
	if field, ok := n.schema.Field(name); ok {
		return field.Default
	}
	return nil
}

// Attr returns the stored value and whether the attribute was explicitly
// set; defaults are not reported here.
func (n *Node) Attr(name string) (any, bool) {
	value, ok := n.attrs[name]
	return value, ok
}

// Has reports whether the attribute was explicitly set.
func (n *Node) Has(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

// Del removes the stored value. Deleting a never-set attribute is a no-op.
func (n *Node) Del(name string) {
	delete(n.attrs, name)
}

// SetPath walks nested nodes and keyed containers and sets the attribute
// named by the final path element, with the same validation contract as
// Set. A path element that lands on a keyed container selects the element
// with that key.
func (n *Node) SetPath(path []string, value any) error {
	target, err := n.descend(path)
	if err != nil {
		return err
	}
	return target.Set(path[len(path)-1], value)
}

// DelPath removes the attribute named by the final path element.
func (n *Node) DelPath(path []string) error {
	target, err := n.descend(path)
	if err != nil {
		return err
	}
	target.Del(path[len(path)-1])
	return nil
}

// descend resolves all but the last path element to the owning node.
func (n *Node) descend(path []string) (*Node, error) {
	if len(path) == 0 {
		return nil, &NotFoundError{Kind: "path", Name: ""}
	}
	current := n
	for i := 0; i < len(path)-1; i++ {
		value, ok := current.attrs[path[i]]
		if !ok {
			return nil, &NotFoundError{Kind: "attribute", Name: path[i]}
		}
		switch next := value.(type) {
		case *KeyedList:
			if i+1 >= len(path)-1 {
				return nil, &NotFoundError{Kind: "path", Name: path[i]}
			}
			i++
			elem, err := next.Get(path[i])
			if err != nil {
				return nil, err
			}
			current = elem.GrammarNode()
		case Grammarer:
			current = next.GrammarNode()
		default:
			return nil, &NotFoundError{Kind: "path", Name: path[i]}
		}
	}
	return current, nil
}

// Grammar projects the node to a plain nested mapping: nested nodes recurse
// through their own projection, keyed containers become plain ordered
// sequences, scalars pass through. Attributes never set are omitted, except
// fields that declare a default.
func (n *Node) Grammar() map[string]any {
	out := make(map[string]any, len(n.attrs))
	for name, value := range n.attrs {
		out[name] = project(value)
	}
	for _, field := range n.schema.fields {
		if field.Default == nil {
			continue
		}
		if _, ok := n.attrs[field.Name]; !ok {
			out[field.Name] = project(field.Default)
		}
	}
	return out
}

func project(value any) any {
	switch v := value.(type) {
	case *KeyedList:
		return v.Grammar()
	case Grammarer:
		return v.GrammarNode().Grammar()
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = project(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = project(item)
		}
		return out
	default:
		return value
	}
}
