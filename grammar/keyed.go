package grammar

// KeyedList is an ordered sequence of grammar nodes additionally indexable
// by a designated key attribute of its elements (usually "name"). Insertion
// by key enforces index-key consistency; equality is by the key attribute's
// value, never by identity.
type KeyedList struct {
	attr  string // element attribute used as the key
	elem  string // required element schema name, empty for any
	items []Grammarer
}

// NewKeyedList creates an empty container keyed on the given element
// attribute.
func NewKeyedList(attr string) *KeyedList {
	return &KeyedList{attr: attr}
}

// NewKeyedListOf creates an empty container that additionally requires all
// elements to conform to one node schema.
func NewKeyedListOf(attr, schema string) *KeyedList {
	return &KeyedList{attr: attr, elem: schema}
}

// KeyAttr returns the element attribute the container keys on.
func (l *KeyedList) KeyAttr() string {
	return l.attr
}

// Len returns the number of elements.
func (l *KeyedList) Len() int {
	return len(l.items)
}

// At returns the element at the given position.
func (l *KeyedList) At(i int) (Grammarer, bool) {
	if i < 0 || i >= len(l.items) {
		return nil, false
	}
	return l.items[i], true
}

// Items returns the elements in insertion order.
func (l *KeyedList) Items() []Grammarer {
	out := make([]Grammarer, len(l.items))
	copy(out, l.items)
	return out
}

// Keys returns the key of each element in order. Elements without the key
// attribute contribute an empty string.
func (l *KeyedList) Keys() []string {
	keys := make([]string, len(l.items))
	for i, item := range l.items {
		keys[i], _ = l.key(item)
	}
	return keys
}

// Insert places node under the given key: the key must equal the node's own
// key attribute, else a KeyMismatchError is returned and the container is
// unchanged. An existing element with the same key is replaced in place;
// otherwise the node is appended.
func (l *KeyedList) Insert(key string, node Grammarer) error {
	if err := l.checkElem(node); err != nil {
		return err
	}
	actual, err := l.key(node)
	if err != nil {
		return err
	}
	if actual != key {
		return &KeyMismatchError{
			Key:     key,
			KeyAttr: l.attr,
			Reason:  "key must be equal to the element's " + l.attr + " attribute",
		}
	}
	at, err := l.index(key)
	if err != nil {
		return err
	}
	if at >= 0 {
		l.items[at] = node
		return nil
	}
	l.items = append(l.items, node)
	return nil
}

// Append adds a node without any key-matching requirement; the key is taken
// from the node's own attribute at lookup and projection time.
func (l *KeyedList) Append(node Grammarer) error {
	if err := l.checkElem(node); err != nil {
		return err
	}
	l.items = append(l.items, node)
	return nil
}

// Extend appends each node in order. On the first failure the container
// keeps the nodes appended so far.
func (l *KeyedList) Extend(nodes ...Grammarer) error {
	for _, node := range nodes {
		if err := l.Append(node); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the element whose key attribute equals key.
func (l *KeyedList) Get(key string) (Grammarer, error) {
	at, err := l.index(key)
	if err != nil {
		return nil, err
	}
	if at < 0 {
		return nil, &NotFoundError{Kind: "key", Name: key}
	}
	return l.items[at], nil
}

// Remove deletes the element whose key attribute equals key.
func (l *KeyedList) Remove(key string) error {
	at, err := l.index(key)
	if err != nil {
		return err
	}
	if at < 0 {
		return &NotFoundError{Kind: "key", Name: key}
	}
	l.items = append(l.items[:at], l.items[at+1:]...)
	return nil
}

// Grammar projects the container to a plain ordered sequence of each
// element's projection.
func (l *KeyedList) Grammar() []any {
	out := make([]any, len(l.items))
	for i, item := range l.items {
		out[i] = item.GrammarNode().Grammar()
	}
	return out
}

// index returns the position of key, -1 when absent, and an error when the
// container holds duplicate keys.
func (l *KeyedList) index(key string) (int, error) {
	at := -1
	for i, item := range l.items {
		actual, err := l.key(item)
		if err != nil {
			continue
		}
		if actual != key {
			continue
		}
		if at >= 0 {
			return -1, &KeyMismatchError{Key: key, KeyAttr: l.attr, Reason: "duplicate keys found"}
		}
		at = i
	}
	return at, nil
}

func (l *KeyedList) checkElem(node Grammarer) error {
	if l.elem == "" {
		return nil
	}
	if node.GrammarNode().SchemaName() != l.elem {
		return &TypeMismatchError{Attribute: l.attr, Allowed: []string{l.elem}, Value: node}
	}
	return nil
}

func (l *KeyedList) key(node Grammarer) (string, error) {
	value, ok := node.GrammarNode().Attr(l.attr)
	if !ok {
		return "", &KeyMismatchError{
			KeyAttr: l.attr,
			Reason:  "element must have the " + l.attr + " attribute",
		}
	}
	key, ok := value.(string)
	if !ok {
		return "", &KeyMismatchError{
			KeyAttr: l.attr,
			Reason:  "element " + l.attr + " attribute must be a string",
		}
	}
	return key, nil
}
