package grammar

import (
	"fmt"
	"strings"
)

// TypeMismatchError reports an attribute assignment whose value type is not
// among the field's accepted types. The node is left unchanged.
type TypeMismatchError struct {
	Attribute string   // attribute that rejected the value
	Allowed   []string // accepted type names
	Value     any      // offending value
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s must be one of (%s), got %T",
		e.Attribute, strings.Join(e.Allowed, ", "), e.Value)
}

// KeyMismatchError reports a keyed insertion or lookup where the supplied
// key disagrees with the element's own key attribute.
type KeyMismatchError struct {
	Key     string // supplied or conflicting key
	KeyAttr string // element attribute that keys the container
	Reason  string
}

func (e *KeyMismatchError) Error() string {
	return fmt.Sprintf("key %q: %s", e.Key, e.Reason)
}

// NotFoundError reports a lookup of an attribute, path, or container key
// that does not exist.
type NotFoundError struct {
	Kind string // "attribute", "key" or "path"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}
