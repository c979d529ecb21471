package grammar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// ToJSON encodes a node's projection as indented JSON text. Serialization
// cannot fail on schema grounds: a constructed tree is valid by
// construction.
func ToJSON(node Grammarer) (string, error) {
	data, err := json.MarshalIndent(node.GrammarNode().Grammar(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode grammar: %w", err)
	}
	return string(data), nil
}

// ToYAML encodes a node's projection as YAML text.
func ToYAML(node Grammarer) (string, error) {
	data, err := yaml.Marshal(node.GrammarNode().Grammar())
	if err != nil {
		return "", fmt.Errorf("failed to encode grammar: %w", err)
	}
	return string(data), nil
}

// WriteJSON encodes a node's projection and writes it to the destination
// URL (a plain file path included).
func WriteJSON(ctx context.Context, node Grammarer, URL string) error {
	text, err := ToJSON(node)
	if err != nil {
		return err
	}
	fs := afs.New()
	if err := fs.Upload(ctx, URL, 0644, bytes.NewReader([]byte(text))); err != nil {
		return fmt.Errorf("failed to write grammar to %s: %w", URL, err)
	}
	return nil
}
