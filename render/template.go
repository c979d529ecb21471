// Package render produces the optional companion HTML page: a static
// template referencing a serialized Vega document by relative path, for
// browser rendering via the external Vega runtime. The grammar core is
// agnostic to it.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/wrobstory/vincent/grammar"
)

// Runtime script locations referenced by the default page.
const (
	D3URL   = "http://trifacta.github.com/vega/d3.v3.min.js"
	VegaURL = "http://trifacta.github.com/vega/vega.js"
)

// DefaultPage is the built-in HTML template. Substitution is limited to
// the {{id}}, {{path}}, {{d3}}, and {{vega}} placeholders; the page
// contents are otherwise not interpreted.
const DefaultPage = `<!DOCTYPE html>
<html>
<head>
  <script src="{{d3}}"></script>
  <script src="{{vega}}"></script>
</head>
<body>
  <div id="{{id}}"></div>
  <script>
    vg.parse.spec("{{path}}", function(chart) {
      chart({el: "#{{id}}"}).update();
    });
  </script>
</body>
</html>
`

// Template substitutes a document path and a stable element id into an
// HTML page.
type Template struct {
	Page string
}

// Option configures a Template.
type Option func(*Template)

// WithPage replaces the built-in page template.
func WithPage(page string) Option {
	return func(t *Template) {
		t.Page = page
	}
}

// NewTemplate creates a template rendering the default page.
func NewTemplate(opts ...Option) *Template {
	template := &Template{Page: DefaultPage}
	for _, opt := range opts {
		opt(template)
	}
	return template
}

// Render substitutes the JSON document path into the page. The element id
// derives from the node's content fingerprint, so re-rendering an
// unchanged tree yields an identical page.
func (t *Template) Render(node grammar.Grammarer, jsonPath string) (string, error) {
	fingerprint, err := grammar.Fingerprint(node)
	if err != nil {
		return "", fmt.Errorf("failed to fingerprint grammar: %w", err)
	}
	replacer := strings.NewReplacer(
		"{{id}}", fmt.Sprintf("vis%x", fingerprint),
		"{{path}}", jsonPath,
		"{{d3}}", D3URL,
		"{{vega}}", VegaURL,
	)
	return replacer.Replace(t.Page), nil
}

// Write serializes the node to jsonURL and writes the companion page to
// htmlURL, referencing the JSON document by jsonPath (usually the relative
// path between the two).
func (t *Template) Write(ctx context.Context, node grammar.Grammarer, jsonURL, jsonPath, htmlURL string) error {
	if err := grammar.WriteJSON(ctx, node, jsonURL); err != nil {
		return err
	}
	page, err := t.Render(node, jsonPath)
	if err != nil {
		return err
	}
	fs := afs.New()
	if err := fs.Upload(ctx, htmlURL, 0644, bytes.NewReader([]byte(page))); err != nil {
		return fmt.Errorf("failed to write page to %s: %w", htmlURL, err)
	}
	return nil
}
