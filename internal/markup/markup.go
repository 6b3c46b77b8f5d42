// Package markup renders the short markdown snippets carried by content records.
package markup

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	g "maragu.dev/gomponents"
)

// md escapes raw HTML in the source; content files are never trusted to
// inject markup.
var md = goldmark.New(
	goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
)

// HTML converts a markdown snippet to an HTML string.
func HTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// Node renders source as a gomponents node. Blank input renders nothing and a
// conversion failure falls back to the escaped source text.
func Node(source string) g.Node {
	if strings.TrimSpace(source) == "" {
		return nil
	}
	out, err := HTML(source)
	if err != nil {
		return g.Text(source)
	}
	return g.Raw(out)
}
