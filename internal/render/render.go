// Package render compiles markdown post bodies to HTML.
package render

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/aidanlsb/quill/internal/slugs"
)

// Renderer compiles post bodies to HTML. It is an explicit dependency: callers
// construct one and pass it where HTML output is wanted, there is no package
// singleton. The zero value is usable; the goldmark instance is built lazily
// and exactly once.
type Renderer struct {
	once sync.Once
	md   goldmark.Markdown
}

// New returns a Renderer ready for use.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) ensureInitialized() {
	r.once.Do(func() {
		r.md = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		)
	})
}

// Render converts a markdown body to HTML. Heading anchors use the same slug
// scheme as the heading extractor, so a table of contents built from extracted
// headings links into the rendered output.
func (r *Renderer) Render(body string) (string, error) {
	r.ensureInitialized()

	ctx := parser.NewContext(parser.WithIDs(newHeadingIDs()))
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf, parser.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

// headingIDs implements parser.IDs with the catalog's slug scheme, including
// the "-1", "-2" duplicate suffixes.
type headingIDs struct {
	counts map[string]int
}

func newHeadingIDs() parser.IDs {
	return &headingIDs{counts: make(map[string]int)}
}

func (ids *headingIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	id := slugs.HeadingSlug(string(value))
	if id == "" {
		if kind == ast.KindHeading {
			id = "heading"
		} else {
			id = "id"
		}
	}
	if n := ids.counts[id]; n > 0 {
		ids.counts[id] = n + 1
		return []byte(fmt.Sprintf("%s-%d", id, n))
	}
	ids.counts[id] = 1
	return []byte(id)
}

func (ids *headingIDs) Put(value []byte) {
	ids.counts[string(value)] = 1
}
