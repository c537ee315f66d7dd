package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/quill/internal/frontmatter"
	"github.com/aidanlsb/quill/internal/heading"
	"github.com/aidanlsb/quill/internal/post"
	"github.com/aidanlsb/quill/internal/render"
)

// MaxScanDepth is how many subdirectory levels below the content root are
// scanned. Two levels cover category/subcategory layouts; deeper trees are
// ignored.
const MaxScanDepth = 2

// Warning reports a document or directory that was skipped during a build.
type Warning struct {
	Path    string   `json:"path"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// Options configures a catalog build.
type Options struct {
	// Renderer, when set, fills Document.HTML with the compiled body.
	Renderer *render.Renderer
}

// Result is a built catalog plus the non-fatal problems found along the way.
type Result struct {
	Catalog  *Catalog
	Warnings []Warning
}

// Build scans root for markdown documents and assembles the catalog.
// A document with invalid frontmatter is excluded with a warning; an
// unreadable subdirectory is skipped with a warning. An unreadable root or a
// slug collision fails the whole build.
func Build(root string) (*Result, error) {
	return BuildWithOptions(root, nil)
}

// BuildWithOptions is Build with explicit options.
func BuildWithOptions(root string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}

	b := &builder{root: root, opts: opts}
	if err := b.scanDir(root, "", 0); err != nil {
		return nil, err
	}

	c, err := New(b.posts)
	if err != nil {
		return nil, err
	}
	return &Result{Catalog: c, Warnings: b.warnings}, nil
}

type builder struct {
	root     string
	opts     *Options
	posts    []*post.Document
	warnings []Warning
}

// ErrRootUnreadable indicates the content root itself could not be read.
var ErrRootUnreadable = errors.New("content root unreadable")

func (b *builder) scanDir(dir, categoryPath string, depth int) error {
	if depth > MaxScanDepth {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if depth == 0 {
			return fmt.Errorf("%w: %s: %v", ErrRootUnreadable, dir, err)
		}
		b.warn(relOrSelf(b.root, dir), fmt.Sprintf("skipped unreadable directory: %v", err), nil)
		return nil
	}

	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			sub := entry.Name()
			if categoryPath != "" {
				sub = categoryPath + "/" + entry.Name()
			}
			if err := b.scanDir(full, sub, depth+1); err != nil {
				return err
			}
			continue
		}
		if !isMarkdown(entry.Name()) {
			continue
		}
		b.addFile(full, categoryPath)
	}
	return nil
}

func (b *builder) addFile(path, categoryPath string) {
	relPath := relOrSelf(b.root, path)

	content, err := os.ReadFile(path)
	if err != nil {
		b.warn(relPath, fmt.Sprintf("skipped unreadable file: %v", err), nil)
		return
	}

	meta, body, err := frontmatter.Parse(string(content))
	if err != nil {
		var verr *frontmatter.ValidationError
		if errors.As(err, &verr) {
			b.warn(relPath, verr.Error(), verr.FieldNames())
			return
		}
		b.warn(relPath, err.Error(), nil)
		return
	}

	// Frontmatter category wins; the folder path is only a fallback.
	category := meta.Category
	if category == "" {
		category = categoryPath
	}

	words := post.CountWords(body)
	doc := &post.Document{
		Slug:        trimMarkdownExt(filepath.Base(path)),
		Title:       meta.Title,
		Date:        meta.Date,
		Description: meta.Description,
		Tags:        meta.Tags,
		Category:    category,
		Author:      meta.Author,
		CoverImage:  meta.CoverImage,
		Series:      meta.Series,
		SeriesOrder: meta.SeriesOrder,
		ReadingTime: post.ReadingTime(words),
		WordCount:   words,
		Headings:    heading.Extract(body),
		FilePath:    filepath.ToSlash(relPath),
		RawContent:  body,
	}

	if b.opts.Renderer != nil {
		html, err := b.opts.Renderer.Render(body)
		if err != nil {
			b.warn(relPath, fmt.Sprintf("failed to render body: %v", err), nil)
		} else {
			doc.HTML = html
		}
	}

	b.posts = append(b.posts, doc)
}

func (b *builder) warn(path, message string, fields []string) {
	b.warnings = append(b.warnings, Warning{Path: path, Message: message, Fields: fields})
}

func isMarkdown(name string) bool {
	return strings.HasSuffix(name, ".md") || strings.HasSuffix(name, ".mdx")
}

func trimMarkdownExt(name string) string {
	name = strings.TrimSuffix(name, ".mdx")
	return strings.TrimSuffix(name, ".md")
}

func relOrSelf(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
