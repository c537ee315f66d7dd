// Package post defines the Document model shared by the catalog, search, and
// related-post components.
package post

import (
	"time"

	"github.com/aidanlsb/quill/internal/heading"
)

// Document is one blog post. Documents are built once per catalog scan and
// never mutated afterwards.
type Document struct {
	// Slug is the unique catalog key, derived from the filename.
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Date        time.Time `json:"date"`
	Description string `json:"description"`

	Tags        []string `json:"tags,omitempty"`
	Category    string   `json:"category,omitempty"`
	Author      string   `json:"author,omitempty"`
	CoverImage  string   `json:"cover_image,omitempty"`
	Series      string   `json:"series,omitempty"`
	SeriesOrder *int     `json:"series_order,omitempty"`

	// Derived, never authored.
	ReadingTime string            `json:"reading_time"`
	WordCount   int               `json:"word_count"`
	Headings    []heading.Heading `json:"headings,omitempty"`

	// FilePath is relative to the content root.
	FilePath string `json:"file_path"`

	// RawContent is the body as authored; HTML is the compiled body, filled
	// only when the catalog was built with a renderer.
	RawContent string `json:"-"`
	HTML       string `json:"-"`
}

// DateString returns the date in its canonical ISO form.
func (d *Document) DateString() string {
	return d.Date.Format("2006-01-02")
}

// HasTag reports whether the document carries tag exactly.
func (d *Document) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SharedTags counts tags this document has in common with other.
func (d *Document) SharedTags(other *Document) int {
	n := 0
	for _, t := range d.Tags {
		if other.HasTag(t) {
			n++
		}
	}
	return n
}
