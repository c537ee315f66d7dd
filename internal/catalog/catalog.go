// Package catalog builds and queries the full set of posts for a site.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aidanlsb/quill/internal/post"
)

// ErrDuplicateSlug indicates two documents derived the same slug. The slug is
// the catalog key and the URL, so this fails the build.
var ErrDuplicateSlug = errors.New("duplicate slug")

// Catalog is the sorted collection of documents for one build. It is
// constructed once and read-only afterwards; every query derives its result
// from the stored slice.
type Catalog struct {
	posts  []*post.Document
	bySlug map[string]*post.Document
}

// New builds a catalog from documents, sorting newest first. The sort is
// stable, so documents sharing a date keep their encounter order. Duplicate
// slugs are an error: the slug is the catalog key and the URL.
func New(posts []*post.Document) (*Catalog, error) {
	sorted := make([]*post.Document, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	bySlug := make(map[string]*post.Document, len(sorted))
	for _, d := range sorted {
		if prev, ok := bySlug[d.Slug]; ok {
			return nil, fmt.Errorf("%w %q: %s and %s", ErrDuplicateSlug, d.Slug, prev.FilePath, d.FilePath)
		}
		bySlug[d.Slug] = d
	}

	return &Catalog{posts: sorted, bySlug: bySlug}, nil
}

// Posts returns all documents, newest first.
func (c *Catalog) Posts() []*post.Document {
	return c.posts
}

// Len returns the number of documents.
func (c *Catalog) Len() int {
	return len(c.posts)
}

// GetBySlug returns the document for slug, or nil when unknown.
func (c *Catalog) GetBySlug(slug string) *post.Document {
	return c.bySlug[slug]
}

// ListByTag returns documents carrying tag exactly, newest first.
func (c *Catalog) ListByTag(tag string) []*post.Document {
	var out []*post.Document
	for _, d := range c.posts {
		if d.HasTag(tag) {
			out = append(out, d)
		}
	}
	return out
}

// ListByCategory returns documents whose category matches exactly, newest first.
func (c *Catalog) ListByCategory(category string) []*post.Document {
	var out []*post.Document
	for _, d := range c.posts {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

// NameCount pairs a tag or category name with how many documents carry it.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Tags returns every distinct tag with its document count, most used first,
// name order on ties.
func (c *Catalog) Tags() []NameCount {
	counts := make(map[string]int)
	for _, d := range c.posts {
		for _, t := range d.Tags {
			counts[t]++
		}
	}
	return sortedCounts(counts)
}

// Categories returns every distinct category with its document count.
// Hierarchical categories count toward every ancestor: a post in
// "devops/docker" contributes to both "devops" and "devops/docker".
func (c *Catalog) Categories() []NameCount {
	counts := make(map[string]int)
	for _, d := range c.posts {
		if d.Category == "" {
			continue
		}
		parts := strings.Split(d.Category, "/")
		for i := range parts {
			counts[strings.Join(parts[:i+1], "/")]++
		}
	}
	return sortedCounts(counts)
}

func sortedCounts(counts map[string]int) []NameCount {
	out := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
