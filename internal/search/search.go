// Package search implements fuzzy search, ranking, and match highlighting over
// the post catalog. Every call is pure: results are derived from the passed-in
// catalog and own no state.
package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/aidanlsb/quill/internal/catalog"
	"github.com/aidanlsb/quill/internal/post"
)

// FuzzyMatch reports whether every rune of query appears in text in the same
// relative order, case-insensitively. An empty query matches everything.
func FuzzyMatch(text, query string) bool {
	if query == "" {
		return true
	}
	t := lowerRunes(text)
	q := lowerRunes(query)

	qi := 0
	for i := 0; i < len(t) && qi < len(q); i++ {
		if t[i] == q[qi] {
			qi++
		}
	}
	return qi == len(q)
}

// MatchScore ranks how well text matches query. Exact matches score 100,
// prefixes 90, substrings 80. Anything else falls through to the subsequence
// walk: +2 per consecutively matched rune, +1 otherwise, normalized by
// query/text length and capped at 70. A query that is not a subsequence of
// text scores 0.
//
// The normalization formula is load-bearing: downstream ordering depends on
// its exact behavior, so do not "improve" it.
func MatchScore(text, query string) float64 {
	if query == "" {
		return 0
	}
	textLower := strings.ToLower(text)
	queryLower := strings.ToLower(query)

	if textLower == queryLower {
		return 100
	}
	if strings.HasPrefix(textLower, queryLower) {
		return 90
	}
	if strings.Contains(textLower, queryLower) {
		return 80
	}

	t := lowerRunes(text)
	q := lowerRunes(query)

	score := 0
	lastMatch := -1
	qi := 0
	for i := 0; i < len(t) && qi < len(q); i++ {
		if t[i] != q[qi] {
			continue
		}
		if lastMatch == i-1 {
			score += 2
		} else {
			score++
		}
		lastMatch = i
		qi++
	}

	if qi != len(q) {
		return 0
	}
	normalized := float64(score) * (float64(len(q)) / float64(len(t))) * 50
	if normalized > 70 {
		return 70
	}
	return normalized
}

// Filter returns the documents matching the query and tag selection, ranked.
// Tags are conjunctive: a document must carry every selected tag. With a
// non-empty query, results are ordered by score descending with catalog order
// on ties; with an empty query the catalog's date order is kept.
func Filter(c *catalog.Catalog, query string, selectedTags []string) []*post.Document {
	var out []*post.Document
	for _, d := range c.Posts() {
		if query != "" && !FuzzyMatch(d.Title, query) {
			continue
		}
		if !hasAllTags(d, selectedTags) {
			continue
		}
		out = append(out, d)
	}

	if query == "" {
		return out
	}

	scores := make(map[string]float64, len(out))
	for _, d := range out {
		scores[d.Slug] = MatchScore(d.Title, query)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i].Slug] > scores[out[j].Slug]
	})
	return out
}

func hasAllTags(d *post.Document, selected []string) bool {
	for _, tag := range selected {
		if !d.HasTag(tag) {
			return false
		}
	}
	return true
}

// lowerRunes lowercases per rune so the result is always the same length as
// the input rune count, which the subsequence walks rely on.
func lowerRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}
