// Package slugs provides canonical slugification helpers used across Quill.
//
// Important: There are *three* slugging strategies in Quill today:
//   - Heading slugs: used for section/fragment IDs generated from markdown headings.
//     These keep word characters and Hangul, drop everything else, and turn
//     whitespace runs into single hyphens.
//   - Tag slugs: used for tag page URLs. Unlike heading slugs, punctuation is
//     replaced with hyphens rather than removed, and existing hyphens survive.
//   - Component slugs: used for filenames/path components, built on gosimple/slug.
//
// This package centralizes the strategies so their implementations are not duplicated.
package slugs

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// isSlugRune reports whether r is kept verbatim in heading and tag slugs.
// Word characters (ASCII letters, digits, underscore) plus Hangul syllables,
// which appear in post titles alongside Latin text.
func isSlugRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	case r >= 0xAC00 && r <= 0xD7A3: // Hangul syllables
		return true
	}
	return false
}

// HeadingSlug converts heading text to a URL-friendly fragment ID.
// Characters outside the slug set are dropped, whitespace runs become single
// hyphens, and leading/trailing hyphens are trimmed. Returns "" when the text
// is entirely punctuation.
func HeadingSlug(text string) string {
	var kept strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case isSlugRune(r):
			kept.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			kept.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(kept.String()), "-")
}

// TagSlug converts a tag to its URL form. Punctuation becomes a hyphen instead
// of disappearing, so "C++" and "C--" collide but neither loses its width-one
// separator the way a heading slug would.
func TagSlug(tag string) string {
	var kept strings.Builder
	for _, r := range strings.ToLower(tag) {
		switch {
		case isSlugRune(r) || r == '-':
			kept.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			kept.WriteRune(' ')
		default:
			kept.WriteRune('-')
		}
	}
	s := strings.Join(strings.Fields(kept.String()), "-")
	s = collapseHyphens(s)
	return strings.Trim(s, "-")
}

// TagFromSlug resolves a URL slug back to the authored tag, preferring an
// exact slug match over a case-insensitive one. Returns "" when no tag matches.
func TagFromSlug(slug string, tags []string) string {
	for _, tag := range tags {
		if TagSlug(tag) == slug {
			return tag
		}
	}
	for _, tag := range tags {
		if strings.EqualFold(TagSlug(tag), slug) {
			return tag
		}
	}
	return ""
}

// ComponentSlug converts a string to a URL-safe slug appropriate for file/path
// components. Strips a trailing markdown extension first.
func ComponentSlug(s string) string {
	s = strings.TrimSuffix(s, ".mdx")
	s = strings.TrimSuffix(s, ".md")
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(s, " ", "-"))
	}
	return slugged
}

func collapseHyphens(s string) string {
	var b strings.Builder
	prevHyphen := false
	for _, r := range s {
		if r == '-' {
			if prevHyphen {
				continue
			}
			prevHyphen = true
		} else {
			prevHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
