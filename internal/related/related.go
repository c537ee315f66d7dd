// Package related ranks catalog posts by affinity to a target post.
package related

import (
	"sort"

	"github.com/aidanlsb/quill/internal/catalog"
	"github.com/aidanlsb/quill/internal/post"
)

// Affinity weights. Series membership is the strongest signal, then category,
// then each shared tag.
const (
	seriesScore   = 30
	categoryScore = 20
	tagScore      = 5
)

// Posts returns up to limit documents ranked by affinity to the post with the
// given slug, newest first among equal scores. The target itself and posts
// sharing nothing with it are never included. An unknown slug yields nil.
func Posts(c *catalog.Catalog, slug string, limit int) []*post.Document {
	target := c.GetBySlug(slug)
	if target == nil || limit <= 0 {
		return nil
	}

	type scored struct {
		doc   *post.Document
		score int
	}
	var candidates []scored
	for _, d := range c.Posts() {
		if d.Slug == target.Slug {
			continue
		}
		if s := Score(target, d); s > 0 {
			candidates = append(candidates, scored{doc: d, score: s})
		}
	}

	// The catalog is already newest-first, so a stable sort on score alone
	// gives the date-descending tie-break.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]*post.Document, len(candidates))
	for i, c := range candidates {
		out[i] = c.doc
	}
	return out
}

// Score computes the additive affinity between a target and a candidate.
func Score(target, candidate *post.Document) int {
	score := 0
	if target.Series != "" && target.Series == candidate.Series {
		score += seriesScore
	}
	if target.Category != "" && target.Category == candidate.Category {
		score += categoryScore
	}
	score += tagScore * target.SharedTags(candidate)
	return score
}
