package related

import (
	"testing"
	"time"

	"github.com/aidanlsb/quill/internal/catalog"
	"github.com/aidanlsb/quill/internal/post"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func buildCatalog(t *testing.T, docs []*post.Document) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(docs)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func TestPostsScoringOrder(t *testing.T) {
	c := buildCatalog(t, []*post.Document{
		{Slug: "target", Date: day("2024-03-01"), Series: "s1", Category: "backend", Tags: []string{"java"}},
		{Slug: "x", Date: day("2024-01-01"), Series: "s1"},                                    // 30
		{Slug: "y", Date: day("2024-02-01"), Category: "backend", Tags: []string{"java"}},     // 25
		{Slug: "z", Date: day("2024-02-15"), Category: "frontend", Tags: []string{"python"}}, // 0
	})

	got := Posts(c, "target", 4)
	if len(got) != 2 {
		t.Fatalf("got %d posts, want 2 (unrelated posts excluded): %+v", len(got), got)
	}
	if got[0].Slug != "x" || got[1].Slug != "y" {
		t.Errorf("order = [%s %s], want [x y]", got[0].Slug, got[1].Slug)
	}
}

func TestPostsTieBreakByDate(t *testing.T) {
	c := buildCatalog(t, []*post.Document{
		{Slug: "target", Date: day("2024-03-01"), Category: "backend"},
		{Slug: "older", Date: day("2024-01-01"), Category: "backend"},
		{Slug: "newer", Date: day("2024-02-01"), Category: "backend"},
	})

	got := Posts(c, "target", 2)
	if len(got) != 2 || got[0].Slug != "newer" || got[1].Slug != "older" {
		t.Errorf("tie-break order wrong: %+v", got)
	}
}

func TestPostsExcludesTargetAndHonorsLimit(t *testing.T) {
	docs := []*post.Document{
		{Slug: "target", Date: day("2024-03-01"), Tags: []string{"go"}},
	}
	for _, s := range []string{"a", "b", "c", "d"} {
		docs = append(docs, &post.Document{Slug: s, Date: day("2024-01-01"), Tags: []string{"go"}})
	}
	c := buildCatalog(t, docs)

	got := Posts(c, "target", 2)
	if len(got) != 2 {
		t.Fatalf("limit not honored: got %d", len(got))
	}
	for _, d := range got {
		if d.Slug == "target" {
			t.Errorf("target included in its own related posts")
		}
	}
}

func TestPostsUnknownTarget(t *testing.T) {
	c := buildCatalog(t, []*post.Document{{Slug: "only", Date: day("2024-01-01")}})

	if got := Posts(c, "ghost", 3); got != nil {
		t.Errorf("Posts(ghost) = %+v, want nil", got)
	}
}

func TestScoreAdditive(t *testing.T) {
	target := &post.Document{Series: "s", Category: "c", Tags: []string{"a", "b", "x"}}
	candidate := &post.Document{Series: "s", Category: "c", Tags: []string{"a", "b"}}

	if got := Score(target, candidate); got != 60 {
		t.Errorf("Score = %d, want 30+20+2*5 = 60", got)
	}

	// Empty series and category never match, even when both are empty.
	if got := Score(&post.Document{}, &post.Document{}); got != 0 {
		t.Errorf("Score of empty documents = %d, want 0", got)
	}
}
