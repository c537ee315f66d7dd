package search

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

func kafkaCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]*post.Document{
		{Slug: "a", Title: "Intro to Kafka", Date: day("2024-01-01"), Tags: []string{"kafka", "backend"}},
		{Slug: "b", Title: "Kafka Internals", Date: day("2024-02-01"), Tags: []string{"kafka"}},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		text  string
		query string
		want  bool
	}{
		{"Intro to Kafka", "", true},
		{"Intro to Kafka", "kafka", true},
		{"Intro to Kafka", "ITK", true}, // subsequence, case-insensitive
		{"Intro to Kafka", "itak", true},
		{"Intro to Kafka", "kfk", true},
		{"Intro to Kafka", "kaffka", false},
		{"Intro to Kafka", "xyz", false},
		{"", "a", false},
		{"", "", true},
	}

	for _, tt := range tests {
		if got := FuzzyMatch(tt.text, tt.query); got != tt.want {
			t.Errorf("FuzzyMatch(%q, %q) = %v, want %v", tt.text, tt.query, got, tt.want)
		}
	}
}

func TestMatchScoreTiers(t *testing.T) {
	tests := []struct {
		text  string
		query string
		want  float64
	}{
		{"Kafka", "kafka", 100},
		{"Kafka Internals", "kafka", 90},
		{"Intro to Kafka", "kafka", 80},
		{"Intro to Kafka", "", 0},
		{"Intro to Kafka", "xyz", 0},
	}

	for _, tt := range tests {
		if got := MatchScore(tt.text, tt.query); got != tt.want {
			t.Errorf("MatchScore(%q, %q) = %v, want %v", tt.text, tt.query, got, tt.want)
		}
	}
}

func TestMatchScoreFuzzyNormalization(t *testing.T) {
	// "itk" against "Intro to Kafka": matches at positions 0, 2, 9. The match
	// at position 0 gets the consecutive bonus (the walk starts with
	// lastMatch = -1), the others are sparse: raw 2+1+1 = 4.
	got := MatchScore("Intro to Kafka", "itk")
	want := 4.0 * (3.0 / 14.0) * 50.0
	if got != want {
		t.Errorf("MatchScore = %v, want %v", got, want)
	}

	// A short text with a dense subsequence hits the 70 cap.
	if got := MatchScore("abcd", "abd"); got != 70 {
		t.Errorf("capped score = %v, want 70", got)
	}
}

func TestMatchScoreConsecutiveBonus(t *testing.T) {
	// "ab" matched sparsely (raw 3) vs consecutively (raw 4) in texts of the
	// same length, both far from the cap, so the dense match ranks higher.
	sparse := MatchScore("axxxxxxxbx", "ab")
	dense := MatchScore("abxxxxxxxx", "ab")
	if dense <= sparse {
		t.Errorf("consecutive match %v should outscore sparse match %v", dense, sparse)
	}
}

func TestFilterRankingScenario(t *testing.T) {
	c := kafkaCatalog(t)

	got := Filter(c, "kafka", nil)
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	// "Kafka Internals" is a prefix match (90), "Intro to Kafka" only a
	// substring match (80).
	if got[0].Slug != "b" || got[1].Slug != "a" {
		t.Errorf("order = [%s %s], want [b a]", got[0].Slug, got[1].Slug)
	}
}

func TestFilterConjunctiveTags(t *testing.T) {
	c := kafkaCatalog(t)

	got := Filter(c, "", []string{"kafka", "backend"})
	if len(got) != 1 || got[0].Slug != "a" {
		t.Errorf("Filter tags = %+v, want only a", got)
	}

	// A document with no tags fails as soon as any tag is selected.
	c2, err := catalog.New([]*post.Document{{Slug: "untagged", Title: "X", Date: day("2024-01-01")}})
	if err != nil {
		t.Fatal(err)
	}
	if got := Filter(c2, "", []string{"kafka"}); len(got) != 0 {
		t.Errorf("untagged document passed a tag filter: %+v", got)
	}
}

func TestFilterEmptyQueryKeepsDateOrder(t *testing.T) {
	c := kafkaCatalog(t)

	got := Filter(c, "", nil)
	if len(got) != 2 || got[0].Slug != "b" || got[1].Slug != "a" {
		t.Errorf("empty query order = %+v, want [b a]", got)
	}
}

func TestFilterExcludesNonSubsequence(t *testing.T) {
	c := kafkaCatalog(t)

	if got := Filter(c, "zzz", nil); len(got) != 0 {
		t.Errorf("impossible query returned %+v", got)
	}
}

func TestSubstringImpliesSubsequence(t *testing.T) {
	// Any substring match is necessarily a subsequence match, so every
	// document in the 80+ tiers passes the filter.
	titles := []string{"Intro to Kafka", "Kafka Internals", "kafka"}
	for _, title := range titles {
		if MatchScore(title, "kafka") < 80 {
			t.Fatalf("setup: %q should be a substring match", title)
		}
		if !FuzzyMatch(title, "kafka") {
			t.Errorf("substring match on %q not matched by subsequence filter", title)
		}
	}
}

func TestFilterScoredResultsAlwaysPositive(t *testing.T) {
	c := kafkaCatalog(t)

	for _, d := range Filter(c, "ik", nil) {
		if MatchScore(d.Title, "ik") <= 0 {
			t.Errorf("filtered-in document %q has non-positive score", d.Title)
		}
	}
}
