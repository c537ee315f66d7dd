package index

import (
	"reflect"
	"testing"
	"time"

	"github.com/aidanlsb/quill/internal/catalog"
	"github.com/aidanlsb/quill/internal/heading"
	"github.com/aidanlsb/quill/internal/post"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRebuildAndLoadCatalog(t *testing.T) {
	sitePath := t.TempDir()

	order := 2
	built, err := catalog.New([]*post.Document{
		{
			Slug: "a", Title: "Intro to Kafka", Date: day("2024-01-01"),
			Description: "d", Tags: []string{"kafka", "backend"},
			Category: "backend", Series: "kafka-basics", SeriesOrder: &order,
			ReadingTime: "2 min read", WordCount: 350, FilePath: "backend/a.md",
			RawContent: "# Intro\n\nbody",
			Headings:   []heading.Heading{{ID: "intro", Text: "Intro", Level: 1}},
		},
		{
			Slug: "b", Title: "Kafka Internals", Date: day("2024-02-01"),
			Description: "d", Tags: []string{"kafka"},
			ReadingTime: "1 min read", WordCount: 120, FilePath: "b.md",
			RawContent: "body",
		},
		// Same date as b: position must preserve the tie order.
		{
			Slug: "c", Title: "Sidecar", Date: day("2024-02-01"),
			Description: "d", ReadingTime: "1 min read", WordCount: 10,
			FilePath: "c.md", RawContent: "x",
		},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	db, err := Open(sitePath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if err := db.Rebuild(built); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	loaded, err := db.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	if loaded.Len() != built.Len() {
		t.Fatalf("loaded %d posts, want %d", loaded.Len(), built.Len())
	}
	for i, want := range built.Posts() {
		got := loaded.Posts()[i]
		if got.Slug != want.Slug {
			t.Errorf("position %d: slug %q, want %q", i, got.Slug, want.Slug)
		}
	}

	a := loaded.GetBySlug("a")
	if a == nil {
		t.Fatal("post a missing")
	}
	if !reflect.DeepEqual(a.Tags, []string{"kafka", "backend"}) {
		t.Errorf("Tags = %v", a.Tags)
	}
	if a.SeriesOrder == nil || *a.SeriesOrder != 2 {
		t.Errorf("SeriesOrder = %v", a.SeriesOrder)
	}
	if len(a.Headings) != 1 || a.Headings[0].ID != "intro" {
		t.Errorf("Headings = %+v", a.Headings)
	}
	if a.RawContent != "# Intro\n\nbody" {
		t.Errorf("RawContent = %q", a.RawContent)
	}

	b := loaded.GetBySlug("b")
	if b.SeriesOrder != nil {
		t.Errorf("absent SeriesOrder round-tripped as %v", b.SeriesOrder)
	}
}

func TestRebuildReplacesPreviousIndex(t *testing.T) {
	sitePath := t.TempDir()

	db, err := Open(sitePath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	first, _ := catalog.New([]*post.Document{
		{Slug: "old", Title: "Old", Date: day("2024-01-01"), Description: "d",
			ReadingTime: "1 min read", FilePath: "old.md"},
	})
	if err := db.Rebuild(first); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	second, _ := catalog.New([]*post.Document{
		{Slug: "new", Title: "New", Date: day("2024-02-01"), Description: "d",
			ReadingTime: "1 min read", FilePath: "new.md"},
	})
	if err := db.Rebuild(second); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	loaded, err := db.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if loaded.GetBySlug("old") != nil {
		t.Errorf("stale post survived rebuild")
	}
	if loaded.GetBySlug("new") == nil {
		t.Errorf("new post missing after rebuild")
	}
}

func TestRebuildLock(t *testing.T) {
	sitePath := t.TempDir()

	lock, err := AcquireRebuildLock(sitePath)
	if err != nil {
		t.Fatalf("AcquireRebuildLock: %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Errorf("Release: %v", err)
	}

	// Releasing twice is harmless; a released lock can be retaken.
	again, err := AcquireRebuildLock(sitePath)
	if err != nil {
		t.Fatalf("re-acquire: %v", err)
	}
	defer again.Release()
}

func TestExists(t *testing.T) {
	sitePath := t.TempDir()

	if Exists(sitePath) {
		t.Error("Exists true before any build")
	}
	db, err := Open(sitePath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	db.Close()
	if !Exists(sitePath) {
		t.Error("Exists false after Open created the database")
	}
}
