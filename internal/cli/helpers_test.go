package cli

import (
	"fmt"
	"testing"

	"github.com/aidanlsb/quill/internal/catalog"
)

func TestCliWarningsAssignsCodes(t *testing.T) {
	warnings := []catalog.Warning{
		{Path: "bad.md", Message: "invalid frontmatter", Fields: []string{"date", "title"}},
		{Path: "private", Message: "skipped unreadable directory"},
	}

	got := cliWarnings(warnings)
	if len(got) != 2 {
		t.Fatalf("got %d warnings, want 2", len(got))
	}
	if got[0].Code != WarnInvalidFrontmatter {
		t.Errorf("warning 0 code = %s, want %s", got[0].Code, WarnInvalidFrontmatter)
	}
	if got[1].Code != WarnSkippedPath {
		t.Errorf("warning 1 code = %s, want %s", got[1].Code, WarnSkippedPath)
	}
	if got[0].Path != "bad.md" || len(got[0].Fields) != 2 {
		t.Errorf("warning 0 lost detail: %+v", got[0])
	}

	if cliWarnings(nil) != nil {
		t.Error("expected nil for no warnings")
	}
}

func TestBuildErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"slug collision", fmt.Errorf("build: %w", catalog.ErrDuplicateSlug), ErrSlugCollision},
		{"missing root", fmt.Errorf("build: %w", catalog.ErrRootUnreadable), ErrContentNotFound},
		{"anything else", fmt.Errorf("disk on fire"), ErrInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildErrorCode(tt.err); got != tt.want {
				t.Errorf("buildErrorCode(%v) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}
