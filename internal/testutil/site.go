// Package testutil provides reusable helpers for Quill tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestSite builds a temporary content tree for catalog tests.
type TestSite struct {
	// Root is the content root passed to the catalog builder.
	Root string

	t     *testing.T
	files map[string]string
}

// NewTestSite creates a test site builder. Call Build to materialize it.
func NewTestSite(t *testing.T) *TestSite {
	t.Helper()
	return &TestSite{
		t:     t,
		files: make(map[string]string),
	}
}

// WithPost adds a markdown file, path relative to the content root.
func (s *TestSite) WithPost(path, content string) *TestSite {
	s.files[path] = content
	return s
}

// Build writes all configured files under a temp directory.
func (s *TestSite) Build() *TestSite {
	s.t.Helper()

	s.Root = s.t.TempDir()
	for path, content := range s.files {
		full := filepath.Join(s.Root, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			s.t.Fatalf("failed to create directory for %s: %v", path, err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			s.t.Fatalf("failed to write %s: %v", path, err)
		}
	}
	return s
}

// Post renders a minimal valid post with the given frontmatter lines and body.
func Post(frontmatter, body string) string {
	return "---\n" + frontmatter + "\n---\n\n" + body
}
