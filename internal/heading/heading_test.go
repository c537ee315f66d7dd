package heading

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []Heading
	}{
		{
			name: "empty document",
			body: "",
			want: nil,
		},
		{
			name: "basic levels",
			body: "# Title\n\nintro\n\n## Section\n\n### Detail\n",
			want: []Heading{
				{ID: "title", Text: "Title", Level: 1},
				{ID: "section", Text: "Section", Level: 2},
				{ID: "detail", Text: "Detail", Level: 3},
			},
		},
		{
			name: "code block excluded",
			body: "# Title\n```js\n# not a heading\n```\n## Sub",
			want: []Heading{
				{ID: "title", Text: "Title", Level: 1},
				{ID: "sub", Text: "Sub", Level: 2},
			},
		},
		{
			name: "quadruple fence with nested triple",
			body: "# Real\n````md\n```\n# still code\n```\n````\n## After",
			want: []Heading{
				{ID: "real", Text: "Real", Level: 1},
				{ID: "after", Text: "After", Level: 2},
			},
		},
		{
			name: "duplicate headings get suffixes",
			body: "## Setup\ntext\n## Setup\nmore\n## Setup\n",
			want: []Heading{
				{ID: "setup", Text: "Setup", Level: 2},
				{ID: "setup-1", Text: "Setup", Level: 2},
				{ID: "setup-2", Text: "Setup", Level: 2},
			},
		},
		{
			name: "punctuation-only heading dropped",
			body: "# !!!\n## Kept\n",
			want: []Heading{
				{ID: "kept", Text: "Kept", Level: 2},
			},
		},
		{
			name: "no space after hashes is not a heading",
			body: "#nope\n# yes\n",
			want: []Heading{
				{ID: "yes", Text: "yes", Level: 1},
			},
		},
		{
			name: "seven hashes is not a heading",
			body: "####### too deep\n###### fine\n",
			want: []Heading{
				{ID: "fine", Text: "fine", Level: 6},
			},
		},
		{
			name: "hangul heading",
			body: "## 시작하기\n",
			want: []Heading{
				{ID: "시작하기", Text: "시작하기", Level: 2},
			},
		},
		{
			name: "unclosed fence swallows the rest",
			body: "# Before\n```\n# inside\n## also inside\n",
			want: []Heading{
				{ID: "before", Text: "Before", Level: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.body)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStripFencedCodePreservesLineCount(t *testing.T) {
	body := "# Title\n```js\nconst a = 1\nconst b = 2\n```\n## Sub\n"
	stripped := stripFencedCode(body)

	if got, want := strings.Count(stripped, "\n"), strings.Count(body, "\n"); got != want {
		t.Errorf("line count changed: got %d newlines, want %d", got, want)
	}
	wantLines := []string{"# Title", "", "", "", "", "## Sub", ""}
	if got := strings.Split(stripped, "\n"); !reflect.DeepEqual(got, wantLines) {
		t.Errorf("stripped lines = %q, want %q", got, wantLines)
	}
}

func TestExtractIDsUniquePerDocument(t *testing.T) {
	body := "# A\n## A\n### A\n# B\n## A\n"
	got := Extract(body)

	seen := make(map[string]bool)
	for _, h := range got {
		if seen[h.ID] {
			t.Errorf("duplicate heading ID %q", h.ID)
		}
		seen[h.ID] = true
	}
}
