package post

import (
	"strings"
	"testing"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", "  \n\t ", 0},
		{"simple", "one two three", 3},
		{"newlines and runs", "one\ntwo   three\n\nfour", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.body); got != tt.want {
				t.Errorf("CountWords(%q) = %d, want %d", tt.body, got, tt.want)
			}
		})
	}
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		words int
		want  string
	}{
		{0, "0 min read"},
		{1, "1 min read"},
		{200, "1 min read"},
		{201, "2 min read"},
		{1000, "5 min read"},
	}

	for _, tt := range tests {
		if got := ReadingTime(tt.words); got != tt.want {
			t.Errorf("ReadingTime(%d) = %q, want %q", tt.words, got, tt.want)
		}
	}
}

func TestSharedTags(t *testing.T) {
	a := &Document{Tags: []string{"kafka", "backend", "java"}}
	b := &Document{Tags: []string{"kafka", "java"}}
	c := &Document{}

	if got := a.SharedTags(b); got != 2 {
		t.Errorf("SharedTags = %d, want 2", got)
	}
	if got := a.SharedTags(c); got != 0 {
		t.Errorf("SharedTags with untagged = %d, want 0", got)
	}
	if !strings.HasPrefix(ReadingTime(a.WordCount), "0") {
		t.Errorf("zero-word document should read as 0 min")
	}
}
