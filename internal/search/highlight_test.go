package search

import (
	"reflect"
	"strings"
	"testing"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  []Segment
	}{
		{
			name:  "empty query is one plain segment",
			text:  "Intro to Kafka",
			query: "",
			want:  []Segment{{Text: "Intro to Kafka"}},
		},
		{
			name:  "contiguous match",
			text:  "Kafka Internals",
			query: "kafka",
			want: []Segment{
				{Text: "Kafka", Highlight: true},
				{Text: " Internals"},
			},
		},
		{
			name:  "scattered match merges runs",
			text:  "Intro to Kafka",
			query: "itk",
			want: []Segment{
				{Text: "I", Highlight: true},
				{Text: "n"},
				{Text: "t", Highlight: true},
				{Text: "ro to "},
				{Text: "K", Highlight: true},
				{Text: "afka"},
			},
		},
		{
			name:  "original casing preserved",
			text:  "KAFKA",
			query: "kafka",
			want:  []Segment{{Text: "KAFKA", Highlight: true}},
		},
		{
			name:  "query longer than text highlights what it can",
			text:  "ab",
			query: "abc",
			want:  []Segment{{Text: "ab", Highlight: true}},
		},
		{
			name:  "empty text",
			text:  "",
			query: "x",
			want:  []Segment{{Text: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlight(tt.text, tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Highlight(%q, %q) = %+v, want %+v", tt.text, tt.query, got, tt.want)
			}
		})
	}
}

func TestHighlightReconstructsText(t *testing.T) {
	texts := []string{"Intro to Kafka", "카프카 시작하기", "a-b-c", ""}
	queries := []string{"", "k", "kafka", "시작", "abc", "zzz"}

	for _, text := range texts {
		for _, query := range queries {
			var b strings.Builder
			for _, seg := range Highlight(text, query) {
				b.WriteString(seg.Text)
			}
			if b.String() != text {
				t.Errorf("Highlight(%q, %q) lost characters: %q", text, query, b.String())
			}
		}
	}
}
