package search

// Segment is a run of display text, highlighted when its runes were matched
// by the query subsequence.
type Segment struct {
	Text      string `json:"text"`
	Highlight bool   `json:"highlight"`
}

// Highlight splits text into segments, tagging the runes matched by the same
// subsequence walk used for filtering. Adjacent runes with the same state are
// merged; concatenating all segments always reproduces text exactly. An empty
// query returns text as a single plain segment.
func Highlight(text, query string) []Segment {
	if query == "" || text == "" {
		return []Segment{{Text: text}}
	}

	runes := []rune(text)
	lower := lowerRunes(text)
	q := lowerRunes(query)

	var segments []Segment
	var current []rune
	currentHL := false
	flush := func() {
		if len(current) > 0 {
			segments = append(segments, Segment{Text: string(current), Highlight: currentHL})
			current = current[:0]
		}
	}

	qi := 0
	for i, r := range runes {
		hl := qi < len(q) && lower[i] == q[qi]
		if hl {
			qi++
		}
		if hl != currentHL {
			flush()
			currentHL = hl
		}
		current = append(current, r)
	}
	flush()

	return segments
}
