package post

import (
	"fmt"
	"strings"
)

// WordsPerMinute is the assumed reading speed for the reading-time estimate.
const WordsPerMinute = 200

// CountWords counts whitespace-separated words in a body.
func CountWords(body string) int {
	return len(strings.Fields(body))
}

// ReadingTime renders the human reading-time string for a word count,
// rounding minutes up.
func ReadingTime(wordCount int) string {
	minutes := (wordCount + WordsPerMinute - 1) / WordsPerMinute
	return fmt.Sprintf("%d min read", minutes)
}
