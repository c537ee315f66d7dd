// Package heading extracts table-of-contents headings from markdown bodies.
package heading

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aidanlsb/quill/internal/slugs"
)

// Heading is one entry of a post's table of contents.
type Heading struct {
	// ID is the URL-safe anchor, unique within a single document.
	ID string `json:"id"`
	// Text is the heading content, trimmed.
	Text string `json:"text"`
	// Level is the heading depth (1-6).
	Level int `json:"level"`
}

var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// Extract scans body text for headings and assigns each a unique slug ID.
// Fenced code regions are ignored, so a "# comment" inside a code block never
// becomes a heading. Duplicate slugs get "-1", "-2", ... suffixes in order of
// appearance; headings that slug to nothing are dropped.
func Extract(body string) []Heading {
	if body == "" {
		return nil
	}

	var headings []Heading
	idCounts := make(map[string]int)

	for _, line := range strings.Split(stripFencedCode(body), "\n") {
		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		level := len(m[1])
		text := strings.TrimSpace(m[2])

		id := slugs.HeadingSlug(text)
		if id == "" {
			continue
		}
		if n := idCounts[id]; n > 0 {
			idCounts[id] = n + 1
			id = fmt.Sprintf("%s-%d", id, n)
		} else {
			idCounts[id] = 1
		}

		headings = append(headings, Heading{ID: id, Text: text, Level: level})
	}

	return headings
}

// stripFencedCode blanks out backtick-fenced regions, fence markers included.
// Each removed line becomes an empty line so line numbers still correspond to
// the original body. An opener of n backticks (n >= 3) is only closed by a
// fence of at least n, which is what lets ```-examples nest inside ````-blocks.
func stripFencedCode(body string) string {
	lines := strings.Split(body, "\n")

	inFence := false
	fenceLen := 0
	for i, line := range lines {
		n := leadingBackticks(line)
		if inFence {
			lines[i] = ""
			if n >= fenceLen {
				inFence = false
			}
			continue
		}
		if n >= 3 {
			inFence = true
			fenceLen = n
			lines[i] = ""
		}
	}

	return strings.Join(lines, "\n")
}

func leadingBackticks(line string) int {
	s := strings.TrimLeft(line, " \t")
	n := 0
	for n < len(s) && s[n] == '`' {
		n++
	}
	return n
}
