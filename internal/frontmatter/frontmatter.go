// Package frontmatter parses and validates the YAML metadata block of a post.
package frontmatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the canonical date format for post frontmatter.
const DateLayout = "2006-01-02"

// Metadata is the validated frontmatter of a post.
type Metadata struct {
	Title       string
	Date        time.Time
	Description string
	Tags        []string
	Category    string
	Author      string
	CoverImage  string
	Series      string
	SeriesOrder *int
}

// FieldError describes a single invalid or missing frontmatter field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports every failing field of a metadata block. Documents
// that produce one are excluded from the catalog rather than failing the build.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Reason)
	}
	return "invalid frontmatter: " + strings.Join(parts, "; ")
}

// FieldNames returns the failing field names in a stable order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	sort.Strings(names)
	return names
}

// Bounds returns the opening and closing frontmatter line indices.
// It only detects frontmatter when the first line is '---'.
// If frontmatter is present but unclosed, endLine is -1.
func Bounds(lines []string) (startLine int, endLine int, ok bool) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return 0, -1, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return 0, i, true
		}
	}
	return 0, -1, true
}

// Parse splits the metadata block from content and validates it.
// The body is returned even on validation failure so callers can still report
// diagnostics against the right lines. A *ValidationError (reachable via
// errors.As) means the document should be skipped, not the build aborted.
func Parse(content string) (*Metadata, string, error) {
	lines := strings.Split(content, "\n")

	_, endLine, ok := Bounds(lines)
	if !ok || endLine == -1 {
		// No metadata block at all: every required field is missing.
		return nil, content, &ValidationError{Fields: []FieldError{
			{Field: "title", Reason: "required"},
			{Field: "date", Reason: "required"},
			{Field: "description", Reason: "required"},
		}}
	}

	block := strings.Join(lines[1:endLine], "\n")
	body := ""
	if endLine+1 < len(lines) {
		body = strings.Join(lines[endLine+1:], "\n")
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		return nil, body, &ValidationError{Fields: []FieldError{
			{Field: "frontmatter", Reason: fmt.Sprintf("not valid YAML: %v", err)},
		}}
	}

	meta, verr := validate(raw)
	if verr != nil {
		return nil, body, verr
	}
	return meta, body, nil
}

func validate(raw map[string]interface{}) (*Metadata, *ValidationError) {
	var fieldErrs []FieldError
	fail := func(field, reason string) {
		fieldErrs = append(fieldErrs, FieldError{Field: field, Reason: reason})
	}

	meta := &Metadata{}

	meta.Title = requireString(raw, "title", fail)
	meta.Description = requireString(raw, "description", fail)

	if v, present := raw["date"]; !present || v == nil {
		fail("date", "required")
	} else if d, ok := parseDate(v); ok {
		meta.Date = d
	} else {
		fail("date", fmt.Sprintf("not a date: %v", v))
	}

	meta.Category = optionalString(raw, "category", fail)
	meta.Author = optionalString(raw, "author", fail)
	meta.CoverImage = optionalString(raw, "coverImage", fail)
	meta.Series = optionalString(raw, "series", fail)

	if v, present := raw["tags"]; present && v != nil {
		tags, ok := stringSlice(v)
		if !ok {
			fail("tags", "must be a sequence of strings")
		}
		meta.Tags = tags
	}

	if v, present := raw["seriesOrder"]; present && v != nil {
		if n, ok := intValue(v); ok {
			meta.SeriesOrder = &n
		} else {
			fail("seriesOrder", "must be a number")
		}
	}

	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}
	return meta, nil
}

func requireString(raw map[string]interface{}, field string, fail func(field, reason string)) string {
	v, present := raw[field]
	if !present || v == nil {
		fail(field, "required")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		fail(field, "must be a string")
		return ""
	}
	if strings.TrimSpace(s) == "" {
		fail(field, "required")
		return ""
	}
	return s
}

func optionalString(raw map[string]interface{}, field string, fail func(field, reason string)) string {
	v, present := raw[field]
	if !present || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		fail(field, "must be a string")
		return ""
	}
	return s
}

// parseDate accepts the YAML-native timestamp form plus the two string layouts
// authors actually use.
func parseDate(v interface{}) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		if t, err := time.Parse(DateLayout, d); err == nil {
			return t, true
		}
		if t, err := time.Parse(time.RFC3339, d); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func stringSlice(v interface{}) ([]string, bool) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func intValue(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
