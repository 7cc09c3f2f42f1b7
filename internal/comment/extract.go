// Package comment turns raw documentation comments into structured content:
// Normalize strips comment-syntax markers, Parse interprets the markup tags
// (categories, code fences, templates, macros, links) in the resulting body.
package comment

import "strings"

// Normalize strips comment-syntax markers from a raw comment token sequence
// and returns a plain-text body. Each token is one comment line including
// its marker. Line-doc markers, block-doc open/continuation/close markers,
// and at most one adjacent space are removed from each line independently.
// Lines are joined with newlines and leading/trailing blank lines are
// trimmed; an all-whitespace result collapses to the empty string.
func Normalize(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}

	// Block comment tokens may span several lines in a single token.
	var lines []string
	for _, tok := range tokens {
		lines = append(lines, strings.Split(tok, "\n")...)
	}

	stripped := make([]string, 0, len(lines))
	for _, line := range lines {
		stripped = append(stripped, stripMarkers(line))
	}

	// Trim blank lines at both ends of the whole body.
	start, end := 0, len(stripped)
	for start < end && strings.TrimSpace(stripped[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(stripped[end-1]) == "" {
		end--
	}
	if start == end {
		return ""
	}
	return strings.Join(stripped[start:end], "\n")
}

// stripMarkers removes the comment marker from a single line. Content
// indentation after the marker is preserved beyond the single space that
// separates marker from text.
func stripMarkers(line string) string {
	s := strings.TrimLeft(line, " \t")

	switch {
	case strings.HasPrefix(s, "///"):
		s = trimOneSpace(s[3:])
	case strings.HasPrefix(s, "//"):
		s = trimOneSpace(s[2:])
	case strings.HasPrefix(s, "/**"):
		s = trimOneSpace(s[3:])
	case strings.HasPrefix(s, "/*"):
		s = trimOneSpace(s[2:])
	case s == "*/":
		return ""
	case strings.HasPrefix(s, "*"):
		s = trimOneSpace(s[1:])
	default:
		// No marker: the line is already bare text, keep it untouched.
		s = line
	}

	// Trailing close marker of a block comment.
	if trimmed := strings.TrimRight(s, " \t"); strings.HasSuffix(trimmed, "*/") {
		s = strings.TrimSuffix(trimmed, "*/")
		s = strings.TrimSuffix(s, " ")
	}
	return s
}

func trimOneSpace(s string) string {
	if strings.HasPrefix(s, " ") {
		return s[1:]
	}
	return s
}
