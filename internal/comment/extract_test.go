package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize(nil))
	assert.Equal(t, "", Normalize([]string{}))
}

func TestNormalize_LineDocMarkers(t *testing.T) {
	body := Normalize([]string{
		"/// Does the thing.",
		"///",
		"/// See elsewhere.",
	})
	assert.Equal(t, "Does the thing.\n\nSee elsewhere.", body)
}

func TestNormalize_PlainLineComments(t *testing.T) {
	body := Normalize([]string{
		"// First line",
		"// Second line",
	})
	assert.Equal(t, "First line\nSecond line", body)
}

func TestNormalize_BlockComment(t *testing.T) {
	body := Normalize([]string{
		"/** Summary line.",
		" * Continuation line.",
		" */",
	})
	assert.Equal(t, "Summary line.\nContinuation line.", body)
}

func TestNormalize_BlockCommentSingleToken(t *testing.T) {
	// Block comments may arrive as one token spanning several lines.
	body := Normalize([]string{"/* one\n * two\n */"})
	assert.Equal(t, "one\ntwo", body)
}

func TestNormalize_TrailingCloseMarker(t *testing.T) {
	body := Normalize([]string{"/* compact */"})
	assert.Equal(t, "compact", body)
}

func TestNormalize_PreservesContentIndentation(t *testing.T) {
	// Only the single space after the marker is removed; deeper
	// indentation is content (code examples rely on it).
	body := Normalize([]string{
		"/// ```",
		"///   indented()",
		"/// ```",
	})
	assert.Equal(t, "```\n  indented()\n```", body)
}

func TestNormalize_TrimsBlankEdges(t *testing.T) {
	body := Normalize([]string{
		"///",
		"/// middle",
		"///",
		"///",
	})
	assert.Equal(t, "middle", body)
}

func TestNormalize_AllWhitespaceIsAbsent(t *testing.T) {
	body := Normalize([]string{"///", "//  ", "/*  */"})
	assert.Equal(t, "", body)
}

func TestNormalize_UnmarkedLineKeptUntouched(t *testing.T) {
	body := Normalize([]string{"  already bare  "})
	assert.Equal(t, "  already bare  ", body)
}
