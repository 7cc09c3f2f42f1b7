package doc

// CodeBlock is a fenced code example extracted from a comment body.
type CodeBlock struct {
	// Code is the verbatim text between the fences, joined with newlines.
	Code string `json:"code"`
	// Language is the fence's trailing language token, empty when the fence
	// carried none.
	Language string `json:"language,omitempty"`
}

// DocLink is a cross-reference extracted from a comment body: either an
// inline [Name] reference or an {@img url} image tag.
type DocLink struct {
	// Text is the display text of the link.
	Text string `json:"text,omitempty"`
	// Target is the plain referenced name for inline cross-references.
	Target string `json:"target,omitempty"`
	// URL is set for image tags.
	URL string `json:"url,omitempty"`
	// Image marks links produced by {@img} tags.
	Image bool `json:"image,omitempty"`
}

// ParsedComment is the structured result of parsing one normalized comment
// body. It is a pure value: parsing the same body always yields a
// structurally identical ParsedComment.
type ParsedComment struct {
	// Description holds all non-tag lines in original order, joined with
	// newlines. Empty means no description; there is no distinct
	// empty-string state.
	Description string `json:"description,omitempty"`

	// Category and SubCategory are the last values seen for their tags.
	Category    string `json:"category,omitempty"`
	SubCategory string `json:"subCategory,omitempty"`

	// CodeBlocks lists fenced code examples in order of appearance.
	CodeBlocks []CodeBlock `json:"codeBlocks,omitempty"`

	// Links lists image tags and inline cross-references in order of
	// appearance.
	Links []DocLink `json:"links,omitempty"`

	// Macros records referenced macro names. Values are always empty:
	// resolving a macro to its template body is a consumer concern.
	Macros map[string]string `json:"macros,omitempty"`

	// Templates maps template names to their captured multi-line bodies.
	Templates map[string]string `json:"templates,omitempty"`
}

// IsZero reports whether the comment carries no documentation at all.
func (pc ParsedComment) IsZero() bool {
	return pc.Description == "" && pc.Category == "" && pc.SubCategory == "" &&
		len(pc.CodeBlocks) == 0 && len(pc.Links) == 0 &&
		len(pc.Macros) == 0 && len(pc.Templates) == 0
}
