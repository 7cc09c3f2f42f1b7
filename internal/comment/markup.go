package comment

import (
	"regexp"
	"strings"

	"github.com/docforge/docforge/pkg/doc"
)

const fenceMarker = "```"

var (
	// Tag values may be brace-delimited ({@category Foo}) or bare
	// (@category Foo). Either form consumes the whole line.
	categoryRe    = regexp.MustCompile(`^\s*(?:\{@category\s+([^}]*?)\s*\}|@category\s+(.+?))\s*$`)
	subCategoryRe = regexp.MustCompile(`^\s*(?:\{@subCategory\s+([^}]*?)\s*\}|@subCategory\s+(.+?))\s*$`)

	macroRe         = regexp.MustCompile(`\{@macro\s+([^}\s]+)\s*\}`)
	imgRe           = regexp.MustCompile(`\{@img\s+([^}\s]+)\s*\}`)
	templateOpenRe  = regexp.MustCompile(`\{@template\s+([^}]+?)\s*\}`)
	templateCloseRe = regexp.MustCompile(`\{@endtemplate\s*\}`)

	linkRe = regexp.MustCompile(`\[([^\[\]]+)\]`)
)

// Parse scans a normalized comment body and returns its structured
// fragments. The empty body is not an error: it yields a ParsedComment with
// every field absent.
//
// The scan is a single forward pass over the body's lines. Block constructs
// (code fences, template blocks) are greedy to their terminator: once
// opened, every line is captured literally until the closing line or
// end-of-input, so tag patterns inside them are never interpreted.
func Parse(body string) doc.ParsedComment {
	var pc doc.ParsedComment
	if strings.TrimSpace(body) == "" {
		return pc
	}

	lines := strings.Split(body, "\n")
	var desc []string

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		// Code fence: capture everything up to the closing fence. The
		// closing line must be exactly the fence marker; an unterminated
		// fence consumes the rest of the input.
		if strings.HasPrefix(trimmed, fenceMarker) {
			lang := strings.TrimSpace(strings.TrimPrefix(trimmed, fenceMarker))
			var code []string
			for i++; i < len(lines); i++ {
				if strings.TrimSpace(lines[i]) == fenceMarker {
					break
				}
				code = append(code, lines[i])
			}
			pc.CodeBlocks = append(pc.CodeBlocks, doc.CodeBlock{
				Code:     strings.Join(code, "\n"),
				Language: lang,
			})
			continue
		}

		// Template block: capture verbatim until {@endtemplate} or
		// end-of-input. Open and close lines are consumed.
		if m := templateOpenRe.FindStringSubmatch(line); m != nil {
			var captured []string
			for i++; i < len(lines); i++ {
				if templateCloseRe.MatchString(lines[i]) {
					break
				}
				captured = append(captured, lines[i])
			}
			if pc.Templates == nil {
				pc.Templates = make(map[string]string)
			}
			pc.Templates[m[1]] = strings.Join(captured, "\n")
			continue
		}

		// Category tags are last-write-wins when repeated.
		if m := categoryRe.FindStringSubmatch(line); m != nil {
			pc.Category = firstMatch(m[1], m[2])
			continue
		}
		if m := subCategoryRe.FindStringSubmatch(line); m != nil {
			pc.SubCategory = firstMatch(m[1], m[2])
			continue
		}

		// Image tags are stripped first; the remainder stays in play for
		// the macro rule, link extraction, and the description.
		rest := line
		if imgRe.MatchString(rest) {
			for _, m := range imgRe.FindAllStringSubmatch(rest, -1) {
				pc.Links = append(pc.Links, doc.DocLink{URL: m[1], Image: true})
			}
			rest = imgRe.ReplaceAllString(rest, "")
		}

		// Macro references record presence only; body resolution belongs
		// to consumers. The line never reaches the description.
		if m := macroRe.FindStringSubmatch(rest); m != nil {
			if pc.Macros == nil {
				pc.Macros = make(map[string]string)
			}
			pc.Macros[m[1]] = ""
			continue
		}

		// Inline [Name] cross-references live inside descriptive prose:
		// they are extracted without consuming the line.
		for _, m := range linkRe.FindAllStringSubmatch(rest, -1) {
			pc.Links = append(pc.Links, doc.DocLink{Text: m[1], Target: m[1]})
		}

		desc = append(desc, rest)
	}

	pc.Description = joinDescription(desc)
	return pc
}

// joinDescription joins description lines, trimming blank lines at both
// ends. An all-blank line set collapses to the empty string so that empty
// and absent stay the same state.
func joinDescription(lines []string) string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	if start == end {
		return ""
	}
	return strings.Join(lines[start:end], "\n")
}

func firstMatch(groups ...string) string {
	for _, g := range groups {
		if g != "" {
			return g
		}
	}
	return ""
}
