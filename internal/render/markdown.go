package render

import (
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/docforge/docforge/internal/assemble"
	"github.com/docforge/docforge/pkg/doc"
)

const markdownIndexTmpl = `# {{.ProjectName}}

Generated {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}.
{{if .Categories}}
## Categories
{{range .Categories}}
### {{.Name}}
{{range .Entities}}- [{{.}}]({{. | pagefile}})
{{end}}{{end}}{{end}}
## Entities
{{if .Classes}}
### Classes
{{range .Classes}}- [{{.Name}}]({{.Name | pagefile}})
{{end}}{{end}}{{if .Enums}}
### Enums
{{range .Enums}}- [{{.Name}}]({{.Name | pagefile}})
{{end}}{{end}}{{if .Typedefs}}
### Typedefs
{{range .Typedefs}}- [{{.Name}}]({{.Name | pagefile}})
{{end}}{{end}}{{if .Extensions}}
### Extensions
{{range .Extensions}}- [{{.Name}}]({{.Name | pagefile}})
{{end}}{{end}}`

const markdownEntityTmpl = `# {{.Name}}

*{{.Kind}}*{{if .Category}} — category: {{.Category}}{{if .SubCategory}} / {{.SubCategory}}{{end}}{{end}}

Defined in ` + "`{{.File}}`" + `.
{{if .Description}}
{{.Description}}
{{end}}{{if .Superclass}}
Extends {{.Superclass}}.
{{end}}{{if .Mixins}}
Mixes in: {{join .Mixins ", "}}.
{{end}}{{if .Interfaces}}
Implements: {{join .Interfaces ", "}}.
{{end}}{{if .EnumValues}}
## Values
{{range .EnumValues}}- ` + "`{{.}}`" + `
{{end}}{{end}}{{if .AliasedType}}
Alias for ` + "`{{.AliasedType}}`" + `.
{{end}}{{if .ExtendedType}}
Extension on ` + "`{{.ExtendedType}}`" + `.
{{end}}{{range .CodeBlocks}}
` + "```{{.Language}}\n{{.Code}}\n```" + `
{{end}}{{if .Constructors}}
## Constructors
{{range .Constructors}}{{template "member" .}}{{end}}{{end}}{{if .Fields}}
## Fields
{{range .Fields}}{{template "member" .}}{{end}}{{end}}{{if .Methods}}
## Methods
{{range .Methods}}{{template "member" .}}{{end}}{{end}}`

const markdownMemberTmpl = `
### {{.Name}}
{{if .TypeText}}
Type: ` + "`{{.TypeText}}`" + `
{{end}}{{if .Params}}
Parameters:
{{range .Params}}- ` + "`{{.Name}}`" + ` ({{.TypeText}}{{if not .Required}}, optional{{end}}{{if .DefaultValue}}, default {{.DefaultValue}}{{end}})
{{end}}{{end}}{{if .Description}}
{{.Description}}
{{end}}{{range .CodeBlocks}}
` + "```{{.Language}}\n{{.Code}}\n```" + `
{{end}}`

var markdownFuncs = template.FuncMap{
	"pagefile": func(name string) string { return assemble.SanitizeFileName(name) + ".md" },
	"join":     strings.Join,
}

var (
	mdIndex  = template.Must(template.New("index").Funcs(markdownFuncs).Parse(markdownIndexTmpl))
	mdEntity = template.Must(template.Must(
		template.New("entity").Funcs(markdownFuncs).Parse(markdownEntityTmpl),
	).New("member").Parse(markdownMemberTmpl))
)

// WriteMarkdown renders the corpus as a directory of Markdown pages: an
// index plus one page per entity.
func WriteMarkdown(dir string, c *doc.Corpus) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	if err := renderToFile(filepath.Join(dir, "index.md"), mdIndex, c); err != nil {
		return err
	}

	for _, e := range c.Entities() {
		name := assemble.SanitizeFileName(e.Name) + ".md"
		if err := renderToFile(filepath.Join(dir, name), mdEntity.Lookup("entity"), e); err != nil {
			return err
		}
	}
	return nil
}

func renderToFile(path string, tmpl *template.Template, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return tmpl.Execute(f, data)
}
