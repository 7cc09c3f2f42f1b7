package render

import (
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/docforge/docforge/pkg/doc"
)

const htmlPageTmpl = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.ProjectName}} — documentation</title>
<style>
body { font-family: sans-serif; margin: 0; display: flex; }
nav { width: 280px; padding: 1rem; border-right: 1px solid #ddd; height: 100vh; overflow-y: auto; position: sticky; top: 0; }
main { padding: 1rem 2rem; max-width: 60rem; }
pre { background: #f6f8fa; padding: 0.75rem; overflow-x: auto; }
.kind { color: #666; font-size: 0.85em; text-transform: uppercase; }
.subcat { color: #888; font-style: italic; }
h3 { margin-bottom: 0.25rem; }
</style>
</head>
<body>
<nav>
<h2>{{.ProjectName}}</h2>
{{range .Categories}}
<h3>{{.Name}}</h3>
<ul>
{{range .Entities}}<li><a href="#{{. | anchor}}">{{.}}</a></li>
{{end}}</ul>
{{end}}
<h3>All entities</h3>
<ul>
{{range .Entities}}<li><a href="#{{.Name | anchor}}">{{.Name}}</a></li>
{{end}}</ul>
</nav>
<main>
<h1>{{.ProjectName}}</h1>
<p>Generated {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}.</p>
{{range .Entities}}
<section id="{{.Name | anchor}}">
<h2>{{.Name}} <span class="kind">{{.Kind}}</span></h2>
{{if .Category}}<p>Category: {{.Category}}{{if .SubCategory}} <span class="subcat">({{.SubCategory}})</span>{{end}}</p>{{end}}
<p><small>Defined in <code>{{.File}}</code></small></p>
{{if .Description}}<p>{{.Description}}</p>{{end}}
{{if .Superclass}}<p>Extends <code>{{.Superclass}}</code></p>{{end}}
{{if .Mixins}}<p>Mixes in: <code>{{join .Mixins ", "}}</code></p>{{end}}
{{if .Interfaces}}<p>Implements: <code>{{join .Interfaces ", "}}</code></p>{{end}}
{{if .EnumValues}}<ul>{{range .EnumValues}}<li><code>{{.}}</code></li>{{end}}</ul>{{end}}
{{if .AliasedType}}<p>Alias for <code>{{.AliasedType}}</code></p>{{end}}
{{if .ExtendedType}}<p>Extension on <code>{{.ExtendedType}}</code></p>{{end}}
{{range .CodeBlocks}}<pre><code>{{.Code}}</code></pre>{{end}}
{{if .Constructors}}<h3>Constructors</h3>{{range .Constructors}}{{template "member" .}}{{end}}{{end}}
{{if .Fields}}<h3>Fields</h3>{{range .Fields}}{{template "member" .}}{{end}}{{end}}
{{if .Methods}}<h3>Methods</h3>{{range .Methods}}{{template "member" .}}{{end}}{{end}}
</section>
{{end}}
</main>
</body>
</html>
`

const htmlMemberTmpl = `<div>
<h4><code>{{.Name}}{{if .Params}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Name}} {{$p.TypeText}}{{end}}){{end}}{{if .TypeText}} {{.TypeText}}{{end}}</code></h4>
{{if .Description}}<p>{{.Description}}</p>{{end}}
{{range .CodeBlocks}}<pre><code>{{.Code}}</code></pre>{{end}}
</div>
`

var htmlPage = template.Must(template.Must(
	template.New("page").Funcs(template.FuncMap{
		"anchor": htmlAnchor,
		"join":   strings.Join,
	}).Parse(htmlPageTmpl),
).New("member").Parse(htmlMemberTmpl))

// WriteHTML renders the corpus as a single-page HTML site with category
// navigation.
func WriteHTML(dir string, c *doc.Corpus) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return htmlPage.Lookup("page").Execute(f, c)
}

func htmlAnchor(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}
