package parser

import (
	"context"
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"os"
	"strings"

	"github.com/docforge/docforge/internal/source"
)

// Provider supplies declarations from Go source files using go/parser and
// go/ast. It implements source.Provider.
type Provider struct {
	fset *token.FileSet
}

// New creates a new Provider instance. The token.FileSet is shared across
// files and safe for concurrent use.
func New() *Provider {
	return &Provider{fset: token.NewFileSet()}
}

// ParseFile parses one Go source file and maps its declarations onto the
// documentation boundary model:
//
//   - struct and interface types become class declarations; embedded struct
//     types are recorded as mixins, embedded interfaces as interfaces
//   - a defined non-struct type enumerated by a same-file typed const block
//     becomes an enum with the const names as values
//   - type aliases and other defined types become typedefs
//   - methods whose receiver type is not declared in this file are grouped
//     per receiver into an anonymous extension declaration
//   - NewX-shaped functions become constructor members of X
//
// A syntax error makes the whole file contribute nothing; the caller
// downgrades it to a warning.
func (p *Provider) ParseFile(ctx context.Context, path string) (source.FileDecls, error) {
	if err := ctx.Err(); err != nil {
		return source.FileDecls{}, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return source.FileDecls{}, fmt.Errorf("failed to read file: %w", err)
	}

	file, err := goparser.ParseFile(p.fset, path, content, goparser.ParseComments)
	if err != nil {
		return source.FileDecls{}, fmt.Errorf("syntax error: %w", err)
	}

	x := &extractor{fset: p.fset, path: path}
	return source.FileDecls{Path: path, Decls: x.extract(file)}, nil
}

// typeInfo captures one type declaration found in the first pass.
type typeInfo struct {
	spec    *ast.TypeSpec
	declDoc *ast.CommentGroup // GenDecl doc, used when the spec has none
}

type extractor struct {
	fset *token.FileSet
	path string

	types     map[string]typeInfo
	typeOrder []string

	enumValues map[string][]string

	// members keyed by owning type name, in file order
	members map[string][]source.Declaration

	// extension method sets keyed by foreign receiver type, plus
	// first-appearance order
	extensions     map[string][]source.Declaration
	extensionOrder []string
	extensionPos   map[string]int
}

func (x *extractor) extract(file *ast.File) []source.Declaration {
	x.types = make(map[string]typeInfo)
	x.enumValues = make(map[string][]string)
	x.members = make(map[string][]source.Declaration)
	x.extensions = make(map[string][]source.Declaration)
	x.extensionPos = make(map[string]int)

	x.collectTypes(file)
	x.collectEnumValues(file)
	x.collectFuncs(file)

	decls := make([]source.Declaration, 0, len(x.typeOrder)+len(x.extensionOrder))
	for _, name := range x.typeOrder {
		decls = append(decls, x.buildTypeDecl(name))
	}
	for _, recv := range x.extensionOrder {
		decls = append(decls, source.Declaration{
			Kind:         source.DeclExtension,
			ExtendedType: recv,
			File:         x.path,
			Offset:       x.extensionPos[recv],
			Members:      x.extensions[recv],
		})
	}
	return decls
}

func (x *extractor) collectTypes(file *ast.File) {
	for _, d := range file.Decls {
		gen, ok := d.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			x.types[ts.Name.Name] = typeInfo{spec: ts, declDoc: gen.Doc}
			x.typeOrder = append(x.typeOrder, ts.Name.Name)
		}
	}
}

// collectEnumValues finds typed const blocks that enumerate a same-file
// defined type. Untyped continuation specs (iota groups) inherit the type of
// the preceding spec within the same block.
func (x *extractor) collectEnumValues(file *ast.File) {
	for _, d := range file.Decls {
		gen, ok := d.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		current := ""
		for _, spec := range gen.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			if vs.Type != nil {
				current = ""
				if ident, ok := vs.Type.(*ast.Ident); ok {
					current = ident.Name
				}
			}
			if current == "" || !x.isEnumCandidate(current) {
				continue
			}
			for _, name := range vs.Names {
				if name.Name == "_" {
					continue
				}
				x.enumValues[current] = append(x.enumValues[current], name.Name)
			}
		}
	}
}

// isEnumCandidate reports whether name is a same-file defined type that is
// neither a struct nor an interface.
func (x *extractor) isEnumCandidate(name string) bool {
	info, ok := x.types[name]
	if !ok {
		return false
	}
	switch info.spec.Type.(type) {
	case *ast.StructType, *ast.InterfaceType:
		return false
	}
	return true
}

func (x *extractor) collectFuncs(file *ast.File) {
	for _, d := range file.Decls {
		fn, ok := d.(*ast.FuncDecl)
		if !ok {
			continue
		}

		if fn.Recv != nil && len(fn.Recv.List) > 0 {
			recv := receiverName(fn.Recv.List[0].Type)
			if recv == "" {
				continue
			}
			member := x.methodDecl(fn)
			if _, local := x.types[recv]; local {
				x.members[recv] = append(x.members[recv], member)
			} else {
				if _, seen := x.extensions[recv]; !seen {
					x.extensionOrder = append(x.extensionOrder, recv)
					x.extensionPos[recv] = x.offset(fn.Pos())
				}
				x.extensions[recv] = append(x.extensions[recv], member)
			}
			continue
		}

		// NewX constructors attach to their type.
		if target := strings.TrimPrefix(fn.Name.Name, "New"); target != fn.Name.Name {
			if _, local := x.types[target]; local {
				ctor := x.methodDecl(fn)
				ctor.Kind = source.DeclConstructor
				ctor.Modifiers = []string{source.ModFactory}
				x.members[target] = append(x.members[target], ctor)
			}
		}
	}
}

func (x *extractor) buildTypeDecl(name string) source.Declaration {
	info := x.types[name]
	ts := info.spec

	decl := source.Declaration{
		Name:         name,
		CommentLines: commentLines(docComment(ts.Doc, info.declDoc)),
		File:         x.path,
		Offset:       x.offset(ts.Pos()),
	}

	switch t := ts.Type.(type) {
	case *ast.StructType:
		decl.Kind = source.DeclClass
		decl.Mixins, decl.Members = x.structParts(t)
		decl.Members = append(decl.Members, x.members[name]...)

	case *ast.InterfaceType:
		decl.Kind = source.DeclClass
		decl.Modifiers = []string{source.ModAbstract}
		decl.Interfaces, decl.Members = x.interfaceParts(t)
		decl.Members = append(decl.Members, x.members[name]...)

	default:
		if values, ok := x.enumValues[name]; ok {
			decl.Kind = source.DeclEnum
			decl.EnumValues = values
		} else {
			decl.Kind = source.DeclTypedef
			decl.AliasedType = exprString(ts.Type)
		}
		decl.Members = x.members[name]
	}

	return decl
}

// structParts splits a struct's field list into embedded type names and
// named field member declarations.
func (x *extractor) structParts(st *ast.StructType) ([]string, []source.Declaration) {
	if st.Fields == nil {
		return nil, nil
	}
	var mixins []string
	var members []source.Declaration
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			mixins = append(mixins, exprString(field.Type))
			continue
		}
		for _, name := range field.Names {
			members = append(members, source.Declaration{
				Kind:         source.DeclField,
				Name:         name.Name,
				CommentLines: commentLines(field.Doc),
				TypeText:     exprString(field.Type),
				File:         x.path,
				Offset:       x.offset(field.Pos()),
			})
		}
	}
	return mixins, members
}

// interfaceParts splits an interface's method list into embedded interface
// names and method member declarations.
func (x *extractor) interfaceParts(it *ast.InterfaceType) ([]string, []source.Declaration) {
	if it.Methods == nil {
		return nil, nil
	}
	var embedded []string
	var members []source.Declaration
	for _, m := range it.Methods.List {
		if len(m.Names) == 0 {
			embedded = append(embedded, exprString(m.Type))
			continue
		}
		ft, ok := m.Type.(*ast.FuncType)
		if !ok {
			continue
		}
		members = append(members, source.Declaration{
			Kind:         source.DeclMethod,
			Name:         m.Names[0].Name,
			CommentLines: commentLines(m.Doc),
			TypeText:     resultString(ft.Results),
			Params:       buildParams(ft.Params),
			File:         x.path,
			Offset:       x.offset(m.Pos()),
		})
	}
	return embedded, members
}

func (x *extractor) methodDecl(fn *ast.FuncDecl) source.Declaration {
	return source.Declaration{
		Kind:         source.DeclMethod,
		Name:         fn.Name.Name,
		CommentLines: commentLines(fn.Doc),
		TypeText:     resultString(fn.Type.Results),
		Params:       buildParams(fn.Type.Params),
		File:         x.path,
		Offset:       x.offset(fn.Pos()),
	}
}

func (x *extractor) offset(pos token.Pos) int {
	return x.fset.Position(pos).Offset
}

// docComment prefers the spec's own doc over the surrounding GenDecl's.
func docComment(specDoc, declDoc *ast.CommentGroup) *ast.CommentGroup {
	if specDoc != nil {
		return specDoc
	}
	return declDoc
}

// commentLines returns the raw comment token lines including their markers.
// Block comments contribute one line per physical line.
func commentLines(cg *ast.CommentGroup) []string {
	if cg == nil {
		return nil
	}
	var lines []string
	for _, c := range cg.List {
		lines = append(lines, strings.Split(c.Text, "\n")...)
	}
	return lines
}

func receiverName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return receiverName(t.X)
	case *ast.Ident:
		return t.Name
	case *ast.IndexExpr:
		return receiverName(t.X)
	case *ast.IndexListExpr:
		return receiverName(t.X)
	}
	return ""
}

func buildParams(fl *ast.FieldList) []source.Param {
	if fl == nil || len(fl.List) == 0 {
		return nil
	}
	var params []source.Param
	for _, field := range fl.List {
		_, variadic := field.Type.(*ast.Ellipsis)
		typeText := exprString(field.Type)
		if len(field.Names) == 0 {
			params = append(params, source.Param{TypeText: typeText, Required: !variadic})
			continue
		}
		for _, name := range field.Names {
			params = append(params, source.Param{
				Name:     name.Name,
				TypeText: typeText,
				Required: !variadic,
			})
		}
	}
	return params
}

// resultString renders a result list the way signatures print it: empty for
// none, bare for one, parenthesized for several.
func resultString(results *ast.FieldList) string {
	if results == nil || results.NumFields() == 0 {
		return ""
	}
	var parts []string
	for _, field := range results.List {
		typeText := exprString(field.Type)
		n := len(field.Names)
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			parts = append(parts, typeText)
		}
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// exprString converts a type expression to its text form. All types are
// opaque text at the documentation boundary.
func exprString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + exprString(t.X)
	case *ast.ArrayType:
		return "[]" + exprString(t.Elt)
	case *ast.MapType:
		return fmt.Sprintf("map[%s]%s", exprString(t.Key), exprString(t.Value))
	case *ast.ChanType:
		return "chan " + exprString(t.Value)
	case *ast.FuncType:
		return "func(...)"
	case *ast.InterfaceType:
		if t.Methods == nil || len(t.Methods.List) == 0 {
			return "interface{}"
		}
		return "interface{...}"
	case *ast.StructType:
		return "struct{...}"
	case *ast.SelectorExpr:
		return exprString(t.X) + "." + t.Sel.Name
	case *ast.Ellipsis:
		return "..." + exprString(t.Elt)
	case *ast.IndexExpr:
		return exprString(t.X) + "[" + exprString(t.Index) + "]"
	case *ast.IndexListExpr:
		var args []string
		for _, a := range t.Indices {
			args = append(args, exprString(a))
		}
		return exprString(t.X) + "[" + strings.Join(args, ", ") + "]"
	case nil:
		return ""
	default:
		return "..."
	}
}
