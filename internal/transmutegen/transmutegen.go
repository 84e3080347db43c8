package transmutegeninternal

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/coolCucumber-cat/transmute-guard/internal/codefmt"
	"github.com/coolCucumber-cat/transmute-guard/internal/transmutegen/emit"
	"github.com/coolCucumber-cat/transmute-guard/internal/transmutegen/parse"
)

// Generator generates enum alias code for the target package. Call [Build]
// and then [Generate] to get the generated code. All potential errors are
// returned by [Build]. Once [Build] succeeds, [Generate] never fails.
type Generator struct {
	p      *parse.Parser
	ns     codefmt.NS
	buf    *bytes.Buffer
	w      *codefmt.Writer
	verify emit.Verify

	aliases []*emit.Alias
	erased  map[token.Pos]struct{}
}

// New creates a new [Generator] for the given package. If the package does
// not satisfy the requirements, an error is returned. The package must have
// its Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package, verify emit.Verify) (*Generator, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Generator{
		p:      parser,
		ns:     codefmt.NewNS(pkg.Types.Scope()),
		buf:    &buf,
		w:      codefmt.NewWriter(&buf, pkg),
		verify: verify,
		erased: make(map[token.Pos]struct{}),
	}, nil
}

// Build prepares code generation by parsing directives and building aliases.
// All potential errors are returned by this method. It must be called before
// [Generate].
func (g *Generator) Build() error {
	dirs, errs := g.p.ParseDirectives()
	errs = errors.Join(errs, g.p.Validate())
	if errs != nil {
		return errs
	}

	for _, d := range dirs {
		a, err := emit.Build(d, g.ns)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		g.aliases = append(g.aliases, a)
		g.erased[d.Call.Pos()] = struct{}{}
	}

	slices.SortFunc(g.aliases, func(a, b *emit.Alias) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})
	return errs
}

// Aliases returns the names of the aliases that [Generate] declares, in
// source order.
func (g *Generator) Aliases() []string {
	names := make([]string, len(g.aliases))
	for i, a := range g.aliases {
		names[i] = a.Name()
	}
	return names
}

// Generate generates code for the package. It must be called after [Build]
// succeeds. It returns nil if the package has no file tagged with
// "//go:build transmutegen".
func (g *Generator) Generate() []byte {
	if len(g.p.GenGoFiles()) == 0 {
		return nil
	}
	g.writeAliasCode()
	g.mergeCode()
	return g.frameCode()
}

// writeAliasCode writes the declarations of every enum alias.
func (g *Generator) writeAliasCode() {
	if len(g.aliases) == 0 {
		return
	}

	g.w.Printf("// transmutegen: enum aliases\n\n")
	for _, a := range g.aliases {
		a.WriteCode(g.w, g.ns, g.verify)
	}
}

// mergeCode copies the code of the source files tagged with
// "//go:build transmutegen" except for the directives. The generated file
// replaces those files in regular builds, so anything else they declare must
// survive.
func (g *Generator) mergeCode() {
	for _, file := range g.p.GenGoFiles() {
		name := filepath.Base(g.p.Pkg().Fset.File(file.Pos()).Name())
		first := true

		// Comments of erased specs must not be printed with what remains.
		dropped := make(map[*ast.CommentGroup]struct{})

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok && gen.Tok == token.IMPORT {
				// Required imports are collected from their usage and
				// rewritten as one import declaration group.
				continue
			}

			// Erase directives
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				spec, ok := c.Node().(*ast.ValueSpec)
				if !ok {
					return true
				}

				var names []*ast.Ident
				var values []ast.Expr
				for i := range spec.Names {
					if i >= len(spec.Values) {
						// Enum consts may not have values
						names = append(names, spec.Names[i])
						continue
					}

					if _, ok := g.erased[ast.Unparen(spec.Values[i]).Pos()]; !ok {
						names = append(names, spec.Names[i])
						values = append(values, spec.Values[i])
					}
				}

				switch {
				case len(names) == 0:
					// Input:  var ( Primary = transmute.EnumAlias[Color, uint8](Red) )
					// Output: var ()
					for _, group := range []*ast.CommentGroup{spec.Doc, spec.Comment} {
						if group != nil {
							dropped[group] = struct{}{}
						}
					}
					c.Delete()
				case len(names) != len(spec.Names):
					// Input:  var ( Primary, n = transmute.EnumAlias[Color, uint8](Red), 42 )
					// Output: var ( n = 42 )
					c.Replace(&ast.ValueSpec{
						Doc:     spec.Doc,
						Names:   names,
						Type:    spec.Type,
						Values:  values,
						Comment: spec.Comment,
					})
				}
				return false
			}, nil).(ast.Decl)

			// Skip empty declarations
			if gen, ok := decl.(*ast.GenDecl); ok && len(gen.Specs) == 0 {
				continue
			}

			if first {
				fmt.Fprintf(g.buf, "// %s:\n\n", name)
				first = false
			}

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(g.w, decl)

			comments := slices.DeleteFunc(slices.Clone(file.Comments), func(group *ast.CommentGroup) bool {
				_, ok := dropped[group]
				return ok
			})
			_ = printer.Fprint(g.buf, g.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: comments,
			})
			fmt.Fprintf(g.buf, "\n\n")
		}
	}
}

func (g *Generator) frameCode() []byte {
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !%s\n\n", parse.BuildTag)
	fmt.Fprintf(&buf, "// Code generated by %s/cmd/transmutegen%s. DO NOT EDIT.\n\n", parse.ImportPath, versionSuffix)
	fmt.Fprintf(&buf, "package %s\n\n", g.p.Pkg().Name)

	if imports := g.w.SortedImports(); len(imports) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, imp := range imports {
			if imp.Named {
				fmt.Fprintf(&buf, "%s %q\n", imp.Name, imp.Path)
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path)
			}
		}
		fmt.Fprintf(&buf, ")\n\n")
	}

	_, _ = io.Copy(&buf, g.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
