// Package codefmt writes Go code and diagnostics that refer to the types,
// objects and expressions of a loaded package.
package codefmt

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

type (
	Pkger    interface{ Pkg() *packages.Package }
	Poser    interface{ Pos() token.Pos }
	Ender    interface{ End() token.Pos }
	Exprer   interface{ Expr() ast.Expr }
	Objecter interface{ Object() types.Object }
	Typer    interface{ Type() types.Type }
)

// Pos adapts pos to [Poser].
func Pos(pos token.Pos) Poser { return posOf(pos) }

type posOf token.Pos

func (p posOf) Pos() token.Pos { return token.Pos(p) }

// Formatter spells types, objects and expressions the way the source of one
// package refers to them. Objects of that package are unqualified, the others
// are qualified by their package name.
type Formatter struct {
	PkgPath   string
	Fset      *token.FileSet
	TypesInfo *types.Info

	// local overrides package names by import path.
	local map[string]string
}

// New returns the [Formatter] of pkg. A nil pkg qualifies everything.
func New(pkg *packages.Package) Formatter {
	if pkg == nil {
		return Formatter{}
	}
	return Formatter{PkgPath: pkg.PkgPath, Fset: pkg.Fset, TypesInfo: pkg.TypesInfo}
}

func formatterOf(pkger Pkger) Formatter {
	if pkger == nil {
		return Formatter{}
	}
	return New(pkger.Pkg())
}

func (f Formatter) qualifier(pkg *types.Package) string {
	if pkg.Path() == f.PkgPath {
		return ""
	}
	if name, ok := f.local[pkg.Path()]; ok {
		return name
	}
	return pkg.Name()
}

// Type spells typ, e.g. "colors.Color".
func (f Formatter) Type(typ types.Type) string {
	return types.TypeString(typ, f.qualifier)
}

// Obj spells a package-level object, e.g. "colors.ColorRed".
func (f Formatter) Obj(obj types.Object) string {
	if obj.Pkg() == nil {
		return obj.Name()
	}
	if q := f.qualifier(obj.Pkg()); q != "" {
		return q + "." + obj.Name()
	}
	return obj.Name()
}

// Expr prints expr as it is written in the source.
func (f Formatter) Expr(expr ast.Expr) string {
	var b strings.Builder
	if err := format.Node(&b, f.Fset, expr); err != nil {
		// go/printer supports every ast.Expr.
		panic(err)
	}
	return b.String()
}

// Sprintf formats like [fmt.Sprintf] with the verbs of [Formatter.Fprintf].
func (f Formatter) Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, f.wrap(args)...)
}

// Fprintf formats like [fmt.Fprintf] and adds the following verbs for the
// arguments it knows how to spell:
//
//	%o: types.Object or Objecter, e.g. "colors.ColorRed"
//	%t: types.Type or Typer, e.g. "colors.Color"
//	%c: ast.Expr or Exprer, as written in the source
//	%b: token.Pos, token.Position or Poser, as file:line:column
//
// Other verbs format the argument as [fmt.Fprintf] does.
func (f Formatter) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return fmt.Fprintf(w, format, f.wrap(args)...)
}

// FormatType is [Formatter.Type] for the package of pkger.
func FormatType(pkger Pkger, typ types.Type) string {
	return formatterOf(pkger).Type(typ)
}

// Sprintf is [Formatter.Sprintf] for the package of pkger.
func Sprintf(pkger Pkger, format string, args ...any) string {
	return formatterOf(pkger).Sprintf(format, args...)
}

// Errorf is [Formatter.Errorf] for the package of pkger.
func Errorf(pkger Pkger, poser Poser, format string, args ...any) error {
	return formatterOf(pkger).Errorf(poser, format, args...)
}

var wd, _ = os.Getwd()

// FormatPosition formats pos as file:line:column with the file name relative
// to the working directory when possible.
func FormatPosition(pos token.Position) string {
	if !pos.IsValid() {
		return "-:-"
	}

	filename := pos.Filename
	if rel, err := filepath.Rel(wd, filename); err == nil {
		filename = rel
	}
	return fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
}
