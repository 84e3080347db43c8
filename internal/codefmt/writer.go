package codefmt

import (
	"go/ast"
	"go/token"
	"go/types"
	"io"
	"maps"
	pathpkg "path"
	"slices"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// Writer writes generated code of a package and collects the imports the code
// needs. Packages are spelled by the local names they are imported with.
type Writer struct {
	w       io.Writer
	pkg     *packages.Package
	f       Formatter
	imports map[string]Import // by local name
	ns      NS
}

// Import is a package imported by generated code.
type Import struct {
	Path string
	Name string

	// Named reports whether the import spec must name the package because
	// Name differs from the last element of Path.
	Named bool
}

// NewWriter returns a [Writer] for code of pkg. Its NS is nil; see
// [Writer.WithNS].
func NewWriter(w io.Writer, pkg *packages.Package) *Writer {
	f := New(pkg)
	f.local = make(map[string]string)
	return &Writer{
		w:       w,
		pkg:     pkg,
		f:       f,
		imports: make(map[string]Import),
	}
}

// WithNS returns a Writer sharing the output and the imports of w which takes
// local names from ns.
func (w *Writer) WithNS(ns NS) *Writer {
	dup := *w
	dup.ns = ns
	return &dup
}

// Name claims a local name. See [NS.Name].
func (w *Writer) Name(name string) string {
	return w.ns.Name(name)
}

// Printf formats like [Formatter.Fprintf] and imports the packages of the
// object and type arguments. Expressions are printed as written and import
// nothing.
func (w *Writer) Printf(format string, args ...any) {
	for _, arg := range args {
		switch arg := arg.(type) {
		case types.Object:
			w.importObj(arg)
		case Objecter:
			w.importObj(arg.Object())
		case types.Type:
			w.importType(arg)
		case Typer:
			w.importType(arg.Type())
		}
	}
	_, _ = w.f.Fprintf(w.w, format, args...)
}

// Import claims a local name for the package at path and returns it. The
// package keeps the name it got first. Otherwise name is preferred, then the
// name the package is imported with by the target package, then the last
// element of path. A numbering suffix resolves conflicts with other imports
// and with package-level names.
//
//	transmute := w.Import("github.com/coolCucumber-cat/transmute-guard", "transmute")
//	w.Printf("%s.Verifying", transmute)
func (w *Writer) Import(path, name string) string {
	if local, ok := w.f.local[path]; ok {
		return local
	}

	if name == "" {
		for _, imp := range w.pkg.Types.Imports() {
			if imp.Path() == path {
				name = imp.Name()
				break
			}
		}
	}
	if name == "" {
		name = pathpkg.Base(path)
	}

	for cand := range Candidates(name) {
		if _, taken := w.imports[cand]; taken || w.pkg.Types.Scope().Lookup(cand) != nil {
			continue
		}
		w.imports[cand] = Import{Path: path, Name: cand, Named: cand != pathpkg.Base(path)}
		w.f.local[path] = cand
		return cand
	}
	panic("unreachable")
}

// SortedImports returns the imports ordered by path.
func (w *Writer) SortedImports() []Import {
	return slices.SortedFunc(maps.Values(w.imports), func(a, b Import) int {
		return strings.Compare(a.Path, b.Path)
	})
}

func (w *Writer) importObj(obj types.Object) {
	if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() == w.pkg.PkgPath {
		return
	}
	w.Import(obj.Pkg().Path(), obj.Pkg().Name())
}

func (w *Writer) importType(typ types.Type) {
	switch typ := types.Unalias(typ).(type) {
	case *types.Named:
		w.importObj(typ.Obj())
		for arg := range typ.TypeArgs().Types() {
			w.importType(arg)
		}
	case *types.Pointer:
		w.importType(typ.Elem())
	case *types.Slice:
		w.importType(typ.Elem())
	case *types.Array:
		w.importType(typ.Elem())
	case *types.Map:
		w.importType(typ.Key())
		w.importType(typ.Elem())
	case *types.Chan:
		w.importType(typ.Elem())
	}
}

// RewriteImports rewrites the package references in node, which belongs to
// the source of the target package, to the local names of w. Identifiers
// brought in by dot imports are qualified.
func RewriteImports[T ast.Node](w *Writer, node T) T {
	info := w.pkg.TypesInfo
	return astutil.Apply(node, func(c *astutil.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.SelectorExpr:
			x, ok := n.X.(*ast.Ident)
			if !ok {
				return true
			}
			pkgName, ok := info.ObjectOf(x).(*types.PkgName)
			if !ok {
				return true
			}
			c.Replace(w.qualify(pkgName.Imported(), x.NamePos, n.Sel.Name))
			return false

		case *ast.Ident:
			obj := info.ObjectOf(n)
			if obj == nil {
				return false
			}
			pkg := obj.Pkg()
			if pkg == nil || pkg.Path() == w.pkg.PkgPath || pkg.Scope().Lookup(n.Name) != obj {
				return true
			}
			c.Replace(w.qualify(pkg, n.NamePos, n.Name))
			return false
		}
		return true
	}, nil).(T)
}

func (w *Writer) qualify(pkg *types.Package, pos token.Pos, name string) *ast.SelectorExpr {
	local := w.Import(pkg.Path(), pkg.Name())
	return &ast.SelectorExpr{
		X:   &ast.Ident{NamePos: pos, Name: local},
		Sel: &ast.Ident{NamePos: pos + token.Pos(len(local)+1), Name: name},
	}
}
