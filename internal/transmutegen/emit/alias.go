package emit

import (
	"go/ast"
	"maps"

	"github.com/coolCucumber-cat/transmute-guard/internal/codefmt"
	"github.com/coolCucumber-cat/transmute-guard/internal/transmutegen/parse"
)

// ErrorsImportPath is the import path of the package that generated code
// reports narrowing failures with.
const ErrorsImportPath = parse.ImportPath + "/pkg/transmuteerrors"

// WriteCode writes the type of the alias and its API. ns is the namespace of
// the package. Local names are taken from copies of it, so they never shadow
// a package-level name the code refers to.
func (a *Alias) WriteCode(w *codefmt.Writer, ns codefmt.NS, verify Verify) {
	base := maps.Clone(ns)
	pkgTransmute := w.Import(parse.ImportPath, "transmute")
	pkgErrors := w.Import(ErrorsImportPath, "transmuteerrors")
	base.Reserve(pkgTransmute)
	base.Reserve(pkgErrors)
	if pkg := a.d.Parent.Pkg(); pkg != nil && pkg.Path() != a.d.Pkg().PkgPath {
		base.Reserve(w.Import(pkg.Path(), pkg.Name()))
	}

	// Every function gets its own copy of the namespace.
	fn := func() *codefmt.Writer { return w.WithNS(maps.Clone(base)) }

	a.writeType(w)
	a.writeConsts(w)
	a.writeValues(w)
	a.writeUnderlying(fn())
	a.writeAsParent(fn(), verify, pkgTransmute)
	if verify != VerifyNever {
		a.writeWidenByMatch(fn())
	}
	a.writeFromParentFunc(fn())
	a.writeFromParentMethod(fn(), pkgErrors)
	if a.stringer {
		a.writeString(fn())
	}
	a.writeGuard(w, pkgTransmute)
}

func (a *Alias) writeType(w *codefmt.Writer) {
	writeComments(w, a.d.Doc)
	w.Printf("type %s %t", a.Name(), a.d.Repr)
	if a.d.Comment != nil {
		w.Printf(" ")
		writeComments(w, a.d.Comment)
	} else {
		w.Printf("\n")
	}
	w.Printf("\n")
}

func (a *Alias) writeConsts(w *codefmt.Writer) {
	if len(a.members) == 0 {
		return
	}
	w.Printf("const (\n")
	for _, m := range a.members {
		w.Printf("%s %s = %s(%o)\n", m.name, a.Name(), a.Name(), m.Const)
	}
	w.Printf(")\n\n")
}

func (a *Alias) writeValues(w *codefmt.Writer) {
	w.Printf("// %s returns the members of %s in the order they were listed.\n", a.values, a.Name())
	w.Printf("func %s() []%s {\n", a.values, a.Name())
	w.Printf("return []%s{", a.Name())
	for i, m := range a.members {
		if i > 0 {
			w.Printf(", ")
		}
		w.Printf("%s", m.name)
	}
	w.Printf("}\n}\n\n")
}

func (a *Alias) writeUnderlying(w *codefmt.Writer) {
	v := w.Name("v")
	w.Printf("// Underlying returns the numeric representation of %s.\n", v)
	w.Printf("func (%s %s) Underlying() %t { return %t(%s) }\n\n", v, a.Name(), a.d.Repr, a.d.Repr, v)
}

func (a *Alias) writeAsParent(w *codefmt.Writer, verify Verify, pkgTransmute string) {
	v := w.Name("v")
	p := w.Name("p")
	w.Printf("// AsParent widens %s to %t. Members of %s share the discriminants of\n", v, a.d.Parent, a.Name())
	w.Printf("// the members of %t they were taken from.\n", a.d.Parent)
	w.Printf("func (%s %s) AsParent() %t {\n", v, a.Name(), a.d.Parent)

	if verify == VerifyNever {
		w.Printf("return %t(%s)\n}\n\n", a.d.Parent, v)
		return
	}

	q := w.Name("q")
	ok := w.Name("ok")
	w.Printf("%s := %t(%s)\n", p, a.d.Parent, v)
	if verify == VerifyAuto {
		w.Printf("if %s.Verifying {\n", pkgTransmute)
	}
	w.Printf("%s, %s := %s.widenByMatch()\n", q, ok, v)
	w.Printf("%s.AssertWiden(%q, %s, %s, %s, %s)\n", pkgTransmute, a.Name()+".AsParent", v, p, q, ok)
	if verify == VerifyAuto {
		w.Printf("}\n")
	}
	w.Printf("return %s\n}\n\n", p)
}

// writeWidenByMatch writes the slow widening that AsParent is checked
// against. It never reinterprets the discriminant.
func (a *Alias) writeWidenByMatch(w *codefmt.Writer) {
	v := w.Name("v")
	if len(a.members) == 0 {
		w.Printf("func (%s) widenByMatch() (%t, bool) { return 0, false }\n\n", a.Name(), a.d.Parent)
		return
	}

	w.Printf("func (%s %s) widenByMatch() (%t, bool) {\n", v, a.Name(), a.d.Parent)
	w.Printf("switch %s {\n", v)
	for _, m := range a.members {
		w.Printf("case %s:\nreturn %o, true\n", m.name, m.Const)
	}
	w.Printf("}\nreturn 0, false\n}\n\n")
}

func (a *Alias) writeFromParentFunc(w *codefmt.Writer) {
	p := w.Name("p")
	w.Printf("// %s narrows %s to %s. It reports false if %s is not a member of\n", a.fromParent, p, a.Name(), p)
	w.Printf("// %s.\n", a.Name())

	if len(a.members) == 0 {
		w.Printf("func %s(%t) (%s, bool) { return 0, false }\n\n", a.fromParent, a.d.Parent, a.Name())
		return
	}

	w.Printf("func %s(%s %t) (%s, bool) {\n", a.fromParent, p, a.d.Parent, a.Name())
	w.Printf("switch %s {\n", p)
	for _, m := range a.members {
		w.Printf("case %o:\nreturn %s, true\n", m.Const, m.name)
	}
	w.Printf("}\nreturn 0, false\n}\n\n")
}

func (a *Alias) writeFromParentMethod(w *codefmt.Writer, pkgErrors string) {
	v := w.Name("v")
	p := w.Name("p")
	n := w.Name("n")
	ok := w.Name("ok")
	w.Printf("// FromParent sets *%s to %s narrowed to %s. The error wraps\n", v, p, a.Name())
	w.Printf("// %s.ErrNotRepresentable if %s is not a member of %s.\n", pkgErrors, p, a.Name())
	w.Printf("func (%s *%s) FromParent(%s %t) error {\n", v, a.Name(), p, a.d.Parent)
	w.Printf("%s, %s := %s(%s)\n", n, ok, a.fromParent, p)
	w.Printf("if !%s {\n", ok)
	w.Printf("return %s.Narrow(%q, %q, %s)\n", pkgErrors, a.Name(), codefmt.FormatType(a.d, a.d.Parent.T), p)
	w.Printf("}\n*%s = %s\nreturn nil\n}\n\n", v, n)
}

func (a *Alias) writeString(w *codefmt.Writer) {
	v := w.Name("v")
	w.Printf("// String returns the name of the member of %t that %s stands for.\n", a.d.Parent, v)
	w.Printf("func (%s %s) String() string { return %t(%s).String() }\n\n", v, a.Name(), a.d.Parent, v)
}

func (a *Alias) writeGuard(w *codefmt.Writer, pkgTransmute string) {
	w.Printf("// %s declares that %s can be viewed as %t.\n", a.guard, a.Name(), a.d.Parent)
	w.Printf("var %s = %s.MustRegister(%s.Func(%s.Unsafe, %s.AsParent))\n\n",
		a.guard, pkgTransmute, pkgTransmute, pkgTransmute, a.Name())
}

func writeComments(w *codefmt.Writer, group *ast.CommentGroup) {
	if group == nil {
		return
	}
	for _, c := range group.List {
		w.Printf("%s\n", c.Text)
	}
}
