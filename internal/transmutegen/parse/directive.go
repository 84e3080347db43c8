package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"iter"

	"golang.org/x/tools/go/packages"

	"github.com/coolCucumber-cat/transmute-guard/internal/codefmt"
	"github.com/coolCucumber-cat/transmute-guard/internal/typeinfo"
)

// Directive is an enum alias declared by transmute.EnumAlias:
//
//	var Primary = transmute.EnumAlias[Color, uint8](Red, Blue)
type Directive struct {
	// Ident is the variable the directive is assigned to. Its name becomes
	// the name of the alias type.
	Ident *ast.Ident

	// Call is the directive call.
	Call *ast.CallExpr

	// Doc and Comment are the comments of the variable. They document the
	// alias type.
	Doc     *ast.CommentGroup
	Comment *ast.CommentGroup

	// Parent is the enumeration the alias takes its members from. Repr is
	// the underlying type of Parent.
	Parent typeinfo.Type
	Repr   typeinfo.Type

	// Members are the alias members in the order they were listed.
	Members []Member

	pkg *packages.Package
}

// Member is a parent constant listed in a directive.
type Member struct {
	Const *types.Const
	Expr  ast.Expr
}

func (m Member) Object() types.Object { return m.Const }
func (m Member) Pos() token.Pos       { return m.Expr.Pos() }
func (m Member) End() token.Pos       { return m.Expr.End() }

// Name returns the name of the alias type.
func (d Directive) Name() string { return d.Ident.Name }

// Pkg returns the package where the directive is called. Directive implements
// [codefmt.Pkger] by this method.
func (d Directive) Pkg() *packages.Package { return d.pkg }

// Pos returns the token position where the directive is called. Directive
// implements [codefmt.Poser] by this method.
func (d Directive) Pos() token.Pos { return d.Call.Pos() }

// String returns a string representation of the directive. For example,
// "transmute.EnumAlias[Color, uint8]".
func (d Directive) String() string {
	return codefmt.Sprintf(d, "transmute.EnumAlias[%t, %t]", d.Parent, d.Repr)
}

// ParseDirectives parses all [Directive]s in the files tagged with
// "//go:build transmutegen". It collects all errors instead of stopping at the
// first one.
func (p *Parser) ParseDirectives() ([]Directive, error) {
	var errs error
	var dirs []Directive

	for _, file := range p.GenGoFiles() {
		for found := range p.FindDirectives(file) {
			d, err := p.parseDirective(found)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			dirs = append(dirs, d)
		}
	}

	if errs != nil {
		return nil, errs
	}
	return dirs, nil
}

// Found is a directive call assigned to a package-level variable, before it
// is parsed.
type Found struct {
	Ident   *ast.Ident
	Call    *ast.CallExpr
	Doc     *ast.CommentGroup
	Comment *ast.CommentGroup
}

// FindDirectives collects and iterates directive calls assigned to
// package-level variables. Calls nested in other expressions are not
// collected.
func (p *Parser) FindDirectives(file *ast.File) iter.Seq[Found] {
	return func(yield func(Found) bool) {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR {
				continue
			}

			for _, spec := range gen.Specs {
				val := spec.(*ast.ValueSpec)
				if len(val.Names) != len(val.Values) {
					// var a, b = f()
					continue
				}

				doc := val.Doc
				if doc == nil && !gen.Lparen.IsValid() {
					// The comment of an unparenthesized declaration belongs
					// to the declaration, not to its only spec.
					doc = gen.Doc
				}

				for i, id := range val.Names {
					call, ok := ast.Unparen(val.Values[i]).(*ast.CallExpr)
					if !ok || !p.IsDirective(call, "EnumAlias") {
						continue
					}

					if !yield(Found{Ident: id, Call: call, Doc: doc, Comment: val.Comment}) {
						return
					}
				}
			}
		}
	}
}

// parseDirective parses a [Directive] from the given AST nodes.
func (p *Parser) parseDirective(found Found) (Directive, error) {
	id, call := found.Ident, found.Call
	if id.Name == "_" {
		return Directive{}, codefmt.Errorf(p, id, "cannot assign EnumAlias to blank identifier")
	}

	targs := typeArgs(p.Pkg().TypesInfo, call)
	if !hasExplicitTypeArgs(call) || targs == nil || targs.Len() != 2 {
		return Directive{}, codefmt.Errorf(p, call, "EnumAlias needs explicit parent and representation types")
	}

	d := Directive{
		Ident:   id,
		Call:    call,
		Doc:     found.Doc,
		Comment: found.Comment,
		Parent:  typeinfo.TypeOf(targs.At(0)),
		Repr:    typeinfo.TypeOf(targs.At(1)),
		pkg:     p.Pkg(),
	}

	if !d.Parent.IsNamed() {
		return Directive{}, codefmt.Errorf(p, call, "parent %t must be a defined enum type", d.Parent)
	}
	if !d.Parent.IsInteger() {
		return Directive{}, codefmt.Errorf(p, call, "parent %t must have an integer underlying type", d.Parent)
	}

	var errs error
	if !d.Repr.Identical(d.Parent.Underlying()) {
		err := codefmt.Errorf(p, call, "representation %t does not match parent %t; want %t",
			d.Repr, d.Parent, d.Parent.Underlying())
		errs = errors.Join(errs, err)
	}

	if call.Ellipsis.IsValid() {
		err := codefmt.Errorf(p, call.Args[len(call.Args)-1], "members of %s must be listed one by one", id.Name)
		return Directive{}, errors.Join(errs, err)
	}

	for _, arg := range call.Args {
		con, err := p.ParseMember(arg, id.Name, d.Parent)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		d.Members = append(d.Members, Member{Const: con, Expr: arg})
	}

	if errs != nil {
		return Directive{}, errs
	}
	return d, nil
}
