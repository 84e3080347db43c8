package parse

import (
	"go/ast"
	"go/types"

	"github.com/coolCucumber-cat/transmute-guard/internal/codefmt"
	"github.com/coolCucumber-cat/transmute-guard/internal/typeinfo"
)

// ParseMember resolves an argument of the EnumAlias directive declaring alias.
// A member names a constant of parent declared at package level in the
// package of parent, either plainly or qualified by its package name.
func (p *Parser) ParseMember(expr ast.Expr, alias string, parent typeinfo.Type) (*types.Const, error) {
	expr = ast.Unparen(expr)

	if !parent.IsNamed() || !parent.IsInteger() {
		panic(codefmt.Sprintf(p, "parent is not enum: %t", parent))
	}

	con, ok := p.memberObject(expr).(*types.Const)
	if !ok {
		return nil, codefmt.Errorf(p, expr, "member of %s must name a constant of %t; got %c", alias, parent, expr)
	}
	if !types.Identical(con.Type(), parent.Type()) {
		return nil, codefmt.Errorf(p, expr, "member %c of %s has type %t; want %t", expr, alias, con.Type(), parent)
	}

	// Constants of the parent type may be declared anywhere, but only those
	// beside the type are its members.
	home := parent.Pkg()
	if con.Pkg() == nil || con.Pkg().Path() != home.Path() || home.Scope().Lookup(con.Name()) != con {
		return nil, codefmt.Errorf(p, expr, "member %c of %s is declared outside package %s", expr, alias, home.Name())
	}
	return con, nil
}

// memberObject returns the object an identifier or a package-qualified
// identifier refers to. It returns nil for any other expression.
func (p *Parser) memberObject(expr ast.Expr) types.Object {
	if sel, ok := expr.(*ast.SelectorExpr); ok {
		x, ok := sel.X.(*ast.Ident)
		if !ok {
			return nil
		}
		if _, ok := p.Pkg().TypesInfo.ObjectOf(x).(*types.PkgName); !ok {
			return nil
		}
		expr = sel.Sel
	}

	id, ok := expr.(*ast.Ident)
	if !ok {
		return nil
	}
	return p.Pkg().TypesInfo.ObjectOf(id)
}
