package parse

import (
	"go/ast"
	"go/types"
)

// tailIdent extracts the rightmost [ast.Ident] from the expression.
//
//	Red
//	^^^
//	colors.Red
//	       ^^^
//	transmute.EnumAlias[Color, uint8]
//	          ^^^^^^^^^
func tailIdent(expr ast.Expr) (*ast.Ident, bool) {
	expr = ast.Unparen(expr)
	switch expr := expr.(type) {
	case *ast.Ident:
		return expr, true
	case *ast.SelectorExpr:
		return tailIdent(expr.Sel)
	case *ast.IndexExpr:
		return tailIdent(expr.X)
	case *ast.IndexListExpr:
		return tailIdent(expr.X)
	}
	return nil, false
}

// typeArgs returns the type arguments the called function was instantiated
// with. It returns nil if the function is not generic.
func typeArgs(info *types.Info, call *ast.CallExpr) *types.TypeList {
	id, ok := tailIdent(call.Fun)
	if !ok {
		return nil
	}
	inst, ok := info.Instances[id]
	if !ok {
		return nil
	}
	return inst.TypeArgs
}

// hasExplicitTypeArgs reports whether the call spells out its type arguments
// instead of inferring them.
func hasExplicitTypeArgs(call *ast.CallExpr) bool {
	switch ast.Unparen(call.Fun).(type) {
	case *ast.IndexExpr, *ast.IndexListExpr:
		return true
	}
	return false
}
