package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/coolCucumber-cat/transmute-guard/internal/codefmt"
)

// Validate checks for usages outside expected paths. It collects all errors
// instead of stopping at the first error.
//
// Directives found by [Parser.FindDirectives] are checked by
// [Parser.ParseDirectives]. This function checks the rest of the package for
// directives in unexpected places and for references to the variables that
// will be replaced by types.
func (p *Parser) Validate() error {
	found := make(map[token.Pos]struct{})
	vars := make(map[types.Object]string)
	for _, file := range p.GenGoFiles() {
		for f := range p.FindDirectives(file) {
			found[f.Call.Pos()] = struct{}{}
			if obj := p.Pkg().TypesInfo.Defs[f.Ident]; obj != nil {
				vars[obj] = f.Ident.Name
			}
		}
	}

	var errs error
	for _, file := range p.Pkg().Syntax {
		errs = errors.Join(errs, p.validateConstraint(file))
		errs = errors.Join(errs, p.validatePlacement(file, found))
	}
	errs = errors.Join(errs, p.validateUsages(vars))
	return errs
}

// validateConstraint checks if files calling directives have the
// "//go:build transmutegen" constraint. Other uses of the transmute package do
// not need it.
func (p *Parser) validateConstraint(file *ast.File) error {
	if hasGoBuildTag(file) {
		return nil
	}

	var first *ast.CallExpr
	ast.Inspect(file, func(node ast.Node) bool {
		if first != nil {
			return false
		}
		if call, ok := node.(*ast.CallExpr); ok && p.IsDirective(call, "") {
			first = call
			return false
		}
		return true
	})
	if first == nil {
		return nil
	}

	return codefmt.Errorf(p, first, `file must have "//go:build transmutegen" constraint when using EnumAlias`)
}

// validatePlacement checks that every directive call is the value of a
// package-level variable. found holds the positions of the calls which are.
func (p *Parser) validatePlacement(file *ast.File, found map[token.Pos]struct{}) error {
	if !hasGoBuildTag(file) {
		// Reported by validateConstraint
		return nil
	}

	var errs error
	var funcDepth int
	astutil.Apply(file, func(c *astutil.Cursor) bool {
		switch node := c.Node().(type) {
		case *ast.FuncDecl, *ast.FuncLit:
			funcDepth++

		case *ast.CallExpr:
			directive, ok := p.GetDirective(node)
			if !ok || !p.IsDirective(node, "") {
				return true
			}
			if _, ok := found[node.Pos()]; ok {
				return false
			}

			if funcDepth > 0 {
				err := codefmt.Errorf(p, node, "cannot declare %s inside function", directive)
				errs = errors.Join(errs, err)
				return false
			}

			err := codefmt.Errorf(p, node, "%s must be assigned to a package-level variable", directive)
			errs = errors.Join(errs, err)
			return false
		}
		return true
	}, func(c *astutil.Cursor) bool {
		switch c.Node().(type) {
		case *ast.FuncDecl, *ast.FuncLit:
			funcDepth--
		}
		return true
	})
	return errs
}

// validateUsages checks illegal references to directive variables.
//
// A directive variable becomes a type at code generation. Any reference to the
// variable will not compile after that, so it is reported here instead.
func (p *Parser) validateUsages(vars map[types.Object]string) error {
	if len(vars) == 0 {
		return nil
	}

	var errs error
	for id, obj := range p.Pkg().TypesInfo.Uses {
		name, ok := vars[obj]
		if !ok {
			continue
		}
		err := codefmt.Errorf(p, id, "cannot use %q as a value; it becomes a type at code generation", name)
		errs = errors.Join(errs, err)
	}
	return errs
}
