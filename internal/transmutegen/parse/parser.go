package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// ImportPath is the import path of the package declaring the directives.
const ImportPath = "github.com/coolCucumber-cat/transmute-guard"

// BuildTag is the build tag of files holding directives.
const BuildTag = "transmutegen"

// IsTransmuteImport reports whether path is the import path of the transmute
// package, possibly vendored.
func IsTransmuteImport(path string) bool {
	// Source code from "wire/internal/wire/parse.go".
	const vendorPart = "vendor/"
	if i := strings.LastIndex(path, vendorPart); i != -1 && (i == 0 || path[i-1] == '/') {
		path = path[i+len(vendorPart):]
	}
	return path == ImportPath
}

// Parser parses an AST of the underlying package to collect enum alias
// directives.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

// GetDirective returns the name of the directive function if the call
// expression calls a function of the transmute package. Otherwise, it returns
// false. Calls of non-directive functions such as transmute.Bitcast are
// reported too; use [Parser.IsDirective] to tell them apart.
func (p *Parser) GetDirective(call *ast.CallExpr) (string, bool) {
	callee := typeutil.Callee(p.Pkg().TypesInfo, call)
	if callee == nil {
		return "", false
	}

	pkg := callee.Pkg()
	if pkg == nil {
		// Built-in functions like panic()
		return "", false
	}

	if !IsTransmuteImport(pkg.Path()) {
		return "", false
	}

	return callee.Name(), true
}

// IsDirective checks if the call expression is a directive with the given
// name. If name is empty, it checks if the call is any directive.
func (p *Parser) IsDirective(call *ast.CallExpr, name string) bool {
	calleeName, ok := p.GetDirective(call)
	if !ok {
		return false
	}

	if _, ok := directives[calleeName]; !ok {
		return false
	}

	if name == "" {
		return true
	}

	return calleeName == name
}

// directives are the functions of the transmute package which exist only to
// be rewritten.
var directives = map[string]struct{}{
	"EnumAlias": {},
}

// GenGoFiles returns the Go files that have a "//go:build transmutegen"
// constraint.
func (p *Parser) GenGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if hasGoBuildTag(file) {
			files = append(files, file)
		}
	}
	return files
}

// hasGoBuildTag checks if the file has a "//go:build transmutegen" constraint.
// The constraint may have other terms, but the file must be excluded from
// builds without the tag.
func hasGoBuildTag(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			break
		}
		for _, comment := range group.List {
			if !constraint.IsGoBuild(comment.Text) {
				continue
			}
			expr, err := constraint.Parse(comment.Text)
			if err != nil {
				continue
			}
			with := expr.Eval(func(string) bool { return true })
			without := expr.Eval(func(tag string) bool { return tag != BuildTag })
			return with && !without
		}
	}
	return false
}
