// Package transmuteanalysis reports transmutegen errors as analysis
// diagnostics, so that editors and linters show them before generation.
package transmuteanalysis

import (
	"errors"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/coolCucumber-cat/transmute-guard/internal/codefmt"
	transmutegeninternal "github.com/coolCucumber-cat/transmute-guard/internal/transmutegen"
	"github.com/coolCucumber-cat/transmute-guard/internal/transmutegen/emit"
)

// Analyzer validates the enum alias directives in the package.
var Analyzer = &analysis.Analyzer{
	Name: "transmute",
	Doc:  "linter for transmute.EnumAlias directives",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	g, err := transmutegeninternal.New(pkg, emit.VerifyAuto)
	if err != nil {
		return nil, err
	}

	if err := g.Build(); err != nil {
		// Unroll joined errors and report every located one
		errs := []error{err}
		for len(errs) != 0 {
			err := errs[0]
			errs = errs[1:]

			if u, ok := err.(interface{ Unwrap() []error }); ok {
				errs = append(errs, u.Unwrap()...)
				continue
			}

			var codeErr *codefmt.CodeError
			if errors.As(err, &codeErr) {
				pass.Report(analysis.Diagnostic{
					Pos:     codeErr.Pos(),
					End:     codeErr.End(),
					Message: codeErr.Unwrap().Error(),
				})
			}
		}
	}

	return nil, nil
}
