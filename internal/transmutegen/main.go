// Package transmutegeninternal drives enum alias generation for loaded
// packages. It is used by cmd/transmutegen and by the analyzer.
package transmutegeninternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"github.com/coolCucumber-cat/transmute-guard/internal/codefmt"
	"github.com/coolCucumber-cat/transmute-guard/internal/transmutegen/emit"
	"github.com/coolCucumber-cat/transmute-guard/internal/transmutegen/parse"
)

var Version string

// Options configures [Main].
type Options struct {
	// Tags is a comma-separated list of extra build tags to load packages
	// with. The transmutegen tag is always set.
	Tags string

	// Tests indicates whether to include test files.
	Tests bool

	// Output is the name of the file to generate in each package.
	Output string

	// Verify selects how widening conversions are checked.
	Verify emit.Verify

	// Logger receives progress at debug level. Nil disables logging.
	Logger *zap.Logger
}

// Main is the main entry point for transmutegen. It is used by the
// command-line tool directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx can
// cancel the operation. wd is the path of the working directory. env is the
// environment variables to use when running the tool. patterns are the
// package patterns to process.
//
// It returns a map of output file paths to their contents. If any error
// occurs, it returns a non-nil error.
func Main(ctx context.Context, wd string, env []string, opts Options, patterns []string) (map[string][]byte, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	pkgs, err := load(ctx, wd, env, opts.Tags, opts.Tests, patterns)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded packages", zap.Int("count", len(pkgs)), zap.Strings("patterns", patterns))

	outs := make(map[string][]byte)
	var errs error

	for _, pkg := range pkgs {
		if len(pkg.Errors) != 0 {
			err := fmt.Errorf("pkg %q has errors", pkg.Name)
			errs = errors.Join(errs, err)
			continue
		}

		g, err := New(pkg, opts.Verify)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if err := g.Build(); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		code := g.Generate()
		if len(code) == 0 {
			log.Debug("no transmutegen files", zap.String("pkg", pkg.PkgPath))
			continue
		}

		outDir := filepath.Dir(pkg.GoFiles[0])
		if rel, err := filepath.Rel(wd, outDir); err == nil {
			outDir = rel
		}
		out := filepath.Join(outDir, opts.Output)
		outs[out] = code

		log.Debug("generated",
			zap.String("pkg", pkg.PkgPath),
			zap.String("file", out),
			zap.Strings("aliases", g.Aliases()),
			zap.Stringer("verify", opts.Verify),
		)
	}
	if errs != nil {
		// errs already contains comprehensive error messages. So we don't need
		// to attach another error message.
		return nil, reorderErrors(errs)
	}

	return outs, nil
}

// load loads packages.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:       packages.NeedDeps | packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=" + parse.BuildTag},
		Tests:      tests,
	}
	if tags != "" {
		cfg.BuildFlags[0] += "," + tags
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// Check for errors in the loaded packages.
	var errs error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if rel, relErr := filepath.Rel(wd, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}

	return pkgs, nil
}

// flattenErrors expands errors joined by [errors.Join] into a list.
func flattenErrors(errs error) []error {
	if errs == nil {
		return nil
	}

	list := []error{errs}
	for i := 0; i < len(list); i++ {
		if u, ok := list[i].(interface{ Unwrap() []error }); ok {
			// errors.Join collapses errors with a single error having Unwrap()
			// []error method. The underlying errors could be retrieved using
			// the Unwrap() method.
			list = append(list, u.Unwrap()...)

			// The underlying errors are appended to the list. So the original
			// error can be removed.
			list[i] = nil
			continue
		}
	}
	return slices.DeleteFunc(list, func(err error) bool {
		return err == nil
	})
}

func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	list := flattenErrors(errs)

	// Sort errors by message
	sort.Slice(list, func(i, j int) bool {
		return list[i].Error() < list[j].Error()
	})
	return errors.Join(list...)
}

// Diagnostic is an error reported by [Main] in a machine-readable form.
type Diagnostic struct {
	// Pos is "file:line:column" if the error is located in source code.
	Pos     string `json:"pos,omitempty"`
	Message string `json:"message"`
}

// Diagnostics splits an error returned by [Main] into diagnostics, sorted the
// same way as the error message.
func Diagnostics(errs error) []Diagnostic {
	var diags []Diagnostic
	for _, err := range flattenErrors(errs) {
		var codeErr *codefmt.CodeError
		if errors.As(err, &codeErr) {
			if pos := codeErr.Position(); pos.IsValid() {
				diags = append(diags, Diagnostic{
					Pos:     codefmt.FormatPosition(pos),
					Message: codeErr.Unwrap().Error(),
				})
				continue
			}
		}

		var pkgErr packages.Error
		if errors.As(err, &pkgErr) {
			diags = append(diags, Diagnostic{Pos: pkgErr.Pos, Message: pkgErr.Msg})
			continue
		}

		diags = append(diags, Diagnostic{Message: err.Error()})
	}

	slices.SortFunc(diags, func(a, b Diagnostic) int {
		return strings.Compare(a.Pos+": "+a.Message, b.Pos+": "+b.Message)
	})
	return diags
}
