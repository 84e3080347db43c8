package codefmt_test

import (
	"errors"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/coolCucumber-cat/transmute-guard/internal/codefmt"
)

type pkger struct{}

func (pkger) Pkg() *packages.Package {
	var pkg packages.Package
	pkg.Fset = token.NewFileSet()
	pkg.Fset.AddFile("colors.go", -1, 100).SetLines([]int{0, 20, 40})
	return &pkg
}

type poser struct{ pos int }

func (p poser) Pos() token.Pos { return token.Pos(p.pos) }

func TestErrorfNilNil(t *testing.T) {
	err := codefmt.Errorf(nil, nil, "simple error")
	assert.Equal(t, "simple error", err.Error())
}

func TestErrorfPos(t *testing.T) {
	err := codefmt.Errorf(pkger{}, poser{1}, "duplicate member %s", "Red")
	assert.Equal(t, "colors.go:1:1: duplicate member Red", err.Error())
}

func TestErrorfPosition(t *testing.T) {
	err := codefmt.Errorf(pkger{}, poser{25}, "error")

	var codeErr *codefmt.CodeError
	require.True(t, errors.As(err, &codeErr))
	assert.Equal(t, token.Pos(25), codeErr.Pos())

	pos := codeErr.Position()
	assert.Equal(t, "colors.go", pos.Filename)
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 5, pos.Column)
	assert.Equal(t, "error", codeErr.Unwrap().Error())
}

func TestErrorfNoPosition(t *testing.T) {
	err := codefmt.Errorf(pkger{}, nil, "error")

	var codeErr *codefmt.CodeError
	require.True(t, errors.As(err, &codeErr))
	pos := codeErr.Position()
	assert.False(t, pos.IsValid())
}

func TestErrorfW(t *testing.T) {
	assert.Panics(t, func() {
		_ = codefmt.Errorf(pkger{}, poser{1}, "error: %w", assert.AnError)
	})
}
