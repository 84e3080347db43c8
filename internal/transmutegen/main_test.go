package transmutegeninternal

import (
	"errors"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/tools/go/packages"

	"github.com/coolCucumber-cat/transmute-guard/internal/codefmt"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type colorsPkg struct{ pkg *packages.Package }

func (p colorsPkg) Pkg() *packages.Package { return p.pkg }

func newColorsPkg() colorsPkg {
	fset := token.NewFileSet()
	fset.AddFile("colors.go", -1, 100).SetLines([]int{0, 20, 40})
	return colorsPkg{&packages.Package{Fset: fset}}
}

func TestReorderErrors(t *testing.T) {
	assert.NoError(t, reorderErrors(nil))

	errs := errors.Join(
		errors.New("c"),
		errors.Join(errors.New("a"), errors.New("d")),
		errors.New("b"),
	)
	assert.EqualError(t, reorderErrors(errs), "a\nb\nc\nd")
}

func TestFlattenErrors(t *testing.T) {
	a := errors.New("a")
	b := errors.New("b")
	list := flattenErrors(errors.Join(a, errors.Join(b)))
	require.Len(t, list, 2)
	assert.ErrorIs(t, list[0], a)
	assert.ErrorIs(t, list[1], b)

	assert.Empty(t, flattenErrors(nil))
}

func TestDiagnostics(t *testing.T) {
	pkg := newColorsPkg()
	errs := errors.Join(
		codefmt.Errorf(pkg, codefmt.Pos(25), "duplicate member Red in Primary"),
		errors.New("pkg \"colors\" has errors"),
		packages.Error{Pos: "main.go:3:1", Msg: "undefined: Primary"},
		codefmt.Errorf(pkg, codefmt.Pos(1), "parent int must be a defined enum type"),
		codefmt.Errorf(pkg, nil, "need pkg types"),
	)

	want := []Diagnostic{
		{Message: "need pkg types"},
		{Message: "pkg \"colors\" has errors"},
		{Pos: "colors.go:1:1", Message: "parent int must be a defined enum type"},
		{Pos: "colors.go:2:5", Message: "duplicate member Red in Primary"},
		{Pos: "main.go:3:1", Message: "undefined: Primary"},
	}
	if diff := cmp.Diff(want, Diagnostics(errs)); diff != "" {
		t.Errorf("Diagnostics() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagnosticsNil(t *testing.T) {
	assert.Empty(t, Diagnostics(nil))
}
