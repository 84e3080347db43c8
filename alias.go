package transmute

import (
	"github.com/coolCucumber-cat/transmute-guard/pkg/transmuteerrors"
)

// Integer is the set of numeric representations an enumeration may have.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// enumAlias is the type of an [EnumAlias] directive. It is unexported so that
// a variable holding the directive has no use other than being rewritten.
type enumAlias *struct{}

// EnumAlias directive declares an enumeration whose members are a subset of
// the members of Parent. Repr is the numeric representation shared by both,
// and must be the underlying type of Parent. Directives live in files with the
// transmutegen build constraint:
//
//	//go:build transmutegen
//
//	// source:
//	var Primary = transmute.EnumAlias[Color, uint8](Red, Blue)
//
// The variable name becomes the name of the alias type. The transmutegen
// command rewrites the variable into the type and its API:
//
//	// generated: (simplified)
//	type Primary uint8
//
//	const (
//		PrimaryRed  Primary = Primary(Red)
//		PrimaryBlue Primary = Primary(Blue)
//	)
//
//	func PrimaryValues() []Primary
//	func PrimaryFromParent(v Color) (Primary, bool)
//	func (v Primary) Underlying() uint8
//	func (v Primary) AsParent() Color
//	func (v *Primary) FromParent(p Color) error
//
//	var PrimaryToColor = transmute.MustRegister(transmute.Func(transmute.Unsafe, Primary.AsParent))
//
// Every alias member keeps the discriminant of the parent member it was taken
// from, so AsParent is a plain conversion. In verification builds (see
// [Verifying]) AsParent also matches the value member by member and panics
// through [AssertWiden] if both results disagree.
//
// Members must be distinct constants of Parent with distinct values. An empty
// member list declares an alias without values; narrowing into it always
// fails. Violations are reported by transmutegen at generation time.
//
// Code of the same package that refers to the generated identifiers must be
// excluded from generation, either by living in _test.go files or by the
// "//go:build !transmutegen" constraint.
func EnumAlias[Parent, Repr Integer](members ...Parent) enumAlias {
	panic("transmute: not generated")
}

// Alias is implemented by every generated enum alias of Parent.
type Alias[Parent any] interface {
	AsParent() Parent
}

// Widen converts an alias value to its parent enumeration. It never fails:
//
//	c := transmute.Widen[Color](PrimaryBlue)
func Widen[Parent any, A Alias[Parent]](a A) Parent {
	return a.AsParent()
}

// Narrow converts a parent value to the alias A. If the value is not a member
// of A, the error wraps [transmuteerrors.ErrNotRepresentable]:
//
//	p, err := transmute.Narrow[Primary](Green)
func Narrow[A any, PA interface {
	*A
	FromParent(Parent) error
}, Parent any](p Parent) (A, error) {
	var a A
	err := PA(&a).FromParent(p)
	return a, err
}

// AssertWiden is called by generated code in verification builds. fast is the
// widened value obtained by reinterpreting the discriminant of value, slow is
// the one obtained by matching members, and member reports whether the match
// found value at all. AssertWiden panics with a
// [*transmuteerrors.ViolationError] unless value is a member and both results
// are equal.
func AssertWiden[Parent comparable](conv string, value any, fast, slow Parent, member bool) {
	if member && fast == slow {
		return
	}
	panic(&transmuteerrors.ViolationError{
		Conv:   conv,
		Value:  value,
		Fast:   fast,
		Slow:   slow,
		Member: member,
	})
}
