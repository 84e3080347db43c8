// Package transmute provides certified zero-copy reinterpretation between Go
// types that share an in-memory representation.
//
// A reinterpretation is certified once, where the relation between two types
// is declared, instead of at every call site. The declaration is an unsafe
// assertion made by the declarer: every value of Src the program produces must
// be a valid value of Dst, and both types must have a compatible layout. The
// package never checks bit-pattern validity. It only keeps the assertion in one
// place so that the views built on it are free of unsafe code:
//
//	// declared once:
//	var CelsiusToFloat = transmute.Bitcast[Celsius, float64](transmute.Unsafe)
//
//	// used everywhere:
//	f := transmute.Value(CelsiusToFloat, c)       // owning conversion
//	p := transmute.Ref(CelsiusToFloat.Marker, &c) // *float64 at the same address
//	s := CelsiusToFloat.Slice(readings)           // []float64 over the same array
//
// # Markers and guards
//
// A [Marker] states that Dst may be viewed as a reinterpretation of Src. It
// carries no data and only this package can create one, so holding a marker
// proves that somebody declared the relation. Pointer and slice views ([Ref],
// [Mut], [Slice], [SliceMut]) need nothing more than a marker.
//
// A [Guard] is a marker plus an owning conversion used by [Value]. Guards are
// declared by [Bitcast], which reinterprets the bits directly, or by [Func],
// which takes an explicit conversion function that yields the same bits, such
// as mapping a bool to its 0/1 byte. [Unsized] declares a bare marker for
// destinations where no owning conversion makes sense.
//
// Every type trivially relates to itself: [Identity] is always available.
// Relations are neither symmetric nor transitive; each direction is declared
// independently.
//
// # Enum aliases
//
// [EnumAlias] declares a restricted enumeration that shares the discriminants
// of a parent enumeration. Aliases are expanded by the transmutegen command:
//
//	go run github.com/coolCucumber-cat/transmute-guard/cmd/transmutegen ./...
//
// See [EnumAlias] for the generated API and [Verifying] for the verification
// mode that cross-checks every widening conversion.
package transmute

import (
	"fmt"
	"reflect"
	"unsafe"
)

// unsafeAck is the type of [Unsafe]. It is unexported so that the only way to
// declare a relation is to spell out transmute.Unsafe at the declaration.
type unsafeAck struct{}

// Unsafe acknowledges that the caller certifies a reinterpretation. Passing it
// to [Bitcast], [Func], or [Unsized] is the unsafe part of a declaration.
var Unsafe unsafeAck

// Marker states that Dst may be viewed as a reinterpretation of Src. The zero
// value is not a valid marker; markers are obtained from [Identity], [Bitcast],
// [Func], or [Unsized].
type Marker[Src, Dst any] struct {
	declared bool
}

// String returns a description like "bool => uint8".
func (m Marker[Src, Dst]) String() string {
	return fmt.Sprintf("%v => %v", reflect.TypeFor[Src](), reflect.TypeFor[Dst]())
}

// Valid reports whether the marker was created by a declaration.
func (m Marker[Src, Dst]) Valid() bool { return m.declared }

// Ref returns src viewed as *Dst. See [Ref].
func (m Marker[Src, Dst]) Ref(src *Src) *Dst { return Ref(m, src) }

// Mut returns src viewed as a writable *Dst. See [Mut].
func (m Marker[Src, Dst]) Mut(src *Src) *Dst { return Mut(m, src) }

// Slice returns src viewed as []Dst. See [Slice].
func (m Marker[Src, Dst]) Slice(src []Src) []Dst { return Slice(m, src) }

// SliceMut returns src viewed as a writable []Dst. See [SliceMut].
func (m Marker[Src, Dst]) SliceMut(src []Src) []Dst { return SliceMut(m, src) }

// Guard is a [Marker] with an owning conversion from Src to Dst.
type Guard[Src, Dst any] struct {
	Marker[Src, Dst]

	// from is nil for bitcast guards.
	from func(Src) Dst
}

// Value converts src to Dst. See [Value].
func (g Guard[Src, Dst]) Value(src Src) Dst { return Value(g, src) }

// Identity returns the reflexive guard of T. Its conversion is the identity
// function.
func Identity[T any]() Guard[T, T] {
	return Guard[T, T]{
		Marker: Marker[T, T]{declared: true},
		from:   identity[T],
	}
}

func identity[T any](v T) T { return v }

// Bitcast declares that the bits of any Src value are a valid Dst value, and
// vice versa. The owning conversion reinterprets the bits without copying them
// through any intermediate representation.
//
// Bitcast panics if Src and Dst differ in size, or if Dst requires a stricter
// alignment than Src. These are the only properties it can check; validity of
// every bit pattern is the caller's obligation.
func Bitcast[Src, Dst any](_ unsafeAck) Guard[Src, Dst] {
	var src Src
	var dst Dst
	if unsafe.Sizeof(src) != unsafe.Sizeof(dst) {
		panic(fmt.Sprintf("transmute: cannot bitcast %v (%d bytes) to %v (%d bytes)",
			reflect.TypeFor[Src](), unsafe.Sizeof(src),
			reflect.TypeFor[Dst](), unsafe.Sizeof(dst)))
	}
	if unsafe.Alignof(dst) > unsafe.Alignof(src) {
		panic(fmt.Sprintf("transmute: cannot bitcast %v (align %d) to %v (align %d)",
			reflect.TypeFor[Src](), unsafe.Alignof(src),
			reflect.TypeFor[Dst](), unsafe.Alignof(dst)))
	}
	return Guard[Src, Dst]{Marker: Marker[Src, Dst]{declared: true}}
}

// Func declares the relation from Src to Dst with an explicit conversion. fn
// must produce the value whose bits equal the bits of its argument, for
// example a bool mapped to its 0/1 byte. The marker part still permits
// pointer and slice views, so Src and Dst must share a layout.
//
// Func panics if fn is nil.
func Func[Src, Dst any](_ unsafeAck, fn func(Src) Dst) Guard[Src, Dst] {
	if fn == nil {
		panic("transmute: nil conversion function")
	}
	return Guard[Src, Dst]{Marker: Marker[Src, Dst]{declared: true}, from: fn}
}

// Unsized declares a bare marker from Src to Dst without any size check. It
// is meant for destinations whose views cannot be produced by an owning
// conversion, so it has no [Guard] counterpart.
func Unsized[Src, Dst any](_ unsafeAck) Marker[Src, Dst] {
	return Marker[Src, Dst]{declared: true}
}

// Value consumes src and returns the Dst with the same bit pattern. For
// [Identity] guards it returns src itself.
func Value[Src, Dst any](g Guard[Src, Dst], src Src) Dst {
	mustDeclared(g.Marker)
	if g.from != nil {
		return g.from(src)
	}
	return *(*Dst)(unsafe.Pointer(&src))
}

// Ref returns a pointer to the same memory as src, typed as *Dst. The result
// aliases src and must not outlive it. A nil src yields nil.
func Ref[Src, Dst any](m Marker[Src, Dst], src *Src) *Dst {
	mustDeclared(m)
	return (*Dst)(unsafe.Pointer(src))
}

// Mut is [Ref] for callers that write through the result. Writes are visible
// through src. A declared marker certifies both directions, so the caller may
// store any valid Dst value.
//
// As with any pointer, at most one writer may use a memory region at a time;
// Mut neither adds nor relaxes synchronisation.
func Mut[Src, Dst any](m Marker[Src, Dst], src *Src) *Dst {
	mustDeclared(m)
	return (*Dst)(unsafe.Pointer(src))
}

// Slice returns src viewed as []Dst. The result shares the backing array with
// src and has the same length and capacity. A nil src yields nil.
func Slice[Src, Dst any](m Marker[Src, Dst], src []Src) []Dst {
	mustDeclared(m)
	return reslice[Src, Dst](src)
}

// SliceMut is [Slice] for callers that write through the result. Writes are
// visible through src.
func SliceMut[Src, Dst any](m Marker[Src, Dst], src []Src) []Dst {
	mustDeclared(m)
	return reslice[Src, Dst](src)
}

// reslice is the single place where slice headers are re-tagged. The element
// count is kept, so it relies on the declared layout equivalence of Src and
// Dst.
func reslice[Src, Dst any](src []Src) []Dst {
	if src == nil {
		return nil
	}
	data := (*Dst)(unsafe.Pointer(unsafe.SliceData(src)))
	return unsafe.Slice(data, cap(src))[:len(src)]
}

func mustDeclared[Src, Dst any](m Marker[Src, Dst]) {
	if !m.declared {
		panic(fmt.Sprintf("transmute: undeclared marker %s", m))
	}
}
