// Package transmuteerrors defines the errors reported by transmute and by code
// that transmutegen generates.
package transmuteerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRepresentable is the cause of every failed narrowing: the parent
	// value is not a member of the alias.
	ErrNotRepresentable = errors.New("not representable")

	// ErrNoGuard is returned when no relation between two types has been
	// declared.
	ErrNoGuard = errors.New("no guard declared")
)

// NarrowError reports a parent value that an enum alias cannot hold. It wraps
// [ErrNotRepresentable].
type NarrowError struct {
	Alias  string
	Parent string
	Value  any
}

// Narrow returns a [NarrowError] for value of the parent enumeration.
func Narrow(alias, parent string, value any) error {
	return &NarrowError{Alias: alias, Parent: parent, Value: value}
}

func (e *NarrowError) Error() string {
	return fmt.Sprintf("narrowing %s %v to %s: %v", e.Parent, e.Value, e.Alias, ErrNotRepresentable)
}

func (e *NarrowError) Unwrap() error { return ErrNotRepresentable }

// ViolationError describes a broken discriminant equality between an enum
// alias and its parent. It is never returned; generated code panics with it
// because the assumption behind every widening conversion no longer holds.
type ViolationError struct {
	// Conv names the conversion, like "Primary.AsParent".
	Conv string

	// Value is the alias value being widened.
	Value any

	// Fast is the result of reinterpreting the discriminant.
	Fast any

	// Slow is the result of matching members one by one. It is meaningless
	// when Member is false.
	Slow any

	// Member reports whether Value is a declared member of the alias.
	Member bool
}

func (e *ViolationError) Error() string {
	if !e.Member {
		return fmt.Sprintf("transmute: %s: %v is not a member; reinterpreted as %v", e.Conv, e.Value, e.Fast)
	}
	return fmt.Sprintf("transmute: %s: discriminant mismatch for %v: reinterpreted %v, matched %v", e.Conv, e.Value, e.Fast, e.Slow)
}
