// Package typeinfo inspects the types that take part in enum alias
// declarations.
package typeinfo

import (
	"go/token"
	"go/types"
)

// Type is a [types.Type] taken apart into the forms that matter to enum
// aliases.
type Type struct {
	T types.Type

	Basic *types.Basic
	Named *types.Named
}

func (t Type) Type() types.Type { return t.T }
func (t Type) String() string   { return t.T.String() }

func (t Type) IsBasic() bool { return t.Basic != nil }
func (t Type) IsNamed() bool { return t.Named != nil }

// IsInteger reports whether the underlying type is an integer basic type.
func (t Type) IsInteger() bool {
	return t.IsBasic() && t.Basic.Info()&types.IsInteger != 0
}

func (t Type) Identical(u Type) bool { return types.Identical(t.T, u.T) }

// Underlying returns the underlying type. For a type other than a named type,
// it returns the type itself.
func (t Type) Underlying() Type {
	if !t.IsNamed() {
		return t
	}
	return TypeOf(t.Named.Underlying())
}

// TypeOf inspects the given type and returns a new [Type]. Composite types are
// described by T only.
func TypeOf(t types.Type) Type {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		return Type{T: t, Basic: tt}
	case *types.Named:
		info := TypeOf(tt.Underlying())
		info.T = t
		info.Named = tt
		return info
	default:
		return Type{T: t}
	}
}

// Pkg returns the package where the type is defined. It returns nil if the type
// is not a named type.
func (t Type) Pkg() *types.Package {
	if !t.IsNamed() {
		return nil
	}
	return t.Named.Obj().Pkg()
}

// Pos returns the position where the type is defined. It returns token.NoPos if
// the type is not a named type.
func (t Type) Pos() token.Pos {
	if t.IsNamed() {
		return t.Named.Obj().Pos()
	}
	return token.NoPos
}

// Method returns the method with the given name declared on the type itself.
// Methods promoted from embedded fields are not considered.
func (t Type) Method(name string) (*types.Func, bool) {
	if !t.IsNamed() {
		return nil, false
	}

	for method := range t.Named.Methods() {
		if method.Name() == name {
			return method, true
		}
	}

	return nil, false
}

// IsStringer reports whether a value of the type implements fmt.Stringer.
// A String method with a pointer receiver does not count.
func (t Type) IsStringer() bool {
	method, ok := t.Method("String")
	if !ok {
		return false
	}

	sig := method.Signature()
	if _, ptr := sig.Recv().Type().(*types.Pointer); ptr {
		return false
	}
	if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}
	return types.Identical(sig.Results().At(0).Type(), types.Typ[types.String])
}
