package typeinfo

import (
	"go/types"
	"slices"
)

// EnumMembers returns the package-level constants of the enum type t in the
// order of their declaration. Constants of t declared in other packages are
// not members.
func EnumMembers(t Type) []*types.Const {
	pkg := t.Pkg()
	if pkg == nil {
		return nil
	}

	var members []*types.Const
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		con, ok := scope.Lookup(name).(*types.Const)
		if !ok {
			continue
		}
		if !types.Identical(con.Type(), t.T) {
			continue
		}
		members = append(members, con)
	}

	slices.SortFunc(members, func(a, b *types.Const) int {
		return int(a.Pos() - b.Pos())
	})
	return members
}

// ConstKey returns a comparable representation of the value of con. Two
// constants of the same type have the same key if and only if they are equal.
func ConstKey(con *types.Const) string {
	return con.Val().ExactString()
}
