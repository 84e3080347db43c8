// Package emit turns parsed enum alias directives into Go declarations.
package emit

import (
	"errors"
	"go/token"
	"go/types"

	"github.com/emirpasic/gods/maps/hashbidimap"

	"github.com/coolCucumber-cat/transmute-guard/internal/codefmt"
	"github.com/coolCucumber-cat/transmute-guard/internal/transmutegen/parse"
	"github.com/coolCucumber-cat/transmute-guard/internal/typeinfo"
)

// Alias is a validated enum alias with the names of everything it declares.
type Alias struct {
	d       parse.Directive
	members []member

	values     string // func AliasValues() []Alias
	fromParent string // func AliasFromParent(Parent) (Alias, bool)
	guard      string // var AliasToParent
	stringer   bool
}

type member struct {
	parse.Member
	name string
}

// Pos returns the position of the directive. Alias implements [codefmt.Poser]
// by this method.
func (a *Alias) Pos() token.Pos { return a.d.Pos() }

// Name returns the name of the alias type.
func (a *Alias) Name() string { return a.d.Name() }

// Build validates the members of the directive and names the declarations of
// the alias. The names are reserved in ns. Members must be distinct constants
// with distinct values, so that the alias can be matched member by member.
func Build(d parse.Directive, ns codefmt.NS) (*Alias, error) {
	a := &Alias{d: d}
	var errs error

	// Forward: member constant to its value. Inverse: value to the constant
	// that introduced it.
	seen := hashbidimap.New()
	first := make(map[*types.Const]parse.Member)
	for _, m := range d.Members {
		if _, ok := seen.Get(m.Const); ok {
			err := codefmt.Errorf(d, m, "duplicate member %o in %s\n\tprevious listing at %b",
				m.Const, d.Name(), first[m.Const])
			errs = errors.Join(errs, err)
			continue
		}

		key := typeinfo.ConstKey(m.Const)
		if prev, ok := seen.GetKey(key); ok {
			prevCon := prev.(*types.Const)
			err := codefmt.Errorf(d, m, "member %o has the same value %s as %o in %s\n\tprevious listing at %b",
				m.Const, key, prevCon, d.Name(), first[prevCon])
			errs = errors.Join(errs, err)
			continue
		}

		seen.Put(m.Const, key)
		first[m.Const] = m
		a.members = append(a.members, member{Member: m})
	}
	if errs != nil {
		return nil, errs
	}

	// Name the constants after the parent members. The word prefix shared by
	// all members of the parent, usually the parent type name, is replaced by
	// the alias name.
	var parentNames []string
	for _, con := range typeinfo.EnumMembers(d.Parent) {
		parentNames = append(parentNames, con.Name())
	}
	for i := range a.members {
		m := &a.members[i]
		m.name = memberName(d.Name(), m.Const.Name(), parentNames)
		if err := reserve(d, ns, m.name, m); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	a.values = d.Name() + "Values"
	a.fromParent = d.Name() + "FromParent"
	a.guard = guardName(d.Name(), d.Parent.Named.Obj().Name())
	for _, name := range []string{a.values, a.fromParent, a.guard} {
		if err := reserve(d, ns, name, d.Ident); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	a.stringer = d.Parent.IsStringer()

	if errs != nil {
		return nil, errs
	}
	return a, nil
}

// reserve claims name for a declaration of the alias.
func reserve(d parse.Directive, ns codefmt.NS, name string, at codefmt.Poser) error {
	if ns.Reserve(name) {
		return nil
	}
	return codefmt.Errorf(d, at, "%s generated for %s is already declared", name, d.Name())
}
