package codefmt

import (
	"fmt"
	"go/token"
	"go/types"
	"iter"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NS is the set of identifiers taken in one scope of generated code. Generated
// declarations claim their names in the NS of the package, and local variables
// of a generated function claim theirs in a copy of it.
type NS map[string]struct{}

// NewNS returns an NS holding every name declared in scope.
func NewNS(scope *types.Scope) NS {
	ns := make(NS, scope.Len())
	for _, name := range scope.Names() {
		ns[name] = struct{}{}
	}
	return ns
}

// Reserve claims name. It reports false if name was already taken.
func (ns NS) Reserve(name string) bool {
	if ns.Taken(name) {
		return false
	}
	ns[name] = struct{}{}
	return true
}

// Taken reports whether name is already claimed.
func (ns NS) Taken(name string) bool {
	_, ok := ns[name]
	return ok
}

// Name claims and returns the first free candidate of name. See [Candidates].
// A nil NS claims nothing and returns the normalized name as is.
func (ns NS) Name(name string) string {
	name = NormalizeName(name)
	if ns == nil {
		return name
	}
	for cand := range Candidates(name) {
		if token.IsKeyword(cand) {
			continue
		}
		if ns.Reserve(cand) {
			return cand
		}
	}
	panic("unreachable")
}

// NormalizeName makes an identifier out of name. Underscores and characters
// that cannot appear in an identifier separate words, which are joined in camel
// case. The case of the first word is kept, so exported names stay exported:
//
//	NormalizeName("dark-red")       // "darkRed"
//	NormalizeName("Primary_bright") // "PrimaryBright"
//
// A name without any letter or digit is returned as is. It panics if name is
// empty.
func NormalizeName(name string) string {
	if name == "" {
		panic("empty name")
	}

	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return name
	}

	title := cases.Title(language.Und, cases.NoLower)
	for i := 1; i < len(words); i++ {
		words[i] = title.String(words[i])
	}
	return strings.Join(words, "")
}

// Candidates yields name followed by name2, name3 and so on. A name ending in
// a digit is separated from the counter by an underscore: "level2" is followed
// by "level2_2".
func Candidates(name string) iter.Seq[string] {
	if name == "" {
		panic("empty name")
	}

	format := "%s%d"
	if last := name[len(name)-1]; '0' <= last && last <= '9' {
		format = "%s_%d"
	}

	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}
		for i := 2; ; i++ {
			if !yield(fmt.Sprintf(format, name, i)) {
				return
			}
		}
	}
}
