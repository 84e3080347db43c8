package transmute

import (
	"fmt"
	"reflect"
	"runtime"
	"slices"
	"sync"

	"github.com/coolCucumber-cat/transmute-guard/pkg/transmuteerrors"
)

// Registry is a table of declared guards keyed by the ordered pair of their
// types. It enforces that each ordered pair is declared at most once, which a
// bare [Guard] value cannot.
//
// A Registry is safe for concurrent use. The zero value is empty and ready to
// use.
type Registry struct {
	mu     sync.RWMutex
	guards map[pair]entry
}

type pair struct{ src, dst reflect.Type }

func (p pair) String() string { return fmt.Sprintf("%v => %v", p.src, p.dst) }

type entry struct {
	guard any // Guard[Src, Dst]
	site  string
}

// Default holds the guards shipped with this module and the guards declared by
// generated enum aliases.
var Default = new(Registry)

func pairOf[Src, Dst any]() pair {
	return pair{reflect.TypeFor[Src](), reflect.TypeFor[Dst]()}
}

// Register records g in r. It fails if a guard for the same ordered pair is
// already registered, or if the pair is reflexive because [Identity] always
// covers it.
func Register[Src, Dst any](r *Registry, g Guard[Src, Dst]) error {
	return register(r, g, 2)
}

func register[Src, Dst any](r *Registry, g Guard[Src, Dst], skip int) error {
	key := pairOf[Src, Dst]()
	if !g.declared {
		return fmt.Errorf("transmute: cannot register undeclared guard %v", key)
	}
	if key.src == key.dst {
		return fmt.Errorf("transmute: cannot register reflexive guard %v", key)
	}

	site := "unknown"
	if _, file, line, ok := runtime.Caller(skip); ok {
		site = fmt.Sprintf("%s:%d", file, line)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.guards[key]; ok {
		return fmt.Errorf("transmute: duplicate guard %v\n\tprevious declaration at %s", key, prev.site)
	}
	if r.guards == nil {
		r.guards = make(map[pair]entry)
	}
	r.guards[key] = entry{guard: g, site: site}
	return nil
}

// MustRegister registers g in [Default] and returns it. It panics if the pair
// is already registered. It is meant for package-level declarations:
//
//	var CelsiusToFloat = transmute.MustRegister(transmute.Bitcast[Celsius, float64](transmute.Unsafe))
func MustRegister[Src, Dst any](g Guard[Src, Dst]) Guard[Src, Dst] {
	if err := register(Default, g, 2); err != nil {
		panic(err)
	}
	return g
}

// Lookup returns the guard registered for Src and Dst. Reflexive pairs are
// always found.
func Lookup[Src, Dst any](r *Registry) (Guard[Src, Dst], bool) {
	key := pairOf[Src, Dst]()
	if key.src == key.dst {
		g, ok := any(Identity[Src]()).(Guard[Src, Dst])
		return g, ok
	}

	r.mu.RLock()
	e, ok := r.guards[key]
	r.mu.RUnlock()
	if !ok {
		return Guard[Src, Dst]{}, false
	}
	return e.guard.(Guard[Src, Dst]), true
}

// Convert converts src through the guard registered in r. It returns an error
// wrapping [transmuteerrors.ErrNoGuard] if no relation is registered.
func Convert[Src, Dst any](r *Registry, src Src) (Dst, error) {
	g, ok := Lookup[Src, Dst](r)
	if !ok {
		var zero Dst
		return zero, fmt.Errorf("transmute: %v: %w", pairOf[Src, Dst](), transmuteerrors.ErrNoGuard)
	}
	return Value(g, src), nil
}

// Pairs returns the registered pairs as "Src => Dst" strings in lexical order.
func (r *Registry) Pairs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pairs := make([]string, 0, len(r.guards))
	for key := range r.guards {
		pairs = append(pairs, key.String())
	}
	slices.Sort(pairs)
	return pairs
}
