// Package cssatom interns CSS identifiers (at-keywords, property names,
// keyword values, unit atoms) behind a small value type so that equality
// checks the parser runs constantly — "is this the @media at-rule?", "is
// this declaration named 'color'?" — are integer compares instead of string
// compares.
//
// Every well-known CSS keyword is seeded into a static table at package
// init, giving it a stable Atom for the lifetime of the process. Anything
// else (custom properties, author-chosen class names, vendor-specific
// idents) is interned through a bounded LRU cache: large stylesheets can
// contain many thousands of distinct custom identifiers, and a cache with a
// cap keeps memory bounded for adversarial input without giving up O(1)
// comparison for the identifiers that actually repeat within one parse.
package cssatom

import (
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Atom is an interned, hash-cons'd string. The zero Atom is reserved for
// "not interned" / absent.
type Atom uint32

const (
	// Empty is the atom for the empty string, seeded at offset 0 so the
	// zero value never collides with a real interned string.
	Empty Atom = iota
)

// table is the global atom table: a static slice of well-known keywords
// populated at init (indices stable for the process lifetime) plus a
// dynamic LRU for everything else. Both halves are read/write-locked
// because downstream tools may intern atoms from multiple parses
// concurrently even though any single Parser is single-threaded.
type table struct {
	mu        sync.RWMutex
	strings   []string
	indexOf   map[string]Atom
	dynamic   *lru.Cache[string, Atom]
	dynStrOf  map[Atom]string
	nextDyn   uint32
}

const dynamicCapacity = 4096

var global = newTable()

func newTable() *table {
	t := &table{
		strings:  []string{""},
		indexOf:  map[string]Atom{"": Empty},
		dynStrOf: make(map[Atom]string),
	}
	cache, err := lru.NewWithEvict[string, Atom](dynamicCapacity, func(key string, value Atom) {
		delete(t.dynStrOf, value)
	})
	if err != nil {
		panic(err) // only fails for a non-positive capacity, which is a constant above
	}
	t.dynamic = cache
	for _, kw := range wellKnownKeywords {
		t.seed(kw)
	}
	return t
}

// seed interns a string into the static half of the table at init time,
// without going through the LRU.
func (t *table) seed(s string) Atom {
	if a, ok := t.indexOf[s]; ok {
		return a
	}
	a := Atom(len(t.strings))
	t.strings = append(t.strings, s)
	t.indexOf[s] = a
	return a
}

// Intern returns the Atom for s, lowercasing it first (CSS keyword matching
// is ASCII case-insensitive throughout the grammar this core implements).
func Intern(s string) Atom {
	return global.intern(strings.ToLower(s))
}

// InternExact interns s as given with no case folding, for the rare case
// (e.g. a custom property's declared casing) where the original casing
// matters for round-tripping even though comparisons stay folded.
func InternExact(s string) Atom {
	return global.intern(s)
}

func (t *table) intern(s string) Atom {
	t.mu.RLock()
	if a, ok := t.indexOf[s]; ok {
		t.mu.RUnlock()
		return a
	}
	if a, ok := t.dynamic.Get(s); ok {
		t.mu.RUnlock()
		return a
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	// Re-check under the write lock: another goroutine may have interned s
	// while we waited.
	if a, ok := t.indexOf[s]; ok {
		return a
	}
	if a, ok := t.dynamic.Get(s); ok {
		return a
	}
	t.nextDyn++
	a := Atom(1<<31 | t.nextDyn) // high bit marks a dynamic (evictable) atom
	t.dynamic.Add(s, a)
	t.dynStrOf[a] = s
	return a
}

// String returns the interned text for a, or "" if a was never interned (or
// was evicted from the dynamic LRU — callers that need the text to survive
// eviction should keep the string itself, not just its Atom, which is the
// normal pattern: Atom is for fast repeated comparisons against well-known
// keywords, not for long-term storage of arbitrary author text).
func (a Atom) String() string {
	return global.resolve(a)
}

func (t *table) resolve(a Atom) string {
	if a&(1<<31) == 0 {
		t.mu.RLock()
		defer t.mu.RUnlock()
		if int(a) < len(t.strings) {
			return t.strings[a]
		}
		return ""
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dynStrOf[a]
}

// Is reports whether atom a is the well-known keyword kw (already lowercase
// in the static table), without allocating a string to compare.
func (a Atom) Is(kw Atom) bool {
	return a == kw
}
