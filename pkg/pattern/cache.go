// Package pattern owns the compiled-pattern cache and capture extraction.
//
// Patterns are identified by their exact text. The cache compiles each
// distinct text at most once and keeps the compiled form for the life of the
// process: the set of patterns in a program is fixed by its target shapes,
// not by input volume, so there is no eviction.
package pattern

import (
	"regexp"
	"sync"

	"github.com/aretw0/recast/pkg/domain"
)

// Cache is a compile-once store of patterns keyed by exact text. Entries are
// never mutated or evicted after insertion.
//
// It is safe for concurrent use. Lookups of cached patterns only take a read
// lock. Concurrent first-time requests for the same text may compile
// redundantly and race to install; the first install wins, so one text never
// maps to two observable compiled forms.
type Cache struct {
	mu       sync.RWMutex
	compiled map[string]*regexp.Regexp
}

// NewCache returns an empty, isolated cache. Tests construct their own; the
// package-level Shared cache backs the default engine.
func NewCache() *Cache {
	return &Cache{compiled: make(map[string]*regexp.Regexp)}
}

var shared = NewCache()

// Shared returns the process-wide cache. It is initialized on first use and
// lives for the process lifetime.
func Shared() *Cache {
	return shared
}

// CompileOrGet returns the compiled form of text, compiling it on first use.
// hit reports whether a cached form was reused. Compile failures return a
// *domain.CompileError and cache nothing: compilation is deterministic, so a
// retry fails identically.
func (c *Cache) CompileOrGet(text string) (re *regexp.Regexp, hit bool, err error) {
	c.mu.RLock()
	re, ok := c.compiled[text]
	c.mu.RUnlock()
	if ok {
		return re, true, nil
	}

	// Compile outside the lock: pathological patterns must not stall
	// readers of already-cached entries.
	re, compileErr := regexp.Compile(text)
	if compileErr != nil {
		return nil, false, &domain.CompileError{Pattern: text, Err: compileErr}
	}

	c.mu.Lock()
	if cur, ok := c.compiled[text]; ok {
		// Lost the install race; adopt the winner.
		re = cur
	} else {
		c.compiled[text] = re
	}
	c.mu.Unlock()
	return re, false, nil
}

// Len reports the number of cached patterns.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.compiled)
}
