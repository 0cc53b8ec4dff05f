package numcode

import (
	"context"
	"sync"
	"unicode/utf8"
)

// CodeOffset is added to every integer mapping value at load time so that all
// codes occupy a stable decimal-digit band. With the default offset of 100
// every code is three digits wide, which fixes the chunk width used by decode.
const CodeOffset = 100

// Charset owns the bidirectional symbol↔code mapping and its metadata.
//
// The forward and reverse indexes are maintained together on every mutation,
// keeping decode lookups O(1). Codes are intended to be unique per symbol;
// a colliding value is surfaced as a conflict event and counted, but the
// first-registered holder of the code always wins; collisions are never
// silently overwritten and never fatal.
//
// A Charset is safe for concurrent reads. Mutation requires exclusive access:
// once handed to a Codec used concurrently, treat it as read-only.
type Charset struct {
	mu        sync.RWMutex
	author    string
	timestamp float64
	priority  int
	forward   map[string]int
	reverse   map[int]string
	conflicts int
}

// NewCharset returns an empty charset ready to be populated by a Loader,
// MergeMapping, or AddKey.
func NewCharset() *Charset {
	return &Charset{
		forward:  make(map[string]int),
		reverse:  make(map[int]string),
		priority: 1,
	}
}

// Author returns the author recorded by the most recent load.
func (c *Charset) Author() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.author
}

// Timestamp returns the timestamp recorded by the most recent load.
func (c *Charset) Timestamp() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timestamp
}

// Priority returns the charset priority.
func (c *Charset) Priority() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.priority
}

// SetPriority sets the charset priority.
func (c *Charset) SetPriority(p int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.priority = p
}

// Len returns the number of mapped symbols.
func (c *Charset) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.forward)
}

// Conflicts returns the number of code-value collisions observed so far.
func (c *Charset) Conflicts() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conflicts
}

// Code returns the code for a symbol.
func (c *Charset) Code(symbol string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	code, ok := c.forward[symbol]
	return code, ok
}

// Symbol returns the first-registered symbol for a code.
func (c *Charset) Symbol(code int) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	symbol, ok := c.reverse[code]
	return symbol, ok
}

// Mapping returns a copy of the forward symbol→code mapping.
func (c *Charset) Mapping() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m := make(map[string]int, len(c.forward))
	for k, v := range c.forward {
		m[k] = v
	}
	return m
}

// AddKey assigns the symbol a code one greater than the current maximum,
// or 0 for an empty charset. The assigned code is returned.
//
// The key must be exactly one symbol; anything else fails with
// ErrInvalidSymbolKey.
func (c *Charset) AddKey(ctx context.Context, symbol string) (int, error) {
	if utf8.RuneCountInString(symbol) != 1 {
		return 0, newSymbolError(ErrInvalidSymbolKey, symbol, -1)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	code := 0
	if max, ok := c.maxCode(); ok {
		code = max + 1
	}
	c.put(ctx, symbol, code)
	return code, nil
}

// RemoveKey removes the symbol from the charset. It reports whether the
// symbol was present; removing an absent symbol is not an error.
func (c *Charset) RemoveKey(symbol string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	code, ok := c.forward[symbol]
	if !ok {
		return false
	}
	delete(c.forward, symbol)
	c.dropReverse(symbol, code)
	return true
}

// MergeFrom unions other charsets into this one. Existing keys are never
// overwritten; for each new key the other charset's code is taken as-is.
func (c *Charset) MergeFrom(ctx context.Context, others ...*Charset) *Charset {
	for _, other := range others {
		if other == nil || other == c {
			continue
		}
		c.MergeMapping(ctx, other.Mapping())
	}
	return c
}

// MergeMapping unions raw symbol→code mappings into this charset.
// Existing keys are never overwritten.
func (c *Charset) MergeMapping(ctx context.Context, mappings ...map[string]int) *Charset {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, m := range mappings {
		for symbol, code := range m {
			if _, exists := c.forward[symbol]; exists {
				continue
			}
			c.put(ctx, symbol, code)
		}
	}
	return c
}

// OverrideWith replaces this charset's entire mapping and metadata with
// another's. The other charset is left untouched.
func (c *Charset) OverrideWith(other *Charset) {
	if other == nil || other == c {
		return
	}

	other.mu.RLock()
	author := other.author
	timestamp := other.timestamp
	priority := other.priority
	conflicts := other.conflicts
	forward := make(map[string]int, len(other.forward))
	for k, v := range other.forward {
		forward[k] = v
	}
	reverse := make(map[int]string, len(other.reverse))
	for k, v := range other.reverse {
		reverse[k] = v
	}
	other.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.author = author
	c.timestamp = timestamp
	c.priority = priority
	c.conflicts = conflicts
	c.forward = forward
	c.reverse = reverse
}

// install replaces the mapping and metadata wholesale. Used by single-resource
// loads, where the resource is the complete charset.
func (c *Charset) install(ctx context.Context, author string, timestamp float64, mapping map[string]int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.author = author
	c.timestamp = timestamp
	c.forward = make(map[string]int, len(mapping))
	c.reverse = make(map[int]string, len(mapping))
	for symbol, code := range mapping {
		c.put(ctx, symbol, code)
	}
}

// setMetadataIfEmpty records author/timestamp from the first resource of a
// directory load without clobbering an earlier one.
func (c *Charset) setMetadataIfEmpty(author string, timestamp float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.author == "" {
		c.author = author
	}
	if c.timestamp == 0 {
		c.timestamp = timestamp
	}
}

// put writes one forward entry and maintains the reverse index.
// Caller must hold c.mu.
func (c *Charset) put(ctx context.Context, symbol string, code int) {
	if old, ok := c.forward[symbol]; ok && old != code {
		c.dropReverse(symbol, old)
	}
	c.forward[symbol] = code

	if held, ok := c.reverse[code]; ok && held != symbol {
		// First-registered symbol keeps the code for reverse lookups.
		c.conflicts++
		emitCharsetConflict(ctx, symbol, code, held)
		return
	}
	c.reverse[code] = symbol
}

// dropReverse removes a reverse entry held by symbol and reinstates another
// forward holder of the same code, if any. Caller must hold c.mu.
func (c *Charset) dropReverse(symbol string, code int) {
	if c.reverse[code] != symbol {
		return
	}
	delete(c.reverse, code)
	for s, v := range c.forward {
		if v == code {
			c.reverse[code] = s
			return
		}
	}
}

// maxCode returns the largest mapped code. Caller must hold c.mu.
func (c *Charset) maxCode() (int, bool) {
	found := false
	max := 0
	for _, code := range c.forward {
		if !found || code > max {
			max = code
			found = true
		}
	}
	return max, found
}
