// Package testing provides test utilities for numcode.
package testing

import (
	"context"

	"github.com/zoobzio/numcode"
)

// Mapping returns the canonical raw test mapping. Loaded through a Loader
// it becomes {a:101, b:102, c:103} after the code offset.
func Mapping() map[string]int {
	return map[string]int{"a": 1, "b": 2, "c": 3}
}

// Charset returns a charset loaded with Mapping(), offset applied.
func Charset() *numcode.Charset {
	cs := numcode.NewCharset()
	loader := numcode.NewLoader(cs)
	if err := loader.LoadMapping(context.Background(), Mapping()); err != nil {
		panic(err)
	}
	return cs
}

// RawCharset returns a charset populated with m as-is, no offset applied.
func RawCharset(m map[string]int) *numcode.Charset {
	cs := numcode.NewCharset()
	cs.MergeMapping(context.Background(), m)
	return cs
}

// Codec returns a codec over Charset() with the given lock.
func Codec(lock int) *numcode.Codec {
	return numcode.New(lock, Charset())
}
