// Package broadcast provides write-once, read-many distribution of small
// read-only values: the threshold parameter vector at fit time and the
// final center matrix at assign time.
//
// A Var is sealed at construction: the value is serialized exactly once,
// and every consumer decodes its own private copy. No partition can observe
// or mutate another partition's view of the value.
package broadcast

import (
	"fmt"

	"github.com/Sathyasri1/mahout/codec"
)

// Var is a write-once broadcast variable.
type Var[T any] struct {
	c       codec.Codec
	payload []byte
}

// New seals value into a broadcast variable using the given codec.
// A nil codec means codec.Default.
func New[T any](c codec.Codec, value T) (*Var[T], error) {
	if c == nil {
		c = codec.Default
	}

	payload, err := c.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("broadcast: seal failed: %w", err)
	}

	return &Var[T]{c: c, payload: payload}, nil
}

// Value decodes a fresh copy of the broadcast value. Safe for concurrent
// use; every caller owns the returned copy.
func (v *Var[T]) Value() (T, error) {
	var out T
	if err := v.c.Unmarshal(v.payload, &out); err != nil {
		return out, fmt.Errorf("broadcast: decode failed: %w", err)
	}
	return out, nil
}

// Size returns the serialized payload size in bytes.
func (v *Var[T]) Size() int { return len(v.payload) }
