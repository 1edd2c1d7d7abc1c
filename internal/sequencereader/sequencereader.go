// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package sequencereader

import (
	"github.com/cockroachdb/errors"
)

// ErrSequenceEnded defines that there are no items left to read.
var ErrSequenceEnded = errors.New("the sequence is ended")

// SequenceReader defines forward-only reader over a slice of items.
type SequenceReader[T any] struct {
	items []T
	pos   int
}

// New is a constructor for SequenceReader.
func New[T any](items []T) *SequenceReader[T] {
	return &SequenceReader[T]{items: items}
}

// HasNext returns true if the sequence is not ended.
func (sr *SequenceReader[T]) HasNext() bool {
	return sr.pos < len(sr.items)
}

// Next returns the current item and moves the reader forward.
func (sr *SequenceReader[T]) Next() (T, error) {
	item, err := sr.Peek()
	if err != nil {
		return item, err
	}

	sr.pos++

	return item, nil
}

// Peek returns the current item without moving the reader.
func (sr *SequenceReader[T]) Peek() (T, error) {
	if !sr.HasNext() {
		var zero T
		return zero, ErrSequenceEnded
	}

	return sr.items[sr.pos], nil
}

// Skip moves the reader n items forward, fails if fewer than n items are left.
func (sr *SequenceReader[T]) Skip(n int) error {
	if n < 0 || sr.Len() < n {
		return ErrSequenceEnded
	}

	sr.pos += n

	return nil
}

// Len returns how many items are left.
func (sr *SequenceReader[T]) Len() int {
	return len(sr.items) - sr.pos
}
