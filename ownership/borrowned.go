// Package ownership provides a reference that either owns its value or
// borrows someone else's.
package ownership

import (
	"errors"
	"fmt"
)

var (
	ErrNotOwned    = errors.New("value is borrowed, not owned")
	ErrNotBorrowed = errors.New("value is owned, not borrowed")
)

// Borrowned holds either an owned value or a pointer to a borrowed one.
// Code taking a *Borrowned[T] works the same with both. Writes through Get
// reach the lender when the value is borrowed.
type Borrowned[T any] struct {
	owned    T
	borrowed *T
}

// Owned wraps v, taking ownership of it.
func Owned[T any](v T) *Borrowned[T] {
	return &Borrowned[T]{owned: v}
}

// Borrowed wraps a value owned elsewhere.
func Borrowed[T any](p *T) *Borrowned[T] {
	if p == nil {
		panic("ownership: borrowing nil")
	}
	return &Borrowned[T]{borrowed: p}
}

// IsOwned reports whether b owns its value.
func (b *Borrowned[T]) IsOwned() bool {
	return b.borrowed == nil
}

// Get returns a pointer to the value, owned or borrowed.
func (b *Borrowned[T]) Get() *T {
	if b.borrowed != nil {
		return b.borrowed
	}
	return &b.owned
}

// TryIntoOwned returns the owned value, or ErrNotOwned.
func (b *Borrowned[T]) TryIntoOwned() (T, error) {
	if !b.IsOwned() {
		var zero T
		return zero, ErrNotOwned
	}
	return b.owned, nil
}

// TryIntoBorrowed returns the borrowed pointer, or ErrNotBorrowed.
func (b *Borrowned[T]) TryIntoBorrowed() (*T, error) {
	if b.IsOwned() {
		return nil, ErrNotBorrowed
	}
	return b.borrowed, nil
}

// Clone returns an owned shallow copy of the value, whether or not b owns it.
func (b *Borrowned[T]) Clone() *Borrowned[T] {
	return Owned(*b.Get())
}

func (b *Borrowned[T]) String() string {
	return fmt.Sprint(*b.Get())
}

// Equal compares the values behind two references, ignoring ownership.
func Equal[T comparable](a, b *Borrowned[T]) bool {
	return *a.Get() == *b.Get()
}
