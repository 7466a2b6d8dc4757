// Package exampleiterator is an example type-safe iterator built directly on
// iterator.New.
package exampleiterator

import (
	coro "github.com/dracit7/gocrt"
	"github.com/dracit7/gocrt/iterator"
)

// Foo is the type that a FooIterator yields.
type Foo string

// NewFooIterator wraps iterator.New with a type-safe interface, running the
// iterator coroutine on s.
func NewFooIterator(s *coro.Scheduler, f func(yield func(Foo)) error) *FooIterator {
	var it FooIterator
	it.Next = iterator.New(s, func(yield func()) {
		it.Returned = f(func(v Foo) {
			it.Yielded = v
			yield()
		})
	})
	return &it
}

// A FooIterator holds what's needed to iterate Foos.
type FooIterator struct {
	// Next blocks until the next Foo is set on Yielded, or until the
	// iterator coroutine returns with a (maybe nil) error, which is set on
	// Returned.
	Next     iterator.Resume
	Yielded  Foo
	Returned error
}
