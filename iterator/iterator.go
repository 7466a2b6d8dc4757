// Package iterator implements a generator protocol on top of coro.Scheduler:
// a coroutine is driven directly, one turn at a time, by the caller of the
// Resume function it returns, rather than by the scheduler's FIFO ordering.
package iterator

import (
	"reflect"

	coro "github.com/dracit7/gocrt"
)

// Resume blocks the caller until the underlying coroutine either yields
// control back or returns, reporting whether it is still alive. Calling
// Resume again after it has returned false is a no-op that keeps returning
// false.
type Resume = func() (alive bool)

// New creates a coroutine on s driven generator-style: each call to the
// returned Resume function switches directly into the coroutine via
// Scheduler.Wakeup, bypassing the run queue's ordering entirely, and blocks
// until f calls yield or returns.
//
// Because Yield and YieldToMain both leave the caller sitting in the run
// queue when they switch away, Resume reclaims the coroutine from the queue
// before waking it directly each time, so it is never a member of both the
// queue and whatever Wakeup is about to do.
func New(s *coro.Scheduler, f func(yield func())) Resume {
	c := s.Create(func(arg any) {
		f(func() { s.YieldToMain() })
	}, nil, 0)

	return func() bool {
		if c.State() == coro.StateExited {
			return false
		}
		s.Reclaim(c)
		s.Wakeup(c)
		return c.State() != coro.StateExited
	}
}

// NewIterator implements an iterator protocol on top of a raw coroutine.
//
// When the coroutine yields, it calls a yield function with a value. This
// value is set on the 'yielded' parameter, which must be a pointer to a
// value settable to the yielded value.
//
// When the coroutine returns, the return value is set the same way on the
// 'returned' parameter.
//
// See package exampleiterator for a type-safe iterator that calls New
// directly instead of going through this function.
func NewIterator(s *coro.Scheduler, yielded, returned any, f func(yield func(any)) any) Resume {
	setYielded := reflect.ValueOf(yielded).Elem().Set
	setReturned := reflect.ValueOf(returned).Elem().Set
	return New(s, func(yield func()) {
		ret := f(func(v any) {
			setYielded(reflect.ValueOf(v))
			yield()
		})
		setReturned(reflect.ValueOf(ret))
	})
}
