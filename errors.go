package coro

import "errors"

// Benign errors: misuse that is reported to the caller rather than crashing
// the process.
var (
	// ErrNotLocked is returned by Mutex.Unlock when the mutex is not held.
	ErrNotLocked = errors.New("coro: mutex is not locked")
	// ErrNotOwner is returned by Cond.Wait when the calling coroutine does
	// not currently own the mutex passed to it.
	ErrNotOwner = errors.New("coro: caller does not own the mutex")
	// ErrNotExited is returned by Scheduler.Free for a record that is
	// neither StateExited nor StateStopped.
	ErrNotExited = errors.New("coro: coroutine is neither exited nor stopped")
)
