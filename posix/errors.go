package posix

import "errors"

var (
	// ErrUnknownThread is returned by Join for a ThreadID that Facade has no
	// record of, mirroring pthread_join's -ESRCH.
	ErrUnknownThread = errors.New("posix: unknown thread id")
	// ErrWouldBlock is returned by Mutex.TryLock when the mutex is already
	// held, mirroring pthread_mutex_trylock's -EBUSY.
	ErrWouldBlock = errors.New("posix: operation would block")
	// ErrResourceExhausted is returned by a Mutex's or Cond's first use once
	// a Facade's bounded slot table is full, mirroring CRT_VAR_INIT's -EAGAIN
	// when no free array slot remains.
	ErrResourceExhausted = errors.New("posix: resource table exhausted")
)
