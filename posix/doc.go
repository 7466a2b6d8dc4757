// Package posix is a thin POSIX-threads-shaped façade over coro.Scheduler:
// CreateThread/Join map onto Scheduler.Create/Wait, and the Mutex/Cond
// handles map onto coro.Mutex/coro.Cond, guarded by bounded resource tables
// standing in for a fixed-size native thread/mutex/cond table.
//
// Mutex and Cond mirror a statically-initialized pthread_mutex_t/
// pthread_cond_t: NewMutex/NewCond bind a handle to a Facade's table without
// allocating anything, and the first Lock/TryLock/Wait/Signal/Broadcast call
// lazily claims a table slot for it, the same way CRT_VAR_INIT claims a
// crt_mutexes/crt_conds entry for a zero-initialized mutex or cond on its
// first real use.
package posix
