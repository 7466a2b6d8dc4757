// Package coro implements cooperative coroutines with their own stacks (in
// spirit; in Go, their own parked goroutine) on top of a FIFO run-queue
// scheduler, following the asymmetric main/non-main scheduling discipline of
// a single-threaded user-space runtime: at most one coroutine ever executes
// at a time, and only the distinguished "main" coroutine may resume one that
// has voluntarily gone idle.
//
// The scheduling primitive
//
// A Scheduler owns a run queue and exactly one "current" identity at a time,
// nil when the calling goroutine (the host, a.k.a. "main") is the one
// running. Coroutines are created with Create, which starts a goroutine
// parked on its own resume channel; nothing runs until the scheduler first
// switches into it. From inside a coroutine's entry function, Yield hands
// control to the next runnable coroutine, or returns at once without
// switching if nothing is runnable; YieldToMain always targets main directly
// (refusing if main is itself blocked in Wait); Wakeup resumes a specific,
// assumed-runnable coroutine directly.
//
// Only main may call Wait, which blocks (by repeatedly yielding) until a
// given coroutine has exited. Only non-main coroutines may call
// YieldToMain; calling it from main, or calling Wait from a non-main
// coroutine, is a programmer error and terminates the process with a
// diagnostic, matching the source library's fault-and-exit policy — not a
// Go panic, since a panic would unwind through whichever coroutine's
// goroutine happened to be running and corrupt scheduler invariants that
// depend on exactly one goroutine running at a time.
//
// Synchronization
//
// Mutex and Cond are built directly on the scheduler's suspension points;
// they keep their own private wait lists and never touch the run queue
// except to re-enqueue a coroutine they're done blocking.
package coro
