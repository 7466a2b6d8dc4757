package coro

// Func is a coroutine's entry point. It is invoked with the argument given
// to Create, and runs until it returns or panics; either way, control
// transfers back to the main coroutine, exactly as if the context primitive's
// uc_link pointed at main (see Scheduler.run).
type Func func(arg any)

// Coroutine is a single cooperatively scheduled unit of execution: an entry
// function and argument, a current State, and the single linkage field that
// lets it belong to at most one list (run queue, mutex wait list, or condvar
// wait list) at a time.
//
// The caller of Scheduler.Create owns the returned Coroutine; the scheduler
// only ever borrows it via list membership. Free must not be called on a
// Coroutine whose State is not StateExited or StateStopped.
type Coroutine struct {
	id    uint64
	state State
	next  *Coroutine

	// resume is this coroutine's half of the context-swap handshake: the
	// scheduler sends a token here to transfer control to it, and it blocks
	// receiving from this same channel whenever it has yielded control away.
	resume chan struct{}

	fn        Func
	arg       any
	stackSize int
}

// ID is a monotonically increasing identifier, unique within the Scheduler
// that created the coroutine (each Scheduler counts from 1), useful for
// logging and for the posix façade's thread table.
func (c *Coroutine) ID() uint64 { return c.id }

// State returns the coroutine's current scheduling state.
func (c *Coroutine) State() State { return c.state }

// StackSize returns the stack size given to (or defaulted by) Create. It is
// informational bookkeeping only: nothing allocates a distinct stack buffer
// for it, since each Coroutine runs on a goroutine's own runtime-managed
// stack.
func (c *Coroutine) StackSize() int { return c.stackSize }
