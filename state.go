package coro

// State is a coroutine's position in the lifecycle described by the
// scheduler's invariants: a record is in at most one list (run queue, mutex
// wait list, condvar wait list) at a time, and its State determines which
// list (if any) that may be.
type State int

const (
	// StateRunning means the coroutine is the one currently executing. It is
	// in no list.
	StateRunning State = iota
	// StateReady means the coroutine is in the run queue, awaiting a turn.
	StateReady
	// StateYield means the coroutine has nothing to do right now. It may
	// still be present in the run queue, but the scheduler skips over it
	// when a non-main coroutine is choosing who runs next.
	StateYield
	// StateLocked means the coroutine is blocked in some mutex or condition
	// variable's wait list. It is never in the run queue.
	StateLocked
	// StateStopped means the coroutine was just created and has not yet been
	// scheduled for the first time.
	StateStopped
	// StateExited means the coroutine's entry function has returned. It is
	// in no list and is eligible to be freed.
	StateExited
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateReady:
		return "ready"
	case StateYield:
		return "yield"
	case StateLocked:
		return "locked"
	case StateStopped:
		return "stopped"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}
