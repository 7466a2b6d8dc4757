package posix

import (
	"golang.org/x/sync/semaphore"

	coro "github.com/dracit7/gocrt"
)

// MaxMutexes and MaxConds bound how many live Mutex and Cond objects a
// Facade will hand out, matching pthread.c's CRT_MAX_MUTEX_NUM and
// CRT_MAX_COND_NUM fixed-size tables. Go has no need for a fixed array to
// hold them, but the resource ceiling itself is a property a reimplementation
// should keep: a runaway caller that never destroys its synchronization
// objects should see ErrResourceExhausted instead of growing without bound.
const (
	MaxMutexes = 128
	MaxConds   = 128
)

// ThreadID identifies a thread created by Facade.CreateThread, analogous to
// pthread_t.
type ThreadID uint64

// Facade is a POSIX-threads-shaped handle on a coro.Scheduler. The zero
// value is not usable; construct one with NewFacade.
//
// mutexTable and condTable are the tables a Mutex/Cond's slot index refers
// into, matching pthread.c's crt_mutexes/crt_conds arrays; index 0 is never
// assigned, so a zero slot index unambiguously means "uninitialized", the
// same way mutex->__align being 0 does in the C original. Freed indices are
// tracked on *Free so Destroy lets a later first-use allocation reuse them,
// exactly as CRT_VAR_INIT's scan for the first !valid slot would.
type Facade struct {
	Scheduler *coro.Scheduler

	nextThread ThreadID
	threads    map[ThreadID]*coro.Coroutine

	mutexSlots *semaphore.Weighted
	mutexTable []*coro.Mutex
	mutexFree  []int32

	condSlots *semaphore.Weighted
	condTable []*coro.Cond
	condFree  []int32
}

// NewFacade constructs a Facade driving s.
func NewFacade(s *coro.Scheduler) *Facade {
	return &Facade{
		Scheduler: s,
		threads:   make(map[ThreadID]*coro.Coroutine),

		mutexSlots: semaphore.NewWeighted(MaxMutexes),
		mutexTable: []*coro.Mutex{nil}, // index 0 reserved as "uninitialized"

		condSlots: semaphore.NewWeighted(MaxConds),
		condTable: []*coro.Cond{nil}, // index 0 reserved as "uninitialized"
	}
}

// allocMutex claims a free slot, reusing a Destroyed one if one exists, and
// reports ErrResourceExhausted once MaxMutexes are live at once.
func (f *Facade) allocMutex() (int32, error) {
	if !f.mutexSlots.TryAcquire(1) {
		return 0, ErrResourceExhausted
	}
	if n := len(f.mutexFree); n > 0 {
		slot := f.mutexFree[n-1]
		f.mutexFree = f.mutexFree[:n-1]
		f.mutexTable[slot] = coro.NewMutex(f.Scheduler)
		return slot, nil
	}
	f.mutexTable = append(f.mutexTable, coro.NewMutex(f.Scheduler))
	return int32(len(f.mutexTable) - 1), nil
}

// freeMutex returns slot to the free list, as pthread_mutex_destroy marking
// a crt_mutexes entry !valid.
func (f *Facade) freeMutex(slot int32) {
	f.mutexTable[slot] = nil
	f.mutexFree = append(f.mutexFree, slot)
	f.mutexSlots.Release(1)
}

// allocCond mirrors allocMutex for the condition-variable table.
func (f *Facade) allocCond() (int32, error) {
	if !f.condSlots.TryAcquire(1) {
		return 0, ErrResourceExhausted
	}
	if n := len(f.condFree); n > 0 {
		slot := f.condFree[n-1]
		f.condFree = f.condFree[:n-1]
		f.condTable[slot] = coro.NewCond(f.Scheduler)
		return slot, nil
	}
	f.condTable = append(f.condTable, coro.NewCond(f.Scheduler))
	return int32(len(f.condTable) - 1), nil
}

// freeCond mirrors freeMutex for the condition-variable table.
func (f *Facade) freeCond(slot int32) {
	f.condTable[slot] = nil
	f.condFree = append(f.condFree, slot)
	f.condSlots.Release(1)
}
