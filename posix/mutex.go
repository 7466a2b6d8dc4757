package posix

import coro "github.com/dracit7/gocrt"

// Mutex is a pthread_mutex_t-shaped handle: slot is 0 until the first
// operation lazily allocates a table entry for it, the same way a
// statically-initialized pthread_mutex_t's __align field stays 0 until
// CRT_VAR_INIT claims a crt_mutexes slot for it on first lock. NewMutex just
// binds a Mutex to the Facade whose table it will allocate from; it performs
// no allocation and cannot fail.
//
// Unlike the C original's single process-wide table, a slot index here is
// only meaningful relative to the Facade it was allocated from, so that
// binding has to be explicit; there is no concurrent access to race over
// within it, since the scheduler never runs more than one goroutine at a
// time, so the lazy check-then-allocate below needs no synchronization.
type Mutex struct {
	f    *Facade
	slot int32
}

// NewMutex returns a Mutex bound to f's table. No slot is allocated yet.
func NewMutex(f *Facade) *Mutex {
	return &Mutex{f: f}
}

// ensure performs the lazy first-use slot allocation, if it hasn't happened
// yet, and returns the underlying coro.Mutex.
func (m *Mutex) ensure() (*coro.Mutex, error) {
	if m.slot != 0 {
		return m.f.mutexTable[m.slot], nil
	}
	slot, err := m.f.allocMutex()
	if err != nil {
		return nil, err
	}
	m.slot = slot
	return m.f.mutexTable[slot], nil
}

// Lock blocks until the mutex is acquired, as pthread_mutex_lock. It
// reports ErrResourceExhausted if this is the first use of m and f's table
// is full.
func (m *Mutex) Lock() error {
	mu, err := m.ensure()
	if err != nil {
		return err
	}
	mu.Lock()
	return nil
}

// TryLock acquires the mutex without blocking, returning ErrWouldBlock if it
// is already held, as pthread_mutex_trylock.
func (m *Mutex) TryLock() error {
	mu, err := m.ensure()
	if err != nil {
		return err
	}
	if !mu.TryLock() {
		return ErrWouldBlock
	}
	return nil
}

// Unlock releases the mutex, as pthread_mutex_unlock. A Mutex that has never
// had a slot allocated for it — never locked or trylocked —
// reports coro.ErrNotLocked, the same way pthread_mutex_unlock rejects an
// uninitialized (!valid) mutex.
func (m *Mutex) Unlock() error {
	if m.slot == 0 {
		return coro.ErrNotLocked
	}
	return m.f.mutexTable[m.slot].Unlock()
}

// Destroy returns the mutex's slot, if one was ever allocated, to its
// Facade's table for reuse. The Mutex must not be used afterward.
func (m *Mutex) Destroy() {
	if m.slot == 0 {
		return
	}
	f, slot := m.f, m.slot
	m.slot = 0
	f.freeMutex(slot)
}
