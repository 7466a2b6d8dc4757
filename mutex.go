package coro

// Mutex is a non-reentrant lock built directly on Scheduler, in a hand-off
// style: Unlock never leaves the lock briefly unheld while waiters exist, it
// transfers ownership to the next waiter atomically with the wakeup.
type Mutex struct {
	s           *Scheduler
	locked      bool
	owner       *Coroutine // nil owner with locked true means main holds it
	ownerIsMain bool
	waiters     list
}

// isOwner reports whether self (nil meaning main) is the current owner.
func (m *Mutex) isOwner(self *Coroutine) bool {
	if self == nil {
		return m.ownerIsMain
	}
	return !m.ownerIsMain && self == m.owner
}

// NewMutex constructs an unlocked Mutex scheduled by s.
func NewMutex(s *Scheduler) *Mutex {
	return &Mutex{s: s}
}

// Lock acquires the mutex, blocking the caller if it is already held.
//
// When the caller is main and the mutex is contended, Lock does not enqueue
// main onto the wait list — main is never a member of any list, per the
// Scheduler's rules — instead it directly wakes the current owner via
// Scheduler.Wakeup so the owner can make progress toward Unlock, and
// rechecks whether the mutex is now free each time it regains control,
// retrying until it observes the lock free and claims it.
//
// When the caller is a non-main coroutine, it joins the wait list in
// StateLocked and parks. It only ever resumes because Unlock handed it
// ownership directly — Unlock sets the new owner before readying it — so
// there is nothing to recheck: Lock returns as soon as park does.
func (m *Mutex) Lock() {
	self := m.s.Current()
	if self == nil {
		for m.locked {
			m.s.Wakeup(m.owner)
		}
		m.locked = true
		m.owner = nil
		m.ownerIsMain = true
		return
	}
	if !m.locked {
		m.locked = true
		m.owner = self
		m.ownerIsMain = false
		return
	}
	self.state = StateLocked
	m.waiters.append(self)
	m.s.park()
}

// TryLock acquires the mutex without blocking, reporting whether it
// succeeded.
func (m *Mutex) TryLock() bool {
	if m.locked {
		return false
	}
	self := m.s.Current()
	m.locked = true
	m.owner = self
	m.ownerIsMain = self == nil
	return true
}

// Unlock releases the mutex. If a coroutine is waiting, ownership is handed
// to it directly — its state becomes StateReady and it is appended to the
// run queue as the new owner — rather than simply marking the mutex free and
// letting whoever locks next take it, so the mutex is never observably
// unheld while a waiter is queued for it. Unlock itself does not context
// switch; the new owner runs on its next scheduled turn, same as any other
// run-queue entry.
//
// Unlock returns ErrNotLocked if the mutex is not held, and ErrNotOwner if
// the caller is not the current owner.
func (m *Mutex) Unlock() error {
	if !m.locked {
		return ErrNotLocked
	}
	self := m.s.Current()
	if !m.isOwner(self) {
		return ErrNotOwner
	}
	next, ok := m.waiters.popHead()
	if !ok {
		m.locked = false
		m.owner = nil
		m.ownerIsMain = false
		return nil
	}
	m.owner = next
	m.ownerIsMain = false
	m.s.ready(next)
	return nil
}
