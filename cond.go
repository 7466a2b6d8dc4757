package coro

// Cond is a condition variable scheduled by a Scheduler. It carries no
// reference to a Mutex of its own — Wait takes one explicitly, matching the
// pthread-style API where signal and broadcast take none — so it cannot
// perform the kind of direct hand-off a Mutex does; see Wait for how it
// resolves that.
type Cond struct {
	s       *Scheduler
	waiters list
}

// NewCond constructs a Cond scheduled by s.
func NewCond(s *Scheduler) *Cond {
	return &Cond{s: s}
}

// Wait atomically unlocks m and blocks the calling coroutine until a Signal
// or Broadcast wakes it, then reacquires m before returning. It is a
// programming error to call Wait from main. It returns ErrNotOwner if the
// caller does not hold m.
//
// Because Cond.Signal and Cond.Broadcast take no Mutex argument, there is no
// way for them to hand m off to a waiter the way Mutex.Unlock hands itself
// off to the next lock waiter — they can only put a waiter back on the run
// queue. A non-blocking re-lock after wakeup could therefore fail and return
// control to the caller still unlocked, with nothing to retry it. Wait
// closes that gap by reacquiring m with a blocking Lock rather than a
// TryLock, so a lost race against another locker simply queues the waiter
// again instead of silently returning without the mutex held.
func (c *Cond) Wait(m *Mutex) error {
	self := c.s.Current()
	if self == nil {
		c.s.fatal("Cond.Wait called from main")
		return nil
	}
	if !m.isOwner(self) {
		return ErrNotOwner
	}
	if err := m.Unlock(); err != nil {
		return err
	}
	self.state = StateLocked
	c.waiters.append(self)
	c.s.park()
	m.Lock()
	return nil
}

// Signal wakes one waiting coroutine, if any: it is marked ready and
// appended to the run queue. Signal does not context switch; the woken
// coroutine runs on its next scheduled turn.
func (c *Cond) Signal() {
	next, ok := c.waiters.popHead()
	if !ok {
		return
	}
	c.s.ready(next)
}

// Broadcast wakes every coroutine waiting at the time it is called. The
// count of waiters is taken once, before popping anything: reading the live
// list length on every loop iteration while each iteration's pop is
// simultaneously shrinking it would terminate the loop early, waking only
// roughly half the waiters.
func (c *Cond) Broadcast() {
	n := c.waiters.count
	for i := 0; i < n; i++ {
		next, ok := c.waiters.popHead()
		if !ok {
			break
		}
		c.s.ready(next)
	}
}
