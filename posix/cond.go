package posix

import coro "github.com/dracit7/gocrt"

// Cond is a pthread_cond_t-shaped handle, lazily allocated from a Facade's
// table on first use exactly like Mutex.
type Cond struct {
	f    *Facade
	slot int32
}

// NewCond returns a Cond bound to f's table. No slot is allocated yet.
func NewCond(f *Facade) *Cond {
	return &Cond{f: f}
}

// ensure performs the lazy first-use slot allocation, if it hasn't happened
// yet, and returns the underlying coro.Cond.
func (c *Cond) ensure() (*coro.Cond, error) {
	if c.slot != 0 {
		return c.f.condTable[c.slot], nil
	}
	slot, err := c.f.allocCond()
	if err != nil {
		return nil, err
	}
	c.slot = slot
	return c.f.condTable[slot], nil
}

// Wait releases m and blocks until signaled, as pthread_cond_wait. m must
// already hold an allocated slot — i.e. have been locked or trylocked at
// least once — or Wait reports coro.ErrNotLocked, the same way
// pthread_cond_wait rejects an uninitialized (!valid) mutex without trying
// to lazily initialize it itself.
func (c *Cond) Wait(m *Mutex) error {
	if m.slot == 0 {
		return coro.ErrNotLocked
	}
	mu := m.f.mutexTable[m.slot]
	cv, err := c.ensure()
	if err != nil {
		return err
	}
	return cv.Wait(mu)
}

// Signal wakes one waiter, as pthread_cond_signal.
func (c *Cond) Signal() error {
	cv, err := c.ensure()
	if err != nil {
		return err
	}
	cv.Signal()
	return nil
}

// Broadcast wakes every waiter, as pthread_cond_broadcast.
func (c *Cond) Broadcast() error {
	cv, err := c.ensure()
	if err != nil {
		return err
	}
	cv.Broadcast()
	return nil
}

// Destroy returns the condition variable's slot, if one was ever allocated,
// to its Facade's table for reuse. The Cond must not be used afterward.
func (c *Cond) Destroy() {
	if c.slot == 0 {
		return
	}
	f, slot := c.f, c.slot
	c.slot = 0
	f.freeCond(slot)
}
