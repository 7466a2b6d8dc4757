package coro_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	coro "github.com/dracit7/gocrt"
)

func newTestScheduler() *coro.Scheduler {
	return coro.NewScheduler(coro.WithLogger(coro.NewNopLogger()))
}

// TestPingPong exercises the asymmetric scheduling rule directly: two
// non-main coroutines can hand off to each other only while the target is
// READY, never while it is YIELD, so a lone pair cannot bounce back and
// forth on their own — only main, which pops the run queue unconditionally,
// can resume a YIELD coroutine. For this exact scenario (two coroutines,
// each printing, yielding once, printing again), B's own yield finds
// nothing runnable (A is sitting in the queue as YIELD, and the non-main
// selection rule skips YIELD entries), so B falls straight through to its
// second print and returns before A ever gets a second turn.
func TestPingPong(t *testing.T) {
	s := newTestScheduler()
	var log []string

	a := s.Create(func(any) {
		log = append(log, "A1")
		s.Yield()
		log = append(log, "A2")
	}, nil, 0)

	s.Create(func(any) {
		log = append(log, "B1")
		s.Yield()
		log = append(log, "B2")
	}, nil, 0)

	s.Wait(a)

	require.Equal(t, []string{"A1", "B1", "B2", "A2"}, log)
}

// TestYieldAlone checks that yielding with no other coroutine created returns
// false, and main is left exactly as it was — still identified by a nil
// Current().
func TestYieldAlone(t *testing.T) {
	s := newTestScheduler()
	require.False(t, s.Yield())
	require.Nil(t, s.Current())
}

// TestCurrentIdentity checks that Current distinguishes main (nil) from a
// running coroutine.
func TestCurrentIdentity(t *testing.T) {
	s := newTestScheduler()
	require.Nil(t, s.Current())

	var sawSelf *coro.Coroutine
	c := s.Create(func(any) {
		sawSelf = s.Current()
	}, nil, 0)

	s.Wait(c)
	require.Same(t, c, sawSelf)
	require.Nil(t, s.Current())
}

// TestFreeRequiresExited covers the Free/Wait/Create round trip: Free
// refuses a coroutine that has not exited, and succeeds once it has.
func TestFreeRequiresExited(t *testing.T) {
	s := newTestScheduler()
	c := s.Create(func(any) {
		s.Yield()
	}, nil, 0)

	require.ErrorIs(t, s.Free(c), coro.ErrNotExited)

	s.Wait(c)
	require.NoError(t, s.Free(c))
}

// TestYieldFIFO checks the strict-FIFO ordering guarantee (property 4):
// coroutines appended to the run queue in order A, B, C run in that order
// when main drives the schedule.
func TestYieldFIFO(t *testing.T) {
	s := newTestScheduler()
	var order []string

	names := []string{"A", "B", "C"}
	var last *coro.Coroutine
	for _, name := range names {
		name := name
		last = s.Create(func(any) {
			order = append(order, name)
		}, nil, 0)
	}

	s.Wait(last)
	require.Equal(t, names, order)
}
