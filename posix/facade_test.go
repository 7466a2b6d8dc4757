package posix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	coro "github.com/dracit7/gocrt"
	"github.com/dracit7/gocrt/posix"
)

func newTestFacade() *posix.Facade {
	s := coro.NewScheduler(coro.WithLogger(coro.NewNopLogger()))
	return posix.NewFacade(s)
}

// TestCreateThreadJoin covers pthread_create/pthread_join's round trip: the
// new thread runs to completion, Join reports its exit, and a later Join of
// the same id reports ErrUnknownThread since the thread was forgotten.
func TestCreateThreadJoin(t *testing.T) {
	f := newTestFacade()

	var ran bool
	id := f.CreateThread(func(arg any) {
		ran = true
		require.Equal(t, "payload", arg)
	}, "payload")

	require.NoError(t, f.Join(id))
	require.True(t, ran)

	require.ErrorIs(t, f.Join(id), posix.ErrUnknownThread)
}

// TestJoinUnknownThread covers Join of an id that was never created.
func TestJoinUnknownThread(t *testing.T) {
	f := newTestFacade()
	require.ErrorIs(t, f.Join(posix.ThreadID(999)), posix.ErrUnknownThread)
}

// TestMutexSlotExhaustion covers the bounded-table behavior a Mutex's lazy
// first-use allocation shares with pthread_mutex's fixed CRT_MAX_MUTEX_NUM
// array: once MaxMutexes are live, the next first-use Lock fails until one is
// Destroyed. NewMutex itself never fails, since it only binds the handle to
// f — it does not yet claim a slot.
func TestMutexSlotExhaustion(t *testing.T) {
	f := newTestFacade()

	var held []*posix.Mutex
	for i := 0; i < posix.MaxMutexes; i++ {
		m := posix.NewMutex(f)
		require.NoError(t, m.Lock())
		held = append(held, m)
	}

	overflow := posix.NewMutex(f)
	require.ErrorIs(t, overflow.Lock(), posix.ErrResourceExhausted)

	require.NoError(t, held[0].Unlock())
	held[0].Destroy()

	require.NoError(t, overflow.Lock())
}

// TestCondSlotExhaustion mirrors TestMutexSlotExhaustion for the condition
// variable table.
func TestCondSlotExhaustion(t *testing.T) {
	f := newTestFacade()

	var held []*posix.Cond
	for i := 0; i < posix.MaxConds; i++ {
		c := posix.NewCond(f)
		require.NoError(t, c.Signal())
		held = append(held, c)
	}

	overflow := posix.NewCond(f)
	require.ErrorIs(t, overflow.Signal(), posix.ErrResourceExhausted)

	held[0].Destroy()

	require.NoError(t, overflow.Signal())
}

// TestMutexTryLockWouldBlock covers the pthread_mutex_trylock error mapping:
// a contended TryLock reports ErrWouldBlock rather than blocking.
func TestMutexTryLockWouldBlock(t *testing.T) {
	f := newTestFacade()
	m := posix.NewMutex(f)

	require.NoError(t, m.Lock())
	require.ErrorIs(t, m.TryLock(), posix.ErrWouldBlock)
	require.NoError(t, m.Unlock())
	require.NoError(t, m.TryLock())
}

// TestMutexUnlockNeverLocked covers the uninitialized-handle error mapping: a
// Mutex that has never had a slot allocated reports coro.ErrNotLocked on
// Unlock, the same way pthread_mutex_unlock rejects a !valid mutex.
func TestMutexUnlockNeverLocked(t *testing.T) {
	f := newTestFacade()
	m := posix.NewMutex(f)
	require.ErrorIs(t, m.Unlock(), coro.ErrNotLocked)
}

// TestCondWaitUnlockedMutex covers pthread_cond_wait's check-without-lazily-
// initializing ordering: waiting on a Mutex that was never locked reports
// coro.ErrNotLocked without ever allocating a slot for the Cond.
func TestCondWaitUnlockedMutex(t *testing.T) {
	f := newTestFacade()
	m := posix.NewMutex(f)
	c := posix.NewCond(f)
	require.ErrorIs(t, c.Wait(m), coro.ErrNotLocked)
}

// TestCondSignalWakesJoinedThread exercises Cond through the full Facade
// façade: a thread waits on the condition, main signals it, and Join
// observes the thread exit.
func TestCondSignalWakesJoinedThread(t *testing.T) {
	f := newTestFacade()
	m := posix.NewMutex(f)
	c := posix.NewCond(f)

	ready := false
	id := f.CreateThread(func(any) {
		require.NoError(t, m.Lock())
		for !ready {
			require.NoError(t, c.Wait(m))
		}
		require.NoError(t, m.Unlock())
	}, nil)

	require.NoError(t, m.Lock())
	ready = true
	require.NoError(t, c.Signal())
	require.NoError(t, m.Unlock())

	require.NoError(t, f.Join(id))
}

// TestSigMask covers the pthread_sigmask forwarding: blocking SIGUSR1 is
// observable in a subsequently fetched mask. The original mask is put back
// with SigSetMask when the test ends; that restore is not itself checked.
func TestSigMask(t *testing.T) {
	var original unix.Sigset_t
	require.NoError(t, posix.SigMask(posix.SigBlock, nil, &original))
	defer posix.SigMask(posix.SigSetMask, &original, nil)

	var toBlock unix.Sigset_t
	toBlock.Val[0] = 1 << (uint(unix.SIGUSR1) - 1)

	require.NoError(t, posix.SigMask(posix.SigBlock, &toBlock, nil))

	var current unix.Sigset_t
	require.NoError(t, posix.SigMask(posix.SigBlock, nil, &current))
	require.NotEqual(t, uint64(0), current.Val[0]&toBlock.Val[0])
}
