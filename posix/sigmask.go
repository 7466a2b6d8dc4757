package posix

import "golang.org/x/sys/unix"

// SigMaskHow selects pthread_sigmask's how argument.
type SigMaskHow int

const (
	SigBlock   SigMaskHow = unix.SIG_BLOCK
	SigUnblock SigMaskHow = unix.SIG_UNBLOCK
	SigSetMask SigMaskHow = unix.SIG_SETMASK
)

// SigMask forwards to pthread_sigmask through unix.PthreadSigmask. The mask
// it reads and changes is that of the OS thread the calling goroutine is
// running on at that moment. Each coroutine here is a goroutine that the Go
// runtime may run on any of its OS threads, so the mask is neither
// process-wide nor tied to one coroutine.
func SigMask(how SigMaskHow, set *unix.Sigset_t, oldset *unix.Sigset_t) error {
	return unix.PthreadSigmask(int(how), set, oldset)
}
