package coro

import (
	"fmt"
	"os"
)

// Scheduler is the run-queue driven, single-threaded, cooperative scheduler.
// Exactly one goroutine is ever logically "running" at a time, the identity
// of which is tracked in current (nil means the main coroutine — the
// goroutine that called NewScheduler — is running). Fields are intentionally
// unsynchronized: the context-swap handshake in switchTo hands a single
// token between goroutines over unbuffered channels, and only the goroutine
// holding that token ever touches Scheduler state, which gives the
// happens-before guarantee the fields need without a mutex.
type Scheduler struct {
	rq      list
	current *Coroutine

	// mainResume is main's half of the context-swap handshake, played by the
	// goroutine that constructed the Scheduler. Main is never placed in rq:
	// Wakeup and Yield both special-case a nil current rather than append
	// it, which avoids ever enqueuing a nil entry when called from main.
	mainResume chan struct{}
	// mainWaiting is set while main is inside Wait's polling loop, mirroring
	// crt_wait's main_waiting flag: a coroutine yielding to main while main is
	// already driving the scheduler loop has nothing to switch into, so
	// YieldToMain reports false without switching in that case.
	mainWaiting bool

	log              Logger
	nextID           uint64
	defaultStackSize int
}

// NewScheduler constructs a Scheduler ready to Create coroutines on. The
// goroutine that calls NewScheduler, and every goroutine that subsequently
// calls into the returned Scheduler without having itself been Created by
// it, plays the role of the main coroutine.
func NewScheduler(opts ...SetOption) *Scheduler {
	var o Options
	for _, opt := range defaultOptions {
		opt(&o)
	}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = newDefaultLogger(o.logLevel)
	}
	return &Scheduler{
		mainResume:       make(chan struct{}),
		log:              log,
		defaultStackSize: o.stackSize,
	}
}

// Current returns the coroutine presently executing, or nil if it is main.
func (s *Scheduler) Current() *Coroutine { return s.current }

// Create allocates a Coroutine backed by its own parked goroutine, and
// enqueues it as ready to run. stackSize of 0 or less uses the Scheduler's
// configured default; the value is bookkeeping only (see Coroutine.StackSize).
//
// The parked goroutine blocks immediately on its resume channel: nothing
// runs until the scheduler's FIFO rules hand it a turn via switchTo, the
// same way a freshly built context is left unentered until its first
// swap-in.
func (s *Scheduler) Create(fn Func, arg any, stackSize int) *Coroutine {
	if stackSize <= 0 {
		stackSize = s.defaultStackSize
	}
	s.nextID++
	c := &Coroutine{
		id:        s.nextID,
		state:     StateStopped,
		resume:    make(chan struct{}),
		fn:        fn,
		arg:       arg,
		stackSize: stackSize,
	}
	go s.run(c)
	s.ready(c)
	return c
}

// run is a Created coroutine's parked goroutine body. On return or panic it
// always reports back to main specifically — never to whichever coroutine
// last switched into it — the same way the C original's uc_link is wired to
// &main_crt.context rather than to the caller of the most recent crt_switch.
func (s *Scheduler) run(c *Coroutine) {
	<-c.resume
	defer func() {
		if r := recover(); r != nil {
			s.log.Err().Str("panic", fmt.Sprint(r)).Log("coroutine panicked")
		}
		c.state = StateExited
		s.mainResume <- struct{}{}
	}()
	c.fn(c.arg)
}

// ready marks c runnable and appends it to the tail of the run queue. Unlike
// Wakeup, it never performs a context switch. It is called for a freshly
// Created coroutine, and by Mutex.Unlock, Cond.Signal and Cond.Broadcast for
// a coroutine they have just taken off their own wait list.
func (s *Scheduler) ready(c *Coroutine) {
	c.state = StateReady
	s.rq.append(c)
}

// findRunnable implements the scheduler's two asymmetric selection rules.
// Main (isMain true) pops the head of the run queue unconditionally — whatever
// its state, since only main ever pops YIELD entries left behind by earlier
// Case B searches. A non-main coroutine only ever dequeues an entry already
// in StateReady: it takes the head if ready, otherwise walks past YIELD
// entries (without reordering them) looking for the first ready one.
func (s *Scheduler) findRunnable(isMain bool) (*Coroutine, bool) {
	if isMain {
		return s.rq.popHead()
	}
	if s.rq.head != nil && s.rq.head.state == StateReady {
		return s.rq.popHead()
	}
	return s.rq.spliceFirstReadyAfterHead()
}

// switchTo hands the single execution token to target (nil meaning main)
// and then blocks until the token is handed back specifically to the caller,
// however much later that turns out to be and regardless of who it comes
// from. That symmetry is what lets a coroutine's exit — which always reports
// to mainResume — correctly wake main even when the coroutine that most
// recently switched into the exiting one is a different, still-suspended
// coroutine: that suspended switchTo call simply stays parked until the run
// queue schedules it again.
func (s *Scheduler) switchTo(target *Coroutine) {
	if target != nil && (target.state == StateExited || target.state == StateStopped) {
		s.fatal("switchTo: target is not runnable")
		return
	}
	prev := s.current
	s.current = target
	if target != nil {
		target.state = StateRunning
		target.resume <- struct{}{}
	} else {
		s.mainResume <- struct{}{}
	}
	if prev == nil {
		<-s.mainResume
	} else {
		<-prev.resume
	}
	s.current = prev
}

// park hands off control on behalf of a coroutine that has already placed
// itself on some other wait list (a Mutex's or Cond's), and so must not also
// be appended to the run queue — unlike Yield, which always does that for a
// voluntarily yielding, still-runnable coroutine. Reusing Yield's full
// selection-plus-append logic for this case would double-list the caller,
// once on the wait list it just joined and once on the run queue Case B
// appends it to, violating the one-list-at-a-time invariant. park never
// appends self to any list; callers are responsible for that before calling
// it. It is never called by main.
func (s *Scheduler) park() {
	target, ok := s.findRunnable(false)
	if !ok {
		s.switchTo(nil)
		return
	}
	s.switchTo(target)
}

// Yield gives up the current turn, letting the scheduler pick the next
// runnable coroutine per findRunnable's rules. It reports whether a switch
// happened. Called with no one else runnable, it returns false immediately
// without switching, and the caller's state ends RUNNING. Called by a
// non-main coroutine, it marks itself StateYield and appends itself to the
// run queue before switching away, exactly as Case B requires; called by
// main it does neither, since main is never a member of the run queue.
func (s *Scheduler) Yield() bool {
	self := s.current
	isMain := self == nil
	if !isMain {
		self.state = StateYield
	}
	target, ok := s.findRunnable(isMain)
	if !ok {
		if !isMain {
			self.state = StateRunning
		}
		return false
	}
	if !isMain {
		s.rq.append(self)
	}
	s.switchTo(target)
	return true
}

// YieldToMain gives up the turn directly to main, bypassing the run queue,
// and reports whether a switch happened. It is a programming error to call
// it from main itself. If main is already driving the scheduler from within
// Wait, there is no parked main context to switch into, so this reports
// false without switching rather than degrading to a plain Yield: there is
// no other scheduling decision to fall back to.
func (s *Scheduler) YieldToMain() bool {
	self := s.current
	if self == nil {
		s.fatal("YieldToMain called from main")
		return false
	}
	if s.mainWaiting {
		return false
	}
	self.state = StateYield
	s.rq.append(self)
	s.switchTo(nil)
	return true
}

// Wakeup transfers control directly to target, bypassing the run-queue
// search entirely. If the caller is a coroutine, it is first marked ready
// and appended to the run queue so it gets its own turn back later; if the
// caller is main, nothing is enqueued — main is never a member of the run
// queue. That asymmetry avoids ever enqueuing a nil entry when called from
// main, which is exactly the path a contended Mutex.Lock takes when main
// itself blocks on a held lock (see mutex.go).
func (s *Scheduler) Wakeup(target *Coroutine) {
	self := s.current
	if self != nil {
		self.state = StateReady
		s.rq.append(self)
	}
	s.switchTo(target)
}

// Reclaim removes c from the run queue if it is currently a member,
// reporting whether it was found there. It exists for callers that drive a
// specific coroutine directly via Wakeup, generator-style, rather than
// letting the FIFO scheduler choose who runs next — see package
// coro/iterator. Such a coroutine may still be sitting in the run queue from
// a previous turn (Yield and YieldToMain both enqueue the caller before
// switching away), and switching to it directly without first reclaiming it
// would leave a stale, dangling reference behind in the queue.
func (s *Scheduler) Reclaim(c *Coroutine) bool {
	return s.rq.remove(c)
}

// Wait blocks main until target has exited or stopped, repeatedly yielding
// to let other coroutines run. It is a programming error to call it from
// anywhere but main.
func (s *Scheduler) Wait(target *Coroutine) {
	if s.current != nil {
		s.fatal("Wait called from a non-main coroutine")
		return
	}
	s.mainWaiting = true
	for target.state != StateExited && target.state != StateStopped {
		s.Yield()
	}
	s.mainWaiting = false
}

// Free releases bookkeeping for a coroutine that has exited or was never
// started. It returns ErrNotExited if the coroutine is still live.
func (s *Scheduler) Free(c *Coroutine) error {
	if c.state != StateExited && c.state != StateStopped {
		return ErrNotExited
	}
	return nil
}

// fatal reports an unrecoverable misuse and terminates the process. This is
// deliberately not a Go panic: these are programmer errors that should log
// and exit rather than unwind, so a caller can never recover from them with
// a deferred recover — a panic would unwind through whichever coroutine's
// goroutine happened to be running and corrupt scheduler invariants that
// depend on exactly one goroutine running at a time.
func (s *Scheduler) fatal(msg string) {
	s.log.Err().Log(msg)
	os.Exit(1)
}
