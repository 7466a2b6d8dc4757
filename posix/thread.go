package posix

// CreateThread starts fn as a new thread, in the style of pthread_create: it
// allocates the backing coroutine, records it under a fresh ThreadID, and
// immediately yields so the new thread gets a chance to run before
// CreateThread returns — matching pthread_create's trailing crt_yield().
func (f *Facade) CreateThread(fn func(arg any), arg any) ThreadID {
	f.nextThread++
	id := f.nextThread
	c := f.Scheduler.Create(fn, arg, 0)
	f.threads[id] = c
	f.Scheduler.Yield()
	return id
}

// Join blocks until the thread identified by id has exited, then forgets it.
// It returns ErrUnknownThread if id names no live thread. Like
// coro.Scheduler.Wait, it must be called from main.
func (f *Facade) Join(id ThreadID) error {
	c, ok := f.threads[id]
	if !ok {
		return ErrUnknownThread
	}
	f.Scheduler.Wait(c)
	delete(f.threads, id)
	return f.Scheduler.Free(c)
}
