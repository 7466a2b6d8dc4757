package coro

// list is an intrusive singly linked FIFO, threaded through each
// Coroutine's next field. A Coroutine may be a member of at most one list at
// any time — this list, a Mutex's wait list, or a Cond's wait list — which is
// what makes a single "next" field sufficient.
type list struct {
	head, tail *Coroutine
	count      int
}

// append adds c to the tail of the list. O(1).
func (l *list) append(c *Coroutine) {
	c.next = nil
	if l.tail == nil {
		l.head = c
		l.tail = c
	} else {
		l.tail.next = c
		l.tail = c
	}
	l.count++
}

// popHead removes and returns the head of the list. O(1).
func (l *list) popHead() (*Coroutine, bool) {
	c := l.head
	if c == nil {
		return nil, false
	}
	l.head = c.next
	if l.head == nil {
		l.tail = nil
	}
	c.next = nil
	l.count--
	return c, true
}

// remove unlinks c from the list if present, wherever it sits. It is used
// only by Scheduler.Reclaim, for the rare case a caller needs to switch
// directly to a coroutine that may still be queued, without leaving a stale
// reference to it behind in the run queue.
func (l *list) remove(c *Coroutine) bool {
	if l.head == nil {
		return false
	}
	if l.head == c {
		l.head = c.next
		if l.head == nil {
			l.tail = nil
		}
		c.next = nil
		l.count--
		return true
	}
	prev := l.head
	for prev.next != nil {
		if prev.next == c {
			prev.next = c.next
			if c == l.tail {
				l.tail = prev
			}
			c.next = nil
			l.count--
			return true
		}
		prev = prev.next
	}
	return false
}

// splice removes the first node (other than the head) whose state is ready,
// returning it. Used by the scheduler's Case B search, which must look past
// a yielding head without reordering the queue.
func (l *list) spliceFirstReadyAfterHead() (*Coroutine, bool) {
	prev := l.head
	for prev != nil && prev.next != nil {
		if prev.next.state == StateReady {
			found := prev.next
			prev.next = found.next
			if found == l.tail {
				l.tail = prev
			}
			found.next = nil
			l.count--
			return found, true
		}
		prev = prev.next
	}
	return nil, false
}
