package event

// Queue buffers events within a tick for consumers that want to read them
// after the step instead of reacting inline. Single-threaded by contract:
// the simulation never mutates shared state concurrently, so this is a
// plain slice, not the lock-free ring a multi-producer loop would need.
type Queue struct {
	buf []Event
}

// NewQueue returns an empty queue
func NewQueue() *Queue {
	return &Queue{buf: make([]Event, 0, 64)}
}

// Emit implements Sink
func (q *Queue) Emit(ev Event) {
	q.buf = append(q.buf, ev)
}

// Drain returns all pending events in emit order and resets the queue.
// The returned slice is owned by the caller.
func (q *Queue) Drain() []Event {
	if len(q.buf) == 0 {
		return nil
	}
	out := q.buf
	q.buf = make([]Event, 0, cap(out))
	return out
}

// Len reports pending events without draining
func (q *Queue) Len() int {
	return len(q.buf)
}
