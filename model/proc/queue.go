package proc

// Queue is an ordered container of process handles used for the ready queue
// and for each resource wait queue. Order is strict insertion order: Push
// appends at the tail, Pop removes the head.
//
// A process must be a member of at most one queue at any time; the queue
// itself cannot enforce that across instances, so the execution state
// verifies it after every tick.
type Queue struct {
	items []Handle
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends the handle at the tail.
func (q *Queue) Push(h Handle) {
	q.items = append(q.items, h)
}

// Pop removes and returns the head of the queue.
func (q *Queue) Pop() (Handle, bool) {
	if len(q.items) == 0 {
		return None, false
	}
	h := q.items[0]
	q.items = q.items[1:]
	return h, true
}

// Peek returns the head without removing it.
func (q *Queue) Peek() (Handle, bool) {
	if len(q.items) == 0 {
		return None, false
	}
	return q.items[0], true
}

// Remove detaches the first occurrence of the handle, reporting whether it
// was a member.
func (q *Queue) Remove(h Handle) bool {
	for i, item := range q.items {
		if item == h {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports queue membership.
func (q *Queue) Contains(h Handle) bool {
	for _, item := range q.items {
		if item == h {
			return true
		}
	}
	return false
}

// Len returns the number of queued handles.
func (q *Queue) Len() int { return len(q.items) }

// Handles returns a copy of the queue content in order.
func (q *Queue) Handles() []Handle {
	return append([]Handle(nil), q.items...)
}
