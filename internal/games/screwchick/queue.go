package screwchick

// DefaultQueueDepth is how many turns may wait for the next grid step.
const DefaultQueueDepth = 2

// InputQueue buffers turns between grid steps so turning depends on step
// timing only, never on when keys were pressed within a step.
type InputQueue struct {
	dirs  []Direction
	depth int
}

// NewInputQueue creates an empty queue holding at most depth turns.
func NewInputQueue(depth int) InputQueue {
	if depth < 1 {
		depth = DefaultQueueDepth
	}
	return InputQueue{depth: depth}
}

// Len returns the number of buffered turns.
func (q *InputQueue) Len() int {
	return len(q.dirs)
}

// Depth returns the queue capacity.
func (q *InputQueue) Depth() int {
	if q.depth < 1 {
		return DefaultQueueDepth
	}
	return q.depth
}

// Pending returns a copy of the buffered turns, oldest first.
func (q *InputQueue) Pending() []Direction {
	return append([]Direction(nil), q.dirs...)
}

// Push buffers d and reports whether it was accepted. It is rejected when the
// queue is full, when it repeats the last buffered turn (or facing, if none is
// buffered), or when the queue is empty and it reverses the facing. A buffered
// reversal is dropped later, when it is popped against the facing of that step.
func (q *InputQueue) Push(d, facing Direction) bool {
	if len(q.dirs) >= q.Depth() {
		return false
	}
	if len(q.dirs) == 0 {
		if d == facing || d == facing.Opposite() {
			return false
		}
	} else if d == q.dirs[len(q.dirs)-1] {
		return false
	}
	q.dirs = append(q.dirs, d)
	return true
}

// Pop removes and returns the oldest turn.
func (q *InputQueue) Pop() (Direction, bool) {
	if len(q.dirs) == 0 {
		return 0, false
	}
	d := q.dirs[0]
	q.dirs = q.dirs[1:]
	return d, true
}

// Clear drops all buffered turns.
func (q *InputQueue) Clear() {
	q.dirs = nil
}
