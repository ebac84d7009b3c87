package input

// Queue is the bounded hand-off between the input producer and the tick loop.
// The producer goroutine waits for room when the queue is full, the tick loop never blocks
type Queue struct {
	ch chan Intent
}

// NewQueue creates a queue holding up to size pending intents (minimum 1)
func NewQueue(size int) *Queue {
	return &Queue{ch: make(chan Intent, max(size, 1))}
}

// Offer enqueues without blocking, returning false if the queue is full and the intent was not enqueued
func (q *Queue) Offer(it Intent) bool {
	select {
	case q.ch <- it:
		return true
	default:
		return false
	}
}

// Put enqueues, blocking until the consumer makes room. Intents are never dropped
func (q *Queue) Put(it Intent) {
	q.ch <- it
}

// Poll dequeues the oldest intent without blocking
func (q *Queue) Poll() (Intent, bool) {
	select {
	case it := <-q.ch:
		return it, true
	default:
		return Intent{}, false
	}
}

// Len returns the number of pending intents
func (q *Queue) Len() int {
	return len(q.ch)
}

// Cap returns the queue capacity
func (q *Queue) Cap() int {
	return cap(q.ch)
}
