package session

import "sync"

// deliveryQueue is the owner's mailbox. Handlers are allowed to call
// back into the session from their callbacks, so the control goroutine
// must never block handing off deliveries, no matter how slow the
// owner is or how many elements one reply carries. The queue grows as
// needed; a single delivery goroutine drains it in order.
type deliveryQueue struct {
	mu     sync.Mutex
	fns    []func()
	closed bool
	notify chan struct{}
}

func newDeliveryQueue() *deliveryQueue {
	return &deliveryQueue{notify: make(chan struct{}, 1)}
}

// push appends fn to the queue. It never blocks.
func (q *deliveryQueue) push(fn func()) {
	q.mu.Lock()
	q.fns = append(q.fns, fn)
	q.mu.Unlock()
	q.wake()
}

// close marks the end of the queue; drain returns once the remaining
// deliveries have run.
func (q *deliveryQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.wake()
}

func (q *deliveryQueue) wake() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// drain runs queued deliveries in order until the queue is closed and
// empty.
func (q *deliveryQueue) drain() {
	for {
		q.mu.Lock()
		fns := q.fns
		q.fns = nil
		closed := q.closed
		q.mu.Unlock()
		for _, fn := range fns {
			fn()
		}
		if len(fns) > 0 {
			continue
		}
		if closed {
			return
		}
		<-q.notify
	}
}
