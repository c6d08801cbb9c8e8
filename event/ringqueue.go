package event

import (
	"context"

	"github.com/eapache/queue"

	"github.com/plprobelab/go-eventloop/util"
)

// RingQueue is an unbounded queue backed by a growable ring buffer. Unlike
// ChanQueue it never blocks on Enqueue, which makes it suitable for queues
// mutated from within a running action. A RingQueue is owned by a single
// worker and is not safe for concurrent use.
type RingQueue struct {
	ring *queue.Queue
}

var (
	_ EventQueueWithEmpty   = (*RingQueue)(nil)
	_ EventQueueEnqueueMany = (*RingQueue)(nil)
	_ EventQueueDequeueAll  = (*RingQueue)(nil)
)

// NewRingQueue creates a new empty queue.
func NewRingQueue() *RingQueue {
	return &RingQueue{
		ring: queue.New(),
	}
}

// Enqueue adds an element to the queue
func (q *RingQueue) Enqueue(ctx context.Context, a Action) {
	_, span := util.StartSpan(ctx, "RingQueue.Enqueue")
	defer span.End()
	q.ring.Add(a)
}

// EnqueueMany adds a batch of elements to the queue, preserving their order.
func (q *RingQueue) EnqueueMany(ctx context.Context, actions []Action) {
	_, span := util.StartSpan(ctx, "RingQueue.EnqueueMany")
	defer span.End()
	for _, a := range actions {
		q.ring.Add(a)
	}
}

// Dequeue removes the oldest element from the queue, or returns nil if the
// queue is empty.
func (q *RingQueue) Dequeue(ctx context.Context) Action {
	_, span := util.StartSpan(ctx, "RingQueue.Dequeue")
	defer span.End()

	if q.Empty() {
		span.AddEvent("empty queue")
		return nil
	}

	return q.ring.Remove().(Action)
}

// DequeueAll removes every element currently in the queue, in queue order.
func (q *RingQueue) DequeueAll(ctx context.Context) []Action {
	_, span := util.StartSpan(ctx, "RingQueue.DequeueAll")
	defer span.End()

	actions := make([]Action, 0, q.ring.Length())
	for q.ring.Length() > 0 {
		actions = append(actions, q.ring.Remove().(Action))
	}
	return actions
}

// Empty returns true if the queue is empty
func (q *RingQueue) Empty() bool {
	return q.ring.Length() == 0
}

// Size returns the number of queued elements.
func (q *RingQueue) Size() uint {
	return uint(q.ring.Length())
}

// Close discards all queued elements. The queue must not be used afterwards.
func (q *RingQueue) Close() {
	for q.ring.Length() > 0 {
		q.ring.Remove()
	}
}
