package event

import (
	"context"

	"github.com/plprobelab/go-eventloop/util"
)

// ChanQueue is a trivial bounded queue implementation using a channel.
// Enqueue blocks once the capacity is reached, so a ChanQueue shared between
// workers applies back pressure to its producers.
type ChanQueue struct {
	queue chan Action
}

var _ EventQueueWithEmpty = (*ChanQueue)(nil)

// NewChanQueue creates a new queue with the given capacity.
func NewChanQueue(capacity int) *ChanQueue {
	return &ChanQueue{
		queue: make(chan Action, capacity),
	}
}

// Enqueue adds an element to the queue
func (q *ChanQueue) Enqueue(ctx context.Context, a Action) {
	_, span := util.StartSpan(ctx, "ChanQueue.Enqueue")
	defer span.End()
	q.queue <- a
}

// Dequeue removes the oldest element from the queue, or returns nil if the
// queue is empty.
func (q *ChanQueue) Dequeue(ctx context.Context) Action {
	_, span := util.StartSpan(ctx, "ChanQueue.Dequeue")
	defer span.End()

	if q.Empty() {
		span.AddEvent("empty queue")
		return nil
	}

	return <-q.queue
}

// Empty returns true if the queue is empty
func (q *ChanQueue) Empty() bool {
	return len(q.queue) == 0
}

// Size returns the number of queued elements.
func (q *ChanQueue) Size() uint {
	return uint(len(q.queue))
}

// Close releases the queue's channel. The queue must not be used afterwards.
func (q *ChanQueue) Close() {
	close(q.queue)
}
