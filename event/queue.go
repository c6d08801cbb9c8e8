package event

import (
	"context"
)

// EventQueue is a FIFO queue of actions awaiting execution. Dequeue on an
// empty queue returns nil instead of blocking.
type EventQueue interface {
	Enqueue(context.Context, Action)
	Dequeue(context.Context) Action

	Size() uint
	Close()
}

// EventQueueEnqueueMany is implemented by queues that can accept a batch of
// actions at once.
type EventQueueEnqueueMany interface {
	EventQueue
	EnqueueMany(context.Context, []Action)
}

// EnqueueMany adds a batch of actions to q, using the batch operation if q
// provides one.
func EnqueueMany(ctx context.Context, q EventQueue, actions []Action) {
	switch queue := q.(type) {
	case EventQueueEnqueueMany:
		queue.EnqueueMany(ctx, actions)
	default:
		for _, a := range actions {
			q.Enqueue(ctx, a)
		}
	}
}

// EventQueueDequeueMany is implemented by queues that can hand out up to n
// actions at once.
type EventQueueDequeueMany interface {
	DequeueMany(context.Context, int) []Action
}

// DequeueMany removes up to n actions from q, fewer if the queue runs empty.
func DequeueMany(ctx context.Context, q EventQueue, n int) []Action {
	switch queue := q.(type) {
	case EventQueueDequeueMany:
		return queue.DequeueMany(ctx, n)
	default:
		actions := make([]Action, 0, n)
		for i := 0; i < n; i++ {
			if a := q.Dequeue(ctx); a != nil {
				actions = append(actions, a)
			} else {
				break
			}
		}
		return actions
	}
}

// EventQueueDequeueAll is implemented by queues that can drain themselves in
// one operation.
type EventQueueDequeueAll interface {
	DequeueAll(context.Context) []Action
}

// DequeueAll removes every action currently in q, in queue order.
func DequeueAll(ctx context.Context, q EventQueue) []Action {
	switch queue := q.(type) {
	case EventQueueDequeueAll:
		return queue.DequeueAll(ctx)
	default:
		actions := make([]Action, 0, q.Size())
		for a := q.Dequeue(ctx); a != nil; a = q.Dequeue(ctx) {
			actions = append(actions, a)
		}
		return actions
	}
}

// EventQueueWithEmpty is implemented by queues with a cheap emptiness check.
type EventQueueWithEmpty interface {
	EventQueue
	Empty() bool
}

// Empty reports whether q holds no actions.
func Empty(q EventQueue) bool {
	switch queue := q.(type) {
	case EventQueueWithEmpty:
		return queue.Empty()
	default:
		return q.Size() == 0
	}
}
