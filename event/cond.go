package event

import (
	"context"

	"github.com/eapache/queue"
	"go.opentelemetry.io/otel/attribute"

	"github.com/plprobelab/go-eventloop/util"
)

// condWaiter pairs a registered action with the scheduler it must run on
// once it is released.
type condWaiter struct {
	action Action
	sched  Scheduler
}

// Cond is a scheduler-aware analogue of a condition variable. Actions
// registered with AsyncWait are parked in arrival order until NotifyOne or
// NotifyAll releases them. Releasing a waiter enqueues its action on the
// waiter's bound scheduler; the action runs only when that scheduler's run
// loop is next driven, never on the notifying call stack. This keeps
// notification reentrancy-safe: a released action may register new waiters
// or notify the same Cond again.
//
// A Cond must be reached through the pointer returned by NewCond and must
// not be copied. Its waiter queue is owned by a single worker and is not
// internally synchronized; concurrent hand-off happens through the bound
// schedulers, whose Enqueue paths provide their own safety.
//
// Waiters cannot be cancelled. A parked action leaves the queue either by
// being released or by Close discarding it.
type Cond struct {
	sched   Scheduler
	waiters *queue.Queue
}

// NewCond creates a new Cond releasing waiters onto s by default. It panics
// if s is nil: there is no meaningful default scheduler.
func NewCond(s Scheduler) *Cond {
	if s == nil {
		panic("event: NewCond requires a scheduler")
	}
	return &Cond{
		sched:   s,
		waiters: queue.New(),
	}
}

// Scheduler returns the scheduler the Cond was created with. Per-waiter
// overrides passed to AsyncWaitOn do not affect it.
func (c *Cond) Scheduler() Scheduler {
	return c.sched
}

// AsyncWait parks a to be run on the Cond's default scheduler after a future
// notification. It never runs a itself.
func (c *Cond) AsyncWait(ctx context.Context, a Action) {
	c.AsyncWaitOn(ctx, nil, a)
}

// AsyncWaitOn parks a to be run on s after a future notification. A nil s
// binds the waiter to the Cond's default scheduler. It never runs a itself.
func (c *Cond) AsyncWaitOn(ctx context.Context, s Scheduler, a Action) {
	_, span := util.StartSpan(ctx, "Cond.AsyncWait")
	defer span.End()

	if s == nil {
		s = c.sched
	}
	c.waiters.Add(condWaiter{action: a, sched: s})
}

// NotifyOne releases the oldest parked waiter, enqueueing its action on its
// bound scheduler, and returns 1. If no waiters are parked it returns 0.
func (c *Cond) NotifyOne(ctx context.Context) int {
	ctx, span := util.StartSpan(ctx, "Cond.NotifyOne")
	defer span.End()

	if c.waiters.Length() == 0 {
		span.AddEvent("no waiters")
		return 0
	}

	// The waiter leaves the queue before its action is handed to the
	// scheduler, so it can never be released twice.
	w := c.waiters.Remove().(condWaiter)
	w.sched.EnqueueAction(ctx, w.action)
	return 1
}

// NotifyAll releases every currently parked waiter, enqueueing each action
// on its bound scheduler in arrival order, and returns the number released.
// Waiters registered while the released actions later run belong to a future
// notification.
func (c *Cond) NotifyAll(ctx context.Context) int {
	ctx, span := util.StartSpan(ctx, "Cond.NotifyAll")
	defer span.End()

	// Snapshot first: the queue is emptied before any action is handed out.
	released := make([]condWaiter, 0, c.waiters.Length())
	for c.waiters.Length() > 0 {
		released = append(released, c.waiters.Remove().(condWaiter))
	}
	for _, w := range released {
		w.sched.EnqueueAction(ctx, w.action)
	}

	span.SetAttributes(attribute.Int("released", len(released)))
	return len(released)
}

// Size returns the number of parked waiters.
func (c *Cond) Size() uint {
	return uint(c.waiters.Length())
}

// Close discards every parked waiter without running it. Dropping the
// waiters here is what breaks ownership cycles at teardown: an action may
// own the structure that owns the Cond, and once the Cond lets go of the
// action the cycle is collectable. Close is idempotent, and notifications
// after Close release nothing.
func (c *Cond) Close() {
	for c.waiters.Length() > 0 {
		c.waiters.Remove()
	}
}
