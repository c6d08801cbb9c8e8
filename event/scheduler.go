package event

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
)

// Scheduler accepts actions to run as soon as possible or at a specific
// time, and runs them from its own run loop. A Scheduler value doubles as a
// handle: two handles designate the same scheduler exactly when they compare
// equal.
type Scheduler interface {
	// Clock returns the clock the scheduler reads time from
	Clock() clock.Clock

	// EnqueueAction enqueues an action to run as soon as possible
	EnqueueAction(context.Context, Action)
	// ScheduleAction schedules an action to run at a specific time
	ScheduleAction(context.Context, time.Time, Action) PlannedAction
	// RemovePlannedAction removes an action from the scheduler planned
	// actions (not from the queue), reporting whether it was found
	RemovePlannedAction(context.Context, PlannedAction) bool

	// RunOne runs one action from the scheduler's queue, returning true if an
	// action was run, false if the queue was empty
	RunOne(context.Context) bool
}

// ScheduleActionIn schedules an action to run after a delay. A non-positive
// delay enqueues the action to run as soon as possible.
func ScheduleActionIn(ctx context.Context, s Scheduler, d time.Duration, a Action) PlannedAction {
	if d <= 0 {
		s.EnqueueAction(ctx, a)
		return nil
	}
	return s.ScheduleAction(ctx, s.Clock().Now().Add(d), a)
}

// RunManyScheduler is a scheduler that can run multiple actions at once
type RunManyScheduler interface {
	Scheduler

	// RunMany runs n actions on the scheduler, returning true if all actions
	// were run, or false if there were less than n actions to run
	RunMany(context.Context, int) bool
}

// RunMany runs n actions on the scheduler, returning true if all actions were
// run, or false if there were less than n actions to run
func RunMany(ctx context.Context, s Scheduler, n int) bool {
	switch s := s.(type) {
	case RunManyScheduler:
		return s.RunMany(ctx, n)
	default:
		for i := 0; i < n; i++ {
			if !s.RunOne(ctx) {
				return false
			}
		}
		return true
	}
}

// RunAllScheduler is a scheduler that can drain its queue in one operation.
type RunAllScheduler interface {
	Scheduler

	// RunAll runs all actions in the scheduler's queue, returning the number
	// of actions that were run
	RunAll(context.Context) int
}

// RunAll runs all actions in the scheduler's queue and overdue actions from
// the planner, returning the number of actions that were run.
func RunAll(ctx context.Context, s Scheduler) int {
	switch s := s.(type) {
	case RunAllScheduler:
		return s.RunAll(ctx)
	default:
		n := 0
		for s.RunOne(ctx) {
			n++
		}
		return n
	}
}

// AwareScheduler is a scheduler that can return the time of the next
// scheduled action.
type AwareScheduler interface {
	Scheduler

	// NextActionTime returns the time of the next action in the scheduler's
	// queue or MaxTime if the queue is empty
	NextActionTime(context.Context) time.Time
}
