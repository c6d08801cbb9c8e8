package event

import (
	"context"
	"time"
)

// MaxTime is the maximum time.Time value
var MaxTime = time.Unix(1<<63-62135596801, 999999999)

// PlannedAction is an action that is scheduled to run at a specific time.
type PlannedAction interface {
	// Time returns the time at which the action is scheduled to run
	Time() time.Time
	// Action returns the action that is scheduled to run
	Action() Action
}

// ActionPlanner holds actions bound to specific times and releases them once
// they are overdue.
type ActionPlanner interface {
	// ScheduleAction schedules an action to run at a specific time
	ScheduleAction(context.Context, time.Time, Action) PlannedAction
	// RemoveAction removes an action from the planner, reporting whether it
	// was found
	RemoveAction(context.Context, PlannedAction) bool

	// PopOverdueActions returns all actions that are overdue and removes them
	// from the planner
	PopOverdueActions(context.Context) []Action
}

// MultiActionPlanner is a planner that can schedule and remove batches of
// actions.
type MultiActionPlanner interface {
	ActionPlanner

	// ScheduleActions schedules multiple actions at specific times
	ScheduleActions(context.Context, []time.Time, []Action) []PlannedAction
	// RemoveActions removes multiple actions from the planner
	RemoveActions(context.Context, []PlannedAction)
}

// ScheduleActions schedules multiple actions at specific times using a
// planner. times and actions must have the same length.
func ScheduleActions(ctx context.Context, p ActionPlanner,
	times []time.Time, actions []Action,
) []PlannedAction {
	if len(times) != len(actions) {
		return nil
	}

	switch p := p.(type) {
	case MultiActionPlanner:
		return p.ScheduleActions(ctx, times, actions)
	default:
		res := make([]PlannedAction, len(times))
		for i, t := range times {
			res[i] = p.ScheduleAction(ctx, t, actions[i])
		}
		return res
	}
}

// RemoveActions removes multiple actions from the planner.
func RemoveActions(ctx context.Context, p ActionPlanner, actions []PlannedAction) {
	switch p := p.(type) {
	case MultiActionPlanner:
		p.RemoveActions(ctx, actions)
	default:
		for _, a := range actions {
			p.RemoveAction(ctx, a)
		}
	}
}

// AwareActionPlanner is a planner that knows when its next action is due.
type AwareActionPlanner interface {
	ActionPlanner

	// NextActionTime returns the time of the next action that will be
	// scheduled. If there are no actions scheduled, it returns MaxTime.
	NextActionTime(context.Context) time.Time
}
