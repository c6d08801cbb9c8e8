package event

import "context"

// Action is a unit of work that can be run. It is the element type of event
// queues and the currency of schedulers.
type Action interface {
	Run(context.Context)
}

// A BasicAction adapts an ordinary function to the Action interface.
type BasicAction func(context.Context)

var _ Action = (*BasicAction)(nil)

// Run executes the action
func (a BasicAction) Run(ctx context.Context) {
	a(ctx)
}
