package event

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/plprobelab/go-eventloop/util"
)

// Simulator drives a set of schedulers in virtual time.
type Simulator interface {
	// AddScheduler adds a scheduler to the simulator
	AddScheduler(AwareScheduler)
	// RemoveScheduler removes a scheduler from the simulator
	RemoveScheduler(AwareScheduler)
	// Run runs the simulator until there are no more actions to run
	Run(context.Context)
}

// AddSchedulers adds a set of schedulers to a simulator
func AddSchedulers(s Simulator, scheds ...AwareScheduler) {
	for _, sched := range scheds {
		s.AddScheduler(sched)
	}
}

// RemoveSchedulers removes a set of schedulers from a simulator
func RemoveSchedulers(s Simulator, scheds ...AwareScheduler) {
	for _, sched := range scheds {
		s.RemoveScheduler(sched)
	}
}

// LiteSimulator advances a shared mock clock to the earliest pending action
// across its schedulers and runs the actions that are due, repeating until
// every scheduler is idle. All schedulers must read time from the
// simulator's clock.
type LiteSimulator struct {
	clk        *clock.Mock
	schedulers []AwareScheduler
}

var _ Simulator = (*LiteSimulator)(nil)

// NewLiteSimulator creates a new LiteSimulator on the given mock clock.
func NewLiteSimulator(clk *clock.Mock) *LiteSimulator {
	return &LiteSimulator{
		clk:        clk,
		schedulers: make([]AwareScheduler, 0),
	}
}

func (s *LiteSimulator) AddScheduler(sched AwareScheduler) {
	s.schedulers = append(s.schedulers, sched)
}

func (s *LiteSimulator) RemoveScheduler(sched AwareScheduler) {
	for i, sch := range s.schedulers {
		if sch == sched {
			s.schedulers = append(s.schedulers[:i], s.schedulers[i+1:]...)
		}
	}
}

// Run drains every scheduler, advancing the mock clock as needed, until no
// scheduler has an action left to run.
func (s *LiteSimulator) Run(ctx context.Context) {
	ctx, span := util.StartSpan(ctx, "LiteSimulator.Run")
	defer span.End()

	for {
		next := s.nextActionTime(ctx)
		if next == MaxTime {
			return
		}

		if next.After(s.clk.Now()) {
			// "wait" until the next action is due
			s.clk.Set(next)
		}

		// Run one action per due scheduler, then reassess: running an action
		// may enqueue more work on any scheduler.
		for _, sched := range s.schedulers {
			if !sched.NextActionTime(ctx).After(s.clk.Now()) {
				sched.RunOne(ctx)
			}
		}
	}
}

// nextActionTime returns the earliest next-action time across all
// schedulers, or MaxTime if every scheduler is idle.
func (s *LiteSimulator) nextActionTime(ctx context.Context) time.Time {
	next := MaxTime
	for _, sched := range s.schedulers {
		if t := sched.NextActionTime(ctx); t.Before(next) {
			next = t
		}
	}
	return next
}
