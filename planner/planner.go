package planner

import (
	"github.com/theoremus-urban-solutions/ticket-office/fares"
	"github.com/theoremus-urban-solutions/ticket-office/schedule"
)

// Planner coordinates the schedule store and the fare optimizer to turn
// trip requests into outcomes.
type Planner struct {
	Schedule *schedule.Store
	Fares    *fares.Optimizer
}

// NewPlanner creates a planner over the given schedule and fare state.
func NewPlanner(store *schedule.Store, opt *fares.Optimizer) *Planner {
	return &Planner{Schedule: store, Fares: opt}
}

// Plan validates a trip request and prices it. Fare coverage is requested
// for the trip's elapsed minutes plus one: a ticket bought at the first
// departure must stay valid through the final arrival minute.
func (p *Planner) Plan(stops []string, routes []int) Outcome {
	trip, err := p.Validate(stops, routes)
	if err != nil {
		return Outcome{Kind: Invalid, Reason: err}
	}
	if trip.RequiresWait {
		return Outcome{Kind: WaitRequired, WaitStop: trip.WaitStop}
	}

	tickets := p.Fares.BestSet(trip.Elapsed + 1)
	if len(tickets) == 0 {
		return Outcome{Kind: NoFareAvailable}
	}
	return Outcome{Kind: Planned, Tickets: tickets}
}
