// Package planner validates trip requests against the schedule and prices
// them through the fare optimizer.
//
// # Overview
//
// The planner coordinates two components:
//   - registered routes via schedule.Store
//   - registered tickets via fares.Optimizer
//
// A trip request is an ordered stop list plus the route taken between each
// consecutive pair. Planning runs in two stages: Validate checks that every
// leg is served and that scheduled times never run backwards across the
// whole journey, then Plan prices the validated trip.
//
// # Usage
//
//	store := schedule.NewStore()
//	opt := fares.NewOptimizer()
//	pl := planner.NewPlanner(store, opt)
//
//	outcome := pl.Plan([]string{"Depot", "Market", "Harbor"}, []int{10, 12})
//	switch outcome.Kind {
//	case planner.Planned:
//	    // outcome.Tickets holds the names to issue
//	case planner.WaitRequired:
//	    // outcome.WaitStop names the first stop with a forced wait
//	case planner.NoFareAvailable:
//	    // no ticket combination covers the trip
//	case planner.Invalid:
//	    // outcome.Reason explains the rejection
//	}
//
// # Ordering rule
//
// With D(i) and A(i) the scheduled departure and arrival of leg i, the
// chain D(0) <= A(0) <= D(1) <= A(1) <= ... must be non-decreasing. The
// comparison baseline is the first leg's departure. A transfer where the
// next departure is strictly later than the previous arrival forces a
// wait; boarding at the exact arrival minute does not.
//
// # Thread Safety
//
// Planner instances are not thread-safe. The owning loop must serialize
// planning against route and ticket registration.
package planner
