package planner

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRequest reports a stop/route sequence of unusable shape.
	ErrMalformedRequest = errors.New("malformed trip request")
	// ErrUnknownLeg reports a leg whose route does not serve its stop.
	ErrUnknownLeg = errors.New("leg not served by route")
	// ErrTimeOrderViolation reports scheduled times running backwards.
	ErrTimeOrderViolation = errors.New("scheduled times out of order")
)

// Validate checks a trip request against the schedule. Leg i rides
// routes[i] from stops[i] to stops[i+1]; every boundary must be served
// and the departure/arrival chain must be non-decreasing from the first
// departure onwards.
func (p *Planner) Validate(stops []string, routes []int) (ValidatedTrip, error) {
	if len(stops) < 2 || len(routes) < 1 || len(stops) != len(routes)+1 {
		return ValidatedTrip{}, fmt.Errorf("%w: %d stops, %d routes",
			ErrMalformedRequest, len(stops), len(routes))
	}

	departures := make([]int, len(routes))
	arrivals := make([]int, len(routes))
	for i, routeID := range routes {
		dep, err := p.Schedule.StopTime(routeID, stops[i])
		if err != nil {
			return ValidatedTrip{}, fmt.Errorf("%w: route %d at %s",
				ErrUnknownLeg, routeID, stops[i])
		}
		arr, err := p.Schedule.StopTime(routeID, stops[i+1])
		if err != nil {
			return ValidatedTrip{}, fmt.Errorf("%w: route %d at %s",
				ErrUnknownLeg, routeID, stops[i+1])
		}
		departures[i] = dep
		arrivals[i] = arr
	}

	trip := ValidatedTrip{}
	previous := departures[0]
	for i := range routes {
		if departures[i] < previous || arrivals[i] < departures[i] {
			return ValidatedTrip{}, fmt.Errorf("%w: leg %d at %s",
				ErrTimeOrderViolation, i, stops[i])
		}
		if i > 0 && departures[i] > previous && !trip.RequiresWait {
			trip.RequiresWait = true
			trip.WaitStop = stops[i]
		}
		previous = arrivals[i]
	}
	trip.Elapsed = arrivals[len(routes)-1] - departures[0]

	return trip, nil
}
