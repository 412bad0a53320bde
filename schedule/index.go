package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateRoute reports an attempt to register a route id twice.
	ErrDuplicateRoute = errors.New("duplicate route id")
	// ErrMalformedRoute reports a route whose stop list is unusable.
	ErrMalformedRoute = errors.New("malformed route")
	// ErrNotScheduled reports a (route, stop) pair with no scheduled call.
	ErrNotScheduled = errors.New("stop not scheduled on route")
)

type stopKey struct {
	routeID int
	stop    string
}

// Store indexes registered routes in memory for fast lookups.
type Store struct {
	routes    map[int]Route
	stopTimes map[stopKey]int
}

// NewStore creates a new empty schedule store.
func NewStore() *Store {
	return &Store{
		routes:    map[int]Route{},
		stopTimes: map[stopKey]int{},
	}
}

// AddRoute validates a route and indexes its (route, stop) arrival times.
// The id must be unused, the stop list non-empty with no repeated names,
// and the times strictly increasing. A failed registration leaves the
// store untouched.
func (s *Store) AddRoute(id int, stops []Stop) error {
	if _, ok := s.routes[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateRoute, id)
	}
	if err := checkStops(stops); err != nil {
		return err
	}

	route := Route{ID: id, Stops: append([]Stop(nil), stops...)}
	s.routes[id] = route
	for _, st := range route.Stops {
		s.stopTimes[stopKey{routeID: id, stop: st.Name}] = st.Minutes
	}
	return nil
}

func checkStops(stops []Stop) error {
	if len(stops) == 0 {
		return fmt.Errorf("%w: no stops", ErrMalformedRoute)
	}
	seen := make(map[string]struct{}, len(stops))
	lastMinutes := 0
	for _, st := range stops {
		if _, ok := seen[st.Name]; ok {
			return fmt.Errorf("%w: stop %s repeats", ErrMalformedRoute, st.Name)
		}
		seen[st.Name] = struct{}{}
		if st.Minutes <= lastMinutes {
			return fmt.Errorf("%w: time at stop %s does not increase", ErrMalformedRoute, st.Name)
		}
		lastMinutes = st.Minutes
	}
	return nil
}

// StopTime returns the scheduled arrival minute for a stop on a route.
func (s *Store) StopTime(routeID int, stop string) (int, error) {
	minutes, ok := s.stopTimes[stopKey{routeID: routeID, stop: stop}]
	if !ok {
		return 0, fmt.Errorf("%w: route %d, stop %s", ErrNotScheduled, routeID, stop)
	}
	return minutes, nil
}

// HasRoute reports whether a route id has been registered.
func (s *Store) HasRoute(id int) bool {
	_, ok := s.routes[id]
	return ok
}

// RouteCount returns the number of registered routes.
func (s *Store) RouteCount() int { return len(s.routes) }

// StopCount returns the number of indexed (route, stop) entries.
func (s *Store) StopCount() int { return len(s.stopTimes) }
