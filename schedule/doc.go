/*
Package schedule holds the registered bus routes and indexes them in memory.

A route is registered once and never changes afterwards. Registration
indexes every (route, stop) pair for constant-time arrival lookups, which
is what trip validation hammers on.

# Basic Usage

	store := schedule.NewStore()

	err := store.AddRoute(10, []schedule.Stop{
	    {Name: "Depot", Minutes: 360},
	    {Name: "Market", Minutes: 375},
	})
	if err != nil {
	    // duplicate id or malformed stop list
	}

	minutes, err := store.StopTime(10, "Market")

# Invariants

  - Route ids are unique; re-registering an id fails with ErrDuplicateRoute.
  - Stop times are strictly increasing along a route and every stop name
    appears at most once; violations fail with ErrMalformedRoute.
  - A failed registration leaves the store exactly as it was.
  - Routes are never removed; the store only grows over a run.
*/
package schedule
