/*
Package fares maintains the fare table and answers cheapest-combination
queries over it.

The optimizer keeps one row per allowed ticket count (one, two or three
tickets). Row k holds, for every coverage duration up to MaxTripMinutes,
the cheapest known price using exactly k+1 tickets together with the last
ticket that achieved it. Registering a ticket folds it into all three
rows incrementally; nothing is ever recomputed from scratch.

# Basic Usage

	opt := fares.NewOptimizer()

	_, err := opt.AddTicket("daily", 1500, 720)
	if err != nil {
	    // duplicate name or unusable price/duration
	}

	names := opt.BestSet(480)
	if len(names) == 0 {
	    // no combination covers 480 minutes
	}

# Guarantees

  - BestSet never returns a combination whose validity sums to less than
    the queried duration.
  - The minimum price for any duration does not depend on the order the
    contributing tickets were registered in. The recorded last-used
    ticket (and so the exact names returned) may differ between orders
    when several combinations share the minimum.
  - Price ties between ticket counts resolve toward fewer tickets.
  - Price sums saturate at NoPrice, so an unreachable duration can never
    look reachable through overflow.
*/
package fares
