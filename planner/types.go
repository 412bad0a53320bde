package planner

// ValidatedTrip carries what planning needs to know about a coherent trip.
type ValidatedTrip struct {
	// Elapsed is the last leg's arrival minute minus the first leg's
	// departure minute.
	Elapsed int

	// RequiresWait is true when some transfer departs strictly later than
	// the traveler arrives; WaitStop then names the first such stop.
	RequiresWait bool
	WaitStop     string
}

// OutcomeKind tags the result of planning one trip request.
type OutcomeKind int

const (
	// Invalid marks a request that failed validation.
	Invalid OutcomeKind = iota
	// WaitRequired marks a coherent trip with an unavoidable wait.
	WaitRequired
	// NoFareAvailable marks a trip no ticket combination covers.
	NoFareAvailable
	// Planned marks a priced trip with tickets to issue.
	Planned
)

// Outcome is the tagged result of planning one trip request.
type Outcome struct {
	Kind OutcomeKind

	// Reason is set for Invalid outcomes.
	Reason error
	// WaitStop is set for WaitRequired outcomes.
	WaitStop string
	// Tickets is set for Planned outcomes, last ticket used first.
	Tickets []string
}
