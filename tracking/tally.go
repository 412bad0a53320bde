package tracking

// Tally counts what happened during one run of the ticket office.
type Tally struct {
	linesRead     int
	emptyLines    int
	routesAdded   int
	ticketsAdded  int
	tripsPlanned  int
	tripsWaiting  int
	tripsUnfared  int
	rejectedLines int
	ticketsIssued int
}

// Summary is a point-in-time copy of a run's counters.
type Summary struct {
	LinesRead     int
	EmptyLines    int
	RoutesAdded   int
	TicketsAdded  int
	TripsPlanned  int
	TripsWaiting  int
	TripsUnfared  int
	RejectedLines int
	TicketsIssued int
}

// NewTally creates an empty run tally.
func NewTally() *Tally { return &Tally{} }

// LineRead counts one input line; empty lines are counted separately as
// well because they are skipped without processing.
func (t *Tally) LineRead(empty bool) {
	t.linesRead++
	if empty {
		t.emptyLines++
	}
}

// RouteAdded counts a successful route registration.
func (t *Tally) RouteAdded() { t.routesAdded++ }

// TicketAdded counts a successful ticket registration.
func (t *Tally) TicketAdded() { t.ticketsAdded++ }

// TripPlanned counts a planned trip and the tickets issued for it.
func (t *Tally) TripPlanned(ticketCount int) {
	t.tripsPlanned++
	t.ticketsIssued += ticketCount
}

// TripWaiting counts a trip reported back with a forced wait.
func (t *Tally) TripWaiting() { t.tripsWaiting++ }

// TripUnfared counts a trip no ticket combination covered.
func (t *Tally) TripUnfared() { t.tripsUnfared++ }

// LineRejected counts an input line that produced an error report.
func (t *Tally) LineRejected() { t.rejectedLines++ }

// TicketsIssued returns the cumulative ticket count across planned trips.
func (t *Tally) TicketsIssued() int { return t.ticketsIssued }

// LinesRead returns the number of lines read so far, empty ones included.
func (t *Tally) LinesRead() int { return t.linesRead }

// Snapshot copies the current counters.
func (t *Tally) Snapshot() Summary {
	return Summary{
		LinesRead:     t.linesRead,
		EmptyLines:    t.emptyLines,
		RoutesAdded:   t.routesAdded,
		TicketsAdded:  t.ticketsAdded,
		TripsPlanned:  t.tripsPlanned,
		TripsWaiting:  t.tripsWaiting,
		TripsUnfared:  t.tripsUnfared,
		RejectedLines: t.rejectedLines,
		TicketsIssued: t.ticketsIssued,
	}
}
