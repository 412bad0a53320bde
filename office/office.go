package office

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/ticket-office/fares"
	"github.com/theoremus-urban-solutions/ticket-office/formatter"
	"github.com/theoremus-urban-solutions/ticket-office/planner"
	"github.com/theoremus-urban-solutions/ticket-office/request"
	"github.com/theoremus-urban-solutions/ticket-office/schedule"
	"github.com/theoremus-urban-solutions/ticket-office/tracking"
)

// maxLineBytes bounds a single request line. Real scripts stay far below
// this; hitting it aborts the run as an input error.
const maxLineBytes = 1 << 20

// Office owns all state for one ticket-office run.
type Office struct {
	Schedule *schedule.Store
	Fares    *fares.Optimizer
	Planner  *planner.Planner
	Tally    *tracking.Tally

	out    io.Writer
	errOut io.Writer
	plans  *planCache
}

// NewOffice creates an office with empty state. Outcome reports and the
// final tally go to out; error reports go to errOut.
func NewOffice(out, errOut io.Writer) *Office {
	store := schedule.NewStore()
	opt := fares.NewOptimizer()
	return &Office{
		Schedule: store,
		Fares:    opt,
		Planner:  planner.NewPlanner(store, opt),
		Tally:    tracking.NewTally(),
		out:      out,
		errOut:   errOut,
		plans:    newPlanCache(),
	}
}

// Run processes request lines until input ends, then reports the
// cumulative tickets-issued count. The returned error covers reading the
// input only; rejected requests are reported on errOut and never stop
// the run.
func (o *Office) Run(input io.Reader) error {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		o.ProcessLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	rb := formatter.NewReportBuilder()
	fmt.Fprintln(o.out, rb.BuildTally(o.Tally.TicketsIssued()))

	summary := o.Tally.Snapshot()
	log.Info().
		Int("lines", summary.LinesRead).
		Int("routes", summary.RoutesAdded).
		Int("ticketTypes", summary.TicketsAdded).
		Int("tripsPlanned", summary.TripsPlanned).
		Int("rejected", summary.RejectedLines).
		Int("ticketsIssued", summary.TicketsIssued).
		Msg("Run finished")
	return nil
}

// ProcessLine handles one request line. Empty lines are counted but
// skipped. A rejected line produces exactly one error report carrying
// its 1-based number and raw text, and leaves all state unchanged.
func (o *Office) ProcessLine(line string) {
	o.Tally.LineRead(line == "")
	if line == "" {
		return
	}
	lineNumber := o.Tally.LinesRead()

	req, err := request.Decode(line)
	if err != nil {
		o.reject(lineNumber, line, err)
		return
	}

	switch {
	case req.Route != nil:
		if err := o.Schedule.AddRoute(req.Route.ID, req.Route.Stops); err != nil {
			o.reject(lineNumber, line, err)
			return
		}
		o.Tally.RouteAdded()
		o.plans.invalidate()
		log.Debug().Int("route", req.Route.ID).Int("stops", len(req.Route.Stops)).Msg("Route registered")

	case req.Ticket != nil:
		if _, err := o.Fares.AddTicket(req.Ticket.Name, req.Ticket.Price, req.Ticket.Duration); err != nil {
			o.reject(lineNumber, line, err)
			return
		}
		o.Tally.TicketAdded()
		o.plans.invalidate()
		log.Debug().Str("ticket", req.Ticket.Name).Int("priceCents", req.Ticket.Price).
			Int("minutes", req.Ticket.Duration).Msg("Ticket registered")

	case req.Trip != nil:
		o.handleTrip(lineNumber, line, req.Trip)
	}
}

func (o *Office) handleTrip(lineNumber int, line string, trip *request.Trip) {
	entry, ok := o.plans.get(line)
	if !ok {
		outcome := o.Planner.Plan(trip.Stops, trip.Routes)
		if outcome.Kind == planner.Invalid {
			o.reject(lineNumber, line, outcome.Reason)
			return
		}
		rb := formatter.NewReportBuilder()
		entry = planEntry{
			kind:    outcome.Kind,
			report:  rb.BuildOutcome(outcome),
			tickets: len(outcome.Tickets),
		}
		o.plans.put(line, entry)
	}

	fmt.Fprintln(o.out, entry.report)
	switch entry.kind {
	case planner.WaitRequired:
		o.Tally.TripWaiting()
	case planner.NoFareAvailable:
		o.Tally.TripUnfared()
	case planner.Planned:
		o.Tally.TripPlanned(entry.tickets)
		log.Debug().Int("tickets", entry.tickets).Msg("Trip planned")
	}
}

func (o *Office) reject(lineNumber int, line string, reason error) {
	o.Tally.LineRejected()
	rb := formatter.NewReportBuilder()
	fmt.Fprintln(o.errOut, rb.BuildErrorLine(lineNumber, line))
	log.Debug().Err(reason).Int("line", lineNumber).Msg("Request rejected")
}
