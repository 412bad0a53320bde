package formatter

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/ticket-office/planner"
)

type reportBuilder struct{}

func newReportBuilder() *reportBuilder { return &reportBuilder{} }

// NewReportBuilder creates a new builder for protocol report lines.
func NewReportBuilder() *reportBuilder {
	return newReportBuilder()
}

// BuildOutcome renders a planning outcome as its stdout report line.
// Invalid outcomes have no stdout line (the rejected input is reported
// through BuildErrorLine instead) and render as the empty string.
func (rb *reportBuilder) BuildOutcome(outcome planner.Outcome) string {
	switch outcome.Kind {
	case planner.WaitRequired:
		return ":( " + outcome.WaitStop
	case planner.NoFareAvailable:
		return ":|"
	case planner.Planned:
		var b strings.Builder
		b.WriteString("! ")
		for i, name := range outcome.Tickets {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(name)
		}
		return b.String()
	default:
		return ""
	}
}

// BuildTally renders the end-of-run tickets-issued count.
func (rb *reportBuilder) BuildTally(ticketsIssued int) string {
	return strconv.Itoa(ticketsIssued)
}
