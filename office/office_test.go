package office

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/ticket-office/tracking"
)

func runScript(t *testing.T, script string) (string, string, *Office) {
	t.Helper()
	var out, errOut bytes.Buffer
	o := NewOffice(&out, &errOut)
	require.NoError(t, o.Run(strings.NewReader(script)))
	return out.String(), errOut.String(), o
}

func TestRunPlansAndTallies(t *testing.T) {
	script := strings.Join([]string{
		"10 6:05 Center 7:27 Airport",
		"20 7:27 Airport 14:15 Harbor",
		"single 2.50 90",
		"",
		"? Center 10 Airport",
		"? Center 10 Airport 20 Harbor",
		"garbage here",
		"? Center 10 Airport",
	}, "\n")

	out, errOut, o := runScript(t, script)

	// The short trip is covered by a single; the long one by nothing.
	// The repeated query issues its ticket again.
	assert.Equal(t, "! single\n:|\n! single\n2\n", out)
	assert.Equal(t, "Error in line 7:garbage here\n", errOut)

	assert.Equal(t, tracking.Summary{
		LinesRead:     8,
		EmptyLines:    1,
		RoutesAdded:   2,
		TicketsAdded:  1,
		TripsPlanned:  2,
		TripsUnfared:  1,
		RejectedLines: 1,
		TicketsIssued: 2,
	}, o.Tally.Snapshot())
}

func TestRunReportsWaitsAndRejections(t *testing.T) {
	script := strings.Join([]string{
		"10 6:05 Center 7:27 Airport",
		"30 7:30 Airport 14:15 Harbor",
		"single 2.50 90",
		"? Center 10 Airport 30 Harbor",
		"? Center 10 Depot",
		"10 8:00 Elsewhere",
		"single 3.00 10",
		"? Depot 10 Center",
	}, "\n")

	out, errOut, o := runScript(t, script)

	assert.Equal(t, ":( Airport\n0\n", out)
	assert.Equal(t, strings.Join([]string{
		"Error in line 5:? Center 10 Depot",
		"Error in line 6:10 8:00 Elsewhere",
		"Error in line 7:single 3.00 10",
		"Error in line 8:? Depot 10 Center",
		"",
	}, "\n"), errOut)

	summary := o.Tally.Snapshot()
	assert.Equal(t, 1, summary.RoutesAdded, "duplicate id must not register")
	assert.Equal(t, 1, summary.TicketsAdded, "duplicate name must not register")
	assert.Equal(t, 1, summary.TripsWaiting)
	assert.Equal(t, 4, summary.RejectedLines)
	assert.Equal(t, 0, summary.TicketsIssued)
}

func TestRunRecomputesAfterRegistration(t *testing.T) {
	script := strings.Join([]string{
		"40 6:00 A 6:30 B",
		"flat 5.00 60",
		"? A 40 B",
		"cheap 1.00 31",
		"? A 40 B",
	}, "\n")

	out, errOut, _ := runScript(t, script)

	// The second registration must displace the memoized first answer.
	assert.Equal(t, "! flat\n! cheap\n2\n", out)
	assert.Empty(t, errOut)
}

func TestRunEmptyInput(t *testing.T) {
	out, errOut, o := runScript(t, "")

	assert.Equal(t, "0\n", out)
	assert.Empty(t, errOut)
	assert.Equal(t, 0, o.Tally.Snapshot().LinesRead)
}

func TestRunOnlyEmptyLines(t *testing.T) {
	out, errOut, o := runScript(t, "\n\n\n")

	assert.Equal(t, "0\n", out)
	assert.Empty(t, errOut)
	summary := o.Tally.Snapshot()
	assert.Equal(t, 3, summary.LinesRead)
	assert.Equal(t, 3, summary.EmptyLines)
}

func TestProcessLineNumbersCountEmptyLines(t *testing.T) {
	var out, errOut bytes.Buffer
	o := NewOffice(&out, &errOut)

	o.ProcessLine("")
	o.ProcessLine("")
	o.ProcessLine("not a request")

	assert.Equal(t, "Error in line 3:not a request\n", errOut.String())
}

func TestRunIssuesTicketsOnEveryRepeat(t *testing.T) {
	script := strings.Join([]string{
		"10 6:05 Center 7:27 Airport",
		"single 2.50 90",
		"? Center 10 Airport",
		"? Center 10 Airport",
		"? Center 10 Airport",
	}, "\n")

	out, _, o := runScript(t, script)

	assert.Equal(t, "! single\n! single\n! single\n3\n", out)
	assert.Equal(t, 3, o.Tally.Snapshot().TicketsIssued)
}

func TestRunMultiTicketReportOrder(t *testing.T) {
	// Covering 6:00 to 6:40 takes 41 minutes of validity, so the trip
	// needs a hop on top of a half hour. The extending ticket is
	// reported first and both count as issued.
	script := strings.Join([]string{
		"50 6:00 A 6:40 B",
		"hop 1.00 11",
		"half hour 2.00 30",
		"? A 50 B",
	}, "\n")

	out, errOut, o := runScript(t, script)

	assert.Equal(t, "! half hour; hop\n2\n", out)
	assert.Empty(t, errOut)
	assert.Equal(t, 2, o.Tally.Snapshot().TicketsIssued)
}
