package office

import (
	"github.com/theoremus-urban-solutions/ticket-office/planner"
)

// planEntry is a memoized trip result: the rendered stdout line, the
// outcome kind for the tally, and how many tickets the plan issues.
type planEntry struct {
	kind    planner.OutcomeKind
	report  string
	tickets int
}

// planCache memoizes trip results keyed by the raw request line.
// Planning is deterministic between registrations and request scripts
// repeat popular queries, so entries stay valid until the next route or
// ticket lands. Invalid outcomes are not cached; their error reports
// carry the current line number.
type planCache struct {
	entries map[string]planEntry
}

func newPlanCache() *planCache {
	return &planCache{entries: map[string]planEntry{}}
}

// invalidate drops every memoized result. Called after each successful
// registration.
func (pc *planCache) invalidate() {
	if len(pc.entries) > 0 {
		pc.entries = map[string]planEntry{}
	}
}

func (pc *planCache) get(line string) (planEntry, bool) {
	entry, ok := pc.entries[line]
	return entry, ok
}

func (pc *planCache) put(line string, entry planEntry) {
	pc.entries[line] = entry
}
