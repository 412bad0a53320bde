package fares

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateTicketName reports an attempt to reuse a ticket name.
	ErrDuplicateTicketName = errors.New("duplicate ticket name")
	// ErrMalformedTicket reports a negative price or non-positive duration.
	ErrMalformedTicket = errors.New("malformed ticket")
)

const tableRows = 3

// Optimizer owns the registered tickets and the three fare-table rows.
type Optimizer struct {
	tickets []Ticket
	names   map[string]struct{}
	rows    [tableRows][]fareCell
}

// NewOptimizer creates an optimizer with an empty ticket list. Every row
// slot starts unreachable except duration zero, which costs nothing.
func NewOptimizer() *Optimizer {
	o := &Optimizer{names: map[string]struct{}{}}
	for k := range o.rows {
		row := make([]fareCell, MaxTripMinutes+1)
		row[0] = fareCell{price: 0, last: NoTicket}
		for j := 1; j <= MaxTripMinutes; j++ {
			row[j] = fareCell{price: NoPrice, last: NoTicket}
		}
		o.rows[k] = row
	}
	return o
}

// AddTicket registers a fare product and folds it into the fare table.
// Duration is clamped to MaxTripMinutes before the update. A rejected
// ticket leaves the table untouched. Each registration costs
// O(MaxTripMinutes) regardless of how many tickets are already known.
func (o *Optimizer) AddTicket(name string, price, duration int) (TicketID, error) {
	if _, ok := o.names[name]; ok {
		return NoTicket, fmt.Errorf("%w: %q", ErrDuplicateTicketName, name)
	}
	if price < 0 || duration < 1 {
		return NoTicket, fmt.Errorf("%w: price %d, duration %d", ErrMalformedTicket, price, duration)
	}
	if duration > MaxTripMinutes {
		duration = MaxTripMinutes
	}

	id := TicketID(len(o.tickets))
	o.tickets = append(o.tickets, Ticket{ID: id, Name: name, Price: price, Duration: duration})
	o.names[name] = struct{}{}

	// Single-ticket row. The ticket covers every duration up to its own,
	// and row 0 prices never increase toward shorter durations, so the
	// descent can stop at the first slot it fails to beat.
	for t := duration; t >= 1; t-- {
		if price >= o.rows[0][t].price {
			break
		}
		o.rows[0][t] = fareCell{price: price, last: id}
	}

	// Multi-ticket rows: the ticket extends every solution one row up by
	// its own duration.
	for k := 1; k < tableRows; k++ {
		for j := duration + 1; j <= MaxTripMinutes; j++ {
			candidate := saturatingAdd(price, o.rows[k-1][j-duration].price)
			if candidate < o.rows[k][j].price {
				o.rows[k][j] = fareCell{price: candidate, last: id}
			}
		}
	}

	return id, nil
}

// BestSet returns the names of the cheapest combination of at most three
// tickets whose validity covers the given duration, last ticket first.
// Price ties between ticket counts resolve toward fewer tickets. The
// result is empty when the duration is out of range or nothing covers it.
func (o *Optimizer) BestSet(duration int) []string {
	if duration <= 0 || duration > MaxTripMinutes {
		return nil
	}

	bestRow := -1
	bestPrice := NoPrice
	for k := 0; k < tableRows; k++ {
		if o.rows[k][duration].price < bestPrice {
			bestPrice = o.rows[k][duration].price
			bestRow = k
		}
	}
	if bestRow < 0 {
		return nil
	}

	names := make([]string, 0, bestRow+1)
	remaining := duration
	for k := bestRow; k >= 0 && remaining > 0; k-- {
		ticket := o.tickets[o.rows[k][remaining].last]
		names = append(names, ticket.Name)
		remaining -= ticket.Duration
	}
	return names
}

// TicketCount returns the number of registered tickets.
func (o *Optimizer) TicketCount() int { return len(o.tickets) }

func saturatingAdd(a, b int) int {
	if b == NoPrice || a > NoPrice-b {
		return NoPrice
	}
	return a + b
}
