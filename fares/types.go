package fares

import (
	"math"

	"github.com/theoremus-urban-solutions/ticket-office/internal"
)

// MaxTripMinutes caps ticket validity and sizes every fare-table row.
// Buses run only inside the operational day, so the longest possible trip
// spans the whole day, and coverage is queried for elapsed minutes plus
// one.
const MaxTripMinutes = internal.DayEndMinutes - internal.DayStartMinutes + 1

// TicketID densely indexes tickets in registration order. The fare table
// stores these ids, which keeps reconstruction a simple backward walk.
type TicketID int

// NoTicket marks a fare cell no ticket has reached.
const NoTicket TicketID = -1

// NoPrice marks an unreachable duration. Price sums saturate here.
const NoPrice = math.MaxInt

// Ticket is a registered fare product.
type Ticket struct {
	ID       TicketID
	Name     string
	Price    int // cents
	Duration int // minutes of validity, clamped to MaxTripMinutes
}

// fareCell is one slot of a fare-table row: the cheapest known price for
// the slot's duration and the last ticket that achieved it.
type fareCell struct {
	price int
	last  TicketID
}
