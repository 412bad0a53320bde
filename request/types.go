package request

import (
	"github.com/theoremus-urban-solutions/ticket-office/schedule"
)

// Route is a decoded route-registration request.
type Route struct {
	ID    int
	Stops []schedule.Stop
}

// Ticket is a decoded ticket-registration request.
type Ticket struct {
	Name     string
	Price    int // cents
	Duration int // minutes
}

// Trip is a decoded trip-planning request.
type Trip struct {
	Stops  []string
	Routes []int
}

// Request is the union of the three decoded shapes. Exactly one field is
// non-nil on a successful decode.
type Request struct {
	Route  *Route
	Ticket *Ticket
	Trip   *Trip
}
