package request

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/ticket-office/internal"
	"github.com/theoremus-urban-solutions/ticket-office/schedule"
)

var (
	// ErrUnrecognized reports a line matching none of the request shapes.
	ErrUnrecognized = errors.New("unrecognized request line")
	// ErrFieldRange reports a numeric field too large for a machine int.
	ErrFieldRange = errors.New("numeric field out of range")
)

// Clock times are restricted to the operational day right in the shape,
// so a route line with an out-of-window time never classifies as a route.
var (
	routePattern  = regexp.MustCompile(`^[0-9]+( (5:5[5-9]|([6-9]|1[0-9]|20):[0-5][0-9]|21:([0-1][0-9]|2[0-1])) [A-Za-z_^]+)*$`)
	ticketPattern = regexp.MustCompile(`^([ A-Za-z]*) ([1-9][0-9]*)\.([0-9][0-9]) ([1-9][0-9]*)$`)
	tripPattern   = regexp.MustCompile(`^\?( [A-Za-z_^]+ [0-9]+)+ [A-Za-z_^]+$`)
)

// Decode classifies one protocol line and extracts its fields.
func Decode(line string) (Request, error) {
	switch {
	case routePattern.MatchString(line):
		route, err := decodeRoute(line)
		if err != nil {
			return Request{}, err
		}
		return Request{Route: route}, nil
	case ticketPattern.MatchString(line):
		ticket, err := decodeTicket(line)
		if err != nil {
			return Request{}, err
		}
		return Request{Ticket: ticket}, nil
	case tripPattern.MatchString(line):
		trip, err := decodeTrip(line)
		if err != nil {
			return Request{}, err
		}
		return Request{Trip: trip}, nil
	default:
		return Request{}, ErrUnrecognized
	}
}

func decodeRoute(line string) (*Route, error) {
	fields := strings.Split(line, " ")

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: route id %s", ErrFieldRange, fields[0])
	}

	stops := make([]schedule.Stop, 0, (len(fields)-1)/2)
	for i := 1; i+1 < len(fields); i += 2 {
		minutes, err := internal.ClockToMinutes(fields[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrFieldRange, fields[i])
		}
		stops = append(stops, schedule.Stop{Name: fields[i+1], Minutes: minutes})
	}
	return &Route{ID: id, Stops: stops}, nil
}

func decodeTicket(line string) (*Ticket, error) {
	m := ticketPattern.FindStringSubmatch(line)

	whole, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, fmt.Errorf("%w: price %s", ErrFieldRange, m[2])
	}
	cents, _ := strconv.Atoi(m[3])
	if whole > (math.MaxInt-cents)/100 {
		return nil, fmt.Errorf("%w: price %s.%s", ErrFieldRange, m[2], m[3])
	}

	duration, err := strconv.Atoi(m[4])
	if err != nil {
		return nil, fmt.Errorf("%w: duration %s", ErrFieldRange, m[4])
	}

	return &Ticket{Name: m[1], Price: whole*100 + cents, Duration: duration}, nil
}

func decodeTrip(line string) (*Trip, error) {
	fields := strings.Split(line, " ")

	// fields[0] is the "?" marker, then stop names and route ids alternate.
	stops := make([]string, 0, len(fields)/2)
	routes := make([]int, 0, len(fields)/2)
	for i := 1; i < len(fields); i += 2 {
		stops = append(stops, fields[i])
		if i+1 < len(fields) {
			id, err := strconv.Atoi(fields[i+1])
			if err != nil {
				return nil, fmt.Errorf("%w: route id %s", ErrFieldRange, fields[i+1])
			}
			routes = append(routes, id)
		}
	}
	return &Trip{Stops: stops, Routes: routes}, nil
}
