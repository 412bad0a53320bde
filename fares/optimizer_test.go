package fares

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAdd(t *testing.T, o *Optimizer, name string, price, duration int) {
	t.Helper()
	_, err := o.AddTicket(name, price, duration)
	require.NoError(t, err)
}

// setPrice sums the prices of a returned combination so tests can check
// cost without depending on which equally priced combination won.
func setPrice(t *testing.T, prices map[string]int, names []string) int {
	t.Helper()
	total := 0
	for _, name := range names {
		price, ok := prices[name]
		require.True(t, ok, "unknown ticket %q in result", name)
		total += price
	}
	return total
}

func TestAddTicketRejections(t *testing.T) {
	o := NewOptimizer()
	mustAdd(t, o, "single", 250, 90)

	tests := []struct {
		name     string
		ticket   string
		price    int
		duration int
		wantErr  error
	}{
		{name: "duplicate name", ticket: "single", price: 300, duration: 30, wantErr: ErrDuplicateTicketName},
		{name: "negative price", ticket: "odd", price: -1, duration: 30, wantErr: ErrMalformedTicket},
		{name: "zero duration", ticket: "instant", price: 100, duration: 0, wantErr: ErrMalformedTicket},
		{name: "negative duration", ticket: "backwards", price: 100, duration: -5, wantErr: ErrMalformedTicket},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := o.AddTicket(tt.ticket, tt.price, tt.duration)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 1, o.TicketCount())
			// The table is untouched: the original single still wins alone.
			assert.Equal(t, []string{"single"}, o.BestSet(90))
		})
	}
}

func TestBestSetSingleTicket(t *testing.T) {
	o := NewOptimizer()
	mustAdd(t, o, "single", 250, 90)

	assert.Equal(t, []string{"single"}, o.BestSet(1))
	assert.Equal(t, []string{"single"}, o.BestSet(90))
	assert.Empty(t, o.BestSet(91), "nothing covers past the ticket's validity")
}

func TestBestSetBounds(t *testing.T) {
	o := NewOptimizer()
	assert.Empty(t, o.BestSet(10), "no tickets registered")

	mustAdd(t, o, "single", 250, 90)
	assert.Empty(t, o.BestSet(0))
	assert.Empty(t, o.BestSet(-3))
	assert.Empty(t, o.BestSet(MaxTripMinutes+1))
}

func TestBestSetPrefersThreeCheapTickets(t *testing.T) {
	o := NewOptimizer()
	mustAdd(t, o, "short", 100, 10)
	mustAdd(t, o, "long", 1100, 100)
	mustAdd(t, o, "medium", 205, 20)

	// Three shorts at 300 beat short+medium at 305 and one long at 1100.
	assert.Equal(t, []string{"short", "short", "short"}, o.BestSet(30))

	// Two shorts at 200 beat one medium at 205.
	assert.Equal(t, []string{"short", "short"}, o.BestSet(20))
	assert.Equal(t, []string{"short", "short"}, o.BestSet(15))

	// A single short covers the smallest durations on its own.
	assert.Equal(t, []string{"short"}, o.BestSet(10))
	assert.Equal(t, []string{"short"}, o.BestSet(1))
}

func TestBestSetOrdersLastTicketFirst(t *testing.T) {
	o := NewOptimizer()
	mustAdd(t, o, "hop", 100, 10)
	mustAdd(t, o, "leg", 150, 30)

	// Covering 40 minutes takes both; the extending ticket is named first.
	assert.Equal(t, []string{"leg", "hop"}, o.BestSet(40))
}

func TestBestSetTieResolvesToFewerTickets(t *testing.T) {
	o := NewOptimizer()
	mustAdd(t, o, "half", 100, 10)
	mustAdd(t, o, "full", 200, 20)

	// Two halves cost the same as one full; one ticket wins the tie.
	assert.Equal(t, []string{"full"}, o.BestSet(20))
}

func TestBestSetEarlierRegistrationWinsPriceTie(t *testing.T) {
	o := NewOptimizer()
	mustAdd(t, o, "first", 100, 10)
	mustAdd(t, o, "second", 100, 8)

	assert.Equal(t, []string{"first"}, o.BestSet(8))
}

func TestAddTicketIgnoresDominatedTicket(t *testing.T) {
	o := NewOptimizer()
	mustAdd(t, o, "cheap", 100, 10)
	mustAdd(t, o, "overpriced", 1000, 5)

	assert.Equal(t, []string{"cheap"}, o.BestSet(5))
	assert.Equal(t, []string{"cheap"}, o.BestSet(10))
}

func TestBestSetPriceIsRegistrationOrderInvariant(t *testing.T) {
	tickets := []struct {
		name     string
		price    int
		duration int
	}{
		{"short", 100, 10},
		{"long", 1100, 100},
		{"medium", 205, 20},
	}
	prices := map[string]int{}
	for _, tk := range tickets {
		prices[tk.name] = tk.price
	}

	orders := [][]int{
		{0, 1, 2},
		{2, 1, 0},
		{1, 0, 2},
		{2, 0, 1},
	}
	durations := []int{1, 10, 15, 20, 25, 30, 50, 100, 120}

	reference := NewOptimizer()
	for _, i := range orders[0] {
		mustAdd(t, reference, tickets[i].name, tickets[i].price, tickets[i].duration)
	}

	for _, order := range orders[1:] {
		o := NewOptimizer()
		for _, i := range order {
			mustAdd(t, o, tickets[i].name, tickets[i].price, tickets[i].duration)
		}
		for _, d := range durations {
			want := o.BestSet(d)
			got := reference.BestSet(d)
			require.Equal(t, len(want) == 0, len(got) == 0, "coverage differs at %d", d)
			if len(want) == 0 {
				continue
			}
			assert.Equal(t, setPrice(t, prices, want), setPrice(t, prices, got),
				"cheapest price differs at duration %d", d)
		}
	}
}

func TestAddTicketClampsDuration(t *testing.T) {
	o := NewOptimizer()
	mustAdd(t, o, "forever", 500, 100000)

	assert.Equal(t, []string{"forever"}, o.BestSet(MaxTripMinutes))
	assert.Equal(t, []string{"forever"}, o.BestSet(1))
}

func TestPriceSumsSaturate(t *testing.T) {
	o := NewOptimizer()
	mustAdd(t, o, "priceless", math.MaxInt-10, 10)

	// Two of these would overflow; the sum saturates and stays unreachable.
	assert.Empty(t, o.BestSet(20))
	assert.Equal(t, []string{"priceless"}, o.BestSet(10))
}

func TestTicketCount(t *testing.T) {
	o := NewOptimizer()
	assert.Equal(t, 0, o.TicketCount())
	mustAdd(t, o, "a", 100, 10)
	mustAdd(t, o, "b", 200, 20)
	assert.Equal(t, 2, o.TicketCount())
}
