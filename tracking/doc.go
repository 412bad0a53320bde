// Package tracking accumulates per-run counters for the ticket office.
//
// This package handles:
// - Counting tickets issued across all planned trips
// - Counting lines read, by request kind and by disposition
// - Producing an end-of-run summary for logging
//
// The Tally type represents one run's counters. It is the source of the
// final tickets-issued report printed when input ends.
package tracking
