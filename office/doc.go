// Package office is the main entry point for running a ticket office.
//
// The Office owns all state for one run: the schedule store, the fare
// optimizer, the planner over both, and the run tally. It consumes
// protocol lines one at a time, writes outcome reports to its stdout
// writer and error reports to its stderr writer, and prints the
// cumulative tickets-issued count when input ends.
//
// # Usage
//
//	o := office.NewOffice(os.Stdout, os.Stderr)
//	if err := o.Run(os.Stdin); err != nil {
//	    // reading the input failed; request errors never end up here
//	}
//
// Every request runs to completion before the next one starts, and a
// failing request never leaves partial state behind. Office instances
// are not safe for concurrent use.
package office
