package schedule

// Stop is a single scheduled call on a route: the stop's name and the
// minute of the operational day the bus arrives there.
type Stop struct {
	Name    string
	Minutes int
}

// Route is an ordered list of scheduled stops registered under a line id.
type Route struct {
	ID    int
	Stops []Stop
}
