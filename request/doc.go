/*
Package request decodes protocol lines into typed requests.

Each input line is one request. Classification is by full-line match
against the three request shapes:

  - route registration: a numeric line id followed by (clock time, stop
    name) pairs, for example "10 5:55 Depot 6:10 Market"
  - ticket registration: a name, a price with exactly two decimal digits
    and a whole-minute validity, for example "weekly pass 11.99 720"
  - trip planning: a "?" marker followed by alternating stop names and
    line ids, for example "? Depot 10 Market 12 Harbor"

Clock times must fall inside the operational day (5:55 through 21:21).
Ticket names may be empty and may contain spaces; whatever the name
field matched is taken verbatim. A line matching no shape, or one whose
numeric fields do not fit a machine int, is rejected without being acted
on.
*/
package request
