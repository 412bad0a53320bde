package formatter

import "strconv"

// BuildErrorLine renders the stderr report for a rejected input line.
// Line numbers are 1-based and count every line read, empty ones
// included; the raw line is echoed byte for byte after the colon.
func (rb *reportBuilder) BuildErrorLine(lineNumber int, raw string) string {
	return "Error in line " + strconv.Itoa(lineNumber) + ":" + raw
}
