// Package formatter renders planning outcomes and run reports as
// protocol lines.
//
// This package is organized into:
// - report.go: stdout lines (planning outcomes, final tickets-issued count)
// - errline.go: stderr lines (one per rejected input)
//
// The core never prints; it hands tagged outcomes here. All rendering is
// byte-exact and newline-free; callers append the newline when writing.
package formatter
