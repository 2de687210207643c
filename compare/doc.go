// Package compare runs several algorithms over identical grids and
// summarizes their outcome and timing.
//
// Timing percentiles are computed with github.com/montanaflynn/stats.
// Every repetition gets a fresh grid from the caller's builder, so one
// algorithm's traversal state never leaks into the next.
package compare
