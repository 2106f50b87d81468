// Package testutil provides internal test helpers: a fluent trace builder for
// constructing hand-shaped (including deliberately malformed) traces, and
// permutation utilities for property-style algorithm tests.
package testutil
