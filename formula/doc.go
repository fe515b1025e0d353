// Package formula lets a search-space variable's distribution (or any
// other numeric relationship) be expressed as a string formula rather than
// Go code, compiling it once via Knetic/govaluate into a core.Callable
// that can be wired into an expression graph like any other function.
//
// This is deliberately not how the graph's own arithmetic operators
// (core.Add, core.Mul, ...) are implemented: govaluate evaluates every
// expression through float64, which would silently turn the graph's
// integer-division and modulo scenarios into floating-point ones. Formula
// is for the opposite case — a user-authored expression where float64
// arithmetic is exactly what's wanted (e.g. "base * exp(-decay * t)" for a
// log-scaled search dimension) and the formula text itself, not a fixed Go
// function, is the unit of reuse.
package formula
