// Package stats computes structural statistics over string vectors with
// single-pass finite-state scanners.
//
// Two independent scanners are provided: General counts lines and code
// points, Latex runs a Kile-style LaTeX word-count state machine. Both
// aggregate over the whole input vector, skip missing elements, and
// treat a raw line feed inside any element as a fatal error, since
// inputs are expected to be pre-split into lines.
package stats
