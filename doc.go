// Package mlog is an embeddable logging core for managed host applications.
//
// The host hands the core preformatted message strings with an integer
// severity, or exception triples (type, message, stack trace). Records are
// written to a size- and count-bounded set of rotating files, either
// synchronously on the caller's goroutine or through a process-wide worker
// pool with a blocking overflow policy.
//
// The primary type is Manager. A module-level default manager backs the
// package-level functions and the bridge package, which exposes the same
// operations as a panic-free integer/void surface for foreign callers.
//
// No internal failure crosses the external boundary: errors are routed to a
// registered callback, or to stderr when no callback is set.
package mlog
