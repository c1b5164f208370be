// Package io provides the byte-level device back-ends for the lc3sim
// machine: a non-blocking keyboard and a terminal display for interactive
// runs, and file-backed equivalents for scripted ones. The CPU core talks
// to all of them through the Reader and Writer interfaces and never
// branches on the concrete kind.
package io

// Reader is the byte source half of a device back-end.
type Reader interface {
	// Poll returns the next available byte, if any, without ever
	// blocking. It returns ErrExhausted once no byte will ever arrive
	// again, and ErrCancelled when the user interrupted input; both are
	// terminal.
	Poll() (value byte, ok bool, err error)
}

// Writer is the byte sink half of a device back-end.
type Writer interface {
	// Write forwards display bytes to the sink, returning the count
	// written or a failure.
	Write(p []byte) (n int, err error)
}
