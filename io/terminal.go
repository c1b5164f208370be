package io

import (
	"io"
)

// Terminal writes display bytes to a terminal-like sink. Raw-mode
// terminals do not translate line feeds, so a carriage return is emitted
// before each one.
type Terminal struct {
	Output io.Writer
}

var _ Writer = (*Terminal)(nil)

func (term *Terminal) Write(p []byte) (n int, err error) {
	for _, value := range p {
		if value == '\n' {
			_, err = term.Output.Write([]byte{'\r', value})
		} else {
			_, err = term.Output.Write([]byte{value})
		}
		if err != nil {
			return
		}
		n++
	}

	return
}
