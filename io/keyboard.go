package io

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// CANCEL_KEY is the interactive interrupt key (ESC).
const CANCEL_KEY = byte(0x1B)

// Keyboard polls key presses from an interactive terminal. A background
// goroutine drains the input stream into a one-deep buffer so that Poll
// never blocks the machine.
type Keyboard struct {
	In *os.File // Input stream, normally os.Stdin.

	keys chan byte
	prev unix.Termios
	raw  bool
}

var _ Reader = (*Keyboard)(nil)

// NewKeyboard creates a keyboard back-end and starts draining in.
func NewKeyboard(in *os.File) (kb *Keyboard) {
	kb = &Keyboard{
		In:   in,
		keys: make(chan byte, 1),
	}
	go kb.pump()

	return
}

// pump moves bytes from the input stream into the key buffer until the
// stream errors out.
func (kb *Keyboard) pump() {
	var one [1]byte
	for {
		n, err := kb.In.Read(one[:])
		if err != nil {
			close(kb.keys)
			return
		}
		if n == 0 {
			continue
		}
		kb.keys <- one[0]
	}
}

// Poll returns one pending key press, if any, without blocking. The
// cancel key reports ErrCancelled; a closed input stream reports
// ErrExhausted.
func (kb *Keyboard) Poll() (value byte, ok bool, err error) {
	select {
	case key, open := <-kb.keys:
		if !open {
			err = ErrExhausted
			return
		}
		if key == CANCEL_KEY {
			err = ErrCancelled
			return
		}
		value = key
		ok = true
	default:
	}

	return
}

// MakeRaw switches the terminal to non-canonical, no-echo mode so single
// key presses reach the machine immediately. The caller decides whether
// the stream is actually a terminal.
func (kb *Keyboard) MakeRaw() (err error) {
	err = termios.Tcgetattr(kb.In.Fd(), &kb.prev)
	if err != nil {
		return
	}

	next := kb.prev
	next.Lflag &^= unix.ICANON | unix.ECHO
	err = termios.Tcsetattr(kb.In.Fd(), termios.TCSANOW, &next)
	kb.raw = err == nil

	return
}

// Restore undoes MakeRaw.
func (kb *Keyboard) Restore() (err error) {
	if !kb.raw {
		return
	}
	kb.raw = false
	err = termios.Tcsetattr(kb.In.Fd(), termios.TCSANOW, &kb.prev)

	return
}
