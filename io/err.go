package io

import (
	"errors"

	"github.com/ezrec/lc3sim/translate"
)

var f = translate.From

var (
	// Reader diagnostics; the run loop halts gracefully on either.
	ErrExhausted = errors.New(f("more input required"))
	ErrCancelled = errors.New(f("user cancelled"))
)
