package cpu

import (
	"errors"

	"github.com/ezrec/lc3sim/translate"
)

var f = translate.From

var (
	// Load errors
	ErrImageTruncated = errors.New(f("object image shorter than its origin word"))
)

// ErrMnemonicUnknown reports a trace-selection name that is not an
// instruction mnemonic.
type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("'%v' is not an instruction mnemonic", string(err))
}

func (err ErrMnemonicUnknown) Is(target error) (ok bool) {
	_, ok = target.(ErrMnemonicUnknown)
	return
}
