package salad

import (
	"errors"
	"strings"
)

var (
	// ErrNoLibrary is returned when no candidate library could be opened.
	ErrNoLibrary = errors.New("no OpenAL library could be opened")

	// ErrNilLoadFunc is returned when a load is attempted without a
	// resolver. The table is left untouched.
	ErrNilLoadFunc = errors.New("nil load function")

	// ErrNilTable is returned when a load is given no table to fill.
	ErrNilTable = errors.New("nil table")

	// ErrMissingSymbol is returned by strict loads when a required
	// entry point did not resolve.
	ErrMissingSymbol = errors.New("missing required symbol")
)

// MissingError lists the required entry points a strict load could not
// resolve. It matches ErrMissingSymbol with errors.Is.
type MissingError struct {
	Procs []Proc
}

func (e *MissingError) Error() string {
	names := make([]string, len(e.Procs))
	for i, p := range e.Procs {
		names[i] = p.String()
	}
	return ErrMissingSymbol.Error() + ": " + strings.Join(names, ", ")
}

func (e *MissingError) Is(target error) bool {
	return target == ErrMissingSymbol
}
