package engine

import (
	"errors"
	"fmt"
)

// ErrGameAlreadyOver is returned by Roll when the session has already been won.
var ErrGameAlreadyOver = errors.New("game already over")

// ErrInvalidRoll is returned by Roll when the die produces a value outside
// [DieMin, DieMax].
var ErrInvalidRoll = errors.New("die value out of range")

// InvalidOperationError reports a call that breaks the session contract.
// It signals a caller bug, not a condition to show to players.
type InvalidOperationError struct {
	Op  string
	Err error
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("engine: invalid operation %s: %v", e.Op, e.Err)
}

func (e *InvalidOperationError) Unwrap() error {
	return e.Err
}
