package ftracker

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind indicates a sensor package with a kind code no training is registered for
	ErrUnknownKind = errors.New("unknown training kind")
	// ErrInvalidParamCount indicates a sensor package with the wrong number of readings
	ErrInvalidParamCount = errors.New("invalid parameter count")
	// ErrInvalidParam indicates a reading that cannot be assigned to its field
	ErrInvalidParam = errors.New("invalid parameter")
	// ErrDivisionByZero indicates a training whose derived values are not finite
	ErrDivisionByZero = errors.New("division by zero")
)

// UnknownKindError carries the kind code that failed to resolve.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownKind, e.Kind)
}

func (e *UnknownKindError) Is(target error) bool {
	return target == ErrUnknownKind
}

// ParamCountError reports how many readings a kind expects and how many were given.
type ParamCountError struct {
	Kind string
	Want int
	Got  int
}

func (e *ParamCountError) Error() string {
	return fmt.Sprintf("%s: %s expects %d readings, got %d", ErrInvalidParamCount, e.Kind, e.Want, e.Got)
}

func (e *ParamCountError) Is(target error) bool {
	return target == ErrInvalidParamCount
}
