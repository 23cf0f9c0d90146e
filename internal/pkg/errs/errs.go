package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrObjectConflict     = errors.New("object conflicts with existing state")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrComputationFailure = errors.New("computation failed")
)

// ObjectNotFoundError reports that an entity referenced by ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectConflictError reports a write rejected because it collides with stored data,
// such as a duplicate unique key.
type ObjectConflictError struct {
	ParamName string
	Cause     error
}

func NewObjectConflictError(paramName string, cause error) *ObjectConflictError {
	return &ObjectConflictError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ObjectConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrObjectConflict, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectConflict, e.ParamName)
}

func (e *ObjectConflictError) Unwrap() error {
	return ErrObjectConflict
}

// ValueIsInvalidError reports a parameter that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory parameter.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError reports a lifecycle move that the state machine forbids.
// From and To hold the status names so callers can build a precise message.
type InvalidTransitionError struct {
	EntityID string
	From     string
	To       string
}

func NewInvalidTransitionError(entityID, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{
		EntityID: entityID,
		From:     from,
		To:       to,
	}
}

func (e *InvalidTransitionError) Error() string {
	if e.EntityID == "" {
		return fmt.Sprintf("%s: from %s to %s", ErrInvalidTransition, e.From, e.To)
	}
	return fmt.Sprintf("%s: from %s to %s for %s", ErrInvalidTransition, e.From, e.To, e.EntityID)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ComputationError reports an arithmetic step that could not complete.
type ComputationError struct {
	Operation string
	Cause     error
}

func NewComputationError(operation string, cause error) *ComputationError {
	return &ComputationError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *ComputationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrComputationFailure, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrComputationFailure, e.Operation)
}

// Unwrap exposes both the sentinel and the cause to errors.Is and errors.As.
func (e *ComputationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrComputationFailure}
	}
	return []error{ErrComputationFailure, e.Cause}
}

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}
