package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with code, message, and metadata
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the target error is of the same type
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error, preserving its code if it's an Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Code:    existingErr.Code,
			Message: message,
			Cause:   err,
			Meta:    existingErr.Meta,
		}
	}

	return &Error{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Constructor functions for the generic error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a not found error with formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists creates an already exists error
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// AlreadyExistsf creates an already exists error with formatted message
func AlreadyExistsf(format string, args ...interface{}) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// FailedPrecondition creates a failed precondition error
func FailedPrecondition(message string) *Error {
	return New(CodeFailedPrecondition, message)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates an internal error with formatted message
func Internalf(format string, args ...interface{}) *Error {
	return Newf(CodeInternal, format, args...)
}

// Constructor functions for the domain error types

// TraitAtMaxValue creates an error for an upgrade step past a trait's maximum
func TraitAtMaxValue(message string) *Error {
	return New(CodeTraitAtMaxValue, message)
}

// TraitAtMaxValuef creates a trait at max value error with formatted message
func TraitAtMaxValuef(format string, args ...interface{}) *Error {
	return Newf(CodeTraitAtMaxValue, format, args...)
}

// TraitAtMinValue creates an error for a downgrade step below zero
func TraitAtMinValue(message string) *Error {
	return New(CodeTraitAtMinValue, message)
}

// TraitAtMinValuef creates a trait at min value error with formatted message
func TraitAtMinValuef(format string, args ...interface{}) *Error {
	return Newf(CodeTraitAtMinValue, format, args...)
}

// NotEnoughPoints creates an error for a spend against an insufficient balance
func NotEnoughPoints(message string) *Error {
	return New(CodeNotEnoughPoints, message)
}

// NotEnoughPointsf creates a not enough points error with formatted message
func NotEnoughPointsf(format string, args ...interface{}) *Error {
	return Newf(CodeNotEnoughPoints, format, args...)
}

// InfeasiblePartition creates an error for a partition whose total cannot
// be represented within the per-part bounds
func InfeasiblePartition(message string) *Error {
	return New(CodeInfeasiblePartition, message)
}

// InfeasiblePartitionf creates an infeasible partition error with formatted message
func InfeasiblePartitionf(format string, args ...interface{}) *Error {
	return Newf(CodeInfeasiblePartition, format, args...)
}
