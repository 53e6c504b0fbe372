package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsTraitAtMaxValue checks if an error is a trait at max value error
func IsTraitAtMaxValue(err error) bool {
	return GetCode(err) == CodeTraitAtMaxValue
}

// IsTraitAtMinValue checks if an error is a trait at min value error
func IsTraitAtMinValue(err error) bool {
	return GetCode(err) == CodeTraitAtMinValue
}

// IsNotEnoughPoints checks if an error is a not enough points error
func IsNotEnoughPoints(err error) bool {
	return GetCode(err) == CodeNotEnoughPoints
}

// IsInfeasiblePartition checks if an error is an infeasible partition error
func IsInfeasiblePartition(err error) bool {
	return GetCode(err) == CodeInfeasiblePartition
}
