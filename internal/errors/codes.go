package errors

// Code represents an error code
type Code string

// Generic error codes used by configuration and storage plumbing
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
)

// Domain error codes. These form the closed failure set of the trait
// core: every business-rule violation maps to exactly one of them, and
// all of them indicate caller bugs or rule violations, never transient
// conditions.
const (
	CodeTraitAtMaxValue     Code = "TRAIT_AT_MAX_VALUE"
	CodeTraitAtMinValue     Code = "TRAIT_AT_MIN_VALUE"
	CodeNotEnoughPoints     Code = "NOT_ENOUGH_POINTS"
	CodeInfeasiblePartition Code = "INFEASIBLE_PARTITION"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
