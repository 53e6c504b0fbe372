// Package errors provides the structured error handling used across the
// valentina trait core.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - A closed set of domain codes for business-rule violations
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.TraitAtMaxValuef("%s is already at %d dots", trait.Name, trait.MaxValue)
//
// Adding metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", charID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// # Error Checking
//
//	if errors.IsNotEnoughPoints(err) {
//	    // surface balance to the caller
//	}
//
// # Domain Codes
//
// The domain failure set is closed and every member indicates a caller
// bug or a rule violation, never a transient condition:
//   - TraitAtMaxValue: an upgrade step would exceed a trait's maximum
//   - TraitAtMinValue: a downgrade step would go below zero
//   - NotEnoughPoints: a spend exceeds the available balance
//   - InfeasiblePartition: a dot total cannot fit the per-part bounds
package errors
