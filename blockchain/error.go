// Copyright (c) 2024-2025 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
)

// AssertError identifies an error that indicates an internal code consistency
// issue and should be treated as a critical and unrecoverable error.
type AssertError string

// Error returns the assertion error as a human-readable string and satisfies
// the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific RuleError.
const (
	// ErrValuePoolNegative indicates the value-conservation repair could
	// not produce non-negative chain value pools for a transaction.  This
	// signals a defect in the upstream generator's assumptions rather
	// than a recoverable condition.
	ErrValuePoolNegative ErrorCode = iota

	// ErrTreeCapacity indicates a note commitment tree ran out of
	// capacity while appending a commitment.
	ErrTreeCapacity

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrValuePoolNegative: "ErrValuePoolNegative",
	ErrTreeCapacity:      "ErrTreeCapacity",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a bookkeeping rule violation.  It is used to indicate
// that the chain construction failed a precondition it cannot recover from.
// The caller can use type assertions to detect this error and access the
// ErrorCode field to ascertain the specific reason for the failure.
type RuleError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// ruleError creates a RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}
