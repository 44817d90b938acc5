// Package error defines domain-specific errors for the Finsight application.
package error

import "errors"

// Record domain errors.
var (
	// ErrIncomeNotFound is returned when an income entry does not exist.
	ErrIncomeNotFound = errors.New("income entry not found")

	// ErrExpenseNotFound is returned when an expense entry does not exist.
	ErrExpenseNotFound = errors.New("expense entry not found")

	// ErrInvalidAmount is returned when an entry amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidCategory is returned when an expense category is unknown.
	ErrInvalidCategory = errors.New("category is not a known expense category")

	// ErrMissingDate is returned when an entry date is not provided.
	ErrMissingDate = errors.New("date is required")
)

// RecordErrorCode defines error codes for record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount   RecordErrorCode = "REC-010001"
	ErrCodeInvalidCategory RecordErrorCode = "REC-010002"
	ErrCodeMissingDate     RecordErrorCode = "REC-010003"

	// Not-found errors (02XXXX)
	ErrCodeIncomeNotFound  RecordErrorCode = "REC-020001"
	ErrCodeExpenseNotFound RecordErrorCode = "REC-020002"

	// Internal errors (99XXXX)
	ErrCodeRecordInternalError RecordErrorCode = "REC-990001"
)

// RecordError represents a record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
