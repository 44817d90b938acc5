package error

import "errors"

// Planner domain errors. Degenerate numeric inputs (zero income, zero
// price) never raise; only logically impossible requests do.
var (
	// ErrInvalidMode is returned when the purchase mode is unknown.
	ErrInvalidMode = errors.New("mode must be: installment, lump-sum-savings, or save-then-buy")

	// ErrInvalidTenure is returned when an installment tenure is below one month.
	ErrInvalidTenure = errors.New("tenure must be at least one month")

	// ErrInvalidSchedule is returned when a financing schedule would end
	// before it starts.
	ErrInvalidSchedule = errors.New("end date must be after start date")

	// ErrDownPaymentExceedsPrice is returned when the down payment covers
	// more than the full price.
	ErrDownPaymentExceedsPrice = errors.New("down payment must not exceed price")
)

// PlannerErrorCode defines error codes for planner errors.
// Format: PLN-XXYYYY where XX is category and YYYY is specific error.
type PlannerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMode             PlannerErrorCode = "PLN-010001"
	ErrCodeInvalidTenure           PlannerErrorCode = "PLN-010002"
	ErrCodeInvalidSchedule         PlannerErrorCode = "PLN-010003"
	ErrCodeDownPaymentExceedsPrice PlannerErrorCode = "PLN-010004"

	// Internal errors (99XXXX)
	ErrCodePlannerInternalError PlannerErrorCode = "PLN-990001"
)

// PlannerError represents a planner error with code and message.
type PlannerError struct {
	Code    PlannerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlannerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlannerError) Unwrap() error {
	return e.Err
}

// NewPlannerError creates a new PlannerError with the given code and message.
func NewPlannerError(code PlannerErrorCode, message string, err error) *PlannerError {
	return &PlannerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
