package domain

import "fmt"

// Error types for consistent error handling across the backend.

// ErrNotFound indicates a resource was not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrExternalService indicates a failure in an external service call.
type ErrExternalService struct {
	Service string
	Err     error
}

func (e *ErrExternalService) Error() string {
	return fmt.Sprintf("external service error [%s]: %v", e.Service, e.Err)
}

func (e *ErrExternalService) Unwrap() error {
	return e.Err
}

// ErrTimeout indicates an operation exceeded its deadline.
type ErrTimeout struct {
	Operation string
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("operation timed out: %s", e.Operation)
}

// ErrCircuitOpen indicates the circuit breaker is open.
type ErrCircuitOpen struct {
	Service string
}

func (e *ErrCircuitOpen) Error() string {
	return fmt.Sprintf("circuit breaker open for service: %s", e.Service)
}

// ErrValidation indicates a validation error (bad input) on a CRUD request.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}

// ErrUnauthorized indicates invalid credentials or token.
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "unauthorized"
}

// ErrForbidden indicates the member lacks permission for the operation.
type ErrForbidden struct {
	Action string
}

func (e *ErrForbidden) Error() string {
	return fmt.Sprintf("forbidden: %s", e.Action)
}

// ErrConflict indicates a resource already exists (e.g. duplicate email).
type ErrConflict struct {
	Message string
}

func (e *ErrConflict) Error() string {
	return e.Message
}

// ============================================================
// Projection input errors
// ============================================================

// ProjectionErrorKind enumerates the projection engine's validation error
// taxonomy. Validation is applied to the whole input atomically before any
// computation begins; the engine never fails mid-fold.
type ProjectionErrorKind string

const (
	ProjectionInvalidInput     ProjectionErrorKind = "INVALID_INPUT"
	ProjectionInvalidAmount    ProjectionErrorKind = "INVALID_AMOUNT"
	ProjectionInvalidDay       ProjectionErrorKind = "INVALID_DAY"
	ProjectionInvalidFrequency ProjectionErrorKind = "INVALID_FREQUENCY"
	ProjectionInvalidCertainty ProjectionErrorKind = "INVALID_CERTAINTY"
	ProjectionInvalidDays      ProjectionErrorKind = "INVALID_PROJECTION_DAYS"
)

// ErrProjectionInput reports invalid projection input. Field is the path of
// the offending value, e.g. "recurring_income[2].schedule.weekday".
type ErrProjectionInput struct {
	Kind    ProjectionErrorKind
	Field   string
	Message string
}

func (e *ErrProjectionInput) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
}
