package errs

import (
	"errors"
	"strings"
)

// Sentinel errors shared by the usecase layers. Handlers map these onto HTTP
// statuses; callers distinguish the retryable race (ErrSlotConflict) from
// client mistakes (validation group) and from infrastructure trouble.
var (
	// Not-found group
	ErrStoreNotFound       = errors.New("store not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrStaffNotFound       = errors.New("staff not found")
	ErrAppointmentNotFound = errors.New("appointment not found")

	// Validation group
	ErrValidation              = errors.New("validation failed")
	ErrMissingStaffSelection   = errors.New("staff selection required")
	ErrStoreInactive           = errors.New("store is inactive")
	ErrStaffInactive           = errors.New("staff member is inactive")
	ErrInvalidSlot             = errors.New("invalid slot")
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// The requested slot was taken between listing and commit. Retryable after
	// re-fetching availability.
	ErrSlotConflict = errors.New("slot no longer available")

	// Persistence or cache unavailable
	ErrStorageFailure = errors.New("storage operation failed")
)

type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries field-level detail so the booking client can surface
// per-field messages. errors.Is(err, ErrValidation) matches it.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidation.Error()
	}
	fields := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		fields[i] = v.Field
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func NewValidationError(violations ...FieldViolation) error {
	return &ValidationError{Violations: violations}
}
