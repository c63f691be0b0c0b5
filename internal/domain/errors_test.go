package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Fields: map[string]string{
		"lastName":  "is required",
		"firstName": "is required",
	}}

	want := "validation error: firstName: is required; lastName: is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("decoding request: %w", NewValidationError("field", "unknown field \"phone\""))

	if !errors.Is(wrapped, ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, want true")
	}

	var verr *ValidationError
	if !errors.As(wrapped, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", wrapped)
	}
	if verr.Fields["field"] != "unknown field \"phone\"" {
		t.Errorf("Fields[field] = %q, want %q", verr.Fields["field"], "unknown field \"phone\"")
	}
}
