// Package contact implements the contact form domain: the enumerated form
// fields, the per-field validation rules and the Store that tracks field
// values together with the flags that decide which inline errors are shown.
package contact

import (
	"fmt"

	"github.com/jsamuelsen11/contact-form-service/internal/domain"
)

// Field identifies one input of the contact form. The underlying string is
// the wire name used by HTTP clients and browser signals.
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldEmail     Field = "email"
	FieldQueryType Field = "queryType"
	FieldMessage   Field = "message"
	FieldConsent   Field = "consent"
)

// fieldOrder is the order fields appear on the form.
var fieldOrder = [...]Field{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldQueryType,
	FieldMessage,
	FieldConsent,
}

// Fields returns every form field in form order. The returned slice is a copy.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder[:])
	return out
}

// IsValid returns true if the field is one of the defined constants.
func (f Field) IsValid() bool {
	switch f {
	case FieldFirstName, FieldLastName, FieldEmail, FieldQueryType, FieldMessage, FieldConsent:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (f Field) String() string {
	return string(f)
}

// ParseField maps a wire name to a Field. Matching is case sensitive.
// Returns a *domain.ValidationError for unknown names.
func ParseField(name string) (Field, error) {
	f := Field(name)
	if !f.IsValid() {
		return "", domain.NewValidationError("field", fmt.Sprintf("unknown field %q", name))
	}
	return f, nil
}
