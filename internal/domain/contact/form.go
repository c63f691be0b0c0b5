package contact

import (
	"fmt"

	"github.com/jsamuelsen11/contact-form-service/internal/domain"
)

// FormData holds the current value of every form field. The zero value is
// the empty form a session starts with and returns to after a successful
// submit.
type FormData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	QueryType string `json:"queryType"`
	Message   string `json:"message"`
	Consent   bool   `json:"consent"`
}

// Get returns the value stored for the given field. Unknown fields yield an
// empty text Value.
func (d FormData) Get(f Field) Value {
	switch f {
	case FieldFirstName:
		return Text(d.FirstName)
	case FieldLastName:
		return Text(d.LastName)
	case FieldEmail:
		return Text(d.Email)
	case FieldQueryType:
		return Text(d.QueryType)
	case FieldMessage:
		return Text(d.Message)
	case FieldConsent:
		return Bool(d.Consent)
	default:
		return Text("")
	}
}

// Set overwrites the value of the given field. It returns a
// *domain.ValidationError when the field is unknown or the value kind does
// not match the field (text for consent, boolean for anything else).
func (d *FormData) Set(f Field, v Value) error {
	if !f.IsValid() {
		return domain.NewValidationError("field", fmt.Sprintf("unknown field %q", f))
	}
	if want := kindOf(f); v.Kind() != want {
		return domain.NewValidationError(f.String(), "value must be "+want.String())
	}

	switch f {
	case FieldFirstName:
		d.FirstName = v.text
	case FieldLastName:
		d.LastName = v.text
	case FieldEmail:
		d.Email = v.text
	case FieldQueryType:
		d.QueryType = v.text
	case FieldMessage:
		d.Message = v.text
	case FieldConsent:
		d.Consent = v.flag
	}
	return nil
}

// kindOf returns the value kind a field accepts.
func kindOf(f Field) Kind {
	if f == FieldConsent {
		return KindBool
	}
	return KindText
}

// EditFlags records, per field, whether that field's error should currently
// be rendered. It has exactly one flag per FormData field.
type EditFlags struct {
	FirstName bool `json:"firstName"`
	LastName  bool `json:"lastName"`
	Email     bool `json:"email"`
	QueryType bool `json:"queryType"`
	Message   bool `json:"message"`
	Consent   bool `json:"consent"`
}

// Get reports the flag for f. Unknown fields report false.
func (e EditFlags) Get(f Field) bool {
	if p := e.ref(f); p != nil {
		return *p
	}
	return false
}

// Set assigns the flag for f. Unknown fields are ignored.
func (e *EditFlags) Set(f Field, on bool) {
	if p := e.ref(f); p != nil {
		*p = on
	}
}

// Any reports whether at least one flag is set.
func (e EditFlags) Any() bool {
	return len(e.Touched()) > 0
}

// Touched returns the fields whose flag is set, in form order.
func (e EditFlags) Touched() []Field {
	var out []Field
	for _, f := range fieldOrder {
		if e.Get(f) {
			out = append(out, f)
		}
	}
	return out
}

func (e *EditFlags) ref(f Field) *bool {
	switch f {
	case FieldFirstName:
		return &e.FirstName
	case FieldLastName:
		return &e.LastName
	case FieldEmail:
		return &e.Email
	case FieldQueryType:
		return &e.QueryType
	case FieldMessage:
		return &e.Message
	case FieldConsent:
		return &e.Consent
	default:
		return nil
	}
}
