package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/contact-form-service/internal/domain"
	"github.com/jsamuelsen11/contact-form-service/internal/domain/contact"
)

const (
	msgRequired  = "is required"
	msgValueKind = "must be a string or a boolean"
)

// EditFieldRequest represents the JSON body of an edit event. Value is a JSON
// string for text inputs or a JSON boolean for the consent checkbox.
type EditFieldRequest struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

// Parse validates the request and converts it to domain types.
// Returns a *domain.ValidationError if any checks fail.
func (r *EditFieldRequest) Parse() (contact.Field, contact.Value, error) {
	fields := make(map[string]string)

	field, ok := parseFieldName(r.Field, fields)
	value, vok := decodeValue(r.Value, fields)

	if !ok || !vok {
		return "", contact.Value{}, &domain.ValidationError{Fields: fields}
	}
	return field, value, nil
}

// FieldEventRequest represents the JSON body of a blur or focus event.
type FieldEventRequest struct {
	Field string `json:"field"`
}

// Parse validates the request and returns the addressed field.
// Returns a *domain.ValidationError if the field is missing or unknown.
func (r *FieldEventRequest) Parse() (contact.Field, error) {
	fields := make(map[string]string)
	field, ok := parseFieldName(r.Field, fields)
	if !ok {
		return "", &domain.ValidationError{Fields: fields}
	}
	return field, nil
}

// UISignals is the datastar signal payload sent by the contact form page on
// every event. Field names the input the event refers to; Form mirrors every
// bound input.
type UISignals struct {
	Field string           `json:"field"`
	Form  contact.FormData `json:"form"`
}

// Parse returns the addressed field and, for edit events, its current value
// taken from the bound form signals.
func (s *UISignals) Parse() (contact.Field, contact.Value, error) {
	fields := make(map[string]string)
	field, ok := parseFieldName(s.Field, fields)
	if !ok {
		return "", contact.Value{}, &domain.ValidationError{Fields: fields}
	}
	return field, s.Form.Get(field), nil
}

func parseFieldName(name string, fields map[string]string) (contact.Field, bool) {
	if name == "" {
		fields["field"] = msgRequired
		return "", false
	}
	f, err := contact.ParseField(name)
	if err != nil {
		fields["field"] = fmt.Sprintf("unknown field %q", name)
		return "", false
	}
	return f, true
}

func decodeValue(raw json.RawMessage, fields map[string]string) (contact.Value, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		fields["value"] = msgRequired
		return contact.Value{}, false
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return contact.Text(s), true
	}
	var b bool
	if err := json.Unmarshal(trimmed, &b); err == nil {
		return contact.Bool(b), true
	}

	fields["value"] = msgValueKind
	return contact.Value{}, false
}
