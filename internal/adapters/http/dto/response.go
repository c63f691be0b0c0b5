// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/contact-form-service/internal/domain/contact"
	"github.com/jsamuelsen11/contact-form-service/internal/ports"
)

// FormResponse represents one form session in HTTP responses.
type FormResponse struct {
	SessionID string            `json:"session_id"`
	Form      contact.FormData  `json:"form"`
	Flags     contact.EditFlags `json:"flags"`
	// Errors maps field name to the inline message of every visible error.
	Errors map[string]string `json:"errors"`
}

// ToFormResponse converts a ports.FormState to an HTTP response DTO.
func ToFormResponse(s *ports.FormState) FormResponse {
	errs := make(map[string]string, len(s.Errors))
	for f, msg := range s.Errors {
		errs[f.String()] = msg
	}
	return FormResponse{
		SessionID: s.SessionID,
		Form:      s.Data,
		Flags:     s.Flags,
		Errors:    errs,
	}
}

// SubmitResponse represents the result of a submit. A rejected submission is
// a normal response with Accepted false and the offending fields listed.
type SubmitResponse struct {
	Accepted bool         `json:"accepted"`
	Invalid  []string     `json:"invalid,omitempty"`
	State    FormResponse `json:"state"`
}

// ToSubmitResponse converts a ports.SubmitOutcome to an HTTP response DTO.
func ToSubmitResponse(o *ports.SubmitOutcome) SubmitResponse {
	var invalid []string
	if len(o.Invalid) > 0 {
		invalid = make([]string, len(o.Invalid))
		for i, f := range o.Invalid {
			invalid[i] = f.String()
		}
	}
	return SubmitResponse{
		Accepted: o.Accepted,
		Invalid:  invalid,
		State:    ToFormResponse(o.State),
	}
}

// UIPatch is the signal patch sent back to the contact form page. Errors
// carries every field, with an empty message for hidden errors, so that a
// signal merge clears messages that are no longer visible.
type UIPatch struct {
	Form      contact.FormData  `json:"form"`
	Flags     contact.EditFlags `json:"flags"`
	Errors    map[string]string `json:"errors"`
	Submitted bool              `json:"submitted"`
}

// ToUIPatch converts a ports.FormState to a datastar signal patch.
func ToUIPatch(s *ports.FormState, submitted bool) UIPatch {
	errs := make(map[string]string, len(contact.Fields()))
	for _, f := range contact.Fields() {
		errs[f.String()] = s.Errors[f]
	}
	return UIPatch{
		Form:      s.Data,
		Flags:     s.Flags,
		Errors:    errs,
		Submitted: submitted,
	}
}
