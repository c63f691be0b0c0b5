package contact

// SubmitResult describes the outcome of Store.OnSubmit.
type SubmitResult struct {
	// Accepted is true when every field passed validation and the store was
	// reset.
	Accepted bool

	// Submitted holds the form values as they were at submit time. It is
	// only populated for accepted submissions.
	Submitted FormData

	// Invalid lists the failing fields in form order for rejected submissions.
	Invalid []Field
}

// Store holds the state of one contact form: the field values and the
// EditFlags that control which validation errors are displayed.
//
// A Store has a single owner and is not safe for concurrent use. Each
// method applies one user event synchronously.
type Store struct {
	data  FormData
	flags EditFlags
}

// NewStore returns a Store holding the empty form with every flag cleared.
func NewStore() *Store {
	return &Store{}
}

// Data returns a copy of the current field values.
func (s *Store) Data() FormData {
	return s.data
}

// Flags returns a copy of the current EditFlags.
func (s *Store) Flags() EditFlags {
	return s.flags
}

// OnEdit overwrites the value of field and re-validates it. When the new
// value is valid the field's flag is cleared so an error fixed while typing
// disappears immediately; an invalid value leaves the flag unchanged.
//
// The only error is a *domain.ValidationError for an unknown field or a
// value of the wrong kind, in which case the store is left untouched.
func (s *Store) OnEdit(field Field, value Value) error {
	if err := s.data.Set(field, value); err != nil {
		return err
	}
	if ValidateField(field, s.data.Get(field)) {
		s.flags.Set(field, false)
	}
	return nil
}

// OnBlur sets the field's flag, revealing its error if the value is invalid.
func (s *Store) OnBlur(field Field) {
	s.flags.Set(field, true)
}

// OnFocus clears the field's flag, hiding its error while it is edited.
func (s *Store) OnFocus(field Field) {
	s.flags.Set(field, false)
}

// OnSubmit validates every field and sets each flag to the negation of that
// field's validity. If any field is invalid the values are kept and the
// result lists the failing fields. Otherwise values and flags are reset to
// their defaults and the result carries the submitted values.
func (s *Store) OnSubmit() SubmitResult {
	results := ValidateForm(s.data)

	var invalid []Field
	for _, f := range fieldOrder {
		ok := results[f]
		s.flags.Set(f, !ok)
		if !ok {
			invalid = append(invalid, f)
		}
	}

	if len(invalid) > 0 {
		return SubmitResult{Invalid: invalid}
	}

	submitted := s.data
	s.Reset()
	return SubmitResult{Accepted: true, Submitted: submitted}
}

// Reset restores the empty form and clears every flag.
func (s *Store) Reset() {
	s.data = FormData{}
	s.flags = EditFlags{}
}

// VisibleErrors returns the error message of every field whose flag is set
// and whose current value fails validation. Fields without a visible error
// are absent from the map.
func (s *Store) VisibleErrors() map[Field]string {
	out := make(map[Field]string)
	for _, f := range fieldOrder {
		if s.flags.Get(f) && !ValidateField(f, s.data.Get(f)) {
			out[f] = Message(f)
		}
	}
	return out
}
