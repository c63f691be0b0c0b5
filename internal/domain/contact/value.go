package contact

import "strconv"

// Kind tells which variant a Value carries.
type Kind uint8

const (
	KindText Kind = iota
	KindBool
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == KindBool {
		return "boolean"
	}
	return "text"
}

// Value is the raw content of a form input: free text for text inputs, radio
// groups and text areas, or a boolean for the consent checkbox.
type Value struct {
	kind Kind
	text string
	flag bool
}

// Text returns a text Value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// AsText returns the text content and whether v is a text Value.
func (v Value) AsText() (string, bool) {
	return v.text, v.kind == KindText
}

// AsBool returns the boolean content and whether v is a boolean Value.
func (v Value) AsBool() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.kind == KindBool {
		return strconv.FormatBool(v.flag)
	}
	return v.text
}
