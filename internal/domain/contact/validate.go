package contact

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
)

const (
	minNameLength    = 3
	minMessageLength = 10
)

// spaceClass is the body of a character class matching every rune isSpace
// accepts. RE2's \s alone is ASCII only.
const spaceClass = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	// namePattern accepts Latin letters including the Latin-1 accented range,
	// whitespace, apostrophes and hyphens.
	namePattern  = regexp.MustCompile(`^[A-Za-zÀ-ÿ` + spaceClass + `'-]+$`)
	emailPattern = regexp.MustCompile(
		`^[^` + spaceClass + `@]+@[^` + spaceClass + `@]+\.[^` + spaceClass + `@]+$`,
	)
)

// rule is the validation entry for one field.
type rule struct {
	kind    Kind
	check   func(Value) bool
	message string
}

// rules is the validation table. Every Field has exactly one entry.
var rules = map[Field]rule{
	FieldFirstName: {
		kind:    KindText,
		check:   textRule(isValidName),
		message: "First name must be at least 3 letters and contain only letters, spaces, apostrophes or hyphens",
	},
	FieldLastName: {
		kind:    KindText,
		check:   textRule(isValidName),
		message: "Last name must be at least 3 letters and contain only letters, spaces, apostrophes or hyphens",
	},
	FieldEmail: {
		kind:    KindText,
		check:   textRule(emailPattern.MatchString),
		message: "Please enter a valid email address",
	},
	FieldQueryType: {
		kind:    KindText,
		check:   textRule(func(s string) bool { return s != "" }),
		message: "Please select a query type",
	},
	FieldMessage: {
		kind:    KindText,
		check:   textRule(func(s string) bool { return Length(s) >= minMessageLength }),
		message: "Message must be at least 10 characters",
	},
	FieldConsent: {
		kind: KindBool,
		check: func(v Value) bool {
			b, _ := v.AsBool()
			return b
		},
		message: "To submit this form, please consent to being contacted",
	},
}

// textRule adapts a predicate over the trimmed text of a Value.
func textRule(pred func(string) bool) func(Value) bool {
	return func(v Value) bool {
		s, _ := v.AsText()
		return pred(strings.TrimFunc(s, isSpace))
	}
}

// isSpace reports whether r is whitespace for trimming and pattern purposes:
// ASCII whitespace, Unicode space separators, line and paragraph separators
// and the byte order mark. U+0085 is not whitespace here.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// Length returns the length of s in UTF-16 code units, the unit the minimum
// length rules are expressed in. Characters outside the Basic Multilingual
// Plane count twice.
func Length(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

func isValidName(s string) bool {
	return Length(s) >= minNameLength && namePattern.MatchString(s)
}

// ValidateField reports whether value satisfies the rule for field. It is
// pure: the result depends only on its arguments. Unknown fields and values
// of the wrong kind are invalid.
func ValidateField(field Field, value Value) bool {
	r, ok := rules[field]
	if !ok || value.Kind() != r.kind {
		return false
	}
	return r.check(value)
}

// ValidateForm validates every field of data and returns the outcome keyed
// by field.
func ValidateForm(data FormData) map[Field]bool {
	results := make(map[Field]bool, len(fieldOrder))
	for _, f := range fieldOrder {
		results[f] = ValidateField(f, data.Get(f))
	}
	return results
}

// Message returns the inline error text shown for an invalid field, or an
// empty string for unknown fields.
func Message(field Field) string {
	return rules[field].message
}
