package contact

import (
	"strings"
	"testing"
)

func TestValidateField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field Field
		value Value
		want  bool
	}{
		// Names.
		{name: "first name too short", field: FieldFirstName, value: Text("Jo"), want: false},
		{name: "first name with hyphen", field: FieldFirstName, value: Text("Jo-Ann"), want: true},
		{name: "first name with apostrophe", field: FieldFirstName, value: Text("O'Neil"), want: true},
		{name: "first name with accents", field: FieldFirstName, value: Text("José"), want: true},
		{name: "first name with inner space", field: FieldFirstName, value: Text("Mary Jo"), want: true},
		{name: "first name with digit", field: FieldFirstName, value: Text("Ann3"), want: false},
		{name: "first name empty", field: FieldFirstName, value: Text(""), want: false},
		{name: "first name padded below minimum", field: FieldFirstName, value: Text("  Al  "), want: false},
		{name: "first name padded above minimum", field: FieldFirstName, value: Text("  Alice  "), want: true},
		{name: "last name accented lowercase", field: FieldLastName, value: Text("Müller"), want: true},
		{name: "last name non latin", field: FieldLastName, value: Text("Иванов"), want: false},
		{name: "last name with punctuation", field: FieldLastName, value: Text("Smith!"), want: false},
		{name: "first name with no-break space", field: FieldFirstName, value: Text("Mary\u00a0Jo"), want: true},
		{name: "first name with ideographic space", field: FieldFirstName, value: Text("Mary\u3000Jo"), want: true},
		{name: "first name padded with byte order mark", field: FieldFirstName, value: Text("\uFEFFAlice\u2028"), want: true},
		{name: "first name unicode padding below minimum", field: FieldFirstName, value: Text("\u00a0Al\u2003"), want: false},
		{name: "first name next line is not space", field: FieldFirstName, value: Text("Mary\u0085Jo"), want: false},

		// Email.
		{name: "email minimal", field: FieldEmail, value: Text("a@b.c"), want: true},
		{name: "email missing dot", field: FieldEmail, value: Text("a@b"), want: false},
		{name: "email missing at", field: FieldEmail, value: Text("ab.c"), want: false},
		{name: "email double at", field: FieldEmail, value: Text("a@@b.c"), want: false},
		{name: "email inner space", field: FieldEmail, value: Text("a b@c.d"), want: false},
		{name: "email no-break space in local part", field: FieldEmail, value: Text("a\u00a0b@c.d"), want: false},
		{name: "email em space in local part", field: FieldEmail, value: Text("a\u2003b@c.d"), want: false},
		{name: "email vertical tab in domain", field: FieldEmail, value: Text("ab@c\vx.d"), want: false},
		{name: "email byte order mark in domain", field: FieldEmail, value: Text("ab@c.d\uFEFFe"), want: false},
		{name: "email padded with no-break spaces", field: FieldEmail, value: Text("\u00a0jane@example.com\u00a0"), want: true},
		{name: "email padded", field: FieldEmail, value: Text("  jane@example.com "), want: true},
		{name: "email subdomain", field: FieldEmail, value: Text("jane@mail.example.co.uk"), want: true},

		// Message.
		{name: "message short", field: FieldMessage, value: Text("short"), want: false},
		{name: "message long enough", field: FieldMessage, value: Text("this is long enough"), want: true},
		{name: "message exactly ten", field: FieldMessage, value: Text("0123456789"), want: true},
		{name: "message padded below minimum", field: FieldMessage, value: Text("   nine char  "), want: false},
		{name: "message of astral characters", field: FieldMessage, value: Text("😀😀😀😀😀"), want: true},
		{name: "message of astral characters below minimum", field: FieldMessage, value: Text("😀😀😀😀"), want: false},
		{name: "message of accented characters", field: FieldMessage, value: Text("éééééééééé"), want: true},

		// Query type.
		{name: "query type selected", field: FieldQueryType, value: Text(string(QueryTypeGeneral)), want: true},
		{name: "query type free text", field: FieldQueryType, value: Text("anything"), want: true},
		{name: "query type empty", field: FieldQueryType, value: Text(""), want: false},
		{name: "query type blank", field: FieldQueryType, value: Text("   "), want: false},

		// Consent.
		{name: "consent false", field: FieldConsent, value: Bool(false), want: false},
		{name: "consent true", field: FieldConsent, value: Bool(true), want: true},

		// Kind mismatches and unknown fields.
		{name: "consent given text", field: FieldConsent, value: Text("true"), want: false},
		{name: "text field given boolean", field: FieldFirstName, value: Bool(true), want: false},
		{name: "unknown field", field: Field("phone"), value: Text("0123456789"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ValidateField(tt.field, tt.value); got != tt.want {
				t.Errorf("ValidateField(%q, %q) = %v, want %v", tt.field, tt.value, got, tt.want)
			}
		})
	}
}

func TestLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{in: "", want: 0},
		{in: "abc", want: 3},
		{in: "José", want: 4},
		{in: "😀", want: 2},
		{in: "a😀b", want: 4},
	}

	for _, tt := range tests {
		if got := Length(tt.in); got != tt.want {
			t.Errorf("Length(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidateField_Deterministic(t *testing.T) {
	t.Parallel()

	inputs := []struct {
		field Field
		value Value
	}{
		{FieldFirstName, Text("Jo-Ann")},
		{FieldEmail, Text("a@b")},
		{FieldMessage, Text("this is long enough")},
		{FieldConsent, Bool(true)},
	}

	for _, in := range inputs {
		first := ValidateField(in.field, in.value)
		for range 5 {
			if got := ValidateField(in.field, in.value); got != first {
				t.Fatalf("ValidateField(%q, %q) changed from %v to %v", in.field, in.value, first, got)
			}
		}
	}
}

func TestRules_CoverEveryField(t *testing.T) {
	t.Parallel()

	if len(rules) != len(Fields()) {
		t.Errorf("len(rules) = %d, want %d", len(rules), len(Fields()))
	}
	for _, f := range Fields() {
		r, ok := rules[f]
		if !ok {
			t.Errorf("rules missing field %q", f)
			continue
		}
		if r.kind != kindOf(f) {
			t.Errorf("rules[%q].kind = %v, want %v", f, r.kind, kindOf(f))
		}
		if strings.TrimSpace(Message(f)) == "" {
			t.Errorf("Message(%q) is empty", f)
		}
	}
}

func TestValidateForm(t *testing.T) {
	t.Parallel()

	got := ValidateForm(FormData{
		FirstName: "Jane",
		LastName:  "Do",
		Email:     "jane@example.com",
		QueryType: string(QueryTypeSupport),
		Message:   "short",
		Consent:   true,
	})

	want := map[Field]bool{
		FieldFirstName: true,
		FieldLastName:  false,
		FieldEmail:     true,
		FieldQueryType: true,
		FieldMessage:   false,
		FieldConsent:   true,
	}
	for f, w := range want {
		if got[f] != w {
			t.Errorf("ValidateForm()[%q] = %v, want %v", f, got[f], w)
		}
	}
}

func TestMessage_UnknownField(t *testing.T) {
	t.Parallel()

	if got := Message(Field("phone")); got != "" {
		t.Errorf("Message(phone) = %q, want empty", got)
	}
}
