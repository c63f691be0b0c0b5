package contact

// QueryType is the kind of enquiry selected on the form. The empty value
// means nothing has been selected yet.
type QueryType string

const (
	QueryTypeGeneral QueryType = "General Enquiry"
	QueryTypeSupport QueryType = "Support Request"
)

// QueryTypes returns the selectable query types in display order.
func QueryTypes() []QueryType {
	return []QueryType{QueryTypeGeneral, QueryTypeSupport}
}

// IsKnown returns true if the query type is one of the defined constants.
// The queryType validation rule only requires a non-blank value; IsKnown is
// for presentation code that renders the radio group.
func (q QueryType) IsKnown() bool {
	switch q {
	case QueryTypeGeneral, QueryTypeSupport:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (q QueryType) String() string {
	return string(q)
}
