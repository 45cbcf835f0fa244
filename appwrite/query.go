package appwrite

import "encoding/json"

// Queries are sent as JSON strings in the queries[] parameter, one per
// constraint, matching the service's wire format.
type query struct {
	Method    string `json:"method"`
	Attribute string `json:"attribute,omitempty"`
	Values    []any  `json:"values,omitempty"`
}

func (q query) String() string {
	b, _ := json.Marshal(q)
	return string(b)
}

// Equal filters documents whose attribute exactly matches one of values.
func Equal(attribute string, values ...any) string {
	return query{Method: "equal", Attribute: attribute, Values: values}.String()
}

// OrderDesc sorts results by attribute, newest-first for timestamps.
func OrderDesc(attribute string) string {
	return query{Method: "orderDesc", Attribute: attribute}.String()
}

// Limit caps the number of returned documents.
func Limit(n int) string {
	return query{Method: "limit", Values: []any{n}}.String()
}
