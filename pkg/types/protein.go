// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Fallbacks substituted when an entry lacks the optional fields.
const (
	UnspecifiedName = "Unspecified protein"
	NoActivity      = "No molecular activity found."
)

// LookupResult is the outcome of fetching one identifier. Exactly one of
// the two shapes is populated: Name and Activity on success, Err on
// failure.
type LookupResult struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Activity string `json:"activity,omitempty" yaml:"activity,omitempty"`
	Err      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Found returns a successful result.
func Found(name, activity string) LookupResult {
	return LookupResult{Name: name, Activity: activity}
}

// Failed returns a result carrying a human-readable error message.
func Failed(msg string) LookupResult {
	return LookupResult{Err: msg}
}

// OK reports whether the lookup succeeded.
func (r LookupResult) OK() bool {
	return r.Err == ""
}

// Columns returns the two output cells for r. A failed lookup puts its
// message in both cells.
func (r LookupResult) Columns() (name, activity string) {
	if !r.OK() {
		return r.Err, r.Err
	}
	return r.Name, r.Activity
}

// OutputRow is one line of the result table.
type OutputRow struct {
	// Index is the zero-based position in the processed identifier list.
	Index int `json:"index" yaml:"index"`

	// Identifier is the accession exactly as read from the input.
	Identifier string `json:"uniprot_id" yaml:"uniprot_id"`

	Name     string `json:"type" yaml:"type"`
	Activity string `json:"activity" yaml:"activity"`

	// Failed marks rows whose Name and Activity hold an error message.
	Failed bool `json:"failed,omitempty" yaml:"failed,omitempty"`
}
