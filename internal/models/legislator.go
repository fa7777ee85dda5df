package models

// Legislator is one member record. Rows are created and replaced only
// by the bulk loader, keyed on BioguideID; the public API never writes
// them individually.
type Legislator struct {
	BioguideID string  `json:"bioguide_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Party      string  `json:"party"`
	State      string  `json:"state"`
	Chamber    string  `json:"chamber"`
	District   *string `json:"district,omitempty"`
	InOffice   bool    `json:"in_office"`
	Phone      string  `json:"phone"`
}
