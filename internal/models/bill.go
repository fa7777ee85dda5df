package models

// Bill statuses. Anything outside the terminal set counts as active
// for the summary endpoint.
const (
	BillStatusIntroduced   = "introduced"
	BillStatusInCommittee  = "in_committee"
	BillStatusPassedHouse  = "passed_house"
	BillStatusPassedSenate = "passed_senate"
	BillStatusEnacted      = "enacted"
	BillStatusVetoed       = "vetoed"
	BillStatusFailed       = "failed"
)

// Bill is one piece of legislation. BillID is derived from
// chamber+number+congress (e.g. "hr-1234-119"). SponsorID is a soft
// reference to a Legislator identity and is never validated or joined.
type Bill struct {
	BillID         string  `json:"bill_id"`
	Congress       int     `json:"congress"`
	BillType       string  `json:"bill_type"`
	Number         int     `json:"number"`
	Title          string  `json:"title"`
	Status         string  `json:"status"`
	IntroducedDate string  `json:"introduced_date"`
	SponsorID      *string `json:"sponsor_id,omitempty"`
}
