package models

// SpendingAward is one federal spending record. Amount is a
// non-negative currency value.
type SpendingAward struct {
	AwardID        string  `json:"award_id"`
	RecipientName  string  `json:"recipient_name"`
	Amount         float64 `json:"amount"`
	AwardType      string  `json:"award_type"`
	AwardingAgency string  `json:"awarding_agency"`
	Description    string  `json:"description"`
	FiscalYear     int     `json:"fiscal_year"`
}
