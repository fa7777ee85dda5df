package models

// LobbyingFiling is one disclosure filing. The issue/entity fields are
// free text and only ever matched by substring search.
type LobbyingFiling struct {
	FilingID           string  `json:"filing_id"`
	ClientName         string  `json:"client_name"`
	ClientDescription  string  `json:"client_description"`
	RegistrantName     string  `json:"registrant_name"`
	RegistrantAddress  string  `json:"registrant_address"`
	LobbyistName       string  `json:"lobbyist_name"`
	LobbyistTitle      string  `json:"lobbyist_title"`
	Amount             float64 `json:"amount"`
	Year               int     `json:"year"`
	Quarter            string  `json:"quarter"`
	ReportType         string  `json:"report_type"`
	IssueAreas         string  `json:"issue_areas"`
	SpecificIssues     string  `json:"specific_issues"`
	GovernmentEntities string  `json:"government_entities"`
	ForeignEntities    string  `json:"foreign_entities"`
	PostedDate         string  `json:"posted_date"`
}
