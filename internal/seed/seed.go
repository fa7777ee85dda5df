// Package seed holds the static source records embedded in the binary
// and decodes them on demand. The records are write-once data: loaders
// hand fresh slices to the seed service, which bulk-replaces the store
// rows; nothing here is mutated at request time.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/mgrady4/civica/internal/models"
)

//go:embed data/legislators.json
var legislatorsJSON []byte

//go:embed data/bills.json
var billsJSON []byte

//go:embed data/spending.json
var spendingJSON []byte

//go:embed data/lobbying.json
var lobbyingJSON []byte

// Legislators decodes the embedded legislator records.
func Legislators() ([]models.Legislator, error) {
	var rows []models.Legislator
	if err := json.Unmarshal(legislatorsJSON, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode legislator seed data: %w", err)
	}
	return rows, nil
}

// Bills decodes the embedded bill records.
func Bills() ([]models.Bill, error) {
	var rows []models.Bill
	if err := json.Unmarshal(billsJSON, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode bill seed data: %w", err)
	}
	return rows, nil
}

// Spending decodes the embedded spending award records.
func Spending() ([]models.SpendingAward, error) {
	var rows []models.SpendingAward
	if err := json.Unmarshal(spendingJSON, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode spending seed data: %w", err)
	}
	return rows, nil
}

// Lobbying decodes the embedded lobbying filing records.
func Lobbying() ([]models.LobbyingFiling, error) {
	var rows []models.LobbyingFiling
	if err := json.Unmarshal(lobbyingJSON, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode lobbying seed data: %w", err)
	}
	return rows, nil
}
