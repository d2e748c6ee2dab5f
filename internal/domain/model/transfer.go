package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferType enumerates the kinds of transfer.
type TransferType string

const (
	TransferPermanent TransferType = "Permanent"
	TransferLoan      TransferType = "Loan"
	TransferFree      TransferType = "Free"
	TransferYouth     TransferType = "Youth"
)

// Transfer is a player move between clubs. The compensation fields are
// computed by the backend.
type Transfer struct {
	ID                     int             `json:"id"`
	TransferID             string          `json:"transfer_id"`
	TalentID               *int            `json:"talent_id,omitempty"`
	PlayerName             string          `json:"player_name"`
	FromClub               string          `json:"from_club"`
	ToClub                 string          `json:"to_club"`
	TransferType           TransferType    `json:"transfer_type"`
	TransferFee            decimal.Decimal `json:"transfer_fee"`
	Currency               string          `json:"currency,omitempty"`
	Status                 string          `json:"status"`
	TrainingCompensation   decimal.Decimal `json:"training_compensation"`
	SolidarityContribution decimal.Decimal `json:"solidarity_contribution"`
	FoundationContribution decimal.Decimal `json:"foundation_contribution"`
	SmartContractHash      string          `json:"smart_contract_hash,omitempty"`
	BlockchainVerified     bool            `json:"blockchain_verified"`
	CreatedAt              time.Time       `json:"created_at"`
	CompletedAt            *time.Time      `json:"completed_at,omitempty"`
}

// TrainingClub is one entry of a compensation request.
type TrainingClub struct {
	Club    string `json:"club"`
	Country string `json:"country"`
	AgeFrom int    `json:"age_from"`
	AgeTo   int    `json:"age_to"`
}

// CompensationRequest is the body of POST /transfers/calculate.
type CompensationRequest struct {
	TransferFee   float64        `json:"transfer_fee"`
	PlayerAge     int            `json:"player_age"`
	TrainingClubs []TrainingClub `json:"training_clubs"`
}

// Compensation is the server-side fee breakdown.
type Compensation struct {
	TransferFee            decimal.Decimal  `json:"transfer_fee"`
	TrainingCompensation   decimal.Decimal  `json:"training_compensation"`
	SolidarityContribution decimal.Decimal  `json:"solidarity_contribution"`
	FoundationContribution decimal.Decimal  `json:"foundation_contribution"`
	TotalCost              decimal.Decimal  `json:"total_cost"`
	Breakdown              []map[string]any `json:"breakdown"`
}
