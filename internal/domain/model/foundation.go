package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Donation is a gift to the foundation.
type Donation struct {
	ID            int             `json:"id"`
	DonationID    string          `json:"donation_id"`
	UserID        *int            `json:"user_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	DonationType  string          `json:"donation_type"`
	IsAnonymous   bool            `json:"is_anonymous"`
	ReceiptNumber string          `json:"receipt_number"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Project is a foundation project.
type Project struct {
	ID            int             `json:"id"`
	ProjectID     string          `json:"project_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Status        string          `json:"status"`
}

// Progress returns the funded share of the target in percent, capped at 100.
func (p Project) Progress() decimal.Decimal {
	if p.TargetAmount.IsZero() {
		return decimal.Zero
	}
	pct := p.CurrentAmount.Div(p.TargetAmount).Mul(decimal.NewFromInt(100)).Round(1)
	return decimal.Min(pct, decimal.NewFromInt(100))
}

// Subscription plans and memberships.
type Subscription struct {
	ID        int             `json:"id"`
	PlanID    string          `json:"plan_id"`
	Status    string          `json:"status"`
	Price     decimal.Decimal `json:"price"`
	StartedAt time.Time       `json:"started_at"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
}
