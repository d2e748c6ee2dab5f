package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is a diaspora wallet.
type Wallet struct {
	ID            int             `json:"id"`
	WalletAddress string          `json:"wallet_address"`
	UserID        int             `json:"user_id"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      string          `json:"currency"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Transaction is a wallet ledger entry.
type Transaction struct {
	ID              int             `json:"id"`
	TransactionID   string          `json:"transaction_id"`
	WalletID        int             `json:"wallet_id"`
	TransactionType string          `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// DiasporaCard is a payment card attached to a wallet.
type DiasporaCard struct {
	ID         int       `json:"id"`
	CardNumber string    `json:"card_number"`
	CardType   string    `json:"card_type"`
	Status     string    `json:"status"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// WalletMovement is the body of deposit, withdraw and transfer calls.
type WalletMovement struct {
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency,omitempty"`
	ToWalletID  *int    `json:"to_wallet_id,omitempty"`
	Description string  `json:"description,omitempty"`
}
