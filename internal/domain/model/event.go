package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is a ticketed event.
type Event struct {
	ID           int             `json:"id"`
	EventID      string          `json:"event_id"`
	Name         string          `json:"name"`
	EventType    string          `json:"event_type"`
	Venue        string          `json:"venue"`
	City         string          `json:"city"`
	Country      string          `json:"country"`
	EventDate    time.Time       `json:"event_date"`
	TotalTickets int             `json:"total_tickets"`
	TicketsSold  int             `json:"tickets_sold"`
	TicketPrice  decimal.Decimal `json:"ticket_price"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Available returns the unsold inventory.
func (e Event) Available() int {
	if e.TicketsSold >= e.TotalTickets {
		return 0
	}
	return e.TotalTickets - e.TicketsSold
}

// Ticket is a minted ticket. BlockchainHash is an opaque string verified
// by the backend.
type Ticket struct {
	ID             int        `json:"id"`
	TicketID       string     `json:"ticket_id"`
	EventID        int        `json:"event_id"`
	OwnerID        int        `json:"owner_id"`
	TicketType     string     `json:"ticket_type"`
	BlockchainHash string     `json:"blockchain_hash"`
	Status         string     `json:"status"`
	PurchasedAt    time.Time  `json:"purchased_at"`
	UsedAt         *time.Time `json:"used_at,omitempty"`
}

// TicketVerification is returned by GET /tickets/{hash}/verify.
type TicketVerification struct {
	Valid   bool    `json:"valid"`
	Message string  `json:"message,omitempty"`
	Ticket  *Ticket `json:"ticket,omitempty"`
}

// LoyaltyInfo is the caller's loyalty standing.
type LoyaltyInfo struct {
	UserID           int    `json:"user_id"`
	Points           int    `json:"points"`
	Tier             string `json:"tier"`
	NextTier         string `json:"next_tier,omitempty"`
	PointsToNextTier *int   `json:"points_to_next_tier,omitempty"`
}
