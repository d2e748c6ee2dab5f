package model

import "github.com/shopspring/decimal"

// DashboardStats is the landing page summary.
type DashboardStats struct {
	TotalTalents   int             `json:"total_talents"`
	TotalTransfers int             `json:"total_transfers"`
	TotalEvents    int             `json:"total_events"`
	TotalUsers     int             `json:"total_users"`
	TransferVolume decimal.Decimal `json:"transfer_volume"`
	TicketsSold    int             `json:"tickets_sold"`
}

// Trend is the direction of a KPI.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// KPI is a single dashboard indicator. Value is a number or a string.
type KPI struct {
	Label  string   `json:"label"`
	Value  any      `json:"value"`
	Change *float64 `json:"change,omitempty"`
	Trend  Trend    `json:"trend,omitempty"`
}

// ChartPoint is one labelled chart value; extra series keys are kept.
type ChartPoint map[string]any

// ChartData is the body of GET /dashboard/charts/{type}.
type ChartData struct {
	Data []ChartPoint `json:"data"`
}
