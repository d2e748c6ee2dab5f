package model

// Referee is a federation referee.
type Referee struct {
	ID           int      `json:"id"`
	RefereeID    string   `json:"referee_id"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	LicenseGrade string   `json:"license_grade"`
	Region       string   `json:"region"`
	TotalMatches int      `json:"total_matches"`
	AvgRating    *float64 `json:"avg_rating,omitempty"`
	IsActive     bool     `json:"is_active"`
}

// VARDecision is a recorded video-assistant decision.
type VARDecision struct {
	ID               int    `json:"id"`
	DecisionID       string `json:"decision_id"`
	MatchID          string `json:"match_id"`
	Minute           int    `json:"minute"`
	DecisionType     string `json:"decision_type"`
	OriginalDecision string `json:"original_decision"`
	FinalDecision    string `json:"final_decision"`
	DecisionChanged  bool   `json:"decision_changed"`
	BlockchainHash   string `json:"blockchain_hash"`
	Verified         bool   `json:"verified"`
}
