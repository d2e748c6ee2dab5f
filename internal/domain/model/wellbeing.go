package model

import "time"

// HayatSession is a wellbeing session.
type HayatSession struct {
	ID                  int        `json:"id"`
	SessionID           string     `json:"session_id"`
	UserID              *int       `json:"user_id,omitempty"`
	SessionType         string     `json:"session_type"`
	Status              string     `json:"status"`
	ScheduledAt         *time.Time `json:"scheduled_at,omitempty"`
	DurationMinutes     *int       `json:"duration_minutes,omitempty"`
	WellbeingScoreAfter *float64   `json:"wellbeing_score_after,omitempty"`
}

// CrisisAlert is an escalated wellbeing alert.
type CrisisAlert struct {
	ID                  int       `json:"id"`
	AlertID             string    `json:"alert_id"`
	Severity            string    `json:"severity"`
	Description         string    `json:"description"`
	Status              string    `json:"status"`
	ResponseTimeMinutes *int      `json:"response_time_minutes,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// Incident is a reported hate incident.
type Incident struct {
	ID               int       `json:"id"`
	IncidentID       string    `json:"incident_id"`
	IncidentType     string    `json:"incident_type"`
	Platform         string    `json:"platform,omitempty"`
	Severity         string    `json:"severity"`
	Description      string    `json:"description"`
	Status           string    `json:"status"`
	LegalActionTaken bool      `json:"legal_action_taken"`
	ReportedAt       time.Time `json:"reported_at"`
}

// LegalCase follows an incident through the courts.
type LegalCase struct {
	ID         int       `json:"id"`
	CaseID     string    `json:"case_id"`
	IncidentID int       `json:"incident_id"`
	CaseType   string    `json:"case_type"`
	Status     string    `json:"status"`
	Verdict    string    `json:"verdict,omitempty"`
	FiledAt    time.Time `json:"filed_at"`
}

// Signal is a monitored news/information signal.
type Signal struct {
	ID              int    `json:"id"`
	SignalID        string `json:"signal_id"`
	SignalType      string `json:"signal_type"`
	Headline        string `json:"headline"`
	ContentSummary  string `json:"content_summary"`
	Severity        string `json:"severity"`
	Status          string `json:"status"`
	FactCheckResult string `json:"fact_check_result,omitempty"`
}

// FactCard is a published fact check.
type FactCard struct {
	ID          int    `json:"id"`
	CardID      string `json:"card_id"`
	Title       string `json:"title"`
	Claim       string `json:"claim"`
	Verdict     string `json:"verdict"`
	Explanation string `json:"explanation"`
	Views       int    `json:"views"`
	Shares      int    `json:"shares"`
}
