package model

import "time"

// Academy is a youth academy.
type Academy struct {
	ID                int       `json:"id"`
	AcademyID         string    `json:"academy_id"`
	Name              string    `json:"name"`
	City              string    `json:"city"`
	Region            string    `json:"region"`
	Country           string    `json:"country"`
	LicenseLevel      string    `json:"license_level"`
	Capacity          int       `json:"capacity"`
	CurrentEnrollment int       `json:"current_enrollment"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

// AcademyTeam is an age-group team of an academy.
type AcademyTeam struct {
	ID        int    `json:"id"`
	TeamID    string `json:"team_id"`
	AcademyID int    `json:"academy_id"`
	Name      string `json:"name"`
	AgeGroup  string `json:"age_group"`
	Capacity  int    `json:"capacity"`
}

// FanDorp is a fan village.
type FanDorp struct {
	ID        int    `json:"id"`
	FanDorpID string `json:"fandorp_id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Capacity  int    `json:"capacity"`
	Status    string `json:"status"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Volunteer works shifts at a fan village.
type Volunteer struct {
	ID          int     `json:"id"`
	VolunteerID string  `json:"volunteer_id"`
	FanDorpID   int     `json:"fandorp_id"`
	UserID      int     `json:"user_id"`
	Role        string  `json:"role"`
	Status      string  `json:"status"`
	HoursWorked float64 `json:"hours_worked"`
}
