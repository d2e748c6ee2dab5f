package model

import "time"

// Talent is a scouted player.
type Talent struct {
	ID              int       `json:"id"`
	TalentID        string    `json:"talent_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	DateOfBirth     string    `json:"date_of_birth"`
	Nationality     string    `json:"nationality"`
	Position        string    `json:"primary_position"`
	CurrentClub     string    `json:"current_club,omitempty"`
	HeightCM        *int      `json:"height_cm,omitempty"`
	WeightKG        *int      `json:"weight_kg,omitempty"`
	PreferredFoot   string    `json:"preferred_foot,omitempty"`
	IsDiaspora      bool      `json:"is_diaspora"`
	DiasporaCountry string    `json:"diaspora_country,omitempty"`
	ScoutRating     *float64  `json:"overall_score,omitempty"`
	PotentialRating *float64  `json:"potential_score,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// FullName joins first and last name.
func (t Talent) FullName() string {
	if t.LastName == "" {
		return t.FirstName
	}
	return t.FirstName + " " + t.LastName
}

// TalentCreate is the body of POST /talents.
type TalentCreate struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	DateOfBirth     string `json:"date_of_birth"`
	Nationality     string `json:"nationality"`
	Position        string `json:"primary_position"`
	CurrentClub     string `json:"current_club,omitempty"`
	IsDiaspora      bool   `json:"is_diaspora,omitempty"`
	DiasporaCountry string `json:"diaspora_country,omitempty"`
}

// Scout is a registered talent scout.
type Scout struct {
	ID        int    `json:"id"`
	ScoutID   string `json:"scout_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Region    string `json:"region,omitempty"`
	IsActive  bool   `json:"is_active"`
}
