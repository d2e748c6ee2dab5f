package model

import "time"

// Identity is a verified person record.
type Identity struct {
	ID                int    `json:"id"`
	IdentityID        string `json:"identity_id"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	DateOfBirth       string `json:"date_of_birth"`
	Nationality       string `json:"nationality"`
	VerificationLevel int    `json:"verification_level"`
	IsVerified        bool   `json:"is_verified"`
	Status            string `json:"status"`
}

// MarocID is a national digital identity record; KYC levels are assigned
// by the backend.
type MarocID struct {
	ID                int    `json:"id"`
	MarocID           string `json:"maroc_id"`
	FirstNameFR       string `json:"first_name_fr"`
	LastNameFR        string `json:"last_name_fr"`
	CINNumber         string `json:"cin_number,omitempty"`
	VerificationLevel int    `json:"verification_level"`
	KYCStatus         string `json:"kyc_status"`
	WalletAddress     string `json:"wallet_address,omitempty"`
}

// Certificate is a document issued against a MarocID.
type Certificate struct {
	ID              int       `json:"id"`
	CertificateID   string    `json:"certificate_id"`
	MarocID         int       `json:"maroc_id"`
	CertificateType string    `json:"certificate_type"`
	Status          string    `json:"status"`
	IssuedAt        time.Time `json:"issued_at"`
	ExpiresAt       time.Time `json:"expires_at"`
	QRCode          string    `json:"qr_code,omitempty"`
}
