package model

import "time"

// Consulate is a consular office.
type Consulate struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// ConsularDocument is a requested document.
type ConsularDocument struct {
	ID             int       `json:"id"`
	DocumentID     string    `json:"document_id"`
	DocumentType   string    `json:"document_type"`
	Status         string    `json:"status"`
	TrackingNumber string    `json:"tracking_number"`
	SubmittedAt    time.Time `json:"submitted_at"`
	PickupLocation string    `json:"pickup_location,omitempty"`
}

// Appointment is a consular appointment.
type Appointment struct {
	ID               int    `json:"id"`
	AppointmentID    string `json:"appointment_id"`
	ServiceType      string `json:"service_type"`
	ConsulateName    string `json:"consulate_name,omitempty"`
	ScheduledDate    string `json:"scheduled_date"`
	ScheduledTime    string `json:"scheduled_time,omitempty"`
	Status           string `json:"status"`
	ConfirmationCode string `json:"confirmation_code,omitempty"`
}
