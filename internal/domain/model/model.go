// Package model declares the records exchanged with the ProInvestiX backend.
// They are passive copies of server-owned data: the client fetches, displays
// and submits them back, but never derives business values from them.
package model

import (
	"encoding/json"
	"time"
)

// Meta is the pagination block of list envelopes.
type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}

// Page is a paginated list response.
type Page[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// Envelope is the {success, data, meta} wrapper most endpoints return.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    *Meta           `json:"meta,omitempty"`
}

// APIError is the error body of the backend.
type APIError struct {
	Detail     string `json:"detail"`
	StatusCode int    `json:"status_code,omitempty"`
}

// MessageResponse is returned by action endpoints without a payload.
type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// Stats is the loosely typed body of the */stats endpoints.
type Stats map[string]any

// Timestamps shared by most records.
type Timestamps struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
