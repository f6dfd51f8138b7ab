package models

import "time"

// HealthResponse is the /health body. Timestamp reflects request time,
// not process start.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Notes     string    `json:"notes,omitempty"`
}
