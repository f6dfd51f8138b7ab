package models

import "time"

// Alert is a display-only advisory attached to the network snapshot.
type Alert struct {
	ID                string    `json:"id"`
	Severity          RiskLevel `json:"severity"`
	Message           string    `json:"message"`
	Timestamp         time.Time `json:"timestamp"`
	RecommendedAction string    `json:"recommended_action"`
}

func (a *Alert) Validate() error {
	if a.ID == "" {
		return &ValidationError{Field: "id", Reason: "alert id is empty"}
	}
	if !a.Severity.Valid() {
		return &ValidationError{Field: "severity", Reason: "unknown level " + string(a.Severity)}
	}
	return nil
}
