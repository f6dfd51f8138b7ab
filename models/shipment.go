package models

import "time"

// Shipment is a tracked consignment between two nodes. BlockchainAnchor
// is an opaque ledger reference, never interpreted by this service.
type Shipment struct {
	ID               string    `json:"id"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	Status           string    `json:"status"`
	ETA              time.Time `json:"eta"`
	LastCheckpoint   string    `json:"last_checkpoint"`
	BlockchainAnchor string    `json:"blockchain_anchor"`
	RiskLevel        RiskLevel `json:"risk_level"`
}

func (s *Shipment) Validate() error {
	if s.ID == "" {
		return &ValidationError{Field: "id", Reason: "shipment id is empty"}
	}
	if !s.RiskLevel.Valid() {
		return &ValidationError{Field: "risk_level", Reason: "unknown level " + string(s.RiskLevel)}
	}
	return nil
}
