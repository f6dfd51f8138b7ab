package models

import "time"

// NodeStatus describes one supply-chain node as seen by the network.
type NodeStatus struct {
	ID            string    `json:"id"`
	Role          string    `json:"role"`
	Location      string    `json:"location"`
	Status        string    `json:"status"`
	ThroughputTPH float64   `json:"throughput_tph"` // transactions per hour
	LastEvent     time.Time `json:"last_event"`
	RiskLevel     RiskLevel `json:"risk_level"`
}

func (n *NodeStatus) Validate() error {
	if n.ID == "" {
		return &ValidationError{Field: "id", Reason: "node id is empty"}
	}
	if n.ThroughputTPH < 0 {
		return &ValidationError{Field: "throughput_tph", Reason: "must be non-negative"}
	}
	if !n.RiskLevel.Valid() {
		return &ValidationError{Field: "risk_level", Reason: "unknown level " + string(n.RiskLevel)}
	}
	return nil
}
