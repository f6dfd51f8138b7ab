package models

import "time"

// NetworkSummary is the headline view of the whole network.
type NetworkSummary struct {
	Name                 string    `json:"name"`
	BlockHeight          int64     `json:"block_height"`
	SmartContractVersion string    `json:"smart_contract_version"`
	Uptime               string    `json:"uptime"`
	RiskScore            int       `json:"risk_score"` // 0-100
	LastUpdated          time.Time `json:"last_updated"`
	TotalTransactions    int64     `json:"total_transactions"`
	OracleIntegrations   []string  `json:"oracle_integrations"`
}

func (n *NetworkSummary) Validate() error {
	if n.RiskScore < 0 || n.RiskScore > 100 {
		return &ValidationError{Field: "risk_score", Reason: "must be within [0,100]"}
	}
	if n.BlockHeight < 0 {
		return &ValidationError{Field: "block_height", Reason: "must be non-negative"}
	}
	if n.TotalTransactions < 0 {
		return &ValidationError{Field: "total_transactions", Reason: "must be non-negative"}
	}
	return nil
}
