package models

import (
	"encoding/json"
	"fmt"
)

// RiskLevel is the three-valued classification attached to nodes,
// shipments and alerts. Only the three literals below exist on the wire.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// ParseRiskLevel converts a wire literal into a RiskLevel. The match is
// case sensitive.
func ParseRiskLevel(s string) (RiskLevel, error) {
	r := RiskLevel(s)
	if !r.Valid() {
		return "", &ValidationError{Field: "risk_level", Reason: fmt.Sprintf("unknown level %q", s)}
	}
	return r, nil
}

func (r *RiskLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRiskLevel(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
