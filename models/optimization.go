package models

// OptimizationRecommendation is a pre-computed suggestion surfaced on
// the dashboard. Confidence must sit in [0,1].
type OptimizationRecommendation struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Impact          string  `json:"impact"`
	Description     string  `json:"description"`
	SuggestedAction string  `json:"suggested_action"`
	Confidence      float64 `json:"confidence"`
}

func (o *OptimizationRecommendation) Validate() error {
	if o.ID == "" {
		return &ValidationError{Field: "id", Reason: "optimization id is empty"}
	}
	if o.Confidence < 0 || o.Confidence > 1 {
		return &ValidationError{Field: "confidence", Reason: "must be within [0,1]"}
	}
	return nil
}
