package models

// DashboardResponse is the aggregate served by /api/dashboard. It owns
// no state of its own and is assembled fresh for every request from the
// process-wide snapshot.
type DashboardResponse struct {
	Network              NetworkSummary               `json:"network"`
	Nodes                []NodeStatus                 `json:"nodes"`
	Shipments            []Shipment                   `json:"shipments"`
	Alerts               []Alert                      `json:"alerts"`
	Optimizations        []OptimizationRecommendation `json:"optimizations"`
	ResilienceHighlights []string                     `json:"resilience_highlights"`
}
