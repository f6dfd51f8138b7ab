package services

import (
	"fmt"
	"time"

	"chainpulse/models"
	"chainpulse/utils"
)

// Snapshot serves the fixed network dataset. All fields are written
// once in NewSnapshot and only read afterwards, so a single instance
// is safe for any number of concurrent requests.
type Snapshot struct {
	anchor        time.Time
	network       models.NetworkSummary
	nodes         []models.NodeStatus
	shipments     []models.Shipment
	alerts        []models.Alert
	optimizations []models.OptimizationRecommendation
	highlights    []string
}

// NewSnapshot captures the anchor timestamp, materializes the seed
// dataset relative to it and validates every record. A validation
// error means the data shipped with the build is defective and the
// server must not start.
func NewSnapshot() (*Snapshot, error) {
	anchor := time.Now().UTC()

	s := &Snapshot{
		anchor:        anchor,
		network:       seedNetwork(anchor),
		nodes:         seedNodes(anchor),
		shipments:     seedShipments(anchor),
		alerts:        seedAlerts(anchor),
		optimizations: seedOptimizations(),
		highlights:    seedHighlights(),
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Snapshot) validate() error {
	if err := utils.ValidSemver(utils.ServiceVersion); err != nil {
		return fmt.Errorf("service version %q: %w", utils.ServiceVersion, err)
	}
	if err := utils.ValidSemver(s.network.SmartContractVersion); err != nil {
		return fmt.Errorf("smart contract version %q: %w", s.network.SmartContractVersion, err)
	}
	if err := s.network.Validate(); err != nil {
		return fmt.Errorf("network summary: %w", err)
	}

	nodeIDs := make([]string, 0, len(s.nodes))
	for i := range s.nodes {
		if err := s.nodes[i].Validate(); err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
		nodeIDs = append(nodeIDs, s.nodes[i].ID)
	}
	if err := uniqueIDs("nodes", nodeIDs); err != nil {
		return err
	}

	shipmentIDs := make([]string, 0, len(s.shipments))
	for i := range s.shipments {
		if err := s.shipments[i].Validate(); err != nil {
			return fmt.Errorf("shipment %d: %w", i, err)
		}
		shipmentIDs = append(shipmentIDs, s.shipments[i].ID)
	}
	if err := uniqueIDs("shipments", shipmentIDs); err != nil {
		return err
	}

	alertIDs := make([]string, 0, len(s.alerts))
	for i := range s.alerts {
		if err := s.alerts[i].Validate(); err != nil {
			return fmt.Errorf("alert %d: %w", i, err)
		}
		alertIDs = append(alertIDs, s.alerts[i].ID)
	}
	if err := uniqueIDs("alerts", alertIDs); err != nil {
		return err
	}

	optIDs := make([]string, 0, len(s.optimizations))
	for i := range s.optimizations {
		if err := s.optimizations[i].Validate(); err != nil {
			return fmt.Errorf("optimization %d: %w", i, err)
		}
		optIDs = append(optIDs, s.optimizations[i].ID)
	}
	return uniqueIDs("optimizations", optIDs)
}

func uniqueIDs(kind string, ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return &models.ValidationError{Field: kind, Reason: "duplicate id " + id}
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Anchor returns the reference timestamp captured at construction.
func (s *Snapshot) Anchor() time.Time {
	return s.anchor
}

// BuildDashboard assembles a fresh response from the shared read-only
// dataset. It cannot fail after construction.
func (s *Snapshot) BuildDashboard() models.DashboardResponse {
	return models.DashboardResponse{
		Network:              s.network,
		Nodes:                s.nodes,
		Shipments:            s.shipments,
		Alerts:               s.alerts,
		Optimizations:        s.optimizations,
		ResilienceHighlights: s.highlights,
	}
}
