package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainpulse/models"
)

func newTestSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	s, err := NewSnapshot()
	require.NoError(t, err)
	return s
}

func TestNewSnapshot(t *testing.T) {
	s := newTestSnapshot(t)
	assert.WithinDuration(t, time.Now().UTC(), s.Anchor(), 5*time.Second)
}

func TestBuildDashboard(t *testing.T) {
	s := newTestSnapshot(t)
	dash := s.BuildDashboard()

	t.Run("Collection Sizes", func(t *testing.T) {
		assert.Len(t, dash.Nodes, 3)
		assert.Len(t, dash.Shipments, 3)
		assert.Len(t, dash.Alerts, 3)
		assert.Len(t, dash.Optimizations, 2)
		assert.Len(t, dash.ResilienceHighlights, 3)
	})

	t.Run("Known Literals", func(t *testing.T) {
		assert.Equal(t, 76, dash.Network.RiskScore)
		assert.Equal(t, "Global Resilience Network", dash.Network.Name)
		assert.Equal(t, int64(2845), dash.Network.BlockHeight)
		assert.Equal(t, "v1.4.2", dash.Network.SmartContractVersion)

		require.NotEmpty(t, dash.Nodes)
		assert.Equal(t, "node-mfg-001", dash.Nodes[0].ID)
		assert.Equal(t, models.RiskLow, dash.Nodes[0].RiskLevel)

		require.NotEmpty(t, dash.Shipments)
		assert.Equal(t, "shipment-4839", dash.Shipments[0].ID)
		assert.Equal(t, models.RiskMedium, dash.Shipments[0].RiskLevel)
	})

	t.Run("Distinct Non-Empty IDs", func(t *testing.T) {
		checkIDs := func(kind string, ids []string) {
			seen := make(map[string]struct{}, len(ids))
			for _, id := range ids {
				assert.NotEmpty(t, id, "%s id should not be empty", kind)
				_, dup := seen[id]
				assert.False(t, dup, "%s id %s duplicated", kind, id)
				seen[id] = struct{}{}
			}
		}

		var ids []string
		for _, n := range dash.Nodes {
			ids = append(ids, n.ID)
		}
		checkIDs("node", ids)

		ids = nil
		for _, sh := range dash.Shipments {
			ids = append(ids, sh.ID)
		}
		checkIDs("shipment", ids)

		ids = nil
		for _, a := range dash.Alerts {
			ids = append(ids, a.ID)
		}
		checkIDs("alert", ids)

		ids = nil
		for _, o := range dash.Optimizations {
			ids = append(ids, o.ID)
		}
		checkIDs("optimization", ids)
	})

	t.Run("Risk Levels Are Wire Literals", func(t *testing.T) {
		for _, n := range dash.Nodes {
			assert.True(t, n.RiskLevel.Valid())
		}
		for _, sh := range dash.Shipments {
			assert.True(t, sh.RiskLevel.Valid())
		}
		for _, a := range dash.Alerts {
			assert.True(t, a.Severity.Valid())
		}
	})

	t.Run("Timestamps Anchored At Fixed Offsets", func(t *testing.T) {
		anchor := s.Anchor()

		assert.True(t, dash.Network.LastUpdated.Equal(anchor))

		assert.True(t, dash.Nodes[0].LastEvent.Equal(anchor.Add(-12*time.Minute)))
		assert.True(t, dash.Nodes[1].LastEvent.Equal(anchor.Add(-24*time.Minute)))
		assert.True(t, dash.Nodes[2].LastEvent.Equal(anchor.Add(-(1*time.Hour+5*time.Minute))))

		assert.True(t, dash.Shipments[0].ETA.Equal(anchor.Add(5*24*time.Hour+4*time.Hour)))
		assert.True(t, dash.Shipments[2].ETA.Equal(anchor.Add(-6*time.Hour)))

		assert.True(t, dash.Alerts[0].Timestamp.Equal(anchor.Add(-8*time.Minute)))
	})

	t.Run("Deterministic Across Calls", func(t *testing.T) {
		first, err := json.Marshal(s.BuildDashboard())
		require.NoError(t, err)

		second, err := json.Marshal(s.BuildDashboard())
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Confidence Within Bounds", func(t *testing.T) {
		for _, o := range dash.Optimizations {
			assert.GreaterOrEqual(t, o.Confidence, 0.0)
			assert.LessOrEqual(t, o.Confidence, 1.0)
		}
	})
}

func TestUniqueIDs(t *testing.T) {
	t.Run("All Distinct", func(t *testing.T) {
		require.NoError(t, uniqueIDs("nodes", []string{"a", "b", "c"}))
	})

	t.Run("Duplicate", func(t *testing.T) {
		err := uniqueIDs("nodes", []string{"a", "b", "a"})
		require.Error(t, err)

		var verr *models.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("Empty", func(t *testing.T) {
		require.NoError(t, uniqueIDs("nodes", nil))
	})
}
