package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRiskLevel(t *testing.T) {
	t.Run("Known Levels", func(t *testing.T) {
		for _, s := range []string{"Low", "Medium", "High"} {
			level, err := ParseRiskLevel(s)
			require.NoError(t, err)
			assert.Equal(t, RiskLevel(s), level)
			assert.True(t, level.Valid())
		}
	})

	t.Run("Unknown Level", func(t *testing.T) {
		_, err := ParseRiskLevel("Critical")
		require.Error(t, err)

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("Case Sensitive", func(t *testing.T) {
		_, err := ParseRiskLevel("low")
		assert.Error(t, err)
	})
}

func TestRiskLevelJSON(t *testing.T) {
	t.Run("Marshals To Literal", func(t *testing.T) {
		data, err := json.Marshal(RiskHigh)
		require.NoError(t, err)
		assert.Equal(t, `"High"`, string(data))
	})

	t.Run("Unmarshals Known Literal", func(t *testing.T) {
		var r RiskLevel
		require.NoError(t, json.Unmarshal([]byte(`"Medium"`), &r))
		assert.Equal(t, RiskMedium, r)
	})

	t.Run("Rejects Unknown Literal", func(t *testing.T) {
		var r RiskLevel
		assert.Error(t, json.Unmarshal([]byte(`"severe"`), &r))
	})

	t.Run("Rejects Non-String", func(t *testing.T) {
		var r RiskLevel
		assert.Error(t, json.Unmarshal([]byte(`2`), &r))
	})
}
