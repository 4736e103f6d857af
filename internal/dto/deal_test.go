package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/fx_deals_warehouse/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealTime_UnmarshalJSON(t *testing.T) {
	t.Run("RFC3339", func(t *testing.T) {
		var dt dto.DealTime
		require.NoError(t, json.Unmarshal([]byte(`"2024-01-01T10:00:00Z"`), &dt))
		assert.True(t, dt.Equal(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("zone-less form is interpreted as UTC", func(t *testing.T) {
		var dt dto.DealTime
		require.NoError(t, json.Unmarshal([]byte(`"2024-01-01T10:00:00"`), &dt))
		assert.True(t, dt.Equal(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("null literal leaves zero time", func(t *testing.T) {
		var dt dto.DealTime
		require.NoError(t, json.Unmarshal([]byte(`null`), &dt))
		assert.True(t, dt.IsZero())
	})

	t.Run("quoted null string is rejected", func(t *testing.T) {
		var dt dto.DealTime
		err := json.Unmarshal([]byte(`"null"`), &dt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid timestamp")
	})

	t.Run("empty string is rejected", func(t *testing.T) {
		var dt dto.DealTime
		err := json.Unmarshal([]byte(`""`), &dt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid timestamp")
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		var dt dto.DealTime
		assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &dt))
	})
}

func TestDealTime_MarshalJSON(t *testing.T) {
	dt := dto.DealTime{Time: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}

	out, err := json.Marshal(dt)

	require.NoError(t, err)
	assert.Equal(t, `"2024-01-01T10:00:00Z"`, string(out))
}
