package impl

import (
	"testing"

	"convoytrack/config"
	"convoytrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDistanceSample_ApproachThenPass(t *testing.T) {
	th := newTrendThresholds(nil)

	samples := []float64{50, 30, 10, 1.5, 1.2, 3.0}
	expected := []entity.Trend{
		entity.TrendUnknown,
		entity.TrendApproaching,
		entity.TrendApproaching,
		entity.TrendApproaching,
		entity.TrendStable,
		entity.TrendPassed,
	}

	var state *entity.DistanceState
	for i, d := range samples {
		state = applyDistanceSample(state, d, th)
		assert.Equal(t, expected[i], state.Trend, "sample %d (%.1f km)", i, d)
	}
}

func TestApplyDistanceSample_FirstSampleIsUnknown(t *testing.T) {
	state := applyDistanceSample(nil, 12.0, newTrendThresholds(nil))

	require.NotNil(t, state)
	assert.Equal(t, entity.TrendUnknown, state.Trend)
	assert.Equal(t, 12.0, state.LastDistanceKm)
	assert.Equal(t, 12.0, state.MinSeenDistanceKm)
}

func TestApplyDistanceSample_DeadBandIsStable(t *testing.T) {
	th := newTrendThresholds(nil)
	state := applyDistanceSample(nil, 10.0, th)

	state = applyDistanceSample(state, 10.4, th)
	assert.Equal(t, entity.TrendStable, state.Trend)

	state = applyDistanceSample(state, 10.0, th)
	assert.Equal(t, entity.TrendStable, state.Trend)
}

func TestApplyDistanceSample_RecessionFarAwayIsAway(t *testing.T) {
	th := newTrendThresholds(nil)
	state := applyDistanceSample(nil, 30.0, th)

	// Receding without ever entering the proximity floor is just away.
	state = applyDistanceSample(state, 31.0, th)
	assert.Equal(t, entity.TrendAway, state.Trend)
}

func TestApplyDistanceSample_MinSeenFloorIsSticky(t *testing.T) {
	th := newTrendThresholds(nil)

	var state *entity.DistanceState
	for _, d := range []float64{10, 1.0, 5.0, 4.0, 6.0} {
		state = applyDistanceSample(state, d, th)
	}

	// The 1.0 km floor survives the loop back out, so the final recession
	// still classifies as passed.
	assert.Equal(t, 1.0, state.MinSeenDistanceKm)
	assert.Equal(t, entity.TrendPassed, state.Trend)
}

func TestApplyDistanceSample_SmallRecessionNearFloorIsStable(t *testing.T) {
	th := newTrendThresholds(nil)
	state := applyDistanceSample(nil, 1.0, th)

	// Inside the proximity floor but the delta stays within the dead band.
	state = applyDistanceSample(state, 1.4, th)
	assert.Equal(t, entity.TrendStable, state.Trend)

	// Above the dead band yet below the passed delta reads as away, not
	// passed.
	state = applyDistanceSample(state, 1.9, th)
	assert.Equal(t, entity.TrendAway, state.Trend)
}

func TestNewTrendThresholds_Defaults(t *testing.T) {
	th := newTrendThresholds(nil)

	assert.Equal(t, defaultDeadBandKm, th.deadBandKm)
	assert.Equal(t, defaultPassedDeltaKm, th.passedDeltaKm)
	assert.Equal(t, defaultPassedProximityKm, th.passedProximityKm)
}

func TestNewTrendThresholds_ConfigOverridesAndClamps(t *testing.T) {
	th := newTrendThresholds(&config.TrackingConfig{
		DeadBandKm:        0.3,
		PassedDeltaKm:     -1,
		PassedProximityKm: 3.5,
	})

	assert.Equal(t, 0.3, th.deadBandKm)
	assert.Equal(t, defaultPassedDeltaKm, th.passedDeltaKm)
	assert.Equal(t, 3.5, th.passedProximityKm)
}
