package impl

import (
	"math"

	"convoytrack/config"
	"convoytrack/internal/domain/entity"
)

// Classifier defaults. The asymmetric thresholds bias toward stability: a
// classifier that flickers between approaching and away on every tick is
// useless to a merchant deciding whether to send an offer.
const (
	defaultDeadBandKm        = 0.45
	defaultPassedDeltaKm     = 0.6
	defaultPassedProximityKm = 2.0
)

// trendThresholds carries the distance-based classifier constants.
type trendThresholds struct {
	deadBandKm        float64
	passedDeltaKm     float64
	passedProximityKm float64
}

// newTrendThresholds reads the configured thresholds, clamping missing or
// non-positive values to the defaults.
func newTrendThresholds(cfg *config.TrackingConfig) trendThresholds {
	th := trendThresholds{
		deadBandKm:        defaultDeadBandKm,
		passedDeltaKm:     defaultPassedDeltaKm,
		passedProximityKm: defaultPassedProximityKm,
	}
	if cfg == nil {
		return th
	}
	if cfg.DeadBandKm > 0 {
		th.deadBandKm = cfg.DeadBandKm
	}
	if cfg.PassedDeltaKm > 0 {
		th.passedDeltaKm = cfg.PassedDeltaKm
	}
	if cfg.PassedProximityKm > 0 {
		th.passedProximityKm = cfg.PassedProximityKm
	}

	return th
}

// applyDistanceSample advances a convoy's classifier state with a new
// distance sample and returns the successor state. A nil state means this is
// the convoy's first sample, which emits unknown; unknown is never
// re-entered afterwards.
//
// The minimum-seen floor is monotonically non-increasing and never resets
// while the convoy stays active, so "passed" is sticky: a convoy that once
// came within the proximity floor keeps registering as passed on any clear
// recession, even after looping back slightly.
func applyDistanceSample(state *entity.DistanceState, d float64, th trendThresholds) *entity.DistanceState {
	if state == nil {
		return &entity.DistanceState{
			LastDistanceKm:    d,
			MinSeenDistanceKm: d,
			Trend:             entity.TrendUnknown,
		}
	}

	minSeen := math.Min(state.MinSeenDistanceKm, d)
	delta := d - state.LastDistanceKm

	var trend entity.Trend
	switch {
	case minSeen <= th.passedProximityKm && delta > th.passedDeltaKm:
		trend = entity.TrendPassed
	case delta <= -th.deadBandKm:
		trend = entity.TrendApproaching
	case delta >= th.deadBandKm:
		trend = entity.TrendAway
	default:
		trend = entity.TrendStable
	}

	return &entity.DistanceState{
		LastDistanceKm:    d,
		MinSeenDistanceKm: minSeen,
		Trend:             trend,
	}
}
