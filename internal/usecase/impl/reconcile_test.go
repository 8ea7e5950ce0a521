package impl

import (
	"testing"
	"time"

	"convoytrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaderReport(convoyID string, lat, lng float64, reportedAt *time.Time) *entity.MemberPositionReport {
	return &entity.MemberPositionReport{
		ConvoyID:   convoyID,
		UserID:     "leader-1",
		Role:       entity.MemberRoleLeader,
		Position:   &entity.Coordinate{Lat: lat, Lng: lng},
		ReportedAt: reportedAt,
	}
}

func TestReconcileLeaderPosition_NoFeeds(t *testing.T) {
	convoy := &entity.ConvoySnapshot{ID: "c1", LeaderID: "leader-1"}

	assert.Nil(t, reconcileLeaderPosition(convoy, nil))
}

func TestReconcileLeaderPosition_ConvoyFeedOnly(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	convoy := &entity.ConvoySnapshot{
		ID:       "c1",
		LeaderID: "leader-1",
		RawLeaderPosition: &entity.ReconciledPosition{
			Position:   entity.Coordinate{Lat: 41.0, Lng: 29.0},
			ObservedAt: &t1,
		},
	}

	got := reconcileLeaderPosition(convoy, nil)
	require.NotNil(t, got)
	assert.Equal(t, 41.0, got.Position.Lat)
}

func TestReconcileLeaderPosition_NewerReportWins(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)
	convoy := &entity.ConvoySnapshot{
		ID:       "c1",
		LeaderID: "leader-1",
		RawLeaderPosition: &entity.ReconciledPosition{
			Position:   entity.Coordinate{Lat: 41.0, Lng: 29.0},
			ObservedAt: &t1,
		},
	}

	got := reconcileLeaderPosition(convoy, []*entity.MemberPositionReport{
		leaderReport("c1", 40.5, 29.5, &t2),
	})
	require.NotNil(t, got)
	assert.Equal(t, 40.5, got.Position.Lat)
}

func TestReconcileLeaderPosition_EqualTimestampFavorsReport(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	convoy := &entity.ConvoySnapshot{
		ID:       "c1",
		LeaderID: "leader-1",
		RawLeaderPosition: &entity.ReconciledPosition{
			Position:   entity.Coordinate{Lat: 41.0, Lng: 29.0},
			ObservedAt: &t1,
		},
	}

	got := reconcileLeaderPosition(convoy, []*entity.MemberPositionReport{
		leaderReport("c1", 40.5, 29.5, &t1),
	})
	require.NotNil(t, got)
	assert.Equal(t, 40.5, got.Position.Lat)
}

func TestReconcileLeaderPosition_OlderReportLoses(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	t0 := t1.Add(-time.Minute)
	convoy := &entity.ConvoySnapshot{
		ID:       "c1",
		LeaderID: "leader-1",
		RawLeaderPosition: &entity.ReconciledPosition{
			Position:   entity.Coordinate{Lat: 41.0, Lng: 29.0},
			ObservedAt: &t1,
		},
	}

	got := reconcileLeaderPosition(convoy, []*entity.MemberPositionReport{
		leaderReport("c1", 40.5, 29.5, &t0),
	})
	require.NotNil(t, got)
	assert.Equal(t, 41.0, got.Position.Lat)
}

func TestReconcileLeaderPosition_UntimestampedCandidateAlwaysLoses(t *testing.T) {
	convoy := &entity.ConvoySnapshot{
		ID:       "c1",
		LeaderID: "leader-1",
		RawLeaderPosition: &entity.ReconciledPosition{
			Position: entity.Coordinate{Lat: 41.0, Lng: 29.0},
		},
	}

	got := reconcileLeaderPosition(convoy, []*entity.MemberPositionReport{
		leaderReport("c1", 40.5, 29.5, nil),
	})
	require.NotNil(t, got)
	assert.Equal(t, 40.5, got.Position.Lat)
}

func TestReconcileLeaderPosition_UntimestampedReportNeverDisplacesTimestamped(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	convoy := &entity.ConvoySnapshot{
		ID:       "c1",
		LeaderID: "leader-1",
		RawLeaderPosition: &entity.ReconciledPosition{
			Position:   entity.Coordinate{Lat: 41.0, Lng: 29.0},
			ObservedAt: &t1,
		},
	}

	got := reconcileLeaderPosition(convoy, []*entity.MemberPositionReport{
		leaderReport("c1", 40.5, 29.5, nil),
	})
	require.NotNil(t, got)
	assert.Equal(t, 41.0, got.Position.Lat)
}

func TestReconcileLeaderPosition_IgnoresNonLeaderAndOtherConvoys(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	convoy := &entity.ConvoySnapshot{ID: "c1", LeaderID: "leader-1"}

	member := &entity.MemberPositionReport{
		ConvoyID:   "c1",
		UserID:     "member-9",
		Role:       entity.MemberRoleMember,
		Position:   &entity.Coordinate{Lat: 39.0, Lng: 30.0},
		ReportedAt: &t1,
	}
	otherConvoy := leaderReport("c2", 38.0, 31.0, &t1)

	assert.Nil(t, reconcileLeaderPosition(convoy, []*entity.MemberPositionReport{member, otherConvoy}))
}

func TestReconcileLeaderPosition_DeclaredLeaderByUserID(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	convoy := &entity.ConvoySnapshot{ID: "c1", LeaderID: "u-77"}

	// Role tag missing, but the row belongs to the declared leader.
	report := &entity.MemberPositionReport{
		ConvoyID:   "c1",
		UserID:     "u-77",
		Role:       entity.MemberRoleMember,
		Position:   &entity.Coordinate{Lat: 39.0, Lng: 30.0},
		ReportedAt: &t1,
	}

	got := reconcileLeaderPosition(convoy, []*entity.MemberPositionReport{report})
	require.NotNil(t, got)
	assert.Equal(t, 39.0, got.Position.Lat)
}

func TestReconcileLeaderPosition_ReportWithoutPositionSkipped(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	convoy := &entity.ConvoySnapshot{ID: "c1", LeaderID: "leader-1"}

	report := &entity.MemberPositionReport{
		ConvoyID:   "c1",
		UserID:     "leader-1",
		Role:       entity.MemberRoleLeader,
		ReportedAt: &t1,
	}

	assert.Nil(t, reconcileLeaderPosition(convoy, []*entity.MemberPositionReport{report}))
}
