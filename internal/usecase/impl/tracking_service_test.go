package impl

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"convoytrack/internal/domain/entity"
	mockRepo "convoytrack/internal/mocks/repository"
	mockService "convoytrack/internal/mocks/service"
	mockUsecase "convoytrack/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type trackingFixture struct {
	convoyRepo  *mockRepo.MockConvoyRepository
	rosterRepo  *mockRepo.MockRosterRepository
	headcountUC *mockUsecase.MockHeadcountUsecase
	locator     *mockService.MockDeviceLocator
	svc         *trackingService
}

func newTrackingFixture(t *testing.T) *trackingFixture {
	t.Helper()

	f := &trackingFixture{
		convoyRepo:  mockRepo.NewMockConvoyRepository(t),
		rosterRepo:  mockRepo.NewMockRosterRepository(t),
		headcountUC: mockUsecase.NewMockHeadcountUsecase(t),
		locator:     mockService.NewMockDeviceLocator(t),
	}
	f.svc = NewTrackingService(f.convoyRepo, f.rosterRepo, f.headcountUC, f.locator, nil, slog.Default()).(*trackingService)

	return f
}

func TestTrackingService_RunTick_PublishesFullTick(t *testing.T) {
	f := newTrackingFixture(t)
	ctx := context.Background()

	origin := &entity.Coordinate{Lat: 41.0, Lng: 29.0}
	reportedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	convoy := &entity.ConvoySnapshot{ID: "c1", LeaderID: "leader-1", Status: entity.ConvoyStatusActive}
	planned := &entity.ConvoySnapshot{
		ID:       "p1",
		LeaderID: "leader-2",
		Status:   entity.ConvoyStatusPending,
		RawLeaderPosition: &entity.ReconciledPosition{
			Position: entity.Coordinate{Lat: 40.0, Lng: 30.0},
		},
	}

	f.locator.EXPECT().Locate(mock.Anything).Return(origin, nil)
	f.convoyRepo.EXPECT().FindActiveConvoys(mock.Anything).Return([]*entity.ConvoySnapshot{convoy}, nil)
	f.convoyRepo.EXPECT().FindPlannedConvoys(mock.Anything).Return([]*entity.ConvoySnapshot{planned}, nil)
	f.convoyRepo.EXPECT().HasLivePositionFeed(mock.Anything).Return(true, nil)
	f.rosterRepo.EXPECT().FindPositionReports(mock.Anything, []string{"c1"}).Return([]*entity.MemberPositionReport{
		{
			ConvoyID:   "c1",
			UserID:     "leader-1",
			Role:       entity.MemberRoleLeader,
			Position:   &entity.Coordinate{Lat: 41.1, Lng: 29.1},
			ReportedAt: &reportedAt,
		},
	}, nil)
	f.headcountUC.EXPECT().Resolve(mock.Anything, []string{"c1", "p1"}).Return(map[string]*entity.HeadcountStats{
		"c1": {MaxHeadcount: 10, LeaderPartySize: 1, ConfirmedHeadcount: 4, AvailableHeadcount: 6},
	})

	f.svc.runTick(ctx)

	tick := f.svc.Latest()
	require.NotNil(t, tick)
	assert.False(t, tick.RefreshFailed)
	assert.True(t, tick.PositionFeedAvailable)
	require.NotNil(t, tick.Origin)
	assert.Equal(t, 41.0, tick.Origin.Lat)

	require.Len(t, tick.Active, 1)
	view := tick.Active[0]
	require.NotNil(t, view.Position)
	assert.Equal(t, 41.1, view.Position.Position.Lat)
	require.NotNil(t, view.DistanceKm)
	assert.Greater(t, *view.DistanceKm, 0.0)
	require.NotNil(t, view.BearingDeg)
	assert.Equal(t, entity.TrendUnknown, view.Trend)
	require.NotNil(t, view.Headcount)
	assert.Equal(t, 4, view.Headcount.ConfirmedHeadcount)

	require.Len(t, tick.Planned, 1)
	plannedView := tick.Planned[0]
	require.NotNil(t, plannedView.DistanceKm)
	assert.Equal(t, entity.TrendUnknown, plannedView.Trend)
	assert.Nil(t, plannedView.Headcount)
}

func TestTrackingService_RunTick_TrendAdvancesAcrossTicks(t *testing.T) {
	f := newTrackingFixture(t)
	ctx := context.Background()

	origin := &entity.Coordinate{Lat: 41.0, Lng: 29.0}
	near := &entity.ReconciledPosition{Position: entity.Coordinate{Lat: 41.05, Lng: 29.0}}
	far := &entity.ReconciledPosition{Position: entity.Coordinate{Lat: 41.5, Lng: 29.0}}

	f.locator.EXPECT().Locate(mock.Anything).Return(origin, nil)
	f.convoyRepo.EXPECT().HasLivePositionFeed(mock.Anything).Return(true, nil)
	f.rosterRepo.EXPECT().FindPositionReports(mock.Anything, []string{"c1"}).Return(nil, nil)
	f.headcountUC.EXPECT().Resolve(mock.Anything, []string{"c1"}).Return(nil)
	f.convoyRepo.EXPECT().FindPlannedConvoys(mock.Anything).Return(nil, nil)

	f.convoyRepo.EXPECT().FindActiveConvoys(mock.Anything).
		Return([]*entity.ConvoySnapshot{{ID: "c1", LeaderID: "l", RawLeaderPosition: far}}, nil).
		Once()
	f.svc.runTick(ctx)
	assert.Equal(t, entity.TrendUnknown, f.svc.Latest().Active[0].Trend)

	f.convoyRepo.EXPECT().FindActiveConvoys(mock.Anything).
		Return([]*entity.ConvoySnapshot{{ID: "c1", LeaderID: "l", RawLeaderPosition: near}}, nil).
		Once()
	f.svc.runTick(ctx)
	assert.Equal(t, entity.TrendApproaching, f.svc.Latest().Active[0].Trend)
}

func TestTrackingService_RunTick_LeavingActiveSetEvictsState(t *testing.T) {
	f := newTrackingFixture(t)
	ctx := context.Background()

	origin := &entity.Coordinate{Lat: 41.0, Lng: 29.0}
	position := &entity.ReconciledPosition{Position: entity.Coordinate{Lat: 41.5, Lng: 29.0}}
	convoy := func() *entity.ConvoySnapshot {
		return &entity.ConvoySnapshot{ID: "c1", LeaderID: "l", RawLeaderPosition: position}
	}

	f.locator.EXPECT().Locate(mock.Anything).Return(origin, nil)
	f.convoyRepo.EXPECT().HasLivePositionFeed(mock.Anything).Return(true, nil)
	f.rosterRepo.EXPECT().FindPositionReports(mock.Anything, []string{"c1"}).Return(nil, nil)
	f.convoyRepo.EXPECT().FindPlannedConvoys(mock.Anything).Return(nil, nil)
	f.headcountUC.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil)

	f.convoyRepo.EXPECT().FindActiveConvoys(mock.Anything).
		Return([]*entity.ConvoySnapshot{convoy()}, nil).
		Once()
	f.svc.runTick(ctx)
	require.Contains(t, f.svc.states, "c1")

	// The convoy drops off the active set: its classifier state must go too.
	f.convoyRepo.EXPECT().FindActiveConvoys(mock.Anything).
		Return(nil, nil).
		Once()
	f.svc.runTick(ctx)
	assert.NotContains(t, f.svc.states, "c1")

	// Re-activation starts from scratch at unknown.
	f.convoyRepo.EXPECT().FindActiveConvoys(mock.Anything).
		Return([]*entity.ConvoySnapshot{convoy()}, nil).
		Once()
	f.svc.runTick(ctx)
	assert.Equal(t, entity.TrendUnknown, f.svc.Latest().Active[0].Trend)
}

func TestTrackingService_RunTick_RefreshFailureCarriesPreviousData(t *testing.T) {
	f := newTrackingFixture(t)
	ctx := context.Background()

	origin := &entity.Coordinate{Lat: 41.0, Lng: 29.0}
	position := &entity.ReconciledPosition{Position: entity.Coordinate{Lat: 41.5, Lng: 29.0}}

	f.locator.EXPECT().Locate(mock.Anything).Return(origin, nil)
	f.convoyRepo.EXPECT().HasLivePositionFeed(mock.Anything).Return(true, nil)
	f.rosterRepo.EXPECT().FindPositionReports(mock.Anything, []string{"c1"}).Return(nil, nil)
	f.convoyRepo.EXPECT().FindPlannedConvoys(mock.Anything).Return(nil, nil).Once()
	f.headcountUC.EXPECT().Resolve(mock.Anything, []string{"c1"}).Return(nil)

	f.convoyRepo.EXPECT().FindActiveConvoys(mock.Anything).
		Return([]*entity.ConvoySnapshot{{ID: "c1", LeaderID: "l", RawLeaderPosition: position}}, nil).
		Once()
	f.svc.runTick(ctx)

	f.convoyRepo.EXPECT().FindActiveConvoys(mock.Anything).
		Return(nil, errors.New("db down")).
		Once()
	f.convoyRepo.EXPECT().FindPlannedConvoys(mock.Anything).
		Return(nil, nil).
		Once()
	f.svc.runTick(ctx)

	tick := f.svc.Latest()
	require.NotNil(t, tick)
	assert.True(t, tick.RefreshFailed)

	// The stale convoy data is still visible and classifier state survives.
	require.Len(t, tick.Active, 1)
	assert.Equal(t, "c1", tick.Active[0].Convoy.ID)
	assert.Contains(t, f.svc.states, "c1")
}

func TestTrackingService_RunTick_LocateFailureKeepsPreviousOrigin(t *testing.T) {
	f := newTrackingFixture(t)
	ctx := context.Background()

	origin := &entity.Coordinate{Lat: 41.0, Lng: 29.0}

	f.convoyRepo.EXPECT().FindActiveConvoys(mock.Anything).Return(nil, nil)
	f.convoyRepo.EXPECT().FindPlannedConvoys(mock.Anything).Return(nil, nil)
	f.headcountUC.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil)

	f.locator.EXPECT().Locate(mock.Anything).Return(origin, nil).Once()
	f.svc.runTick(ctx)

	f.locator.EXPECT().Locate(mock.Anything).Return(nil, errors.New("gps off")).Once()
	f.svc.runTick(ctx)

	tick := f.svc.Latest()
	require.NotNil(t, tick)
	require.NotNil(t, tick.Origin)
	assert.Equal(t, 41.0, tick.Origin.Lat)
}

func TestTrackingService_RunTick_MissingFeedSkipsReports(t *testing.T) {
	f := newTrackingFixture(t)
	ctx := context.Background()

	f.locator.EXPECT().Locate(mock.Anything).Return(&entity.Coordinate{Lat: 41.0, Lng: 29.0}, nil)
	f.convoyRepo.EXPECT().FindActiveConvoys(mock.Anything).
		Return([]*entity.ConvoySnapshot{{ID: "c1", LeaderID: "l"}}, nil)
	f.convoyRepo.EXPECT().FindPlannedConvoys(mock.Anything).Return(nil, nil)
	f.convoyRepo.EXPECT().HasLivePositionFeed(mock.Anything).Return(false, nil)
	f.headcountUC.EXPECT().Resolve(mock.Anything, []string{"c1"}).Return(nil)

	// No FindPositionReports expectation: it must not be called at all.
	f.svc.runTick(ctx)

	tick := f.svc.Latest()
	require.NotNil(t, tick)
	assert.False(t, tick.PositionFeedAvailable)
	require.Len(t, tick.Active, 1)
	assert.Nil(t, tick.Active[0].DistanceKm)
	assert.Equal(t, entity.TrendUnknown, tick.Active[0].Trend)
}

func TestTrackingService_SubscribeAndStop(t *testing.T) {
	f := newTrackingFixture(t)
	ctx := context.Background()

	f.locator.EXPECT().Locate(mock.Anything).Return(&entity.Coordinate{Lat: 41.0, Lng: 29.0}, nil)
	f.convoyRepo.EXPECT().FindActiveConvoys(mock.Anything).Return(nil, nil)
	f.convoyRepo.EXPECT().FindPlannedConvoys(mock.Anything).Return(nil, nil)
	f.headcountUC.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil)

	ch, cancel := f.svc.Subscribe(1)
	defer cancel()

	f.svc.runTick(ctx)

	select {
	case tick := <-ch:
		require.NotNil(t, tick)
	default:
		t.Fatal("expected a published tick on the subscription channel")
	}

	// Stop is idempotent.
	f.svc.Stop()
	f.svc.Stop()
}
