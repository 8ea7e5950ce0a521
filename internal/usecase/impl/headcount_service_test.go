package impl

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"convoytrack/internal/domain/entity"
	"convoytrack/internal/domain/repository"
	"convoytrack/internal/domain/service"
	mockRepo "convoytrack/internal/mocks/repository"
	mockService "convoytrack/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHeadcountFixture(t *testing.T) (*mockService.MockBulkHeadcountClient, *mockRepo.MockConvoyRepository, *mockRepo.MockRosterRepository, *headcountService) {
	t.Helper()

	mockClient := mockService.NewMockBulkHeadcountClient(t)
	mockConvoyRepo := mockRepo.NewMockConvoyRepository(t)
	mockRosterRepo := mockRepo.NewMockRosterRepository(t)

	svc := NewHeadcountService(mockClient, mockConvoyRepo, mockRosterRepo, slog.Default()).(*headcountService)

	return mockClient, mockConvoyRepo, mockRosterRepo, svc
}

func TestHeadcountService_Resolve_BulkSuccess(t *testing.T) {
	mockClient, _, _, svc := newHeadcountFixture(t)

	ctx := context.Background()
	ids := []string{"c1", "c2"}

	mockClient.EXPECT().
		FetchBulk(ctx, ids).
		Return([]*service.BulkHeadcountRow{
			{ConvoyID: "c1", MaxHeadcount: 40.9, LeaderPartySize: 2.7, ConfirmedHeadcount: 12.3, PendingHeadcount: 3.9, AvailableHeadcount: 27.1},
		}, nil)

	out := svc.Resolve(ctx, ids)

	require.Len(t, out, 1)
	stats := out["c1"]
	require.NotNil(t, stats)

	// Fractional counts floor; nothing rounds up.
	assert.Equal(t, 40, stats.MaxHeadcount)
	assert.Equal(t, 2, stats.LeaderPartySize)
	assert.Equal(t, 12, stats.ConfirmedHeadcount)
	assert.Equal(t, 3, stats.PendingHeadcount)
	assert.Equal(t, 27, stats.AvailableHeadcount)

	// c2 was absent from a successful response: no defaulting, no fallback.
	assert.NotContains(t, out, "c2")
}

func TestHeadcountService_Resolve_BulkRowClamps(t *testing.T) {
	mockClient, _, _, svc := newHeadcountFixture(t)

	ctx := context.Background()
	ids := []string{"c1"}

	mockClient.EXPECT().
		FetchBulk(ctx, ids).
		Return([]*service.BulkHeadcountRow{
			{ConvoyID: "c1", MaxHeadcount: 0, LeaderPartySize: -3, ConfirmedHeadcount: 0, PendingHeadcount: -1, AvailableHeadcount: -5},
		}, nil)

	stats := svc.Resolve(ctx, ids)["c1"]
	require.NotNil(t, stats)

	assert.Equal(t, 1, stats.LeaderPartySize)
	assert.Equal(t, 1, stats.MaxHeadcount)
	assert.Equal(t, 1, stats.ConfirmedHeadcount)
	assert.Equal(t, 0, stats.PendingHeadcount)
	assert.Equal(t, 0, stats.AvailableHeadcount)
}

func TestHeadcountService_Resolve_FallbackFromRoster(t *testing.T) {
	mockClient, mockConvoyRepo, mockRosterRepo, svc := newHeadcountFixture(t)

	ctx := context.Background()
	ids := []string{"c1"}

	mockClient.EXPECT().
		FetchBulk(ctx, ids).
		Return(nil, errors.New("gateway timeout"))

	mockConvoyRepo.EXPECT().
		FindConvoyByID(ctx, "c1").
		Return(&entity.ConvoySnapshot{
			ID:                      "c1",
			DeclaredCapacity:        10,
			DeclaredLeaderPartySize: 2,
		}, nil)

	mockRosterRepo.EXPECT().
		FindRosterByConvoy(ctx, "c1").
		Return([]*entity.RosterEntry{
			{ConvoyID: "c1", UserID: "leader", Role: entity.MemberRoleLeader, Status: entity.MemberStatusActive, PartySize: 2},
			{ConvoyID: "c1", UserID: "m1", Role: entity.MemberRoleMember, Status: entity.MemberStatusActive, PartySize: 3},
			{ConvoyID: "c1", UserID: "m2", Role: entity.MemberRoleMember, Status: entity.MemberStatusAcceptedWaiting, PartySize: 0},
			{ConvoyID: "c1", UserID: "m3", Role: entity.MemberRoleMember, Status: entity.MemberStatusPending, PartySize: 2},
		}, nil)

	stats := svc.Resolve(ctx, ids)["c1"]
	require.NotNil(t, stats)

	// Leader row is skipped (the leader party comes from the convoy record);
	// the zero party size floors to one.
	assert.Equal(t, 10, stats.MaxHeadcount)
	assert.Equal(t, 2, stats.LeaderPartySize)
	assert.Equal(t, 2+3+1, stats.ConfirmedHeadcount)
	assert.Equal(t, 2, stats.PendingHeadcount)
	assert.Equal(t, 10-6, stats.AvailableHeadcount)
}

func TestHeadcountService_Resolve_FallbackConvoyMissing(t *testing.T) {
	mockClient, mockConvoyRepo, _, svc := newHeadcountFixture(t)

	ctx := context.Background()
	ids := []string{"ghost"}

	mockClient.EXPECT().
		FetchBulk(ctx, ids).
		Return(nil, errors.New("gateway timeout"))

	mockConvoyRepo.EXPECT().
		FindConvoyByID(ctx, "ghost").
		Return(nil, repository.ErrConvoyNotFound)

	stats := svc.Resolve(ctx, ids)["ghost"]
	require.NotNil(t, stats)

	assert.Equal(t, &entity.HeadcountStats{
		MaxHeadcount:       1,
		LeaderPartySize:    1,
		ConfirmedHeadcount: 1,
		PendingHeadcount:   0,
		AvailableHeadcount: 0,
	}, stats)
}

func TestHeadcountService_Resolve_FallbackFailureOmitsOnlyThatConvoy(t *testing.T) {
	mockClient, mockConvoyRepo, mockRosterRepo, svc := newHeadcountFixture(t)

	ctx := context.Background()
	ids := []string{"ok", "broken"}

	mockClient.EXPECT().
		FetchBulk(ctx, ids).
		Return(nil, errors.New("gateway timeout"))

	mockConvoyRepo.EXPECT().
		FindConvoyByID(ctx, "ok").
		Return(&entity.ConvoySnapshot{ID: "ok", DeclaredCapacity: 5, DeclaredLeaderPartySize: 1}, nil)
	mockRosterRepo.EXPECT().
		FindRosterByConvoy(ctx, "ok").
		Return(nil, nil)

	dbErr := errors.New("connection reset")
	mockConvoyRepo.EXPECT().
		FindConvoyByID(ctx, "broken").
		Return(nil, dbErr)
	mockConvoyRepo.EXPECT().
		FindConvoyCapacity(ctx, "broken").
		Return(nil, dbErr)

	out := svc.Resolve(ctx, ids)

	require.Len(t, out, 1)
	assert.Contains(t, out, "ok")
	assert.NotContains(t, out, "broken")
}

func TestHeadcountService_Resolve_CapacityOnlySecondFallback(t *testing.T) {
	mockClient, mockConvoyRepo, mockRosterRepo, svc := newHeadcountFixture(t)

	ctx := context.Background()
	ids := []string{"c1"}

	mockClient.EXPECT().
		FetchBulk(ctx, ids).
		Return(nil, errors.New("gateway timeout"))

	// Full record read fails with a transient error; the narrow
	// capacity-only query still answers.
	mockConvoyRepo.EXPECT().
		FindConvoyByID(ctx, "c1").
		Return(nil, errors.New("column mismatch"))
	mockConvoyRepo.EXPECT().
		FindConvoyCapacity(ctx, "c1").
		Return(&entity.ConvoyCapacity{MaxHeadcount: 8, LeaderPartySize: 1}, nil)
	mockRosterRepo.EXPECT().
		FindRosterByConvoy(ctx, "c1").
		Return(nil, nil)

	stats := svc.Resolve(ctx, ids)["c1"]
	require.NotNil(t, stats)

	assert.Equal(t, 8, stats.MaxHeadcount)
	assert.Equal(t, 1, stats.ConfirmedHeadcount)
	assert.Equal(t, 7, stats.AvailableHeadcount)
}

func TestHeadcountService_Resolve_EmptyInput(t *testing.T) {
	_, _, _, svc := newHeadcountFixture(t)

	out := svc.Resolve(context.Background(), nil)
	assert.Empty(t, out)
}
