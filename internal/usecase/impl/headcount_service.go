package impl

import (
	"context"
	"log/slog"
	"math"

	"convoytrack/internal/domain/entity"
	"convoytrack/internal/domain/repository"
	"convoytrack/internal/domain/service"
	"convoytrack/internal/errors"
	"convoytrack/internal/usecase"
)

type headcountService struct {
	client     service.BulkHeadcountClient
	convoyRepo repository.ConvoyRepository
	rosterRepo repository.RosterRepository
	logger     *slog.Logger
}

// NewHeadcountService creates a new headcount service instance
func NewHeadcountService(
	client service.BulkHeadcountClient,
	convoyRepo repository.ConvoyRepository,
	rosterRepo repository.RosterRepository,
	logger *slog.Logger,
) usecase.HeadcountUsecase {
	return &headcountService{
		client:     client,
		convoyRepo: convoyRepo,
		rosterRepo: rosterRepo,
		logger:     logger,
	}
}

// Resolve returns occupancy stats per convoy, remote aggregate first. A
// transport failure of the bulk call switches to the per-convoy local
// fallback; individual fallback failures only omit that convoy from the
// result, they never abort the batch.
func (s *headcountService) Resolve(ctx context.Context, convoyIDs []string) map[string]*entity.HeadcountStats {
	out := make(map[string]*entity.HeadcountStats, len(convoyIDs))
	if len(convoyIDs) == 0 {
		return out
	}

	rows, err := s.client.FetchBulk(ctx, convoyIDs)
	if err == nil {
		// Convoys absent from a successful response are NOT defaulted here;
		// the fallback runs only on transport failure.
		for _, row := range rows {
			out[row.ConvoyID] = normalizeBulkRow(row)
		}

		return out
	}

	s.logger.LogAttrs(ctx, slog.LevelWarn, "Bulk headcount call failed, falling back per convoy",
		slog.Int("convoys", len(convoyIDs)),
		slog.Any("error", err),
	)

	for _, id := range convoyIDs {
		stats, fallbackErr := s.resolveLocally(ctx, id)
		if fallbackErr != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "Headcount fallback failed, omitting convoy",
				slog.String("convoyID", id),
				slog.Any("error", fallbackErr),
			)

			continue
		}
		out[id] = stats
	}

	return out
}

// resolveLocally reconstructs one convoy's stats from two local queries:
// capacity fields from the convoy record (with a narrower capacity-only
// query as second fallback), then the roster rows.
func (s *headcountService) resolveLocally(ctx context.Context, convoyID string) (*entity.HeadcountStats, error) {
	maxHeadcount, leaderParty, err := s.capacityFor(ctx, convoyID)
	if err != nil {
		if errors.Is(err, repository.ErrConvoyNotFound) {
			// The convoy record does not exist at all: report the leader as
			// the only confirmed occupant, with no room, instead of failing.
			return &entity.HeadcountStats{
				MaxHeadcount:       1,
				LeaderPartySize:    1,
				ConfirmedHeadcount: 1,
				PendingHeadcount:   0,
				AvailableHeadcount: 0,
			}, nil
		}

		return nil, err
	}

	roster, err := s.rosterRepo.FindRosterByConvoy(ctx, convoyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find roster for headcount fallback")
	}

	confirmed, pending := 0, 0
	for _, row := range roster {
		if row.Role == entity.MemberRoleLeader {
			continue
		}
		size := row.PartySize
		if size < 1 {
			size = 1
		}
		if row.Status.CountsAsConfirmed() {
			confirmed += size
		} else {
			pending += size
		}
	}

	confirmedHeadcount := leaderParty + confirmed
	if maxHeadcount < leaderParty {
		maxHeadcount = leaderParty
	}
	available := maxHeadcount - confirmedHeadcount
	if available < 0 {
		available = 0
	}

	return &entity.HeadcountStats{
		MaxHeadcount:       maxHeadcount,
		LeaderPartySize:    leaderParty,
		ConfirmedHeadcount: confirmedHeadcount,
		PendingHeadcount:   pending,
		AvailableHeadcount: available,
	}, nil
}

func (s *headcountService) capacityFor(ctx context.Context, convoyID string) (maxHeadcount, leaderParty int, err error) {
	convoy, err := s.convoyRepo.FindConvoyByID(ctx, convoyID)
	if err == nil {
		return clampMin(convoy.DeclaredCapacity, 1), clampMin(convoy.DeclaredLeaderPartySize, 1), nil
	}
	if errors.Is(err, repository.ErrConvoyNotFound) {
		return 0, 0, err
	}

	capacity, capErr := s.convoyRepo.FindConvoyCapacity(ctx, convoyID)
	if capErr != nil {
		if errors.Is(capErr, repository.ErrConvoyNotFound) {
			return 0, 0, capErr
		}

		return 0, 0, errors.Wrap(capErr, "capacity-only fallback failed")
	}

	return clampMin(capacity.MaxHeadcount, 1), clampMin(capacity.LeaderPartySize, 1), nil
}

// normalizeBulkRow applies the floor-and-clamp rules to one raw remote row
// so that every returned stats object satisfies
// confirmed >= leaderPartySize >= 1 and max >= leaderPartySize.
func normalizeBulkRow(row *service.BulkHeadcountRow) *entity.HeadcountStats {
	leaderParty := clampMin(int(math.Floor(row.LeaderPartySize)), 1)

	return &entity.HeadcountStats{
		MaxHeadcount:       clampMin(int(math.Floor(row.MaxHeadcount)), leaderParty),
		LeaderPartySize:    leaderParty,
		ConfirmedHeadcount: clampMin(int(math.Floor(row.ConfirmedHeadcount)), leaderParty),
		PendingHeadcount:   clampMin(int(math.Floor(row.PendingHeadcount)), 0),
		AvailableHeadcount: clampMin(int(math.Floor(row.AvailableHeadcount)), 0),
	}
}

func clampMin(v, floor int) int {
	if v < floor {
		return floor
	}

	return v
}
