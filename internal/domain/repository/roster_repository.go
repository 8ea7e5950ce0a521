package repository

import (
	"context"

	"convoytrack/internal/domain/entity"
)

// RosterRepository defines the read interface over the per-convoy member
// table. It serves both leader-position reconciliation and the headcount
// fallback.
type RosterRepository interface {
	// FindPositionReports returns the live-position rows for all the given
	// convoys in one query.
	FindPositionReports(ctx context.Context, convoyIDs []string) ([]*entity.MemberPositionReport, error)

	// FindRosterByConvoy returns the membership rows for a single convoy.
	FindRosterByConvoy(ctx context.Context, convoyID string) ([]*entity.RosterEntry, error)
}
