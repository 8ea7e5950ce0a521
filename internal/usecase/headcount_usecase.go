package usecase

import (
	"context"

	"convoytrack/internal/domain/entity"
)

// HeadcountUsecase resolves per-convoy occupancy statistics, remote
// aggregate first with a local per-convoy fallback. It never fails as a
// whole: a convoy that cannot be resolved is simply absent from the result
// map.
type HeadcountUsecase interface {
	Resolve(ctx context.Context, convoyIDs []string) map[string]*entity.HeadcountStats
}
