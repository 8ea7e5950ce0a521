package postgres

import (
	"context"

	"convoytrack/internal/domain/entity"
	"convoytrack/internal/domain/repository"
	"convoytrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// rosterRepository implements the repository.RosterRepository interface.
type rosterRepository struct {
	db *gorm.DB
}

// NewRosterRepository is the constructor for rosterRepository.
func NewRosterRepository(db *gorm.DB) repository.RosterRepository {
	return &rosterRepository{
		db: db,
	}
}

// FindPositionReports returns the live-position rows for all the given
// convoys in one query.
func (repo *rosterRepository) FindPositionReports(ctx context.Context, convoyIDs []string) ([]*entity.MemberPositionReport, error) {
	if len(convoyIDs) == 0 {
		return nil, nil
	}

	var memberModels []*model.ConvoyMemberModel

	if err := repo.db.WithContext(ctx).
		Where("convoy_id IN ?", convoyIDs).
		Order("reported_at ASC").
		Find(&memberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find position reports")
	}

	reports := make([]*entity.MemberPositionReport, 0, len(memberModels))
	for _, memberM := range memberModels {
		reports = append(reports, model.ToPositionReportDomain(memberM))
	}

	return reports, nil
}

// FindRosterByConvoy returns the membership rows for a single convoy.
func (repo *rosterRepository) FindRosterByConvoy(ctx context.Context, convoyID string) ([]*entity.RosterEntry, error) {
	var memberModels []*model.ConvoyMemberModel

	if err := repo.db.WithContext(ctx).
		Where("convoy_id = ?", convoyID).
		Find(&memberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find roster by convoy")
	}

	entries := make([]*entity.RosterEntry, 0, len(memberModels))
	for _, memberM := range memberModels {
		entries = append(entries, model.ToRosterEntryDomain(memberM))
	}

	return entries, nil
}
