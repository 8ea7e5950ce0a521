// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"sync"

	"convoytrack/internal/domain/entity"
	"convoytrack/internal/domain/repository"
	"convoytrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// convoyRepository implements the repository.ConvoyRepository interface.
type convoyRepository struct {
	db *gorm.DB

	feedOnce      sync.Once
	feedAvailable bool
}

// NewConvoyRepository is the constructor for convoyRepository.
func NewConvoyRepository(db *gorm.DB) repository.ConvoyRepository {
	return &convoyRepository{
		db: db,
	}
}

// FindActiveConvoys returns the convoys currently on the road.
func (repo *convoyRepository) FindActiveConvoys(ctx context.Context) ([]*entity.ConvoySnapshot, error) {
	return repo.findByStatus(ctx, entity.ConvoyStatusActive)
}

// FindPlannedConvoys returns the convoys that are planned but not yet departed.
func (repo *convoyRepository) FindPlannedConvoys(ctx context.Context) ([]*entity.ConvoySnapshot, error) {
	return repo.findByStatus(ctx, entity.ConvoyStatusPending)
}

func (repo *convoyRepository) findByStatus(ctx context.Context, status entity.ConvoyStatus) ([]*entity.ConvoySnapshot, error) {
	var convoyModels []*model.ConvoyModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("start_time ASC").
		Find(&convoyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find convoys by status")
	}

	convoys := make([]*entity.ConvoySnapshot, 0, len(convoyModels))
	for _, convoyM := range convoyModels {
		convoys = append(convoys, model.ToConvoyDomain(convoyM))
	}

	return convoys, nil
}

// FindConvoyByID retrieves a single convoy record.
func (repo *convoyRepository) FindConvoyByID(ctx context.Context, id string) (*entity.ConvoySnapshot, error) {
	var convoyM model.ConvoyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&convoyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConvoyNotFound
		}

		return nil, errors.Wrap(err, "failed to find convoy by ID")
	}

	return model.ToConvoyDomain(&convoyM), nil
}

// FindConvoyCapacity retrieves only the capacity columns of a convoy.
func (repo *convoyRepository) FindConvoyCapacity(ctx context.Context, id string) (*entity.ConvoyCapacity, error) {
	var capacity struct {
		DeclaredCapacity        int
		DeclaredLeaderPartySize int
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ConvoyModel{}).
		Select("declared_capacity", "declared_leader_party_size").
		Where("id = ?", id).
		Take(&capacity)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConvoyNotFound
		}

		return nil, errors.Wrap(result.Error, "failed to find convoy capacity")
	}

	return &entity.ConvoyCapacity{
		MaxHeadcount:    capacity.DeclaredCapacity,
		LeaderPartySize: capacity.DeclaredLeaderPartySize,
	}, nil
}

// HasLivePositionFeed reports whether the convoys table carries the live
// leader-position columns. The answer cannot change within a deployment, so
// it is computed once.
func (repo *convoyRepository) HasLivePositionFeed(ctx context.Context) (bool, error) {
	repo.feedOnce.Do(func() {
		migrator := repo.db.WithContext(ctx).Migrator()
		repo.feedAvailable = migrator.HasColumn(&model.ConvoyModel{}, "leader_lat") &&
			migrator.HasColumn(&model.ConvoyModel{}, "leader_lng")
	})

	return repo.feedAvailable, nil
}
