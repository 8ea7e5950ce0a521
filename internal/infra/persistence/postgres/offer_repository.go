package postgres

import (
	"context"

	"convoytrack/internal/domain/entity"
	domainerrors "convoytrack/internal/domain/errors"
	"convoytrack/internal/domain/repository"
	"convoytrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// CreateOffer persists a new offer.
func (repo *offerRepository) CreateOffer(ctx context.Context, offer *entity.OfferRecord) error {
	offerM := model.FromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOffer
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOfferCreationFailed.WrapMessage("missing required offer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	// Update the entity with generated values
	offer.CreatedAt = offerM.CreatedAt

	return nil
}

// FindOfferByID retrieves an offer by its unique ID.
func (repo *offerRepository) FindOfferByID(ctx context.Context, id uuid.UUID) (*entity.OfferRecord, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	return model.ToOfferDomain(&offerM), nil
}

// FindOffersByBusiness retrieves all offers a business has sent, newest
// first.
func (repo *offerRepository) FindOffersByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.OfferRecord, error) {
	var offerModels []*model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find offers by business")
	}

	offers := make([]*entity.OfferRecord, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, model.ToOfferDomain(offerM))
	}

	return offers, nil
}

// UpdateOfferStatus updates the status of an offer.
func (repo *offerRepository) UpdateOfferStatus(ctx context.Context, id uuid.UUID, status entity.OfferStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update offer status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}
