package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"convoytrack/config"
	"convoytrack/internal/domain/entity"
	"convoytrack/internal/domain/repository"
	"convoytrack/internal/errors"
	"convoytrack/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrOfferNotFound is returned when an offer is not found
	ErrOfferNotFound = errors.New("offer not found")
)

// Archive policy defaults: small offer lists are never archived, larger ones
// move offers out of the default view once they are this old. Archival is
// derived on every read — nothing is deleted and nothing is stored.
const (
	defaultArchiveMinOffers = 20
	defaultArchiveAge       = 120 * time.Hour
)

type archivePolicy struct {
	minOffers int
	age       time.Duration
}

type offerService struct {
	offerRepo repository.OfferRepository
	policy    archivePolicy
	logger    *slog.Logger
}

// NewOfferService creates a new offer service instance
func NewOfferService(offerRepo repository.OfferRepository, cfg *config.Config, logger *slog.Logger) usecase.OfferUsecase {
	policy := archivePolicy{
		minOffers: defaultArchiveMinOffers,
		age:       defaultArchiveAge,
	}
	if cfg != nil && cfg.Offers != nil {
		if cfg.Offers.ArchiveMinOffers > 0 {
			policy.minOffers = cfg.Offers.ArchiveMinOffers
		}
		if cfg.Offers.ArchiveAge > 0 {
			policy.age = cfg.Offers.ArchiveAge
		}
	}

	return &offerService{
		offerRepo: offerRepo,
		policy:    policy,
		logger:    logger,
	}
}

// SendOffer creates a new pending offer addressed to a convoy captain.
func (s *offerService) SendOffer(ctx context.Context, businessID uuid.UUID, input *usecase.SendOfferInput) (*entity.OfferRecord, error) {
	offer := &entity.OfferRecord{
		ID:         uuid.New(),
		ConvoyID:   input.ConvoyID,
		BusinessID: businessID,
		CaptainID:  input.CaptainID,
		Title:      input.Title,
		Details:    input.Details,
		CouponID:   input.CouponID,
		Status:     entity.OfferStatusPending,
		CreatedAt:  time.Now(),
	}

	if err := s.offerRepo.CreateOffer(ctx, offer); err != nil {
		return nil, errors.Wrap(err, "failed to create offer")
	}

	return offer, nil
}

// UpdateOfferStatus normalizes the raw status value through the total
// mapping and persists the result.
func (s *offerService) UpdateOfferStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*entity.OfferRecord, error) {
	offer, err := s.offerRepo.FindOfferByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	status := entity.NormalizeOfferStatus(rawStatus)
	if err := s.offerRepo.UpdateOfferStatus(ctx, id, status); err != nil {
		return nil, errors.Wrap(err, "failed to update offer status")
	}
	offer.Status = status

	return offer, nil
}

// ListOffers returns the filtered, ordered offer view for a business,
// recomputing the archive partition from the full list.
func (s *offerService) ListOffers(ctx context.Context, businessID uuid.UUID, filter usecase.OfferFilter, mode usecase.SortMode) (*usecase.OfferListResult, error) {
	offers, err := s.offerRepo.FindOffersByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find offers by business")
	}

	active, archived := partitionOffers(offers, time.Now(), s.policy)

	visible := active
	if filter.IncludeArchived {
		visible = append(slices.Clone(active), archived...)
	}

	out := make([]*entity.OfferRecord, 0, len(visible))
	for _, offer := range visible {
		if !matchesOffer(offer, filter) {
			continue
		}
		out = append(out, offer)
	}

	slices.SortStableFunc(out, offerComparator(mode))

	return &usecase.OfferListResult{
		Offers:        out,
		ActiveCount:   len(active),
		ArchivedCount: len(archived),
	}, nil
}

// OfferCounts returns the KPI counters for a business. The pending badge
// counts only non-archived pending offers.
func (s *offerService) OfferCounts(ctx context.Context, businessID uuid.UUID) (*usecase.OfferCounts, error) {
	offers, err := s.offerRepo.FindOffersByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find offers by business")
	}

	active, archived := partitionOffers(offers, time.Now(), s.policy)

	counts := &usecase.OfferCounts{
		Active:   len(active),
		Archived: len(archived),
		Total:    len(offers),
		ByStatus: make(map[entity.OfferStatus]int),
	}
	for _, offer := range active {
		counts.ByStatus[offer.Status]++
		if offer.Status == entity.OfferStatusPending {
			counts.Pending++
		}
	}

	return counts, nil
}

// partitionOffers splits a business's offers into the active and archived
// sets. With at most minOffers total, nothing is archived regardless of
// age; beyond that, offers at least as old as the age threshold move to the
// archive. Relative input order is preserved in both partitions.
func partitionOffers(offers []*entity.OfferRecord, now time.Time, policy archivePolicy) (active, archived []*entity.OfferRecord) {
	if len(offers) <= policy.minOffers {
		return offers, nil
	}

	for _, offer := range offers {
		if now.Sub(offer.CreatedAt) >= policy.age {
			archived = append(archived, offer)
		} else {
			active = append(active, offer)
		}
	}

	return active, archived
}

func matchesOffer(offer *entity.OfferRecord, filter usecase.OfferFilter) bool {
	if filter.Status != nil && offer.Status != *filter.Status {
		return false
	}

	if filter.Search != "" {
		needle := foldText(filter.Search)
		if !strings.Contains(foldText(offer.Title), needle) &&
			!strings.Contains(foldText(offer.ConvoyName), needle) &&
			!strings.Contains(foldText(offer.CaptainName), needle) {
			return false
		}
	}

	return true
}

// offerComparator returns the comparison function for offer lists. Smart
// ranks by status (pending first, completed last), then by recency
// descending; recent is recency alone.
func offerComparator(mode usecase.SortMode) func(a, b *entity.OfferRecord) int {
	if mode == usecase.SortRecent {
		return compareOfferRecency
	}

	return func(a, b *entity.OfferRecord) int {
		if c := a.Status.Rank() - b.Status.Rank(); c != 0 {
			return c
		}

		return compareOfferRecency(a, b)
	}
}

func compareOfferRecency(a, b *entity.OfferRecord) int {
	return b.CreatedAt.Compare(a.CreatedAt)
}
