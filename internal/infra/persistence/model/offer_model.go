package model

import (
	"time"

	"convoytrack/internal/domain/entity"

	"github.com/google/uuid"
)

// OfferModel is the offers table. Status is stored as the raw string the
// source system produced; it is normalized onto the closed enum at the
// domain boundary, so a garbled value surfaces as pending instead of
// breaking the read path.
type OfferModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ConvoyID   string    `gorm:"column:convoy_id;not null;index"`
	BusinessID uuid.UUID `gorm:"column:business_id;type:uuid;not null;index"`
	CaptainID  string    `gorm:"column:captain_id;not null"`
	Title      string    `gorm:"column:title;not null"`
	Details    string    `gorm:"column:details"`
	CouponID   *string   `gorm:"column:coupon_id"`
	Status     string    `gorm:"column:status;not null"`

	ConvoyName  string `gorm:"column:convoy_name"`
	CaptainName string `gorm:"column:captain_name"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default table name.
func (OfferModel) TableName() string {
	return "offers"
}

// ToOfferDomain converts the row to a domain record, normalizing the raw
// status.
func ToOfferDomain(m *OfferModel) *entity.OfferRecord {
	return &entity.OfferRecord{
		ID:          m.ID,
		ConvoyID:    m.ConvoyID,
		BusinessID:  m.BusinessID,
		CaptainID:   m.CaptainID,
		Title:       m.Title,
		Details:     m.Details,
		CouponID:    m.CouponID,
		Status:      entity.NormalizeOfferStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		ConvoyName:  m.ConvoyName,
		CaptainName: m.CaptainName,
	}
}

// FromOfferDomain converts a domain record to a row for persistence.
func FromOfferDomain(offer *entity.OfferRecord) *OfferModel {
	return &OfferModel{
		ID:          offer.ID,
		ConvoyID:    offer.ConvoyID,
		BusinessID:  offer.BusinessID,
		CaptainID:   offer.CaptainID,
		Title:       offer.Title,
		Details:     offer.Details,
		CouponID:    offer.CouponID,
		Status:      string(offer.Status),
		ConvoyName:  offer.ConvoyName,
		CaptainName: offer.CaptainName,
		CreatedAt:   offer.CreatedAt,
	}
}
