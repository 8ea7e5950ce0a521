// Package model contains the GORM row models and their domain converters.
package model

import (
	"time"

	"convoytrack/internal/domain/entity"
)

// ConvoyModel is the convoys table. The live leader-position columns are
// nullable: a missing position is NULL, never (0, 0).
type ConvoyModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name;not null"`
	Description   string    `gorm:"column:description"`
	Category      string    `gorm:"column:category;index"`
	Status        string    `gorm:"column:status;not null;index"`
	StartLocation string    `gorm:"column:start_location"`
	EndLocation   string    `gorm:"column:end_location"`
	StartTime     time.Time `gorm:"column:start_time;index"`
	LeaderID      string    `gorm:"column:leader_id;not null"`
	LeaderName    string    `gorm:"column:leader_name"`

	DeclaredCapacity        int `gorm:"column:declared_capacity"`
	DeclaredLeaderPartySize int `gorm:"column:declared_leader_party_size"`

	LeaderLat        *float64   `gorm:"column:leader_lat"`
	LeaderLng        *float64   `gorm:"column:leader_lng"`
	LeaderReportedAt *time.Time `gorm:"column:leader_reported_at"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default table name.
func (ConvoyModel) TableName() string {
	return "convoys"
}

// ToConvoyDomain converts the row to a domain snapshot. The raw leader
// position is only set when both coordinates are present.
func ToConvoyDomain(m *ConvoyModel) *entity.ConvoySnapshot {
	convoy := &entity.ConvoySnapshot{
		ID:                      m.ID,
		Name:                    m.Name,
		Description:             m.Description,
		Category:                m.Category,
		Status:                  entity.ConvoyStatus(m.Status),
		StartLocation:           m.StartLocation,
		EndLocation:             m.EndLocation,
		StartTime:               m.StartTime,
		LeaderID:                m.LeaderID,
		LeaderName:              m.LeaderName,
		DeclaredCapacity:        m.DeclaredCapacity,
		DeclaredLeaderPartySize: m.DeclaredLeaderPartySize,
		CreatedAt:               m.CreatedAt,
	}

	if m.LeaderLat != nil && m.LeaderLng != nil {
		convoy.RawLeaderPosition = &entity.ReconciledPosition{
			Position:   entity.Coordinate{Lat: *m.LeaderLat, Lng: *m.LeaderLng},
			ObservedAt: m.LeaderReportedAt,
		}
	}

	return convoy
}
