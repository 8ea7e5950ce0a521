package model

import (
	"time"

	"convoytrack/internal/domain/entity"
)

// ConvoyMemberModel is the convoy_members roster table. Position columns
// are nullable; party_size below one is normalized by the headcount
// fallback, not here.
type ConvoyMemberModel struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	ConvoyID  string `gorm:"column:convoy_id;not null;index"`
	UserID    string `gorm:"column:user_id;not null"`
	Role      string `gorm:"column:role;not null"`
	Status    string `gorm:"column:status;not null"`
	PartySize int    `gorm:"column:party_size;not null"`

	Lat        *float64   `gorm:"column:lat"`
	Lng        *float64   `gorm:"column:lng"`
	ReportedAt *time.Time `gorm:"column:reported_at"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default table name.
func (ConvoyMemberModel) TableName() string {
	return "convoy_members"
}

// ToPositionReportDomain converts a roster row to a live-position report.
func ToPositionReportDomain(m *ConvoyMemberModel) *entity.MemberPositionReport {
	report := &entity.MemberPositionReport{
		ConvoyID:   m.ConvoyID,
		UserID:     m.UserID,
		Role:       entity.MemberRole(m.Role),
		ReportedAt: m.ReportedAt,
	}

	if m.Lat != nil && m.Lng != nil {
		report.Position = &entity.Coordinate{Lat: *m.Lat, Lng: *m.Lng}
	}

	return report
}

// ToRosterEntryDomain converts a roster row to a membership entry.
func ToRosterEntryDomain(m *ConvoyMemberModel) *entity.RosterEntry {
	return &entity.RosterEntry{
		ConvoyID:  m.ConvoyID,
		UserID:    m.UserID,
		Role:      entity.MemberRole(m.Role),
		Status:    entity.MemberStatus(m.Status),
		PartySize: m.PartySize,
	}
}
