package entity

import "time"

// MemberRole distinguishes the tracked leader from ordinary convoy members.
type MemberRole string

const (
	MemberRoleLeader MemberRole = "leader"
	MemberRoleMember MemberRole = "member"
)

// MemberStatus is the membership state of a roster row. The confirmed-
// equivalent statuses count toward a convoy's confirmed headcount.
type MemberStatus string

const (
	MemberStatusActive          MemberStatus = "active"
	MemberStatusAcceptedWaiting MemberStatus = "accepted_waiting_confirmation"
	MemberStatusPending         MemberStatus = "pending"
)

// CountsAsConfirmed reports whether the status is confirmed-equivalent.
func (s MemberStatus) CountsAsConfirmed() bool {
	return s == MemberStatusActive || s == MemberStatusAcceptedWaiting
}

// MemberPositionReport is one row of the per-member live-position feed. Only
// rows whose role is leader, or whose user matches the convoy's declared
// leader, are eligible to update a convoy's reconciled position. ReportedAt
// is nil when the source row carried no timestamp.
type MemberPositionReport struct {
	ConvoyID   string      `json:"convoy_id"`
	UserID     string      `json:"user_id"`
	Role       MemberRole  `json:"role"`
	Position   *Coordinate `json:"position,omitempty"`
	ReportedAt *time.Time  `json:"reported_at,omitempty"`
}

// RosterEntry is one row of a convoy's membership table, used by the
// headcount fallback path.
type RosterEntry struct {
	ConvoyID  string       `json:"convoy_id"`
	UserID    string       `json:"user_id"`
	Role      MemberRole   `json:"role"`
	Status    MemberStatus `json:"status"`
	PartySize int          `json:"party_size"`
}
