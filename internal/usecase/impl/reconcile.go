package impl

import (
	"time"

	"convoytrack/internal/domain/entity"
)

// reconcileLeaderPosition merges the two leader-position feeds for one
// convoy — the convoy-level raw position and the roster's live-position
// rows — into at most one best-known position for this tick.
//
// The candidate is seeded from the convoy-level feed, then every eligible
// roster report with a known position competes on timestamps: a report
// replaces the candidate when its timestamp is greater than or equal to the
// candidate's (ties favor the later-processed roster source), when the
// candidate carries no timestamp, or when there is no candidate yet. A
// timestamped candidate is never displaced by an untimestamped report.
//
// A convoy with no position in either feed yields nil, which must propagate
// as "distance unknown" — never as distance zero.
func reconcileLeaderPosition(convoy *entity.ConvoySnapshot, reports []*entity.MemberPositionReport) *entity.ReconciledPosition {
	var candidate *entity.ReconciledPosition
	if convoy.RawLeaderPosition != nil {
		seeded := *convoy.RawLeaderPosition
		candidate = &seeded
	}

	for _, report := range reports {
		if report.ConvoyID != convoy.ID {
			continue
		}
		if !eligibleLeaderReport(convoy, report) {
			continue
		}
		if report.Position == nil {
			continue
		}
		if !replacesCandidate(candidate, report.ReportedAt) {
			continue
		}

		candidate = &entity.ReconciledPosition{
			Position:   *report.Position,
			ObservedAt: report.ReportedAt,
		}
	}

	return candidate
}

// eligibleLeaderReport reports whether a roster row may update the convoy's
// leader position: either the row is tagged with the leader role, or its
// user is the convoy's declared leader.
func eligibleLeaderReport(convoy *entity.ConvoySnapshot, report *entity.MemberPositionReport) bool {
	return report.Role == entity.MemberRoleLeader || report.UserID == convoy.LeaderID
}

func replacesCandidate(candidate *entity.ReconciledPosition, reportedAt *time.Time) bool {
	if candidate == nil {
		return true
	}
	if candidate.ObservedAt == nil {
		// An untimestamped candidate loses every tie-break.
		return true
	}
	if reportedAt == nil {
		return false
	}

	return !reportedAt.Before(*candidate.ObservedAt)
}
