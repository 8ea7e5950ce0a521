package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// OfferStatus is the closed set of commercial-offer states. Raw status values
// from the data source are free text; they are mapped onto this enum at the
// persistence boundary via NormalizeOfferStatus.
type OfferStatus string

const (
	OfferStatusPending   OfferStatus = "pending"
	OfferStatusAccepted  OfferStatus = "accepted"
	OfferStatusRejected  OfferStatus = "rejected"
	OfferStatusExpired   OfferStatus = "expired"
	OfferStatusCancelled OfferStatus = "cancelled"
	OfferStatusCompleted OfferStatus = "completed"
)

// NormalizeOfferStatus maps a raw status value onto the canonical enum,
// case-insensitively. Unrecognized input, including the empty string,
// normalizes to pending — an intentional policy, not an oversight: the
// source system emits loosely-typed strings and a new offer with a garbled
// status must still show up in the merchant's pending queue.
func NormalizeOfferStatus(raw string) OfferStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return OfferStatusPending
	case "accepted", "approved":
		return OfferStatusAccepted
	case "rejected", "declined":
		return OfferStatusRejected
	case "expired":
		return OfferStatusExpired
	case "cancelled", "canceled":
		return OfferStatusCancelled
	case "completed", "done", "closed":
		return OfferStatusCompleted
	default:
		return OfferStatusPending
	}
}

// Rank orders statuses for the smart offer sort:
// pending < accepted < rejected < expired < cancelled < completed.
func (s OfferStatus) Rank() int {
	switch s {
	case OfferStatusPending:
		return 0
	case OfferStatusAccepted:
		return 1
	case OfferStatusRejected:
		return 2
	case OfferStatusExpired:
		return 3
	case OfferStatusCancelled:
		return 4
	case OfferStatusCompleted:
		return 5
	default:
		return 6
	}
}

// OfferRecord is a commercial proposal a merchant sent to a convoy's captain.
type OfferRecord struct {
	ID         uuid.UUID   `json:"id"`
	ConvoyID   string      `json:"convoy_id"`
	BusinessID uuid.UUID   `json:"business_id"`
	CaptainID  string      `json:"captain_id"`
	Title      string      `json:"title"`
	Details    string      `json:"details"`
	CouponID   *string     `json:"coupon_id,omitempty"`
	Status     OfferStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`

	// Denormalized display fields from the offer source.
	ConvoyName  string `json:"convoy_name"`
	CaptainName string `json:"captain_name"`
}
