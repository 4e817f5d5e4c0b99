package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// MilestoneStatus – immutable value object
// ---------------------------------------------------------------------------

// MilestoneStatus represents the state of a single journey milestone.
//
// Valid forward path:
//
//	LOCKED ──► AVAILABLE ──► IN_PROGRESS ──► COMPLETED
//
// COMPLETED is terminal: a completed milestone never regresses.
type MilestoneStatus struct {
	value string
}

const (
	milestoneStatusLocked     = "LOCKED"
	milestoneStatusAvailable  = "AVAILABLE"
	milestoneStatusInProgress = "IN_PROGRESS"
	milestoneStatusCompleted  = "COMPLETED"
)

var (
	MilestoneStatusLocked     = MilestoneStatus{value: milestoneStatusLocked}
	MilestoneStatusAvailable  = MilestoneStatus{value: milestoneStatusAvailable}
	MilestoneStatusInProgress = MilestoneStatus{value: milestoneStatusInProgress}
	MilestoneStatusCompleted  = MilestoneStatus{value: milestoneStatusCompleted}
)

var validMilestoneStatuses = map[string]MilestoneStatus{
	milestoneStatusLocked:     MilestoneStatusLocked,
	milestoneStatusAvailable:  MilestoneStatusAvailable,
	milestoneStatusInProgress: MilestoneStatusInProgress,
	milestoneStatusCompleted:  MilestoneStatusCompleted,
}

// NewMilestoneStatus creates a MilestoneStatus from a raw string.
func NewMilestoneStatus(s string) (MilestoneStatus, error) {
	v, ok := validMilestoneStatuses[s]
	if !ok {
		return MilestoneStatus{}, fmt.Errorf("invalid milestone status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s MilestoneStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s MilestoneStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s MilestoneStatus) Equal(other MilestoneStatus) bool { return s.value == other.value }

// IsCompleted returns true for the terminal COMPLETED state.
func (s MilestoneStatus) IsCompleted() bool { return s.value == milestoneStatusCompleted }

// IsSticky reports whether a stored status overrides the structural unlock
// rules: IN_PROGRESS and COMPLETED are returned as-is on reads.
func (s MilestoneStatus) IsSticky() bool {
	return s.value == milestoneStatusInProgress || s.value == milestoneStatusCompleted
}

// ---------------------------------------------------------------------------
// OfferStatus – immutable value object
// ---------------------------------------------------------------------------

// OfferStatus represents the lifecycle stage of a purchase offer.
type OfferStatus struct {
	value string
}

const (
	offerStatusDraft     = "DRAFT"
	offerStatusSubmitted = "SUBMITTED"
	offerStatusAccepted  = "ACCEPTED"
	offerStatusRejected  = "REJECTED"
	offerStatusWithdrawn = "WITHDRAWN"
)

var (
	OfferStatusDraft     = OfferStatus{value: offerStatusDraft}
	OfferStatusSubmitted = OfferStatus{value: offerStatusSubmitted}
	OfferStatusAccepted  = OfferStatus{value: offerStatusAccepted}
	OfferStatusRejected  = OfferStatus{value: offerStatusRejected}
	OfferStatusWithdrawn = OfferStatus{value: offerStatusWithdrawn}
)

var validOfferStatuses = map[string]OfferStatus{
	offerStatusDraft:     OfferStatusDraft,
	offerStatusSubmitted: OfferStatusSubmitted,
	offerStatusAccepted:  OfferStatusAccepted,
	offerStatusRejected:  OfferStatusRejected,
	offerStatusWithdrawn: OfferStatusWithdrawn,
}

// NewOfferStatus creates an OfferStatus from a raw string.
func NewOfferStatus(s string) (OfferStatus, error) {
	v, ok := validOfferStatuses[s]
	if !ok {
		return OfferStatus{}, fmt.Errorf("invalid offer status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s OfferStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s OfferStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s OfferStatus) Equal(other OfferStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrMilestoneLocked         = errors.New("milestone is locked")
	ErrNotFound                = errors.New("record not found")
	ErrJourneyExists           = errors.New("journey record already exists")
)
