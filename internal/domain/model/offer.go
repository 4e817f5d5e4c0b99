package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/event"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Offer aggregate root
// ---------------------------------------------------------------------------

// Offer is a purchase offer on a property. It is an immutable aggregate:
// every mutation returns a new copy.
//
// Lifecycle: DRAFT -> SUBMITTED -> (ACCEPTED | REJECTED | WITHDRAWN).
type Offer struct {
	id              string
	userID          string
	propertyAddress string
	amount          decimal.Decimal
	status          valueobject.OfferStatus
	version         int
	createdAt       time.Time
	updatedAt       time.Time
	domainEvents    []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewOffer creates a draft offer.
func NewOffer(userID, propertyAddress string, amount decimal.Decimal, now time.Time) (Offer, error) {
	if userID == "" {
		return Offer{}, errors.New("user ID is required")
	}
	if propertyAddress == "" {
		return Offer{}, errors.New("property address is required")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return Offer{}, errors.New("offer amount must be positive")
	}

	id := uuid.New().String()
	o := Offer{
		id:              id,
		userID:          userID,
		propertyAddress: propertyAddress,
		amount:          amount,
		status:          valueobject.OfferStatusDraft,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}
	o.domainEvents = append(o.domainEvents, event.NewOfferDrafted(
		id, userID, propertyAddress, amount,
	))
	return o, nil
}

// ReconstructOffer rebuilds an aggregate from persistence without side-effects.
func ReconstructOffer(
	id, userID, propertyAddress string,
	amount decimal.Decimal,
	status valueobject.OfferStatus,
	version int,
	createdAt, updatedAt time.Time,
) Offer {
	return Offer{
		id:              id,
		userID:          userID,
		propertyAddress: propertyAddress,
		amount:          amount,
		status:          status,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// Submit transitions DRAFT -> SUBMITTED and emits OfferSubmitted.
func (o Offer) Submit(now time.Time) (Offer, error) {
	if !o.status.Equal(valueobject.OfferStatusDraft) {
		return o, valueobject.ErrInvalidStatusTransition
	}
	next := o
	next.status = valueobject.OfferStatusSubmitted
	next.updatedAt = now
	next.domainEvents = copyEvents(o.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewOfferSubmitted(
		o.id, o.userID, o.propertyAddress, o.amount,
	))
	return next, nil
}

// MarkAccepted transitions SUBMITTED -> ACCEPTED.
func (o Offer) MarkAccepted(now time.Time) (Offer, error) {
	return o.resolve(valueobject.OfferStatusAccepted, now)
}

// MarkRejected transitions SUBMITTED -> REJECTED.
func (o Offer) MarkRejected(now time.Time) (Offer, error) {
	return o.resolve(valueobject.OfferStatusRejected, now)
}

// Withdraw transitions SUBMITTED -> WITHDRAWN.
func (o Offer) Withdraw(now time.Time) (Offer, error) {
	return o.resolve(valueobject.OfferStatusWithdrawn, now)
}

func (o Offer) resolve(target valueobject.OfferStatus, now time.Time) (Offer, error) {
	if !o.status.Equal(valueobject.OfferStatusSubmitted) {
		return o, valueobject.ErrInvalidStatusTransition
	}
	next := o
	next.status = target
	next.updatedAt = now
	next.domainEvents = copyEvents(o.domainEvents)
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (o Offer) ID() string                      { return o.id }
func (o Offer) UserID() string                  { return o.userID }
func (o Offer) PropertyAddress() string         { return o.propertyAddress }
func (o Offer) Amount() decimal.Decimal         { return o.amount }
func (o Offer) Status() valueobject.OfferStatus { return o.status }
func (o Offer) Version() int                    { return o.version }
func (o Offer) CreatedAt() time.Time            { return o.createdAt }
func (o Offer) UpdatedAt() time.Time            { return o.updatedAt }

func (o Offer) DomainEvents() []event.DomainEvent { return o.domainEvents }

// MilestonePayload returns the reference attached to the offer milestone.
func (o Offer) MilestonePayload() valueobject.OfferPayload {
	return valueobject.OfferPayload{
		OfferID:         o.id,
		PropertyAddress: o.propertyAddress,
		Amount:          o.amount,
	}
}

// ClearEvents returns a copy with an empty event list (call after publishing).
func (o Offer) ClearEvents() Offer {
	next := o
	next.domainEvents = nil
	return next
}
