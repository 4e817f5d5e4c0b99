package port

import (
	"context"
	"time"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/event"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/model"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// QuizResultRepository persists and retrieves questionnaire snapshots.
type QuizResultRepository interface {
	Save(ctx context.Context, q model.QuizResult) error
	FindByUserID(ctx context.Context, userID string) (model.QuizResult, error)
}

// JourneyRepository persists and retrieves journey records.
//
// Milestone writes are single-milestone operations: the adapter must apply
// them atomically with an idempotency guard on COMPLETED rows and recompute
// the stored overall progress in the same transaction, so concurrent writers
// never overwrite each other's milestones.
type JourneyRepository interface {
	// Create inserts a new record with all of its milestone rows.
	// Returns valueobject.ErrJourneyExists when the user already has one.
	Create(ctx context.Context, rec model.JourneyRecord) error

	// FindByUserID returns valueobject.ErrNotFound when no record exists.
	FindByUserID(ctx context.Context, userID string) (model.JourneyRecord, error)

	// CompleteMilestone marks one milestone COMPLETED. Already-completed
	// rows keep their completion time; a non-nil payload still replaces
	// the stored one. Returns the recomputed overall progress and whether
	// the milestone was newly completed.
	CompleteMilestone(ctx context.Context, userID string, id valueobject.MilestoneID, payload valueobject.MilestonePayload, now time.Time) (int, bool, error)

	// StartMilestone marks one milestone IN_PROGRESS unless it is already
	// COMPLETED. Returns the recomputed overall progress.
	StartMilestone(ctx context.Context, userID string, id valueobject.MilestoneID, payload valueobject.MilestonePayload, now time.Time) (int, error)
}

// AppointmentRepository persists viewing appointments.
type AppointmentRepository interface {
	Save(ctx context.Context, a model.Appointment) error
	FindByID(ctx context.Context, id string) (model.Appointment, error)
	FindByUserID(ctx context.Context, userID string) ([]model.Appointment, error)
}

// OfferRepository persists purchase offers.
type OfferRepository interface {
	Save(ctx context.Context, o model.Offer) error
	FindByID(ctx context.Context, id string) (model.Offer, error)
	FindByUserID(ctx context.Context, userID string) ([]model.Offer, error)
}

// ---------------------------------------------------------------------------
// Rate source port
// ---------------------------------------------------------------------------

// LenderRate is one advertised mortgage product.
type LenderRate struct {
	ID                string
	Lender            string
	RateType          string
	TermYears         int
	AdvertisedRateBps int
	UpdatedAt         time.Time
}

// LenderRateSource supplies the current advertised lender rates.
type LenderRateSource interface {
	CurrentRates(ctx context.Context) ([]LenderRate, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
