package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/effendiaiwebsite/housesinbc/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Quiz / journey events
// ---------------------------------------------------------------------------

// QuizSubmitted is raised when a questionnaire is calculated and stored.
type QuizSubmitted struct {
	events.BaseEvent
	Income          decimal.Decimal `json:"income"`
	Savings         decimal.Decimal `json:"savings"`
	AffordablePrice decimal.Decimal `json:"affordable_price"`
	TotalIncentives decimal.Decimal `json:"total_incentives"`
	Resubmission    bool            `json:"resubmission"`
}

func NewQuizSubmitted(userID string, income, savings, affordablePrice, totalIncentives decimal.Decimal, resubmission bool) QuizSubmitted {
	return QuizSubmitted{
		BaseEvent:       events.NewBaseEvent("journey.quiz.submitted", userID, "QuizResult", userID),
		Income:          income,
		Savings:         savings,
		AffordablePrice: affordablePrice,
		TotalIncentives: totalIncentives,
		Resubmission:    resubmission,
	}
}

// JourneySeeded is raised when a buyer's journey record is first created.
type JourneySeeded struct {
	events.BaseEvent
	OverallProgress int `json:"overall_progress"`
}

func NewJourneySeeded(userID string, overallProgress int) JourneySeeded {
	return JourneySeeded{
		BaseEvent:       events.NewBaseEvent("journey.seeded", userID, "JourneyRecord", userID),
		OverallProgress: overallProgress,
	}
}

// MilestoneStarted is raised when a milestone moves to IN_PROGRESS.
type MilestoneStarted struct {
	events.BaseEvent
	MilestoneID   int    `json:"milestone_id"`
	MilestoneSlug string `json:"milestone_slug"`
}

func NewMilestoneStarted(userID string, milestoneID int, slug string) MilestoneStarted {
	return MilestoneStarted{
		BaseEvent:     events.NewBaseEvent("journey.milestone.started", userID, "JourneyRecord", userID),
		MilestoneID:   milestoneID,
		MilestoneSlug: slug,
	}
}

// MilestoneCompleted is raised when a milestone reaches COMPLETED.
type MilestoneCompleted struct {
	events.BaseEvent
	MilestoneID     int    `json:"milestone_id"`
	MilestoneSlug   string `json:"milestone_slug"`
	OverallProgress int    `json:"overall_progress"`
}

func NewMilestoneCompleted(userID string, milestoneID int, slug string, overallProgress int) MilestoneCompleted {
	return MilestoneCompleted{
		BaseEvent:       events.NewBaseEvent("journey.milestone.completed", userID, "JourneyRecord", userID),
		MilestoneID:     milestoneID,
		MilestoneSlug:   slug,
		OverallProgress: overallProgress,
	}
}

// ---------------------------------------------------------------------------
// Appointment events
// ---------------------------------------------------------------------------

// AppointmentBooked is raised when a viewing appointment is created.
type AppointmentBooked struct {
	events.BaseEvent
	PropertyAddress string    `json:"property_address"`
	ScheduledAt     time.Time `json:"scheduled_at"`
}

func NewAppointmentBooked(appointmentID, userID, propertyAddress string, scheduledAt time.Time) AppointmentBooked {
	return AppointmentBooked{
		BaseEvent:       events.NewBaseEvent("journey.appointment.booked", appointmentID, "Appointment", userID),
		PropertyAddress: propertyAddress,
		ScheduledAt:     scheduledAt,
	}
}

// ---------------------------------------------------------------------------
// Offer events
// ---------------------------------------------------------------------------

// OfferDrafted is raised when a purchase offer draft is created.
type OfferDrafted struct {
	events.BaseEvent
	PropertyAddress string          `json:"property_address"`
	Amount          decimal.Decimal `json:"amount"`
}

func NewOfferDrafted(offerID, userID, propertyAddress string, amount decimal.Decimal) OfferDrafted {
	return OfferDrafted{
		BaseEvent:       events.NewBaseEvent("journey.offer.drafted", offerID, "Offer", userID),
		PropertyAddress: propertyAddress,
		Amount:          amount,
	}
}

// OfferSubmitted is raised on the DRAFT -> SUBMITTED transition.
type OfferSubmitted struct {
	events.BaseEvent
	PropertyAddress string          `json:"property_address"`
	Amount          decimal.Decimal `json:"amount"`
}

func NewOfferSubmitted(offerID, userID, propertyAddress string, amount decimal.Decimal) OfferSubmitted {
	return OfferSubmitted{
		BaseEvent:       events.NewBaseEvent("journey.offer.submitted", offerID, "Offer", userID),
		PropertyAddress: propertyAddress,
		Amount:          amount,
	}
}
