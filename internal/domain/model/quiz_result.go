package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/event"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/service"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// QuizResult aggregate root
// ---------------------------------------------------------------------------

// QuizResult is an immutable aggregate holding a buyer's questionnaire
// answers together with the calculation snapshot derived from them.
// Every mutation returns a new copy.
type QuizResult struct {
	userID               string
	income               decimal.Decimal
	savings              decimal.Decimal
	hasRetirementSavings bool
	propertyType         valueobject.PropertyType
	timeline             valueobject.Timeline
	breakdown            service.Breakdown
	incentives           service.IncentiveBreakdown
	createdAt            time.Time
	updatedAt            time.Time
	domainEvents         []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewQuizResult creates a first-time questionnaire snapshot.
func NewQuizResult(
	userID string,
	income, savings decimal.Decimal,
	hasRetirementSavings bool,
	propertyType valueobject.PropertyType,
	timeline valueobject.Timeline,
	breakdown service.Breakdown,
	incentives service.IncentiveBreakdown,
	now time.Time,
) (QuizResult, error) {
	if userID == "" {
		return QuizResult{}, errors.New("user ID is required")
	}
	if income.LessThanOrEqual(decimal.Zero) {
		return QuizResult{}, errors.New("income must be positive")
	}
	if savings.IsNegative() {
		return QuizResult{}, errors.New("savings must not be negative")
	}
	if propertyType.IsZero() {
		return QuizResult{}, errors.New("property type is required")
	}
	if timeline.IsZero() {
		return QuizResult{}, errors.New("timeline is required")
	}

	q := QuizResult{
		userID:               userID,
		income:               income,
		savings:              savings,
		hasRetirementSavings: hasRetirementSavings,
		propertyType:         propertyType,
		timeline:             timeline,
		breakdown:            breakdown,
		incentives:           incentives,
		createdAt:            now,
		updatedAt:            now,
	}
	q.domainEvents = append(q.domainEvents, event.NewQuizSubmitted(
		userID, income, savings, breakdown.AffordablePrice, incentives.Total, false,
	))
	return q, nil
}

// ReconstructQuizResult rebuilds an aggregate from persistence without side-effects.
func ReconstructQuizResult(
	userID string,
	income, savings decimal.Decimal,
	hasRetirementSavings bool,
	propertyType valueobject.PropertyType,
	timeline valueobject.Timeline,
	breakdown service.Breakdown,
	incentives service.IncentiveBreakdown,
	createdAt, updatedAt time.Time,
) QuizResult {
	return QuizResult{
		userID:               userID,
		income:               income,
		savings:              savings,
		hasRetirementSavings: hasRetirementSavings,
		propertyType:         propertyType,
		timeline:             timeline,
		breakdown:            breakdown,
		incentives:           incentives,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// Resubmit replaces the answers and recalculated snapshot of an existing
// result. The original creation time is preserved.
func (q QuizResult) Resubmit(
	income, savings decimal.Decimal,
	hasRetirementSavings bool,
	propertyType valueobject.PropertyType,
	timeline valueobject.Timeline,
	breakdown service.Breakdown,
	incentives service.IncentiveBreakdown,
	now time.Time,
) (QuizResult, error) {
	if income.LessThanOrEqual(decimal.Zero) {
		return q, errors.New("income must be positive")
	}
	if savings.IsNegative() {
		return q, errors.New("savings must not be negative")
	}

	next := q
	next.income = income
	next.savings = savings
	next.hasRetirementSavings = hasRetirementSavings
	next.propertyType = propertyType
	next.timeline = timeline
	next.breakdown = breakdown
	next.incentives = incentives
	next.updatedAt = now
	next.domainEvents = copyEvents(q.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewQuizSubmitted(
		q.userID, income, savings, breakdown.AffordablePrice, incentives.Total, true,
	))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (q QuizResult) UserID() string                          { return q.userID }
func (q QuizResult) Income() decimal.Decimal                 { return q.income }
func (q QuizResult) Savings() decimal.Decimal                { return q.savings }
func (q QuizResult) HasRetirementSavings() bool              { return q.hasRetirementSavings }
func (q QuizResult) PropertyType() valueobject.PropertyType  { return q.propertyType }
func (q QuizResult) Timeline() valueobject.Timeline          { return q.timeline }
func (q QuizResult) Breakdown() service.Breakdown            { return q.breakdown }
func (q QuizResult) Incentives() service.IncentiveBreakdown  { return q.incentives }
func (q QuizResult) CreatedAt() time.Time                    { return q.createdAt }
func (q QuizResult) UpdatedAt() time.Time                    { return q.updatedAt }
func (q QuizResult) DomainEvents() []event.DomainEvent       { return q.domainEvents }

// MilestonePayload returns the summary attached to the incentives milestone.
func (q QuizResult) MilestonePayload() valueobject.QuizResultPayload {
	return valueobject.QuizResultPayload{
		AffordablePrice: q.breakdown.AffordablePrice,
		TotalIncentives: q.incentives.Total,
	}
}

// ClearEvents returns a copy with an empty event list (call after publishing).
func (q QuizResult) ClearEvents() QuizResult {
	next := q
	next.domainEvents = nil
	return next
}
