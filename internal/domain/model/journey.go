package model

import (
	"errors"
	"math"
	"time"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/event"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// JourneyRecord aggregate root
// ---------------------------------------------------------------------------

// MilestoneState is the stored state of a single journey step.
type MilestoneState struct {
	Status      valueobject.MilestoneStatus
	Payload     valueobject.MilestonePayload
	CompletedAt *time.Time
	UpdatedAt   time.Time
}

// JourneyRecord is an immutable aggregate tracking a buyer's progress
// through the 8 fixed journey steps. Every mutation returns a new copy.
//
// Stored statuses are authoritative only for IN_PROGRESS and COMPLETED;
// locked/available for the remaining steps is derived from the unlock rules
// at read time via EffectiveStatus.
type JourneyRecord struct {
	userID       string
	milestones   map[valueobject.MilestoneID]MilestoneState
	version      int
	createdAt    time.Time
	updatedAt    time.Time
	domainEvents []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewJourneyRecord creates a fresh record with no steps completed.
func NewJourneyRecord(userID string, now time.Time) (JourneyRecord, error) {
	if userID == "" {
		return JourneyRecord{}, errors.New("user ID is required")
	}

	milestones := make(map[valueobject.MilestoneID]MilestoneState, valueobject.MilestoneCount)
	for _, id := range valueobject.AllMilestones() {
		status := valueobject.MilestoneStatusLocked
		if id.AlwaysAvailable() {
			status = valueobject.MilestoneStatusAvailable
		}
		milestones[id] = MilestoneState{Status: status, UpdatedAt: now}
	}

	rec := JourneyRecord{
		userID:     userID,
		milestones: milestones,
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}
	rec.domainEvents = append(rec.domainEvents, event.NewJourneySeeded(userID, 0))
	return rec, nil
}

// NewJourneyRecordFromQuiz creates a record seeded by a questionnaire
// submission: the incentives milestone starts out completed with the
// calculation summary attached.
func NewJourneyRecordFromQuiz(userID string, payload valueobject.QuizResultPayload, now time.Time) (JourneyRecord, error) {
	rec, err := NewJourneyRecord(userID, now)
	if err != nil {
		return JourneyRecord{}, err
	}
	rec, _, err = rec.CompleteMilestone(valueobject.MilestoneIncentives, payload, now)
	if err != nil {
		return JourneyRecord{}, err
	}
	return rec, nil
}

// ReconstructJourneyRecord rebuilds an aggregate from persistence without side-effects.
func ReconstructJourneyRecord(
	userID string,
	milestones map[valueobject.MilestoneID]MilestoneState,
	version int,
	createdAt, updatedAt time.Time,
) JourneyRecord {
	return JourneyRecord{
		userID:     userID,
		milestones: milestones,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// CompleteMilestone marks a step COMPLETED. Completion is idempotent: a
// second completion keeps the original completion time, though a non-nil
// payload still replaces the stored one. The changed result reports whether
// the step was newly completed.
func (r JourneyRecord) CompleteMilestone(
	id valueobject.MilestoneID,
	payload valueobject.MilestonePayload,
	now time.Time,
) (JourneyRecord, bool, error) {
	state, ok := r.milestones[id]
	if !ok {
		return r, false, valueobject.ErrNotFound
	}

	next := r
	next.milestones = copyMilestones(r.milestones)
	next.domainEvents = copyEvents(r.domainEvents)

	if state.Status.IsCompleted() {
		if payload != nil {
			state.Payload = payload
			state.UpdatedAt = now
			next.milestones[id] = state
			next.updatedAt = now
		}
		return next, false, nil
	}

	completedAt := now
	state.Status = valueobject.MilestoneStatusCompleted
	state.CompletedAt = &completedAt
	state.UpdatedAt = now
	if payload != nil {
		state.Payload = payload
	}
	next.milestones[id] = state
	next.updatedAt = now
	next.domainEvents = append(next.domainEvents, event.NewMilestoneCompleted(
		r.userID, id.Int(), id.Slug(), next.OverallProgress(),
	))
	return next, true, nil
}

// StartMilestone marks a step IN_PROGRESS. Locked steps cannot be started;
// completed steps never regress.
func (r JourneyRecord) StartMilestone(
	id valueobject.MilestoneID,
	payload valueobject.MilestonePayload,
	now time.Time,
) (JourneyRecord, error) {
	state, ok := r.milestones[id]
	if !ok {
		return r, valueobject.ErrNotFound
	}
	if state.Status.IsCompleted() {
		return r, valueobject.ErrInvalidStatusTransition
	}
	if r.EffectiveStatus(id).Equal(valueobject.MilestoneStatusLocked) {
		return r, valueobject.ErrMilestoneLocked
	}

	next := r
	next.milestones = copyMilestones(r.milestones)
	state.Status = valueobject.MilestoneStatusInProgress
	state.UpdatedAt = now
	if payload != nil {
		state.Payload = payload
	}
	next.milestones[id] = state
	next.updatedAt = now
	next.domainEvents = copyEvents(r.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewMilestoneStarted(
		r.userID, id.Int(), id.Slug(),
	))
	return next, nil
}

// ---------------------------------------------------------------------------
// Derived state
// ---------------------------------------------------------------------------

// EffectiveStatus resolves the status shown for a step. Explicit IN_PROGRESS
// and COMPLETED states win; everything else follows the unlock rules:
// always-available steps show AVAILABLE, the remaining steps unlock when
// their predecessor is completed.
func (r JourneyRecord) EffectiveStatus(id valueobject.MilestoneID) valueobject.MilestoneStatus {
	state, ok := r.milestones[id]
	if !ok {
		return valueobject.MilestoneStatusLocked
	}
	if state.Status.IsSticky() {
		return state.Status
	}
	if id.AlwaysAvailable() {
		return valueobject.MilestoneStatusAvailable
	}
	if prev, ok := r.milestones[id-1]; ok && prev.Status.IsCompleted() {
		return valueobject.MilestoneStatusAvailable
	}
	return valueobject.MilestoneStatusLocked
}

// CompletedCount returns the number of completed steps.
func (r JourneyRecord) CompletedCount() int {
	count := 0
	for _, state := range r.milestones {
		if state.Status.IsCompleted() {
			count++
		}
	}
	return count
}

// OverallProgress returns the completion percentage, rounded half away from
// zero (3 of 8 completed reads as 38).
func (r JourneyRecord) OverallProgress() int {
	return int(math.Round(float64(r.CompletedCount()) * 100 / valueobject.MilestoneCount))
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (r JourneyRecord) UserID() string    { return r.userID }
func (r JourneyRecord) Version() int      { return r.version }
func (r JourneyRecord) CreatedAt() time.Time { return r.createdAt }
func (r JourneyRecord) UpdatedAt() time.Time { return r.updatedAt }

// Milestone returns the stored state of one step.
func (r JourneyRecord) Milestone(id valueobject.MilestoneID) (MilestoneState, bool) {
	state, ok := r.milestones[id]
	return state, ok
}

// MilestoneStates returns a copy of all stored step states.
func (r JourneyRecord) MilestoneStates() map[valueobject.MilestoneID]MilestoneState {
	return copyMilestones(r.milestones)
}

func (r JourneyRecord) DomainEvents() []event.DomainEvent { return r.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (r JourneyRecord) ClearEvents() JourneyRecord {
	next := r
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}

func copyMilestones(src map[valueobject.MilestoneID]MilestoneState) map[valueobject.MilestoneID]MilestoneState {
	dst := make(map[valueobject.MilestoneID]MilestoneState, len(src))
	for id, state := range src {
		dst[id] = state
	}
	return dst
}
