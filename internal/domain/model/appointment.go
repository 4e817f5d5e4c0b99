package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/event"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Appointment aggregate root
// ---------------------------------------------------------------------------

// Appointment is a viewing booking. It has no lifecycle beyond creation;
// cancellation and rescheduling live with the booking provider.
type Appointment struct {
	id              string
	userID          string
	propertyAddress string
	scheduledAt     time.Time
	notes           string
	createdAt       time.Time
	domainEvents    []event.DomainEvent
}

// NewAppointment creates a viewing appointment and emits AppointmentBooked.
func NewAppointment(userID, propertyAddress string, scheduledAt time.Time, notes string, now time.Time) (Appointment, error) {
	if userID == "" {
		return Appointment{}, errors.New("user ID is required")
	}
	if propertyAddress == "" {
		return Appointment{}, errors.New("property address is required")
	}
	if scheduledAt.Before(now) {
		return Appointment{}, errors.New("scheduled time must be in the future")
	}

	id := uuid.New().String()
	appt := Appointment{
		id:              id,
		userID:          userID,
		propertyAddress: propertyAddress,
		scheduledAt:     scheduledAt,
		notes:           notes,
		createdAt:       now,
	}
	appt.domainEvents = append(appt.domainEvents, event.NewAppointmentBooked(
		id, userID, propertyAddress, scheduledAt,
	))
	return appt, nil
}

// ReconstructAppointment rebuilds an aggregate from persistence without side-effects.
func ReconstructAppointment(id, userID, propertyAddress string, scheduledAt time.Time, notes string, createdAt time.Time) Appointment {
	return Appointment{
		id:              id,
		userID:          userID,
		propertyAddress: propertyAddress,
		scheduledAt:     scheduledAt,
		notes:           notes,
		createdAt:       createdAt,
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (a Appointment) ID() string              { return a.id }
func (a Appointment) UserID() string          { return a.userID }
func (a Appointment) PropertyAddress() string { return a.propertyAddress }
func (a Appointment) ScheduledAt() time.Time  { return a.scheduledAt }
func (a Appointment) Notes() string           { return a.notes }
func (a Appointment) CreatedAt() time.Time    { return a.createdAt }

func (a Appointment) DomainEvents() []event.DomainEvent { return a.domainEvents }

// MilestonePayload returns the reference attached to the viewing milestone.
func (a Appointment) MilestonePayload() valueobject.AppointmentPayload {
	return valueobject.AppointmentPayload{
		AppointmentID:   a.id,
		PropertyAddress: a.propertyAddress,
		ScheduledAt:     a.scheduledAt,
	}
}

// ClearEvents returns a copy with an empty event list (call after publishing).
func (a Appointment) ClearEvents() Appointment {
	next := a
	next.domainEvents = nil
	return next
}
