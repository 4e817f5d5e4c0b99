package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/model"
)

func TestNewAppointment(t *testing.T) {
	now := time.Now().UTC()
	scheduled := now.Add(48 * time.Hour)

	a, err := model.NewAppointment("user-1", "456 Oak Ave", scheduled, "bring ID", now)

	require.NoError(t, err)
	assert.NotEmpty(t, a.ID())
	assert.Equal(t, "user-1", a.UserID())
	assert.Equal(t, scheduled, a.ScheduledAt())
	require.Len(t, a.DomainEvents(), 1)
	assert.Equal(t, "journey.appointment.booked", a.DomainEvents()[0].EventType())
	assert.Equal(t, a.ID(), a.DomainEvents()[0].AggregateID())
}

func TestNewAppointment_Invalid(t *testing.T) {
	now := time.Now().UTC()

	t.Run("missing user", func(t *testing.T) {
		_, err := model.NewAppointment("", "456 Oak Ave", now.Add(time.Hour), "", now)
		require.Error(t, err)
	})

	t.Run("missing address", func(t *testing.T) {
		_, err := model.NewAppointment("user-1", "", now.Add(time.Hour), "", now)
		require.Error(t, err)
	})

	t.Run("scheduled in the past", func(t *testing.T) {
		_, err := model.NewAppointment("user-1", "456 Oak Ave", now.Add(-time.Hour), "", now)
		require.Error(t, err)
	})
}

func TestAppointment_MilestonePayload(t *testing.T) {
	now := time.Now().UTC()
	scheduled := now.Add(24 * time.Hour)

	a, err := model.NewAppointment("user-1", "456 Oak Ave", scheduled, "", now)
	require.NoError(t, err)

	payload := a.MilestonePayload()
	assert.Equal(t, a.ID(), payload.AppointmentID)
	assert.Equal(t, "456 Oak Ave", payload.PropertyAddress)
	assert.Equal(t, scheduled, payload.ScheduledAt)
}
