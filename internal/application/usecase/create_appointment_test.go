package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effendiaiwebsite/housesinbc/internal/application/dto"
	"github.com/effendiaiwebsite/housesinbc/internal/application/usecase"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/model"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validAppointmentRequest() dto.CreateAppointmentRequest {
	return dto.CreateAppointmentRequest{
		UserID:          "user-1",
		PropertyAddress: "456 Oak Ave",
		ScheduledAt:     time.Now().UTC().Add(48 * time.Hour),
		Notes:           "meet at the lobby",
	}
}

func TestCreateAppointment_Execute(t *testing.T) {
	t.Run("booking advances search and viewing milestones", func(t *testing.T) {
		apptRepo := &mockAppointmentRepository{}
		journeyRepo := &mockJourneyRepository{}
		publisher := &mockPublisher{}
		uc := usecase.NewCreateAppointmentUseCase(apptRepo, journeyRepo, publisher, discardLogger())

		resp, err := uc.Execute(context.Background(), validAppointmentRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		require.Len(t, apptRepo.saved, 1)

		require.Len(t, journeyRepo.completedCalls, 2)
		assert.Equal(t, valueobject.MilestoneSearch, journeyRepo.completedCalls[0])
		assert.Equal(t, valueobject.MilestoneViewing, journeyRepo.completedCalls[1])

		assert.Nil(t, journeyRepo.completePayload[0], "search completion carries no payload")
		viewing, ok := journeyRepo.completePayload[1].(valueobject.AppointmentPayload)
		require.True(t, ok)
		assert.Equal(t, resp.ID, viewing.AppointmentID)

		types := publisher.eventTypes()
		assert.Contains(t, types, "journey.appointment.booked")
		assert.Contains(t, types, "journey.milestone.completed")
	})

	t.Run("milestone failure does not fail the booking", func(t *testing.T) {
		journeyRepo := &mockJourneyRepository{
			completeMilestoneFunc: func(_ context.Context, _ string, _ valueobject.MilestoneID, _ valueobject.MilestonePayload, _ time.Time) (int, bool, error) {
				return 0, false, errors.New("tracker down")
			},
		}
		publisher := &mockPublisher{}
		uc := usecase.NewCreateAppointmentUseCase(&mockAppointmentRepository{}, journeyRepo, publisher, discardLogger())

		resp, err := uc.Execute(context.Background(), validAppointmentRequest())

		require.NoError(t, err, "tracker failures must stay best-effort")
		assert.NotEmpty(t, resp.ID)
		assert.Contains(t, publisher.eventTypes(), "journey.appointment.booked")
		assert.NotContains(t, publisher.eventTypes(), "journey.milestone.completed")
	})

	t.Run("already-completed milestones stay silent", func(t *testing.T) {
		journeyRepo := &mockJourneyRepository{
			completeMilestoneFunc: func(_ context.Context, _ string, _ valueobject.MilestoneID, _ valueobject.MilestonePayload, _ time.Time) (int, bool, error) {
				return 38, false, nil
			},
		}
		publisher := &mockPublisher{}
		uc := usecase.NewCreateAppointmentUseCase(&mockAppointmentRepository{}, journeyRepo, publisher, discardLogger())

		_, err := uc.Execute(context.Background(), validAppointmentRequest())

		require.NoError(t, err)
		assert.NotContains(t, publisher.eventTypes(), "journey.milestone.completed")
	})

	t.Run("past appointment is rejected", func(t *testing.T) {
		uc := usecase.NewCreateAppointmentUseCase(&mockAppointmentRepository{}, &mockJourneyRepository{}, &mockPublisher{}, discardLogger())

		req := validAppointmentRequest()
		req.ScheduledAt = time.Now().UTC().Add(-time.Hour)
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
	})

	t.Run("save failure propagates", func(t *testing.T) {
		apptRepo := &mockAppointmentRepository{
			saveFunc: func(_ context.Context, _ model.Appointment) error {
				return errors.New("insert failed")
			},
		}
		journeyRepo := &mockJourneyRepository{}
		uc := usecase.NewCreateAppointmentUseCase(apptRepo, journeyRepo, &mockPublisher{}, discardLogger())

		_, err := uc.Execute(context.Background(), validAppointmentRequest())

		require.Error(t, err)
		assert.Empty(t, journeyRepo.completedCalls, "no side effects on a failed save")
	})
}
