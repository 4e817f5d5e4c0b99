package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effendiaiwebsite/housesinbc/internal/application/dto"
	"github.com/effendiaiwebsite/housesinbc/internal/application/usecase"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/model"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

func journeyWithRecord(t *testing.T) *mockJourneyRepository {
	t.Helper()
	return &mockJourneyRepository{
		findByUserIDFunc: func(_ context.Context, _ string) (model.JourneyRecord, error) {
			rec, err := model.NewJourneyRecord("user-1", time.Now().UTC())
			require.NoError(t, err)
			return rec.ClearEvents(), nil
		},
	}
}

func TestUpdateMilestone_Execute(t *testing.T) {
	t.Run("complete publishes and reports progress", func(t *testing.T) {
		journeyRepo := journeyWithRecord(t)
		journeyRepo.completeMilestoneFunc = func(_ context.Context, _ string, _ valueobject.MilestoneID, _ valueobject.MilestonePayload, _ time.Time) (int, bool, error) {
			return 25, true, nil
		}
		publisher := &mockPublisher{}
		uc := usecase.NewUpdateMilestoneUseCase(journeyRepo, publisher)

		resp, err := uc.Execute(context.Background(), dto.UpdateMilestoneRequest{
			UserID:      "user-1",
			MilestoneID: 1,
			Status:      "COMPLETED",
		})

		require.NoError(t, err)
		assert.Equal(t, 25, resp.OverallProgress)
		assert.Equal(t, "COMPLETED", resp.Status)
		assert.Contains(t, publisher.eventTypes(), "journey.milestone.completed")
	})

	t.Run("repeat completion stays silent", func(t *testing.T) {
		journeyRepo := journeyWithRecord(t)
		journeyRepo.completeMilestoneFunc = func(_ context.Context, _ string, _ valueobject.MilestoneID, _ valueobject.MilestonePayload, _ time.Time) (int, bool, error) {
			return 25, false, nil
		}
		publisher := &mockPublisher{}
		uc := usecase.NewUpdateMilestoneUseCase(journeyRepo, publisher)

		_, err := uc.Execute(context.Background(), dto.UpdateMilestoneRequest{
			UserID:      "user-1",
			MilestoneID: 1,
			Status:      "COMPLETED",
		})

		require.NoError(t, err)
		assert.Empty(t, publisher.published)
	})

	t.Run("start an available milestone", func(t *testing.T) {
		journeyRepo := journeyWithRecord(t)
		journeyRepo.startMilestoneFunc = func(_ context.Context, _ string, _ valueobject.MilestoneID, _ valueobject.MilestonePayload, _ time.Time) (int, error) {
			return 0, nil
		}
		publisher := &mockPublisher{}
		uc := usecase.NewUpdateMilestoneUseCase(journeyRepo, publisher)

		resp, err := uc.Execute(context.Background(), dto.UpdateMilestoneRequest{
			UserID:      "user-1",
			MilestoneID: 6,
			Status:      "IN_PROGRESS",
			Note:        "shortlisted two condos",
		})

		require.NoError(t, err)
		assert.Equal(t, "IN_PROGRESS", resp.Status)
		require.Len(t, journeyRepo.startedCalls, 1)
		assert.Equal(t, valueobject.MilestoneSearch, journeyRepo.startedCalls[0])
		assert.Contains(t, publisher.eventTypes(), "journey.milestone.started")
	})

	t.Run("locked milestone cannot start", func(t *testing.T) {
		journeyRepo := journeyWithRecord(t)
		publisher := &mockPublisher{}
		uc := usecase.NewUpdateMilestoneUseCase(journeyRepo, publisher)

		_, err := uc.Execute(context.Background(), dto.UpdateMilestoneRequest{
			UserID:      "user-1",
			MilestoneID: 3,
			Status:      "IN_PROGRESS",
		})

		require.ErrorIs(t, err, valueobject.ErrMilestoneLocked)
		assert.Empty(t, journeyRepo.startedCalls, "domain rejection must stop the write")
	})

	t.Run("non-sticky status is rejected", func(t *testing.T) {
		uc := usecase.NewUpdateMilestoneUseCase(journeyWithRecord(t), &mockPublisher{})

		_, err := uc.Execute(context.Background(), dto.UpdateMilestoneRequest{
			UserID:      "user-1",
			MilestoneID: 1,
			Status:      "LOCKED",
		})

		var validationErr *valueobject.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "status", validationErr.Field)
	})

	t.Run("invalid milestone id", func(t *testing.T) {
		uc := usecase.NewUpdateMilestoneUseCase(journeyWithRecord(t), &mockPublisher{})

		_, err := uc.Execute(context.Background(), dto.UpdateMilestoneRequest{
			UserID:      "user-1",
			MilestoneID: 12,
			Status:      "COMPLETED",
		})

		var validationErr *valueobject.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "milestone_id", validationErr.Field)
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := usecase.NewUpdateMilestoneUseCase(&mockJourneyRepository{}, &mockPublisher{})

		_, err := uc.Execute(context.Background(), dto.UpdateMilestoneRequest{
			UserID:      "ghost",
			MilestoneID: 1,
			Status:      "COMPLETED",
		})

		require.ErrorIs(t, err, valueobject.ErrNotFound)
	})
}
