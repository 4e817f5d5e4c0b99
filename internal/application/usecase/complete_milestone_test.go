package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effendiaiwebsite/housesinbc/internal/application/dto"
	"github.com/effendiaiwebsite/housesinbc/internal/application/usecase"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

func TestCompleteMilestone_Execute(t *testing.T) {
	t.Run("completes and publishes", func(t *testing.T) {
		journeyRepo := journeyWithRecord(t)
		journeyRepo.completeMilestoneFunc = func(_ context.Context, _ string, _ valueobject.MilestoneID, _ valueobject.MilestonePayload, _ time.Time) (int, bool, error) {
			return 13, true, nil
		}
		publisher := &mockPublisher{}
		uc := usecase.NewCompleteMilestoneUseCase(journeyRepo, publisher)

		resp, err := uc.Execute(context.Background(), dto.CompleteMilestoneRequest{
			UserID:      "user-1",
			MilestoneID: 5,
			Note:        "picked a neighbourhood",
		})

		require.NoError(t, err)
		assert.Equal(t, "COMPLETED", resp.Status)
		assert.Equal(t, 13, resp.OverallProgress)
		require.Len(t, journeyRepo.completedCalls, 1)
		assert.Equal(t, valueobject.MilestoneNeighbourhood, journeyRepo.completedCalls[0])

		note, ok := journeyRepo.completePayload[0].(valueobject.NotePayload)
		require.True(t, ok)
		assert.Equal(t, "picked a neighbourhood", note.Note)
		assert.Contains(t, publisher.eventTypes(), "journey.milestone.completed")
	})

	t.Run("idempotent repeat publishes nothing", func(t *testing.T) {
		journeyRepo := journeyWithRecord(t)
		journeyRepo.completeMilestoneFunc = func(_ context.Context, _ string, _ valueobject.MilestoneID, _ valueobject.MilestonePayload, _ time.Time) (int, bool, error) {
			return 13, false, nil
		}
		publisher := &mockPublisher{}
		uc := usecase.NewCompleteMilestoneUseCase(journeyRepo, publisher)

		resp, err := uc.Execute(context.Background(), dto.CompleteMilestoneRequest{
			UserID:      "user-1",
			MilestoneID: 5,
		})

		require.NoError(t, err)
		assert.Equal(t, 13, resp.OverallProgress)
		assert.Empty(t, publisher.published)
	})

	t.Run("invalid milestone id", func(t *testing.T) {
		uc := usecase.NewCompleteMilestoneUseCase(&mockJourneyRepository{}, &mockPublisher{})

		_, err := uc.Execute(context.Background(), dto.CompleteMilestoneRequest{
			UserID:      "user-1",
			MilestoneID: 0,
		})

		var validationErr *valueobject.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}
