package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effendiaiwebsite/housesinbc/internal/application/dto"
	"github.com/effendiaiwebsite/housesinbc/internal/application/usecase"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/model"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

func draftedOffer(t *testing.T, userID string) model.Offer {
	t.Helper()
	o, err := model.NewOffer(userID, "123 Main St", decimal.NewFromInt(650_000), time.Now().UTC())
	require.NoError(t, err)
	return o.ClearEvents()
}

func TestCreateOffer_Execute(t *testing.T) {
	offerRepo := &mockOfferRepository{}
	publisher := &mockPublisher{}
	uc := usecase.NewCreateOfferUseCase(offerRepo, publisher)

	resp, err := uc.Execute(context.Background(), dto.CreateOfferRequest{
		UserID:          "user-1",
		PropertyAddress: "123 Main St",
		Amount:          decimal.NewFromInt(650_000),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "DRAFT", resp.Status)
	require.Len(t, offerRepo.saved, 1)
	assert.Contains(t, publisher.eventTypes(), "journey.offer.drafted")
}

func TestCreateOffer_Invalid(t *testing.T) {
	uc := usecase.NewCreateOfferUseCase(&mockOfferRepository{}, &mockPublisher{})

	_, err := uc.Execute(context.Background(), dto.CreateOfferRequest{
		UserID:          "user-1",
		PropertyAddress: "123 Main St",
		Amount:          decimal.Zero,
	})

	require.Error(t, err)
}

func TestSubmitOffer_Execute(t *testing.T) {
	t.Run("submission completes the offer milestone", func(t *testing.T) {
		offer := draftedOffer(t, "user-1")
		offerRepo := &mockOfferRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Offer, error) {
				return offer, nil
			},
		}
		journeyRepo := &mockJourneyRepository{}
		publisher := &mockPublisher{}
		uc := usecase.NewSubmitOfferUseCase(offerRepo, journeyRepo, publisher, discardLogger())

		resp, err := uc.Execute(context.Background(), dto.SubmitOfferRequest{
			UserID:  "user-1",
			OfferID: offer.ID(),
		})

		require.NoError(t, err)
		assert.Equal(t, "SUBMITTED", resp.Status)
		require.Len(t, offerRepo.saved, 1)

		require.Len(t, journeyRepo.completedCalls, 1)
		assert.Equal(t, valueobject.MilestoneOffer, journeyRepo.completedCalls[0])
		payload, ok := journeyRepo.completePayload[0].(valueobject.OfferPayload)
		require.True(t, ok)
		assert.Equal(t, offer.ID(), payload.OfferID)

		types := publisher.eventTypes()
		assert.Contains(t, types, "journey.offer.submitted")
		assert.Contains(t, types, "journey.milestone.completed")
	})

	t.Run("another user's offer reads as missing", func(t *testing.T) {
		offer := draftedOffer(t, "owner")
		offerRepo := &mockOfferRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Offer, error) {
				return offer, nil
			},
		}
		uc := usecase.NewSubmitOfferUseCase(offerRepo, &mockJourneyRepository{}, &mockPublisher{}, discardLogger())

		_, err := uc.Execute(context.Background(), dto.SubmitOfferRequest{
			UserID:  "intruder",
			OfferID: offer.ID(),
		})

		require.ErrorIs(t, err, valueobject.ErrNotFound)
	})

	t.Run("double submission fails", func(t *testing.T) {
		offer := draftedOffer(t, "user-1")
		submitted, err := offer.Submit(time.Now().UTC())
		require.NoError(t, err)
		offerRepo := &mockOfferRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Offer, error) {
				return submitted.ClearEvents(), nil
			},
		}
		uc := usecase.NewSubmitOfferUseCase(offerRepo, &mockJourneyRepository{}, &mockPublisher{}, discardLogger())

		_, err = uc.Execute(context.Background(), dto.SubmitOfferRequest{
			UserID:  "user-1",
			OfferID: offer.ID(),
		})

		require.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("milestone failure stays best-effort", func(t *testing.T) {
		offer := draftedOffer(t, "user-1")
		offerRepo := &mockOfferRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Offer, error) {
				return offer, nil
			},
		}
		journeyRepo := &mockJourneyRepository{
			completeMilestoneFunc: func(_ context.Context, _ string, _ valueobject.MilestoneID, _ valueobject.MilestonePayload, _ time.Time) (int, bool, error) {
				return 0, false, errors.New("tracker down")
			},
		}
		uc := usecase.NewSubmitOfferUseCase(offerRepo, journeyRepo, &mockPublisher{}, discardLogger())

		resp, err := uc.Execute(context.Background(), dto.SubmitOfferRequest{
			UserID:  "user-1",
			OfferID: offer.ID(),
		})

		require.NoError(t, err)
		assert.Equal(t, "SUBMITTED", resp.Status)
	})

	t.Run("unknown offer", func(t *testing.T) {
		uc := usecase.NewSubmitOfferUseCase(&mockOfferRepository{}, &mockJourneyRepository{}, &mockPublisher{}, discardLogger())

		_, err := uc.Execute(context.Background(), dto.SubmitOfferRequest{
			UserID:  "user-1",
			OfferID: "missing",
		})

		require.ErrorIs(t, err, valueobject.ErrNotFound)
	})
}
