package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/effendiaiwebsite/housesinbc/internal/application/dto"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/event"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/port"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// SubmitOfferUseCase transitions a draft offer to SUBMITTED and advances the
// offer milestone as a side effect. The offer is the source of truth;
// tracker failures are logged, never surfaced.
type SubmitOfferUseCase struct {
	offerRepo   port.OfferRepository
	journeyRepo port.JourneyRepository
	publisher   port.EventPublisher
	logger      *slog.Logger
}

// NewSubmitOfferUseCase wires dependencies.
func NewSubmitOfferUseCase(
	offerRepo port.OfferRepository,
	journeyRepo port.JourneyRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *SubmitOfferUseCase {
	return &SubmitOfferUseCase{
		offerRepo:   offerRepo,
		journeyRepo: journeyRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute submits the offer and best-effort completes the offer milestone.
func (uc *SubmitOfferUseCase) Execute(ctx context.Context, req dto.SubmitOfferRequest) (dto.OfferResponse, error) {
	now := time.Now().UTC()

	offer, err := uc.offerRepo.FindByID(ctx, req.OfferID)
	if err != nil {
		return dto.OfferResponse{}, fmt.Errorf("find offer: %w", err)
	}
	if offer.UserID() != req.UserID {
		return dto.OfferResponse{}, valueobject.ErrNotFound
	}

	offer, err = offer.Submit(now)
	if err != nil {
		return dto.OfferResponse{}, err
	}

	if err := uc.offerRepo.Save(ctx, offer); err != nil {
		return dto.OfferResponse{}, fmt.Errorf("save offer: %w", err)
	}

	if err := uc.publisher.Publish(ctx, offer.DomainEvents()...); err != nil {
		return dto.OfferResponse{}, fmt.Errorf("publish events: %w", err)
	}

	uc.advanceOfferMilestone(ctx, offer.UserID(), offer.MilestonePayload(), now)

	return toOfferResponse(offer), nil
}

func (uc *SubmitOfferUseCase) advanceOfferMilestone(
	ctx context.Context,
	userID string,
	payload valueobject.OfferPayload,
	now time.Time,
) {
	id := valueobject.MilestoneOffer
	progress, changed, err := uc.journeyRepo.CompleteMilestone(ctx, userID, id, payload, now)
	if err != nil {
		uc.logger.Warn("milestone side effect failed",
			"user_id", userID,
			"milestone_id", id.Int(),
			"error", err,
		)
		return
	}
	if !changed {
		return
	}

	completed := event.NewMilestoneCompleted(userID, id.Int(), id.Slug(), progress)
	if err := uc.publisher.Publish(ctx, completed); err != nil {
		uc.logger.Warn("milestone event publish failed",
			"user_id", userID,
			"milestone_id", id.Int(),
			"error", err,
		)
	}
}
