package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/effendiaiwebsite/housesinbc/internal/application/dto"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/model"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/port"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// GetProgressUseCase reads a buyer's journey record, creating a default one
// on first read so the progress view never 404s for a signed-in buyer.
type GetProgressUseCase struct {
	journeyRepo port.JourneyRepository
	publisher   port.EventPublisher
}

// NewGetProgressUseCase wires dependencies.
func NewGetProgressUseCase(journeyRepo port.JourneyRepository, publisher port.EventPublisher) *GetProgressUseCase {
	return &GetProgressUseCase{journeyRepo: journeyRepo, publisher: publisher}
}

// Execute returns the journey record for a user, auto-creating it when
// missing.
func (uc *GetProgressUseCase) Execute(ctx context.Context, req dto.GetProgressRequest) (dto.JourneyResponse, error) {
	if req.UserID == "" {
		return dto.JourneyResponse{}, valueobject.NewValidationError("user_id", "is required")
	}

	rec, err := uc.journeyRepo.FindByUserID(ctx, req.UserID)
	if errors.Is(err, valueobject.ErrNotFound) {
		rec, err = uc.createDefault(ctx, req.UserID)
	}
	if err != nil {
		return dto.JourneyResponse{}, fmt.Errorf("find journey: %w", err)
	}

	return toJourneyResponse(rec)
}

func (uc *GetProgressUseCase) createDefault(ctx context.Context, userID string) (model.JourneyRecord, error) {
	now := time.Now().UTC()
	rec, err := model.NewJourneyRecord(userID, now)
	if err != nil {
		return model.JourneyRecord{}, err
	}

	switch err := uc.journeyRepo.Create(ctx, rec); {
	case err == nil:
		if err := uc.publisher.Publish(ctx, rec.DomainEvents()...); err != nil {
			return model.JourneyRecord{}, fmt.Errorf("publish events: %w", err)
		}
		return rec.ClearEvents(), nil
	case errors.Is(err, valueobject.ErrJourneyExists):
		// Lost a creation race; the record is there now.
		return uc.journeyRepo.FindByUserID(ctx, userID)
	default:
		return model.JourneyRecord{}, err
	}
}

// toJourneyResponse renders a record with effective statuses resolved.
func toJourneyResponse(rec model.JourneyRecord) (dto.JourneyResponse, error) {
	milestones := make([]dto.MilestoneResponse, 0, valueobject.MilestoneCount)
	for _, id := range valueobject.AllMilestones() {
		state, ok := rec.Milestone(id)
		if !ok {
			continue
		}
		payload, err := valueobject.EncodeMilestonePayload(state.Payload)
		if err != nil {
			return dto.JourneyResponse{}, fmt.Errorf("encode milestone %d payload: %w", id.Int(), err)
		}
		milestones = append(milestones, dto.MilestoneResponse{
			MilestoneID: id.Int(),
			Slug:        id.Slug(),
			Status:      rec.EffectiveStatus(id).String(),
			Payload:     payload,
			CompletedAt: state.CompletedAt,
			UpdatedAt:   state.UpdatedAt,
		})
	}

	return dto.JourneyResponse{
		UserID:          rec.UserID(),
		OverallProgress: rec.OverallProgress(),
		Milestones:      milestones,
		CreatedAt:       rec.CreatedAt(),
		UpdatedAt:       rec.UpdatedAt(),
	}, nil
}
