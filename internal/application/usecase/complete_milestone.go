package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/effendiaiwebsite/housesinbc/internal/application/dto"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/port"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// CompleteMilestoneUseCase is the completion shortcut: mark one milestone
// COMPLETED, idempotently.
type CompleteMilestoneUseCase struct {
	journeyRepo port.JourneyRepository
	publisher   port.EventPublisher
}

// NewCompleteMilestoneUseCase wires dependencies.
func NewCompleteMilestoneUseCase(journeyRepo port.JourneyRepository, publisher port.EventPublisher) *CompleteMilestoneUseCase {
	return &CompleteMilestoneUseCase{journeyRepo: journeyRepo, publisher: publisher}
}

// Execute completes the milestone and returns the recomputed progress.
// Completing an already-completed milestone succeeds without changing its
// completion time.
func (uc *CompleteMilestoneUseCase) Execute(ctx context.Context, req dto.CompleteMilestoneRequest) (dto.MilestoneUpdateResponse, error) {
	now := time.Now().UTC()

	id, err := valueobject.NewMilestoneID(req.MilestoneID)
	if err != nil {
		return dto.MilestoneUpdateResponse{}, valueobject.NewValidationError("milestone_id", "%s", err)
	}

	var payload valueobject.MilestonePayload
	if req.Note != "" {
		payload = valueobject.NotePayload{Note: req.Note}
	}

	rec, err := uc.journeyRepo.FindByUserID(ctx, req.UserID)
	if err != nil {
		return dto.MilestoneUpdateResponse{}, fmt.Errorf("find journey: %w", err)
	}

	next, _, err := rec.CompleteMilestone(id, payload, now)
	if err != nil {
		return dto.MilestoneUpdateResponse{}, err
	}

	progress, changed, err := uc.journeyRepo.CompleteMilestone(ctx, req.UserID, id, payload, now)
	if err != nil {
		return dto.MilestoneUpdateResponse{}, fmt.Errorf("complete milestone: %w", err)
	}

	if changed {
		if err := uc.publisher.Publish(ctx, next.DomainEvents()...); err != nil {
			return dto.MilestoneUpdateResponse{}, fmt.Errorf("publish events: %w", err)
		}
	}

	return dto.MilestoneUpdateResponse{
		UserID:          req.UserID,
		MilestoneID:     id.Int(),
		Status:          valueobject.MilestoneStatusCompleted.String(),
		OverallProgress: progress,
	}, nil
}
