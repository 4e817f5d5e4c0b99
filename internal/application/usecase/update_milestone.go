package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/effendiaiwebsite/housesinbc/internal/application/dto"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/port"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// UpdateMilestoneUseCase moves a single milestone to IN_PROGRESS or
// COMPLETED. Updates are field-scoped: only the addressed milestone row is
// written, so concurrent writers on other milestones are never clobbered.
type UpdateMilestoneUseCase struct {
	journeyRepo port.JourneyRepository
	publisher   port.EventPublisher
}

// NewUpdateMilestoneUseCase wires dependencies.
func NewUpdateMilestoneUseCase(journeyRepo port.JourneyRepository, publisher port.EventPublisher) *UpdateMilestoneUseCase {
	return &UpdateMilestoneUseCase{journeyRepo: journeyRepo, publisher: publisher}
}

// Execute validates the transition against the loaded record, applies it
// through the atomic single-milestone write, and publishes the resulting
// events. No record is created here; missing users get not-found.
func (uc *UpdateMilestoneUseCase) Execute(ctx context.Context, req dto.UpdateMilestoneRequest) (dto.MilestoneUpdateResponse, error) {
	now := time.Now().UTC()

	id, err := valueobject.NewMilestoneID(req.MilestoneID)
	if err != nil {
		return dto.MilestoneUpdateResponse{}, valueobject.NewValidationError("milestone_id", "%s", err)
	}
	status, err := valueobject.NewMilestoneStatus(req.Status)
	if err != nil {
		return dto.MilestoneUpdateResponse{}, valueobject.NewValidationError("status", "%s", err)
	}
	if !status.IsSticky() {
		return dto.MilestoneUpdateResponse{}, valueobject.NewValidationError("status", "only IN_PROGRESS and COMPLETED can be set")
	}

	var payload valueobject.MilestonePayload
	if req.Note != "" {
		payload = valueobject.NotePayload{Note: req.Note}
	}

	rec, err := uc.journeyRepo.FindByUserID(ctx, req.UserID)
	if err != nil {
		return dto.MilestoneUpdateResponse{}, fmt.Errorf("find journey: %w", err)
	}

	var progress int
	if status.IsCompleted() {
		next, _, err := rec.CompleteMilestone(id, payload, now)
		if err != nil {
			return dto.MilestoneUpdateResponse{}, err
		}
		var changed bool
		progress, changed, err = uc.journeyRepo.CompleteMilestone(ctx, req.UserID, id, payload, now)
		if err != nil {
			return dto.MilestoneUpdateResponse{}, fmt.Errorf("complete milestone: %w", err)
		}
		if changed {
			if err := uc.publisher.Publish(ctx, next.DomainEvents()...); err != nil {
				return dto.MilestoneUpdateResponse{}, fmt.Errorf("publish events: %w", err)
			}
		}
	} else {
		next, err := rec.StartMilestone(id, payload, now)
		if err != nil {
			return dto.MilestoneUpdateResponse{}, err
		}
		progress, err = uc.journeyRepo.StartMilestone(ctx, req.UserID, id, payload, now)
		if err != nil {
			return dto.MilestoneUpdateResponse{}, fmt.Errorf("start milestone: %w", err)
		}
		if err := uc.publisher.Publish(ctx, next.DomainEvents()...); err != nil {
			return dto.MilestoneUpdateResponse{}, fmt.Errorf("publish events: %w", err)
		}
	}

	return dto.MilestoneUpdateResponse{
		UserID:          req.UserID,
		MilestoneID:     id.Int(),
		Status:          status.String(),
		OverallProgress: progress,
	}, nil
}
