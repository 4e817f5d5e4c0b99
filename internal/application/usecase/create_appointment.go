package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/effendiaiwebsite/housesinbc/internal/application/dto"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/event"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/model"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/port"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// CreateAppointmentUseCase books a viewing appointment and advances the
// search and viewing milestones as a side effect. The booking is the
// source of truth; tracker failures are logged, never surfaced.
type CreateAppointmentUseCase struct {
	apptRepo    port.AppointmentRepository
	journeyRepo port.JourneyRepository
	publisher   port.EventPublisher
	logger      *slog.Logger
}

// NewCreateAppointmentUseCase wires dependencies.
func NewCreateAppointmentUseCase(
	apptRepo port.AppointmentRepository,
	journeyRepo port.JourneyRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *CreateAppointmentUseCase {
	return &CreateAppointmentUseCase{
		apptRepo:    apptRepo,
		journeyRepo: journeyRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute persists the appointment, publishes its event, and best-effort
// completes the property-search and viewing-booking milestones.
func (uc *CreateAppointmentUseCase) Execute(ctx context.Context, req dto.CreateAppointmentRequest) (dto.AppointmentResponse, error) {
	now := time.Now().UTC()

	appt, err := model.NewAppointment(req.UserID, req.PropertyAddress, req.ScheduledAt, req.Notes, now)
	if err != nil {
		return dto.AppointmentResponse{}, fmt.Errorf("create appointment: %w", err)
	}

	if err := uc.apptRepo.Save(ctx, appt); err != nil {
		return dto.AppointmentResponse{}, fmt.Errorf("save appointment: %w", err)
	}

	if err := uc.publisher.Publish(ctx, appt.DomainEvents()...); err != nil {
		return dto.AppointmentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	uc.advanceMilestone(ctx, req.UserID, valueobject.MilestoneSearch, nil, now)
	uc.advanceMilestone(ctx, req.UserID, valueobject.MilestoneViewing, appt.MilestonePayload(), now)

	return dto.AppointmentResponse{
		ID:              appt.ID(),
		UserID:          appt.UserID(),
		PropertyAddress: appt.PropertyAddress(),
		ScheduledAt:     appt.ScheduledAt(),
		Notes:           appt.Notes(),
		CreatedAt:       appt.CreatedAt(),
	}, nil
}

// advanceMilestone completes one milestone without letting tracker failures
// escalate into booking failures.
func (uc *CreateAppointmentUseCase) advanceMilestone(
	ctx context.Context,
	userID string,
	id valueobject.MilestoneID,
	payload valueobject.MilestonePayload,
	now time.Time,
) {
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
