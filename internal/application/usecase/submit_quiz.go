package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/effendiaiwebsite/housesinbc/internal/application/dto"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/event"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/model"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/port"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/service"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// The questionnaire does not ask for exact registered-account balances, so
// the incentive estimate assumes a full Home Buyers' Plan withdrawal when
// the buyer reports retirement savings.
var assumedRetirementBalance = decimal.NewFromInt(35_000)

// SubmitQuizUseCase orchestrates questionnaire submission: affordability and
// incentive calculation, snapshot persistence, and journey seeding.
type SubmitQuizUseCase struct {
	quizRepo      port.QuizResultRepository
	journeyRepo   port.JourneyRepository
	publisher     port.EventPublisher
	affordability *service.AffordabilityCalculator
	incentives    *service.IncentiveCalculator
}

// NewSubmitQuizUseCase wires dependencies.
func NewSubmitQuizUseCase(
	quizRepo port.QuizResultRepository,
	journeyRepo port.JourneyRepository,
	publisher port.EventPublisher,
	affordability *service.AffordabilityCalculator,
	incentives *service.IncentiveCalculator,
) *SubmitQuizUseCase {
	return &SubmitQuizUseCase{
		quizRepo:      quizRepo,
		journeyRepo:   journeyRepo,
		publisher:     publisher,
		affordability: affordability,
		incentives:    incentives,
	}
}

// Execute calculates, persists, and seeds the journey for a quiz submission.
// A repeat submission refreshes the snapshot and the incentives milestone
// data without touching its completion time.
func (uc *SubmitQuizUseCase) Execute(
	ctx context.Context,
	req dto.SubmitQuizRequest,
) (dto.QuizResponse, error) {
	now := time.Now().UTC()

	propertyType, err := valueobject.NewPropertyType(req.PropertyType)
	if err != nil {
		return dto.QuizResponse{}, valueobject.NewValidationError("property_type", "%s", err)
	}
	timeline, err := valueobject.NewTimeline(req.Timeline)
	if err != nil {
		return dto.QuizResponse{}, valueobject.NewValidationError("timeline", "%s", err)
	}

	// 1. Affordability breakdown at the fixed questionnaire rate.
	breakdown, err := uc.affordability.QuizBreakdown(req.Income, req.Savings, service.DefaultQuizRateBps)
	if err != nil {
		return dto.QuizResponse{}, fmt.Errorf("quiz breakdown: %w", err)
	}

	// 2. Incentive estimate on the affordable price.
	retirement := decimal.Zero
	if req.HasRetirementSavings {
		retirement = assumedRetirementBalance
	}
	incentives := uc.incentives.TotalIncentives(service.TotalIncentivesInput{
		HomePrice:           breakdown.AffordablePrice,
		AnnualIncome:        req.Income,
		FHSAContribution:    req.Savings,
		RetirementBalance:   retirement,
		RequestedWithdrawal: retirement,
		NewConstruction:     propertyType.IsNewConstruction(),
	})

	// 3. Create or refresh the snapshot aggregate.
	quiz, err := uc.upsertQuizResult(ctx, req, propertyType, timeline, breakdown, incentives, now)
	if err != nil {
		return dto.QuizResponse{}, err
	}

	// 4. Seed or refresh the journey record (milestone data only).
	progress, journeyEvents, err := uc.seedJourney(ctx, req.UserID, quiz.MilestonePayload(), now)
	if err != nil {
		return dto.QuizResponse{}, err
	}

	// 5. Publish domain events.
	events := append(quiz.DomainEvents(), journeyEvents...)
	if err := uc.publisher.Publish(ctx, events...); err != nil {
		return dto.QuizResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.QuizResponse{
		UserID:          quiz.UserID(),
		Breakdown:       toBreakdownResponse(breakdown),
		Incentives:      toIncentivesResponse(incentives),
		OverallProgress: progress,
		CreatedAt:       quiz.CreatedAt(),
		UpdatedAt:       quiz.UpdatedAt(),
	}, nil
}

func (uc *SubmitQuizUseCase) upsertQuizResult(
	ctx context.Context,
	req dto.SubmitQuizRequest,
	propertyType valueobject.PropertyType,
	timeline valueobject.Timeline,
	breakdown service.Breakdown,
	incentives service.IncentiveBreakdown,
	now time.Time,
) (model.QuizResult, error) {
	existing, err := uc.quizRepo.FindByUserID(ctx, req.UserID)
	switch {
	case err == nil:
		quiz, err := existing.Resubmit(
			req.Income, req.Savings, req.HasRetirementSavings,
			propertyType, timeline, breakdown, incentives, now,
		)
		if err != nil {
			return model.QuizResult{}, fmt.Errorf("resubmit quiz: %w", err)
		}
		if err := uc.quizRepo.Save(ctx, quiz); err != nil {
			return model.QuizResult{}, fmt.Errorf("save quiz result: %w", err)
		}
		return quiz, nil
	case errors.Is(err, valueobject.ErrNotFound):
		quiz, err := model.NewQuizResult(
			req.UserID, req.Income, req.Savings, req.HasRetirementSavings,
			propertyType, timeline, breakdown, incentives, now,
		)
		if err != nil {
			return model.QuizResult{}, fmt.Errorf("create quiz result: %w", err)
		}
		if err := uc.quizRepo.Save(ctx, quiz); err != nil {
			return model.QuizResult{}, fmt.Errorf("save quiz result: %w", err)
		}
		return quiz, nil
	default:
		return model.QuizResult{}, fmt.Errorf("find quiz result: %w", err)
	}
}

// seedJourney creates the journey record on first submission; on repeats it
// refreshes the incentives milestone data through the atomic single-milestone
// write, which never rewinds completion.
func (uc *SubmitQuizUseCase) seedJourney(
	ctx context.Context,
	userID string,
	payload valueobject.QuizResultPayload,
	now time.Time,
) (int, []event.DomainEvent, error) {
	_, err := uc.journeyRepo.FindByUserID(ctx, userID)
	if errors.Is(err, valueobject.ErrNotFound) {
		rec, err := model.NewJourneyRecordFromQuiz(userID, payload, now)
		if err != nil {
			return 0, nil, fmt.Errorf("seed journey: %w", err)
		}
		switch err := uc.journeyRepo.Create(ctx, rec); {
		case err == nil:
			return rec.OverallProgress(), rec.DomainEvents(), nil
		case errors.Is(err, valueobject.ErrJourneyExists):
			// Lost a creation race; fall through to the milestone refresh.
		default:
			return 0, nil, fmt.Errorf("create journey: %w", err)
		}
	} else if err != nil {
		return 0, nil, fmt.Errorf("find journey: %w", err)
	}

	progress, changed, err := uc.journeyRepo.CompleteMilestone(ctx, userID, valueobject.MilestoneIncentives, payload, now)
	if err != nil {
		return 0, nil, fmt.Errorf("refresh incentives milestone: %w", err)
	}
	if changed {
		completed := event.NewMilestoneCompleted(userID, valueobject.MilestoneIncentives.Int(), valueobject.MilestoneIncentives.Slug(), progress)
		return progress, []event.DomainEvent{completed}, nil
	}
	return progress, nil, nil
}

func toBreakdownResponse(b service.Breakdown) dto.BreakdownResponse {
	return dto.BreakdownResponse{
		AffordablePrice: b.AffordablePrice,
		Mortgage:        b.Mortgage,
		DownPayment:     b.DownPayment,
		ClosingCosts:    b.ClosingCosts,
		Buffer:          b.Buffer,
	}
}

func toIncentivesResponse(b service.IncentiveBreakdown) dto.IncentivesResponse {
	return dto.IncentivesResponse{
		PTTExemption: b.PTTExemption,
		GSTRebate:    b.GSTRebate,
		FHSABenefit:  b.FHSABenefit,
		HBPBenefit:   b.HBPBenefit,
		OwnerGrant:   b.OwnerGrant,
		Total:        b.Total,
	}
}
