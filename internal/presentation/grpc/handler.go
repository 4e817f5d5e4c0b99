package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/effendiaiwebsite/housesinbc/internal/application/dto"
	"github.com/effendiaiwebsite/housesinbc/internal/application/usecase"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// JourneyHandler exposes the journey operations over gRPC. It implements
// JourneyServiceServer.
type JourneyHandler struct {
	UnimplementedJourneyServiceServer

	submitQuiz        *usecase.SubmitQuizUseCase
	getProgress       *usecase.GetProgressUseCase
	updateMilestone   *usecase.UpdateMilestoneUseCase
	completeMilestone *usecase.CompleteMilestoneUseCase
	personalizeRates  *usecase.PersonalizeRatesUseCase
	createAppointment *usecase.CreateAppointmentUseCase
	createOffer       *usecase.CreateOfferUseCase
	submitOffer       *usecase.SubmitOfferUseCase
}

// NewJourneyHandler creates a new handler with all use-case dependencies.
func NewJourneyHandler(
	submitQuiz *usecase.SubmitQuizUseCase,
	getProgress *usecase.GetProgressUseCase,
	updateMilestone *usecase.UpdateMilestoneUseCase,
	completeMilestone *usecase.CompleteMilestoneUseCase,
	personalizeRates *usecase.PersonalizeRatesUseCase,
	createAppointment *usecase.CreateAppointmentUseCase,
	createOffer *usecase.CreateOfferUseCase,
	submitOffer *usecase.SubmitOfferUseCase,
) *JourneyHandler {
	return &JourneyHandler{
		submitQuiz:        submitQuiz,
		getProgress:       getProgress,
		updateMilestone:   updateMilestone,
		completeMilestone: completeMilestone,
		personalizeRates:  personalizeRates,
		createAppointment: createAppointment,
		createOffer:       createOffer,
		submitOffer:       submitOffer,
	}
}

// SubmitQuiz handles a questionnaire submission.
func (h *JourneyHandler) SubmitQuiz(ctx context.Context, req *SubmitQuizRequest) (*SubmitQuizResponse, error) {
	income, err := parseAmount(req.Income, "income")
	if err != nil {
		return nil, err
	}
	savings, err := parseAmount(req.Savings, "savings")
	if err != nil {
		return nil, err
	}

	result, err := h.submitQuiz.Execute(ctx, dto.SubmitQuizRequest{
		UserID:               req.UserID,
		Income:               income,
		Savings:              savings,
		HasRetirementSavings: req.HasRetirementSavings,
		PropertyType:         req.PropertyType,
		Timeline:             req.Timeline,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &SubmitQuizResponse{Result: result}, nil
}

// GetProgress returns the caller's journey record.
func (h *JourneyHandler) GetProgress(ctx context.Context, req *GetProgressRequest) (*GetProgressResponse, error) {
	journey, err := h.getProgress.Execute(ctx, dto.GetProgressRequest{UserID: req.UserID})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &GetProgressResponse{Journey: journey}, nil
}

// UpdateMilestone moves a milestone to IN_PROGRESS or COMPLETED.
func (h *JourneyHandler) UpdateMilestone(ctx context.Context, req *UpdateMilestoneRequest) (*UpdateMilestoneResponse, error) {
	result, err := h.updateMilestone.Execute(ctx, dto.UpdateMilestoneRequest{
		UserID:      req.UserID,
		MilestoneID: req.MilestoneID,
		Status:      req.Status,
		Note:        req.Note,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &UpdateMilestoneResponse{Result: result}, nil
}

// CompleteMilestone marks a milestone completed.
func (h *JourneyHandler) CompleteMilestone(ctx context.Context, req *CompleteMilestoneRequest) (*CompleteMilestoneResponse, error) {
	result, err := h.completeMilestone.Execute(ctx, dto.CompleteMilestoneRequest{
		UserID:      req.UserID,
		MilestoneID: req.MilestoneID,
		Note:        req.Note,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &CompleteMilestoneResponse{Result: result}, nil
}

// PersonalizeRates returns adjusted quotes for the caller's profile.
func (h *JourneyHandler) PersonalizeRates(ctx context.Context, req *PersonalizeRatesRequest) (*PersonalizeRatesResponse, error) {
	income, err := parseAmount(req.AnnualIncome, "annual_income")
	if err != nil {
		return nil, err
	}
	downPercent, err := parseAmount(req.DownPaymentPercent, "down_payment_percent")
	if err != nil {
		return nil, err
	}
	loanAmount, err := parseOptionalAmount(req.LoanAmount, "loan_amount")
	if err != nil {
		return nil, err
	}
	monthlyDebts, err := parseOptionalAmount(req.MonthlyDebts, "monthly_debts")
	if err != nil {
		return nil, err
	}

	result, err := h.personalizeRates.Execute(ctx, dto.PersonalizeRatesRequest{
		UserID:             req.UserID,
		AnnualIncome:       income,
		CreditScore:        req.CreditScore,
		DownPaymentPercent: downPercent,
		FirstTimeBuyer:     req.FirstTimeBuyer,
		AmortizationYears:  req.AmortizationYears,
		TermYears:          req.TermYears,
		LoanAmount:         loanAmount,
		MonthlyDebts:       monthlyDebts,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &PersonalizeRatesResponse{Quotes: result.Quotes}, nil
}

// CreateAppointment books a viewing appointment.
func (h *JourneyHandler) CreateAppointment(ctx context.Context, req *CreateAppointmentRequest) (*CreateAppointmentResponse, error) {
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid scheduled_at: %v", err)
	}

	appt, err := h.createAppointment.Execute(ctx, dto.CreateAppointmentRequest{
		UserID:          req.UserID,
		PropertyAddress: req.PropertyAddress,
		ScheduledAt:     scheduledAt,
		Notes:           req.Notes,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &CreateAppointmentResponse{Appointment: appt}, nil
}

// CreateOffer drafts a purchase offer.
func (h *JourneyHandler) CreateOffer(ctx context.Context, req *CreateOfferRequest) (*CreateOfferResponse, error) {
	amount, err := parseAmount(req.Amount, "amount")
	if err != nil {
		return nil, err
	}

	offer, err := h.createOffer.Execute(ctx, dto.CreateOfferRequest{
		UserID:          req.UserID,
		PropertyAddress: req.PropertyAddress,
		Amount:          amount,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &CreateOfferResponse{Offer: offer}, nil
}

// SubmitOffer submits a drafted offer.
func (h *JourneyHandler) SubmitOffer(ctx context.Context, req *SubmitOfferRequest) (*SubmitOfferResponse, error) {
	offer, err := h.submitOffer.Execute(ctx, dto.SubmitOfferRequest{
		UserID:  req.UserID,
		OfferID: req.OfferID,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &SubmitOfferResponse{Offer: offer}, nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func parseAmount(raw, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return d, nil
}

func parseOptionalAmount(raw, field string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return parseAmount(raw, field)
}

// toStatusError maps domain errors onto gRPC status codes.
func toStatusError(err error) error {
	var validationErr *valueobject.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return status.Error(codes.InvalidArgument, validationErr.Error())
	case errors.Is(err, valueobject.ErrNotFound):
		return status.Error(codes.NotFound, "record not found")
	case errors.Is(err, valueobject.ErrJourneyExists):
		return status.Error(codes.AlreadyExists, "journey record already exists")
	case errors.Is(err, valueobject.ErrMilestoneLocked):
		return status.Error(codes.FailedPrecondition, "milestone is locked")
	case errors.Is(err, valueobject.ErrInvalidStatusTransition):
		return status.Error(codes.FailedPrecondition, "invalid status transition")
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
