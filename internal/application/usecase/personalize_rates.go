package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/effendiaiwebsite/housesinbc/internal/application/dto"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/port"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/service"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// PersonalizeRatesUseCase turns the advertised lender rates into quotes
// adjusted for one applicant's profile.
type PersonalizeRatesUseCase struct {
	rateSource    port.LenderRateSource
	engine        *service.RateEngine
	affordability *service.AffordabilityCalculator
}

// NewPersonalizeRatesUseCase wires dependencies.
func NewPersonalizeRatesUseCase(
	rateSource port.LenderRateSource,
	engine *service.RateEngine,
	affordability *service.AffordabilityCalculator,
) *PersonalizeRatesUseCase {
	return &PersonalizeRatesUseCase{
		rateSource:    rateSource,
		engine:        engine,
		affordability: affordability,
	}
}

// Execute personalizes every advertised rate and returns the quotes sorted
// ascending by personalized rate. Payment estimates and approval odds are
// only present when a loan amount is supplied.
func (uc *PersonalizeRatesUseCase) Execute(ctx context.Context, req dto.PersonalizeRatesRequest) (dto.PersonalizeRatesResponse, error) {
	if req.CreditScore <= 0 {
		return dto.PersonalizeRatesResponse{}, valueobject.NewValidationError("credit_score", "must be positive")
	}
	if req.DownPaymentPercent.IsNegative() {
		return dto.PersonalizeRatesResponse{}, valueobject.NewValidationError("down_payment_percent", "must not be negative")
	}

	amortization := req.AmortizationYears
	if amortization <= 0 {
		amortization = service.DefaultAmortizationYears
	}

	rates, err := uc.rateSource.CurrentRates(ctx)
	if err != nil {
		return dto.PersonalizeRatesResponse{}, fmt.Errorf("load lender rates: %w", err)
	}

	quotes := make([]dto.RateQuoteResponse, 0, len(rates))
	for _, rate := range rates {
		if req.TermYears > 0 && rate.TermYears != req.TermYears {
			continue
		}

		personalized := uc.engine.PersonalizeRate(
			rate.AdvertisedRateBps, req.CreditScore, req.DownPaymentPercent, req.FirstTimeBuyer,
		)
		quote := dto.RateQuoteResponse{
			Lender:              rate.Lender,
			RateType:            rate.RateType,
			TermYears:           rate.TermYears,
			AdvertisedRateBps:   rate.AdvertisedRateBps,
			PersonalizedRateBps: personalized,
			StressTestRateBps:   uc.engine.StressTestRate(personalized),
		}

		if req.LoanAmount.IsPositive() {
			payment, err := uc.affordability.MonthlyPayment(req.LoanAmount, personalized, amortization)
			if err != nil {
				return dto.PersonalizeRatesResponse{}, fmt.Errorf("monthly payment: %w", err)
			}
			stressPayment, err := uc.affordability.MonthlyPayment(req.LoanAmount, quote.StressTestRateBps, amortization)
			if err != nil {
				return dto.PersonalizeRatesResponse{}, fmt.Errorf("stress test payment: %w", err)
			}
			quote.MonthlyPayment = payment
			quote.StressTestPayment = stressPayment
			quote.ApprovalOdds = string(uc.engine.DetermineApprovalOdds(
				req.CreditScore, req.AnnualIncome, req.LoanAmount, req.MonthlyDebts,
			))
		}

		quotes = append(quotes, quote)
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		if quotes[i].PersonalizedRateBps != quotes[j].PersonalizedRateBps {
			return quotes[i].PersonalizedRateBps < quotes[j].PersonalizedRateBps
		}
		return quotes[i].Lender < quotes[j].Lender
	})

	return dto.PersonalizeRatesResponse{Quotes: quotes}, nil
}
