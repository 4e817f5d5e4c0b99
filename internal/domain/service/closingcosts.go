package service

import (
	"github.com/shopspring/decimal"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ClosingCostEstimator – one-time purchase cost aggregation
// ---------------------------------------------------------------------------

var (
	legalFeeEstimate   = decimal.NewFromInt(1_500)
	inspectionEstimate = decimal.NewFromInt(500)
	appraisalEstimate  = decimal.NewFromInt(350)
)

// insurancePremiumTiers maps down-payment percentage brackets to
// mortgage-insurance premium rates applied to the loan amount. 20% down or
// more carries no premium.
var insurancePremiumTiers = []struct {
	minDownPercent decimal.Decimal
	rate           decimal.Decimal
}{
	{decimal.NewFromInt(15), decimal.NewFromFloat(0.0280)},
	{decimal.NewFromInt(10), decimal.NewFromFloat(0.0310)},
	{decimal.NewFromInt(5), decimal.NewFromFloat(0.0400)},
	{decimal.Zero, decimal.NewFromFloat(0.0450)},
}

// ClosingCosts itemises one-time purchase costs.
type ClosingCosts struct {
	TransferTax      decimal.Decimal
	LegalFees        decimal.Decimal
	Inspection       decimal.Decimal
	Appraisal        decimal.Decimal
	InsurancePremium decimal.Decimal
	Total            decimal.Decimal
}

// ClosingCostEstimator aggregates legal, inspection, appraisal and
// mortgage-insurance estimates. Transfer tax is zero here: the incentive
// calculator already models the first-time-buyer exemption and the two are
// never double-counted.
type ClosingCostEstimator struct{}

// NewClosingCostEstimator returns a new estimator instance.
func NewClosingCostEstimator() *ClosingCostEstimator {
	return &ClosingCostEstimator{}
}

// Estimate computes closing costs for a purchase. The appraisal fee applies
// only to insured mortgages (below 20% down); the insurance premium comes
// from the loan-to-value tier schedule.
func (e *ClosingCostEstimator) Estimate(homePrice, downPayment decimal.Decimal) (ClosingCosts, error) {
	if homePrice.LessThanOrEqual(decimal.Zero) {
		return ClosingCosts{}, valueobject.NewDomainError("closing costs", "home price must be positive, got %s", homePrice)
	}
	if downPayment.LessThan(decimal.Zero) || downPayment.GreaterThan(homePrice) {
		return ClosingCosts{}, valueobject.NewDomainError("closing costs", "down payment must be between 0 and the home price, got %s", downPayment)
	}

	downPercent := downPayment.Div(homePrice).Mul(decimal.NewFromInt(100))
	loan := homePrice.Sub(downPayment)

	costs := ClosingCosts{
		TransferTax: decimal.Zero,
		LegalFees:   legalFeeEstimate,
		Inspection:  inspectionEstimate,
	}

	if downPercent.LessThan(decimal.NewFromInt(20)) {
		costs.Appraisal = appraisalEstimate
		costs.InsurancePremium = loan.Mul(insurancePremiumRate(downPercent)).Round(0)
	} else {
		costs.Appraisal = decimal.Zero
		costs.InsurancePremium = decimal.Zero
	}

	costs.Total = costs.TransferTax.
		Add(costs.LegalFees).
		Add(costs.Inspection).
		Add(costs.Appraisal).
		Add(costs.InsurancePremium)
	return costs, nil
}

func insurancePremiumRate(downPercent decimal.Decimal) decimal.Decimal {
	for _, tier := range insurancePremiumTiers {
		if downPercent.GreaterThanOrEqual(tier.minDownPercent) {
			return tier.rate
		}
	}
	return insurancePremiumTiers[len(insurancePremiumTiers)-1].rate
}
