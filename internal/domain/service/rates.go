package service

import (
	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// RateEngine – lender rate personalization and qualification
// ---------------------------------------------------------------------------

// Rate policy constants, in basis points where applicable.
const (
	// RateFloorBps is the absolute minimum rate any lender prices at
	// (2.50%), regardless of how favourable the adjustments are.
	RateFloorBps = 250

	// StressTestSpreadBps and StressTestFloorBps define the regulatory
	// minimum qualifying rate: max(contract + 2.00%, 5.25%).
	StressTestSpreadBps = 200
	StressTestFloorBps  = 525

	firstTimeBuyerDiscountBps = 5

	// Approval-odds DTI estimate assumptions.
	oddsRateBps           = 500
	oddsAmortizationYears = 25
)

// ApprovalOdds classifies how likely an application is to be approved.
type ApprovalOdds string

const (
	OddsHigh   ApprovalOdds = "high"
	OddsMedium ApprovalOdds = "medium"
	OddsLow    ApprovalOdds = "low"
)

// creditAdjustments maps credit-score brackets to additive rate
// adjustments. Better credit earns a discount.
var creditAdjustments = []struct {
	minScore int
	bps      int
}{
	{760, -25},
	{720, -10},
	{680, 0},
	{620, 25},
	{0, 75},
}

// RateEngine personalizes advertised lender rates for an applicant profile
// and classifies approval likelihood. All methods are pure.
type RateEngine struct{}

// NewRateEngine returns a new engine instance.
func NewRateEngine() *RateEngine {
	return &RateEngine{}
}

// PersonalizeRate adjusts an advertised rate for the applicant: a
// credit-score bracket adjustment, a down-payment adjustment (below 20%
// carries an insured-mortgage premium, 35% or more earns a discount) and a
// flat first-time-buyer discount, applied in that order. The result never
// goes below the lender floor.
func (e *RateEngine) PersonalizeRate(
	baseRateBps int,
	creditScore int,
	downPaymentPercent decimal.Decimal,
	firstTimeBuyer bool,
) int {
	rate := baseRateBps

	for _, bracket := range creditAdjustments {
		if creditScore >= bracket.minScore {
			rate += bracket.bps
			break
		}
	}

	switch {
	case downPaymentPercent.LessThan(decimal.NewFromInt(20)):
		rate += 15
	case downPaymentPercent.GreaterThanOrEqual(decimal.NewFromInt(35)):
		rate -= 10
	}

	if firstTimeBuyer {
		rate -= firstTimeBuyerDiscountBps
	}

	if rate < RateFloorBps {
		rate = RateFloorBps
	}
	return rate
}

// StressTestRate returns the regulator-mandated minimum qualifying rate for
// a contract rate: max(actual + 2.00%, 5.25%).
func (e *RateEngine) StressTestRate(actualRateBps int) int {
	qualifying := actualRateBps + StressTestSpreadBps
	if qualifying < StressTestFloorBps {
		qualifying = StressTestFloorBps
	}
	return qualifying
}

// DetermineApprovalOdds classifies approval likelihood from an approximate
// debt-to-income ratio using a fixed 5.00% / 25-year payment estimate.
//
// The HIGH check runs before the LOW check; the conditions are independent
// and can overlap for adversarial inputs, and this ordering is what the
// downstream consumers expect.
func (e *RateEngine) DetermineApprovalOdds(
	creditScore int,
	annualIncome, loanAmount, monthlyDebts decimal.Decimal,
) ApprovalOdds {
	if annualIncome.LessThanOrEqual(decimal.Zero) || loanAmount.LessThanOrEqual(decimal.Zero) {
		return OddsLow
	}

	payment := monthlyPayment(loanAmount, oddsRateBps, oddsAmortizationYears)
	monthlyIncome := annualIncome.Div(decimal.NewFromInt(12))
	dti := payment.Add(monthlyDebts).Div(monthlyIncome)

	incomeMultiple := loanAmount.Div(annualIncome)

	if creditScore >= 680 &&
		dti.LessThan(decimal.NewFromFloat(0.36)) &&
		incomeMultiple.LessThanOrEqual(decimal.NewFromInt(5)) {
		return OddsHigh
	}

	if creditScore < 620 ||
		dti.GreaterThan(decimal.NewFromFloat(0.43)) ||
		incomeMultiple.GreaterThan(decimal.NewFromInt(6)) {
		return OddsLow
	}

	return OddsMedium
}
