package service

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// AffordabilityCalculator – domain service for mortgage affordability
// ---------------------------------------------------------------------------

// Qualification and modelling constants. GDS/TDS caps follow standard
// mortgage-qualification rules; the payment split and quiz defaults are
// product policy.
const (
	DefaultMaxGDS = 0.32
	DefaultMaxTDS = 0.40

	// DefaultQuizRateBps is the assumed contract rate for questionnaire
	// estimates (4.50%).
	DefaultQuizRateBps = 450

	// DefaultAmortizationYears is the assumed amortization for
	// questionnaire estimates.
	DefaultAmortizationYears = 25

	// minimumDownPaymentRate caps the home price at downPayment / 5%.
	minimumDownPaymentRate = 0.05

	// Housing payment split: mortgage / property tax / heating.
	mortgageShare    = 0.80
	propertyTaxShare = 0.15
	heatingShare     = 0.05

	// closingCostRate approximates closing costs for the quiz breakdown.
	closingCostRate = 0.03

	// downPaymentShare is the fraction of savings put toward the down
	// payment; the rest is kept as an emergency buffer.
	downPaymentShare = 0.80
)

// AffordabilityResult is the outcome of a GDS/TDS affordability evaluation.
type AffordabilityResult struct {
	MaxHomePrice      decimal.Decimal
	MaxLoan           decimal.Decimal
	MaxMonthlyPayment decimal.Decimal
	EstPropertyTax    decimal.Decimal
	EstHeating        decimal.Decimal
}

// Breakdown is the questionnaire affordability estimate. All values are
// whole currency units rounded down. Invariants:
//
//	Mortgage + DownPayment == AffordablePrice
//	DownPayment + Buffer   == Savings
type Breakdown struct {
	AffordablePrice decimal.Decimal
	Mortgage        decimal.Decimal
	DownPayment     decimal.Decimal
	ClosingCosts    decimal.Decimal
	Buffer          decimal.Decimal
}

// AffordabilityCalculator computes what a buyer can afford from income,
// savings and debts. All methods are pure and safe for concurrent use.
type AffordabilityCalculator struct{}

// NewAffordabilityCalculator returns a new calculator instance.
func NewAffordabilityCalculator() *AffordabilityCalculator {
	return &AffordabilityCalculator{}
}

// MonthlyPayment computes the fixed monthly payment for an amortizing loan.
//
//	monthlyRate = annualRateBps / 10_000 / 12
//	payment     = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate is special-cased as a linear division.
func (c *AffordabilityCalculator) MonthlyPayment(
	principal decimal.Decimal,
	annualRateBps int,
	years int,
) (decimal.Decimal, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, valueobject.NewDomainError("monthly payment", "principal must be positive, got %s", principal)
	}
	if annualRateBps < 0 {
		return decimal.Zero, valueobject.NewDomainError("monthly payment", "annual rate must not be negative, got %d bps", annualRateBps)
	}
	if years <= 0 {
		return decimal.Zero, valueobject.NewDomainError("monthly payment", "years must be positive, got %d", years)
	}

	return monthlyPayment(principal, annualRateBps, years), nil
}

// monthlyPayment assumes validated inputs. Shared with the rate engine's
// approval-odds estimate.
func monthlyPayment(principal decimal.Decimal, annualRateBps, years int) decimal.Decimal {
	n := years * 12
	monthlyRate := float64(annualRateBps) / 10_000.0 / 12.0

	if monthlyRate == 0 {
		return principal.Div(decimal.NewFromInt(int64(n))).Round(2)
	}

	// float64 for the power calculation, decimal for the money.
	factor := math.Pow(1+monthlyRate, float64(n))
	payment := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
	return decimal.NewFromFloat(payment).Round(2)
}

// loanFromPayment inverts the amortizing payment formula to recover the
// principal a given monthly payment services.
func loanFromPayment(payment decimal.Decimal, annualRateBps, years int) decimal.Decimal {
	n := years * 12
	monthlyRate := float64(annualRateBps) / 10_000.0 / 12.0

	if monthlyRate == 0 {
		return payment.Mul(decimal.NewFromInt(int64(n))).Round(2)
	}

	factor := math.Pow(1+monthlyRate, float64(n))
	principal := payment.InexactFloat64() * (factor - 1) / (monthlyRate * factor)
	return decimal.NewFromFloat(principal).Round(2)
}

// ComputeAffordability derives the maximum home price a buyer qualifies for
// under GDS/TDS debt-service caps.
//
// The maximum housing payment is min(income/12 * maxGDS, income/12 * maxTDS
// - monthlyDebts), partitioned into mortgage (80%), property tax (15%) and
// heating (5%) by fixed ratio, then the payment formula is inverted to
// recover the loan. This is an approximation, not an exact
// amortization-plus-tax solve; the fixed partition is a deliberate
// modelling simplification.
func (c *AffordabilityCalculator) ComputeAffordability(
	annualIncome, downPayment, monthlyDebts decimal.Decimal,
	annualRateBps, years int,
	maxGDS, maxTDS float64,
) (AffordabilityResult, error) {
	if annualIncome.LessThanOrEqual(decimal.Zero) {
		return AffordabilityResult{}, valueobject.NewDomainError("affordability", "annual income must be positive, got %s", annualIncome)
	}
	if downPayment.LessThan(decimal.Zero) {
		return AffordabilityResult{}, valueobject.NewDomainError("affordability", "down payment must not be negative, got %s", downPayment)
	}
	if monthlyDebts.LessThan(decimal.Zero) {
		return AffordabilityResult{}, valueobject.NewDomainError("affordability", "monthly debts must not be negative, got %s", monthlyDebts)
	}
	if annualRateBps < 0 {
		return AffordabilityResult{}, valueobject.NewDomainError("affordability", "annual rate must not be negative, got %d bps", annualRateBps)
	}
	if years <= 0 {
		return AffordabilityResult{}, valueobject.NewDomainError("affordability", "years must be positive, got %d", years)
	}

	monthlyIncome := annualIncome.Div(decimal.NewFromInt(12))
	gdsPayment := monthlyIncome.Mul(decimal.NewFromFloat(maxGDS))
	tdsPayment := monthlyIncome.Mul(decimal.NewFromFloat(maxTDS)).Sub(monthlyDebts)

	maxPayment := decimal.Min(gdsPayment, tdsPayment)
	if maxPayment.LessThanOrEqual(decimal.Zero) {
		// Debt load already exceeds the TDS cap; nothing is affordable.
		return AffordabilityResult{
			MaxHomePrice:      downPayment.Round(2),
			MaxLoan:           decimal.Zero,
			MaxMonthlyPayment: decimal.Zero,
			EstPropertyTax:    decimal.Zero,
			EstHeating:        decimal.Zero,
		}, nil
	}

	mortgagePayment := maxPayment.Mul(decimal.NewFromFloat(mortgageShare))
	maxLoan := loanFromPayment(mortgagePayment, annualRateBps, years)

	return AffordabilityResult{
		MaxHomePrice:      maxLoan.Add(downPayment).Round(2),
		MaxLoan:           maxLoan,
		MaxMonthlyPayment: mortgagePayment.Round(2),
		EstPropertyTax:    maxPayment.Mul(decimal.NewFromFloat(propertyTaxShare)).Round(2),
		EstHeating:        maxPayment.Mul(decimal.NewFromFloat(heatingShare)).Round(2),
	}, nil
}

// QuizBreakdown turns questionnaire income and savings into the affordability
// estimate shown to the buyer. Savings are split 80/20 into down payment and
// buffer; the income-based ceiling is further capped by the 5%-minimum-down
// price ceiling when that is lower. All amounts are rounded down to whole
// currency units.
func (c *AffordabilityCalculator) QuizBreakdown(
	annualIncome, savings decimal.Decimal,
	annualRateBps int,
) (Breakdown, error) {
	if annualIncome.LessThanOrEqual(decimal.Zero) {
		return Breakdown{}, valueobject.NewDomainError("quiz breakdown", "annual income must be positive, got %s", annualIncome)
	}
	if savings.LessThan(decimal.Zero) {
		return Breakdown{}, valueobject.NewDomainError("quiz breakdown", "savings must not be negative, got %s", savings)
	}

	savings = savings.Floor()
	downPayment := savings.Mul(decimal.NewFromFloat(downPaymentShare)).Floor()
	buffer := savings.Sub(downPayment)

	aff, err := c.ComputeAffordability(
		annualIncome, downPayment, decimal.Zero,
		annualRateBps, DefaultAmortizationYears,
		DefaultMaxGDS, DefaultMaxTDS,
	)
	if err != nil {
		return Breakdown{}, err
	}

	price := aff.MaxHomePrice
	if downPayment.IsPositive() {
		minDownCeiling := downPayment.Div(decimal.NewFromFloat(minimumDownPaymentRate))
		if minDownCeiling.LessThan(price) {
			price = minDownCeiling
		}
	}

	price = price.Floor()
	if price.LessThan(downPayment) {
		// The buyer cannot carry any mortgage; they can still spend their
		// down payment.
		price = downPayment
	}

	return Breakdown{
		AffordablePrice: price,
		Mortgage:        price.Sub(downPayment),
		DownPayment:     downPayment,
		ClosingCosts:    price.Mul(decimal.NewFromFloat(closingCostRate)).Floor(),
		Buffer:          buffer,
	}, nil
}
