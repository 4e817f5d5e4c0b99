package service

import (
	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// IncentiveCalculator – first-year government incentive estimates (BC)
// ---------------------------------------------------------------------------

// Policy constants. Dollar thresholds and rates mirror the BC/federal
// programs as of the 2024 budget year.
var (
	// Property transfer tax marginal tiers.
	pttTier1Limit = decimal.NewFromInt(200_000)   // 1% below
	pttTier2Limit = decimal.NewFromInt(2_000_000) // 2% below
	pttTier3Limit = decimal.NewFromInt(3_000_000) // 3% below, 5% above

	pttTier1Rate = decimal.NewFromFloat(0.01)
	pttTier2Rate = decimal.NewFromFloat(0.02)
	pttTier3Rate = decimal.NewFromFloat(0.03)
	pttTier4Rate = decimal.NewFromFloat(0.05)

	// First-time-buyer PTT exemption: full below the lower threshold,
	// linearly phased out at the upper threshold.
	ftbExemptionFullLimit  = decimal.NewFromInt(500_000)
	ftbExemptionPhaseLimit = decimal.NewFromInt(835_000)

	// Newly-built home PTT exemption thresholds.
	newBuildExemptionFullLimit  = decimal.NewFromInt(1_100_000)
	newBuildExemptionPhaseLimit = decimal.NewFromInt(1_150_000)

	// GST on new construction and its rebate.
	gstRate              = decimal.NewFromFloat(0.05)
	gstRebateRate        = decimal.NewFromFloat(0.36)
	gstRebateFullLimit   = decimal.NewFromInt(350_000)
	gstRebatePhaseLimit  = decimal.NewFromInt(450_000)
	ftbGSTFullLimit      = decimal.NewFromInt(1_000_000)
	ftbGSTPhaseLimit     = decimal.NewFromInt(1_500_000)

	// FHSA annual contribution ceiling.
	fhsaAnnualLimit = decimal.NewFromInt(8_000)

	// Home Buyers' Plan.
	hbpWithdrawalLimit = decimal.NewFromInt(35_000)
	hbpRepaymentYears  = decimal.NewFromInt(15)
	hbpOpportunityRate = decimal.NewFromFloat(0.05)
	hbpBenefitYears    = decimal.NewFromInt(2)

	// Home owner grant.
	hogBasicAmount    = decimal.NewFromInt(570)
	hogSeniorTopUp    = decimal.NewFromInt(275)
	hogAssessedCeiling = decimal.NewFromInt(2_175_000)
)

// marginalRateBrackets maps annual income to a combined marginal tax rate.
// Upper bounds are exclusive; rates increase monotonically.
var marginalRateBrackets = []struct {
	upTo decimal.Decimal
	rate decimal.Decimal
}{
	{decimal.NewFromInt(45_000), decimal.NewFromFloat(0.2006)},
	{decimal.NewFromInt(90_000), decimal.NewFromFloat(0.2850)},
	{decimal.NewFromInt(130_000), decimal.NewFromFloat(0.3250)},
	{decimal.NewFromInt(170_000), decimal.NewFromFloat(0.3870)},
	{decimal.NewFromInt(240_000), decimal.NewFromFloat(0.4450)},
	{decimal.Decimal{}, decimal.NewFromFloat(0.4970)}, // no upper bound
}

// IncentiveBreakdown itemises first-year incentive savings. Each component is
// a non-negative whole currency amount and Total is their sum.
type IncentiveBreakdown struct {
	PTTExemption decimal.Decimal
	GSTRebate    decimal.Decimal
	FHSABenefit  decimal.Decimal
	HBPBenefit   decimal.Decimal
	OwnerGrant   decimal.Decimal
	Total        decimal.Decimal
}

// HBPResult details a Home Buyers' Plan withdrawal.
type HBPResult struct {
	Withdrawal      decimal.Decimal
	AnnualRepayment decimal.Decimal
	Benefit         decimal.Decimal
}

// TotalIncentivesInput collects everything the incentive totals need.
type TotalIncentivesInput struct {
	HomePrice           decimal.Decimal
	AnnualIncome        decimal.Decimal
	FHSAContribution    decimal.Decimal
	RetirementBalance   decimal.Decimal
	RequestedWithdrawal decimal.Decimal
	NewConstruction     bool
	SeniorOrVeteran     bool
}

// IncentiveCalculator computes per-program savings. The calculators assume
// first-time-buyer status holds; eligibility screening is a separate
// predicate and deliberately does not gate these functions.
type IncentiveCalculator struct{}

// NewIncentiveCalculator returns a new calculator instance.
func NewIncentiveCalculator() *IncentiveCalculator {
	return &IncentiveCalculator{}
}

// PropertyTransferTax computes the tax that would apply with no exemption,
// using the tiered marginal schedule.
func (c *IncentiveCalculator) PropertyTransferTax(price decimal.Decimal) decimal.Decimal {
	if price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	tax := decimal.Min(price, pttTier1Limit).Mul(pttTier1Rate)
	if price.GreaterThan(pttTier1Limit) {
		tax = tax.Add(decimal.Min(price, pttTier2Limit).Sub(pttTier1Limit).Mul(pttTier2Rate))
	}
	if price.GreaterThan(pttTier2Limit) {
		tax = tax.Add(decimal.Min(price, pttTier3Limit).Sub(pttTier2Limit).Mul(pttTier3Rate))
	}
	if price.GreaterThan(pttTier3Limit) {
		tax = tax.Add(price.Sub(pttTier3Limit).Mul(pttTier4Rate))
	}
	return tax
}

// FirstTimeBuyerPTTExemption computes the transfer-tax saving for a
// first-time buyer: the full tax below the lower threshold, linearly phased
// out between the thresholds, zero above. The phase-out is continuous: at
// the lower threshold the saving equals the full tax.
func (c *IncentiveCalculator) FirstTimeBuyerPTTExemption(price decimal.Decimal) decimal.Decimal {
	return c.phasedExemption(price, ftbExemptionFullLimit, ftbExemptionPhaseLimit)
}

// NewlyBuiltPTTExemption applies the more generous newly-built-home
// threshold pair.
func (c *IncentiveCalculator) NewlyBuiltPTTExemption(price decimal.Decimal) decimal.Decimal {
	return c.phasedExemption(price, newBuildExemptionFullLimit, newBuildExemptionPhaseLimit)
}

func (c *IncentiveCalculator) phasedExemption(price, fullLimit, phaseLimit decimal.Decimal) decimal.Decimal {
	if price.LessThanOrEqual(decimal.Zero) || price.GreaterThanOrEqual(phaseLimit) {
		return decimal.Zero
	}

	tax := c.PropertyTransferTax(price)
	if price.LessThanOrEqual(fullLimit) {
		return tax
	}

	// Linear phase-out across (fullLimit, phaseLimit).
	remaining := phaseLimit.Sub(price)
	window := phaseLimit.Sub(fullLimit)
	return tax.Mul(remaining).Div(window)
}

// GSTRebate computes the new-construction sales-tax rebate. Resale homes
// always yield zero. First-time buyers get the better of the general 36%
// rebate and the enhanced full rebate that phases out by 1.5M.
func (c *IncentiveCalculator) GSTRebate(price decimal.Decimal, newConstruction, firstTimeBuyer bool) decimal.Decimal {
	if !newConstruction || price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	gst := price.Mul(gstRate)

	general := phasedAmount(gst.Mul(gstRebateRate), price, gstRebateFullLimit, gstRebatePhaseLimit)
	if !firstTimeBuyer {
		return general
	}

	enhanced := phasedAmount(gst, price, ftbGSTFullLimit, ftbGSTPhaseLimit)
	return decimal.Max(general, enhanced)
}

// phasedAmount returns full below fullLimit, linearly phased to zero at
// phaseLimit, zero above.
func phasedAmount(full, price, fullLimit, phaseLimit decimal.Decimal) decimal.Decimal {
	switch {
	case price.LessThanOrEqual(fullLimit):
		return full
	case price.GreaterThanOrEqual(phaseLimit):
		return decimal.Zero
	default:
		return full.Mul(phaseLimit.Sub(price)).Div(phaseLimit.Sub(fullLimit))
	}
}

// FHSABenefit is the first-year tax saving of a first-home savings account
// contribution: the contribution capped at the annual ceiling, times the
// buyer's marginal rate.
func (c *IncentiveCalculator) FHSABenefit(contribution, annualIncome decimal.Decimal) decimal.Decimal {
	if contribution.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	capped := decimal.Min(contribution, fhsaAnnualLimit)
	return capped.Mul(c.MarginalRate(annualIncome))
}

// MarginalRate selects the combined marginal tax rate for an annual income.
func (c *IncentiveCalculator) MarginalRate(annualIncome decimal.Decimal) decimal.Decimal {
	for _, b := range marginalRateBrackets[:len(marginalRateBrackets)-1] {
		if annualIncome.LessThan(b.upTo) {
			return b.rate
		}
	}
	return marginalRateBrackets[len(marginalRateBrackets)-1].rate
}

// HBPBenefit models a Home Buyers' Plan retirement withdrawal: capped at
// min(requested, program ceiling, available balance), with the benefit
// modelled as two years of foregone-opportunity cost on the withdrawal.
func (c *IncentiveCalculator) HBPBenefit(requested, balance decimal.Decimal) HBPResult {
	withdrawal := decimal.Min(decimal.Min(requested, hbpWithdrawalLimit), balance)
	if withdrawal.LessThanOrEqual(decimal.Zero) {
		return HBPResult{Withdrawal: decimal.Zero, AnnualRepayment: decimal.Zero, Benefit: decimal.Zero}
	}

	return HBPResult{
		Withdrawal:      withdrawal,
		AnnualRepayment: withdrawal.Div(hbpRepaymentYears).Round(2),
		Benefit:         withdrawal.Mul(hbpOpportunityRate).Mul(hbpBenefitYears),
	}
}

// HomeOwnerGrant is the flat annual property-tax grant: zero above the
// assessed-value ceiling, with a senior/veteran top-up.
func (c *IncentiveCalculator) HomeOwnerGrant(assessedValue decimal.Decimal, seniorOrVeteran bool) decimal.Decimal {
	if assessedValue.GreaterThan(hogAssessedCeiling) {
		return decimal.Zero
	}
	grant := hogBasicAmount
	if seniorOrVeteran {
		grant = grant.Add(hogSeniorTopUp)
	}
	return grant
}

// TotalIncentives sums every program for a purchase, choosing the
// newly-built PTT exemption when the home is new construction. Components
// are rounded to whole currency units before summing so the total always
// equals the sum of the parts.
func (c *IncentiveCalculator) TotalIncentives(in TotalIncentivesInput) IncentiveBreakdown {
	var ptt decimal.Decimal
	if in.NewConstruction {
		ptt = c.NewlyBuiltPTTExemption(in.HomePrice)
	} else {
		ptt = c.FirstTimeBuyerPTTExemption(in.HomePrice)
	}

	b := IncentiveBreakdown{
		PTTExemption: ptt.Round(0),
		GSTRebate:    c.GSTRebate(in.HomePrice, in.NewConstruction, true).Round(0),
		FHSABenefit:  c.FHSABenefit(in.FHSAContribution, in.AnnualIncome).Round(0),
		HBPBenefit:   c.HBPBenefit(in.RequestedWithdrawal, in.RetirementBalance).Benefit.Round(0),
		OwnerGrant:   c.HomeOwnerGrant(in.HomePrice, in.SeniorOrVeteran).Round(0),
	}
	b.Total = b.PTTExemption.Add(b.GSTRebate).Add(b.FHSABenefit).Add(b.HBPBenefit).Add(b.OwnerGrant)
	return b
}

// ---------------------------------------------------------------------------
// Eligibility
// ---------------------------------------------------------------------------

// EligibilityInput captures the first-time-buyer screening questions.
type EligibilityInput struct {
	CitizenOrPermanentResident bool
	ResidentOfBCTwelveMonths   bool
	PreviouslyOwnedHome        bool
	PreviouslyClaimedExemption bool
}

// EligibilityResult is the outcome of the screening predicate.
type EligibilityResult struct {
	Eligible bool
	Reasons  []string
}

// CheckFirstTimeBuyerEligibility screens a buyer against the first-time
// buyer program criteria. It reports reasons for ineligibility but does not
// gate the incentive calculators; the orchestrator invokes those assuming
// first-time-buyer status.
func CheckFirstTimeBuyerEligibility(in EligibilityInput) EligibilityResult {
	var reasons []string

	if !in.CitizenOrPermanentResident {
		reasons = append(reasons, "must be a Canadian citizen or permanent resident")
	}
	if !in.ResidentOfBCTwelveMonths {
		reasons = append(reasons, "must have lived in BC for at least 12 consecutive months")
	}
	if in.PreviouslyOwnedHome {
		reasons = append(reasons, "must never have owned a principal residence anywhere in the world")
	}
	if in.PreviouslyClaimedExemption {
		reasons = append(reasons, "must not have previously claimed a first-time buyer exemption")
	}

	return EligibilityResult{Eligible: len(reasons) == 0, Reasons: reasons}
}
