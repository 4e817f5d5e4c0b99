package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/service"
)

func TestPropertyTransferTax_Tiers(t *testing.T) {
	calc := service.NewIncentiveCalculator()

	cases := []struct {
		name  string
		price int64
		want  int64
	}{
		{"below first tier", 150_000, 1_500},
		{"exactly first tier", 200_000, 2_000},
		{"mid second tier", 500_000, 8_000},      // 2000 + 300k * 2%
		{"top of second tier", 2_000_000, 38_000}, // 2000 + 1.8M * 2%
		{"into third tier", 2_500_000, 53_000},    // 38000 + 500k * 3%
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.PropertyTransferTax(decimal.NewFromInt(tc.price))
			assert.True(t, got.Equal(decimal.NewFromInt(tc.want)), "got %s want %d", got, tc.want)
		})
	}
}

func TestFirstTimeBuyerPTTExemption_FullBelowThreshold(t *testing.T) {
	calc := service.NewIncentiveCalculator()

	price := decimal.NewFromInt(480_000)
	exemption := calc.FirstTimeBuyerPTTExemption(price)

	assert.True(t, exemption.Equal(calc.PropertyTransferTax(price)),
		"exemption below the threshold must equal the full tax, got %s", exemption)
}

func TestFirstTimeBuyerPTTExemption_PhaseOut(t *testing.T) {
	calc := service.NewIncentiveCalculator()

	// 600k sits in the phase-out window: tax * (835k - 600k) / (835k - 500k).
	price := decimal.NewFromInt(600_000)
	tax := calc.PropertyTransferTax(price)
	want := tax.Mul(decimal.NewFromInt(235_000)).Div(decimal.NewFromInt(335_000))

	got := calc.FirstTimeBuyerPTTExemption(price)
	assert.True(t, got.Sub(want).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"got %s want %s", got, want)
	assert.True(t, got.LessThan(tax))
	assert.True(t, got.IsPositive())
}

func TestFirstTimeBuyerPTTExemption_ZeroAboveUpperThreshold(t *testing.T) {
	calc := service.NewIncentiveCalculator()

	got := calc.FirstTimeBuyerPTTExemption(decimal.NewFromInt(835_000))
	assert.True(t, got.IsZero(), "got %s", got)

	got = calc.FirstTimeBuyerPTTExemption(decimal.NewFromInt(1_200_000))
	assert.True(t, got.IsZero(), "got %s", got)
}

func TestFirstTimeBuyerPTTExemption_ContinuousAtThreshold(t *testing.T) {
	calc := service.NewIncentiveCalculator()

	below := calc.FirstTimeBuyerPTTExemption(decimal.NewFromInt(500_000))
	above := calc.FirstTimeBuyerPTTExemption(decimal.NewFromInt(500_001))

	assert.True(t, below.Sub(above).Abs().LessThan(decimal.NewFromInt(1)),
		"discontinuity at the threshold: %s vs %s", below, above)
}

func TestNewlyBuiltPTTExemption_HigherThreshold(t *testing.T) {
	calc := service.NewIncentiveCalculator()

	// 1.05M gets nothing as a resale but the full tax back when newly built.
	price := decimal.NewFromInt(1_050_000)

	assert.True(t, calc.FirstTimeBuyerPTTExemption(price).IsZero())
	assert.True(t, calc.NewlyBuiltPTTExemption(price).Equal(calc.PropertyTransferTax(price)))
}

func TestGSTRebate_ResaleIsZero(t *testing.T) {
	calc := service.NewIncentiveCalculator()

	got := calc.GSTRebate(decimal.NewFromInt(400_000), false, true)
	assert.True(t, got.IsZero(), "got %s", got)
}

func TestGSTRebate_FirstTimeBuyerEnhanced(t *testing.T) {
	calc := service.NewIncentiveCalculator()

	// Below 1M a first-time buyer recovers the full 5% GST.
	price := decimal.NewFromInt(800_000)
	got := calc.GSTRebate(price, true, true)

	assert.True(t, got.Equal(price.Mul(decimal.NewFromFloat(0.05))), "got %s", got)
}

func TestGSTRebate_GeneralRebatePhaseOut(t *testing.T) {
	calc := service.NewIncentiveCalculator()

	// Without first-time-buyer status the general 36% rebate applies and is
	// gone past 450k.
	got := calc.GSTRebate(decimal.NewFromInt(300_000), true, false)
	want := decimal.NewFromInt(300_000).Mul(decimal.NewFromFloat(0.05)).Mul(decimal.NewFromFloat(0.36))
	assert.True(t, got.Equal(want), "got %s want %s", got, want)

	gone := calc.GSTRebate(decimal.NewFromInt(500_000), true, false)
	assert.True(t, gone.IsZero(), "got %s", gone)
}

func TestFHSABenefit_CappedAtAnnualLimit(t *testing.T) {
	calc := service.NewIncentiveCalculator()

	income := decimal.NewFromInt(100_000)
	atCap := calc.FHSABenefit(decimal.NewFromInt(8_000), income)
	overCap := calc.FHSABenefit(decimal.NewFromInt(50_000), income)

	assert.True(t, atCap.Equal(overCap), "cap not applied: %s vs %s", atCap, overCap)
	assert.True(t, atCap.Equal(decimal.NewFromInt(8_000).Mul(calc.MarginalRate(income))))
}

func TestMarginalRate_Brackets(t *testing.T) {
	calc := service.NewIncentiveCalculator()

	low := calc.MarginalRate(decimal.NewFromInt(40_000))
	mid := calc.MarginalRate(decimal.NewFromInt(100_000))
	top := calc.MarginalRate(decimal.NewFromInt(400_000))

	assert.True(t, low.LessThan(mid))
	assert.True(t, mid.LessThan(top))
	assert.True(t, top.Equal(decimal.NewFromFloat(0.4970)))
}

func TestHBPBenefit_WithdrawalCaps(t *testing.T) {
	calc := service.NewIncentiveCalculator()

	t.Run("capped at program limit", func(t *testing.T) {
		res := calc.HBPBenefit(decimal.NewFromInt(60_000), decimal.NewFromInt(100_000))
		assert.True(t, res.Withdrawal.Equal(decimal.NewFromInt(35_000)), "got %s", res.Withdrawal)
	})

	t.Run("capped at balance", func(t *testing.T) {
		res := calc.HBPBenefit(decimal.NewFromInt(35_000), decimal.NewFromInt(12_000))
		assert.True(t, res.Withdrawal.Equal(decimal.NewFromInt(12_000)), "got %s", res.Withdrawal)
	})

	t.Run("zero balance yields nothing", func(t *testing.T) {
		res := calc.HBPBenefit(decimal.NewFromInt(35_000), decimal.Zero)
		assert.True(t, res.Withdrawal.IsZero())
		assert.True(t, res.Benefit.IsZero())
		assert.True(t, res.AnnualRepayment.IsZero())
	})

	t.Run("repayment spread over 15 years", func(t *testing.T) {
		res := calc.HBPBenefit(decimal.NewFromInt(30_000), decimal.NewFromInt(30_000))
		assert.True(t, res.AnnualRepayment.Equal(decimal.NewFromInt(2_000)), "got %s", res.AnnualRepayment)
	})
}

func TestHomeOwnerGrant(t *testing.T) {
	calc := service.NewIncentiveCalculator()

	basic := calc.HomeOwnerGrant(decimal.NewFromInt(900_000), false)
	assert.True(t, basic.Equal(decimal.NewFromInt(570)), "got %s", basic)

	senior := calc.HomeOwnerGrant(decimal.NewFromInt(900_000), true)
	assert.True(t, senior.Equal(decimal.NewFromInt(845)), "got %s", senior)

	over := calc.HomeOwnerGrant(decimal.NewFromInt(2_500_000), false)
	assert.True(t, over.IsZero(), "got %s", over)
}

func TestTotalIncentives_SumsComponents(t *testing.T) {
	calc := service.NewIncentiveCalculator()

	b := calc.TotalIncentives(service.TotalIncentivesInput{
		HomePrice:           decimal.NewFromInt(450_000),
		AnnualIncome:        decimal.NewFromInt(90_000),
		FHSAContribution:    decimal.NewFromInt(10_000),
		RetirementBalance:   decimal.NewFromInt(35_000),
		RequestedWithdrawal: decimal.NewFromInt(35_000),
		NewConstruction:     false,
	})

	want := b.PTTExemption.Add(b.GSTRebate).Add(b.FHSABenefit).Add(b.HBPBenefit).Add(b.OwnerGrant)
	assert.True(t, b.Total.Equal(want), "total %s != sum %s", b.Total, want)
	assert.True(t, b.PTTExemption.IsPositive())
	assert.True(t, b.GSTRebate.IsZero(), "resale home must not earn a GST rebate")
	assert.True(t, b.OwnerGrant.Equal(decimal.NewFromInt(570)))
}

func TestCheckFirstTimeBuyerEligibility(t *testing.T) {
	t.Run("all criteria met", func(t *testing.T) {
		res := service.CheckFirstTimeBuyerEligibility(service.EligibilityInput{
			CitizenOrPermanentResident: true,
			ResidentOfBCTwelveMonths:   true,
		})
		assert.True(t, res.Eligible)
		assert.Empty(t, res.Reasons)
	})

	t.Run("previous owner is ineligible", func(t *testing.T) {
		res := service.CheckFirstTimeBuyerEligibility(service.EligibilityInput{
			CitizenOrPermanentResident: true,
			ResidentOfBCTwelveMonths:   true,
			PreviouslyOwnedHome:        true,
		})
		require.False(t, res.Eligible)
		assert.Len(t, res.Reasons, 1)
	})

	t.Run("every failure reported", func(t *testing.T) {
		res := service.CheckFirstTimeBuyerEligibility(service.EligibilityInput{
			PreviouslyOwnedHome:        true,
			PreviouslyClaimedExemption: true,
		})
		require.False(t, res.Eligible)
		assert.Len(t, res.Reasons, 4)
	})
}
