package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/service"
)

func TestPersonalizeRate_CreditBrackets(t *testing.T) {
	engine := service.NewRateEngine()
	down := decimal.NewFromInt(20)

	cases := []struct {
		name  string
		score int
		want  int
	}{
		{"excellent credit", 780, 475 - 25},
		{"good credit", 730, 475 - 10},
		{"fair credit", 690, 475},
		{"below prime", 650, 475 + 25},
		{"subprime", 580, 475 + 75},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.PersonalizeRate(475, tc.score, down, false)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPersonalizeRate_DownPaymentAdjustments(t *testing.T) {
	engine := service.NewRateEngine()

	base := engine.PersonalizeRate(475, 690, decimal.NewFromInt(20), false)
	insured := engine.PersonalizeRate(475, 690, decimal.NewFromInt(10), false)
	large := engine.PersonalizeRate(475, 690, decimal.NewFromInt(35), false)

	assert.Equal(t, base+15, insured, "below 20%% down carries an insured premium")
	assert.Equal(t, base-10, large, "35%% down or more earns a discount")
}

func TestPersonalizeRate_FirstTimeBuyerDiscount(t *testing.T) {
	engine := service.NewRateEngine()
	down := decimal.NewFromInt(20)

	without := engine.PersonalizeRate(475, 690, down, false)
	with := engine.PersonalizeRate(475, 690, down, true)

	assert.Equal(t, without-5, with)
}

func TestPersonalizeRate_Floor(t *testing.T) {
	engine := service.NewRateEngine()

	got := engine.PersonalizeRate(260, 780, decimal.NewFromInt(40), true)
	assert.Equal(t, service.RateFloorBps, got)
}

func TestStressTestRate(t *testing.T) {
	engine := service.NewRateEngine()

	assert.Equal(t, 525, engine.StressTestRate(300), "floor applies to low rates")
	assert.Equal(t, 600, engine.StressTestRate(400), "spread applies above the floor")
	assert.Equal(t, 525, engine.StressTestRate(325), "spread lands exactly on the floor")
}

func TestDetermineApprovalOdds(t *testing.T) {
	engine := service.NewRateEngine()

	t.Run("strong applicant", func(t *testing.T) {
		odds := engine.DetermineApprovalOdds(
			750,
			decimal.NewFromInt(150_000),
			decimal.NewFromInt(400_000),
			decimal.Zero,
		)
		assert.Equal(t, service.OddsHigh, odds)
	})

	t.Run("low credit score", func(t *testing.T) {
		odds := engine.DetermineApprovalOdds(
			580,
			decimal.NewFromInt(150_000),
			decimal.NewFromInt(300_000),
			decimal.Zero,
		)
		assert.Equal(t, service.OddsLow, odds)
	})

	t.Run("overleveraged", func(t *testing.T) {
		odds := engine.DetermineApprovalOdds(
			720,
			decimal.NewFromInt(60_000),
			decimal.NewFromInt(450_000),
			decimal.NewFromInt(800),
		)
		assert.Equal(t, service.OddsLow, odds)
	})

	t.Run("middle of the road", func(t *testing.T) {
		odds := engine.DetermineApprovalOdds(
			650,
			decimal.NewFromInt(100_000),
			decimal.NewFromInt(450_000),
			decimal.NewFromInt(200),
		)
		assert.Equal(t, service.OddsMedium, odds)
	})

	t.Run("no income is low", func(t *testing.T) {
		odds := engine.DetermineApprovalOdds(800, decimal.Zero, decimal.NewFromInt(100_000), decimal.Zero)
		assert.Equal(t, service.OddsLow, odds)
	})
}
