package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/event"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/model"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/service"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

func sampleBreakdown() service.Breakdown {
	return service.Breakdown{
		AffordablePrice: decimal.NewFromInt(550_000),
		Mortgage:        decimal.NewFromInt(510_000),
		DownPayment:     decimal.NewFromInt(40_000),
		ClosingCosts:    decimal.NewFromInt(16_500),
		Buffer:          decimal.NewFromInt(10_000),
	}
}

func sampleIncentives() service.IncentiveBreakdown {
	return service.IncentiveBreakdown{
		PTTExemption: decimal.NewFromInt(9_000),
		FHSABenefit:  decimal.NewFromInt(2_280),
		OwnerGrant:   decimal.NewFromInt(570),
		Total:        decimal.NewFromInt(11_850),
	}
}

func TestNewQuizResult(t *testing.T) {
	now := time.Now().UTC()

	q, err := model.NewQuizResult(
		"user-1",
		decimal.NewFromInt(90_000), decimal.NewFromInt(50_000),
		true,
		valueobject.PropertyTypeCondo, valueobject.TimelineSixMonths,
		sampleBreakdown(), sampleIncentives(),
		now,
	)

	require.NoError(t, err)
	assert.Equal(t, "user-1", q.UserID())
	assert.True(t, q.HasRetirementSavings())

	require.Len(t, q.DomainEvents(), 1)
	submitted, ok := q.DomainEvents()[0].(event.QuizSubmitted)
	require.True(t, ok)
	assert.False(t, submitted.Resubmission)
	assert.True(t, submitted.AffordablePrice.Equal(decimal.NewFromInt(550_000)))
}

func TestNewQuizResult_Invalid(t *testing.T) {
	now := time.Now().UTC()

	_, err := model.NewQuizResult(
		"",
		decimal.NewFromInt(90_000), decimal.NewFromInt(50_000),
		false,
		valueobject.PropertyTypeCondo, valueobject.TimelineSixMonths,
		sampleBreakdown(), sampleIncentives(),
		now,
	)
	require.Error(t, err)

	_, err = model.NewQuizResult(
		"user-1",
		decimal.Zero, decimal.NewFromInt(50_000),
		false,
		valueobject.PropertyTypeCondo, valueobject.TimelineSixMonths,
		sampleBreakdown(), sampleIncentives(),
		now,
	)
	require.Error(t, err)
}

func TestQuizResult_Resubmit(t *testing.T) {
	created := time.Now().UTC().Add(-24 * time.Hour)

	q, err := model.NewQuizResult(
		"user-1",
		decimal.NewFromInt(90_000), decimal.NewFromInt(50_000),
		false,
		valueobject.PropertyTypeCondo, valueobject.TimelineSixMonths,
		sampleBreakdown(), sampleIncentives(),
		created,
	)
	require.NoError(t, err)
	q = q.ClearEvents()

	now := time.Now().UTC()
	next, err := q.Resubmit(
		decimal.NewFromInt(110_000), decimal.NewFromInt(70_000),
		true,
		valueobject.PropertyTypePresale, valueobject.TimelineExploring,
		sampleBreakdown(), sampleIncentives(),
		now,
	)

	require.NoError(t, err)
	assert.Equal(t, created, next.CreatedAt(), "resubmission must preserve creation time")
	assert.Equal(t, now, next.UpdatedAt())
	assert.True(t, next.Income().Equal(decimal.NewFromInt(110_000)))

	require.Len(t, next.DomainEvents(), 1)
	submitted, ok := next.DomainEvents()[0].(event.QuizSubmitted)
	require.True(t, ok)
	assert.True(t, submitted.Resubmission)

	// Original copy is untouched.
	assert.True(t, q.Income().Equal(decimal.NewFromInt(90_000)))
}

func TestQuizResult_MilestonePayload(t *testing.T) {
	q, err := model.NewQuizResult(
		"user-1",
		decimal.NewFromInt(90_000), decimal.NewFromInt(50_000),
		false,
		valueobject.PropertyTypeCondo, valueobject.TimelineSixMonths,
		sampleBreakdown(), sampleIncentives(),
		time.Now().UTC(),
	)
	require.NoError(t, err)

	payload := q.MilestonePayload()
	assert.True(t, payload.AffordablePrice.Equal(decimal.NewFromInt(550_000)))
	assert.True(t, payload.TotalIncentives.Equal(decimal.NewFromInt(11_850)))
}
