package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/model"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

func draftOffer(t *testing.T) model.Offer {
	t.Helper()
	o, err := model.NewOffer("user-1", "123 Main St", decimal.NewFromInt(650_000), time.Now().UTC())
	require.NoError(t, err)
	return o
}

func TestNewOffer(t *testing.T) {
	o := draftOffer(t)

	assert.NotEmpty(t, o.ID())
	assert.True(t, o.Status().Equal(valueobject.OfferStatusDraft))
	require.Len(t, o.DomainEvents(), 1)
	assert.Equal(t, "journey.offer.drafted", o.DomainEvents()[0].EventType())
}

func TestNewOffer_Invalid(t *testing.T) {
	now := time.Now().UTC()

	_, err := model.NewOffer("", "123 Main St", decimal.NewFromInt(650_000), now)
	require.Error(t, err)

	_, err = model.NewOffer("user-1", "", decimal.NewFromInt(650_000), now)
	require.Error(t, err)

	_, err = model.NewOffer("user-1", "123 Main St", decimal.Zero, now)
	require.Error(t, err)
}

func TestOffer_SubmitFromDraft(t *testing.T) {
	o := draftOffer(t)

	submitted, err := o.Submit(time.Now().UTC())

	require.NoError(t, err)
	assert.True(t, submitted.Status().Equal(valueobject.OfferStatusSubmitted))
	assert.True(t, o.Status().Equal(valueobject.OfferStatusDraft), "original copy must be untouched")

	types := make([]string, 0, len(submitted.DomainEvents()))
	for _, ev := range submitted.DomainEvents() {
		types = append(types, ev.EventType())
	}
	assert.Contains(t, types, "journey.offer.submitted")
}

func TestOffer_SubmitTwiceFails(t *testing.T) {
	o := draftOffer(t)
	submitted, err := o.Submit(time.Now().UTC())
	require.NoError(t, err)

	_, err = submitted.Submit(time.Now().UTC())
	require.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
}

func TestOffer_ResolveRequiresSubmitted(t *testing.T) {
	o := draftOffer(t)
	now := time.Now().UTC()

	_, err := o.MarkAccepted(now)
	require.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)

	submitted, err := o.Submit(now)
	require.NoError(t, err)

	t.Run("accepted", func(t *testing.T) {
		accepted, err := submitted.MarkAccepted(now)
		require.NoError(t, err)
		assert.True(t, accepted.Status().Equal(valueobject.OfferStatusAccepted))
	})

	t.Run("rejected", func(t *testing.T) {
		rejected, err := submitted.MarkRejected(now)
		require.NoError(t, err)
		assert.True(t, rejected.Status().Equal(valueobject.OfferStatusRejected))
	})

	t.Run("withdrawn", func(t *testing.T) {
		withdrawn, err := submitted.Withdraw(now)
		require.NoError(t, err)
		assert.True(t, withdrawn.Status().Equal(valueobject.OfferStatusWithdrawn))
	})

	t.Run("resolved offers are terminal", func(t *testing.T) {
		accepted, err := submitted.MarkAccepted(now)
		require.NoError(t, err)
		_, err = accepted.Withdraw(now)
		require.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}

func TestOffer_MilestonePayload(t *testing.T) {
	o := draftOffer(t)

	payload := o.MilestonePayload()

	assert.Equal(t, o.ID(), payload.OfferID)
	assert.Equal(t, "123 Main St", payload.PropertyAddress)
	assert.True(t, payload.Amount.Equal(decimal.NewFromInt(650_000)))
}
