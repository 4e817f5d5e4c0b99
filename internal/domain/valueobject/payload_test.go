package valueobject_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

func TestEncodeMilestonePayload_NilIsNull(t *testing.T) {
	raw, err := valueobject.EncodeMilestonePayload(nil)
	require.NoError(t, err)
	assert.Nil(t, raw)

	decoded, err := valueobject.DecodeMilestonePayload(nil)
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestMilestonePayload_RoundTrip(t *testing.T) {
	scheduled := time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		payload valueobject.MilestonePayload
	}{
		{"quiz result", valueobject.QuizResultPayload{
			AffordablePrice: decimal.NewFromInt(550_000),
			TotalIncentives: decimal.NewFromInt(11_850),
		}},
		{"appointment", valueobject.AppointmentPayload{
			AppointmentID:   "appt-1",
			PropertyAddress: "123 Main St",
			ScheduledAt:     scheduled,
		}},
		{"offer", valueobject.OfferPayload{
			OfferID:         "offer-1",
			PropertyAddress: "123 Main St",
			Amount:          decimal.NewFromInt(650_000),
		}},
		{"note", valueobject.NotePayload{Note: "called the broker"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := valueobject.EncodeMilestonePayload(tc.payload)
			require.NoError(t, err)
			require.NotNil(t, raw)

			decoded, err := valueobject.DecodeMilestonePayload(raw)
			require.NoError(t, err)
			assert.Equal(t, tc.payload.Kind(), decoded.Kind())
			assert.Equal(t, tc.payload, decoded)
		})
	}
}

func TestDecodeMilestonePayload_UnknownKind(t *testing.T) {
	_, err := valueobject.DecodeMilestonePayload([]byte(`{"kind":"mystery","data":{}}`))
	require.Error(t, err)
}
