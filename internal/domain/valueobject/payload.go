package valueobject

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Milestone payloads – closed set of tagged variants
// ---------------------------------------------------------------------------

// MilestonePayload is the data attached to a milestone when it advances.
// Each variant is tied to the event that produced it; there is no open map.
type MilestonePayload interface {
	Kind() string
}

const (
	payloadKindQuizResult  = "quiz_result"
	payloadKindAppointment = "appointment"
	payloadKindOffer       = "offer"
	payloadKindNote        = "note"
)

// QuizResultPayload records the calculation summary attached to the
// incentives milestone when a questionnaire is submitted.
type QuizResultPayload struct {
	AffordablePrice decimal.Decimal `json:"affordable_price"`
	TotalIncentives decimal.Decimal `json:"total_incentives"`
}

func (QuizResultPayload) Kind() string { return payloadKindQuizResult }

// AppointmentPayload references the viewing appointment that advanced the
// booking milestone.
type AppointmentPayload struct {
	AppointmentID   string    `json:"appointment_id"`
	PropertyAddress string    `json:"property_address"`
	ScheduledAt     time.Time `json:"scheduled_at"`
}

func (AppointmentPayload) Kind() string { return payloadKindAppointment }

// OfferPayload references the submitted offer that advanced the offer milestone.
type OfferPayload struct {
	OfferID         string          `json:"offer_id"`
	PropertyAddress string          `json:"property_address"`
	Amount          decimal.Decimal `json:"amount"`
}

func (OfferPayload) Kind() string { return payloadKindOffer }

// NotePayload carries free-form text for user-initiated milestone updates.
type NotePayload struct {
	Note string `json:"note"`
}

func (NotePayload) Kind() string { return payloadKindNote }

// ---------------------------------------------------------------------------
// Encoding
// ---------------------------------------------------------------------------

type payloadEnvelope struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// EncodeMilestonePayload serialises a payload with its kind tag.
// A nil payload encodes as nil (stored as SQL NULL).
func EncodeMilestonePayload(p MilestonePayload) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal milestone payload: %w", err)
	}
	return json.Marshal(payloadEnvelope{Kind: p.Kind(), Data: data})
}

// DecodeMilestonePayload deserialises a tagged payload; nil input yields nil.
func DecodeMilestonePayload(raw []byte) (MilestonePayload, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var env payloadEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unmarshal milestone payload envelope: %w", err)
	}

	switch env.Kind {
	case payloadKindQuizResult:
		var p QuizResultPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, fmt.Errorf("unmarshal quiz result payload: %w", err)
		}
		return p, nil
	case payloadKindAppointment:
		var p AppointmentPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, fmt.Errorf("unmarshal appointment payload: %w", err)
		}
		return p, nil
	case payloadKindOffer:
		var p OfferPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, fmt.Errorf("unmarshal offer payload: %w", err)
		}
		return p, nil
	case payloadKindNote:
		var p NotePayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, fmt.Errorf("unmarshal note payload: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown milestone payload kind %q", env.Kind)
	}
}
