package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// SubmitQuizRequest carries a buyer's questionnaire answers.
type SubmitQuizRequest struct {
	UserID               string          `json:"user_id"`
	Income               decimal.Decimal `json:"income"`
	Savings              decimal.Decimal `json:"savings"`
	HasRetirementSavings bool            `json:"has_retirement_savings"`
	PropertyType         string          `json:"property_type"`
	Timeline             string          `json:"timeline"`
}

// GetProgressRequest identifies a journey record to read.
type GetProgressRequest struct {
	UserID string `json:"user_id"`
}

// UpdateMilestoneRequest moves one milestone to a new status.
type UpdateMilestoneRequest struct {
	UserID      string `json:"user_id"`
	MilestoneID int    `json:"milestone_id"`
	Status      string `json:"status"`
	Note        string `json:"note,omitempty"`
}

// CompleteMilestoneRequest marks one milestone completed.
type CompleteMilestoneRequest struct {
	UserID      string `json:"user_id"`
	MilestoneID int    `json:"milestone_id"`
	Note        string `json:"note,omitempty"`
}

// PersonalizeRatesRequest carries the applicant profile used to adjust
// advertised lender rates.
type PersonalizeRatesRequest struct {
	UserID             string          `json:"user_id"`
	AnnualIncome       decimal.Decimal `json:"annual_income"`
	CreditScore        int             `json:"credit_score"`
	DownPaymentPercent decimal.Decimal `json:"down_payment_percent"`
	FirstTimeBuyer     bool            `json:"first_time_buyer"`
	AmortizationYears  int             `json:"amortization_years,omitempty"`
	TermYears          int             `json:"term_years,omitempty"`
	LoanAmount         decimal.Decimal `json:"loan_amount,omitempty"`
	MonthlyDebts       decimal.Decimal `json:"monthly_debts,omitempty"`
}

// CreateAppointmentRequest books a viewing appointment.
type CreateAppointmentRequest struct {
	UserID          string    `json:"user_id"`
	PropertyAddress string    `json:"property_address"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	Notes           string    `json:"notes,omitempty"`
}

// CreateOfferRequest creates a draft purchase offer.
type CreateOfferRequest struct {
	UserID          string          `json:"user_id"`
	PropertyAddress string          `json:"property_address"`
	Amount          decimal.Decimal `json:"amount"`
}

// SubmitOfferRequest submits a previously drafted offer.
type SubmitOfferRequest struct {
	UserID  string `json:"user_id"`
	OfferID string `json:"offer_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// BreakdownResponse is the affordability summary shown after a quiz.
type BreakdownResponse struct {
	AffordablePrice decimal.Decimal `json:"affordable_price"`
	Mortgage        decimal.Decimal `json:"mortgage"`
	DownPayment     decimal.Decimal `json:"down_payment"`
	ClosingCosts    decimal.Decimal `json:"closing_costs"`
	Buffer          decimal.Decimal `json:"buffer"`
}

// IncentivesResponse is the government incentive summary shown after a quiz.
type IncentivesResponse struct {
	PTTExemption decimal.Decimal `json:"ptt_exemption"`
	GSTRebate    decimal.Decimal `json:"gst_rebate"`
	FHSABenefit  decimal.Decimal `json:"fhsa_benefit"`
	HBPBenefit   decimal.Decimal `json:"hbp_benefit"`
	OwnerGrant   decimal.Decimal `json:"owner_grant"`
	Total        decimal.Decimal `json:"total"`
}

// QuizResponse is the external representation of a quiz submission result.
type QuizResponse struct {
	UserID          string             `json:"user_id"`
	Breakdown       BreakdownResponse  `json:"breakdown"`
	Incentives      IncentivesResponse `json:"incentives"`
	OverallProgress int                `json:"overall_progress"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// MilestoneResponse is one step of the journey as shown to the buyer.
type MilestoneResponse struct {
	MilestoneID int             `json:"milestone_id"`
	Slug        string          `json:"slug"`
	Status      string          `json:"status"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// JourneyResponse is the external representation of a journey record.
type JourneyResponse struct {
	UserID          string              `json:"user_id"`
	OverallProgress int                 `json:"overall_progress"`
	Milestones      []MilestoneResponse `json:"milestones"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// MilestoneUpdateResponse acknowledges one milestone write.
type MilestoneUpdateResponse struct {
	UserID          string `json:"user_id"`
	MilestoneID     int    `json:"milestone_id"`
	Status          string `json:"status"`
	OverallProgress int    `json:"overall_progress"`
}

// RateQuoteResponse is one personalized mortgage quote.
type RateQuoteResponse struct {
	Lender              string          `json:"lender"`
	RateType            string          `json:"rate_type"`
	TermYears           int             `json:"term_years"`
	AdvertisedRateBps   int             `json:"advertised_rate_bps"`
	PersonalizedRateBps int             `json:"personalized_rate_bps"`
	StressTestRateBps   int             `json:"stress_test_rate_bps"`
	MonthlyPayment      decimal.Decimal `json:"monthly_payment,omitempty"`
	StressTestPayment   decimal.Decimal `json:"stress_test_payment,omitempty"`
	ApprovalOdds        string          `json:"approval_odds,omitempty"`
}

// PersonalizeRatesResponse lists quotes sorted by personalized rate.
type PersonalizeRatesResponse struct {
	Quotes []RateQuoteResponse `json:"quotes"`
}

// AppointmentResponse is the external representation of a viewing appointment.
type AppointmentResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	PropertyAddress string    `json:"property_address"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// OfferResponse is the external representation of a purchase offer.
type OfferResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	PropertyAddress string          `json:"property_address"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
