package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/model"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/service"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// QuizResultRepo implements port.QuizResultRepository.
type QuizResultRepo struct {
	pool *pgxpool.Pool
}

// NewQuizResultRepo creates a new repository backed by PostgreSQL.
func NewQuizResultRepo(pool *pgxpool.Pool) *QuizResultRepo {
	return &QuizResultRepo{pool: pool}
}

// breakdownRow is the jsonb shape of the affordability snapshot.
type breakdownRow struct {
	AffordablePrice decimal.Decimal `json:"affordable_price"`
	Mortgage        decimal.Decimal `json:"mortgage"`
	DownPayment     decimal.Decimal `json:"down_payment"`
	ClosingCosts    decimal.Decimal `json:"closing_costs"`
	Buffer          decimal.Decimal `json:"buffer"`
}

// incentivesRow is the jsonb shape of the incentive snapshot.
type incentivesRow struct {
	PTTExemption decimal.Decimal `json:"ptt_exemption"`
	GSTRebate    decimal.Decimal `json:"gst_rebate"`
	FHSABenefit  decimal.Decimal `json:"fhsa_benefit"`
	HBPBenefit   decimal.Decimal `json:"hbp_benefit"`
	OwnerGrant   decimal.Decimal `json:"owner_grant"`
	Total        decimal.Decimal `json:"total"`
}

// Save persists a quiz result (upsert by user).
func (r *QuizResultRepo) Save(ctx context.Context, q model.QuizResult) error {
	b := q.Breakdown()
	breakdownJSON, err := json.Marshal(breakdownRow{
		AffordablePrice: b.AffordablePrice,
		Mortgage:        b.Mortgage,
		DownPayment:     b.DownPayment,
		ClosingCosts:    b.ClosingCosts,
		Buffer:          b.Buffer,
	})
	if err != nil {
		return fmt.Errorf("marshal breakdown: %w", err)
	}

	i := q.Incentives()
	incentivesJSON, err := json.Marshal(incentivesRow{
		PTTExemption: i.PTTExemption,
		GSTRebate:    i.GSTRebate,
		FHSABenefit:  i.FHSABenefit,
		HBPBenefit:   i.HBPBenefit,
		OwnerGrant:   i.OwnerGrant,
		Total:        i.Total,
	})
	if err != nil {
		return fmt.Errorf("marshal incentives: %w", err)
	}

	query := `
		INSERT INTO quiz_results (
			user_id, income, savings, has_retirement_savings,
			property_type, timeline, breakdown, incentives,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (user_id) DO UPDATE SET
			income                 = EXCLUDED.income,
			savings                = EXCLUDED.savings,
			has_retirement_savings = EXCLUDED.has_retirement_savings,
			property_type          = EXCLUDED.property_type,
			timeline               = EXCLUDED.timeline,
			breakdown              = EXCLUDED.breakdown,
			incentives             = EXCLUDED.incentives,
			updated_at             = EXCLUDED.updated_at
	`
	_, err = r.pool.Exec(ctx, query,
		q.UserID(), q.Income(), q.Savings(), q.HasRetirementSavings(),
		q.PropertyType().String(), q.Timeline().String(),
		breakdownJSON, incentivesJSON,
		q.CreatedAt(), q.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	return nil
}

// FindByUserID retrieves the quiz result for one user.
func (r *QuizResultRepo) FindByUserID(ctx context.Context, userID string) (model.QuizResult, error) {
	query := `
		SELECT user_id, income, savings, has_retirement_savings,
		       property_type, timeline, breakdown, incentives,
		       created_at, updated_at
		FROM quiz_results
		WHERE user_id = $1
	`
	var (
		id                   string
		income, savings      decimal.Decimal
		hasRetirementSavings bool
		propertyTypeStr      string
		timelineStr          string
		breakdownJSON        []byte
		incentivesJSON       []byte
		createdAt, updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&id, &income, &savings, &hasRetirementSavings,
		&propertyTypeStr, &timelineStr,
		&breakdownJSON, &incentivesJSON,
		&createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.QuizResult{}, valueobject.ErrNotFound
	}
	if err != nil {
		return model.QuizResult{}, fmt.Errorf("scan quiz result: %w", err)
	}

	propertyType, err := valueobject.NewPropertyType(propertyTypeStr)
	if err != nil {
		return model.QuizResult{}, fmt.Errorf("parse property type: %w", err)
	}
	timeline, err := valueobject.NewTimeline(timelineStr)
	if err != nil {
		return model.QuizResult{}, fmt.Errorf("parse timeline: %w", err)
	}

	var bRow breakdownRow
	if err := json.Unmarshal(breakdownJSON, &bRow); err != nil {
		return model.QuizResult{}, fmt.Errorf("unmarshal breakdown: %w", err)
	}
	var iRow incentivesRow
	if err := json.Unmarshal(incentivesJSON, &iRow); err != nil {
		return model.QuizResult{}, fmt.Errorf("unmarshal incentives: %w", err)
	}

	return model.ReconstructQuizResult(
		id, income, savings, hasRetirementSavings,
		propertyType, timeline,
		service.Breakdown{
			AffordablePrice: bRow.AffordablePrice,
			Mortgage:        bRow.Mortgage,
			DownPayment:     bRow.DownPayment,
			ClosingCosts:    bRow.ClosingCosts,
			Buffer:          bRow.Buffer,
		},
		service.IncentiveBreakdown{
			PTTExemption: iRow.PTTExemption,
			GSTRebate:    iRow.GSTRebate,
			FHSABenefit:  iRow.FHSABenefit,
			HBPBenefit:   iRow.HBPBenefit,
			OwnerGrant:   iRow.OwnerGrant,
			Total:        iRow.Total,
		},
		createdAt, updatedAt,
	), nil
}
