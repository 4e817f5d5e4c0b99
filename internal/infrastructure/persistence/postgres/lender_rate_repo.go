package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/port"
)

// LenderRateRepo reads the advertised lender rates seeded in the database.
// It implements port.LenderRateSource; in front of it sits the Redis cache.
type LenderRateRepo struct {
	pool *pgxpool.Pool
}

// NewLenderRateRepo creates a new repository backed by PostgreSQL.
func NewLenderRateRepo(pool *pgxpool.Pool) *LenderRateRepo {
	return &LenderRateRepo{pool: pool}
}

// CurrentRates returns every advertised rate, cheapest first.
func (r *LenderRateRepo) CurrentRates(ctx context.Context) ([]port.LenderRate, error) {
	query := `
		SELECT id, lender, rate_type, term_years, advertised_rate_bps, updated_at
		FROM lender_rates
		ORDER BY advertised_rate_bps, lender
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query lender rates: %w", err)
	}
	defer rows.Close()

	var result []port.LenderRate
	for rows.Next() {
		var rate port.LenderRate
		if err := rows.Scan(
			&rate.ID, &rate.Lender, &rate.RateType,
			&rate.TermYears, &rate.AdvertisedRateBps, &rate.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lender rate: %w", err)
		}
		result = append(result, rate)
	}
	return result, rows.Err()
}
