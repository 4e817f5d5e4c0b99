package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/model"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// OfferRepo implements port.OfferRepository.
type OfferRepo struct {
	pool *pgxpool.Pool
}

// NewOfferRepo creates a new repository backed by PostgreSQL.
func NewOfferRepo(pool *pgxpool.Pool) *OfferRepo {
	return &OfferRepo{pool: pool}
}

// Save persists an offer (upsert by ID with optimistic locking).
func (r *OfferRepo) Save(ctx context.Context, o model.Offer) error {
	query := `
		INSERT INTO offers (
			id, user_id, property_address, amount, status,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET
			status     = EXCLUDED.status,
			version    = offers.version + 1,
			updated_at = EXCLUDED.updated_at
		WHERE offers.version = $6
	`
	tag, err := r.pool.Exec(ctx, query,
		o.ID(), o.UserID(), o.PropertyAddress(), o.Amount(),
		o.Status().String(), o.Version(), o.CreatedAt(), o.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save offer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on offer")
	}
	return nil
}

// FindByID retrieves a single offer.
func (r *OfferRepo) FindByID(ctx context.Context, id string) (model.Offer, error) {
	query := `
		SELECT id, user_id, property_address, amount, status,
		       version, created_at, updated_at
		FROM offers
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanOffer(row)
}

// FindByUserID retrieves all offers for a user, newest first.
func (r *OfferRepo) FindByUserID(ctx context.Context, userID string) ([]model.Offer, error) {
	query := `
		SELECT id, user_id, property_address, amount, status,
		       version, created_at, updated_at
		FROM offers
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query offers: %w", err)
	}
	defer rows.Close()

	var result []model.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

func scanOffer(s scannable) (model.Offer, error) {
	var (
		id, userID, propertyAddress string
		amount                      decimal.Decimal
		statusStr                   string
		version                     int
		createdAt, updatedAt        time.Time
	)
	err := s.Scan(&id, &userID, &propertyAddress, &amount, &statusStr, &version, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Offer{}, valueobject.ErrNotFound
	}
	if err != nil {
		return model.Offer{}, fmt.Errorf("scan offer: %w", err)
	}

	status, err := valueobject.NewOfferStatus(statusStr)
	if err != nil {
		return model.Offer{}, fmt.Errorf("parse offer status: %w", err)
	}
	return model.ReconstructOffer(id, userID, propertyAddress, amount, status, version, createdAt, updatedAt), nil
}
