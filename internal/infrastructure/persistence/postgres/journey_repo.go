package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/model"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
	"github.com/effendiaiwebsite/housesinbc/pkg/postgres"
)

const uniqueViolation = "23505"

// JourneyRepo implements port.JourneyRepository.
//
// Milestone writes lock the journey_records row first, which serializes
// concurrent writers per user; each write touches exactly one milestone row
// and recomputes overall_progress from a COUNT in the same transaction, so a
// writer can never clobber another milestone or the progress figure.
type JourneyRepo struct {
	pool *pgxpool.Pool
}

// NewJourneyRepo creates a new repository backed by PostgreSQL.
func NewJourneyRepo(pool *pgxpool.Pool) *JourneyRepo {
	return &JourneyRepo{pool: pool}
}

// Create inserts a record with all of its milestone rows.
func (r *JourneyRepo) Create(ctx context.Context, rec model.JourneyRecord) error {
	return postgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO journey_records (user_id, overall_progress, version, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)
		`, rec.UserID(), rec.OverallProgress(), rec.Version(), rec.CreatedAt(), rec.UpdatedAt())
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return valueobject.ErrJourneyExists
			}
			return fmt.Errorf("insert journey record: %w", err)
		}

		for _, id := range valueobject.AllMilestones() {
			state, ok := rec.Milestone(id)
			if !ok {
				continue
			}
			raw, err := valueobject.EncodeMilestonePayload(state.Payload)
			if err != nil {
				return fmt.Errorf("encode milestone %d payload: %w", id.Int(), err)
			}
			_, err = tx.Exec(ctx, `
				INSERT INTO journey_milestones (user_id, milestone_id, status, payload, completed_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, rec.UserID(), id.Int(), state.Status.String(), raw, state.CompletedAt, state.UpdatedAt)
			if err != nil {
				return fmt.Errorf("insert milestone %d: %w", id.Int(), err)
			}
		}
		return nil
	})
}

// FindByUserID loads a record with its milestone rows.
func (r *JourneyRepo) FindByUserID(ctx context.Context, userID string) (model.JourneyRecord, error) {
	var (
		version              int
		createdAt, updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT version, created_at, updated_at
		FROM journey_records
		WHERE user_id = $1
	`, userID).Scan(&version, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.JourneyRecord{}, valueobject.ErrNotFound
	}
	if err != nil {
		return model.JourneyRecord{}, fmt.Errorf("query journey record: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT milestone_id, status, payload, completed_at, updated_at
		FROM journey_milestones
		WHERE user_id = $1
		ORDER BY milestone_id
	`, userID)
	if err != nil {
		return model.JourneyRecord{}, fmt.Errorf("query milestones: %w", err)
	}
	defer rows.Close()

	milestones := make(map[valueobject.MilestoneID]model.MilestoneState, valueobject.MilestoneCount)
	for rows.Next() {
		var (
			milestoneID int
			statusStr   string
			raw         []byte
			completedAt *time.Time
			rowUpdated  time.Time
		)
		if err := rows.Scan(&milestoneID, &statusStr, &raw, &completedAt, &rowUpdated); err != nil {
			return model.JourneyRecord{}, fmt.Errorf("scan milestone: %w", err)
		}

		id, err := valueobject.NewMilestoneID(milestoneID)
		if err != nil {
			return model.JourneyRecord{}, fmt.Errorf("parse milestone id: %w", err)
		}
		status, err := valueobject.NewMilestoneStatus(statusStr)
		if err != nil {
			return model.JourneyRecord{}, fmt.Errorf("parse milestone status: %w", err)
		}
		payload, err := valueobject.DecodeMilestonePayload(raw)
		if err != nil {
			return model.JourneyRecord{}, fmt.Errorf("decode milestone payload: %w", err)
		}

		milestones[id] = model.MilestoneState{
			Status:      status,
			Payload:     payload,
			CompletedAt: completedAt,
			UpdatedAt:   rowUpdated,
		}
	}
	if err := rows.Err(); err != nil {
		return model.JourneyRecord{}, fmt.Errorf("iterate milestones: %w", err)
	}

	return model.ReconstructJourneyRecord(userID, milestones, version, createdAt, updatedAt), nil
}

// CompleteMilestone marks one milestone COMPLETED and recomputes progress.
func (r *JourneyRepo) CompleteMilestone(
	ctx context.Context,
	userID string,
	id valueobject.MilestoneID,
	payload valueobject.MilestonePayload,
	now time.Time,
) (int, bool, error) {
	raw, err := valueobject.EncodeMilestonePayload(payload)
	if err != nil {
		return 0, false, fmt.Errorf("encode milestone payload: %w", err)
	}

	var (
		progress int
		changed  bool
	)
	err = postgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		prior, err := lockMilestone(ctx, tx, userID, id, now)
		if err != nil {
			return err
		}
		changed = prior != valueobject.MilestoneStatusCompleted.String()

		// Already-completed rows keep their completion time; a fresh
		// payload still replaces the stored one.
		_, err = tx.Exec(ctx, `
			INSERT INTO journey_milestones (user_id, milestone_id, status, payload, completed_at, updated_at)
			VALUES ($1, $2, 'COMPLETED', $3, $4, $4)
			ON CONFLICT (user_id, milestone_id) DO UPDATE SET
				status       = 'COMPLETED',
				payload      = COALESCE(EXCLUDED.payload, journey_milestones.payload),
				completed_at = CASE
					WHEN journey_milestones.status = 'COMPLETED' THEN journey_milestones.completed_at
					ELSE EXCLUDED.completed_at
				END,
				updated_at   = EXCLUDED.updated_at
		`, userID, id.Int(), raw, now)
		if err != nil {
			return fmt.Errorf("upsert milestone: %w", err)
		}

		progress, err = recomputeProgress(ctx, tx, userID)
		return err
	})
	if err != nil {
		return 0, false, err
	}
	return progress, changed, nil
}

// StartMilestone marks one milestone IN_PROGRESS unless already COMPLETED.
func (r *JourneyRepo) StartMilestone(
	ctx context.Context,
	userID string,
	id valueobject.MilestoneID,
	payload valueobject.MilestonePayload,
	now time.Time,
) (int, error) {
	raw, err := valueobject.EncodeMilestonePayload(payload)
	if err != nil {
		return 0, fmt.Errorf("encode milestone payload: %w", err)
	}

	var progress int
	err = postgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		prior, err := lockMilestone(ctx, tx, userID, id, now)
		if err != nil {
			return err
		}
		if prior == valueobject.MilestoneStatusCompleted.String() {
			return valueobject.ErrInvalidStatusTransition
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO journey_milestones (user_id, milestone_id, status, payload, completed_at, updated_at)
			VALUES ($1, $2, 'IN_PROGRESS', $3, NULL, $4)
			ON CONFLICT (user_id, milestone_id) DO UPDATE SET
				status     = 'IN_PROGRESS',
				payload    = COALESCE(EXCLUDED.payload, journey_milestones.payload),
				updated_at = EXCLUDED.updated_at
			WHERE journey_milestones.status <> 'COMPLETED'
		`, userID, id.Int(), raw, now)
		if err != nil {
			return fmt.Errorf("upsert milestone: %w", err)
		}

		progress, err = recomputeProgress(ctx, tx, userID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return progress, nil
}

// lockMilestone bumps the journey_records row, which both asserts the record
// exists and serializes milestone writers for the user, then reads the prior
// status of the addressed milestone.
func lockMilestone(ctx context.Context, tx pgx.Tx, userID string, id valueobject.MilestoneID, now time.Time) (string, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE journey_records
		SET version = version + 1, updated_at = $2
		WHERE user_id = $1
	`, userID, now)
	if err != nil {
		return "", fmt.Errorf("lock journey record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return "", valueobject.ErrNotFound
	}

	var prior string
	err = tx.QueryRow(ctx, `
		SELECT status FROM journey_milestones
		WHERE user_id = $1 AND milestone_id = $2
	`, userID, id.Int()).Scan(&prior)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read milestone status: %w", err)
	}
	return prior, nil
}

// recomputeProgress derives overall progress from the completed count.
// Postgres ROUND on numeric rounds half away from zero, matching the domain
// calculation.
func recomputeProgress(ctx context.Context, tx pgx.Tx, userID string) (int, error) {
	var progress int
	err := tx.QueryRow(ctx, `
		UPDATE journey_records r
		SET overall_progress = (
			SELECT ROUND(COUNT(*) * 100.0 / $2)::int
			FROM journey_milestones m
			WHERE m.user_id = r.user_id AND m.status = 'COMPLETED'
		)
		WHERE r.user_id = $1
		RETURNING overall_progress
	`, userID, valueobject.MilestoneCount).Scan(&progress)
	if err != nil {
		return 0, fmt.Errorf("recompute progress: %w", err)
	}
	return progress, nil
}
