package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/model"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/valueobject"
)

// AppointmentRepo implements port.AppointmentRepository.
type AppointmentRepo struct {
	pool *pgxpool.Pool
}

// NewAppointmentRepo creates a new repository backed by PostgreSQL.
func NewAppointmentRepo(pool *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{pool: pool}
}

// Save persists an appointment. Appointments are insert-only.
func (r *AppointmentRepo) Save(ctx context.Context, a model.Appointment) error {
	query := `
		INSERT INTO appointments (id, user_id, property_address, scheduled_at, notes, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query,
		a.ID(), a.UserID(), a.PropertyAddress(), a.ScheduledAt(), a.Notes(), a.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save appointment: %w", err)
	}
	return nil
}

// FindByID retrieves a single appointment.
func (r *AppointmentRepo) FindByID(ctx context.Context, id string) (model.Appointment, error) {
	query := `
		SELECT id, user_id, property_address, scheduled_at, notes, created_at
		FROM appointments
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanAppointment(row)
}

// FindByUserID retrieves all appointments for a user, newest first.
func (r *AppointmentRepo) FindByUserID(ctx context.Context, userID string) ([]model.Appointment, error) {
	query := `
		SELECT id, user_id, property_address, scheduled_at, notes, created_at
		FROM appointments
		WHERE user_id = $1
		ORDER BY scheduled_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query appointments: %w", err)
	}
	defer rows.Close()

	var result []model.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func scanAppointment(s scannable) (model.Appointment, error) {
	var (
		id, userID, propertyAddress string
		scheduledAt                 time.Time
		notes                       string
		createdAt                   time.Time
	)
	err := s.Scan(&id, &userID, &propertyAddress, &scheduledAt, &notes, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Appointment{}, valueobject.ErrNotFound
	}
	if err != nil {
		return model.Appointment{}, fmt.Errorf("scan appointment: %w", err)
	}
	return model.ReconstructAppointment(id, userID, propertyAddress, scheduledAt, notes, createdAt), nil
}
