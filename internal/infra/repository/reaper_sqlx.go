package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// StaleSQLStore é o store do binário do reaper: sqlx puro, sem GORM.
type StaleSQLStore struct {
	db *sqlx.DB
}

func NewStaleSQLStore(db *sqlx.DB) *StaleSQLStore {
	return &StaleSQLStore{db: db}
}

// OpenStaleSQLStore conecta via lib/pq.
func OpenStaleSQLStore(ctx context.Context, dsn string) (*StaleSQLStore, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)
	return &StaleSQLStore{db: db}, nil
}

func (s *StaleSQLStore) Close() error {
	return s.db.Close()
}

type reservationRow struct {
	ID           uint         `db:"id"`
	BarbershopID uint         `db:"barbershop_id"`
	ClientID     uint         `db:"client_id"`
	SlotNumber   int          `db:"slot_number"`
	Date         time.Time    `db:"date"`
	Status       string       `db:"status"`
	CancelledAt  sql.NullTime `db:"cancelled_at"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}

func (r reservationRow) model() models.Reservation {
	m := models.Reservation{
		ID:           r.ID,
		BarbershopID: r.BarbershopID,
		ClientID:     r.ClientID,
		SlotNumber:   r.SlotNumber,
		Date:         schedule.DateOf(r.Date),
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.CancelledAt.Valid {
		t := r.CancelledAt.Time
		m.CancelledAt = &t
	}
	return m
}

func staleSelect(asOf time.Time) (string, []any, error) {
	return psql.Select(
		"id",
		"barbershop_id",
		"client_id",
		"slot_number",
		"date",
		"status",
		"cancelled_at",
		"created_at",
		"updated_at",
	).
		From("reservations").
		Where(squirrel.Lt{"date": day(asOf)}).
		OrderBy("id ASC").
		ToSql()
}

func staleDelete(asOf time.Time) (string, []any, error) {
	return psql.Delete("reservations").
		Where(squirrel.Lt{"date": day(asOf)}).
		ToSql()
}

func (s *StaleSQLStore) ListStale(ctx context.Context, asOf time.Time) ([]models.Reservation, error) {
	query, args, err := staleSelect(asOf)
	if err != nil {
		return nil, fmt.Errorf("build stale select: %w", err)
	}

	var rows []reservationRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query stale reservations: %w", err)
	}

	out := make([]models.Reservation, len(rows))
	for i, r := range rows {
		out[i] = r.model()
	}
	return out, nil
}

func (s *StaleSQLStore) DeleteStale(ctx context.Context, asOf time.Time) (int64, error) {
	query, args, err := staleDelete(asOf)
	if err != nil {
		return 0, fmt.Errorf("build stale delete: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale reservations: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

// Compile-time check
var _ domain.StaleStore = (*StaleSQLStore)(nil)
