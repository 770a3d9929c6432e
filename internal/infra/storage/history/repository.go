// Package history stores the appointment status audit trail. A row is
// written in the same transaction as every appointment create, status
// change and cancellation.
package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
	"github.com/fixtrackhq/FixTrack-AppointmentService/pkg/dbmetrics"
	"github.com/fixtrackhq/FixTrack-AppointmentService/pkg/psqlbuilder"
)

// Reuse the dbmetrics executor interfaces for database access
type DBExecutor = dbmetrics.DBExecutor

// Repository provides access to the appointment_status_history table.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a status history repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Add appends a history entry. Joins the transaction carried by ctx so
// the entry commits or rolls back with the primary write.
func (r *Repository) Add(ctx context.Context, entry *domain.StatusHistoryEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointment_status_history").
		Columns(
			"appointment_id",
			"old_status",
			"new_status",
			"changed_by",
			"note",
		).
		Values(
			entry.AppointmentID,
			entry.OldStatus,
			entry.NewStatus,
			entry.ChangedBy,
			entry.Note,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Add - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&createdAt,
	)

	if err != nil {
		return fmt.Errorf("%w: Add - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time

	return nil
}

// ListByAppointment returns an appointment's history, oldest first.
func (r *Repository) ListByAppointment(ctx context.Context, appointmentID int64) ([]*domain.StatusHistoryEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"appointment_id",
		"old_status",
		"new_status",
		"changed_by",
		"note",
		"created_at",
	).
		From("appointment_status_history").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		OrderBy("created_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.StatusHistoryEntry, 0)
	for rows.Next() {
		var entry domain.StatusHistoryEntry
		var oldStatus sql.NullString
		var createdAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.AppointmentID,
			&oldStatus,
			&entry.NewStatus,
			&entry.ChangedBy,
			&entry.Note,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByAppointment - scan row: %v", ErrScanRow, err)
		}

		if oldStatus.Valid {
			status := domain.AppointmentStatus(oldStatus.String)
			entry.OldStatus = &status
		}
		entry.CreatedAt = createdAt.Time

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
