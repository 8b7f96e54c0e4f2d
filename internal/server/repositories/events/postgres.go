// Package events provides the PostgreSQL-backed event store. Ownership checks
// are folded into the mutation statements themselves: update and delete filter
// on both id and owner_id in a single statement, so there is no window between
// an ownership check and the write.
package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Pritish2005/Event-Hub/internal/common"
	"github.com/Pritish2005/Event-Hub/internal/dbx"
	"github.com/Pritish2005/Event-Hub/internal/server/models"
)

const eventColumns = `id, name, description, date, location, capacity, owner_id, created_at, updated_at`

// PostgresRepository implements event storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new event. OwnerID must already be stamped by the caller.
func (r *PostgresRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {

	query :=
		`INSERT INTO events (id, name, description, date, location, capacity, owner_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		event.ID, event.Name, event.Description, event.Date, event.Location, event.Capacity, event.OwnerID).
		Scan(&event.CreatedAt, &event.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return event, nil
}

// List returns a page of all events ordered by creation time.
func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
		 ORDER BY created_at, id
		 OFFSET $1 LIMIT $2
		 `
	return r.selectEvents(ctx, query, offset, limit)
}

// Count returns the total number of events.
func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// ListExcludingOwner returns a page of events whose owner is not ownerID.
func (r *PostgresRepository) ListExcludingOwner(ctx context.Context, ownerID string, offset, limit int) ([]*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
		 WHERE owner_id <> $1
		 ORDER BY created_at, id
		 OFFSET $2 LIMIT $3
		 `
	return r.selectEvents(ctx, query, ownerID, offset, limit)
}

// CountExcludingOwner returns the number of events whose owner is not ownerID.
func (r *PostgresRepository) CountExcludingOwner(ctx context.Context, ownerID string) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM events WHERE owner_id <> $1`, ownerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// ListByOwner returns all events owned by ownerID.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
		 WHERE owner_id = $1
		 ORDER BY created_at, id
		 `
	return r.selectEvents(ctx, query, ownerID)
}

// UpdateOwned applies a partial update to the event identified by id, but only
// if it is owned by ownerID. The filter and the write are one statement; nil
// patch fields keep their current value via COALESCE. When no row matches
// (wrong owner or no such event, indistinguishable on purpose) it returns
// common.ErrorNotFound.
func (r *PostgresRepository) UpdateOwned(ctx context.Context, id, ownerID string, patch *models.EventPatch) (*models.Event, error) {

	query :=
		`UPDATE events
		 SET name = COALESCE($3, name),
		     description = COALESCE($4, description),
		     date = COALESCE($5, date),
		     location = COALESCE($6, location),
		     capacity = COALESCE($7, capacity),
		     updated_at = now()
		 WHERE id = $1 AND owner_id = $2
		 RETURNING ` + eventColumns

	event := &models.Event{}
	err := r.db.QueryRowContext(ctx, query,
		id, ownerID, patch.Name, patch.Description, patch.Date, patch.Location, patch.Capacity).
		Scan(&event.ID, &event.Name, &event.Description, &event.Date, &event.Location,
			&event.Capacity, &event.OwnerID, &event.CreatedAt, &event.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return event, nil
}

// DeleteOwned deletes the event identified by id if it is owned by ownerID,
// in one conditional statement. Zero affected rows map to common.ErrorNotFound.
func (r *PostgresRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {

	query := `DELETE FROM events WHERE id = $1 AND owner_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func (r *PostgresRepository) selectEvents(ctx context.Context, query string, args ...any) ([]*models.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select events: %w", err)
	}
	defer rows.Close()

	var result []*models.Event
	for rows.Next() {
		var item models.Event
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Date, &item.Location,
			&item.Capacity, &item.OwnerID, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
