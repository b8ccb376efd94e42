// Package notebook implements the Notebook repository using PostgreSQL.
// Filters and settings are stored as JSONB alongside the pinned id array.
package notebook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/deviuno/ouse-passar-practice/internal/adapter/postgres"
	"github.com/deviuno/ouse-passar-practice/internal/domain"
)

const notebookColumns = `id, owner_id, name, filters, settings,
COALESCE(question_ids, '{}'), match_count, created_at, updated_at`

const createSQL = `
INSERT INTO notebooks (id, owner_id, name, filters, settings, question_ids, match_count, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
RETURNING ` + notebookColumns

const getByIDSQL = `
SELECT ` + notebookColumns + `
FROM notebooks
WHERE id = $1 AND owner_id = $2`

const listSQL = `
SELECT ` + notebookColumns + `
FROM notebooks
WHERE owner_id = $1
ORDER BY updated_at DESC
LIMIT $2 OFFSET $3`

const updateSQL = `
UPDATE notebooks
SET name = $3, filters = $4, settings = $5, question_ids = $6, updated_at = now()
WHERE id = $1 AND owner_id = $2
RETURNING ` + notebookColumns

const updateMatchCountSQL = `
UPDATE notebooks
SET match_count = $3, updated_at = now()
WHERE id = $1 AND owner_id = $2`

const deleteSQL = `
DELETE FROM notebooks
WHERE id = $1 AND owner_id = $2`

// Repo provides notebook persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notebook repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts the notebook and returns the stored row.
func (r *Repo) Create(ctx context.Context, nb *domain.Notebook) (*domain.Notebook, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	filters, settings, err := encodeJSON(nb)
	if err != nil {
		return nil, err
	}

	row := q.QueryRow(ctx, createSQL,
		nb.ID, nb.OwnerID, nb.Name, filters, settings, nb.QuestionIDs, nb.MatchCount)

	created, err := scanNotebook(row)
	if err != nil {
		return nil, postgres.MapError(err, "notebook", nb.ID)
	}
	return created, nil
}

// GetByID returns the owner's notebook by primary key.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Notebook, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	nb, err := scanNotebook(q.QueryRow(ctx, getByIDSQL, id, ownerID))
	if err != nil {
		return nil, postgres.MapError(err, "notebook", id)
	}
	return nb, nil
}

// List returns the owner's notebooks, most recently updated first.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*domain.Notebook, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL, ownerID, limit, offset)
	if err != nil {
		return nil, postgres.MapError(err, "notebooks", ownerID)
	}
	defer rows.Close()

	var notebooks []*domain.Notebook
	for rows.Next() {
		nb, err := scanNotebook(rows)
		if err != nil {
			return nil, postgres.MapError(err, "notebooks", ownerID)
		}
		notebooks = append(notebooks, nb)
	}
	return notebooks, rows.Err()
}

// Update persists name, filters, settings and pinned ids.
func (r *Repo) Update(ctx context.Context, nb *domain.Notebook) (*domain.Notebook, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	filters, settings, err := encodeJSON(nb)
	if err != nil {
		return nil, err
	}

	row := q.QueryRow(ctx, updateSQL,
		nb.ID, nb.OwnerID, nb.Name, filters, settings, nb.QuestionIDs)

	updated, err := scanNotebook(row)
	if err != nil {
		return nil, postgres.MapError(err, "notebook", nb.ID)
	}
	return updated, nil
}

// UpdateMatchCount refreshes the materialized filter-match count.
func (r *Repo) UpdateMatchCount(ctx context.Context, ownerID, id uuid.UUID, count int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateMatchCountSQL, id, ownerID, count)
	if err != nil {
		return postgres.MapError(err, "notebook", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notebook %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the owner's notebook.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id, ownerID)
	if err != nil {
		return postgres.MapError(err, "notebook", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notebook %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func encodeJSON(nb *domain.Notebook) (filters, settings []byte, err error) {
	filters, err = json.Marshal(nb.Filters)
	if err != nil {
		return nil, nil, fmt.Errorf("encode filters: %w", err)
	}
	settings, err = json.Marshal(nb.Settings)
	if err != nil {
		return nil, nil, fmt.Errorf("encode settings: %w", err)
	}
	return filters, settings, nil
}

func scanNotebook(row pgx.Row) (*domain.Notebook, error) {
	var (
		nb           domain.Notebook
		filtersJSON  []byte
		settingsJSON []byte
	)
	if err := row.Scan(
		&nb.ID, &nb.OwnerID, &nb.Name, &filtersJSON, &settingsJSON,
		&nb.QuestionIDs, &nb.MatchCount, &nb.CreatedAt, &nb.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(filtersJSON, &nb.Filters); err != nil {
		return nil, fmt.Errorf("decode filters: %w", err)
	}
	if err := json.Unmarshal(settingsJSON, &nb.Settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &nb, nil
}
