// Package subscription exposes the single entitlement bit the engine
// cares about: whether a learner has unlimited access. Billing itself
// lives elsewhere.
package subscription

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/deviuno/ouse-passar-practice/internal/adapter/postgres"
)

const isUnlimitedSQL = `
SELECT EXISTS (
  SELECT 1 FROM subscriptions
  WHERE user_id = $1 AND unlimited AND (expires_at IS NULL OR expires_at > now())
)`

// Repo provides subscriber status backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new subscription repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// IsUnlimited reports whether the user currently holds unlimited access.
func (r *Repo) IsUnlimited(ctx context.Context, userID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var unlimited bool
	if err := q.QueryRow(ctx, isUnlimitedSQL, userID).Scan(&unlimited); err != nil {
		return false, postgres.MapError(err, "subscription", userID)
	}
	return unlimited, nil
}
