// Package gamification implements the reward-coefficients provider
// using PostgreSQL. The engine reads the coefficients once per session
// lifecycle and caches them.
package gamification

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/deviuno/ouse-passar-practice/internal/adapter/postgres"
	"github.com/deviuno/ouse-passar-practice/internal/domain"
)

// A single-row settings table; the admin console edits it.
const getCoefficientsSQL = `
SELECT xp_per_correct, xp_per_correct_hard, coins_per_correct, coins_per_correct_hard
FROM gamification_settings
ORDER BY updated_at DESC
LIMIT 1`

// Repo provides gamification coefficients backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new gamification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetCoefficients returns the current reward coefficients.
func (r *Repo) GetCoefficients(ctx context.Context) (domain.RewardCoefficients, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.RewardCoefficients
	err := q.QueryRow(ctx, getCoefficientsSQL).Scan(
		&c.XPPerCorrect, &c.XPPerCorrectHardMode,
		&c.CoinsPerCorrect, &c.CoinsPerCorrectHardMode,
	)
	if err != nil {
		return domain.RewardCoefficients{}, postgres.MapError(err, "gamification settings", "current")
	}
	return c, nil
}
