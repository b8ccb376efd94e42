// Package difficulty implements the difficulty-rating repository using
// PostgreSQL.
package difficulty

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/deviuno/ouse-passar-practice/internal/adapter/postgres"
	"github.com/deviuno/ouse-passar-practice/internal/domain"
)

const getIDsByDifficultySQL = `
SELECT question_id, bool_or(user_id = $1) AS rated_by_user
FROM question_ratings
WHERE label = ANY($2::text[])
GROUP BY question_id`

const saveRatingSQL = `
INSERT INTO question_ratings (user_id, question_id, label, rated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (user_id, question_id)
DO UPDATE SET label = EXCLUDED.label, rated_at = now()`

// Repo provides difficulty-rating persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new difficulty repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetIDsByDifficulty returns the question ids rated with any of the given
// labels, split into those rated by this user and those rated only by the
// community. A question the user rated lands in UserRated even when
// others rated it too.
func (r *Repo) GetIDsByDifficulty(ctx context.Context, userID uuid.UUID, labels []domain.DifficultyLabel) (domain.DifficultySplit, error) {
	if len(labels) == 0 {
		return domain.DifficultySplit{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	textLabels := make([]string, len(labels))
	for i, l := range labels {
		textLabels[i] = string(l)
	}

	rows, err := q.Query(ctx, getIDsByDifficultySQL, userID, textLabels)
	if err != nil {
		return domain.DifficultySplit{}, postgres.MapError(err, "question ratings", userID)
	}
	defer rows.Close()

	var split domain.DifficultySplit
	for rows.Next() {
		var (
			id          int64
			ratedByUser bool
		)
		if err := rows.Scan(&id, &ratedByUser); err != nil {
			return domain.DifficultySplit{}, postgres.MapError(err, "question ratings", userID)
		}
		if ratedByUser {
			split.UserRated = append(split.UserRated, id)
		} else {
			split.CommunityRated = append(split.CommunityRated, id)
		}
	}
	if err := rows.Err(); err != nil {
		return domain.DifficultySplit{}, postgres.MapError(err, "question ratings", userID)
	}

	return split, nil
}

// SaveRating upserts the user's difficulty label for a question.
func (r *Repo) SaveRating(ctx context.Context, userID uuid.UUID, questionID int64, label domain.DifficultyLabel) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, saveRatingSQL, userID, questionID, string(label))
	return postgres.MapError(err, "question rating", questionID)
}
