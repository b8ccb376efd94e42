// Package sessionlog implements the session summary and answer-event
// sink using PostgreSQL. The engine treats both writes as fire-and-forget.
package sessionlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/deviuno/ouse-passar-practice/internal/adapter/postgres"
	"github.com/deviuno/ouse-passar-practice/internal/domain"
)

const createSessionSQL = `
INSERT INTO practice_sessions
  (id, user_id, mode, context, correct_count, total_answered, question_count,
   time_spent_ms, xp_earned, coins_earned, filters, finished_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

const createAnswerSQL = `
INSERT INTO practice_answers
  (user_id, session_id, question_id, chosen_label, correct, mode, answered_at, elapsed_ms)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const listRecentSQL = `
SELECT id, user_id, mode, context, correct_count, total_answered, question_count,
       time_spent_ms, xp_earned, coins_earned, filters, finished_at
FROM practice_sessions
WHERE user_id = $1
ORDER BY finished_at DESC
LIMIT $2`

// Repo provides practice-session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// CreateSessionRecord writes the results-screen summary.
func (r *Repo) CreateSessionRecord(ctx context.Context, s domain.SessionSummary) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	filters, err := json.Marshal(s.Filters)
	if err != nil {
		return fmt.Errorf("encode filters: %w", err)
	}

	_, err = q.Exec(ctx, createSessionSQL,
		s.ID, s.UserID, string(s.Mode), string(s.Context),
		s.CorrectCount, s.TotalAnswered, s.QuestionCount,
		s.TimeSpent.Milliseconds(), s.XPEarned, s.CoinsEarned,
		filters, s.FinishedAt,
	)
	return postgres.MapError(err, "practice session", s.ID)
}

// CreateAnswerRecord writes one per-answer event.
func (r *Repo) CreateAnswerRecord(ctx context.Context, a domain.AnswerRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createAnswerSQL,
		a.UserID, a.SessionID, a.QuestionID, a.ChosenLabel, a.Correct,
		string(a.Mode), a.AnsweredAt, a.Elapsed.Milliseconds(),
	)
	return postgres.MapError(err, "practice answer", a.QuestionID)
}

// ListRecent returns the user's most recent session summaries.
func (r *Repo) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SessionSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listRecentSQL, userID, limit)
	if err != nil {
		return nil, postgres.MapError(err, "practice sessions", userID)
	}
	defer rows.Close()

	var summaries []domain.SessionSummary
	for rows.Next() {
		var (
			s           domain.SessionSummary
			mode, sctx  string
			timeSpentMs int64
			filtersJSON []byte
		)
		if err := rows.Scan(
			&s.ID, &s.UserID, &mode, &sctx, &s.CorrectCount, &s.TotalAnswered,
			&s.QuestionCount, &timeSpentMs, &s.XPEarned, &s.CoinsEarned,
			&filtersJSON, &s.FinishedAt,
		); err != nil {
			return nil, postgres.MapError(err, "practice sessions", userID)
		}
		s.Mode = domain.Mode(mode)
		s.Context = domain.SessionContext(sctx)
		s.TimeSpent = time.Duration(timeSpentMs) * time.Millisecond
		if err := json.Unmarshal(filtersJSON, &s.Filters); err != nil {
			return nil, fmt.Errorf("decode filters for session %s: %w", s.ID, err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
