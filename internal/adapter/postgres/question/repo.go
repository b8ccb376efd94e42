// Package question implements the question source adapter backed by
// PostgreSQL. Facet filtering is built dynamically with squirrel; fixed
// queries use raw SQL consts.
package question

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/deviuno/ouse-passar-practice/internal/adapter/postgres"
	"github.com/deviuno/ouse-passar-practice/internal/domain"
)

const questionColumns = `id, subject, topic, statement, alternatives, correct_label,
COALESCE(comment, ''), board, organization, role, year, education_level, modality,
COALESCE(image_refs, '{}')`

const fetchByIDsSQL = `
SELECT ` + questionColumns + `
FROM questions
WHERE id = ANY($1::bigint[])`

// Repo provides question retrieval backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new question repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Fetch resolves a bounded, optionally shuffled question list for the
// filter criteria. The shuffle is an unweighted permutation applied after
// retrieval; absence of a facet imposes no constraint.
func (r *Repo) Fetch(ctx context.Context, userID uuid.UUID, f domain.FilterSet, limit int, shuffle bool) ([]domain.Question, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Select(
		"id", "subject", "topic", "statement", "alternatives", "correct_label",
		"COALESCE(comment, '')", "board", "organization", "role", "year",
		"education_level", "modality", "COALESCE(image_refs, '{}')",
	).
		From("questions").
		PlaceholderFormat(sq.Dollar)

	if predicates := buildPredicates(userID.String(), f); len(predicates) > 0 {
		builder = builder.Where(predicates)
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build fetch query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "questions", userID)
	}
	defer rows.Close()

	questions, err := scanQuestions(rows)
	if err != nil {
		return nil, postgres.MapError(err, "questions", userID)
	}

	if shuffle {
		rand.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
	}

	return questions, nil
}

// Count returns how many questions the filter criteria resolve to,
// without fetching them.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID, f domain.FilterSet) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Select("count(*)").
		From("questions").
		PlaceholderFormat(sq.Dollar)

	if predicates := buildPredicates(userID.String(), f); len(predicates) > 0 {
		builder = builder.Where(predicates)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "questions count", userID)
	}
	return count, nil
}

// FetchByIDs returns the questions with the given ids, in store order.
// Missing ids are silently absent from the result.
func (r *Repo) FetchByIDs(ctx context.Context, ids []int64) ([]domain.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, fetchByIDsSQL, ids)
	if err != nil {
		return nil, postgres.MapError(err, "questions by ids", len(ids))
	}
	defer rows.Close()

	questions, err := scanQuestions(rows)
	if err != nil {
		return nil, postgres.MapError(err, "questions by ids", len(ids))
	}
	return questions, nil
}

func scanQuestions(rows pgx.Rows) ([]domain.Question, error) {
	var questions []domain.Question
	for rows.Next() {
		var (
			q        domain.Question
			altsJSON []byte
		)
		if err := rows.Scan(
			&q.ID, &q.Subject, &q.Topic, &q.Statement, &altsJSON, &q.CorrectLabel,
			&q.Comment, &q.Board, &q.Organization, &q.Role, &q.Year,
			&q.EducationLevel, &q.Modality, &q.ImageRefs,
		); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if err := json.Unmarshal(altsJSON, &q.Alternatives); err != nil {
			return nil, fmt.Errorf("decode alternatives for question %d: %w", q.ID, err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
