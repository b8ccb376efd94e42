package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deviuno/ouse-passar-practice/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// QuestionOpt mutates a seeded question before insert.
type QuestionOpt func(*domain.Question)

// WithSubject sets the question subject.
func WithSubject(subject string) QuestionOpt {
	return func(q *domain.Question) { q.Subject = subject }
}

// WithBoard sets the examining board.
func WithBoard(board string) QuestionOpt {
	return func(q *domain.Question) { q.Board = board }
}

// WithYear sets the exam year.
func WithYear(year int) QuestionOpt {
	return func(q *domain.Question) { q.Year = year }
}

// WithComment sets the instructor comment.
func WithComment(comment string) QuestionOpt {
	return func(q *domain.Question) { q.Comment = comment }
}

// SeedQuestion inserts a valid multiple-choice question and returns it
// with the generated id.
func SeedQuestion(t *testing.T, pool *pgxpool.Pool, opts ...QuestionOpt) domain.Question {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	q := domain.Question{
		Subject:   "Direito Constitucional",
		Topic:     "Princípios Fundamentais",
		Statement: "Seed statement " + suffix,
		Alternatives: []domain.Alternative{
			{Label: "A", Text: "Alternativa A " + suffix},
			{Label: "B", Text: "Alternativa B " + suffix},
			{Label: "C", Text: "Alternativa C " + suffix},
		},
		CorrectLabel:   "B",
		Board:          "CESPE",
		Organization:   "TRF",
		Role:           "Analista",
		Year:           2023,
		EducationLevel: "Superior",
		Modality:       "Múltipla Escolha",
	}
	for _, opt := range opts {
		opt(&q)
	}

	alternatives, err := json.Marshal(q.Alternatives)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion marshal alternatives: %v", err)
	}

	var comment *string
	if q.Comment != "" {
		comment = &q.Comment
	}

	err = pool.QueryRow(ctx,
		`INSERT INTO questions
		   (subject, topic, statement, alternatives, correct_label, comment,
		    board, organization, role, year, education_level, modality)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id`,
		q.Subject, q.Topic, q.Statement, alternatives, q.CorrectLabel, comment,
		q.Board, q.Organization, q.Role, q.Year, q.EducationLevel, q.Modality,
	).Scan(&q.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion insert: %v", err)
	}

	return q
}

// SeedBattery inserts a battery row with the given charge.
func SeedBattery(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, programID string, charge int) domain.Battery {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	b := domain.Battery{
		UserID:    userID,
		ProgramID: programID,
		Charge:    charge,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO batteries (user_id, program_id, charge, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		b.UserID, b.ProgramID, b.Charge, b.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBattery insert: %v", err)
	}

	return b
}

// SeedAnswer records one answer-history row for a user/question pair.
func SeedAnswer(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, questionID int64, correct bool) {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO practice_answers
		   (user_id, session_id, question_id, chosen_label, correct, mode, answered_at, elapsed_ms)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		userID, uuid.New(), questionID, "A", correct, string(domain.ModeZen), time.Now().UTC(), 1500,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAnswer insert: %v", err)
	}
}

// SeedRating records one difficulty rating for a user/question pair.
func SeedRating(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, questionID int64, label domain.DifficultyLabel) {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO question_ratings (user_id, question_id, label, rated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (user_id, question_id) DO UPDATE SET label = EXCLUDED.label`,
		userID, questionID, string(label),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRating insert: %v", err)
	}
}

// SeedNotebook inserts a notebook for the given owner.
func SeedNotebook(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, questionIDs []int64) domain.Notebook {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	nb := domain.Notebook{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    "Caderno " + suffix,
		Filters: domain.NewFilterSet(),
		Settings: domain.NotebookSettings{
			QuestionCount: 10,
			Mode:          domain.ModeZen,
		},
		QuestionIDs: questionIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	filters, err := json.Marshal(nb.Filters)
	if err != nil {
		t.Fatalf("testhelper: SeedNotebook marshal filters: %v", err)
	}
	settings, err := json.Marshal(nb.Settings)
	if err != nil {
		t.Fatalf("testhelper: SeedNotebook marshal settings: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO notebooks
		   (id, owner_id, name, filters, settings, question_ids, match_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		nb.ID, nb.OwnerID, nb.Name, filters, settings, nb.QuestionIDs, nb.MatchCount, nb.CreatedAt, nb.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNotebook insert: %v", err)
	}

	return nb
}

// SeedSubscription inserts an active unlimited subscription for the user.
func SeedSubscription(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, unlimited bool) {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO subscriptions (user_id, plan, unlimited, started_at)
		 VALUES ($1, $2, $3, now())`,
		userID, "premium", unlimited,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubscription insert: %v", err)
	}
}
