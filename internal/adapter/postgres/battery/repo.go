// Package battery implements the allowance ("battery") service contract
// on top of PostgreSQL. Consumption is a single atomic decrement so two
// concurrent calls can never spend the same charge twice.
package battery

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/deviuno/ouse-passar-practice/internal/adapter/postgres"
	"github.com/deviuno/ouse-passar-practice/internal/config"
	"github.com/deviuno/ouse-passar-practice/internal/domain"
)

const consumeSQL = `
UPDATE batteries
SET charge = charge - $3, updated_at = now()
WHERE user_id = $1 AND program_id = $2 AND charge >= $3
RETURNING charge`

const getSQL = `
SELECT user_id, program_id, charge, updated_at
FROM batteries
WHERE user_id = $1 AND program_id = $2`

const recordEventSQL = `
INSERT INTO battery_events (user_id, program_id, action_kind, cost, metadata, created_at)
VALUES ($1, $2, $3, $4, $5, now())`

// Service provides battery state and consumption backed by PostgreSQL.
type Service struct {
	pool *pgxpool.Pool
	log  *slog.Logger
	cfg  config.BatteryConfig
}

// New creates a new battery service.
func New(log *slog.Logger, pool *pgxpool.Pool, cfg config.BatteryConfig) *Service {
	return &Service{
		pool: pool,
		log:  log.With(slog.String("service", "battery")),
		cfg:  cfg,
	}
}

// Consume attempts to spend the charge for one action. A refusal because
// the battery is empty (or missing) comes back as an OK=false result with
// the insufficient kind, not as an error; errors mean the store itself
// failed.
func (s *Service) Consume(ctx context.Context, userID uuid.UUID, programID string, kind domain.ActionKind, metadata map[string]any) (domain.ConsumeResult, error) {
	cost := s.cost(kind)
	if cost == 0 {
		return domain.ConsumeResult{OK: true}, nil
	}

	q := postgres.QuerierFromCtx(ctx, s.pool)

	var remaining int
	err := q.QueryRow(ctx, consumeSQL, userID, programID, cost).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		// Either no battery row or not enough charge left.
		return domain.ConsumeResult{Kind: domain.ConsumeErrInsufficient}, nil
	}
	if err != nil {
		return domain.ConsumeResult{Kind: domain.ConsumeErrUnavailable},
			postgres.MapError(err, "battery", userID)
	}

	s.recordEvent(ctx, userID, programID, kind, cost, metadata)

	s.log.DebugContext(ctx, "battery consumed",
		slog.String("user_id", userID.String()),
		slog.String("action_kind", string(kind)),
		slog.Int("remaining", remaining),
	)

	return domain.ConsumeResult{OK: true}, nil
}

// Get returns the current battery state for (user, program).
func (s *Service) Get(ctx context.Context, userID uuid.UUID, programID string) (*domain.Battery, error) {
	q := postgres.QuerierFromCtx(ctx, s.pool)

	var b domain.Battery
	err := q.QueryRow(ctx, getSQL, userID, programID).
		Scan(&b.UserID, &b.ProgramID, &b.Charge, &b.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "battery", userID)
	}
	return &b, nil
}

// recordEvent writes the consumption audit row. Best-effort: a failed
// event write never rolls back the already-spent charge.
func (s *Service) recordEvent(ctx context.Context, userID uuid.UUID, programID string, kind domain.ActionKind, cost int, metadata map[string]any) {
	q := postgres.QuerierFromCtx(ctx, s.pool)

	payload, err := json.Marshal(metadata)
	if err != nil {
		payload = []byte("{}")
	}

	if _, err := q.Exec(ctx, recordEventSQL, userID, programID, string(kind), cost, payload); err != nil {
		s.log.WarnContext(ctx, "battery event write failed",
			slog.String("user_id", userID.String()),
			slog.String("action_kind", string(kind)),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) cost(kind domain.ActionKind) int {
	switch kind {
	case domain.ActionSession:
		return s.cfg.SessionCost
	case domain.ActionQuestion:
		return s.cfg.QuestionCost
	default:
		return 1
	}
}
