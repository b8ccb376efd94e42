// Package practice implements the practice session engine: it turns a
// set of filter criteria into a bounded, shuffled, difficulty-aware
// question list, drives the learner through it under a timing mode, and
// reconciles outcomes against the reward economy and the battery
// allowance.
package practice

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/deviuno/ouse-passar-practice/internal/config"
	"github.com/deviuno/ouse-passar-practice/internal/domain"
	"github.com/deviuno/ouse-passar-practice/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type questionRepo interface {
	Fetch(ctx context.Context, userID uuid.UUID, f domain.FilterSet, limit int, shuffle bool) ([]domain.Question, error)
	Count(ctx context.Context, userID uuid.UUID, f domain.FilterSet) (int, error)
	FetchByIDs(ctx context.Context, ids []int64) ([]domain.Question, error)
}

type difficultyRepo interface {
	GetIDsByDifficulty(ctx context.Context, userID uuid.UUID, labels []domain.DifficultyLabel) (domain.DifficultySplit, error)
	SaveRating(ctx context.Context, userID uuid.UUID, questionID int64, label domain.DifficultyLabel) error
}

type allowanceService interface {
	Consume(ctx context.Context, userID uuid.UUID, programID string, kind domain.ActionKind, metadata map[string]any) (domain.ConsumeResult, error)
}

type coefficientsProvider interface {
	GetCoefficients(ctx context.Context) (domain.RewardCoefficients, error)
}

type summarySink interface {
	CreateSessionRecord(ctx context.Context, s domain.SessionSummary) error
	CreateAnswerRecord(ctx context.Context, a domain.AnswerRecord) error
}

type subscriberProvider interface {
	IsUnlimited(ctx context.Context, userID uuid.UUID) (bool, error)
}

// ---------------------------------------------------------------------------
// Engine
// ---------------------------------------------------------------------------

// Config bundles the engine's configuration sections.
type Config struct {
	Practice config.PracticeConfig
	Battery  config.BatteryConfig
	Reward   config.RewardConfig
}

// Engine orchestrates one logical practice session at a time. All
// operations are driven from a single UI event loop; overlapping calls
// that would hit a suspension point are rejected with ErrSessionBusy
// rather than queued, so a slow network call can never double-count.
type Engine struct {
	questions   questionRepo
	ratings     difficultyRepo
	battery     allowanceService
	coeffs      coefficientsProvider
	sink        summarySink
	subscribers subscriberProvider
	log         *slog.Logger
	cfg         Config

	now   func() time.Time
	spawn func(fn func()) // async emission, overridable in tests

	mu         sync.Mutex
	inFlight   bool
	sess       *session
	coeffCache *domain.RewardCoefficients // read once per session lifecycle
	subscriber subscriberCache
}

// NewEngine creates a practice engine.
func NewEngine(
	log *slog.Logger,
	questions questionRepo,
	ratings difficultyRepo,
	battery allowanceService,
	coeffs coefficientsProvider,
	sink summarySink,
	subscribers subscriberProvider,
	cfg Config,
) *Engine {
	return &Engine{
		questions:   questions,
		ratings:     ratings,
		battery:     battery,
		coeffs:      coeffs,
		sink:        sink,
		subscribers: subscribers,
		log:         log.With(slog.String("service", "practice")),
		cfg:         cfg,
		now:         time.Now,
		spawn:       func(fn func()) { go fn() },
		subscriber:  subscriberCache{ttl: cfg.Practice.SubscriberCacheTTL},
	}
}

// beginOp marks a suspension-point operation as in flight.
// Returns false when another one has not yet resolved.
func (e *Engine) beginOp() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inFlight {
		return false
	}
	e.inFlight = true
	return true
}

func (e *Engine) endOp() {
	e.mu.Lock()
	e.inFlight = false
	e.mu.Unlock()
}

// isUnlimited resolves the caller's unlimited-access flag through the
// TTL cache. On provider failure the session is treated as metered; a
// paying subscriber briefly seeing a metered session beats free riding.
func (e *Engine) isUnlimited(ctx context.Context, userID uuid.UUID) bool {
	now := e.now()
	if v, ok := e.subscriber.get(userID, now); ok {
		return v
	}

	v, err := e.subscribers.IsUnlimited(ctx, userID)
	if err != nil {
		e.log.WarnContext(ctx, "subscriber status check failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return false
	}

	e.subscriber.set(userID, v, now)
	return v
}

// loadCoefficients fetches gamification coefficients once per session
// lifecycle. Failure leaves the cache empty and rewards fall back to the
// built-in defaults; starting practice is never blocked on gamification.
func (e *Engine) loadCoefficients(ctx context.Context) {
	c, err := e.coeffs.GetCoefficients(ctx)
	if err != nil {
		e.log.WarnContext(ctx, "gamification coefficients unavailable, using defaults",
			slog.String("error", err.Error()),
		)
		e.mu.Lock()
		e.coeffCache = nil
		e.mu.Unlock()
		return
	}

	e.mu.Lock()
	e.coeffCache = &c
	e.mu.Unlock()
}

// InvalidateSubscriberCache drops the cached unlimited-access flag. The
// host calls this right after a purchase or plan change so the next
// session start re-checks entitlements instead of waiting out the TTL.
func (e *Engine) InvalidateSubscriberCache() {
	e.subscriber.invalidate()
}

// RateQuestion persists the learner's difficulty label for a question,
// typically from the results review screen. The rating only influences
// future candidate ordering; it never touches the live session.
func (e *Engine) RateQuestion(ctx context.Context, input RateQuestionInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}
	return e.ratings.SaveRating(ctx, userID, input.QuestionID, input.Label)
}
