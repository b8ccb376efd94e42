package practice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/deviuno/ouse-passar-practice/internal/domain"
	"github.com/deviuno/ouse-passar-practice/pkg/ctxutil"
)

// session is the live, transient aggregate. The question list is frozen
// once practice starts; answers are write-once per question.
type session struct {
	id        uuid.UUID
	userID    uuid.UUID
	mode      domain.Mode
	sctx      domain.SessionContext
	filters   domain.FilterSet
	unlimited bool
	phase     Phase

	questions []domain.Question
	index     int
	answers   map[int64]domain.Answer

	correctCount  int
	totalAnswered int
	earned        domain.Reward

	startedAt         time.Time
	questionStartedAt time.Time
	summaryWritten    bool
}

// Phase returns the current lifecycle phase (selecting when no session
// has been started or the last one was reset).
func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil {
		return PhaseSelecting
	}
	return e.sess.phase
}

// CurrentQuestion returns the question at the session cursor.
func (e *Engine) CurrentQuestion() (domain.Question, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil || e.sess.phase != PhasePracticing {
		return domain.Question{}, false
	}
	return e.sess.questions[e.sess.index], true
}

// Snapshot returns a read-only view of the live session.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil {
		return Snapshot{Phase: PhaseSelecting}
	}
	s := e.sess
	return Snapshot{
		Phase:             s.phase,
		SessionID:         s.id,
		Mode:              s.mode,
		Context:           s.sctx,
		Index:             s.index,
		QuestionCount:     len(s.questions),
		CorrectCount:      s.correctCount,
		TotalAnswered:     s.totalAnswered,
		XPEarned:          s.earned.XP,
		CoinsEarned:       s.earned.Coins,
		StartedAt:         s.startedAt,
		QuestionStartedAt: s.questionStartedAt,
	}
}

// Answered returns the recorded answer for a question id, if any.
func (e *Engine) Answered(questionID int64) (domain.Answer, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil {
		return domain.Answer{}, false
	}
	a, ok := e.sess.answers[questionID]
	return a, ok
}

// StartPractice drives the selecting → practicing transition: it consults
// the battery (unless the caller is unlimited or the context is a
// no-cost trail), resolves the question list, freezes it, and zeroes the
// tally. On any failure the engine stays in selecting.
func (e *Engine) StartPractice(ctx context.Context, input StartInput) (*StartResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if !e.beginOp() {
		return nil, domain.ErrSessionBusy
	}
	defer e.endOp()

	e.mu.Lock()
	if e.sess != nil && e.sess.phase == PhasePracticing {
		e.mu.Unlock()
		return nil, fmt.Errorf("start practice: %w", domain.ErrInvalidState)
	}
	e.mu.Unlock()

	target := input.TargetCount
	if target == 0 {
		target = e.cfg.Practice.DefaultQuestionCount
	}
	if target > e.cfg.Practice.MaxQuestions {
		target = e.cfg.Practice.MaxQuestions
	}

	unlimited := e.isUnlimited(ctx, userID)
	metered := !unlimited && input.Context != domain.ContextTrail

	if metered {
		res, err := e.battery.Consume(ctx, userID, e.cfg.Battery.ProgramID, domain.ActionSession, map[string]any{
			"mode":    string(input.Mode),
			"context": string(input.Context),
		})
		if err != nil {
			return nil, fmt.Errorf("consume session battery: %w", err)
		}
		if !res.OK {
			if res.Kind == domain.ConsumeErrInsufficient {
				return nil, domain.ErrInsufficientBattery
			}
			return nil, fmt.Errorf("consume session battery: refused (%s)", res.Kind)
		}
	}

	questions, notice, err := e.resolveQuestions(ctx, userID, input, target)
	if err != nil {
		return nil, err
	}

	// Read once per session lifecycle; rewards fall back to defaults
	// when this fails.
	e.loadCoefficients(ctx)

	now := e.now()
	sess := &session{
		id:                uuid.New(),
		userID:            userID,
		mode:              input.Mode,
		sctx:              input.Context,
		filters:           input.Filters.Clone(),
		unlimited:         unlimited,
		phase:             PhasePracticing,
		questions:         questions,
		answers:           make(map[int64]domain.Answer, len(questions)),
		startedAt:         now,
		questionStartedAt: now,
	}

	e.mu.Lock()
	e.sess = sess
	e.mu.Unlock()

	e.log.InfoContext(ctx, "practice started",
		slog.String("user_id", userID.String()),
		slog.String("session_id", sess.id.String()),
		slog.String("mode", string(input.Mode)),
		slog.String("context", string(input.Context)),
		slog.Int("questions", len(questions)),
		slog.Bool("unlimited", unlimited),
	)

	return &StartResult{
		SessionID:     sess.id,
		QuestionCount: len(questions),
		Notice:        notice,
	}, nil
}

// Answer records the learner's choice for the current question. Write-once:
// a second call for the same question is a no-op. The answer, tally and
// rewards are committed before the battery call, so a failed consumption
// never rolls them back. A malformed question is skipped and auto-advanced
// without entering the tally.
func (e *Engine) Answer(ctx context.Context, input AnswerInput) (*AnswerResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if !e.beginOp() {
		return nil, domain.ErrSessionBusy
	}
	defer e.endOp()

	e.mu.Lock()
	if e.sess == nil || e.sess.phase != PhasePracticing {
		e.mu.Unlock()
		return nil, fmt.Errorf("answer: %w", domain.ErrInvalidState)
	}
	sess := e.sess
	q := sess.questions[sess.index]

	if vErr := q.Validate(); vErr != nil {
		e.mu.Unlock()
		e.log.WarnContext(ctx, "malformed question skipped",
			slog.Int64("question_id", q.ID),
			slog.String("error", vErr.Error()),
		)
		return e.skipCurrent(ctx)
	}

	if _, done := sess.answers[q.ID]; done {
		e.mu.Unlock()
		return &AnswerResult{AlreadyAnswered: true}, nil
	}

	correct := q.IsCorrect(input.Label)
	reward := calculateReward(correct, sess.mode, e.coeffCache, e.cfg.Reward)

	sess.answers[q.ID] = domain.Answer{Label: input.Label, Correct: correct}
	sess.totalAnswered++
	if correct {
		sess.correctCount++
	}
	sess.earned.Add(reward)

	userID := sess.userID
	record := domain.AnswerRecord{
		UserID:      userID,
		SessionID:   sess.id,
		QuestionID:  q.ID,
		ChosenLabel: input.Label,
		Correct:     correct,
		Mode:        sess.mode,
		AnsweredAt:  e.now(),
		Elapsed:     e.now().Sub(sess.questionStartedAt),
	}
	metered := !sess.unlimited && sess.sctx != domain.ContextTrail
	e.mu.Unlock()

	if metered {
		// Best-effort: the learner is never interrupted mid-question by
		// allowance problems.
		res, err := e.battery.Consume(ctx, userID, e.cfg.Battery.ProgramID, domain.ActionQuestion, map[string]any{
			"question_id": q.ID,
		})
		if err != nil {
			e.log.WarnContext(ctx, "question battery consumption failed",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		} else if !res.OK {
			e.log.WarnContext(ctx, "question battery refused",
				slog.String("user_id", userID.String()),
				slog.String("kind", string(res.Kind)),
			)
		}
	}

	bgCtx := context.WithoutCancel(ctx)
	e.spawn(func() {
		if err := e.sink.CreateAnswerRecord(bgCtx, record); err != nil {
			e.log.WarnContext(bgCtx, "answer record write failed",
				slog.Int64("question_id", record.QuestionID),
				slog.String("error", err.Error()),
			)
		}
	})

	return &AnswerResult{Correct: correct, Reward: reward}, nil
}

// Next advances the cursor, or — on the last question — drives the
// practicing → results transition, writing the session summary exactly
// once. A host-imposed per-question timeout calls this without an answer
// having been recorded; the question simply stays out of the tally.
func (e *Engine) Next(ctx context.Context) (*NextResult, error) {
	if !e.beginOp() {
		return nil, domain.ErrSessionBusy
	}
	defer e.endOp()
	return e.advance(ctx)
}

// ForceTimeout is the externally triggered per-question timeout. It is
// exactly Next: the unanswered question is left out of the tally.
func (e *Engine) ForceTimeout(ctx context.Context) (*NextResult, error) {
	return e.Next(ctx)
}

// skipCurrent advances past a malformed question. Caller must hold the
// in-flight flag but not the mutex.
func (e *Engine) skipCurrent(ctx context.Context) (*AnswerResult, error) {
	next, err := e.advance(ctx)
	if err != nil {
		return nil, err
	}
	return &AnswerResult{
		Skipped:  true,
		Finished: next.Finished,
		Summary:  next.Summary,
	}, nil
}

// advance implements Next. Caller must hold the in-flight flag.
func (e *Engine) advance(ctx context.Context) (*NextResult, error) {
	e.mu.Lock()
	if e.sess == nil || e.sess.phase != PhasePracticing {
		e.mu.Unlock()
		return nil, fmt.Errorf("next: %w", domain.ErrInvalidState)
	}
	sess := e.sess

	if sess.index < len(sess.questions)-1 {
		sess.index++
		sess.questionStartedAt = e.now()
		index := sess.index
		e.mu.Unlock()
		return &NextResult{Index: index}, nil
	}

	// Last question: transition to results.
	now := e.now()
	summary := domain.SessionSummary{
		ID:            sess.id,
		UserID:        sess.userID,
		Mode:          sess.mode,
		Context:       sess.sctx,
		CorrectCount:  sess.correctCount,
		TotalAnswered: sess.totalAnswered,
		QuestionCount: len(sess.questions),
		TimeSpent:     now.Sub(sess.startedAt),
		XPEarned:      sess.earned.XP,
		CoinsEarned:   sess.earned.Coins,
		Filters:       sess.filters.Clone(),
		FinishedAt:    now,
	}
	sess.phase = PhaseResults
	writeSummary := !sess.summaryWritten
	sess.summaryWritten = true
	e.mu.Unlock()

	if writeSummary {
		if err := e.sink.CreateSessionRecord(ctx, summary); err != nil {
			// Non-fatal: results are shown regardless.
			e.log.ErrorContext(ctx, "session summary write failed",
				slog.String("session_id", summary.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	e.log.InfoContext(ctx, "practice finished",
		slog.String("session_id", summary.ID.String()),
		slog.Int("correct", summary.CorrectCount),
		slog.Int("answered", summary.TotalAnswered),
		slog.Int("xp", summary.XPEarned),
	)

	return &NextResult{Finished: true, Summary: &summary}, nil
}

// Previous moves the cursor back for review navigation. It never
// re-enables answering an already-answered question differently.
func (e *Engine) Previous() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil || e.sess.phase != PhasePracticing {
		return fmt.Errorf("previous: %w", domain.ErrInvalidState)
	}
	if e.sess.index > 0 {
		e.sess.index--
		e.sess.questionStartedAt = e.now()
	}
	return nil
}

// Reset discards the frozen list and all transient state, returning to
// selecting. No summary is written; results of in-flight network calls
// are ignored on landing.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.sess = nil
	e.coeffCache = nil
	e.mu.Unlock()
}
