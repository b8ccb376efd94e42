package practice

import (
	"time"

	"github.com/google/uuid"

	"github.com/deviuno/ouse-passar-practice/internal/domain"
)

// Notice values surfaced to the host UI as non-blocking information.
const (
	// NoticeFallbackQuestions means resolution failed or matched nothing
	// in a free-practice context and the built-in set was substituted.
	NoticeFallbackQuestions = "fallback_questions"
)

// StartResult is the outcome of a successful StartPractice.
type StartResult struct {
	SessionID     uuid.UUID
	QuestionCount int
	Notice        string // empty, or one of the Notice constants
}

// AnswerResult is the outcome of Answer.
type AnswerResult struct {
	// AlreadyAnswered means the current question had a recorded answer;
	// the call was a no-op and nothing below is meaningful.
	AlreadyAnswered bool
	// Skipped means the current question was malformed and auto-advanced
	// without entering the tally.
	Skipped bool
	Correct bool
	Reward  domain.Reward
	// Finished is set when a skip auto-advanced past the last question.
	Finished bool
	Summary  *domain.SessionSummary
}

// NextResult is the outcome of Next (and of a forced timeout).
type NextResult struct {
	Finished bool
	Index    int // current question index when not finished
	Summary  *domain.SessionSummary
}

// Phase is the session lifecycle phase.
type Phase string

const (
	PhaseSelecting  Phase = "SELECTING"
	PhasePracticing Phase = "PRACTICING"
	PhaseResults    Phase = "RESULTS"
)

// Snapshot is a read-only view of the live session for the host UI.
type Snapshot struct {
	Phase             Phase
	SessionID         uuid.UUID
	Mode              domain.Mode
	Context           domain.SessionContext
	Index             int
	QuestionCount     int
	CorrectCount      int
	TotalAnswered     int
	XPEarned          int
	CoinsEarned       int
	StartedAt         time.Time
	QuestionStartedAt time.Time
}
