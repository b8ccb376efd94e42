package domain

import (
	"time"

	"github.com/google/uuid"
)

// Answer records a learner's choice for one question. Write-once per
// question per session; re-answering is not supported.
type Answer struct {
	Label   string
	Correct bool
}

// Reward is the XP/coin outcome of a single answered question.
type Reward struct {
	XP    int
	Coins int
}

// Add accumulates another reward into r.
func (r *Reward) Add(other Reward) {
	r.XP += other.XP
	r.Coins += other.Coins
}

// RewardCoefficients are the externally supplied gamification rates,
// read once per session lifecycle and cached.
type RewardCoefficients struct {
	XPPerCorrect            int
	XPPerCorrectHardMode    int
	CoinsPerCorrect         int
	CoinsPerCorrectHardMode int
}

// SessionSummary is the record written when a session reaches results.
type SessionSummary struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Mode          Mode
	Context       SessionContext
	CorrectCount  int
	TotalAnswered int
	QuestionCount int
	TimeSpent     time.Duration
	XPEarned      int
	CoinsEarned   int
	Filters       FilterSet
	FinishedAt    time.Time
}

// AnswerRecord is the fire-and-forget per-answer event persisted during
// practice. Failures are logged, never surfaced.
type AnswerRecord struct {
	UserID      uuid.UUID
	SessionID   uuid.UUID
	QuestionID  int64
	ChosenLabel string
	Correct     bool
	Mode        Mode
	AnsweredAt  time.Time
	Elapsed     time.Duration
}
