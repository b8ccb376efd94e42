package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConsumeResult is the outcome of a battery consumption attempt.
// OK=false with Kind set is an expected, classified refusal; transport
// faults are returned as errors alongside instead.
type ConsumeResult struct {
	OK   bool
	Kind ConsumeErrorKind
}

// Battery is the per-(user, program) consumable allowance backing paid
// actions. The engine treats it as a black box behind Consume.
type Battery struct {
	UserID    uuid.UUID
	ProgramID string
	Charge    int
	UpdatedAt time.Time
}

// DifficultySplit partitions rated question ids by who rated them.
type DifficultySplit struct {
	UserRated      []int64 // rated by this user; take precedence when reweighting
	CommunityRated []int64 // rated by others / community aggregate
}

// DifficultyRating is one user's difficulty label for one question.
// Used only to reorder/filter candidates, never stored in a session.
type DifficultyRating struct {
	UserID     uuid.UUID
	QuestionID int64
	Label      DifficultyLabel
	RatedAt    time.Time
}
