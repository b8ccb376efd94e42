package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotebookSettings is the per-notebook practice configuration.
type NotebookSettings struct {
	QuestionCount int  `json:"question_count"`
	Mode          Mode `json:"mode"`
}

// Notebook is a learner-saved combination of filters, settings and
// optionally explicitly pinned question ids. Exclusively owned by one
// learner account.
type Notebook struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Filters     FilterSet
	Settings    NotebookSettings
	QuestionIDs []int64 // pinned questions, always included in a session
	MatchCount  int     // materialized count of questions the filters resolve to
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
