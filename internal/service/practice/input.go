package practice

import (
	"github.com/deviuno/ouse-passar-practice/internal/domain"
)

// StartInput holds the parameters for starting a practice session.
type StartInput struct {
	Context domain.SessionContext
	Mode    domain.Mode
	Filters domain.FilterSet
	// TargetCount is the desired question count. Zero means the configured
	// default; values above the configured maximum are capped, not rejected.
	TargetCount int
	// SavedQuestionIDs are a notebook's pinned questions. When non-empty
	// the notebook merge path is used instead of a plain fetch.
	SavedQuestionIDs []int64
}

// Validate checks all fields and collects all errors.
func (i *StartInput) Validate() error {
	var errs []domain.FieldError

	if !i.Context.IsValid() {
		errs = append(errs, domain.FieldError{Field: "context", Message: "must be FREE or TRAIL"})
	}
	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be ZEN or HARD"})
	}
	if i.TargetCount < 0 {
		errs = append(errs, domain.FieldError{Field: "target_count", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AnswerInput holds the parameters for answering the current question.
type AnswerInput struct {
	Label string
}

// Validate checks all fields and collects all errors.
func (i *AnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.Label == "" {
		errs = append(errs, domain.FieldError{Field: "label", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RateQuestionInput holds the parameters for rating a question's difficulty.
type RateQuestionInput struct {
	QuestionID int64
	Label      domain.DifficultyLabel
}

// Validate checks all fields and collects all errors.
func (i *RateQuestionInput) Validate() error {
	var errs []domain.FieldError

	if i.QuestionID <= 0 {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if !i.Label.IsValid() {
		errs = append(errs, domain.FieldError{Field: "label", Message: "must be EASY, MEDIUM, or HARD"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
