package notebook

import (
	"github.com/google/uuid"

	"github.com/deviuno/ouse-passar-practice/internal/domain"
)

const maxPinnedQuestions = 500

// CreateInput holds the parameters for saving a notebook.
type CreateInput struct {
	Name        string
	Filters     domain.FilterSet
	Settings    domain.NotebookSettings
	QuestionIDs []int64
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > 120 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 120 characters"})
	}
	if i.Settings.QuestionCount <= 0 {
		errs = append(errs, domain.FieldError{Field: "settings.question_count", Message: "must be > 0"})
	}
	if !i.Settings.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "settings.mode", Message: "must be ZEN or HARD"})
	}
	if len(i.QuestionIDs) > maxPinnedQuestions {
		errs = append(errs, domain.FieldError{Field: "question_ids", Message: "too many (max 500)"})
	}
	if !i.Filters.HasAny() && len(i.QuestionIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "filters", Message: "empty notebook: no filters and no pinned questions"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for editing a notebook.
type UpdateInput struct {
	NotebookID  uuid.UUID
	Name        string
	Filters     domain.FilterSet
	Settings    domain.NotebookSettings
	QuestionIDs []int64
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.NotebookID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "notebook_id", Message: "required"})
	}

	create := CreateInput{
		Name:        i.Name,
		Filters:     i.Filters,
		Settings:    i.Settings,
		QuestionIDs: i.QuestionIDs,
	}
	if err := create.Validate(); err != nil {
		if vErr, ok := err.(*domain.ValidationError); ok {
			errs = append(errs, vErr.Errors...)
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing notebooks.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
