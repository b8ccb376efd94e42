package domain

// Alternative is one labeled answer option of a question.
type Alternative struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Question is an exam question. Immutable once fetched from the store.
type Question struct {
	ID             int64
	Subject        string
	Topic          string
	Statement      string // rich text (HTML fragment)
	Alternatives   []Alternative
	CorrectLabel   string
	Comment        string // optional explanation, empty when absent
	Board          string
	Organization   string
	Role           string
	Year           int
	EducationLevel string
	Modality       string
	ImageRefs      []string
}

// Validate checks that the question is renderable and answerable:
// it has alternatives and the correct label is one of them. A question
// failing this is skipped mid-session, never fatal.
func (q Question) Validate() error {
	var errs []FieldError

	if len(q.Alternatives) == 0 {
		errs = append(errs, FieldError{Field: "alternatives", Message: "required (at least 1)"})
	}
	if q.CorrectLabel == "" {
		errs = append(errs, FieldError{Field: "correct_label", Message: "required"})
	} else if !q.hasAlternative(q.CorrectLabel) {
		errs = append(errs, FieldError{Field: "correct_label", Message: "not among alternative labels"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

func (q Question) hasAlternative(label string) bool {
	for _, a := range q.Alternatives {
		if a.Label == label {
			return true
		}
	}
	return false
}

// IsCorrect reports whether the chosen label matches the correct one.
func (q Question) IsCorrect(label string) bool {
	return label != "" && label == q.CorrectLabel
}
