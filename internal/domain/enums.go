package domain

// Facet is one named filterable dimension of the question bank.
type Facet string

const (
	FacetSubject        Facet = "SUBJECT"
	FacetTopic          Facet = "TOPIC"
	FacetBoard          Facet = "BOARD"
	FacetOrganization   Facet = "ORGANIZATION"
	FacetRole           Facet = "ROLE"
	FacetYear           Facet = "YEAR"
	FacetEducationLevel Facet = "EDUCATION_LEVEL"
	FacetModality       Facet = "MODALITY"
	FacetDifficulty     Facet = "DIFFICULTY"
)

// AllFacets returns every facet in a fixed order.
func AllFacets() []Facet {
	return []Facet{
		FacetSubject,
		FacetTopic,
		FacetBoard,
		FacetOrganization,
		FacetRole,
		FacetYear,
		FacetEducationLevel,
		FacetModality,
		FacetDifficulty,
	}
}

// IsValid reports whether f is a known facet.
func (f Facet) IsValid() bool {
	switch f {
	case FacetSubject, FacetTopic, FacetBoard, FacetOrganization, FacetRole,
		FacetYear, FacetEducationLevel, FacetModality, FacetDifficulty:
		return true
	}
	return false
}

// Mode is the timing discipline of a practice session.
type Mode string

const (
	// ModeZen is untimed practice with reduced rewards.
	ModeZen Mode = "ZEN"
	// ModeHard is a timed simulation with accelerated rewards. The host may
	// impose a per-question timeout that forces advancement.
	ModeHard Mode = "HARD"
)

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	return m == ModeZen || m == ModeHard
}

// SessionContext distinguishes how a session was launched.
type SessionContext string

const (
	// ContextFree is free-form practice driven by user-chosen filters.
	ContextFree SessionContext = "FREE"
	// ContextTrail is driven by a fixed curriculum topic; exempt from
	// battery consumption and has no acceptable fallback question set.
	ContextTrail SessionContext = "TRAIL"
)

// IsValid reports whether c is a known session context.
func (c SessionContext) IsValid() bool {
	return c == ContextFree || c == ContextTrail
}

// DifficultyLabel is a per-(user, question) difficulty rating.
type DifficultyLabel string

const (
	DifficultyEasy   DifficultyLabel = "EASY"
	DifficultyMedium DifficultyLabel = "MEDIUM"
	DifficultyHard   DifficultyLabel = "HARD"
)

// IsValid reports whether l is a known difficulty label.
func (l DifficultyLabel) IsValid() bool {
	return l == DifficultyEasy || l == DifficultyMedium || l == DifficultyHard
}

// ActionKind names a battery-consuming action.
type ActionKind string

const (
	ActionSession  ActionKind = "session"
	ActionQuestion ActionKind = "question"
)

// ConsumeErrorKind classifies a failed battery consumption.
type ConsumeErrorKind string

const (
	// ConsumeErrInsufficient means the battery has no remaining charge.
	ConsumeErrInsufficient ConsumeErrorKind = "insufficient"
	// ConsumeErrUnavailable means the allowance service could not be reached.
	ConsumeErrUnavailable ConsumeErrorKind = "unavailable"
)
