package domain

import "slices"

// ToggleSet holds the boolean selection criteria. Toggles are independent:
// no pair implies exclusivity, even Easy/Medium/Hard.
type ToggleSet struct {
	ReviewedOnly  bool `json:"reviewed_only"`
	HasComment    bool `json:"has_comment"`
	Solved        bool `json:"solved"`
	Unsolved      bool `json:"unsolved"`
	AnsweredRight bool `json:"answered_right"`
	AnsweredWrong bool `json:"answered_wrong"`
	Easy          bool `json:"easy"`
	Medium        bool `json:"medium"`
	Hard          bool `json:"hard"`
}

// Count returns the number of enabled toggles.
func (t ToggleSet) Count() int {
	n := 0
	for _, b := range []bool{
		t.ReviewedOnly, t.HasComment,
		t.Solved, t.Unsolved, t.AnsweredRight, t.AnsweredWrong,
		t.Easy, t.Medium, t.Hard,
	} {
		if b {
			n++
		}
	}
	return n
}

// ActiveDifficulties returns the difficulty labels enabled by the
// Easy/Medium/Hard toggles, in fixed order.
func (t ToggleSet) ActiveDifficulties() []DifficultyLabel {
	var labels []DifficultyLabel
	if t.Easy {
		labels = append(labels, DifficultyEasy)
	}
	if t.Medium {
		labels = append(labels, DifficultyMedium)
	}
	if t.Hard {
		labels = append(labels, DifficultyHard)
	}
	return labels
}

// FilterSet is the normalized representation of all selection criteria:
// facet values plus toggles. Every facet slice keeps insertion order and
// is duplicate-free. Mutate only through Toggle/Clear so the invariant
// holds; the fields stay exported for JSONB (de)serialization inside a
// Notebook.
type FilterSet struct {
	Facets  map[Facet][]string `json:"facets"`
	Toggles ToggleSet          `json:"toggles"`
}

// NewFilterSet returns a FilterSet with all-empty defaults.
func NewFilterSet() FilterSet {
	return FilterSet{Facets: make(map[Facet][]string)}
}

// Toggle adds value to the facet if absent, removes it if present.
// It is total and its own inverse; cardinality is unconstrained.
func (f *FilterSet) Toggle(facet Facet, value string) {
	if f.Facets == nil {
		f.Facets = make(map[Facet][]string)
	}
	values := f.Facets[facet]
	if i := slices.Index(values, value); i >= 0 {
		values = slices.Delete(values, i, i+1)
		if len(values) == 0 {
			delete(f.Facets, facet)
			return
		}
		f.Facets[facet] = values
		return
	}
	f.Facets[facet] = append(values, value)
}

// Values returns a copy of the facet's values (nil when empty).
func (f FilterSet) Values(facet Facet) []string {
	return slices.Clone(f.Facets[facet])
}

// Has reports whether value is selected on the facet.
func (f FilterSet) Has(facet Facet, value string) bool {
	return slices.Contains(f.Facets[facet], value)
}

// Clear resets every facet to empty and every toggle to false.
func (f *FilterSet) Clear() {
	f.Facets = make(map[Facet][]string)
	f.Toggles = ToggleSet{}
}

// CountActive is the sum of all facet cardinalities plus the number of
// enabled toggles. Used for UI/telemetry only, never for selection logic.
func (f FilterSet) CountActive() int {
	n := f.Toggles.Count()
	for _, values := range f.Facets {
		n += len(values)
	}
	return n
}

// HasAny reports whether any facet value or toggle is active.
func (f FilterSet) HasAny() bool {
	return f.CountActive() > 0
}

// Clone returns a deep copy, so a frozen session or a saved Notebook
// cannot be mutated through the original.
func (f FilterSet) Clone() FilterSet {
	out := FilterSet{
		Facets:  make(map[Facet][]string, len(f.Facets)),
		Toggles: f.Toggles,
	}
	for facet, values := range f.Facets {
		out.Facets[facet] = slices.Clone(values)
	}
	return out
}
