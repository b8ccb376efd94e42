package question

import (
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/deviuno/ouse-passar-practice/internal/domain"
)

// facetColumns maps each facet to its questions-table column.
// FacetDifficulty matches the community difficulty column.
var facetColumns = map[domain.Facet]string{
	domain.FacetSubject:        "subject",
	domain.FacetTopic:          "topic",
	domain.FacetBoard:          "board",
	domain.FacetOrganization:   "organization",
	domain.FacetRole:           "role",
	domain.FacetEducationLevel: "education_level",
	domain.FacetModality:       "modality",
	domain.FacetDifficulty:     "difficulty",
}

// reviewedEncodings lists every truthy representation the legacy data uses
// for the reviewed flag. The store historically mixed boolean and string
// encodings; the OR across all of them is load-bearing compatibility
// behavior, not a style choice. Do not collapse to a single check without
// a data migration.
var reviewedEncodings = []string{"true", "TRUE", "t", "sim", "1"}

// buildPredicates translates a FilterSet into a squirrel conjunction.
// Each non-empty facet becomes a membership predicate; empty facets impose
// no constraint. History toggles are scoped to the given user's answer log.
func buildPredicates(userID string, f domain.FilterSet) sq.And {
	var and sq.And

	for _, facet := range domain.AllFacets() {
		values := f.Facets[facet]
		if len(values) == 0 {
			continue
		}
		if facet == domain.FacetYear {
			if years := coerceYears(values); len(years) > 0 {
				and = append(and, sq.Eq{"year": years})
			}
			continue
		}
		and = append(and, sq.Eq{facetColumns[facet]: values})
	}

	t := f.Toggles

	if t.ReviewedOnly {
		or := make(sq.Or, 0, len(reviewedEncodings))
		for _, enc := range reviewedEncodings {
			or = append(or, sq.Eq{"reviewed": enc})
		}
		and = append(and, or)
	}

	if t.HasComment {
		and = append(and, sq.And{
			sq.NotEq{"comment": nil},
			sq.NotEq{"comment": ""},
		})
	}

	if t.Solved {
		and = append(and, answeredExpr(userID, "", true))
	}
	if t.Unsolved {
		and = append(and, answeredExpr(userID, "", false))
	}
	if t.AnsweredRight {
		and = append(and, answeredExpr(userID, "AND a.correct", true))
	}
	if t.AnsweredWrong {
		and = append(and, answeredExpr(userID, "AND NOT a.correct", true))
	}

	return and
}

// answeredExpr builds an EXISTS (or NOT EXISTS) probe into the user's
// answer history.
func answeredExpr(userID, extra string, exists bool) sq.Sqlizer {
	prefix := "EXISTS"
	if !exists {
		prefix = "NOT EXISTS"
	}
	return sq.Expr(
		prefix+` (SELECT 1 FROM practice_answers a
WHERE a.question_id = questions.id AND a.user_id = ? `+extra+`)`,
		userID,
	)
}

// coerceYears converts facet values to ints, dropping unparseable entries.
func coerceYears(values []string) []int {
	years := make([]int, 0, len(values))
	for _, v := range values {
		if y, err := strconv.Atoi(v); err == nil {
			years = append(years, y)
		}
	}
	return years
}
