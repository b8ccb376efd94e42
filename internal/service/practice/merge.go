package practice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/deviuno/ouse-passar-practice/internal/domain"
)

// mergeNotebook combines a notebook's pinned questions with a
// filter-driven supplemental set. Pinned questions are always fetched;
// the supplemental fetch over-asks by the pinned count so deduplication
// cannot leave the session short; the combined list gets one final full
// shuffle and is truncated to target.
func (e *Engine) mergeNotebook(ctx context.Context, userID uuid.UUID, savedIDs []int64, filters domain.FilterSet, target int) ([]domain.Question, error) {
	saved, err := e.questions.FetchByIDs(ctx, savedIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch pinned questions: %w", err)
	}

	remaining := max(0, target-len(saved))

	var supplemental []domain.Question
	if remaining > 0 && filters.HasAny() {
		candidates, err := e.questions.Fetch(ctx, userID, filters, remaining+len(saved), true)
		if err != nil {
			return nil, fmt.Errorf("fetch supplemental questions: %w", err)
		}

		pinned := make(map[int64]bool, len(saved))
		for _, q := range saved {
			pinned[q.ID] = true
		}

		for _, q := range candidates {
			if pinned[q.ID] {
				continue
			}
			supplemental = append(supplemental, q)
			if len(supplemental) == remaining {
				break
			}
		}
	}

	combined := make([]domain.Question, 0, len(saved)+len(supplemental))
	combined = append(combined, saved...)
	combined = append(combined, supplemental...)

	shuffleQuestions(combined)

	if len(combined) > target {
		combined = combined[:target]
	}

	return combined, nil
}
