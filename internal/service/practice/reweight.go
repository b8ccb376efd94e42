package practice

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/deviuno/ouse-passar-practice/internal/domain"
)

// reweight re-ranks a candidate list using difficulty ratings. Questions
// the user rated with an active label come first, community-rated ones
// after, each group keeping the incoming (possibly pre-shuffled) order.
// Difficulty filtering is a preference, not a requirement: an empty
// filtered result, or a ratings-store failure, falls back to the input
// unchanged rather than producing an empty session.
func (e *Engine) reweight(ctx context.Context, userID uuid.UUID, questions []domain.Question, labels []domain.DifficultyLabel) []domain.Question {
	if len(labels) == 0 || len(questions) == 0 {
		return questions
	}

	split, err := e.ratings.GetIDsByDifficulty(ctx, userID, labels)
	if err != nil {
		e.log.WarnContext(ctx, "difficulty reweighting skipped",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return questions
	}

	userRated := make(map[int64]bool, len(split.UserRated))
	for _, id := range split.UserRated {
		userRated[id] = true
	}
	communityRated := make(map[int64]bool, len(split.CommunityRated))
	for _, id := range split.CommunityRated {
		communityRated[id] = true
	}

	var own, others []domain.Question
	for _, q := range questions {
		switch {
		case userRated[q.ID]:
			own = append(own, q)
		case communityRated[q.ID]:
			others = append(others, q)
		}
	}

	filtered := append(own, others...)
	if len(filtered) == 0 {
		return questions
	}
	return filtered
}
