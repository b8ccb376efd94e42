package practice

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/deviuno/ouse-passar-practice/internal/domain"
)

// resolveQuestions turns the start input into the session's question
// list. Store failures and zero-result conditions are blocking for trail
// contexts; free practice substitutes the built-in fallback set with a
// non-blocking notice, because an unfiltered session beats no session.
func (e *Engine) resolveQuestions(ctx context.Context, userID uuid.UUID, input StartInput, target int) ([]domain.Question, string, error) {
	var (
		questions []domain.Question
		err       error
	)

	if len(input.SavedQuestionIDs) > 0 {
		questions, err = e.mergeNotebook(ctx, userID, input.SavedQuestionIDs, input.Filters, target)
	} else {
		questions, err = e.questions.Fetch(ctx, userID, input.Filters, target, true)
		if err == nil {
			questions = e.reweight(ctx, userID, questions, input.Filters.Toggles.ActiveDifficulties())
		}
	}

	fallbackOK := input.Context == domain.ContextFree && e.cfg.Practice.FallbackEnabled

	if err != nil {
		if !fallbackOK {
			return nil, "", fmt.Errorf("resolve questions: %w", err)
		}
		e.log.WarnContext(ctx, "question resolution failed, using fallback set",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return fallbackQuestions(), NoticeFallbackQuestions, nil
	}

	if len(questions) == 0 {
		if !fallbackOK {
			return nil, "", domain.ErrNoQuestions
		}
		e.log.InfoContext(ctx, "filters matched no questions, using fallback set",
			slog.String("user_id", userID.String()),
		)
		return fallbackQuestions(), NoticeFallbackQuestions, nil
	}

	return questions, "", nil
}

// shuffleQuestions permutes the slice in place, an unweighted random
// permutation. Fairness, not performance, is the only guarantee.
func shuffleQuestions(questions []domain.Question) {
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}
