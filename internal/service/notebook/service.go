// Package notebook implements the saved-notebook business logic: a
// learner snapshots an active practice configuration (filters, settings,
// optionally pinned questions) and reuses it later.
package notebook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/deviuno/ouse-passar-practice/internal/domain"
	"github.com/deviuno/ouse-passar-practice/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type notebookRepo interface {
	Create(ctx context.Context, nb *domain.Notebook) (*domain.Notebook, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Notebook, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*domain.Notebook, error)
	Update(ctx context.Context, nb *domain.Notebook) (*domain.Notebook, error)
	UpdateMatchCount(ctx context.Context, ownerID, id uuid.UUID, count int) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type questionCounter interface {
	Count(ctx context.Context, userID uuid.UUID, f domain.FilterSet) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the notebook business logic.
type Service struct {
	notebooks notebookRepo
	questions questionCounter
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Notebook service.
func NewService(log *slog.Logger, notebooks notebookRepo, questions questionCounter, tx txManager) *Service {
	return &Service{
		notebooks: notebooks,
		questions: questions,
		tx:        tx,
		log:       log.With(slog.String("service", "notebook")),
	}
}

// Create saves a notebook from an active practice configuration. The
// materialized match count is computed at creation; a count failure is
// tolerated (stored as zero) since it is display metadata, not selection
// input.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Notebook, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	matchCount, err := s.questions.Count(ctx, userID, input.Filters)
	if err != nil {
		s.log.WarnContext(ctx, "match count unavailable at creation",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		matchCount = 0
	}

	nb := &domain.Notebook{
		ID:          uuid.New(),
		OwnerID:     userID,
		Name:        input.Name,
		Filters:     input.Filters.Clone(),
		Settings:    input.Settings,
		QuestionIDs: input.QuestionIDs,
		MatchCount:  matchCount,
	}

	created, err := s.notebooks.Create(ctx, nb)
	if err != nil {
		return nil, fmt.Errorf("create notebook: %w", err)
	}

	s.log.InfoContext(ctx, "notebook created",
		slog.String("user_id", userID.String()),
		slog.String("notebook_id", created.ID.String()),
		slog.Int("match_count", matchCount),
	)

	return created, nil
}

// GetByID returns the caller's notebook.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notebook, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	nb, err := s.notebooks.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get notebook: %w", err)
	}
	return nb, nil
}

// List returns the caller's notebooks, most recently updated first.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Notebook, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = 50
	}

	notebooks, err := s.notebooks.List(ctx, userID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list notebooks: %w", err)
	}
	return notebooks, nil
}

// Update edits a notebook's name, filters, settings or pinned questions.
// The row update and the materialized match count refresh run in one
// transaction, so a stored notebook can never carry a count computed
// from filters it no longer has.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Notebook, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.notebooks.GetByID(ctx, userID, input.NotebookID)
	if err != nil {
		return nil, fmt.Errorf("get notebook: %w", err)
	}

	existing.Name = input.Name
	existing.Filters = input.Filters.Clone()
	existing.Settings = input.Settings
	existing.QuestionIDs = input.QuestionIDs

	var updated *domain.Notebook
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		updated, err = s.notebooks.Update(ctx, existing)
		if err != nil {
			return fmt.Errorf("update notebook: %w", err)
		}

		count, err := s.questions.Count(ctx, userID, updated.Filters)
		if err != nil {
			return fmt.Errorf("count questions: %w", err)
		}
		if err := s.notebooks.UpdateMatchCount(ctx, userID, updated.ID, count); err != nil {
			return fmt.Errorf("store match count: %w", err)
		}
		updated.MatchCount = count
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// RefreshMatchCount recomputes and stores how many questions the
// notebook's filters currently resolve to.
func (s *Service) RefreshMatchCount(ctx context.Context, id uuid.UUID) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	nb, err := s.notebooks.GetByID(ctx, userID, id)
	if err != nil {
		return 0, fmt.Errorf("get notebook: %w", err)
	}

	count, err := s.questions.Count(ctx, userID, nb.Filters)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}

	if err := s.notebooks.UpdateMatchCount(ctx, userID, id, count); err != nil {
		return 0, fmt.Errorf("store match count: %w", err)
	}

	return count, nil
}

// Delete removes the caller's notebook.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.notebooks.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete notebook: %w", err)
	}

	s.log.InfoContext(ctx, "notebook deleted",
		slog.String("user_id", userID.String()),
		slog.String("notebook_id", id.String()),
	)
	return nil
}
