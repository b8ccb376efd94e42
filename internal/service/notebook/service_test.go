package notebook

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/deviuno/ouse-passar-practice/internal/domain"
	"github.com/deviuno/ouse-passar-practice/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Func-field mocks
// ---------------------------------------------------------------------------

var _ notebookRepo = &notebookRepoMock{}

type notebookRepoMock struct {
	CreateFunc           func(ctx context.Context, nb *domain.Notebook) (*domain.Notebook, error)
	GetByIDFunc          func(ctx context.Context, ownerID, id uuid.UUID) (*domain.Notebook, error)
	ListFunc             func(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*domain.Notebook, error)
	UpdateFunc           func(ctx context.Context, nb *domain.Notebook) (*domain.Notebook, error)
	UpdateMatchCountFunc func(ctx context.Context, ownerID, id uuid.UUID, count int) error
	DeleteFunc           func(ctx context.Context, ownerID, id uuid.UUID) error
}

func (m *notebookRepoMock) Create(ctx context.Context, nb *domain.Notebook) (*domain.Notebook, error) {
	return m.CreateFunc(ctx, nb)
}

func (m *notebookRepoMock) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Notebook, error) {
	return m.GetByIDFunc(ctx, ownerID, id)
}

func (m *notebookRepoMock) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*domain.Notebook, error) {
	return m.ListFunc(ctx, ownerID, limit, offset)
}

func (m *notebookRepoMock) Update(ctx context.Context, nb *domain.Notebook) (*domain.Notebook, error) {
	return m.UpdateFunc(ctx, nb)
}

func (m *notebookRepoMock) UpdateMatchCount(ctx context.Context, ownerID, id uuid.UUID, count int) error {
	return m.UpdateMatchCountFunc(ctx, ownerID, id, count)
}

func (m *notebookRepoMock) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.DeleteFunc(ctx, ownerID, id)
}

var _ questionCounter = &questionCounterMock{}

type questionCounterMock struct {
	CountFunc func(ctx context.Context, userID uuid.UUID, f domain.FilterSet) (int, error)
}

func (m *questionCounterMock) Count(ctx context.Context, userID uuid.UUID, f domain.FilterSet) (int, error) {
	return m.CountFunc(ctx, userID, f)
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback without a real transaction and counts
// the wraps.
type txManagerMock struct {
	calls int
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newTestService(repo *notebookRepoMock, counter *questionCounterMock) *Service {
	return NewService(slog.New(slog.DiscardHandler), repo, counter, &txManagerMock{})
}

func validCreateInput() CreateInput {
	filters := domain.NewFilterSet()
	filters.Toggle(domain.FacetSubject, "Português")
	return CreateInput{
		Name:     "Revisão de Português",
		Filters:  filters,
		Settings: domain.NotebookSettings{QuestionCount: 20, Mode: domain.ModeZen},
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestService_Create_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	repo := &notebookRepoMock{
		CreateFunc: func(ctx context.Context, nb *domain.Notebook) (*domain.Notebook, error) {
			if nb.OwnerID != userID {
				t.Errorf("owner: got %v, want %v", nb.OwnerID, userID)
			}
			if nb.MatchCount != 342 {
				t.Errorf("match count: got %d, want 342", nb.MatchCount)
			}
			return nb, nil
		},
	}
	counter := &questionCounterMock{
		CountFunc: func(ctx context.Context, uid uuid.UUID, f domain.FilterSet) (int, error) {
			return 342, nil
		},
	}
	svc := newTestService(repo, counter)

	ctx := ctxutil.WithUserID(context.Background(), userID)
	nb, err := svc.Create(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nb.Name != "Revisão de Português" {
		t.Errorf("name: got %q", nb.Name)
	}
}

func TestService_Create_CountFailureTolerated(t *testing.T) {
	t.Parallel()

	repo := &notebookRepoMock{
		CreateFunc: func(ctx context.Context, nb *domain.Notebook) (*domain.Notebook, error) {
			if nb.MatchCount != 0 {
				t.Errorf("match count: got %d, want 0 on count failure", nb.MatchCount)
			}
			return nb, nil
		},
	}
	counter := &questionCounterMock{
		CountFunc: func(ctx context.Context, uid uuid.UUID, f domain.FilterSet) (int, error) {
			return 0, errors.New("store down")
		},
	}
	svc := newTestService(repo, counter)

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	if _, err := svc.Create(ctx, validCreateInput()); err != nil {
		t.Fatalf("count failure must not block creation: %v", err)
	}
}

func TestService_Create_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := newTestService(&notebookRepoMock{}, &questionCounterMock{})

	_, err := svc.Create(context.Background(), validCreateInput())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestService_Create_EmptyNotebookRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(&notebookRepoMock{}, &questionCounterMock{})
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	input := CreateInput{
		Name:     "Vazio",
		Settings: domain.NotebookSettings{QuestionCount: 10, Mode: domain.ModeZen},
	}

	_, err := svc.Create(ctx, input)
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestService_Create_PinnedOnlyAllowed(t *testing.T) {
	t.Parallel()

	repo := &notebookRepoMock{
		CreateFunc: func(ctx context.Context, nb *domain.Notebook) (*domain.Notebook, error) {
			return nb, nil
		},
	}
	counter := &questionCounterMock{
		CountFunc: func(ctx context.Context, uid uuid.UUID, f domain.FilterSet) (int, error) {
			return 0, nil
		},
	}
	svc := newTestService(repo, counter)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	input := CreateInput{
		Name:        "Só fixadas",
		Settings:    domain.NotebookSettings{QuestionCount: 5, Mode: domain.ModeHard},
		QuestionIDs: []int64{10, 20, 30},
	}

	if _, err := svc.Create(ctx, input); err != nil {
		t.Fatalf("pinned-only notebook must be valid: %v", err)
	}
}

// ---------------------------------------------------------------------------
// List / Update / Delete
// ---------------------------------------------------------------------------

func TestService_List_DefaultLimit(t *testing.T) {
	t.Parallel()

	repo := &notebookRepoMock{
		ListFunc: func(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*domain.Notebook, error) {
			if limit != 50 {
				t.Errorf("limit: got %d, want 50", limit)
			}
			return nil, nil
		},
	}
	svc := newTestService(repo, &questionCounterMock{})
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	if _, err := svc.List(ctx, ListInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_Update_RefreshesMatchCount(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	notebookID := uuid.New()

	stored := &domain.Notebook{
		ID:      notebookID,
		OwnerID: userID,
		Name:    "Antes",
		Filters: domain.NewFilterSet(),
		Settings: domain.NotebookSettings{
			QuestionCount: 10,
			Mode:          domain.ModeZen,
		},
	}

	var storedCount int
	repo := &notebookRepoMock{
		GetByIDFunc: func(ctx context.Context, oid, id uuid.UUID) (*domain.Notebook, error) {
			return stored, nil
		},
		UpdateFunc: func(ctx context.Context, nb *domain.Notebook) (*domain.Notebook, error) {
			return nb, nil
		},
		UpdateMatchCountFunc: func(ctx context.Context, oid, id uuid.UUID, count int) error {
			storedCount = count
			return nil
		},
	}
	counter := &questionCounterMock{
		CountFunc: func(ctx context.Context, uid uuid.UUID, f domain.FilterSet) (int, error) {
			return 77, nil
		},
	}
	tx := &txManagerMock{}
	svc := NewService(slog.New(slog.DiscardHandler), repo, counter, tx)
	ctx := ctxutil.WithUserID(context.Background(), userID)

	filters := domain.NewFilterSet()
	filters.Toggle(domain.FacetBoard, "FGV")

	updated, err := svc.Update(ctx, UpdateInput{
		NotebookID: notebookID,
		Name:       "Depois",
		Filters:    filters,
		Settings:   domain.NotebookSettings{QuestionCount: 15, Mode: domain.ModeHard},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != "Depois" {
		t.Errorf("name: got %q, want %q", updated.Name, "Depois")
	}
	if updated.MatchCount != 77 {
		t.Errorf("match count: got %d, want 77", updated.MatchCount)
	}
	if storedCount != 77 {
		t.Errorf("stored match count: got %d, want 77", storedCount)
	}
	if tx.calls != 1 {
		t.Errorf("transactions: got %d, want 1 (update and count refresh share one)", tx.calls)
	}
}

func TestService_Update_CountFailureFailsUpdate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	notebookID := uuid.New()

	matchCountStored := false
	repo := &notebookRepoMock{
		GetByIDFunc: func(ctx context.Context, oid, id uuid.UUID) (*domain.Notebook, error) {
			return &domain.Notebook{
				ID:       notebookID,
				OwnerID:  userID,
				Name:     "Antes",
				Filters:  domain.NewFilterSet(),
				Settings: domain.NotebookSettings{QuestionCount: 10, Mode: domain.ModeZen},
			}, nil
		},
		UpdateFunc: func(ctx context.Context, nb *domain.Notebook) (*domain.Notebook, error) {
			return nb, nil
		},
		UpdateMatchCountFunc: func(ctx context.Context, oid, id uuid.UUID, count int) error {
			matchCountStored = true
			return nil
		},
	}
	counter := &questionCounterMock{
		CountFunc: func(ctx context.Context, uid uuid.UUID, f domain.FilterSet) (int, error) {
			return 0, errors.New("store down")
		},
	}
	svc := newTestService(repo, counter)
	ctx := ctxutil.WithUserID(context.Background(), userID)

	filters := domain.NewFilterSet()
	filters.Toggle(domain.FacetBoard, "FGV")

	// The count runs inside the update's transaction; a failure rolls
	// the whole edit back instead of committing a stale count.
	_, err := svc.Update(ctx, UpdateInput{
		NotebookID: notebookID,
		Name:       "Depois",
		Filters:    filters,
		Settings:   domain.NotebookSettings{QuestionCount: 15, Mode: domain.ModeHard},
	})
	if err == nil {
		t.Fatal("expected the update to fail when the count does")
	}
	if matchCountStored {
		t.Error("match count must not be stored after a count failure")
	}
}

func TestService_RefreshMatchCount(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	notebookID := uuid.New()

	storedCount := -1
	repo := &notebookRepoMock{
		GetByIDFunc: func(ctx context.Context, oid, id uuid.UUID) (*domain.Notebook, error) {
			return &domain.Notebook{ID: notebookID, OwnerID: userID, Filters: domain.NewFilterSet()}, nil
		},
		UpdateMatchCountFunc: func(ctx context.Context, oid, id uuid.UUID, count int) error {
			storedCount = count
			return nil
		},
	}
	counter := &questionCounterMock{
		CountFunc: func(ctx context.Context, uid uuid.UUID, f domain.FilterSet) (int, error) {
			return 19, nil
		},
	}
	svc := newTestService(repo, counter)
	ctx := ctxutil.WithUserID(context.Background(), userID)

	count, err := svc.RefreshMatchCount(ctx, notebookID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 19 || storedCount != 19 {
		t.Errorf("counts: returned %d, stored %d, want 19", count, storedCount)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	t.Parallel()

	repo := &notebookRepoMock{
		GetByIDFunc: func(ctx context.Context, oid, id uuid.UUID) (*domain.Notebook, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(repo, &questionCounterMock{})
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	input := UpdateInput{
		NotebookID: uuid.New(),
		Name:       "Qualquer",
		Settings:   domain.NotebookSettings{QuestionCount: 5, Mode: domain.ModeZen},
		QuestionIDs: []int64{
			1,
		},
	}

	_, err := svc.Update(ctx, input)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	notebookID := uuid.New()

	deleted := false
	repo := &notebookRepoMock{
		DeleteFunc: func(ctx context.Context, oid, id uuid.UUID) error {
			if oid != userID || id != notebookID {
				t.Errorf("delete args: got (%v, %v)", oid, id)
			}
			deleted = true
			return nil
		},
	}
	svc := newTestService(repo, &questionCounterMock{})
	ctx := ctxutil.WithUserID(context.Background(), userID)

	if err := svc.Delete(ctx, notebookID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("repo Delete was not called")
	}
}
