package practice

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/deviuno/ouse-passar-practice/internal/domain"
)

var _ questionRepo = &questionRepoMock{}

type questionRepoMock struct {
	FetchFunc      func(ctx context.Context, userID uuid.UUID, f domain.FilterSet, limit int, shuffle bool) ([]domain.Question, error)
	CountFunc      func(ctx context.Context, userID uuid.UUID, f domain.FilterSet) (int, error)
	FetchByIDsFunc func(ctx context.Context, ids []int64) ([]domain.Question, error)

	calls struct {
		Fetch []struct {
			UserID  uuid.UUID
			F       domain.FilterSet
			Limit   int
			Shuffle bool
		}
		Count []struct {
			UserID uuid.UUID
			F      domain.FilterSet
		}
		FetchByIDs []struct {
			IDs []int64
		}
	}
	lockFetch      sync.RWMutex
	lockCount      sync.RWMutex
	lockFetchByIDs sync.RWMutex
}

func (mock *questionRepoMock) Fetch(ctx context.Context, userID uuid.UUID, f domain.FilterSet, limit int, shuffle bool) ([]domain.Question, error) {
	if mock.FetchFunc == nil {
		panic("questionRepoMock.FetchFunc: method is nil but questionRepo.Fetch was just called")
	}
	callInfo := struct {
		UserID  uuid.UUID
		F       domain.FilterSet
		Limit   int
		Shuffle bool
	}{UserID: userID, F: f, Limit: limit, Shuffle: shuffle}
	mock.lockFetch.Lock()
	mock.calls.Fetch = append(mock.calls.Fetch, callInfo)
	mock.lockFetch.Unlock()
	return mock.FetchFunc(ctx, userID, f, limit, shuffle)
}

func (mock *questionRepoMock) FetchCalls() []struct {
	UserID  uuid.UUID
	F       domain.FilterSet
	Limit   int
	Shuffle bool
} {
	mock.lockFetch.RLock()
	calls := mock.calls.Fetch
	mock.lockFetch.RUnlock()
	return calls
}

func (mock *questionRepoMock) Count(ctx context.Context, userID uuid.UUID, f domain.FilterSet) (int, error) {
	if mock.CountFunc == nil {
		panic("questionRepoMock.CountFunc: method is nil but questionRepo.Count was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		F      domain.FilterSet
	}{UserID: userID, F: f}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, userID, f)
}

func (mock *questionRepoMock) CountCalls() []struct {
	UserID uuid.UUID
	F      domain.FilterSet
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *questionRepoMock) FetchByIDs(ctx context.Context, ids []int64) ([]domain.Question, error) {
	if mock.FetchByIDsFunc == nil {
		panic("questionRepoMock.FetchByIDsFunc: method is nil but questionRepo.FetchByIDs was just called")
	}
	callInfo := struct {
		IDs []int64
	}{IDs: ids}
	mock.lockFetchByIDs.Lock()
	mock.calls.FetchByIDs = append(mock.calls.FetchByIDs, callInfo)
	mock.lockFetchByIDs.Unlock()
	return mock.FetchByIDsFunc(ctx, ids)
}

func (mock *questionRepoMock) FetchByIDsCalls() []struct {
	IDs []int64
} {
	mock.lockFetchByIDs.RLock()
	calls := mock.calls.FetchByIDs
	mock.lockFetchByIDs.RUnlock()
	return calls
}

var _ difficultyRepo = &difficultyRepoMock{}

type difficultyRepoMock struct {
	GetIDsByDifficultyFunc func(ctx context.Context, userID uuid.UUID, labels []domain.DifficultyLabel) (domain.DifficultySplit, error)
	SaveRatingFunc         func(ctx context.Context, userID uuid.UUID, questionID int64, label domain.DifficultyLabel) error

	calls struct {
		GetIDsByDifficulty []struct {
			UserID uuid.UUID
			Labels []domain.DifficultyLabel
		}
		SaveRating []struct {
			UserID     uuid.UUID
			QuestionID int64
			Label      domain.DifficultyLabel
		}
	}
	lockGetIDsByDifficulty sync.RWMutex
	lockSaveRating         sync.RWMutex
}

func (mock *difficultyRepoMock) GetIDsByDifficulty(ctx context.Context, userID uuid.UUID, labels []domain.DifficultyLabel) (domain.DifficultySplit, error) {
	if mock.GetIDsByDifficultyFunc == nil {
		panic("difficultyRepoMock.GetIDsByDifficultyFunc: method is nil but difficultyRepo.GetIDsByDifficulty was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Labels []domain.DifficultyLabel
	}{UserID: userID, Labels: labels}
	mock.lockGetIDsByDifficulty.Lock()
	mock.calls.GetIDsByDifficulty = append(mock.calls.GetIDsByDifficulty, callInfo)
	mock.lockGetIDsByDifficulty.Unlock()
	return mock.GetIDsByDifficultyFunc(ctx, userID, labels)
}

func (mock *difficultyRepoMock) GetIDsByDifficultyCalls() []struct {
	UserID uuid.UUID
	Labels []domain.DifficultyLabel
} {
	mock.lockGetIDsByDifficulty.RLock()
	calls := mock.calls.GetIDsByDifficulty
	mock.lockGetIDsByDifficulty.RUnlock()
	return calls
}

func (mock *difficultyRepoMock) SaveRating(ctx context.Context, userID uuid.UUID, questionID int64, label domain.DifficultyLabel) error {
	if mock.SaveRatingFunc == nil {
		panic("difficultyRepoMock.SaveRatingFunc: method is nil but difficultyRepo.SaveRating was just called")
	}
	callInfo := struct {
		UserID     uuid.UUID
		QuestionID int64
		Label      domain.DifficultyLabel
	}{UserID: userID, QuestionID: questionID, Label: label}
	mock.lockSaveRating.Lock()
	mock.calls.SaveRating = append(mock.calls.SaveRating, callInfo)
	mock.lockSaveRating.Unlock()
	return mock.SaveRatingFunc(ctx, userID, questionID, label)
}

func (mock *difficultyRepoMock) SaveRatingCalls() []struct {
	UserID     uuid.UUID
	QuestionID int64
	Label      domain.DifficultyLabel
} {
	mock.lockSaveRating.RLock()
	calls := mock.calls.SaveRating
	mock.lockSaveRating.RUnlock()
	return calls
}

var _ allowanceService = &allowanceServiceMock{}

type allowanceServiceMock struct {
	ConsumeFunc func(ctx context.Context, userID uuid.UUID, programID string, kind domain.ActionKind, metadata map[string]any) (domain.ConsumeResult, error)

	calls struct {
		Consume []struct {
			UserID    uuid.UUID
			ProgramID string
			Kind      domain.ActionKind
			Metadata  map[string]any
		}
	}
	lockConsume sync.RWMutex
}

func (mock *allowanceServiceMock) Consume(ctx context.Context, userID uuid.UUID, programID string, kind domain.ActionKind, metadata map[string]any) (domain.ConsumeResult, error) {
	if mock.ConsumeFunc == nil {
		panic("allowanceServiceMock.ConsumeFunc: method is nil but allowanceService.Consume was just called")
	}
	callInfo := struct {
		UserID    uuid.UUID
		ProgramID string
		Kind      domain.ActionKind
		Metadata  map[string]any
	}{UserID: userID, ProgramID: programID, Kind: kind, Metadata: metadata}
	mock.lockConsume.Lock()
	mock.calls.Consume = append(mock.calls.Consume, callInfo)
	mock.lockConsume.Unlock()
	return mock.ConsumeFunc(ctx, userID, programID, kind, metadata)
}

func (mock *allowanceServiceMock) ConsumeCalls() []struct {
	UserID    uuid.UUID
	ProgramID string
	Kind      domain.ActionKind
	Metadata  map[string]any
} {
	mock.lockConsume.RLock()
	calls := mock.calls.Consume
	mock.lockConsume.RUnlock()
	return calls
}

var _ coefficientsProvider = &coefficientsProviderMock{}

type coefficientsProviderMock struct {
	GetCoefficientsFunc func(ctx context.Context) (domain.RewardCoefficients, error)

	calls struct {
		GetCoefficients []struct{}
	}
	lockGetCoefficients sync.RWMutex
}

func (mock *coefficientsProviderMock) GetCoefficients(ctx context.Context) (domain.RewardCoefficients, error) {
	if mock.GetCoefficientsFunc == nil {
		panic("coefficientsProviderMock.GetCoefficientsFunc: method is nil but coefficientsProvider.GetCoefficients was just called")
	}
	mock.lockGetCoefficients.Lock()
	mock.calls.GetCoefficients = append(mock.calls.GetCoefficients, struct{}{})
	mock.lockGetCoefficients.Unlock()
	return mock.GetCoefficientsFunc(ctx)
}

func (mock *coefficientsProviderMock) GetCoefficientsCalls() []struct{} {
	mock.lockGetCoefficients.RLock()
	calls := mock.calls.GetCoefficients
	mock.lockGetCoefficients.RUnlock()
	return calls
}

var _ summarySink = &summarySinkMock{}

type summarySinkMock struct {
	CreateSessionRecordFunc func(ctx context.Context, s domain.SessionSummary) error
	CreateAnswerRecordFunc  func(ctx context.Context, a domain.AnswerRecord) error

	calls struct {
		CreateSessionRecord []struct {
			S domain.SessionSummary
		}
		CreateAnswerRecord []struct {
			A domain.AnswerRecord
		}
	}
	lockCreateSessionRecord sync.RWMutex
	lockCreateAnswerRecord  sync.RWMutex
}

func (mock *summarySinkMock) CreateSessionRecord(ctx context.Context, s domain.SessionSummary) error {
	if mock.CreateSessionRecordFunc == nil {
		panic("summarySinkMock.CreateSessionRecordFunc: method is nil but summarySink.CreateSessionRecord was just called")
	}
	callInfo := struct {
		S domain.SessionSummary
	}{S: s}
	mock.lockCreateSessionRecord.Lock()
	mock.calls.CreateSessionRecord = append(mock.calls.CreateSessionRecord, callInfo)
	mock.lockCreateSessionRecord.Unlock()
	return mock.CreateSessionRecordFunc(ctx, s)
}

func (mock *summarySinkMock) CreateSessionRecordCalls() []struct {
	S domain.SessionSummary
} {
	mock.lockCreateSessionRecord.RLock()
	calls := mock.calls.CreateSessionRecord
	mock.lockCreateSessionRecord.RUnlock()
	return calls
}

func (mock *summarySinkMock) CreateAnswerRecord(ctx context.Context, a domain.AnswerRecord) error {
	if mock.CreateAnswerRecordFunc == nil {
		panic("summarySinkMock.CreateAnswerRecordFunc: method is nil but summarySink.CreateAnswerRecord was just called")
	}
	callInfo := struct {
		A domain.AnswerRecord
	}{A: a}
	mock.lockCreateAnswerRecord.Lock()
	mock.calls.CreateAnswerRecord = append(mock.calls.CreateAnswerRecord, callInfo)
	mock.lockCreateAnswerRecord.Unlock()
	return mock.CreateAnswerRecordFunc(ctx, a)
}

func (mock *summarySinkMock) CreateAnswerRecordCalls() []struct {
	A domain.AnswerRecord
} {
	mock.lockCreateAnswerRecord.RLock()
	calls := mock.calls.CreateAnswerRecord
	mock.lockCreateAnswerRecord.RUnlock()
	return calls
}

var _ subscriberProvider = &subscriberProviderMock{}

type subscriberProviderMock struct {
	IsUnlimitedFunc func(ctx context.Context, userID uuid.UUID) (bool, error)

	calls struct {
		IsUnlimited []struct {
			UserID uuid.UUID
		}
	}
	lockIsUnlimited sync.RWMutex
}

func (mock *subscriberProviderMock) IsUnlimited(ctx context.Context, userID uuid.UUID) (bool, error) {
	if mock.IsUnlimitedFunc == nil {
		panic("subscriberProviderMock.IsUnlimitedFunc: method is nil but subscriberProvider.IsUnlimited was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockIsUnlimited.Lock()
	mock.calls.IsUnlimited = append(mock.calls.IsUnlimited, callInfo)
	mock.lockIsUnlimited.Unlock()
	return mock.IsUnlimitedFunc(ctx, userID)
}

func (mock *subscriberProviderMock) IsUnlimitedCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockIsUnlimited.RLock()
	calls := mock.calls.IsUnlimited
	mock.lockIsUnlimited.RUnlock()
	return calls
}
