package cycle

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"sync"
	"time"
)

var _ cycleStore = &cycleStoreMock{}

type cycleStoreMock struct {
	CreatePeriodRecordFunc  func(ctx context.Context, rec *domain.PeriodRecord) (*domain.PeriodRecord, error)
	EnsureCurrentPeriodFunc func(ctx context.Context, userIDHash string, now time.Time) error
	GetCurrentPeriodFunc    func(ctx context.Context, userIDHash string) (*domain.CurrentPeriod, error)
	GetPeriodRecordFunc     func(ctx context.Context, userIDHash string, id uuid.UUID) (*domain.PeriodRecord, error)
	ListPeriodRecordsFunc   func(ctx context.Context, userIDHash string, filter domain.PeriodFilter) ([]domain.PeriodRecord, int, error)
	ListStaleOngoingFunc    func(ctx context.Context, cutoff time.Time, limit int) ([]domain.PeriodRecord, error)
	LockCurrentPeriodFunc   func(ctx context.Context, userIDHash string) (*domain.CurrentPeriod, error)
	UpdatePeriodRecordFunc  func(ctx context.Context, rec *domain.PeriodRecord) (*domain.PeriodRecord, error)
	UpsertCurrentPeriodFunc func(ctx context.Context, cp *domain.CurrentPeriod) (*domain.CurrentPeriod, error)

	calls struct {
		CreatePeriodRecord []struct {
			Ctx context.Context
			Rec *domain.PeriodRecord
		}
		EnsureCurrentPeriod []struct {
			Ctx        context.Context
			UserIDHash string
			Now        time.Time
		}
		GetCurrentPeriod []struct {
			Ctx        context.Context
			UserIDHash string
		}
		GetPeriodRecord []struct {
			Ctx        context.Context
			UserIDHash string
			Id         uuid.UUID
		}
		ListPeriodRecords []struct {
			Ctx        context.Context
			UserIDHash string
			Filter     domain.PeriodFilter
		}
		ListStaleOngoing []struct {
			Ctx    context.Context
			Cutoff time.Time
			Limit  int
		}
		LockCurrentPeriod []struct {
			Ctx        context.Context
			UserIDHash string
		}
		UpdatePeriodRecord []struct {
			Ctx context.Context
			Rec *domain.PeriodRecord
		}
		UpsertCurrentPeriod []struct {
			Ctx context.Context
			Cp  *domain.CurrentPeriod
		}
	}
	lockCreatePeriodRecord  sync.RWMutex
	lockEnsureCurrentPeriod sync.RWMutex
	lockGetCurrentPeriod    sync.RWMutex
	lockGetPeriodRecord     sync.RWMutex
	lockListPeriodRecords   sync.RWMutex
	lockListStaleOngoing    sync.RWMutex
	lockLockCurrentPeriod   sync.RWMutex
	lockUpdatePeriodRecord  sync.RWMutex
	lockUpsertCurrentPeriod sync.RWMutex
}

func (mock *cycleStoreMock) CreatePeriodRecord(ctx context.Context, rec *domain.PeriodRecord) (*domain.PeriodRecord, error) {
	if mock.CreatePeriodRecordFunc == nil {
		panic("cycleStoreMock.CreatePeriodRecordFunc: method is nil but cycleStore.CreatePeriodRecord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.PeriodRecord
	}{
		Ctx: ctx,
		Rec: rec,
	}
	mock.lockCreatePeriodRecord.Lock()
	mock.calls.CreatePeriodRecord = append(mock.calls.CreatePeriodRecord, callInfo)
	mock.lockCreatePeriodRecord.Unlock()
	return mock.CreatePeriodRecordFunc(ctx, rec)
}

func (mock *cycleStoreMock) CreatePeriodRecordCalls() []struct {
	Ctx context.Context
	Rec *domain.PeriodRecord
} {
	mock.lockCreatePeriodRecord.RLock()
	calls := mock.calls.CreatePeriodRecord
	mock.lockCreatePeriodRecord.RUnlock()
	return calls
}

func (mock *cycleStoreMock) EnsureCurrentPeriod(ctx context.Context, userIDHash string, now time.Time) error {
	if mock.EnsureCurrentPeriodFunc == nil {
		panic("cycleStoreMock.EnsureCurrentPeriodFunc: method is nil but cycleStore.EnsureCurrentPeriod was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserIDHash string
		Now        time.Time
	}{
		Ctx:        ctx,
		UserIDHash: userIDHash,
		Now:        now,
	}
	mock.lockEnsureCurrentPeriod.Lock()
	mock.calls.EnsureCurrentPeriod = append(mock.calls.EnsureCurrentPeriod, callInfo)
	mock.lockEnsureCurrentPeriod.Unlock()
	return mock.EnsureCurrentPeriodFunc(ctx, userIDHash, now)
}

func (mock *cycleStoreMock) EnsureCurrentPeriodCalls() []struct {
	Ctx        context.Context
	UserIDHash string
	Now        time.Time
} {
	mock.lockEnsureCurrentPeriod.RLock()
	calls := mock.calls.EnsureCurrentPeriod
	mock.lockEnsureCurrentPeriod.RUnlock()
	return calls
}

func (mock *cycleStoreMock) GetCurrentPeriod(ctx context.Context, userIDHash string) (*domain.CurrentPeriod, error) {
	if mock.GetCurrentPeriodFunc == nil {
		panic("cycleStoreMock.GetCurrentPeriodFunc: method is nil but cycleStore.GetCurrentPeriod was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserIDHash string
	}{
		Ctx:        ctx,
		UserIDHash: userIDHash,
	}
	mock.lockGetCurrentPeriod.Lock()
	mock.calls.GetCurrentPeriod = append(mock.calls.GetCurrentPeriod, callInfo)
	mock.lockGetCurrentPeriod.Unlock()
	return mock.GetCurrentPeriodFunc(ctx, userIDHash)
}

func (mock *cycleStoreMock) GetCurrentPeriodCalls() []struct {
	Ctx        context.Context
	UserIDHash string
} {
	mock.lockGetCurrentPeriod.RLock()
	calls := mock.calls.GetCurrentPeriod
	mock.lockGetCurrentPeriod.RUnlock()
	return calls
}

func (mock *cycleStoreMock) GetPeriodRecord(ctx context.Context, userIDHash string, id uuid.UUID) (*domain.PeriodRecord, error) {
	if mock.GetPeriodRecordFunc == nil {
		panic("cycleStoreMock.GetPeriodRecordFunc: method is nil but cycleStore.GetPeriodRecord was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserIDHash string
		Id         uuid.UUID
	}{
		Ctx:        ctx,
		UserIDHash: userIDHash,
		Id:         id,
	}
	mock.lockGetPeriodRecord.Lock()
	mock.calls.GetPeriodRecord = append(mock.calls.GetPeriodRecord, callInfo)
	mock.lockGetPeriodRecord.Unlock()
	return mock.GetPeriodRecordFunc(ctx, userIDHash, id)
}

func (mock *cycleStoreMock) GetPeriodRecordCalls() []struct {
	Ctx        context.Context
	UserIDHash string
	Id         uuid.UUID
} {
	mock.lockGetPeriodRecord.RLock()
	calls := mock.calls.GetPeriodRecord
	mock.lockGetPeriodRecord.RUnlock()
	return calls
}

func (mock *cycleStoreMock) ListPeriodRecords(ctx context.Context, userIDHash string, filter domain.PeriodFilter) ([]domain.PeriodRecord, int, error) {
	if mock.ListPeriodRecordsFunc == nil {
		panic("cycleStoreMock.ListPeriodRecordsFunc: method is nil but cycleStore.ListPeriodRecords was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserIDHash string
		Filter     domain.PeriodFilter
	}{
		Ctx:        ctx,
		UserIDHash: userIDHash,
		Filter:     filter,
	}
	mock.lockListPeriodRecords.Lock()
	mock.calls.ListPeriodRecords = append(mock.calls.ListPeriodRecords, callInfo)
	mock.lockListPeriodRecords.Unlock()
	return mock.ListPeriodRecordsFunc(ctx, userIDHash, filter)
}

func (mock *cycleStoreMock) ListPeriodRecordsCalls() []struct {
	Ctx        context.Context
	UserIDHash string
	Filter     domain.PeriodFilter
} {
	mock.lockListPeriodRecords.RLock()
	calls := mock.calls.ListPeriodRecords
	mock.lockListPeriodRecords.RUnlock()
	return calls
}

func (mock *cycleStoreMock) ListStaleOngoing(ctx context.Context, cutoff time.Time, limit int) ([]domain.PeriodRecord, error) {
	if mock.ListStaleOngoingFunc == nil {
		panic("cycleStoreMock.ListStaleOngoingFunc: method is nil but cycleStore.ListStaleOngoing was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
		Limit  int
	}{
		Ctx:    ctx,
		Cutoff: cutoff,
		Limit:  limit,
	}
	mock.lockListStaleOngoing.Lock()
	mock.calls.ListStaleOngoing = append(mock.calls.ListStaleOngoing, callInfo)
	mock.lockListStaleOngoing.Unlock()
	return mock.ListStaleOngoingFunc(ctx, cutoff, limit)
}

func (mock *cycleStoreMock) ListStaleOngoingCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
	Limit  int
} {
	mock.lockListStaleOngoing.RLock()
	calls := mock.calls.ListStaleOngoing
	mock.lockListStaleOngoing.RUnlock()
	return calls
}

func (mock *cycleStoreMock) LockCurrentPeriod(ctx context.Context, userIDHash string) (*domain.CurrentPeriod, error) {
	if mock.LockCurrentPeriodFunc == nil {
		panic("cycleStoreMock.LockCurrentPeriodFunc: method is nil but cycleStore.LockCurrentPeriod was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserIDHash string
	}{
		Ctx:        ctx,
		UserIDHash: userIDHash,
	}
	mock.lockLockCurrentPeriod.Lock()
	mock.calls.LockCurrentPeriod = append(mock.calls.LockCurrentPeriod, callInfo)
	mock.lockLockCurrentPeriod.Unlock()
	return mock.LockCurrentPeriodFunc(ctx, userIDHash)
}

func (mock *cycleStoreMock) LockCurrentPeriodCalls() []struct {
	Ctx        context.Context
	UserIDHash string
} {
	mock.lockLockCurrentPeriod.RLock()
	calls := mock.calls.LockCurrentPeriod
	mock.lockLockCurrentPeriod.RUnlock()
	return calls
}

func (mock *cycleStoreMock) UpdatePeriodRecord(ctx context.Context, rec *domain.PeriodRecord) (*domain.PeriodRecord, error) {
	if mock.UpdatePeriodRecordFunc == nil {
		panic("cycleStoreMock.UpdatePeriodRecordFunc: method is nil but cycleStore.UpdatePeriodRecord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.PeriodRecord
	}{
		Ctx: ctx,
		Rec: rec,
	}
	mock.lockUpdatePeriodRecord.Lock()
	mock.calls.UpdatePeriodRecord = append(mock.calls.UpdatePeriodRecord, callInfo)
	mock.lockUpdatePeriodRecord.Unlock()
	return mock.UpdatePeriodRecordFunc(ctx, rec)
}

func (mock *cycleStoreMock) UpdatePeriodRecordCalls() []struct {
	Ctx context.Context
	Rec *domain.PeriodRecord
} {
	mock.lockUpdatePeriodRecord.RLock()
	calls := mock.calls.UpdatePeriodRecord
	mock.lockUpdatePeriodRecord.RUnlock()
	return calls
}

func (mock *cycleStoreMock) UpsertCurrentPeriod(ctx context.Context, cp *domain.CurrentPeriod) (*domain.CurrentPeriod, error) {
	if mock.UpsertCurrentPeriodFunc == nil {
		panic("cycleStoreMock.UpsertCurrentPeriodFunc: method is nil but cycleStore.UpsertCurrentPeriod was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Cp  *domain.CurrentPeriod
	}{
		Ctx: ctx,
		Cp:  cp,
	}
	mock.lockUpsertCurrentPeriod.Lock()
	mock.calls.UpsertCurrentPeriod = append(mock.calls.UpsertCurrentPeriod, callInfo)
	mock.lockUpsertCurrentPeriod.Unlock()
	return mock.UpsertCurrentPeriodFunc(ctx, cp)
}

func (mock *cycleStoreMock) UpsertCurrentPeriodCalls() []struct {
	Ctx context.Context
	Cp  *domain.CurrentPeriod
} {
	mock.lockUpsertCurrentPeriod.RLock()
	calls := mock.calls.UpsertCurrentPeriod
	mock.lockUpsertCurrentPeriod.RUnlock()
	return calls
}
