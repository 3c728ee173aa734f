package cycle

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"sync"
)

var _ symptomStore = &symptomStoreMock{}

type symptomStoreMock struct {
	CreateFunc       func(ctx context.Context, rec *domain.SymptomsRecord) (*domain.SymptomsRecord, error)
	ListFunc         func(ctx context.Context, userIDHash string, filter domain.SymptomFilter) ([]domain.SymptomsRecord, int, error)
	ListByPeriodFunc func(ctx context.Context, userIDHash string, periodRecordID uuid.UUID) ([]domain.SymptomsRecord, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec *domain.SymptomsRecord
		}
		List []struct {
			Ctx        context.Context
			UserIDHash string
			Filter     domain.SymptomFilter
		}
		ListByPeriod []struct {
			Ctx            context.Context
			UserIDHash     string
			PeriodRecordID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockList         sync.RWMutex
	lockListByPeriod sync.RWMutex
}

func (mock *symptomStoreMock) Create(ctx context.Context, rec *domain.SymptomsRecord) (*domain.SymptomsRecord, error) {
	if mock.CreateFunc == nil {
		panic("symptomStoreMock.CreateFunc: method is nil but symptomStore.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.SymptomsRecord
	}{
		Ctx: ctx,
		Rec: rec,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *symptomStoreMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.SymptomsRecord
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *symptomStoreMock) List(ctx context.Context, userIDHash string, filter domain.SymptomFilter) ([]domain.SymptomsRecord, int, error) {
	if mock.ListFunc == nil {
		panic("symptomStoreMock.ListFunc: method is nil but symptomStore.List was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserIDHash string
		Filter     domain.SymptomFilter
	}{
		Ctx:        ctx,
		UserIDHash: userIDHash,
		Filter:     filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userIDHash, filter)
}

func (mock *symptomStoreMock) ListCalls() []struct {
	Ctx        context.Context
	UserIDHash string
	Filter     domain.SymptomFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *symptomStoreMock) ListByPeriod(ctx context.Context, userIDHash string, periodRecordID uuid.UUID) ([]domain.SymptomsRecord, error) {
	if mock.ListByPeriodFunc == nil {
		panic("symptomStoreMock.ListByPeriodFunc: method is nil but symptomStore.ListByPeriod was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		UserIDHash     string
		PeriodRecordID uuid.UUID
	}{
		Ctx:            ctx,
		UserIDHash:     userIDHash,
		PeriodRecordID: periodRecordID,
	}
	mock.lockListByPeriod.Lock()
	mock.calls.ListByPeriod = append(mock.calls.ListByPeriod, callInfo)
	mock.lockListByPeriod.Unlock()
	return mock.ListByPeriodFunc(ctx, userIDHash, periodRecordID)
}

func (mock *symptomStoreMock) ListByPeriodCalls() []struct {
	Ctx            context.Context
	UserIDHash     string
	PeriodRecordID uuid.UUID
} {
	mock.lockListByPeriod.RLock()
	calls := mock.calls.ListByPeriod
	mock.lockListByPeriod.RUnlock()
	return calls
}
