package user

import (
	"context"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"sync"
)

var _ periodReader = &periodReaderMock{}

type periodReaderMock struct {
	GetCurrentPeriodFunc func(ctx context.Context, userIDHash string) (*domain.CurrentPeriod, error)

	calls struct {
		GetCurrentPeriod []struct {
			Ctx        context.Context
			UserIDHash string
		}
	}
	lockGetCurrentPeriod sync.RWMutex
}

func (mock *periodReaderMock) GetCurrentPeriod(ctx context.Context, userIDHash string) (*domain.CurrentPeriod, error) {
	if mock.GetCurrentPeriodFunc == nil {
		panic("periodReaderMock.GetCurrentPeriodFunc: method is nil but periodReader.GetCurrentPeriod was just called")
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

func (mock *periodReaderMock) GetCurrentPeriodCalls() []struct {
	Ctx        context.Context
	UserIDHash string
} {
	mock.lockGetCurrentPeriod.RLock()
	calls := mock.calls.GetCurrentPeriod
	mock.lockGetCurrentPeriod.RUnlock()
	return calls
}
