package insight

import (
	"context"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"sync"
)

var _ predictionStore = &predictionStoreMock{}

type predictionStoreMock struct {
	GetFunc    func(ctx context.Context, userIDHash string) (*domain.CyclePrediction, error)
	UpsertFunc func(ctx context.Context, p *domain.CyclePrediction) (*domain.CyclePrediction, error)

	calls struct {
		Get []struct {
			Ctx        context.Context
			UserIDHash string
		}
		Upsert []struct {
			Ctx context.Context
			P   *domain.CyclePrediction
		}
	}
	lockGet    sync.RWMutex
	lockUpsert sync.RWMutex
}

func (mock *predictionStoreMock) Get(ctx context.Context, userIDHash string) (*domain.CyclePrediction, error) {
	if mock.GetFunc == nil {
		panic("predictionStoreMock.GetFunc: method is nil but predictionStore.Get was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserIDHash string
	}{
		Ctx:        ctx,
		UserIDHash: userIDHash,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userIDHash)
}

func (mock *predictionStoreMock) GetCalls() []struct {
	Ctx        context.Context
	UserIDHash string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *predictionStoreMock) Upsert(ctx context.Context, p *domain.CyclePrediction) (*domain.CyclePrediction, error) {
	if mock.UpsertFunc == nil {
		panic("predictionStoreMock.UpsertFunc: method is nil but predictionStore.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.CyclePrediction
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, p)
}

func (mock *predictionStoreMock) UpsertCalls() []struct {
	Ctx context.Context
	P   *domain.CyclePrediction
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
