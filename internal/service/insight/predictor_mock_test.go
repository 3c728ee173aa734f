package insight

import (
	"context"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"sync"
)

var _ predictor = &predictorMock{}

type predictorMock struct {
	PredictFunc func(ctx context.Context, history []domain.PeriodSpan) (domain.PredictionResult, error)

	calls struct {
		Predict []struct {
			Ctx     context.Context
			History []domain.PeriodSpan
		}
	}
	lockPredict sync.RWMutex
}

func (mock *predictorMock) Predict(ctx context.Context, history []domain.PeriodSpan) (domain.PredictionResult, error) {
	if mock.PredictFunc == nil {
		panic("predictorMock.PredictFunc: method is nil but predictor.Predict was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		History []domain.PeriodSpan
	}{
		Ctx:     ctx,
		History: history,
	}
	mock.lockPredict.Lock()
	mock.calls.Predict = append(mock.calls.Predict, callInfo)
	mock.lockPredict.Unlock()
	return mock.PredictFunc(ctx, history)
}

func (mock *predictorMock) PredictCalls() []struct {
	Ctx     context.Context
	History []domain.PeriodSpan
} {
	mock.lockPredict.RLock()
	calls := mock.calls.Predict
	mock.lockPredict.RUnlock()
	return calls
}
