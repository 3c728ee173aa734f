package middleware

import (
	"context"
	"sync"
	"time"
)

var _ windowLimiter = &windowLimiterMock{}

type windowLimiterMock struct {
	AllowFunc func(ctx context.Context, key string, now time.Time) (bool, time.Duration, error)

	calls struct {
		Allow []struct {
			Ctx context.Context
			Key string
			Now time.Time
		}
	}
	lockAllow sync.RWMutex
}

func (mock *windowLimiterMock) Allow(ctx context.Context, key string, now time.Time) (bool, time.Duration, error) {
	if mock.AllowFunc == nil {
		panic("windowLimiterMock.AllowFunc: method is nil but windowLimiter.Allow was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
		Now time.Time
	}{
		Ctx: ctx,
		Key: key,
		Now: now,
	}
	mock.lockAllow.Lock()
	mock.calls.Allow = append(mock.calls.Allow, callInfo)
	mock.lockAllow.Unlock()
	return mock.AllowFunc(ctx, key, now)
}

func (mock *windowLimiterMock) AllowCalls() []struct {
	Ctx context.Context
	Key string
	Now time.Time
} {
	mock.lockAllow.RLock()
	calls := mock.calls.Allow
	mock.lockAllow.RUnlock()
	return calls
}
