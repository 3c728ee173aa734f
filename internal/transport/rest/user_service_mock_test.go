package rest

import (
	"context"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"github.com/heartmarshall/cycletrack-backend/internal/service/user"
	"sync"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	GetProfileFunc  func(ctx context.Context) (*domain.UserProfile, error)
	SaveDetailsFunc func(ctx context.Context, input user.SaveDetailsInput) (*domain.UserDetails, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
		}
		SaveDetails []struct {
			Ctx   context.Context
			Input user.SaveDetailsInput
		}
	}
	lockGetProfile  sync.RWMutex
	lockSaveDetails sync.RWMutex
}

func (mock *userServiceMock) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	if mock.GetProfileFunc == nil {
		panic("userServiceMock.GetProfileFunc: method is nil but userService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *userServiceMock) GetProfileCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) SaveDetails(ctx context.Context, input user.SaveDetailsInput) (*domain.UserDetails, error) {
	if mock.SaveDetailsFunc == nil {
		panic("userServiceMock.SaveDetailsFunc: method is nil but userService.SaveDetails was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.SaveDetailsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSaveDetails.Lock()
	mock.calls.SaveDetails = append(mock.calls.SaveDetails, callInfo)
	mock.lockSaveDetails.Unlock()
	return mock.SaveDetailsFunc(ctx, input)
}

func (mock *userServiceMock) SaveDetailsCalls() []struct {
	Ctx   context.Context
	Input user.SaveDetailsInput
} {
	mock.lockSaveDetails.RLock()
	calls := mock.calls.SaveDetails
	mock.lockSaveDetails.RUnlock()
	return calls
}
