package rest

import (
	"context"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"github.com/heartmarshall/cycletrack-backend/internal/service/auth"
	"sync"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	AuthenticateFunc  func(ctx context.Context, input auth.AuthenticateInput) (*auth.AuthResult, error)
	LogoutFunc        func(ctx context.Context) error
	ValidateTokenFunc func(ctx context.Context, token string) (*domain.User, error)

	calls struct {
		Authenticate []struct {
			Ctx   context.Context
			Input auth.AuthenticateInput
		}
		Logout []struct {
			Ctx context.Context
		}
		ValidateToken []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockAuthenticate  sync.RWMutex
	lockLogout        sync.RWMutex
	lockValidateToken sync.RWMutex
}

func (mock *authServiceMock) Authenticate(ctx context.Context, input auth.AuthenticateInput) (*auth.AuthResult, error) {
	if mock.AuthenticateFunc == nil {
		panic("authServiceMock.AuthenticateFunc: method is nil but authService.Authenticate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.AuthenticateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAuthenticate.Lock()
	mock.calls.Authenticate = append(mock.calls.Authenticate, callInfo)
	mock.lockAuthenticate.Unlock()
	return mock.AuthenticateFunc(ctx, input)
}

func (mock *authServiceMock) AuthenticateCalls() []struct {
	Ctx   context.Context
	Input auth.AuthenticateInput
} {
	mock.lockAuthenticate.RLock()
	calls := mock.calls.Authenticate
	mock.lockAuthenticate.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *authServiceMock) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	if mock.ValidateTokenFunc == nil {
		panic("authServiceMock.ValidateTokenFunc: method is nil but authService.ValidateToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{
		Ctx:   ctx,
		Token: token,
	}
	mock.lockValidateToken.Lock()
	mock.calls.ValidateToken = append(mock.calls.ValidateToken, callInfo)
	mock.lockValidateToken.Unlock()
	return mock.ValidateTokenFunc(ctx, token)
}

func (mock *authServiceMock) ValidateTokenCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockValidateToken.RLock()
	calls := mock.calls.ValidateToken
	mock.lockValidateToken.RUnlock()
	return calls
}
