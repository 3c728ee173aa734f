package auth

import (
	"context"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc      func(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmailFunc  func(ctx context.Context, email string) (*domain.User, error)
	GetByIDHashFunc func(ctx context.Context, userIDHash string) (*domain.User, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByIDHash []struct {
			Ctx        context.Context
			UserIDHash string
		}
	}
	lockCreate      sync.RWMutex
	lockGetByEmail  sync.RWMutex
	lockGetByIDHash sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{
		Ctx:  ctx,
		User: user,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByIDHash(ctx context.Context, userIDHash string) (*domain.User, error) {
	if mock.GetByIDHashFunc == nil {
		panic("userRepoMock.GetByIDHashFunc: method is nil but userRepo.GetByIDHash was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserIDHash string
	}{
		Ctx:        ctx,
		UserIDHash: userIDHash,
	}
	mock.lockGetByIDHash.Lock()
	mock.calls.GetByIDHash = append(mock.calls.GetByIDHash, callInfo)
	mock.lockGetByIDHash.Unlock()
	return mock.GetByIDHashFunc(ctx, userIDHash)
}

func (mock *userRepoMock) GetByIDHashCalls() []struct {
	Ctx        context.Context
	UserIDHash string
} {
	mock.lockGetByIDHash.RLock()
	calls := mock.calls.GetByIDHash
	mock.lockGetByIDHash.RUnlock()
	return calls
}
