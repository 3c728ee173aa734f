package user

import (
	"context"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDHashFunc   func(ctx context.Context, userIDHash string) (*domain.User, error)
	GetDetailsFunc    func(ctx context.Context, userIDHash string) (*domain.UserDetails, error)
	UpsertDetailsFunc func(ctx context.Context, d *domain.UserDetails) (*domain.UserDetails, error)

	calls struct {
		GetByIDHash []struct {
			Ctx        context.Context
			UserIDHash string
		}
		GetDetails []struct {
			Ctx        context.Context
			UserIDHash string
		}
		UpsertDetails []struct {
			Ctx context.Context
			D   *domain.UserDetails
		}
	}
	lockGetByIDHash   sync.RWMutex
	lockGetDetails    sync.RWMutex
	lockUpsertDetails sync.RWMutex
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

func (mock *userRepoMock) GetDetails(ctx context.Context, userIDHash string) (*domain.UserDetails, error) {
	if mock.GetDetailsFunc == nil {
		panic("userRepoMock.GetDetailsFunc: method is nil but userRepo.GetDetails was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserIDHash string
	}{
		Ctx:        ctx,
		UserIDHash: userIDHash,
	}
	mock.lockGetDetails.Lock()
	mock.calls.GetDetails = append(mock.calls.GetDetails, callInfo)
	mock.lockGetDetails.Unlock()
	return mock.GetDetailsFunc(ctx, userIDHash)
}

func (mock *userRepoMock) GetDetailsCalls() []struct {
	Ctx        context.Context
	UserIDHash string
} {
	mock.lockGetDetails.RLock()
	calls := mock.calls.GetDetails
	mock.lockGetDetails.RUnlock()
	return calls
}

func (mock *userRepoMock) UpsertDetails(ctx context.Context, d *domain.UserDetails) (*domain.UserDetails, error) {
	if mock.UpsertDetailsFunc == nil {
		panic("userRepoMock.UpsertDetailsFunc: method is nil but userRepo.UpsertDetails was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.UserDetails
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockUpsertDetails.Lock()
	mock.calls.UpsertDetails = append(mock.calls.UpsertDetails, callInfo)
	mock.lockUpsertDetails.Unlock()
	return mock.UpsertDetailsFunc(ctx, d)
}

func (mock *userRepoMock) UpsertDetailsCalls() []struct {
	Ctx context.Context
	D   *domain.UserDetails
} {
	mock.lockUpsertDetails.RLock()
	calls := mock.calls.UpsertDetails
	mock.lockUpsertDetails.RUnlock()
	return calls
}
