package auth

import (
	"sync"
	"time"
)

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	IssueFunc  func(userIDHash string, now time.Time) (string, time.Time, error)
	VerifyFunc func(token string, now time.Time) (string, error)

	calls struct {
		Issue []struct {
			UserIDHash string
			Now        time.Time
		}
		Verify []struct {
			Token string
			Now   time.Time
		}
	}
	lockIssue  sync.RWMutex
	lockVerify sync.RWMutex
}

func (mock *tokenManagerMock) Issue(userIDHash string, now time.Time) (string, time.Time, error) {
	if mock.IssueFunc == nil {
		panic("tokenManagerMock.IssueFunc: method is nil but tokenManager.Issue was just called")
	}
	callInfo := struct {
		UserIDHash string
		Now        time.Time
	}{
		UserIDHash: userIDHash,
		Now:        now,
	}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(userIDHash, now)
}

func (mock *tokenManagerMock) IssueCalls() []struct {
	UserIDHash string
	Now        time.Time
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}

func (mock *tokenManagerMock) Verify(token string, now time.Time) (string, error) {
	if mock.VerifyFunc == nil {
		panic("tokenManagerMock.VerifyFunc: method is nil but tokenManager.Verify was just called")
	}
	callInfo := struct {
		Token string
		Now   time.Time
	}{
		Token: token,
		Now:   now,
	}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(token, now)
}

func (mock *tokenManagerMock) VerifyCalls() []struct {
	Token string
	Now   time.Time
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
