package auth

import (
	"sync"
)

var _ passwordHasher = &passwordHasherMock{}

type passwordHasherMock struct {
	HashFunc   func(plaintext string) string
	VerifyFunc func(plaintext string, digest string) bool

	calls struct {
		Hash []struct {
			Plaintext string
		}
		Verify []struct {
			Plaintext string
			Digest    string
		}
	}
	lockHash   sync.RWMutex
	lockVerify sync.RWMutex
}

func (mock *passwordHasherMock) Hash(plaintext string) string {
	if mock.HashFunc == nil {
		panic("passwordHasherMock.HashFunc: method is nil but passwordHasher.Hash was just called")
	}
	callInfo := struct {
		Plaintext string
	}{
		Plaintext: plaintext,
	}
	mock.lockHash.Lock()
	mock.calls.Hash = append(mock.calls.Hash, callInfo)
	mock.lockHash.Unlock()
	return mock.HashFunc(plaintext)
}

func (mock *passwordHasherMock) HashCalls() []struct {
	Plaintext string
} {
	mock.lockHash.RLock()
	calls := mock.calls.Hash
	mock.lockHash.RUnlock()
	return calls
}

func (mock *passwordHasherMock) Verify(plaintext string, digest string) bool {
	if mock.VerifyFunc == nil {
		panic("passwordHasherMock.VerifyFunc: method is nil but passwordHasher.Verify was just called")
	}
	callInfo := struct {
		Plaintext string
		Digest    string
	}{
		Plaintext: plaintext,
		Digest:    digest,
	}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(plaintext, digest)
}

func (mock *passwordHasherMock) VerifyCalls() []struct {
	Plaintext string
	Digest    string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
