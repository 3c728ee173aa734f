package insight

import (
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"sync"
)

var _ phaseCatalog = &phaseCatalogMock{}

type phaseCatalogMock struct {
	DescribeFunc func(phase domain.Phase) string

	calls struct {
		Describe []struct {
			Phase domain.Phase
		}
	}
	lockDescribe sync.RWMutex
}

func (mock *phaseCatalogMock) Describe(phase domain.Phase) string {
	if mock.DescribeFunc == nil {
		panic("phaseCatalogMock.DescribeFunc: method is nil but phaseCatalog.Describe was just called")
	}
	callInfo := struct {
		Phase domain.Phase
	}{
		Phase: phase,
	}
	mock.lockDescribe.Lock()
	mock.calls.Describe = append(mock.calls.Describe, callInfo)
	mock.lockDescribe.Unlock()
	return mock.DescribeFunc(phase)
}

func (mock *phaseCatalogMock) DescribeCalls() []struct {
	Phase domain.Phase
} {
	mock.lockDescribe.RLock()
	calls := mock.calls.Describe
	mock.lockDescribe.RUnlock()
	return calls
}
