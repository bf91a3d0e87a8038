package auth

import (
	"sync"
)

var _ passwordHasher = &passwordHasherMock{}

type passwordHasherMock struct {
	CompareFunc func(hash string, password string) error
	HashFunc    func(password string) (string, error)

	calls struct {
		Compare []struct {
			Hash     string
			Password string
		}
		Hash []struct {
			Password string
		}
	}
	lockCompare sync.RWMutex
	lockHash    sync.RWMutex
}

func (mock *passwordHasherMock) Compare(hash string, password string) error {
	if mock.CompareFunc == nil {
		panic("passwordHasherMock.CompareFunc: method is nil but passwordHasher.Compare was just called")
	}
	callInfo := struct {
		Hash     string
		Password string
	}{Hash: hash, Password: password}
	mock.lockCompare.Lock()
	mock.calls.Compare = append(mock.calls.Compare, callInfo)
	mock.lockCompare.Unlock()
	return mock.CompareFunc(hash, password)
}

func (mock *passwordHasherMock) CompareCalls() []struct {
	Hash     string
	Password string
} {
	mock.lockCompare.RLock()
	calls := mock.calls.Compare
	mock.lockCompare.RUnlock()
	return calls
}

func (mock *passwordHasherMock) Hash(password string) (string, error) {
	if mock.HashFunc == nil {
		panic("passwordHasherMock.HashFunc: method is nil but passwordHasher.Hash was just called")
	}
	callInfo := struct{ Password string }{Password: password}
	mock.lockHash.Lock()
	mock.calls.Hash = append(mock.calls.Hash, callInfo)
	mock.lockHash.Unlock()
	return mock.HashFunc(password)
}

func (mock *passwordHasherMock) HashCalls() []struct {
	Password string
} {
	mock.lockHash.RLock()
	calls := mock.calls.Hash
	mock.lockHash.RUnlock()
	return calls
}
