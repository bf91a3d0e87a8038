package auth

import (
	"sync"
)

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	IssueTokenFunc      func(identity string) (string, error)
	ResolveIdentityFunc func(token string) (string, error)

	calls struct {
		IssueToken []struct {
			Identity string
		}
		ResolveIdentity []struct {
			Token string
		}
	}
	lockIssueToken      sync.RWMutex
	lockResolveIdentity sync.RWMutex
}

func (mock *tokenIssuerMock) IssueToken(identity string) (string, error) {
	if mock.IssueTokenFunc == nil {
		panic("tokenIssuerMock.IssueTokenFunc: method is nil but tokenIssuer.IssueToken was just called")
	}
	callInfo := struct{ Identity string }{Identity: identity}
	mock.lockIssueToken.Lock()
	mock.calls.IssueToken = append(mock.calls.IssueToken, callInfo)
	mock.lockIssueToken.Unlock()
	return mock.IssueTokenFunc(identity)
}

func (mock *tokenIssuerMock) IssueTokenCalls() []struct {
	Identity string
} {
	mock.lockIssueToken.RLock()
	calls := mock.calls.IssueToken
	mock.lockIssueToken.RUnlock()
	return calls
}

func (mock *tokenIssuerMock) ResolveIdentity(token string) (string, error) {
	if mock.ResolveIdentityFunc == nil {
		panic("tokenIssuerMock.ResolveIdentityFunc: method is nil but tokenIssuer.ResolveIdentity was just called")
	}
	callInfo := struct{ Token string }{Token: token}
	mock.lockResolveIdentity.Lock()
	mock.calls.ResolveIdentity = append(mock.calls.ResolveIdentity, callInfo)
	mock.lockResolveIdentity.Unlock()
	return mock.ResolveIdentityFunc(token)
}

func (mock *tokenIssuerMock) ResolveIdentityCalls() []struct {
	Token string
} {
	mock.lockResolveIdentity.RLock()
	calls := mock.calls.ResolveIdentity
	mock.lockResolveIdentity.RUnlock()
	return calls
}
