package interaction

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

var _ tweetFinder = &tweetFinderMock{}

type tweetFinderMock struct {
	FindByIDFunc func(ctx context.Context, tweetID uuid.UUID) (*domain.Tweet, error)

	calls struct {
		FindByID []struct {
			Ctx     context.Context
			TweetID uuid.UUID
		}
	}
	lockFindByID sync.RWMutex
}

func (mock *tweetFinderMock) FindByID(ctx context.Context, tweetID uuid.UUID) (*domain.Tweet, error) {
	if mock.FindByIDFunc == nil {
		panic("tweetFinderMock.FindByIDFunc: method is nil but tweetFinder.FindByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TweetID uuid.UUID
	}{
		Ctx:     ctx,
		TweetID: tweetID,
	}
	mock.lockFindByID.Lock()
	mock.calls.FindByID = append(mock.calls.FindByID, callInfo)
	mock.lockFindByID.Unlock()
	return mock.FindByIDFunc(ctx, tweetID)
}

func (mock *tweetFinderMock) FindByIDCalls() []struct {
	Ctx     context.Context
	TweetID uuid.UUID
} {
	mock.lockFindByID.RLock()
	calls := mock.calls.FindByID
	mock.lockFindByID.RUnlock()
	return calls
}
