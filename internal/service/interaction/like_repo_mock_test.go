package interaction

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

var _ likeRepo = &likeRepoMock{}

type likeRepoMock struct {
	CreateFunc            func(ctx context.Context, l *domain.Like) (*domain.Like, error)
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	GetByUserAndTweetFunc func(ctx context.Context, userID uuid.UUID, tweetID uuid.UUID) (*domain.Like, error)
	ListByTweetFunc       func(ctx context.Context, tweetID uuid.UUID) ([]domain.Like, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   *domain.Like
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByUserAndTweet []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			TweetID uuid.UUID
		}
		ListByTweet []struct {
			Ctx     context.Context
			TweetID uuid.UUID
		}
	}
	lockCreate            sync.RWMutex
	lockDelete            sync.RWMutex
	lockGetByUserAndTweet sync.RWMutex
	lockListByTweet       sync.RWMutex
}

func (mock *likeRepoMock) Create(ctx context.Context, l *domain.Like) (*domain.Like, error) {
	if mock.CreateFunc == nil {
		panic("likeRepoMock.CreateFunc: method is nil but likeRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.Like
	}{
		Ctx: ctx,
		L:   l,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *likeRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.Like
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *likeRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("likeRepoMock.DeleteFunc: method is nil but likeRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *likeRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *likeRepoMock) GetByUserAndTweet(ctx context.Context, userID uuid.UUID, tweetID uuid.UUID) (*domain.Like, error) {
	if mock.GetByUserAndTweetFunc == nil {
		panic("likeRepoMock.GetByUserAndTweetFunc: method is nil but likeRepo.GetByUserAndTweet was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		TweetID uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		TweetID: tweetID,
	}
	mock.lockGetByUserAndTweet.Lock()
	mock.calls.GetByUserAndTweet = append(mock.calls.GetByUserAndTweet, callInfo)
	mock.lockGetByUserAndTweet.Unlock()
	return mock.GetByUserAndTweetFunc(ctx, userID, tweetID)
}

func (mock *likeRepoMock) GetByUserAndTweetCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	TweetID uuid.UUID
} {
	mock.lockGetByUserAndTweet.RLock()
	calls := mock.calls.GetByUserAndTweet
	mock.lockGetByUserAndTweet.RUnlock()
	return calls
}

func (mock *likeRepoMock) ListByTweet(ctx context.Context, tweetID uuid.UUID) ([]domain.Like, error) {
	if mock.ListByTweetFunc == nil {
		panic("likeRepoMock.ListByTweetFunc: method is nil but likeRepo.ListByTweet was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TweetID uuid.UUID
	}{
		Ctx:     ctx,
		TweetID: tweetID,
	}
	mock.lockListByTweet.Lock()
	mock.calls.ListByTweet = append(mock.calls.ListByTweet, callInfo)
	mock.lockListByTweet.Unlock()
	return mock.ListByTweetFunc(ctx, tweetID)
}

func (mock *likeRepoMock) ListByTweetCalls() []struct {
	Ctx     context.Context
	TweetID uuid.UUID
} {
	mock.lockListByTweet.RLock()
	calls := mock.calls.ListByTweet
	mock.lockListByTweet.RUnlock()
	return calls
}
