package content

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

var _ tweetRepo = &tweetRepoMock{}

type tweetRepoMock struct {
	AddReplyFunc      func(ctx context.Context, parentID uuid.UUID, replyID uuid.UUID) error
	AddRetweetFunc    func(ctx context.Context, tweetID uuid.UUID, userID uuid.UUID) error
	CreateFunc        func(ctx context.Context, t *domain.Tweet) (*domain.Tweet, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Tweet, error)
	ListByUserFunc    func(ctx context.Context, userID uuid.UUID) ([]domain.Tweet, error)
	ListLikedByFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.Tweet, error)
	ListTopLevelFunc  func(ctx context.Context) ([]domain.Tweet, error)
	LockForUpdateFunc func(ctx context.Context, id uuid.UUID) error
	RemoveRetweetFunc func(ctx context.Context, tweetID uuid.UUID, userID uuid.UUID) error

	calls struct {
		AddReply []struct {
			Ctx      context.Context
			ParentID uuid.UUID
			ReplyID  uuid.UUID
		}
		AddRetweet []struct {
			Ctx     context.Context
			TweetID uuid.UUID
			UserID  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			T   *domain.Tweet
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListLikedBy []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListTopLevel []struct {
			Ctx context.Context
		}
		LockForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		RemoveRetweet []struct {
			Ctx     context.Context
			TweetID uuid.UUID
			UserID  uuid.UUID
		}
	}
	lockAddReply      sync.RWMutex
	lockAddRetweet    sync.RWMutex
	lockCreate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockListByUser    sync.RWMutex
	lockListLikedBy   sync.RWMutex
	lockListTopLevel  sync.RWMutex
	lockLockForUpdate sync.RWMutex
	lockRemoveRetweet sync.RWMutex
}

func (mock *tweetRepoMock) AddReply(ctx context.Context, parentID uuid.UUID, replyID uuid.UUID) error {
	if mock.AddReplyFunc == nil {
		panic("tweetRepoMock.AddReplyFunc: method is nil but tweetRepo.AddReply was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ParentID uuid.UUID
		ReplyID  uuid.UUID
	}{
		Ctx:      ctx,
		ParentID: parentID,
		ReplyID:  replyID,
	}
	mock.lockAddReply.Lock()
	mock.calls.AddReply = append(mock.calls.AddReply, callInfo)
	mock.lockAddReply.Unlock()
	return mock.AddReplyFunc(ctx, parentID, replyID)
}

func (mock *tweetRepoMock) AddReplyCalls() []struct {
	Ctx      context.Context
	ParentID uuid.UUID
	ReplyID  uuid.UUID
} {
	mock.lockAddReply.RLock()
	calls := mock.calls.AddReply
	mock.lockAddReply.RUnlock()
	return calls
}

func (mock *tweetRepoMock) AddRetweet(ctx context.Context, tweetID uuid.UUID, userID uuid.UUID) error {
	if mock.AddRetweetFunc == nil {
		panic("tweetRepoMock.AddRetweetFunc: method is nil but tweetRepo.AddRetweet was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TweetID uuid.UUID
		UserID  uuid.UUID
	}{
		Ctx:     ctx,
		TweetID: tweetID,
		UserID:  userID,
	}
	mock.lockAddRetweet.Lock()
	mock.calls.AddRetweet = append(mock.calls.AddRetweet, callInfo)
	mock.lockAddRetweet.Unlock()
	return mock.AddRetweetFunc(ctx, tweetID, userID)
}

func (mock *tweetRepoMock) AddRetweetCalls() []struct {
	Ctx     context.Context
	TweetID uuid.UUID
	UserID  uuid.UUID
} {
	mock.lockAddRetweet.RLock()
	calls := mock.calls.AddRetweet
	mock.lockAddRetweet.RUnlock()
	return calls
}

func (mock *tweetRepoMock) Create(ctx context.Context, t *domain.Tweet) (*domain.Tweet, error) {
	if mock.CreateFunc == nil {
		panic("tweetRepoMock.CreateFunc: method is nil but tweetRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Tweet
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *tweetRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Tweet
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tweetRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("tweetRepoMock.DeleteFunc: method is nil but tweetRepo.Delete was just called")
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

func (mock *tweetRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *tweetRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tweet, error) {
	if mock.GetByIDFunc == nil {
		panic("tweetRepoMock.GetByIDFunc: method is nil but tweetRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *tweetRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *tweetRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Tweet, error) {
	if mock.ListByUserFunc == nil {
		panic("tweetRepoMock.ListByUserFunc: method is nil but tweetRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *tweetRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *tweetRepoMock) ListLikedBy(ctx context.Context, userID uuid.UUID) ([]domain.Tweet, error) {
	if mock.ListLikedByFunc == nil {
		panic("tweetRepoMock.ListLikedByFunc: method is nil but tweetRepo.ListLikedBy was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListLikedBy.Lock()
	mock.calls.ListLikedBy = append(mock.calls.ListLikedBy, callInfo)
	mock.lockListLikedBy.Unlock()
	return mock.ListLikedByFunc(ctx, userID)
}

func (mock *tweetRepoMock) ListLikedByCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListLikedBy.RLock()
	calls := mock.calls.ListLikedBy
	mock.lockListLikedBy.RUnlock()
	return calls
}

func (mock *tweetRepoMock) ListTopLevel(ctx context.Context) ([]domain.Tweet, error) {
	if mock.ListTopLevelFunc == nil {
		panic("tweetRepoMock.ListTopLevelFunc: method is nil but tweetRepo.ListTopLevel was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListTopLevel.Lock()
	mock.calls.ListTopLevel = append(mock.calls.ListTopLevel, callInfo)
	mock.lockListTopLevel.Unlock()
	return mock.ListTopLevelFunc(ctx)
}

func (mock *tweetRepoMock) ListTopLevelCalls() []struct {
	Ctx context.Context
} {
	mock.lockListTopLevel.RLock()
	calls := mock.calls.ListTopLevel
	mock.lockListTopLevel.RUnlock()
	return calls
}

func (mock *tweetRepoMock) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	if mock.LockForUpdateFunc == nil {
		panic("tweetRepoMock.LockForUpdateFunc: method is nil but tweetRepo.LockForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockLockForUpdate.Lock()
	mock.calls.LockForUpdate = append(mock.calls.LockForUpdate, callInfo)
	mock.lockLockForUpdate.Unlock()
	return mock.LockForUpdateFunc(ctx, id)
}

func (mock *tweetRepoMock) LockForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockLockForUpdate.RLock()
	calls := mock.calls.LockForUpdate
	mock.lockLockForUpdate.RUnlock()
	return calls
}

func (mock *tweetRepoMock) RemoveRetweet(ctx context.Context, tweetID uuid.UUID, userID uuid.UUID) error {
	if mock.RemoveRetweetFunc == nil {
		panic("tweetRepoMock.RemoveRetweetFunc: method is nil but tweetRepo.RemoveRetweet was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TweetID uuid.UUID
		UserID  uuid.UUID
	}{
		Ctx:     ctx,
		TweetID: tweetID,
		UserID:  userID,
	}
	mock.lockRemoveRetweet.Lock()
	mock.calls.RemoveRetweet = append(mock.calls.RemoveRetweet, callInfo)
	mock.lockRemoveRetweet.Unlock()
	return mock.RemoveRetweetFunc(ctx, tweetID, userID)
}

func (mock *tweetRepoMock) RemoveRetweetCalls() []struct {
	Ctx     context.Context
	TweetID uuid.UUID
	UserID  uuid.UUID
} {
	mock.lockRemoveRetweet.RLock()
	calls := mock.calls.RemoveRetweet
	mock.lockRemoveRetweet.RUnlock()
	return calls
}
