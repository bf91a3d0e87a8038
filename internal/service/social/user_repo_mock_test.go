package social

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	AddFollowerFunc     func(ctx context.Context, userID uuid.UUID, followerID uuid.UUID) error
	AddFollowingFunc    func(ctx context.Context, userID uuid.UUID, followingID uuid.UUID) error
	GetByEmailFunc      func(ctx context.Context, email string) (*domain.User, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	LockForUpdateFunc   func(ctx context.Context, ids ...uuid.UUID) error
	RemoveFollowerFunc  func(ctx context.Context, userID uuid.UUID, followerID uuid.UUID) error
	RemoveFollowingFunc func(ctx context.Context, userID uuid.UUID, followingID uuid.UUID) error
	SearchFunc          func(ctx context.Context, query string) ([]domain.User, error)
	UpdateProfileFunc   func(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error)

	calls struct {
		AddFollower []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			FollowerID uuid.UUID
		}
		AddFollowing []struct {
			Ctx         context.Context
			UserID      uuid.UUID
			FollowingID uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		LockForUpdate []struct {
			Ctx context.Context
			IDs []uuid.UUID
		}
		RemoveFollower []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			FollowerID uuid.UUID
		}
		RemoveFollowing []struct {
			Ctx         context.Context
			UserID      uuid.UUID
			FollowingID uuid.UUID
		}
		Search []struct {
			Ctx   context.Context
			Query string
		}
		UpdateProfile []struct {
			Ctx context.Context
			ID  uuid.UUID
			Upd domain.ProfileUpdate
		}
	}
	lockAddFollower     sync.RWMutex
	lockAddFollowing    sync.RWMutex
	lockGetByEmail      sync.RWMutex
	lockGetByID         sync.RWMutex
	lockLockForUpdate   sync.RWMutex
	lockRemoveFollower  sync.RWMutex
	lockRemoveFollowing sync.RWMutex
	lockSearch          sync.RWMutex
	lockUpdateProfile   sync.RWMutex
}

func (mock *userRepoMock) AddFollower(ctx context.Context, userID uuid.UUID, followerID uuid.UUID) error {
	if mock.AddFollowerFunc == nil {
		panic("userRepoMock.AddFollowerFunc: method is nil but userRepo.AddFollower was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		FollowerID uuid.UUID
	}{
		Ctx:        ctx,
		UserID:     userID,
		FollowerID: followerID,
	}
	mock.lockAddFollower.Lock()
	mock.calls.AddFollower = append(mock.calls.AddFollower, callInfo)
	mock.lockAddFollower.Unlock()
	return mock.AddFollowerFunc(ctx, userID, followerID)
}

func (mock *userRepoMock) AddFollowerCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	FollowerID uuid.UUID
} {
	mock.lockAddFollower.RLock()
	calls := mock.calls.AddFollower
	mock.lockAddFollower.RUnlock()
	return calls
}

func (mock *userRepoMock) AddFollowing(ctx context.Context, userID uuid.UUID, followingID uuid.UUID) error {
	if mock.AddFollowingFunc == nil {
		panic("userRepoMock.AddFollowingFunc: method is nil but userRepo.AddFollowing was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		UserID      uuid.UUID
		FollowingID uuid.UUID
	}{
		Ctx:         ctx,
		UserID:      userID,
		FollowingID: followingID,
	}
	mock.lockAddFollowing.Lock()
	mock.calls.AddFollowing = append(mock.calls.AddFollowing, callInfo)
	mock.lockAddFollowing.Unlock()
	return mock.AddFollowingFunc(ctx, userID, followingID)
}

func (mock *userRepoMock) AddFollowingCalls() []struct {
	Ctx         context.Context
	UserID      uuid.UUID
	FollowingID uuid.UUID
} {
	mock.lockAddFollowing.RLock()
	calls := mock.calls.AddFollowing
	mock.lockAddFollowing.RUnlock()
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

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) LockForUpdate(ctx context.Context, ids ...uuid.UUID) error {
	if mock.LockForUpdateFunc == nil {
		panic("userRepoMock.LockForUpdateFunc: method is nil but userRepo.LockForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []uuid.UUID
	}{
		Ctx: ctx,
		IDs: ids,
	}
	mock.lockLockForUpdate.Lock()
	mock.calls.LockForUpdate = append(mock.calls.LockForUpdate, callInfo)
	mock.lockLockForUpdate.Unlock()
	return mock.LockForUpdateFunc(ctx, ids...)
}

func (mock *userRepoMock) LockForUpdateCalls() []struct {
	Ctx context.Context
	IDs []uuid.UUID
} {
	mock.lockLockForUpdate.RLock()
	calls := mock.calls.LockForUpdate
	mock.lockLockForUpdate.RUnlock()
	return calls
}

func (mock *userRepoMock) RemoveFollower(ctx context.Context, userID uuid.UUID, followerID uuid.UUID) error {
	if mock.RemoveFollowerFunc == nil {
		panic("userRepoMock.RemoveFollowerFunc: method is nil but userRepo.RemoveFollower was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		FollowerID uuid.UUID
	}{
		Ctx:        ctx,
		UserID:     userID,
		FollowerID: followerID,
	}
	mock.lockRemoveFollower.Lock()
	mock.calls.RemoveFollower = append(mock.calls.RemoveFollower, callInfo)
	mock.lockRemoveFollower.Unlock()
	return mock.RemoveFollowerFunc(ctx, userID, followerID)
}

func (mock *userRepoMock) RemoveFollowerCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	FollowerID uuid.UUID
} {
	mock.lockRemoveFollower.RLock()
	calls := mock.calls.RemoveFollower
	mock.lockRemoveFollower.RUnlock()
	return calls
}

func (mock *userRepoMock) RemoveFollowing(ctx context.Context, userID uuid.UUID, followingID uuid.UUID) error {
	if mock.RemoveFollowingFunc == nil {
		panic("userRepoMock.RemoveFollowingFunc: method is nil but userRepo.RemoveFollowing was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		UserID      uuid.UUID
		FollowingID uuid.UUID
	}{
		Ctx:         ctx,
		UserID:      userID,
		FollowingID: followingID,
	}
	mock.lockRemoveFollowing.Lock()
	mock.calls.RemoveFollowing = append(mock.calls.RemoveFollowing, callInfo)
	mock.lockRemoveFollowing.Unlock()
	return mock.RemoveFollowingFunc(ctx, userID, followingID)
}

func (mock *userRepoMock) RemoveFollowingCalls() []struct {
	Ctx         context.Context
	UserID      uuid.UUID
	FollowingID uuid.UUID
} {
	mock.lockRemoveFollowing.RLock()
	calls := mock.calls.RemoveFollowing
	mock.lockRemoveFollowing.RUnlock()
	return calls
}

func (mock *userRepoMock) Search(ctx context.Context, query string) ([]domain.User, error) {
	if mock.SearchFunc == nil {
		panic("userRepoMock.SearchFunc: method is nil but userRepo.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{
		Ctx:   ctx,
		Query: query,
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, query)
}

func (mock *userRepoMock) SearchCalls() []struct {
	Ctx   context.Context
	Query string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		Upd domain.ProfileUpdate
	}{
		Ctx: ctx,
		ID:  id,
		Upd: upd,
	}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, id, upd)
}

func (mock *userRepoMock) UpdateProfileCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	Upd domain.ProfileUpdate
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}
