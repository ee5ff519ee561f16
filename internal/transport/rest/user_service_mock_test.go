package rest

import (
	"context"
	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/internal/service/user"
	"sync"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	GetProfileFunc    func(ctx context.Context) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	DeleteAccountFunc func(ctx context.Context) error

	calls struct {
		GetProfile []struct {
			Ctx context.Context
		}
		UpdateProfile []struct {
			Ctx   context.Context
			Input user.UpdateProfileInput
		}
		DeleteAccount []struct {
			Ctx context.Context
		}
	}
	lockGetProfile    sync.RWMutex
	lockUpdateProfile sync.RWMutex
	lockDeleteAccount sync.RWMutex
}

func (mock *userServiceMock) GetProfile(ctx context.Context) (*domain.User, error) {
	if mock.GetProfileFunc == nil {
		panic("userServiceMock.GetProfileFunc: method is nil but userService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *userServiceMock) GetProfileCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetProfile.RLock()
	calls = mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userServiceMock.UpdateProfileFunc: method is nil but userService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, input)
}

func (mock *userServiceMock) UpdateProfileCalls() []struct {
	Ctx   context.Context
	Input user.UpdateProfileInput
} {
	var calls []struct {
		Ctx   context.Context
		Input user.UpdateProfileInput
	}
	mock.lockUpdateProfile.RLock()
	calls = mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) DeleteAccount(ctx context.Context) error {
	if mock.DeleteAccountFunc == nil {
		panic("userServiceMock.DeleteAccountFunc: method is nil but userService.DeleteAccount was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteAccount.Lock()
	mock.calls.DeleteAccount = append(mock.calls.DeleteAccount, callInfo)
	mock.lockDeleteAccount.Unlock()
	return mock.DeleteAccountFunc(ctx)
}

func (mock *userServiceMock) DeleteAccountCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockDeleteAccount.RLock()
	calls = mock.calls.DeleteAccount
	mock.lockDeleteAccount.RUnlock()
	return calls
}
