package task

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	RequireFunc func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error

	calls struct {
		Require []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
	}
	lockRequire sync.RWMutex
}

func (mock *projectRepoMock) Require(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if mock.RequireFunc == nil {
		panic("projectRepoMock.RequireFunc: method is nil but projectRepo.Require was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockRequire.Lock()
	mock.calls.Require = append(mock.calls.Require, callInfo)
	mock.lockRequire.Unlock()
	return mock.RequireFunc(ctx, ownerID, id)
}

func (mock *projectRepoMock) RequireCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}
	mock.lockRequire.RLock()
	calls = mock.calls.Require
	mock.lockRequire.RUnlock()
	return calls
}
