package client

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/devdash-backend/internal/domain"
	"sync"
)

var _ clientRepo = &clientRepoMock{}

type clientRepoMock struct {
	CreateFunc  func(ctx context.Context, ownerID uuid.UUID, c *domain.Client) (*domain.Client, error)
	DeleteFunc  func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
	GetByIDFunc func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Client, error)
	ListFunc    func(ctx context.Context, ownerID uuid.UUID, filter domain.ClientFilter) ([]*domain.Client, error)
	UpdateFunc  func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, params domain.ClientUpdateParams) (*domain.Client, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			C       *domain.Client
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		GetByID []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Filter  domain.ClientFilter
		}
		Update []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
			Params  domain.ClientUpdateParams
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *clientRepoMock) Create(ctx context.Context, ownerID uuid.UUID, c *domain.Client) (*domain.Client, error) {
	if mock.CreateFunc == nil {
		panic("clientRepoMock.CreateFunc: method is nil but clientRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		C       *domain.Client
	}{Ctx: ctx, OwnerID: ownerID, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ownerID, c)
}

func (mock *clientRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	C       *domain.Client
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		C       *domain.Client
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *clientRepoMock) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("clientRepoMock.DeleteFunc: method is nil but clientRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, id)
}

func (mock *clientRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *clientRepoMock) GetByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Client, error) {
	if mock.GetByIDFunc == nil {
		panic("clientRepoMock.GetByIDFunc: method is nil but clientRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, id)
}

func (mock *clientRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *clientRepoMock) List(ctx context.Context, ownerID uuid.UUID, filter domain.ClientFilter) ([]*domain.Client, error) {
	if mock.ListFunc == nil {
		panic("clientRepoMock.ListFunc: method is nil but clientRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Filter  domain.ClientFilter
	}{Ctx: ctx, OwnerID: ownerID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID, filter)
}

func (mock *clientRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Filter  domain.ClientFilter
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Filter  domain.ClientFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *clientRepoMock) Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, params domain.ClientUpdateParams) (*domain.Client, error) {
	if mock.UpdateFunc == nil {
		panic("clientRepoMock.UpdateFunc: method is nil but clientRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
		Params  domain.ClientUpdateParams
	}{Ctx: ctx, OwnerID: ownerID, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, ownerID, id, params)
}

func (mock *clientRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
	Params  domain.ClientUpdateParams
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
		Params  domain.ClientUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
