package project

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/devdash-backend/internal/domain"
	"sync"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	CreateFunc       func(ctx context.Context, ownerID uuid.UUID, p *domain.Project) (*domain.Project, error)
	DeleteFunc       func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
	GetByIDFunc      func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Project, error)
	GetForUpdateFunc func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Project, error)
	ListFunc         func(ctx context.Context, ownerID uuid.UUID, filter domain.ProjectFilter) ([]*domain.Project, error)
	RequireFunc      func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
	UpdateFunc       func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			P       *domain.Project
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
		GetForUpdate []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Filter  domain.ProjectFilter
		}
		Require []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		Update []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
			Params  domain.ProjectUpdateParams
		}
	}
	lockCreate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockList         sync.RWMutex
	lockRequire      sync.RWMutex
	lockUpdate       sync.RWMutex
}

func (mock *projectRepoMock) Create(ctx context.Context, ownerID uuid.UUID, p *domain.Project) (*domain.Project, error) {
	if mock.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		P       *domain.Project
	}{Ctx: ctx, OwnerID: ownerID, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ownerID, p)
}

func (mock *projectRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	P       *domain.Project
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		P       *domain.Project
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *projectRepoMock) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("projectRepoMock.DeleteFunc: method is nil but projectRepo.Delete was just called")
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

func (mock *projectRepoMock) DeleteCalls() []struct {
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

func (mock *projectRepoMock) GetByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
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

func (mock *projectRepoMock) GetByIDCalls() []struct {
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

func (mock *projectRepoMock) GetForUpdate(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Project, error) {
	if mock.GetForUpdateFunc == nil {
		panic("projectRepoMock.GetForUpdateFunc: method is nil but projectRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, ownerID, id)
}

func (mock *projectRepoMock) GetForUpdateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}
	mock.lockGetForUpdate.RLock()
	calls = mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *projectRepoMock) List(ctx context.Context, ownerID uuid.UUID, filter domain.ProjectFilter) ([]*domain.Project, error) {
	if mock.ListFunc == nil {
		panic("projectRepoMock.ListFunc: method is nil but projectRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Filter  domain.ProjectFilter
	}{Ctx: ctx, OwnerID: ownerID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID, filter)
}

func (mock *projectRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Filter  domain.ProjectFilter
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Filter  domain.ProjectFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
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

func (mock *projectRepoMock) Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error) {
	if mock.UpdateFunc == nil {
		panic("projectRepoMock.UpdateFunc: method is nil but projectRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
		Params  domain.ProjectUpdateParams
	}{Ctx: ctx, OwnerID: ownerID, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, ownerID, id, params)
}

func (mock *projectRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
	Params  domain.ProjectUpdateParams
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
		Params  domain.ProjectUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
