package timeline

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/devdash-backend/internal/domain"
	"sync"
)

var _ timelineRepo = &timelineRepoMock{}

type timelineRepoMock struct {
	CreateFunc        func(ctx context.Context, e *domain.TimelineEntry, orderIndex *int) (*domain.TimelineEntry, error)
	DeleteFunc        func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
	ListByProjectFunc func(ctx context.Context, ownerID uuid.UUID, projectID uuid.UUID) ([]*domain.TimelineEntry, error)
	ReorderFunc       func(ctx context.Context, ownerID uuid.UUID, projectID uuid.UUID, ids []uuid.UUID) error
	UpdateFunc        func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, params domain.TimelineUpdateParams) (*domain.TimelineEntry, error)

	calls struct {
		Create []struct {
			Ctx        context.Context
			E          *domain.TimelineEntry
			OrderIndex *int
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		ListByProject []struct {
			Ctx       context.Context
			OwnerID   uuid.UUID
			ProjectID uuid.UUID
		}
		Reorder []struct {
			Ctx       context.Context
			OwnerID   uuid.UUID
			ProjectID uuid.UUID
			Ids       []uuid.UUID
		}
		Update []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
			Params  domain.TimelineUpdateParams
		}
	}
	lockCreate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockListByProject sync.RWMutex
	lockReorder       sync.RWMutex
	lockUpdate        sync.RWMutex
}

func (mock *timelineRepoMock) Create(ctx context.Context, e *domain.TimelineEntry, orderIndex *int) (*domain.TimelineEntry, error) {
	if mock.CreateFunc == nil {
		panic("timelineRepoMock.CreateFunc: method is nil but timelineRepo.Create was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		E          *domain.TimelineEntry
		OrderIndex *int
	}{Ctx: ctx, E: e, OrderIndex: orderIndex}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e, orderIndex)
}

func (mock *timelineRepoMock) CreateCalls() []struct {
	Ctx        context.Context
	E          *domain.TimelineEntry
	OrderIndex *int
} {
	var calls []struct {
		Ctx        context.Context
		E          *domain.TimelineEntry
		OrderIndex *int
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *timelineRepoMock) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("timelineRepoMock.DeleteFunc: method is nil but timelineRepo.Delete was just called")
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

func (mock *timelineRepoMock) DeleteCalls() []struct {
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

func (mock *timelineRepoMock) ListByProject(ctx context.Context, ownerID uuid.UUID, projectID uuid.UUID) ([]*domain.TimelineEntry, error) {
	if mock.ListByProjectFunc == nil {
		panic("timelineRepoMock.ListByProjectFunc: method is nil but timelineRepo.ListByProject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		ProjectID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ProjectID: projectID}
	mock.lockListByProject.Lock()
	mock.calls.ListByProject = append(mock.calls.ListByProject, callInfo)
	mock.lockListByProject.Unlock()
	return mock.ListByProjectFunc(ctx, ownerID, projectID)
}

func (mock *timelineRepoMock) ListByProjectCalls() []struct {
	Ctx       context.Context
	OwnerID   uuid.UUID
	ProjectID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		ProjectID uuid.UUID
	}
	mock.lockListByProject.RLock()
	calls = mock.calls.ListByProject
	mock.lockListByProject.RUnlock()
	return calls
}

func (mock *timelineRepoMock) Reorder(ctx context.Context, ownerID uuid.UUID, projectID uuid.UUID, ids []uuid.UUID) error {
	if mock.ReorderFunc == nil {
		panic("timelineRepoMock.ReorderFunc: method is nil but timelineRepo.Reorder was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		ProjectID uuid.UUID
		Ids       []uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ProjectID: projectID, Ids: ids}
	mock.lockReorder.Lock()
	mock.calls.Reorder = append(mock.calls.Reorder, callInfo)
	mock.lockReorder.Unlock()
	return mock.ReorderFunc(ctx, ownerID, projectID, ids)
}

func (mock *timelineRepoMock) ReorderCalls() []struct {
	Ctx       context.Context
	OwnerID   uuid.UUID
	ProjectID uuid.UUID
	Ids       []uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		ProjectID uuid.UUID
		Ids       []uuid.UUID
	}
	mock.lockReorder.RLock()
	calls = mock.calls.Reorder
	mock.lockReorder.RUnlock()
	return calls
}

func (mock *timelineRepoMock) Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, params domain.TimelineUpdateParams) (*domain.TimelineEntry, error) {
	if mock.UpdateFunc == nil {
		panic("timelineRepoMock.UpdateFunc: method is nil but timelineRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
		Params  domain.TimelineUpdateParams
	}{Ctx: ctx, OwnerID: ownerID, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, ownerID, id, params)
}

func (mock *timelineRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
	Params  domain.TimelineUpdateParams
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
		Params  domain.TimelineUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
