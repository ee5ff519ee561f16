package project

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/devdash-backend/internal/domain"
	"sync"
)

var _ timelineRepo = &timelineRepoMock{}

type timelineRepoMock struct {
	ListByProjectFunc func(ctx context.Context, ownerID uuid.UUID, projectID uuid.UUID) ([]*domain.TimelineEntry, error)

	calls struct {
		ListByProject []struct {
			Ctx       context.Context
			OwnerID   uuid.UUID
			ProjectID uuid.UUID
		}
	}
	lockListByProject sync.RWMutex
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
