package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/internal/service/project"
	"sync"
)

var _ projectService = &projectServiceMock{}

type projectServiceMock struct {
	CreateProjectFunc     func(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error)
	GetProjectFunc        func(ctx context.Context, projectID uuid.UUID) (*domain.ProjectDetail, error)
	ListProjectsFunc      func(ctx context.Context, input project.ListProjectsInput) ([]*domain.Project, error)
	UpdateProjectFunc     func(ctx context.Context, input project.UpdateProjectInput) (*domain.Project, error)
	DeleteProjectFunc     func(ctx context.Context, projectID uuid.UUID) error
	ProgressFunc          func(ctx context.Context, projectID uuid.UUID) (domain.ProgressReport, error)
	RecomputeProgressFunc func(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	LinkClientFunc        func(ctx context.Context, input project.LinkClientInput) (*domain.ProjectClient, error)
	UnlinkClientFunc      func(ctx context.Context, projectID uuid.UUID, clientID uuid.UUID) error
	ListClientsFunc       func(ctx context.Context, projectID uuid.UUID) ([]*domain.LinkedClient, error)

	calls struct {
		CreateProject []struct {
			Ctx   context.Context
			Input project.CreateProjectInput
		}
		GetProject []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
		ListProjects []struct {
			Ctx   context.Context
			Input project.ListProjectsInput
		}
		UpdateProject []struct {
			Ctx   context.Context
			Input project.UpdateProjectInput
		}
		DeleteProject []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
		Progress []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
		RecomputeProgress []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
		LinkClient []struct {
			Ctx   context.Context
			Input project.LinkClientInput
		}
		UnlinkClient []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
			ClientID  uuid.UUID
		}
		ListClients []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
	}
	lockCreateProject     sync.RWMutex
	lockGetProject        sync.RWMutex
	lockListProjects      sync.RWMutex
	lockUpdateProject     sync.RWMutex
	lockDeleteProject     sync.RWMutex
	lockProgress          sync.RWMutex
	lockRecomputeProgress sync.RWMutex
	lockLinkClient        sync.RWMutex
	lockUnlinkClient      sync.RWMutex
	lockListClients       sync.RWMutex
}

func (mock *projectServiceMock) CreateProject(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error) {
	if mock.CreateProjectFunc == nil {
		panic("projectServiceMock.CreateProjectFunc: method is nil but projectService.CreateProject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input project.CreateProjectInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateProject.Lock()
	mock.calls.CreateProject = append(mock.calls.CreateProject, callInfo)
	mock.lockCreateProject.Unlock()
	return mock.CreateProjectFunc(ctx, input)
}

func (mock *projectServiceMock) CreateProjectCalls() []struct {
	Ctx   context.Context
	Input project.CreateProjectInput
} {
	var calls []struct {
		Ctx   context.Context
		Input project.CreateProjectInput
	}
	mock.lockCreateProject.RLock()
	calls = mock.calls.CreateProject
	mock.lockCreateProject.RUnlock()
	return calls
}

func (mock *projectServiceMock) GetProject(ctx context.Context, projectID uuid.UUID) (*domain.ProjectDetail, error) {
	if mock.GetProjectFunc == nil {
		panic("projectServiceMock.GetProjectFunc: method is nil but projectService.GetProject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{Ctx: ctx, ProjectID: projectID}
	mock.lockGetProject.Lock()
	mock.calls.GetProject = append(mock.calls.GetProject, callInfo)
	mock.lockGetProject.Unlock()
	return mock.GetProjectFunc(ctx, projectID)
}

func (mock *projectServiceMock) GetProjectCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}
	mock.lockGetProject.RLock()
	calls = mock.calls.GetProject
	mock.lockGetProject.RUnlock()
	return calls
}

func (mock *projectServiceMock) ListProjects(ctx context.Context, input project.ListProjectsInput) ([]*domain.Project, error) {
	if mock.ListProjectsFunc == nil {
		panic("projectServiceMock.ListProjectsFunc: method is nil but projectService.ListProjects was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input project.ListProjectsInput
	}{Ctx: ctx, Input: input}
	mock.lockListProjects.Lock()
	mock.calls.ListProjects = append(mock.calls.ListProjects, callInfo)
	mock.lockListProjects.Unlock()
	return mock.ListProjectsFunc(ctx, input)
}

func (mock *projectServiceMock) ListProjectsCalls() []struct {
	Ctx   context.Context
	Input project.ListProjectsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input project.ListProjectsInput
	}
	mock.lockListProjects.RLock()
	calls = mock.calls.ListProjects
	mock.lockListProjects.RUnlock()
	return calls
}

func (mock *projectServiceMock) UpdateProject(ctx context.Context, input project.UpdateProjectInput) (*domain.Project, error) {
	if mock.UpdateProjectFunc == nil {
		panic("projectServiceMock.UpdateProjectFunc: method is nil but projectService.UpdateProject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input project.UpdateProjectInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateProject.Lock()
	mock.calls.UpdateProject = append(mock.calls.UpdateProject, callInfo)
	mock.lockUpdateProject.Unlock()
	return mock.UpdateProjectFunc(ctx, input)
}

func (mock *projectServiceMock) UpdateProjectCalls() []struct {
	Ctx   context.Context
	Input project.UpdateProjectInput
} {
	var calls []struct {
		Ctx   context.Context
		Input project.UpdateProjectInput
	}
	mock.lockUpdateProject.RLock()
	calls = mock.calls.UpdateProject
	mock.lockUpdateProject.RUnlock()
	return calls
}

func (mock *projectServiceMock) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	if mock.DeleteProjectFunc == nil {
		panic("projectServiceMock.DeleteProjectFunc: method is nil but projectService.DeleteProject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{Ctx: ctx, ProjectID: projectID}
	mock.lockDeleteProject.Lock()
	mock.calls.DeleteProject = append(mock.calls.DeleteProject, callInfo)
	mock.lockDeleteProject.Unlock()
	return mock.DeleteProjectFunc(ctx, projectID)
}

func (mock *projectServiceMock) DeleteProjectCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}
	mock.lockDeleteProject.RLock()
	calls = mock.calls.DeleteProject
	mock.lockDeleteProject.RUnlock()
	return calls
}

func (mock *projectServiceMock) Progress(ctx context.Context, projectID uuid.UUID) (domain.ProgressReport, error) {
	if mock.ProgressFunc == nil {
		panic("projectServiceMock.ProgressFunc: method is nil but projectService.Progress was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{Ctx: ctx, ProjectID: projectID}
	mock.lockProgress.Lock()
	mock.calls.Progress = append(mock.calls.Progress, callInfo)
	mock.lockProgress.Unlock()
	return mock.ProgressFunc(ctx, projectID)
}

func (mock *projectServiceMock) ProgressCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}
	mock.lockProgress.RLock()
	calls = mock.calls.Progress
	mock.lockProgress.RUnlock()
	return calls
}

func (mock *projectServiceMock) RecomputeProgress(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	if mock.RecomputeProgressFunc == nil {
		panic("projectServiceMock.RecomputeProgressFunc: method is nil but projectService.RecomputeProgress was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{Ctx: ctx, ProjectID: projectID}
	mock.lockRecomputeProgress.Lock()
	mock.calls.RecomputeProgress = append(mock.calls.RecomputeProgress, callInfo)
	mock.lockRecomputeProgress.Unlock()
	return mock.RecomputeProgressFunc(ctx, projectID)
}

func (mock *projectServiceMock) RecomputeProgressCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}
	mock.lockRecomputeProgress.RLock()
	calls = mock.calls.RecomputeProgress
	mock.lockRecomputeProgress.RUnlock()
	return calls
}

func (mock *projectServiceMock) LinkClient(ctx context.Context, input project.LinkClientInput) (*domain.ProjectClient, error) {
	if mock.LinkClientFunc == nil {
		panic("projectServiceMock.LinkClientFunc: method is nil but projectService.LinkClient was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input project.LinkClientInput
	}{Ctx: ctx, Input: input}
	mock.lockLinkClient.Lock()
	mock.calls.LinkClient = append(mock.calls.LinkClient, callInfo)
	mock.lockLinkClient.Unlock()
	return mock.LinkClientFunc(ctx, input)
}

func (mock *projectServiceMock) LinkClientCalls() []struct {
	Ctx   context.Context
	Input project.LinkClientInput
} {
	var calls []struct {
		Ctx   context.Context
		Input project.LinkClientInput
	}
	mock.lockLinkClient.RLock()
	calls = mock.calls.LinkClient
	mock.lockLinkClient.RUnlock()
	return calls
}

func (mock *projectServiceMock) UnlinkClient(ctx context.Context, projectID uuid.UUID, clientID uuid.UUID) error {
	if mock.UnlinkClientFunc == nil {
		panic("projectServiceMock.UnlinkClientFunc: method is nil but projectService.UnlinkClient was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
		ClientID  uuid.UUID
	}{Ctx: ctx, ProjectID: projectID, ClientID: clientID}
	mock.lockUnlinkClient.Lock()
	mock.calls.UnlinkClient = append(mock.calls.UnlinkClient, callInfo)
	mock.lockUnlinkClient.Unlock()
	return mock.UnlinkClientFunc(ctx, projectID, clientID)
}

func (mock *projectServiceMock) UnlinkClientCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
	ClientID  uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ProjectID uuid.UUID
		ClientID  uuid.UUID
	}
	mock.lockUnlinkClient.RLock()
	calls = mock.calls.UnlinkClient
	mock.lockUnlinkClient.RUnlock()
	return calls
}

func (mock *projectServiceMock) ListClients(ctx context.Context, projectID uuid.UUID) ([]*domain.LinkedClient, error) {
	if mock.ListClientsFunc == nil {
		panic("projectServiceMock.ListClientsFunc: method is nil but projectService.ListClients was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{Ctx: ctx, ProjectID: projectID}
	mock.lockListClients.Lock()
	mock.calls.ListClients = append(mock.calls.ListClients, callInfo)
	mock.lockListClients.Unlock()
	return mock.ListClientsFunc(ctx, projectID)
}

func (mock *projectServiceMock) ListClientsCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}
	mock.lockListClients.RLock()
	calls = mock.calls.ListClients
	mock.lockListClients.RUnlock()
	return calls
}
