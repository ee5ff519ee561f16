package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/devdash-backend/internal/domain"
	"github.com/heartmarshall/devdash-backend/internal/service/task"
	"sync"
)

var _ taskService = &taskServiceMock{}

type taskServiceMock struct {
	CreateTaskFunc func(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error)
	ListTasksFunc  func(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
	UpdateTaskFunc func(ctx context.Context, input task.UpdateTaskInput) (*domain.Task, error)
	DeleteTaskFunc func(ctx context.Context, taskID uuid.UUID) error

	calls struct {
		CreateTask []struct {
			Ctx   context.Context
			Input task.CreateTaskInput
		}
		ListTasks []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
		UpdateTask []struct {
			Ctx   context.Context
			Input task.UpdateTaskInput
		}
		DeleteTask []struct {
			Ctx    context.Context
			TaskID uuid.UUID
		}
	}
	lockCreateTask sync.RWMutex
	lockListTasks  sync.RWMutex
	lockUpdateTask sync.RWMutex
	lockDeleteTask sync.RWMutex
}

func (mock *taskServiceMock) CreateTask(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error) {
	if mock.CreateTaskFunc == nil {
		panic("taskServiceMock.CreateTaskFunc: method is nil but taskService.CreateTask was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.CreateTaskInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateTask.Lock()
	mock.calls.CreateTask = append(mock.calls.CreateTask, callInfo)
	mock.lockCreateTask.Unlock()
	return mock.CreateTaskFunc(ctx, input)
}

func (mock *taskServiceMock) CreateTaskCalls() []struct {
	Ctx   context.Context
	Input task.CreateTaskInput
} {
	var calls []struct {
		Ctx   context.Context
		Input task.CreateTaskInput
	}
	mock.lockCreateTask.RLock()
	calls = mock.calls.CreateTask
	mock.lockCreateTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) ListTasks(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	if mock.ListTasksFunc == nil {
		panic("taskServiceMock.ListTasksFunc: method is nil but taskService.ListTasks was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{Ctx: ctx, ProjectID: projectID}
	mock.lockListTasks.Lock()
	mock.calls.ListTasks = append(mock.calls.ListTasks, callInfo)
	mock.lockListTasks.Unlock()
	return mock.ListTasksFunc(ctx, projectID)
}

func (mock *taskServiceMock) ListTasksCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}
	mock.lockListTasks.RLock()
	calls = mock.calls.ListTasks
	mock.lockListTasks.RUnlock()
	return calls
}

func (mock *taskServiceMock) UpdateTask(ctx context.Context, input task.UpdateTaskInput) (*domain.Task, error) {
	if mock.UpdateTaskFunc == nil {
		panic("taskServiceMock.UpdateTaskFunc: method is nil but taskService.UpdateTask was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.UpdateTaskInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateTask.Lock()
	mock.calls.UpdateTask = append(mock.calls.UpdateTask, callInfo)
	mock.lockUpdateTask.Unlock()
	return mock.UpdateTaskFunc(ctx, input)
}

func (mock *taskServiceMock) UpdateTaskCalls() []struct {
	Ctx   context.Context
	Input task.UpdateTaskInput
} {
	var calls []struct {
		Ctx   context.Context
		Input task.UpdateTaskInput
	}
	mock.lockUpdateTask.RLock()
	calls = mock.calls.UpdateTask
	mock.lockUpdateTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	if mock.DeleteTaskFunc == nil {
		panic("taskServiceMock.DeleteTaskFunc: method is nil but taskService.DeleteTask was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TaskID uuid.UUID
	}{Ctx: ctx, TaskID: taskID}
	mock.lockDeleteTask.Lock()
	mock.calls.DeleteTask = append(mock.calls.DeleteTask, callInfo)
	mock.lockDeleteTask.Unlock()
	return mock.DeleteTaskFunc(ctx, taskID)
}

func (mock *taskServiceMock) DeleteTaskCalls() []struct {
	Ctx    context.Context
	TaskID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		TaskID uuid.UUID
	}
	mock.lockDeleteTask.RLock()
	calls = mock.calls.DeleteTask
	mock.lockDeleteTask.RUnlock()
	return calls
}
