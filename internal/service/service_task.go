package service

import (
	"context"

	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/internal/store"
	"github.com/MKhiriev/ai-one-api/models"
)

type taskService struct {
	taskRepository store.TaskRepository

	logger *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:            logger,
	}
}

func (s *taskService) CreateTask(ctx context.Context, input models.TaskCreate) (models.Task, error) {
	return s.taskRepository.Create(ctx, input)
}

func (s *taskService) GetTask(ctx context.Context, id int64) (models.Task, error) {
	return s.taskRepository.Get(ctx, id)
}

func (s *taskService) ListTasks(ctx context.Context, page models.Page) ([]models.Task, error) {
	return s.taskRepository.List(ctx, page)
}

func (s *taskService) CountTasks(ctx context.Context, page models.Page) (uint64, error) {
	return s.taskRepository.Count(ctx, page)
}

func (s *taskService) UpdateTask(ctx context.Context, id int64, input models.TaskUpdate) (models.Task, error) {
	return s.taskRepository.Update(ctx, id, input)
}

func (s *taskService) DeleteTask(ctx context.Context, id int64) error {
	return s.taskRepository.Delete(ctx, id)
}
