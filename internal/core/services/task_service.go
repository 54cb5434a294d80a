package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/taskmgr/backend/internal/core/ports"
	"github.com/taskmgr/backend/internal/domain"
	"github.com/taskmgr/backend/internal/infrastructure/logger"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
	MaxSearchLen     = 100
)

type taskService struct {
	repo   ports.TaskRepository
	logger *logger.Logger
}

type TaskServiceConfig struct {
	Repository ports.TaskRepository
	Logger     *logger.Logger
}

func NewTaskService(cfg TaskServiceConfig) ports.TaskService {
	return &taskService{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}
}

func (s *taskService) CreateTask(ctx context.Context, ownerID string, input ports.CreateTaskInput) (*domain.Task, error) {
	// Limits are in characters, not bytes; multibyte titles are fine.
	title := strings.TrimSpace(input.Title)
	if title == "" || utf8.RuneCountInString(title) > domain.TaskTitleMaxLen {
		return nil, ErrTaskInvalidInput
	}
	if utf8.RuneCountInString(input.Description) > domain.TaskDescriptionMaxLen {
		return nil, ErrTaskInvalidInput
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusPending
	}
	if !status.Valid() {
		return nil, ErrTaskInvalidInput
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}
	if !priority.Valid() {
		return nil, ErrTaskInvalidInput
	}

	task := &domain.Task{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Title:       title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		s.logger.Errorw("task_create_failed", "owner_id", ownerID, "error", err)
		return nil, err
	}

	s.logger.Infow("task_create_ok", "id", task.ID, "owner_id", ownerID)
	return task, nil
}

// ListTasks resolves a filter request into one owner-scoped page. The
// filter is validated as a whole before any query runs; a single bad
// field rejects the entire request.
func (s *taskService) ListTasks(ctx context.Context, ownerID string, filter ports.TaskFilter) (*ports.TaskPage, error) {
	q, page, limit, err := buildTaskQuery(ownerID, filter)
	if err != nil {
		return nil, err
	}

	tasks, total, err := s.repo.List(ctx, q)
	if err != nil {
		s.logger.Errorw("task_list_failed", "owner_id", ownerID, "error", err)
		return nil, err
	}

	return &ports.TaskPage{
		Tasks: tasks,
		Pagination: ports.Pagination{
			Current:    page,
			Total:      totalPages(total, limit),
			Count:      len(tasks),
			TotalTasks: total,
		},
	}, nil
}

func (s *taskService) GetTask(ctx context.Context, ownerID, id string) (*domain.Task, error) {
	// An id that cannot be a task id classifies like one that is not
	// there, and never reaches the database.
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrTaskNotFound
	}
	task, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		s.logger.Errorw("task_get_failed", "id", id, "error", err)
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *taskService) UpdateTask(ctx context.Context, ownerID, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrTaskNotFound
	}
	task, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		s.logger.Errorw("task_update_get_failed", "id", id, "error", err)
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" || utf8.RuneCountInString(title) > domain.TaskTitleMaxLen {
			return nil, ErrTaskInvalidInput
		}
		task.Title = title
	}
	if input.Description != nil {
		if utf8.RuneCountInString(*input.Description) > domain.TaskDescriptionMaxLen {
			return nil, ErrTaskInvalidInput
		}
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrTaskInvalidInput
		}
		task.Status = *input.Status
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return nil, ErrTaskInvalidInput
		}
		task.Priority = *input.Priority
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	if err := s.repo.Update(ctx, task); err != nil {
		s.logger.Errorw("task_update_failed", "id", id, "error", err)
		return nil, err
	}

	s.logger.Infow("task_update_ok", "id", id, "owner_id", ownerID)
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, ownerID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrTaskNotFound
	}
	deleted, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		s.logger.Errorw("task_delete_failed", "id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	s.logger.Infow("task_delete_ok", "id", id, "owner_id", ownerID)
	return nil
}

// buildTaskQuery validates every filter field and normalizes the request
// into an owner-scoped repository query with resolved page and limit.
func buildTaskQuery(ownerID string, filter ports.TaskFilter) (ports.TaskQuery, int, int, error) {
	q := ports.TaskQuery{OwnerID: ownerID}

	if filter.Status != "" {
		status := domain.TaskStatus(filter.Status)
		if !status.Valid() {
			return q, 0, 0, ErrTaskInvalidFilter
		}
		q.Status = status
	}

	if filter.Priority != "" {
		priority := domain.TaskPriority(filter.Priority)
		if !priority.Valid() {
			return q, 0, 0, ErrTaskInvalidFilter
		}
		q.Priority = priority
	}

	if utf8.RuneCountInString(filter.Search) > MaxSearchLen {
		return q, 0, 0, ErrTaskInvalidFilter
	}
	q.Search = filter.Search

	page := filter.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return q, 0, 0, ErrTaskInvalidFilter
	}

	limit := filter.Limit
	if limit == 0 {
		limit = DefaultPageLimit
	}
	if limit < 1 || limit > MaxPageLimit {
		return q, 0, 0, ErrTaskInvalidFilter
	}

	q.Offset = (page - 1) * limit
	q.Limit = limit
	return q, page, limit, nil
}

// totalPages is ceil(total/limit); zero matches yields zero pages.
func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}
