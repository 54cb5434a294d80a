package dto

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/taskmgr/backend/internal/core/ports"
	"github.com/taskmgr/backend/internal/domain"
)

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

func (r *CreateTaskRequest) Validate() []string {
	var errors []string

	title := strings.TrimSpace(r.Title)
	if title == "" {
		errors = append(errors, "title is required")
	} else if utf8.RuneCountInString(title) > domain.TaskTitleMaxLen {
		errors = append(errors, "title must be at most 100 characters")
	}

	if utf8.RuneCountInString(strings.TrimSpace(r.Description)) > domain.TaskDescriptionMaxLen {
		errors = append(errors, "description must be at most 500 characters")
	}

	if r.Status != "" && !domain.TaskStatus(r.Status).Valid() {
		errors = append(errors, "status must be one of: pending, in-progress, completed")
	}

	if r.Priority != "" && !domain.TaskPriority(r.Priority).Valid() {
		errors = append(errors, "priority must be one of: low, medium, high")
	}

	if r.DueDate != "" {
		if _, err := time.Parse(time.RFC3339, r.DueDate); err != nil {
			errors = append(errors, "dueDate must be an RFC 3339 timestamp")
		}
	}

	return errors
}

// Input assumes Validate passed.
func (r *CreateTaskRequest) Input() ports.CreateTaskInput {
	input := ports.CreateTaskInput{
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		Status:      domain.TaskStatus(r.Status),
		Priority:    domain.TaskPriority(r.Priority),
	}
	if r.DueDate != "" {
		if due, err := time.Parse(time.RFC3339, r.DueDate); err == nil {
			input.DueDate = &due
		}
	}
	return input
}

// UpdateTaskRequest distinguishes absent fields (nil) from supplied ones;
// absent fields are left untouched by the update.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

func (r *UpdateTaskRequest) Validate() []string {
	var errors []string

	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			errors = append(errors, "title must not be empty")
		} else if utf8.RuneCountInString(title) > domain.TaskTitleMaxLen {
			errors = append(errors, "title must be at most 100 characters")
		}
	}

	if r.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*r.Description)) > domain.TaskDescriptionMaxLen {
		errors = append(errors, "description must be at most 500 characters")
	}

	if r.Status != nil && !domain.TaskStatus(*r.Status).Valid() {
		errors = append(errors, "status must be one of: pending, in-progress, completed")
	}

	if r.Priority != nil && !domain.TaskPriority(*r.Priority).Valid() {
		errors = append(errors, "priority must be one of: low, medium, high")
	}

	if r.DueDate != nil {
		if _, err := time.Parse(time.RFC3339, *r.DueDate); err != nil {
			errors = append(errors, "dueDate must be an RFC 3339 timestamp")
		}
	}

	return errors
}

func (r *UpdateTaskRequest) Input() ports.UpdateTaskInput {
	input := ports.UpdateTaskInput{}
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		input.Title = &title
	}
	if r.Description != nil {
		description := strings.TrimSpace(*r.Description)
		input.Description = &description
	}
	if r.Status != nil {
		status := domain.TaskStatus(*r.Status)
		input.Status = &status
	}
	if r.Priority != nil {
		priority := domain.TaskPriority(*r.Priority)
		input.Priority = &priority
	}
	if r.DueDate != nil {
		if due, err := time.Parse(time.RFC3339, *r.DueDate); err == nil {
			input.DueDate = &due
		}
	}
	return input
}

// ListTasksRequest keeps page and limit as strings so malformed numbers
// surface as validation errors instead of silently becoming zero.
type ListTasksRequest struct {
	Status   string `query:"status"`
	Priority string `query:"priority"`
	Search   string `query:"search"`
	Page     string `query:"page"`
	Limit    string `query:"limit"`
}

func (r *ListTasksRequest) Validate() []string {
	var errors []string

	if r.Status != "" && !domain.TaskStatus(r.Status).Valid() {
		errors = append(errors, "status filter must be one of: pending, in-progress, completed")
	}

	if r.Priority != "" && !domain.TaskPriority(r.Priority).Valid() {
		errors = append(errors, "priority filter must be one of: low, medium, high")
	}

	if utf8.RuneCountInString(strings.TrimSpace(r.Search)) > 100 {
		errors = append(errors, "search term must be at most 100 characters")
	}

	if r.Page != "" {
		if page, err := strconv.Atoi(r.Page); err != nil || page < 1 {
			errors = append(errors, "page must be a positive integer")
		}
	}

	if r.Limit != "" {
		if limit, err := strconv.Atoi(r.Limit); err != nil || limit < 1 || limit > 100 {
			errors = append(errors, "limit must be between 1 and 100")
		}
	}

	return errors
}

func (r *ListTasksRequest) Filter() ports.TaskFilter {
	filter := ports.TaskFilter{
		Status:   r.Status,
		Priority: r.Priority,
		Search:   strings.TrimSpace(r.Search),
	}
	if r.Page != "" {
		filter.Page, _ = strconv.Atoi(r.Page)
	}
	if r.Limit != "" {
		filter.Limit, _ = strconv.Atoi(r.Limit)
	}
	return filter
}

type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func TaskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func TasksToResponse(tasks []domain.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = TaskToResponse(&tasks[i])
	}
	return responses
}

type TaskListResponse struct {
	Tasks      []TaskResponse   `json:"tasks"`
	Pagination ports.Pagination `json:"pagination"`
}
