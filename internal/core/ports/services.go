package ports

import (
	"context"
	"time"

	"github.com/taskmgr/backend/internal/domain"
)

type CreateTaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	DueDate     *time.Time
}

// UpdateTaskInput carries partial-update semantics: nil means "leave the
// field as it is", including DueDate (a due date cannot be cleared, only
// moved, matching the create/update surface of the API).
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	DueDate     *time.Time
}

// TaskFilter is the raw list request before validation. Zero values mean
// "not supplied"; Page and Limit fall back to their defaults.
type TaskFilter struct {
	Status   string
	Priority string
	Search   string
	Page     int
	Limit    int
}

type Pagination struct {
	// Current is the requested page number, 1-based.
	Current int `json:"current"`
	// Total is ceil(totalTasks/limit); 0 when nothing matches.
	Total int `json:"total"`
	// Count is the number of tasks in this page.
	Count int `json:"count"`
	// TotalTasks is the match count across all pages.
	TotalTasks int64 `json:"totalTasks"`
}

type TaskPage struct {
	Tasks      []domain.Task
	Pagination Pagination
}

type TaskService interface {
	CreateTask(ctx context.Context, ownerID string, input CreateTaskInput) (*domain.Task, error)
	ListTasks(ctx context.Context, ownerID string, filter TaskFilter) (*TaskPage, error)
	GetTask(ctx context.Context, ownerID, id string) (*domain.Task, error)
	UpdateTask(ctx context.Context, ownerID, id string, input UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, ownerID, id string) error
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthService interface {
	// Signup creates the account and returns a session token for it.
	Signup(ctx context.Context, input SignupInput) (*domain.User, string, error)
	// Login verifies credentials and returns a session token.
	Login(ctx context.Context, input LoginInput) (*domain.User, string, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// ResolveToken maps a session token back to a user id.
	ResolveToken(token string) (string, error)
}
