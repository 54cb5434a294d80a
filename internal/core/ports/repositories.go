package ports

import (
	"context"

	"github.com/taskmgr/backend/internal/domain"
)

// TaskQuery is the normalized, already-validated form of a list request.
// OwnerID is always set; zero-value optional fields are left out of the
// predicate. Offset/Limit are absolute row positions, not page numbers.
type TaskQuery struct {
	OwnerID  string
	Status   domain.TaskStatus
	Priority domain.TaskPriority
	Search   string
	Offset   int
	Limit    int
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	// GetByID returns (nil, nil) when no task with that id belongs to the owner.
	GetByID(ctx context.Context, ownerID, id string) (*domain.Task, error)
	// List returns one page of matches plus the total match count for the
	// same predicate.
	List(ctx context.Context, q TaskQuery) ([]domain.Task, int64, error)
	Update(ctx context.Context, task *domain.Task) error
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, ownerID, id string) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// GetByEmail returns (nil, nil) when no user has that email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetByID returns (nil, nil) when no user has that id.
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
