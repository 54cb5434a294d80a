package db

import (
	"context"
	"errors"
	"strings"

	"github.com/taskmgr/backend/internal/core/ports"
	"github.com/taskmgr/backend/internal/domain"
	"github.com/taskmgr/backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

type taskRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTaskRepository(db *gorm.DB, log *logger.Logger) ports.TaskRepository {
	return &taskRepository{db: db, log: log}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		r.log.Errorw("task_repo_create_failed", "owner_id", task.OwnerID, "error", err)
		return err
	}
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.Errorw("task_repo_get_failed", "id", id, "error", err)
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) List(ctx context.Context, q ports.TaskQuery) ([]domain.Task, int64, error) {
	// The same predicate backs both the page fetch and the total count,
	// so the statement is rebuilt rather than reused after Count.
	scoped := func() *gorm.DB {
		tx := r.db.WithContext(ctx).Model(&domain.Task{}).Where("owner_id = ?", q.OwnerID)
		if q.Status != "" {
			tx = tx.Where("status = ?", q.Status)
		}
		if q.Priority != "" {
			tx = tx.Where("priority = ?", q.Priority)
		}
		if q.Search != "" {
			pattern := "%" + escapeLike(strings.ToLower(q.Search)) + "%"
			tx = tx.Where(
				`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`,
				pattern, pattern,
			)
		}
		return tx
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		r.log.Errorw("task_repo_count_failed", "owner_id", q.OwnerID, "error", err)
		return nil, 0, err
	}

	var tasks []domain.Task
	err := scoped().
		Order("created_at DESC").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&tasks).Error
	if err != nil {
		r.log.Errorw("task_repo_list_failed", "owner_id", q.OwnerID, "error", err)
		return nil, 0, err
	}

	return tasks, total, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		r.log.Errorw("task_repo_update_failed", "id", task.ID, "error", err)
		return err
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&domain.Task{})
	if res.Error != nil {
		r.log.Errorw("task_repo_delete_failed", "id", id, "error", res.Error)
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// escapeLike neutralizes LIKE wildcards in a user-supplied search term so
// the match stays a literal substring match.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
