package db

import (
	"github.com/taskmgr/backend/internal/domain"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.User{},
		&domain.Task{},
	)
	if err != nil {
		return err
	}

	return createCustomIndexes(db)
}

func createCustomIndexes(db *gorm.DB) error {
	// Composite index backing the owner-scoped, newest-first list query.
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tasks_owner_created
		ON tasks (owner_id, created_at DESC)
	`).Error
}
