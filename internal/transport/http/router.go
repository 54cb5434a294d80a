package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/taskmgr/backend/internal/config"
	"github.com/taskmgr/backend/internal/core/services"
	"github.com/taskmgr/backend/internal/infrastructure/db"
	"github.com/taskmgr/backend/internal/infrastructure/logger"
	"github.com/taskmgr/backend/internal/transport/http/dto"
	"github.com/taskmgr/backend/internal/transport/http/handlers"
	httpmw "github.com/taskmgr/backend/internal/transport/http/middleware"
	"gorm.io/gorm"
)

type RouterConfig struct {
	DB     *gorm.DB
	Logger *logger.Logger
	Config *config.Config
}

func SetupRoutes(app *fiber.App, cfg RouterConfig) {
	// Initialize repositories
	taskRepo := db.NewTaskRepository(cfg.DB, cfg.Logger)
	userRepo := db.NewUserRepository(cfg.DB, cfg.Logger)

	// Initialize services
	sessions := services.NewSessionManager(cfg.Config.Auth.JWTSecret, cfg.Config.Auth.SessionTTL)

	authService := services.NewAuthService(services.AuthServiceConfig{
		Users:    userRepo,
		Sessions: sessions,
		Logger:   cfg.Logger,
	})

	taskService := services.NewTaskService(services.TaskServiceConfig{
		Repository: taskRepo,
		Logger:     cfg.Logger,
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.Config.Auth, cfg.Logger)
	taskHandler := handlers.NewTaskHandler(taskService, cfg.Logger)

	requireUser := httpmw.RequireUser(authService, cfg.Config.Auth.CookieName)

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":   true,
			"message":   "Task Manager API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", requireUser, authHandler.Me)

	// Task routes
	tasks := api.Group("/tasks", requireUser)
	tasks.Post("/", taskHandler.CreateTask)
	tasks.Get("/", taskHandler.GetTasks)
	tasks.Get("/:id", taskHandler.GetTask)
	tasks.Put("/:id", taskHandler.UpdateTask)
	tasks.Delete("/:id", taskHandler.DeleteTask)

	// Unmatched routes get the same envelope as everything else.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.Error(
			"Route not found: " + c.Method() + " " + c.OriginalURL(),
		))
	})
}
