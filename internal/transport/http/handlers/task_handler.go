package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/taskmgr/backend/internal/core/ports"
	"github.com/taskmgr/backend/internal/core/services"
	"github.com/taskmgr/backend/internal/infrastructure/logger"
	"github.com/taskmgr/backend/internal/transport/http/dto"
	"github.com/taskmgr/backend/internal/transport/http/middleware"
)

type TaskHandler struct {
	service ports.TaskService
	logger  *logger.Logger
}

func NewTaskHandler(service ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{service: service, logger: logger}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("task_create_body_parse_failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid request body"))
	}

	if errors := req.Validate(); len(errors) > 0 {
		h.logger.Warnw("task_create_validation_failed", "details", errors)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationError(errors))
	}

	ownerID := middleware.CurrentUserID(c)
	task, err := h.service.CreateTask(c.Context(), ownerID, req.Input())
	if err != nil {
		if err == services.ErrTaskInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error(err.Error()))
		}
		h.logger.Errorw("task_create_failed", "owner_id", ownerID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Server error while creating task"))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage("Task created successfully", fiber.Map{
		"task": dto.TaskToResponse(task),
	}))
}

func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	var req dto.ListTasksRequest
	if err := c.QueryParser(&req); err != nil {
		h.logger.Warnw("task_list_query_parse_failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid query parameters"))
	}

	if errors := req.Validate(); len(errors) > 0 {
		h.logger.Warnw("task_list_validation_failed", "details", errors)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationError(errors))
	}

	ownerID := middleware.CurrentUserID(c)
	page, err := h.service.ListTasks(c.Context(), ownerID, req.Filter())
	if err != nil {
		if err == services.ErrTaskInvalidFilter {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error(err.Error()))
		}
		h.logger.Errorw("task_list_failed", "owner_id", ownerID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Server error while fetching tasks"))
	}

	return c.JSON(dto.OK(dto.TaskListResponse{
		Tasks:      dto.TasksToResponse(page.Tasks),
		Pagination: page.Pagination,
	}))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ownerID := middleware.CurrentUserID(c)
	task, err := h.service.GetTask(c.Context(), ownerID, c.Params("id"))
	if err != nil {
		if err == services.ErrTaskNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.Error("Task not found"))
		}
		h.logger.Errorw("task_get_failed", "id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Server error while fetching task"))
	}

	return c.JSON(dto.OK(fiber.Map{"task": dto.TaskToResponse(task)}))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("task_update_body_parse_failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid request body"))
	}

	if errors := req.Validate(); len(errors) > 0 {
		h.logger.Warnw("task_update_validation_failed", "details", errors)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationError(errors))
	}

	ownerID := middleware.CurrentUserID(c)
	task, err := h.service.UpdateTask(c.Context(), ownerID, c.Params("id"), req.Input())
	if err != nil {
		if err == services.ErrTaskNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.Error("Task not found"))
		}
		if err == services.ErrTaskInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error(err.Error()))
		}
		h.logger.Errorw("task_update_failed", "id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Server error while updating task"))
	}

	return c.JSON(dto.OKMessage("Task updated successfully", fiber.Map{
		"task": dto.TaskToResponse(task),
	}))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ownerID := middleware.CurrentUserID(c)
	if err := h.service.DeleteTask(c.Context(), ownerID, c.Params("id")); err != nil {
		if err == services.ErrTaskNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.Error("Task not found"))
		}
		h.logger.Errorw("task_delete_failed", "id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Server error while deleting task"))
	}

	return c.JSON(dto.OKMessage("Task deleted successfully", nil))
}
