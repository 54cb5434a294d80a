package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/taskmgr/backend/internal/config"
	"github.com/taskmgr/backend/internal/core/ports"
	"github.com/taskmgr/backend/internal/core/services"
	"github.com/taskmgr/backend/internal/infrastructure/logger"
	"github.com/taskmgr/backend/internal/transport/http/dto"
	"github.com/taskmgr/backend/internal/transport/http/middleware"
)

type AuthHandler struct {
	service ports.AuthService
	cfg     config.AuthConfig
	logger  *logger.Logger
}

func NewAuthHandler(service ports.AuthService, cfg config.AuthConfig, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, cfg: cfg, logger: logger}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("auth_signup_body_parse_failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid request body"))
	}

	if errors := req.Validate(); len(errors) > 0 {
		h.logger.Warnw("auth_signup_validation_failed", "details", errors)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationError(errors))
	}

	user, token, err := h.service.Signup(c.Context(), req.Input())
	if err != nil {
		if err == services.ErrAuthEmailTaken {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("An account with this email already exists"))
		}
		if err == services.ErrAuthInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error(err.Error()))
		}
		h.logger.Errorw("auth_signup_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Server error during signup"))
	}

	h.setSessionCookie(c, token)
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage("Account created successfully", fiber.Map{
		"user": dto.UserToResponse(user),
	}))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("auth_login_body_parse_failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid request body"))
	}

	if errors := req.Validate(); len(errors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationError(errors))
	}

	user, token, err := h.service.Login(c.Context(), req.Input())
	if err != nil {
		if err == services.ErrAuthInvalidCredentials {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Invalid email or password"))
		}
		h.logger.Errorw("auth_login_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Server error during login"))
	}

	h.setSessionCookie(c, token)
	return c.JSON(dto.OKMessage("Logged in successfully", fiber.Map{
		"user": dto.UserToResponse(user),
	}))
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)
	user, err := h.service.GetUser(c.Context(), userID)
	if err != nil {
		if err == services.ErrAuthUserNotFound {
			// Valid token for a deleted account; treat as unauthenticated.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Invalid or expired session"))
		}
		h.logger.Errorw("auth_me_failed", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Server error while fetching profile"))
	}

	return c.JSON(dto.OK(fiber.Map{"user": dto.UserToResponse(user)}))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(dto.OKMessage("Logged out successfully", nil))
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.SessionTTL),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
