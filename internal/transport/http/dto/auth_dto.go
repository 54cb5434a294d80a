package dto

import (
	"net/mail"
	"strings"
	"time"

	"github.com/taskmgr/backend/internal/core/ports"
	"github.com/taskmgr/backend/internal/domain"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignupRequest) Validate() []string {
	var errors []string

	name := strings.TrimSpace(r.Name)
	if name == "" {
		errors = append(errors, "name is required")
	} else if len(name) > 50 {
		errors = append(errors, "name must be at most 50 characters")
	}

	if r.Email == "" {
		errors = append(errors, "email is required")
	} else if _, err := mail.ParseAddress(strings.TrimSpace(r.Email)); err != nil {
		errors = append(errors, "email is not a valid address")
	}

	if len(r.Password) < 6 {
		errors = append(errors, "password must be at least 6 characters")
	} else if len(r.Password) > 72 {
		errors = append(errors, "password must be at most 72 characters")
	}

	return errors
}

func (r *SignupRequest) Input() ports.SignupInput {
	return ports.SignupInput{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() []string {
	var errors []string
	if strings.TrimSpace(r.Email) == "" {
		errors = append(errors, "email is required")
	}
	if r.Password == "" {
		errors = append(errors, "password is required")
	}
	return errors
}

func (r *LoginRequest) Input() ports.LoginInput {
	return ports.LoginInput{
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
	}
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func UserToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
