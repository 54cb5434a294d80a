package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/taskmgr/backend/internal/core/ports"
	"github.com/taskmgr/backend/internal/domain"
	"github.com/taskmgr/backend/internal/infrastructure/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	bcryptCost     = 12
	minPasswordLen = 6
	// bcrypt silently truncates beyond 72 bytes, so longer inputs are
	// rejected instead.
	maxPasswordLen = 72
	maxNameLen     = 50
)

type authService struct {
	users    ports.UserRepository
	sessions *SessionManager
	logger   *logger.Logger
}

type AuthServiceConfig struct {
	Users    ports.UserRepository
	Sessions *SessionManager
	Logger   *logger.Logger
}

func NewAuthService(cfg AuthServiceConfig) ports.AuthService {
	return &authService{
		users:    cfg.Users,
		sessions: cfg.Sessions,
		logger:   cfg.Logger,
	}
}

func (s *authService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, string, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if name == "" || len(name) > maxNameLen {
		return nil, "", ErrAuthInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, "", ErrAuthInvalidInput
	}
	if len(input.Password) < minPasswordLen || len(input.Password) > maxPasswordLen {
		return nil, "", ErrAuthInvalidInput
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Errorw("auth_signup_lookup_failed", "error", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrAuthEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The pre-check above races with concurrent signups; the unique
		// index has the final word.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrAuthEmailTaken
		}
		s.logger.Errorw("auth_signup_create_failed", "email", email, "error", err)
		return nil, "", err
	}

	token, err := s.sessions.Issue(user.ID, user.Email)
	if err != nil {
		s.logger.Errorw("auth_signup_token_failed", "user_id", user.ID, "error", err)
		return nil, "", err
	}

	s.logger.Infow("auth_signup_ok", "user_id", user.ID)
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, input ports.LoginInput) (*domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Errorw("auth_login_lookup_failed", "error", err)
		return nil, "", err
	}
	// Missing user and wrong password are indistinguishable to the caller.
	if user == nil {
		return nil, "", ErrAuthInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, "", ErrAuthInvalidCredentials
	}

	token, err := s.sessions.Issue(user.ID, user.Email)
	if err != nil {
		s.logger.Errorw("auth_login_token_failed", "user_id", user.ID, "error", err)
		return nil, "", err
	}

	s.logger.Infow("auth_login_ok", "user_id", user.ID)
	return user, token, nil
}

func (s *authService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrAuthUserNotFound
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("auth_get_user_failed", "user_id", id, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrAuthUserNotFound
	}
	return user, nil
}

func (s *authService) ResolveToken(token string) (string, error) {
	return s.sessions.Validate(token)
}
