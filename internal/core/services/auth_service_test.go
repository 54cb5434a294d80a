package services

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/taskmgr/backend/internal/core/ports"
	"github.com/taskmgr/backend/internal/infrastructure/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) ports.AuthService {
	t.Helper()

	dbPath := "test_users_" + t.Name() + ".db"
	gdb, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := gdb.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		os.Remove(dbPath)
	})

	if err := db.RunMigrations(gdb); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewAuthService(AuthServiceConfig{
		Users:    db.NewUserRepository(gdb, testLogger()),
		Sessions: NewSessionManager("test-secret", time.Hour),
		Logger:   testLogger(),
	})
}

func TestSignupAndLogin(t *testing.T) {
	service := setupAuthTest(t)
	ctx := context.Background()

	user, token, err := service.Signup(ctx, ports.SignupInput{
		Name:     "Ada",
		Email:    "Ada@Example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Errorf("email = %q, want lowercased", user.Email)
	}
	if user.PasswordHash == "secret1" || user.PasswordHash == "" {
		t.Error("password stored unhashed")
	}

	userID, err := service.ResolveToken(token)
	if err != nil {
		t.Fatalf("ResolveToken failed: %v", err)
	}
	if userID != user.ID {
		t.Errorf("token resolves to %q, want %q", userID, user.ID)
	}

	// Login with original casing works.
	loggedIn, _, err := service.Login(ctx, ports.LoginInput{Email: "Ada@Example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("login returned user %q, want %q", loggedIn.ID, user.ID)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	service := setupAuthTest(t)
	ctx := context.Background()

	input := ports.SignupInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"}
	if _, _, err := service.Signup(ctx, input); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, _, err := service.Signup(ctx, input); err != ErrAuthEmailTaken {
		t.Errorf("duplicate signup: err = %v, want ErrAuthEmailTaken", err)
	}
}

func TestSignupValidation(t *testing.T) {
	service := setupAuthTest(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input ports.SignupInput
	}{
		{"empty name", ports.SignupInput{Name: " ", Email: "a@b.com", Password: "secret1"}},
		{"bad email", ports.SignupInput{Name: "Ada", Email: "not-an-email", Password: "secret1"}},
		{"short password", ports.SignupInput{Name: "Ada", Email: "a@b.com", Password: "12345"}},
		{"overlong password", ports.SignupInput{Name: "Ada", Email: "a@b.com", Password: strings.Repeat("p", 73)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := service.Signup(ctx, tc.input); err != ErrAuthInvalidInput {
				t.Errorf("err = %v, want ErrAuthInvalidInput", err)
			}
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service := setupAuthTest(t)
	ctx := context.Background()

	if _, _, err := service.Signup(ctx, ports.SignupInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	// Unknown account and wrong password look the same.
	if _, _, err := service.Login(ctx, ports.LoginInput{Email: "nobody@example.com", Password: "secret1"}); err != ErrAuthInvalidCredentials {
		t.Errorf("unknown email: err = %v, want ErrAuthInvalidCredentials", err)
	}
	if _, _, err := service.Login(ctx, ports.LoginInput{Email: "ada@example.com", Password: "wrong"}); err != ErrAuthInvalidCredentials {
		t.Errorf("wrong password: err = %v, want ErrAuthInvalidCredentials", err)
	}
}

func TestGetUserMissing(t *testing.T) {
	service := setupAuthTest(t)

	if _, err := service.GetUser(context.Background(), "no-such-id"); err != ErrAuthUserNotFound {
		t.Errorf("err = %v, want ErrAuthUserNotFound", err)
	}
}
