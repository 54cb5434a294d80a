package services

import "errors"

// Task errors
var (
	ErrTaskNotFound      = errors.New("task: not found")
	ErrTaskInvalidInput  = errors.New("task: invalid input")
	ErrTaskInvalidFilter = errors.New("task: invalid filter")
)

// Auth errors
var (
	ErrAuthInvalidInput       = errors.New("auth: invalid input")
	ErrAuthEmailTaken         = errors.New("auth: email already registered")
	ErrAuthInvalidCredentials = errors.New("auth: invalid email or password")
	ErrAuthInvalidToken       = errors.New("auth: invalid or expired token")
	ErrAuthUserNotFound       = errors.New("auth: user not found")
)
