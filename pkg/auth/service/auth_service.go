package service

import (
	"errors"

	"agriportal/entities"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrEmailTaken    = errors.New("email already registered")
	ErrBadSecret     = errors.New("registration secret does not match")
)

type AuthService interface {
	// Login checks the env-admin credentials first, then the users table.
	Login(email, password string) (*entities.Actor, error)
	// Register creates a user; gated by the registration secret.
	Register(secret, email, name, password string, isAdmin bool) (*entities.User, error)
}
