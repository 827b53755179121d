package service

import (
	"errors"

	"fms/entities"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

// DefaultPassword is assigned to owner-created farmer and subscriber
// accounts; those users are nudged to reset it on first login.
const DefaultPassword = "12345678"

type AuthService interface {
	Register(email, password, name, role string) (token string, err error)
	Login(email, password string) (token string, err error)
	// CreateMember provisions a farmer or subscriber account with the
	// default password, generating an email from the name when absent.
	CreateMember(name, email, role string) (*entities.User, error)
	ResetPassword(user *entities.User, current, next string) error
	IsDefaultPassword(user *entities.User) bool
}
