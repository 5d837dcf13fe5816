package auth

import (
	"errors"
	"time"
)

// User is an account that can sign in. The ledger itself is not scoped per
// user; authentication is only a gate in front of it.
type User struct {
	Id           int
	Uid          string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)
