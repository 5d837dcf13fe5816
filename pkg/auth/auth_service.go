package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/timekeeper/timekeeper/internal/utils"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Register(ctx context.Context, email, password string) (User, error)
	// Login reports whether the credentials are valid. Unknown emails and
	// wrong passwords both yield false without an error.
	Login(ctx context.Context, email, password string) (bool, error)
}

type ServiceImpl struct {
	repo  Repo
	clock utils.Clock
}

func NewService(repo Repo, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: clock}
}

func (s *ServiceImpl) Register(ctx context.Context, email, password string) (User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return User{}, fmt.Errorf("email must not be empty")
	}

	_, err := s.repo.FindByEmail(ctx, normalized)
	if err == nil {
		return User{}, ErrEmailTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return User{}, fmt.Errorf("failed to check email availability: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := User{
		Uid:          uuid.NewString(),
		Email:        normalized,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}
	id, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	user.Id = id

	log.Infof("Registered user %s", user.Uid)
	return user, nil
}

func (s *ServiceImpl) Login(ctx context.Context, email, password string) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.FindByEmail(ctx, normalized)
	if errors.Is(err, ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up user: %w", err)
	}

	valid, err := VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return false, fmt.Errorf("failed to verify password: %w", err)
	}
	return valid, nil
}
