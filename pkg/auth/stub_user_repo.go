package auth

import (
	"context"
)

type StubRepo struct {
	nextId int
	data   map[string]User
}

func NewStubRepo() *StubRepo {
	return &StubRepo{data: map[string]User{}}
}

func (s *StubRepo) CreateUser(ctx context.Context, user User) (int, error) {
	s.nextId++
	user.Id = s.nextId
	s.data[user.Email] = user
	return user.Id, nil
}

func (s *StubRepo) FindByEmail(ctx context.Context, email string) (User, error) {
	user, ok := s.data[email]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}
