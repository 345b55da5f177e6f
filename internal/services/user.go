package services

import (
	"context"

	"github.com/gamescores/apiserver/types"
)

// UserRepository defines storage operations for users.
type UserRepository interface {
	Create(ctx context.Context, user types.User) (types.User, error)
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByCredentials(ctx context.Context, userHandle, password string) (types.User, error)
}

// UserService encapsulates user use-cases.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, user types.User) (types.User, error) {
	return s.repo.Create(ctx, user)
}

func (s *UserService) GetByID(ctx context.Context, id int) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Authenticate resolves a user by exact handle and password match.
// Passwords are compared in plaintext for parity with the original
// service; hashing is deliberately out of scope.
func (s *UserService) Authenticate(ctx context.Context, userHandle, password string) (types.User, error) {
	return s.repo.GetByCredentials(ctx, userHandle, password)
}
