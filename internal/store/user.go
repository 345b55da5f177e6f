package store

import (
	"context"
	"sync"

	"github.com/gamescores/apiserver/types"
)

// UserStore holds user records for the lifetime of the process.
// Records are append-only: users are never updated or deleted, and
// the store resets to its seed on restart.
type UserStore struct {
	mu     sync.Mutex
	users  []types.User
	nextID int
}

func NewUserStore() *UserStore {
	return &UserStore{nextID: 1}
}

// Create appends a new user and assigns the next id. Ids are handed
// out from a counter under the store lock, so concurrent signups
// cannot collide; with no deletions the result is identical to
// numbering users by insertion order.
func (r *UserStore) Create(ctx context.Context, user types.User) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, user)
	return user, nil
}

// GetByID returns the user with the given id.
func (r *UserStore) GetByID(ctx context.Context, id int) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return types.User{}, ErrNotFound
}

// GetByCredentials returns the earliest user whose handle and
// password both match exactly. Duplicate handles are permitted at
// signup, so the match is first-wins in insertion order.
func (r *UserStore) GetByCredentials(ctx context.Context, userHandle, password string) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.UserHandle == userHandle && user.Password == password {
			return user, nil
		}
	}
	return types.User{}, ErrNotFound
}
