package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/agroassist/engine/internal/models"
	appErr "github.com/agroassist/engine/pkg/errors"
)

// MemoryUserRepository is an in-process credential store with the same
// conflict semantics as the Postgres one: the existence check and the insert
// happen under one lock, so concurrent creates for the same email yield
// exactly one success.
type MemoryUserRepository struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
	byID    map[uuid.UUID]*models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byEmail: map[string]*models.User{},
		byID:    map[uuid.UUID]*models.User{},
	}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[user.Email]; ok {
		return appErr.New(appErr.CodeConflict, "email already registered")
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	r.byEmail[cp.Email] = &cp
	r.byID[cp.ID] = &cp
	return nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id any, dest *models.User) error {
	uid, ok := id.(uuid.UUID)
	if !ok {
		return appErr.New(appErr.CodeInvalid, "invalid user id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[uid]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "user not found")
	}
	*dest = *u
	return nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string, dest *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byEmail[email]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "user not found")
	}
	*dest = *u
	return nil
}

// Len reports the number of stored users.
func (r *MemoryUserRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byEmail)
}
