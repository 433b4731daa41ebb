package store

import (
	"context"
	"errors"

	"credgate/authd/internal/model"
)

var (
	ErrNotFound = errors.New("not_found")
	ErrConflict = errors.New("conflict")
)

// Store persists user records. CreateUser must reject a duplicate username
// atomically with respect to concurrent inserts: of N racing calls with the
// same username exactly one succeeds and the rest get ErrConflict.
type Store interface {
	CreateUser(ctx context.Context, u model.User) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}
