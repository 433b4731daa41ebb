// Package auth implements the credential lifecycle: password hashing on
// registration, verification on login, and issuing/parsing signed session
// tokens. It is stateless logic over a store.Store and a signing secret.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"credgate/authd/internal/model"
	"credgate/authd/internal/store"

	"golang.org/x/crypto/bcrypt"
)

const defaultBcryptCost = 8

type Engine struct {
	store    store.Store
	secret   []byte
	cost     int
	tokenTTL time.Duration
}

// NewEngine builds an engine around the given store and signing secret. The
// secret is read-only for the life of the engine. An out-of-range bcrypt cost
// falls back to the default; costs above 12 are rejected so a single hash
// never stalls a request.
func NewEngine(st store.Store, secret []byte, bcryptCost int) *Engine {
	if bcryptCost < bcrypt.MinCost || bcryptCost > 12 {
		bcryptCost = defaultBcryptCost
	}
	return &Engine{
		store:    st,
		secret:   secret,
		cost:     bcryptCost,
		tokenTTL: tokenExpiry,
	}
}

// Register creates a user with a bcrypt hash of the password. Guards run in
// order: presence, uniqueness lookup, hash, insert. A conflict surfacing from
// the insert itself (two racing registrations) maps to the same
// ErrUsernameTaken as the lookup.
func (e *Engine) Register(ctx context.Context, username, password string) (model.User, error) {
	if username == "" || password == "" {
		return model.User{}, ErrMissingFields
	}

	if _, err := e.store.GetUserByUsername(ctx, username); err == nil {
		return model.User{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return model.User{}, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := e.store.CreateUser(ctx, model.User{Username: username, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return model.User{}, ErrUsernameTaken
		}
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Login verifies the password against the stored hash and issues a session
// token. Unknown username and wrong password return the identical
// ErrInvalidCredentials so responses never reveal which check failed.
func (e *Engine) Login(ctx context.Context, username, password string) (model.User, string, error) {
	if username == "" || password == "" {
		return model.User{}, "", ErrMissingFields
	}

	u, err := e.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.User{}, "", ErrInvalidCredentials
		}
		return model.User{}, "", fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return model.User{}, "", ErrInvalidCredentials
	}

	token, err := e.signToken(u.ID, u.Username)
	if err != nil {
		return model.User{}, "", fmt.Errorf("sign token: %w", err)
	}
	return *u, token, nil
}
