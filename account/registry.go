// Package account keeps the shell's user accounts. Passwords are stored as
// bcrypt hashes only.
package account

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/shriyamishra-ctrl/Train-Reservation-system/store"
)

var (
	// ErrUserExists is returned by Signup for a taken username.
	ErrUserExists = errors.New("account: username already exists")

	// ErrInvalidCredentials is returned for empty usernames or passwords,
	// ones containing whitespace, and usernames starting with '#'.
	ErrInvalidCredentials = errors.New("account: invalid username or password")

	// ErrBadLogin is returned by Login for an unknown user or wrong password.
	ErrBadLogin = errors.New("account: invalid username or password")
)

// Registry maps usernames to password hashes. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	users map[string][]byte
	cost  int
}

// Option configures a Registry.
type Option func(*Registry)

// WithCost sets the bcrypt cost for new passwords. Values outside
// [bcrypt.MinCost, bcrypt.MaxCost] fall back to bcrypt.DefaultCost.
func WithCost(cost int) Option {
	return func(r *Registry) {
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			cost = bcrypt.DefaultCost
		}
		r.cost = cost
	}
}

// NewRegistry returns a registry seeded with previously persisted users.
// Later records for the same username replace earlier ones.
func NewRegistry(records []store.UserRecord, opts ...Option) *Registry {
	r := &Registry{
		users: make(map[string][]byte, len(records)),
		cost:  bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, rec := range records {
		r.users[rec.Username] = []byte(rec.Hash)
	}

	return r
}

// Signup creates a user.
func (r *Registry) Signup(username, password string) error {
	if err := validate(username, password); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), r.cost)
	if err != nil {
		return fmt.Errorf("account: hash password: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[username]; ok {
		return fmt.Errorf("%w: %s", ErrUserExists, username)
	}
	r.users[username] = hash

	return nil
}

// Login checks a username and password.
func (r *Registry) Login(username, password string) error {
	r.mu.RLock()
	hash, ok := r.users[username]
	r.mu.RUnlock()
	if !ok {
		return ErrBadLogin
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return ErrBadLogin
	}

	return nil
}

// Exists reports whether username is registered.
func (r *Registry) Exists(username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[username]

	return ok
}

// Len returns the number of users.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}

// Records returns all users sorted by username, ready to be saved.
func (r *Registry) Records() []store.UserRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := maps.Keys(r.users)
	slices.Sort(names)
	out := make([]store.UserRecord, 0, len(names))
	for _, n := range names {
		out = append(out, store.UserRecord{Username: n, Hash: string(r.users[n])})
	}

	return out
}

func validate(username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: both fields are required", ErrInvalidCredentials)
	}
	if err := store.CheckField(username); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	if strings.ContainsFunc(password, unicode.IsSpace) {
		return fmt.Errorf("%w: whitespace is not allowed", ErrInvalidCredentials)
	}

	return nil
}
