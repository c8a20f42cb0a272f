// Package auth handles authentication business logic: credential validation
// against the principal store and role resolution. This service is
// framework-agnostic; the HTTP token endpoint and middleware live under
// internal/handler/http/auth.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"newsroom-cms/internal/domain/entity"
	"newsroom-cms/internal/repository"
)

// ErrInvalidCredentials is returned for any failed login. It deliberately
// does not distinguish unknown email from wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash is a valid bcrypt hash compared against when the email is
// unknown, keeping the timing of that path in line with a real comparison.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Credentials represents authentication credentials.
type Credentials struct {
	Email    string
	Password string
}

// SessionEvent describes a principal session appearing. Subscribers receive
// it synchronously on successful authentication.
type SessionEvent struct {
	PrincipalID string
	Role        entity.Role
}

// AuthService validates credentials against the principal store and resolves
// roles. Role resolution is side-effect-free and safe to call repeatedly; it
// performs no retries — retry policy belongs to the caller.
type AuthService struct {
	principals repository.PrincipalRepository

	mu          sync.RWMutex
	subscribers []func(SessionEvent)
}

// NewAuthService creates a new authentication service.
func NewAuthService(principals repository.PrincipalRepository) *AuthService {
	return &AuthService{principals: principals}
}

// Subscribe registers a callback invoked on every session event. Intended to
// be called once at startup, before the service handles requests.
func (s *AuthService) Subscribe(fn func(SessionEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Authenticate validates the credentials and returns the matching principal.
// Both an unknown email and a wrong password yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, creds Credentials) (*entity.Principal, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, ErrInvalidCredentials
	}

	p, err := s.principals.GetByEmail(ctx, strings.ToLower(creds.Email))
	if err != nil {
		return nil, fmt.Errorf("lookup principal: %w", err)
	}
	if p == nil {
		// Burn a comparison anyway so unknown emails cost the same as wrong
		// passwords.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(creds.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.notify(SessionEvent{PrincipalID: p.ID, Role: p.Role})
	return p, nil
}

// RoleOf resolves the role of a principal. A missing role record is reported
// as entity.ErrNotFound; callers treat that as "no permissions" rather than a
// hard failure.
func (s *AuthService) RoleOf(ctx context.Context, principalID string) (entity.Role, error) {
	if principalID == "" {
		return entity.RolePublic, entity.ErrNotFound
	}
	p, err := s.principals.Get(ctx, principalID)
	if err != nil {
		return entity.RolePublic, fmt.Errorf("lookup principal: %w", err)
	}
	if p == nil || !p.Role.Valid() {
		return entity.RolePublic, entity.ErrNotFound
	}
	return p.Role, nil
}

func (s *AuthService) notify(ev SessionEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, fn := range s.subscribers {
		fn(ev)
	}
}
