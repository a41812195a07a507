package session

import (
	"errors"
	"log/slog"
	"sync"

	"bookcatalog/internal/authclient"
	"bookcatalog/internal/kvstore"
	"bookcatalog/pkg/domain"
)

const genericAuthMessage = "An unexpected error occurred. Please try again."

// AuthClient is the slice of the authentication service the store needs.
type AuthClient interface {
	Login(username, password string) (token string, role domain.Role, err error)
	SignUp(email, username, password string) (message string, err error)
}

// Store owns the session: in-memory state plus its durable mirror. It is
// the only component allowed to touch the persisted token/role keys.
type Store struct {
	mu      sync.RWMutex
	auth    AuthClient
	kv      kvstore.Store
	current domain.Session
}

// New hydrates the in-memory session from the persisted store. A stored
// pair with an unknown role is discarded rather than trusted.
func New(auth AuthClient, kv kvstore.Store) *Store {
	s := &Store{auth: auth, kv: kv}
	token, _ := kv.Get(kvstore.KeyToken)
	roleRaw, _ := kv.Get(kvstore.KeyRole)
	if token != "" {
		if role, ok := domain.ParseRole(roleRaw); ok {
			s.current = domain.Session{Token: token, Role: role}
		} else {
			slog.Warn("discarding persisted session with unknown role", "role", roleRaw)
			s.clearPersisted()
		}
	}
	return s
}

// Login authenticates against the auth service. On success the token and
// role are written to the persisted store as a pair and mirrored in
// memory before returning; on failure both are left untouched. The call
// is never retried.
func (s *Store) Login(username, password string) (domain.Session, error) {
	token, role, err := s.auth.Login(username, password)
	if err != nil {
		return domain.Session{}, authError(err)
	}
	sess := domain.Session{Token: token, Role: role}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Set(kvstore.KeyToken, token); err != nil {
		slog.Error("persist session token", "err", err)
		return domain.Session{}, s.failClosed()
	}
	if err := s.kv.Set(kvstore.KeyRole, string(role)); err != nil {
		slog.Error("persist session role", "err", err)
		return domain.Session{}, s.failClosed()
	}
	s.current = sess
	return sess, nil
}

// SignUp registers a new account. It never creates a session.
func (s *Store) SignUp(email, username, password string) (string, error) {
	msg, err := s.auth.SignUp(email, username, password)
	if err != nil {
		return "", authError(err)
	}
	return msg, nil
}

// Logout clears the in-memory session and the persisted pair together,
// unconditionally.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearPersisted()
	s.current = domain.Session{}
}

// Current returns the in-memory session.
func (s *Store) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token returns the current bearer token, empty when unauthenticated.
func (s *Store) Token() string {
	return s.Current().Token
}

// failClosed converges both stores to logged-out after a persistence
// failure mid-login. Memory and the durable mirror must never disagree,
// so a half-written pair takes the prior session down with it.
// Callers must hold s.mu.
func (s *Store) failClosed() error {
	s.clearPersisted()
	s.current = domain.Session{}
	return &domain.Error{Kind: domain.KindUnhandled, Message: genericAuthMessage}
}

func (s *Store) clearPersisted() {
	if err := s.kv.Delete(kvstore.KeyToken); err != nil {
		slog.Warn("clear persisted token", "err", err)
	}
	if err := s.kv.Delete(kvstore.KeyRole); err != nil {
		slog.Warn("clear persisted role", "err", err)
	}
}

func authError(err error) error {
	var apiErr *authclient.APIError
	if errors.As(err, &apiErr) {
		return domain.NewAuthError(apiErr.Error())
	}
	slog.Error("auth service unreachable", "err", err)
	return domain.NewAuthError(genericAuthMessage)
}
