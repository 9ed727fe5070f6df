// Package session holds the authenticated identity for the lifetime of the process.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"motofleet/client/fleet-client/internal/storage"
)

// ErrEmptyToken is returned by SetProfile when no token is given.
var ErrEmptyToken = errors.New("session: token is empty")

// Profile is a point-in-time view of the session.
type Profile struct {
	Token           string
	Usuario         string
	IsAuthenticated bool
	// Loading is true until the initial Load has finished.
	Loading bool
}

// Store is the session holder. Construct one per process and pass it to whatever needs it.
type Store struct {
	kv  storage.Store
	log *zap.Logger

	mu      sync.RWMutex
	token   string
	usuario string
	loading bool

	loadOnce sync.Once
	loaded   chan struct{}
}

// New builds an unloaded store. Call Load before trusting Snapshot.
func New(kv storage.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		kv:      kv,
		log:     logger,
		loading: true,
		loaded:  make(chan struct{}),
	}
}

// Load restores the persisted token. Only the first call does any work.
// A storage failure is logged and leaves the session unauthenticated.
func (s *Store) Load(ctx context.Context) {
	s.loadOnce.Do(func() {
		token, ok, err := s.kv.Get(ctx, storage.KeyToken)
		if err != nil {
			s.log.Warn("restore session failed", zap.Error(err))
		}

		s.mu.Lock()
		if err == nil && ok && strings.TrimSpace(token) != "" {
			s.token = token
			s.usuario = IdentityFromToken(token)
		}
		s.loading = false
		s.mu.Unlock()
		close(s.loaded)

		s.log.Debug("session loaded", zap.Bool("authenticated", s.Snapshot().IsAuthenticated))
	})
}

// Wait blocks until Load has finished or ctx is done.
func (s *Store) Wait(ctx context.Context) error {
	select {
	case <-s.loaded:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SetProfile persists token, then updates the in-memory session.
// On a persistence failure the session is left as it was.
func (s *Store) SetProfile(ctx context.Context, token, usuario string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}
	if err := s.kv.Set(ctx, storage.KeyToken, token); err != nil {
		s.log.Error("persist session token failed", zap.Error(err))
		return err
	}
	if usuario == "" {
		usuario = IdentityFromToken(token)
	}

	s.mu.Lock()
	s.token = token
	s.usuario = usuario
	s.mu.Unlock()
	return nil
}

// ClearProfile removes the persisted token, then clears the in-memory session.
func (s *Store) ClearProfile(ctx context.Context) error {
	if err := s.kv.Remove(ctx, storage.KeyToken); err != nil {
		s.log.Error("remove session token failed", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.token = ""
	s.usuario = ""
	s.mu.Unlock()
	return nil
}

// Snapshot returns the current session.
func (s *Store) Snapshot() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Profile{
		Token:           s.token,
		Usuario:         s.usuario,
		IsAuthenticated: s.token != "",
		Loading:         s.loading,
	}
}

// IdentityFromToken returns the username (or subject) claim of a JWT without verifying it.
// Opaque tokens yield "".
func IdentityFromToken(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	if name, ok := claims["username"].(string); ok && name != "" {
		return name
	}
	if sub, err := claims.GetSubject(); err == nil {
		return sub
	}
	return ""
}
