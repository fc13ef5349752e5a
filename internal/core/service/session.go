package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/bengalibowl/ordering-client/internal/core/domain"
	"github.com/bengalibowl/ordering-client/internal/core/ports"
)

// Session owns the current identity. The identity is present if and only if
// the persisted credential decodes successfully; every operation restores
// that invariant before returning.
//
// Decoding deliberately skips signature and expiry verification: the backend
// is the only party that validates tokens, the client merely reads the
// claims it was handed. Any token that parses is trusted.
type Session struct {
	store ports.CredentialStore
	gw    ports.Gateway
	log   zerolog.Logger

	mu       sync.Mutex
	identity *domain.Identity
	token    string
	booted   bool
}

func NewSession(store ports.CredentialStore, gw ports.Gateway, log zerolog.Logger) *Session {
	return &Session{store: store, gw: gw, log: log}
}

// Bootstrap restores the session from the credential store at process
// start. A missing token leaves the identity absent; a token that fails to
// decode clears the store and returns ErrCorruptToken. Initializing ends
// exactly once, on the first call.
func (s *Session) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.booted = true }()

	token, err := s.store.Read(ctx)
	if err != nil {
		return nil
	}

	identity, err := decodeIdentity(token)
	if err != nil {
		s.log.Warn().Msg("persisted credential failed to decode, session cleared")
		s.logoutLocked(ctx)
		return err
	}

	s.token = token
	s.identity = identity
	return nil
}

// Login authenticates against the backend, persists the returned token and
// derives the identity from it. Empty fields fail before any network call.
func (s *Session) Login(ctx context.Context, username, password string) (*domain.Identity, error) {
	var missing []string
	if username == "" {
		missing = append(missing, "username is required")
	}
	if password == "" {
		missing = append(missing, "password is required")
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	token, err := s.gw.Login(ctx, ports.LoginInput{Username: username, Password: password})
	if err != nil {
		var reqErr *domain.RequestError
		if errors.As(err, &reqErr) && reqErr.Status >= 400 && reqErr.Status < 500 {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, reqErr.Message)
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, token); err != nil {
		return nil, err
	}

	identity, err := decodeIdentity(token)
	if err != nil {
		// the backend handed us something undecodable; keep the invariant
		s.logoutLocked(ctx)
		return nil, err
	}

	s.token = token
	s.identity = identity
	s.log.Info().Str("username", identity.Username()).Str("role", identity.Role()).Msg("logged in")
	return identity, nil
}

// Signup registers a new staff member over the public transport. It does
// not change session state.
func (s *Session) Signup(ctx context.Context, input ports.SignupInput) (*domain.Staff, error) {
	if err := validateForm(input); err != nil {
		return nil, err
	}
	return s.gw.Signup(ctx, input)
}

// Logout clears the store and the identity unconditionally. Idempotent,
// never fails; a store error is logged and swallowed.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logoutLocked(ctx)
}

func (s *Session) logoutLocked(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Error().Err(err).Msg("failed to clear credential store")
	}
	s.token = ""
	s.identity = nil
}

// Identity returns the current identity, or nil when logged out.
func (s *Session) Identity() *domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Token returns the raw credential, or the empty string when logged out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Initializing reports whether Bootstrap has not finished yet. Screens show
// a spinner instead of redirecting while this is true.
func (s *Session) Initializing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.booted
}

// IsAdmin reports whether the identity is present and carries the
// privileged role.
func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil && s.identity.Role() == domain.RoleManager
}

// RequireAdmin gates admin screens: ErrUnauthorized unless a manager is
// logged in.
func (s *Session) RequireAdmin() error {
	if !s.IsAdmin() {
		return domain.ErrUnauthorized
	}
	return nil
}

// decodeIdentity splits the token into its three dot-separated segments,
// base64url-decodes the middle one and parses it as a claim set. The header
// and signature segments are never inspected.
func decodeIdentity(token string) (*domain.Identity, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, domain.ErrCorruptToken
	}

	payload, err := jwt.NewParser().DecodeSegment(parts[1])
	if err != nil {
		return nil, domain.ErrCorruptToken
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, domain.ErrCorruptToken
	}

	return &domain.Identity{Claims: claims}, nil
}
