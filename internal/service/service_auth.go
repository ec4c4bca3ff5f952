package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/internal/store"
	"github.com/aidocs/doc-browser/internal/utils"
	"github.com/aidocs/doc-browser/models"
)

// attemptTTL bounds how long a user has between being redirected to a
// provider and coming back with a code. Attempts older than this are
// swept and their state values rejected.
const attemptTTL = 10 * time.Minute

// loginAttempt is one pending redirect, keyed by its CSRF state value.
type loginAttempt struct {
	provider  string
	expiresAt time.Time
}

// authService is the concrete implementation of AuthService.
// It drives the OAuth redirect → callback → session-creation sequence
// using the provider registry for the external leg and the user/session
// repositories for persistence.
type authService struct {
	// registry resolves configured identity providers by name.
	registry ProviderRegistry

	// userRepository upserts accounts on successful callbacks.
	userRepository store.UserRepository

	// sessionRepository mints and resolves opaque session tokens.
	sessionRepository store.SessionRepository

	// sessionTTL is the lifetime of a newly minted session.
	sessionTTL time.Duration

	// attempts holds pending login attempts keyed by state value.
	// Guarded by mu; swept lazily whenever a new attempt is recorded.
	mu       sync.Mutex
	attempts map[string]loginAttempt

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given provider
// registry and repositories.
func NewAuthService(registry ProviderRegistry, users store.UserRepository, sessions store.SessionRepository, sessionTTL time.Duration, logger *logger.Logger) AuthService {
	return &authService{
		registry:          registry,
		userRepository:    users,
		sessionRepository: sessions,
		sessionTTL:        sessionTTL,
		attempts:          make(map[string]loginAttempt),
		logger:            logger,
	}
}

// Providers returns the names of the configured providers.
func (a *authService) Providers() []string {
	return a.registry.Names()
}

// LoginURL transitions anonymous → redirecting for one login attempt.
//
// It generates a random CSRF state value, records the pending attempt
// against it, and returns the provider's authorization URL with the
// state embedded. The state value is the only link between this call
// and the later callback.
func (a *authService) LoginURL(ctx context.Context, provider string) (string, error) {
	log := logger.FromContext(ctx)

	p, err := a.registry.Get(provider)
	if err != nil {
		log.Warn().Str("provider", provider).Msg("login attempted with unconfigured provider")
		return "", err
	}

	state, err := utils.GenerateToken(utils.SessionTokenBytes)
	if err != nil {
		log.Err(err).Msg("error generating oauth state")
		return "", fmt.Errorf("error generating oauth state: %w", err)
	}

	a.recordAttempt(state, provider)

	return p.AuthorizeURL(state), nil
}

// HandleCallback transitions callback_pending → authenticated.
//
// The presented state must consume a pending attempt recorded by
// LoginURL; an unknown, expired, or reused state aborts with
// [ErrInvalidState] before any provider call is made. On a successful
// exchange the user is upserted and a session minted; on failure the
// caller returns to anonymous with nothing persisted.
func (a *authService) HandleCallback(ctx context.Context, state, code string) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	provider, ok := a.consumeAttempt(state)
	if !ok {
		log.Warn().Msg("oauth callback with unknown or expired state")
		return models.User{}, models.Session{}, ErrInvalidState
	}

	p, err := a.registry.Get(provider)
	if err != nil {
		// Attempt recorded for a provider that is gone; configuration
		// changed mid-flight.
		log.Err(err).Str("provider", provider).Msg("pending attempt for unconfigured provider")
		return models.User{}, models.Session{}, err
	}

	profile, err := p.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Str("provider", provider).Msg("oauth code exchange failed")
		return models.User{}, models.Session{}, fmt.Errorf("oauth code exchange failed: %w", err)
	}

	user, err := a.userRepository.UpsertUser(ctx, profile)
	if err != nil {
		log.Err(err).Str("provider", provider).Msg("user upsert failed")
		return models.User{}, models.Session{}, fmt.Errorf("user upsert failed: %w", err)
	}

	session, err := a.sessionRepository.CreateSession(ctx, user.UserID, a.sessionTTL)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("session creation failed")
		return models.User{}, models.Session{}, fmt.Errorf("session creation failed: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Str("provider", provider).Msg("user logged in")

	return user, session, nil
}

// CurrentUser resolves a token to its user. A token with no valid
// session yields (zero, false, nil): the caller is simply anonymous.
func (a *authService) CurrentUser(ctx context.Context, token string) (models.User, bool, error) {
	if token == "" {
		return models.User{}, false, nil
	}

	user, err := a.sessionRepository.ResolveSession(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNoSessionWasFound) {
			return models.User{}, false, nil
		}
		return models.User{}, false, fmt.Errorf("session resolution failed: %w", err)
	}

	return user, true, nil
}

// Logout transitions authenticated → anonymous by invalidating the
// presented session. Unknown tokens are a no-op.
func (a *authService) Logout(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if err := a.sessionRepository.InvalidateSession(ctx, token); err != nil {
		log.Err(err).Msg("session invalidation failed")
		return fmt.Errorf("session invalidation failed: %w", err)
	}

	return nil
}

// recordAttempt stores a pending attempt and sweeps expired ones while
// the lock is held.
func (a *authService) recordAttempt(state, provider string) {
	now := time.Now()

	a.mu.Lock()
	defer a.mu.Unlock()

	for s, attempt := range a.attempts {
		if now.After(attempt.expiresAt) {
			delete(a.attempts, s)
		}
	}

	a.attempts[state] = loginAttempt{
		provider:  provider,
		expiresAt: now.Add(attemptTTL),
	}
}

// consumeAttempt removes and returns the attempt for a state value.
// Each state is single-use: a second callback with the same state fails.
func (a *authService) consumeAttempt(state string) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	attempt, ok := a.attempts[state]
	if !ok {
		return "", false
	}

	delete(a.attempts, state)

	if time.Now().After(attempt.expiresAt) {
		return "", false
	}

	return attempt.provider, true
}
