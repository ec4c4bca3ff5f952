package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/internal/utils"
	"github.com/aidocs/doc-browser/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
// It owns token generation as well as persistence: a session token never
// exists outside a committed row.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession mints a fresh token (32 bytes from the system CSPRNG,
// base64url encoded — 256 bits of entropy) and persists it with
// expires_at = now + ttl.
//
// The token column is UNIQUE; on the astronomically unlikely collision
// the INSERT fails and is retried once with a new token.
func (r *sessionRepository) CreateSession(ctx context.Context, userID int64, ttl time.Duration) (models.Session, error) {
	log := logger.FromContext(ctx)

	for attempt := 0; attempt < 2; attempt++ {
		token, err := utils.GenerateToken(utils.SessionTokenBytes)
		if err != nil {
			log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error generating session token")
			return models.Session{}, fmt.Errorf("error generating session token: %w", err)
		}

		now := time.Now().UTC()
		row := r.db.QueryRowContext(ctx, createSession, token, userID, now.Add(ttl), now)
		if err := row.Err(); err != nil {
			log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: row is nil")
			return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
		}

		var session models.Session
		err = row.Scan(&session.SessionID, &session.Token, &session.UserID,
			&session.ExpiresAt, &session.CreatedAt, &session.IsActive)
		if err != nil {
			if isUniqueViolation(err) {
				continue
			}
			log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: scanning error")
			return models.Session{}, err
		}

		return session, nil
	}

	return models.Session{}, errors.New("session token collision")
}

// ResolveSession returns the user owning an active, unexpired session
// with the given token.
//
// The validity predicate lives entirely in the single SELECT: unknown,
// expired, and invalidated tokens all fall through to the same
// [ErrNoSessionWasFound], so the caller learns nothing about whether the
// token was ever issued.
func (r *sessionRepository) ResolveSession(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, resolveSession, token, time.Now().UTC())
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.ResolveSession").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoSessionWasFound
		}
		log.Err(err).Str("func", "*sessionRepository.ResolveSession").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// InvalidateSession marks the session with the given token inactive.
// Invalidating an unknown or already-inactive token is a no-op, not an
// error, so logout is idempotent.
func (r *sessionRepository) InvalidateSession(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, invalidateSession, token); err != nil {
		log.Err(err).Str("func", "*sessionRepository.InvalidateSession").Msg("error invalidating session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
