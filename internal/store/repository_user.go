package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertUser persists the profile as a user record and returns the fully
// populated [models.User] with server-assigned fields.
//
// The statement is a single INSERT ... ON CONFLICT (email, oauth_provider)
// DO UPDATE ... RETURNING, so get-or-create is atomic: a first login
// creates the row, every later login updates name, avatar_url and
// last_login while UserID and CreatedAt stay stable.
func (r *userRepository) UpsertUser(ctx context.Context, profile models.Profile) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, upsertUser,
		profile.Email, profile.Name, toNullString(profile.AvatarURL),
		profile.OAuthProvider, profile.OAuthID, now)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertUser").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByID retrieves a user record by its internal identifier.
//
// Error handling:
//   - empty result set → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, userID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// scanUser reads the canonical users column set from a single row.
func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	var avatar sql.NullString

	err := row.Scan(&user.UserID, &user.Email, &user.Name, &avatar,
		&user.OAuthProvider, &user.OAuthID, &user.IsActive,
		&user.CreatedAt, &user.LastLogin)
	if err != nil {
		return models.User{}, err
	}

	user.AvatarURL = avatar.String
	return user, nil
}

// toNullString maps an empty string to SQL NULL.
func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
