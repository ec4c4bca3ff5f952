package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(userID int64, profile models.Profile, now time.Time) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"user_id", "email", "name", "avatar_url", "oauth_provider", "oauth_id", "is_active", "created_at", "last_login"}).
		AddRow(userID, profile.Email, profile.Name, profile.AvatarURL, profile.OAuthProvider, profile.OAuthID, true, now, now)
}

func TestUpsertUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	profile := models.Profile{
		Email:         "alice@example.com",
		Name:          "Alice",
		AvatarURL:     "https://example.com/alice.png",
		OAuthProvider: models.ProviderGoogle,
		OAuthID:       "google-123",
	}

	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(profile.Email, profile.Name, sqlmock.AnyArg(), profile.OAuthProvider, profile.OAuthID, sqlmock.AnyArg()).
		WillReturnRows(userRows(1, profile, now))

	user, err := repo.UpsertUser(ctx, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", user.UserID)
	}
	if user.Email != profile.Email {
		t.Errorf("expected email %s, got %s", profile.Email, user.Email)
	}
	if user.AvatarURL != profile.AvatarURL {
		t.Errorf("expected avatar %s, got %s", profile.AvatarURL, user.AvatarURL)
	}
}

func TestUpsertUser_ReturningLoginKeepsIdentity(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	profile := models.Profile{
		Email:         "alice@example.com",
		Name:          "Alice Renamed",
		OAuthProvider: models.ProviderGoogle,
		OAuthID:       "google-123",
	}

	created := time.Now().UTC().Add(-24 * time.Hour)

	// A repeat login returns the original user_id and created_at while the
	// mutable profile fields were refreshed by the upsert.
	rows := sqlmock.
		NewRows([]string{"user_id", "email", "name", "avatar_url", "oauth_provider", "oauth_id", "is_active", "created_at", "last_login"}).
		AddRow(42, profile.Email, profile.Name, nil, profile.OAuthProvider, profile.OAuthID, true, created, time.Now().UTC())

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(profile.Email, profile.Name, sqlmock.AnyArg(), profile.OAuthProvider, profile.OAuthID, sqlmock.AnyArg()).
		WillReturnRows(rows)

	user, err := repo.UpsertUser(ctx, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", user.UserID)
	}
	if !user.CreatedAt.Equal(created) {
		t.Errorf("expected original created_at to be preserved, got %v", user.CreatedAt)
	}
	if user.AvatarURL != "" {
		t.Errorf("expected empty avatar for NULL column, got %q", user.AvatarURL)
	}
}

func TestUpsertUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.UpsertUser(ctx, models.Profile{Email: "alice@example.com"})
	if err == nil || !strings.Contains(err.Error(), "db network error") {
		t.Fatalf("expected wrapped DB error, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	profile := models.Profile{
		Email:         "bob@example.com",
		Name:          "Bob",
		OAuthProvider: models.ProviderGitHub,
		OAuthID:       "777",
	}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(7)).
		WillReturnRows(userRows(7, profile, time.Now().UTC()))

	user, err := repo.FindUserByID(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", user.UserID)
	}
	if user.OAuthProvider != models.ProviderGitHub {
		t.Errorf("expected provider %s, got %s", models.ProviderGitHub, user.OAuthProvider)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(ctx, 404)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(7)).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.FindUserByID(ctx, 7)
	if err == nil || errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected unexpected DB error, got %v", err)
	}
}
