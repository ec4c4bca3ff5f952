package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/internal/utils"
)

// auth is an HTTP middleware that enforces session-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves it to a user via [service.AuthService.CurrentUser], and — on
// success — stores the authenticated user's ID and the raw token in the
// request context under [utils.UserIDCtxKey] and [utils.SessionTokenCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token resolves to no session: unknown, expired, or invalidated
//     tokens are all the same anonymous outcome.
//
// Storage unavailability is the one case answered with 500 instead of 401:
// the caller's token may well be valid, it just could not be checked.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, ok, err := h.services.AuthService.CurrentUser(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error resolving session token")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if !ok {
			log.Warn().Msg("session token resolved to no active session")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-resolving the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.UserID)
		ctx = context.WithValue(ctx, utils.SessionTokenCtxKey, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// For example:
//
//	Authorization: Bearer 4Wl2hC8...
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
