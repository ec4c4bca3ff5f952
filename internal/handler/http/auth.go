package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/internal/oauth"
	"github.com/aidocs/doc-browser/internal/service"
	"github.com/aidocs/doc-browser/internal/utils"
	"github.com/aidocs/doc-browser/models"
)

func (h *Handler) providers(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ProvidersResponse{Providers: h.services.AuthService.Providers()}, http.StatusOK)
}

func (h *Handler) loginURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	provider := chi.URLParam(r, "provider")

	authURL, err := h.services.AuthService.LoginURL(ctx, provider)
	if err != nil {
		switch {
		case errors.Is(err, oauth.ErrProviderNotConfigured):
			log.Err(err).Str("provider", provider).Msg("unknown or unconfigured provider")
			http.Error(w, "unknown or unconfigured provider", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.loginURL").Msg("error starting login attempt")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.LoginURLResponse{Provider: provider, AuthURL: authURL}, http.StatusOK)
}

func (h *Handler) callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	state := query.Get("state")
	code := query.Get("code")
	if state == "" || code == "" {
		log.Error().Str("func", "*Handler.callback").Msg("callback missing state or code")
		http.Error(w, "missing state or code", http.StatusBadRequest)
		return
	}

	user, session, err := h.services.AuthService.HandleCallback(ctx, state, code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidState):
			log.Err(err).Msg("callback state matches no pending login attempt")
			http.Error(w, "invalid or expired login attempt", http.StatusForbidden)
			return
		case errors.Is(err, oauth.ErrProviderError) || errors.Is(err, oauth.ErrIncompleteProfile):
			log.Err(err).Msg("provider rejected the code exchange")
			http.Error(w, "login failed at the identity provider", http.StatusBadGateway)
			return
		default:
			log.Err(err).Str("func", "*Handler.callback").Msg("unexpected error completing login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", user.UserID).Str("provider", user.OAuthProvider).Msg("user successfully logged in")

	utils.WriteJSON(w, models.CallbackResponse{Token: session.Token, User: user}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, found := utils.GetSessionTokenFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.me").Msg("no session token in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, ok, err := h.services.AuthService.CurrentUser(ctx, token)
	if err != nil {
		log.Err(err).Str("func", "*Handler.me").Msg("error resolving current user")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, found := utils.GetSessionTokenFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.logout").Msg("no session token in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, token); err != nil {
		log.Err(err).Str("func", "*Handler.logout").Msg("error invalidating session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
