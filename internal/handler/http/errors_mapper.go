package http

import (
	"errors"
	"net/http"

	"github.com/aidocs/doc-browser/internal/oauth"
	"github.com/aidocs/doc-browser/internal/service"
	"github.com/aidocs/doc-browser/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyCommentContent: http.StatusBadRequest,
	service.ErrInvalidState:        http.StatusForbidden,

	oauth.ErrProviderNotConfigured: http.StatusNotFound,
	oauth.ErrProviderError:         http.StatusBadGateway,
	oauth.ErrIncompleteProfile:     http.StatusBadGateway,

	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrNoSessionWasFound: http.StatusUnauthorized,
	store.ErrDocumentNotFound:  http.StatusNotFound,
	store.ErrCommentNotFound:   http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
