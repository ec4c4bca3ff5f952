// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID_GeneratesWhenAbsent(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	rec := performRequest(t, h, http.MethodGet, "/api/auth/providers", "", "")

	traceID := rec.Header().Get(traceIDHeader)
	require.NotEmpty(t, traceID)

	_, err := uuid.Parse(traceID)
	assert.NoError(t, err, "a generated trace id must be a valid uuid")
}

func TestWithTraceID_EchoesIncoming(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/providers", nil)
	req.Header.Set(traceIDHeader, "incoming-trace-id")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, "incoming-trace-id", rec.Header().Get(traceIDHeader))
}
