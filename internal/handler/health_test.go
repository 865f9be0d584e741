package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayplan/backend/internal/handler"
	"github.com/wayplan/backend/internal/handler/gen"
)

func TestGetHealth_200(t *testing.T) {
	srv := handler.NewServer(nil, nil, nil)
	h := gen.Handler(gen.NewStrictHandler(srv, nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got gen.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ok", got.Status)
}
