package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONReportsFieldDetails(t *testing.T) {
	var payload signupRequest
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(`{"nome":"","email":"nao-e-email","senha":"x","role":"ngo"}`))
	rec := httptest.NewRecorder()

	ok := decodeJSON(rec, req, &payload)
	require.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION", body.Error.Code)
	assert.Equal(t, "obrigatório", body.Error.Details["nome"])
	assert.Equal(t, "email inválido", body.Error.Details["email"])
}

func TestDecodeJSONRejectsMalformedBody(t *testing.T) {
	var payload loginRequest
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":`))
	rec := httptest.NewRecorder()

	assert.False(t, decodeJSON(rec, req, &payload))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
