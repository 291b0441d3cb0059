package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		SlotNumber int `json:"slotNumber"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"slotNumber": 3}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, 3, dst.SlotNumber)

	dst.SlotNumber = 0
	r = httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Zero(t, dst.SlotNumber)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"slotNumber":`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondConflict(rec, "Slot not available")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Slot not available", body.Error)
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()

	MethodNotAllowed().ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/book", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"method not allowed"}`, rec.Body.String())
}
