package health_check

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	h := NewHandler(pingerFunc(func(context.Context) error { return nil }), logger.NewNop())

	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandle_DatabaseDown(t *testing.T) {
	rec := httptest.NewRecorder()
	h := NewHandler(pingerFunc(func(context.Context) error { return errors.New("refused") }), logger.NewNop())

	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
