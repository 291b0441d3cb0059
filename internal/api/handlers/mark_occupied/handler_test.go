package mark_occupied

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-ParkingService/internal/service/ledger"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type mockOccupancyService struct {
	mock.Mock
}

func (m *mockOccupancyService) MarkOccupied(ctx context.Context, slotNumber int) error {
	return m.Called(ctx, slotNumber).Error(0)
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		callsSvc   bool
		wantStatus int
		wantBody   string
	}{
		{"ok", `{"slotNumber":1}`, nil, true, http.StatusOK, `{"message":"Marked occupied"}`},
		{"missing slot", `{}`, nil, false, http.StatusBadRequest, `{"error":"slotNumber required"}`},
		{"empty body", ``, nil, false, http.StatusBadRequest, `{"error":"slotNumber required"}`},
		{"invalid slot", `{"slotNumber":99}`, ledger.ErrInvalidSlot, true, http.StatusNotFound, `{"error":"Invalid slot"}`},
		{"not booked", `{"slotNumber":1}`, ledger.ErrInvalidTransition, true, http.StatusConflict, `{"error":"Slot is not booked"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockOccupancyService{}
			if tt.callsSvc {
				svc.On("MarkOccupied", mock.Anything, mock.AnythingOfType("int")).Return(tt.serviceErr)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/admin/mark-occupied", strings.NewReader(tt.body))
			NewHandler(svc, logger.NewNop()).Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
