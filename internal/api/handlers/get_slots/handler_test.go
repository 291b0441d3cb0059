package get_slots

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-ParkingService/internal/service/ledger/models"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type mockSlotService struct {
	mock.Mock
}

func (m *mockSlotService) ListSlots(ctx context.Context) ([]*models.SlotResponse, error) {
	args := m.Called(ctx)
	if resp := args.Get(0); resp != nil {
		return resp.([]*models.SlotResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHandle(t *testing.T) {
	bookingID := "b-1"
	svc := &mockSlotService{}
	svc.On("ListSlots", mock.Anything).Return([]*models.SlotResponse{
		{Number: 1, Status: "empty"},
		{Number: 2, Status: "booked", CurrentBookingID: &bookingID},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/slots", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"slots":[
		{"number":1,"status":"empty","currentBookingId":null},
		{"number":2,"status":"booked","currentBookingId":"b-1"}]}`, rec.Body.String())
}

func TestHandle_Empty(t *testing.T) {
	svc := &mockSlotService{}
	svc.On("ListSlots", mock.Anything).Return([]*models.SlotResponse{}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/slots", nil))

	assert.JSONEq(t, `{"slots":[]}`, rec.Body.String())
}

func TestHandle_Error(t *testing.T) {
	svc := &mockSlotService{}
	svc.On("ListSlots", mock.Anything).Return(nil, errors.New("db down"))

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/slots", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
