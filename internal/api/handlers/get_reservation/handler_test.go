package get_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StringingService/internal/api/middleware"
	"github.com/m04kA/SMC-StringingService/internal/service/reservations"
	"github.com/m04kA/SMC-StringingService/internal/service/reservations/models"
	"github.com/m04kA/SMC-StringingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReservationResponse), args.Error(1)
}

func serve(svc *mockService, target, userID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/reservations/{reservationId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(middleware.UserIDHeader, userID)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := new(mockService)
	svc.On("GetByID", mock.Anything, int64(5), int64(42)).Return(&models.ReservationResponse{
		ID:            5,
		UserID:        42,
		Date:          "2026-10-14",
		PreferredTime: "10:00",
		SlotSpanCount: 1,
		Status:        "confirmed",
	}, nil)

	rec := serve(svc, "/api/v1/reservations/5", "42")
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.ID)
	assert.Equal(t, "confirmed", body.Status)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		svcErr   error
		expected int
	}{
		{"bad id", "/api/v1/reservations/abc", nil, http.StatusBadRequest},
		{"zero id", "/api/v1/reservations/0", nil, http.StatusBadRequest},
		{"not found", "/api/v1/reservations/5", reservations.ErrReservationNotFound, http.StatusNotFound},
		{"foreign reservation", "/api/v1/reservations/5", reservations.ErrAccessDenied, http.StatusForbidden},
		{"internal", "/api/v1/reservations/5", reservations.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.svcErr != nil {
				svc.On("GetByID", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.svcErr)
			}

			rec := serve(svc, tt.target, "42")
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
