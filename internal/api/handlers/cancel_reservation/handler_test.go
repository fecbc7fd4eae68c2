package cancel_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
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

func (m *mockService) Cancel(ctx context.Context, id int64, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReservationResponse), args.Error(1)
}

func serve(svc *mockService, target, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/reservations/{reservationId}/cancel", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, target, strings.NewReader(body))
	req.Header.Set(middleware.UserIDHeader, "42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_WithReason(t *testing.T) {
	svc := new(mockService)
	svc.On("Cancel", mock.Anything, int64(5), mock.MatchedBy(func(req *models.CancelReservationRequest) bool {
		return req.UserID == 42 && req.CancellationReason != nil && *req.CancellationReason == "rain"
	})).Return(&models.ReservationResponse{ID: 5, Status: "cancelled_by_user"}, nil)

	rec := serve(svc, "/api/v1/reservations/5/cancel", `{"cancellationReason":"rain"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled_by_user"`)
	svc.AssertExpectations(t)
}

func TestHandle_EmptyBody(t *testing.T) {
	svc := new(mockService)
	svc.On("Cancel", mock.Anything, int64(5), &models.CancelReservationRequest{UserID: 42}).
		Return(&models.ReservationResponse{ID: 5, Status: "cancelled_by_user"}, nil)

	rec := serve(svc, "/api/v1/reservations/5/cancel", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		body     string
		svcErr   error
		expected int
	}{
		{"bad id", "/api/v1/reservations/x/cancel", "", nil, http.StatusBadRequest},
		{"broken body", "/api/v1/reservations/5/cancel", `{"cancellationReason":`, nil, http.StatusBadRequest},
		{"not found", "/api/v1/reservations/5/cancel", "", reservations.ErrReservationNotFound, http.StatusNotFound},
		{"not owner", "/api/v1/reservations/5/cancel", "", reservations.ErrAccessDenied, http.StatusForbidden},
		{"already cancelled", "/api/v1/reservations/5/cancel", "", reservations.ErrCannotCancel, http.StatusConflict},
		{"reason too long", "/api/v1/reservations/5/cancel", "", reservations.ErrInvalidInput, http.StatusBadRequest},
		{"internal", "/api/v1/reservations/5/cancel", "", reservations.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.svcErr != nil {
				svc.On("Cancel", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.svcErr)
			}

			rec := serve(svc, tt.target, tt.body)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
