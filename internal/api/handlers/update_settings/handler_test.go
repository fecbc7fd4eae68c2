package update_settings

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StringingService/internal/api/middleware"
	"github.com/m04kA/SMC-StringingService/internal/scheduling"
	"github.com/m04kA/SMC-StringingService/internal/service/settings"
	"github.com/m04kA/SMC-StringingService/internal/service/settings/models"
	"github.com/m04kA/SMC-StringingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SettingsResponse), args.Error(1)
}

func serve(svc *mockService, userID, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/settings/scheduling", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/settings/scheduling", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := new(mockService)
	svc.On("Update", mock.Anything, mock.MatchedBy(func(req *models.UpdateSettingsRequest) bool {
		return req.UserID == 1 && req.Document["capacity"] == 2.0
	})).Return(&models.SettingsResponse{Settings: scheduling.DefaultSettings(), Stored: true}, nil)

	rec := serve(svc, "1", `{"capacity": 2}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"stored":true`)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		body     string
		svcErr   error
		expected int
	}{
		{"no user", "", `{}`, nil, http.StatusUnauthorized},
		{"broken json", "1", `{"capacity":`, nil, http.StatusBadRequest},
		{"not an object", "1", `[1, 2]`, nil, http.StatusBadRequest},
		{"null document", "1", `null`, nil, http.StatusBadRequest},
		{"not admin", "2", `{}`, settings.ErrAccessDenied, http.StatusForbidden},
		{"invalid", "1", `{"capacity": 50}`, fmt.Errorf("%w: capacity must be between 1 and 10", settings.ErrInvalidSettings), http.StatusBadRequest},
		{"internal", "1", `{}`, settings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.svcErr != nil {
				svc.On("Update", mock.Anything, mock.Anything).Return(nil, tt.svcErr)
			}

			rec := serve(svc, tt.userID, tt.body)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
