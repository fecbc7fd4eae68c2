package get_settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StringingService/internal/scheduling"
	"github.com/m04kA/SMC-StringingService/internal/service/settings/models"
	"github.com/m04kA/SMC-StringingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetResolved(ctx context.Context) (*models.SettingsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SettingsResponse), args.Error(1)
}

func serve(svc *mockService) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/settings/scheduling", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/settings/scheduling", nil))
	return rec
}

func TestHandle_Defaults(t *testing.T) {
	svc := new(mockService)
	svc.On("GetResolved", mock.Anything).Return(&models.SettingsResponse{Settings: scheduling.DefaultSettings()}, nil)

	rec := serve(svc)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Settings struct {
			Capacity     int    `json:"capacity"`
			BusinessDays []int  `json:"businessDays"`
			Start        string `json:"start"`
			End          string `json:"end"`
		} `json:"settings"`
		Stored bool `json:"stored"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Stored)
	assert.Equal(t, 1, body.Settings.Capacity)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, body.Settings.BusinessDays)
	assert.Equal(t, "10:00", body.Settings.Start)
	assert.Equal(t, "19:00", body.Settings.End)
}

func TestHandle_Error(t *testing.T) {
	svc := new(mockService)
	svc.On("GetResolved", mock.Anything).Return(nil, errors.New("db down"))

	rec := serve(svc)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
