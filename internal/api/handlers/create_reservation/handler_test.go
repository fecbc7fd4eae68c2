package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StringingService/internal/api/handlers"
	"github.com/m04kA/SMC-StringingService/internal/api/middleware"
	"github.com/m04kA/SMC-StringingService/internal/scheduling"
	createReservation "github.com/m04kA/SMC-StringingService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-StringingService/pkg/logger"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createReservation.Response), args.Error(1)
}

func serve(uc *mockUseCase, userID, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/reservations", NewHandler(uc, logger.Nop()).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := new(mockUseCase)
	date := types.NewDate(2026, 10, 14)
	created := time.Date(2026, 10, 12, 8, 0, 0, 0, time.UTC)

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createReservation.Request) bool {
		return req.UserID == 42 &&
			req.Date.Equal(date) &&
			req.PreferredTime == "10:00" &&
			req.SlotSpanCount == 2 &&
			req.RacketModel != nil && *req.RacketModel == "Pure Aero"
	})).Return(&createReservation.Response{
		ID:            7,
		UserID:        42,
		Date:          date,
		PreferredTime: "10:00",
		SlotSpanCount: 2,
		Slots:         []types.TimeString{"10:00", "10:30"},
		Status:        "confirmed",
		CreatedAt:     created,
		UpdatedAt:     created,
	}, nil)

	rec := serve(uc, "42", `{"date":"2026-10-14","preferredTime":"10:00","slotSpanCount":2,"racketModel":"Pure Aero"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.ID)
	assert.Equal(t, []string{"10:00", "10:30"}, body.Slots)
	assert.Equal(t, "confirmed", body.Status)
	assert.Equal(t, "2026-10-12T08:00:00Z", body.CreatedAt)
}

func TestHandle_OutOfWindowMessage(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, &scheduling.WindowError{
		WindowDays: 3,
		Message:    "Запись доступна только на ближайшие 3 дн.",
	})

	rec := serve(uc, "42", `{"date":"2026-11-30","preferredTime":"10:00"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Запись доступна только на ближайшие 3 дн.", body.Message)
}

func TestHandle_Errors(t *testing.T) {
	valid := `{"date":"2026-10-14","preferredTime":"10:00"}`

	tests := []struct {
		name     string
		userID   string
		body     string
		ucErr    error
		expected int
	}{
		{"no user", "", valid, nil, http.StatusUnauthorized},
		{"broken body", "42", `{"date":`, nil, http.StatusBadRequest},
		{"unknown field", "42", `{"date":"2026-10-14","preferredTime":"10:00","price":10}`, nil, http.StatusBadRequest},
		{"bad date", "42", `{"date":"14/10/2026","preferredTime":"10:00"}`, nil, http.StatusBadRequest},
		{"slot full", "42", valid, createReservation.ErrSlotNotAvailable, http.StatusConflict},
		{"closed", "42", valid, createReservation.ErrShopClosed, http.StatusBadRequest},
		{"off grid", "42", valid, createReservation.ErrInvalidTimeSlot, http.StatusBadRequest},
		{"invalid input", "42", valid, createReservation.ErrInvalidInput, http.StatusBadRequest},
		{"internal", "42", valid, createReservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := serve(uc, tt.userID, tt.body)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
