package get_day_schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StringingService/internal/domain"
	getDaySchedule "github.com/m04kA/SMC-StringingService/internal/usecase/get_day_schedule"
	"github.com/m04kA/SMC-StringingService/pkg/logger"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getDaySchedule.Request) (*getDaySchedule.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getDaySchedule.Response), args.Error(1)
}

func serve(uc *mockUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/schedule/days/{date}", NewHandler(uc, logger.Nop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := new(mockUseCase)
	date := types.NewDate(2026, 10, 17)
	start := types.TimeString("10:00")
	end := types.TimeString("11:00")
	exception := &domain.ExceptionRule{Date: date, Start: &start, End: &end, Reason: "club event"}

	uc.On("Execute", mock.Anything, &getDaySchedule.Request{Date: date}).Return(&getDaySchedule.Response{
		Schedule: domain.DaySchedule{
			Date:     date,
			IsOpen:   true,
			Capacity: 1,
			Start:    start,
			End:      end,
			Interval: 30,
			Source:   domain.SourceExceptionOpen,
		},
		Slots:     []types.TimeString{"10:00", "10:30", "11:00"},
		Exception: exception,
	}, nil)

	rec := serve(uc, "/api/v1/schedule/days/2026-10-17")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"date": "2026-10-17",
		"weekday": 6,
		"isOpen": true,
		"source": "exception_open",
		"capacity": 1,
		"start": "10:00",
		"end": "11:00",
		"interval": 30,
		"slots": ["10:00", "10:30", "11:00"],
		"exception": {"date": "2026-10-17", "closed": false, "start": "10:00", "end": "11:00", "reason": "club event"}
	}`, rec.Body.String())
}

func TestHandle_InvalidDate(t *testing.T) {
	uc := new(mockUseCase)

	rec := serve(uc, "/api/v1/schedule/days/2026-13-01")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_InternalError(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getDaySchedule.ErrInternal)

	rec := serve(uc, "/api/v1/schedule/days/2026-10-14")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
