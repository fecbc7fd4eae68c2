package get_slot_summary

import (
	"context"

	getSlotSummary "github.com/m04kA/SMC-StringingService/internal/usecase/get_slot_summary"
)

type GetSlotSummaryUseCase interface {
	Execute(ctx context.Context, req *getSlotSummary.Request) (*getSlotSummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
