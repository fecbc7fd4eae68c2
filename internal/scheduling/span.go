package scheduling

import (
	"github.com/m04kA/SMC-StringingService/internal/domain"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

// ComputeSpan returns the contiguous run of slotCount slots starting at
// preferred. preferred must match a label verbatim. A run that would
// extend past the last slot is not truncated; it does not exist.
func ComputeSpan(allTimes []types.TimeString, preferred types.TimeString, slotCount int) (domain.SlotSpan, bool) {
	if slotCount < 1 {
		slotCount = 1
	}

	startIdx := -1
	for i, t := range allTimes {
		if t == preferred {
			startIdx = i
			break
		}
	}
	if startIdx < 0 {
		return domain.SlotSpan{}, false
	}

	endIdx := startIdx + slotCount - 1
	if endIdx >= len(allTimes) {
		return domain.SlotSpan{}, false
	}

	slots := make([]types.TimeString, slotCount)
	copy(slots, allTimes[startIdx:endIdx+1])

	return domain.SlotSpan{
		Slots:      slots,
		StartIndex: startIdx,
		EndIndex:   endIdx,
	}, true
}
