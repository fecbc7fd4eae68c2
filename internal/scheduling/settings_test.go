package scheduling

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StringingService/internal/domain"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

func decodeRaw(t *testing.T, doc string) domain.RawSettings {
	t.Helper()
	var raw domain.RawSettings
	require.NoError(t, json.Unmarshal([]byte(doc), &raw))
	return raw
}

func TestResolveSettings_NilGivesDefaults(t *testing.T) {
	s := ResolveSettings(nil)

	assert.Equal(t, 1, s.Capacity)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.BusinessDays)
	assert.Equal(t, types.TimeString("10:00"), s.Start)
	assert.Equal(t, types.TimeString("19:00"), s.End)
	assert.Equal(t, 30, s.Interval)
	assert.Equal(t, 30, s.BookingWindowDays)
	assert.Empty(t, s.Holidays)
	assert.Empty(t, s.Exceptions)
}

func TestResolveSettings_DefaultsAreNotShared(t *testing.T) {
	s := ResolveSettings(nil)
	s.BusinessDays[0] = 6

	assert.Equal(t, []int{1, 2, 3, 4, 5}, domain.DefaultBusinessDays)
}

func TestResolveSettings_NumericCoercion(t *testing.T) {
	tests := []struct {
		name     string
		raw      domain.RawSettings
		capacity int
		interval int
		window   int
	}{
		{
			name:     "json numbers",
			raw:      domain.RawSettings{"capacity": 3.0, "interval": 15.0, "bookingWindowDays": 14.0},
			capacity: 3, interval: 15, window: 14,
		},
		{
			name:     "numeric strings",
			raw:      domain.RawSettings{"capacity": "2", "interval": " 45 ", "bookingWindowDays": "7"},
			capacity: 2, interval: 45, window: 7,
		},
		{
			name:     "json.Number and ints",
			raw:      domain.RawSettings{"capacity": json.Number("4"), "interval": 60, "bookingWindowDays": int64(10)},
			capacity: 4, interval: 60, window: 10,
		},
		{
			name:     "non-finite falls back",
			raw:      domain.RawSettings{"capacity": math.NaN(), "interval": math.Inf(1), "bookingWindowDays": math.Inf(-1)},
			capacity: 1, interval: 30, window: 30,
		},
		{
			name:     "garbage falls back",
			raw:      domain.RawSettings{"capacity": "many", "interval": true, "bookingWindowDays": []interface{}{}},
			capacity: 1, interval: 30, window: 30,
		},
		{
			name:     "clamped to bounds",
			raw:      domain.RawSettings{"capacity": 50.0, "interval": 1.0, "bookingWindowDays": -5.0},
			capacity: 10, interval: 5, window: 0,
		},
		{
			name:     "upper bounds",
			raw:      domain.RawSettings{"capacity": 0.0, "interval": 1000.0, "bookingWindowDays": 9999.0},
			capacity: 1, interval: 240, window: 365,
		},
		{
			name:     "fractions are floored",
			raw:      domain.RawSettings{"capacity": 2.9, "interval": 30.5, "bookingWindowDays": 6.99},
			capacity: 2, interval: 30, window: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ResolveSettings(tt.raw)
			assert.Equal(t, tt.capacity, s.Capacity)
			assert.Equal(t, tt.interval, s.Interval)
			assert.Equal(t, tt.window, s.BookingWindowDays)
		})
	}
}

func TestResolveSettings_Times(t *testing.T) {
	s := ResolveSettings(domain.RawSettings{"start": "9:00", "end": "18:30"})
	assert.Equal(t, types.TimeString("09:00"), s.Start)
	assert.Equal(t, types.TimeString("18:30"), s.End)

	s = ResolveSettings(domain.RawSettings{"start": "25:00", "end": 1800})
	assert.Equal(t, domain.DefaultStartTime, s.Start)
	assert.Equal(t, domain.DefaultEndTime, s.End)
}

func TestResolveSettings_BusinessDays(t *testing.T) {
	raw := decodeRaw(t, `{"businessDays": [6, 2, 2, "3", 7, -1, 1.5, "x", 0]}`)
	s := ResolveSettings(raw)
	assert.Equal(t, []int{0, 2, 3, 6}, s.BusinessDays)

	s = ResolveSettings(decodeRaw(t, `{"businessDays": []}`))
	assert.Empty(t, s.BusinessDays)

	s = ResolveSettings(decodeRaw(t, `{"businessDays": "weekdays"}`))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.BusinessDays)
}

func TestResolveSettings_Holidays(t *testing.T) {
	raw := decodeRaw(t, `{"holidays": ["2026-12-25", "not-a-date", "2026-01-01", "2026-12-25", 20261225]}`)
	s := ResolveSettings(raw)

	require.Len(t, s.Holidays, 2)
	assert.Equal(t, "2026-01-01", s.Holidays[0].String())
	assert.Equal(t, "2026-12-25", s.Holidays[1].String())
}

func TestResolveSettings_Exceptions(t *testing.T) {
	raw := decodeRaw(t, `{"exceptions": [
		{"date": "2026-10-17", "start": "12:00", "end": "15:00", "interval": 60, "capacity": 3, "reason": "tournament"},
		{"date": "2026-10-17", "closed": true},
		{"date": "bad"},
		"not an object",
		{"date": "2026-10-14", "closed": "true"},
		{"date": "2026-10-15", "interval": 1, "capacity": 99, "start": "nope"}
	]}`)
	s := ResolveSettings(raw)

	require.Len(t, s.Exceptions, 3)

	first := s.Exceptions[0]
	assert.Equal(t, "2026-10-17", first.Date.String())
	assert.False(t, first.Closed)
	require.NotNil(t, first.Start)
	assert.Equal(t, types.TimeString("12:00"), *first.Start)
	require.NotNil(t, first.End)
	assert.Equal(t, types.TimeString("15:00"), *first.End)
	require.NotNil(t, first.Interval)
	assert.Equal(t, 60, *first.Interval)
	require.NotNil(t, first.Capacity)
	assert.Equal(t, 3, *first.Capacity)
	assert.Equal(t, "tournament", first.Reason)

	assert.True(t, s.Exceptions[1].Closed)

	clamped := s.Exceptions[2]
	assert.Nil(t, clamped.Start)
	assert.Equal(t, 5, *clamped.Interval)
	assert.Equal(t, 10, *clamped.Capacity)
}
