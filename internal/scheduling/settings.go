package scheduling

import (
	"sort"

	"github.com/m04kA/SMC-StringingService/internal/domain"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

// DefaultSettings returns the configuration used when no document is stored.
func DefaultSettings() domain.SchedulingSettings {
	days := make([]int, len(domain.DefaultBusinessDays))
	copy(days, domain.DefaultBusinessDays)

	return domain.SchedulingSettings{
		Capacity:          domain.DefaultCapacity,
		BusinessDays:      days,
		Start:             domain.DefaultStartTime,
		End:               domain.DefaultEndTime,
		Interval:          domain.DefaultIntervalMinutes,
		Holidays:          []types.Date{},
		Exceptions:        []domain.ExceptionRule{},
		BookingWindowDays: domain.DefaultBookingWindowDays,
	}
}

// ResolveSettings normalizes a raw settings document. It never fails:
// missing or malformed fields fall back to defaults and numbers are clamped.
func ResolveSettings(raw domain.RawSettings) domain.SchedulingSettings {
	s := DefaultSettings()
	if raw == nil {
		return s
	}

	if v, ok := toInt(raw[domain.FieldCapacity]); ok {
		s.Capacity = clamp(v, domain.MinCapacity, domain.MaxCapacity)
	}
	if v, ok := toInt(raw[domain.FieldInterval]); ok {
		s.Interval = clamp(v, domain.MinIntervalMinutes, domain.MaxIntervalMinutes)
	}
	if v, ok := toInt(raw[domain.FieldBookingWindowDays]); ok {
		s.BookingWindowDays = clamp(v, domain.MinBookingWindowDays, domain.MaxBookingWindowDays)
	}
	if v, ok := toTimeString(raw[domain.FieldStart]); ok {
		s.Start = v
	}
	if v, ok := toTimeString(raw[domain.FieldEnd]); ok {
		s.End = v
	}
	if list, ok := raw[domain.FieldBusinessDays].([]interface{}); ok {
		s.BusinessDays = resolveBusinessDays(list)
	}
	if list, ok := raw[domain.FieldHolidays].([]interface{}); ok {
		s.Holidays = resolveHolidays(list)
	}
	if list, ok := raw[domain.FieldExceptions].([]interface{}); ok {
		s.Exceptions = resolveExceptions(list)
	}

	return s
}

// resolveBusinessDays keeps valid weekdays, deduplicated and ascending.
// An explicit empty list means the shop is closed every weekday.
func resolveBusinessDays(list []interface{}) []int {
	seen := make(map[int]bool, len(list))
	days := make([]int, 0, len(list))
	for _, item := range list {
		d, ok := toNumber(item)
		if !ok || d != float64(int(d)) {
			continue
		}
		day := int(d)
		if day < domain.MinWeekday || day > domain.MaxWeekday || seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

func resolveHolidays(list []interface{}) []types.Date {
	seen := make(map[string]bool, len(list))
	holidays := make([]types.Date, 0, len(list))
	for _, item := range list {
		d, ok := toDate(item)
		if !ok || seen[d.String()] {
			continue
		}
		seen[d.String()] = true
		holidays = append(holidays, d)
	}
	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Before(holidays[j])
	})
	return holidays
}

// resolveExceptions keeps list order. Entries without a valid date are
// dropped and later entries for an already seen date are ignored.
func resolveExceptions(list []interface{}) []domain.ExceptionRule {
	seen := make(map[string]bool, len(list))
	rules := make([]domain.ExceptionRule, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		date, ok := toDate(obj[domain.FieldDate])
		if !ok || seen[date.String()] {
			continue
		}
		seen[date.String()] = true
		rules = append(rules, resolveException(date, obj))
	}
	return rules
}

func resolveException(date types.Date, obj map[string]interface{}) domain.ExceptionRule {
	rule := domain.ExceptionRule{Date: date}

	if closed, ok := toBool(obj[domain.FieldClosed]); ok {
		rule.Closed = closed
	}
	if v, ok := toTimeString(obj[domain.FieldStart]); ok {
		rule.Start = &v
	}
	if v, ok := toTimeString(obj[domain.FieldEnd]); ok {
		rule.End = &v
	}
	if v, ok := toInt(obj[domain.FieldInterval]); ok {
		v = clamp(v, domain.MinIntervalMinutes, domain.MaxIntervalMinutes)
		rule.Interval = &v
	}
	if v, ok := toInt(obj[domain.FieldCapacity]); ok {
		v = clamp(v, domain.MinCapacity, domain.MaxCapacity)
		rule.Capacity = &v
	}
	if v, ok := obj[domain.FieldReason].(string); ok {
		rule.Reason = v
	}

	return rule
}
