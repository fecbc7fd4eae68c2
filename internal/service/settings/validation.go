package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/SMC-StringingService/internal/domain"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

var knownFields = map[string]bool{
	domain.FieldCapacity:          true,
	domain.FieldBusinessDays:      true,
	domain.FieldStart:             true,
	domain.FieldEnd:               true,
	domain.FieldInterval:          true,
	domain.FieldHolidays:          true,
	domain.FieldExceptions:        true,
	domain.FieldBookingWindowDays: true,
}

var knownExceptionFields = map[string]bool{
	domain.FieldDate:     true,
	domain.FieldClosed:   true,
	domain.FieldStart:    true,
	domain.FieldEnd:      true,
	domain.FieldInterval: true,
	domain.FieldCapacity: true,
	domain.FieldReason:   true,
}

// validateDocument строгая проверка документа от администратора перед сохранением
func validateDocument(raw domain.RawSettings) error {
	if raw == nil {
		return fmt.Errorf("%w: document is required", ErrInvalidSettings)
	}

	for key := range raw {
		if !knownFields[key] {
			return fmt.Errorf("%w: unknown field %q", ErrInvalidSettings, key)
		}
	}

	if err := validateOptionalInt(raw, domain.FieldCapacity, domain.MinCapacity, domain.MaxCapacity); err != nil {
		return err
	}
	if err := validateOptionalInt(raw, domain.FieldInterval, domain.MinIntervalMinutes, domain.MaxIntervalMinutes); err != nil {
		return err
	}
	if err := validateOptionalInt(raw, domain.FieldBookingWindowDays, domain.MinBookingWindowDays, domain.MaxBookingWindowDays); err != nil {
		return err
	}

	start, err := validateOptionalTime(raw, domain.FieldStart, domain.DefaultStartTime)
	if err != nil {
		return err
	}
	end, err := validateOptionalTime(raw, domain.FieldEnd, domain.DefaultEndTime)
	if err != nil {
		return err
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidSettings, start, end)
	}

	if err := validateBusinessDays(raw[domain.FieldBusinessDays]); err != nil {
		return err
	}
	if err := validateHolidays(raw[domain.FieldHolidays]); err != nil {
		return err
	}
	return validateExceptions(raw[domain.FieldExceptions], start, end)
}

func validateOptionalInt(obj map[string]interface{}, field string, lo, hi int) error {
	v, ok := obj[field]
	if !ok {
		return nil
	}
	n, ok := asInteger(v)
	if !ok {
		return fmt.Errorf("%w: %s must be an integer", ErrInvalidSettings, field)
	}
	if n < lo || n > hi {
		return fmt.Errorf("%w: %s must be between %d and %d", ErrInvalidSettings, field, lo, hi)
	}
	return nil
}

func validateOptionalTime(obj map[string]interface{}, field string, fallback types.TimeString) (types.TimeString, error) {
	v, ok := obj[field]
	if !ok {
		return fallback, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string in HH:MM format", ErrInvalidSettings, field)
	}
	t := types.TimeString(s)
	if err := t.Validate(); err != nil {
		return "", fmt.Errorf("%w: %s must be in HH:MM format", ErrInvalidSettings, field)
	}
	return t, nil
}

func validateBusinessDays(v interface{}) error {
	if v == nil {
		return nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return fmt.Errorf("%w: businessDays must be an array", ErrInvalidSettings)
	}
	seen := make(map[int]bool, len(list))
	for _, item := range list {
		day, ok := asInteger(item)
		if !ok || day < domain.MinWeekday || day > domain.MaxWeekday {
			return fmt.Errorf("%w: businessDays must contain integers 0-6", ErrInvalidSettings)
		}
		if seen[day] {
			return fmt.Errorf("%w: businessDays contains duplicate day %d", ErrInvalidSettings, day)
		}
		seen[day] = true
	}
	return nil
}

func validateHolidays(v interface{}) error {
	if v == nil {
		return nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return fmt.Errorf("%w: holidays must be an array", ErrInvalidSettings)
	}
	for _, item := range list {
		if _, err := parseDate(item); err != nil {
			return fmt.Errorf("%w: holidays: %v", ErrInvalidSettings, err)
		}
	}
	return nil
}

func validateExceptions(v interface{}, defaultStart, defaultEnd types.TimeString) error {
	if v == nil {
		return nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return fmt.Errorf("%w: exceptions must be an array", ErrInvalidSettings)
	}

	seen := make(map[string]bool, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return fmt.Errorf("%w: exceptions[%d] must be an object", ErrInvalidSettings, i)
		}
		for key := range obj {
			if !knownExceptionFields[key] {
				return fmt.Errorf("%w: exceptions[%d]: unknown field %q", ErrInvalidSettings, i, key)
			}
		}

		date, err := parseDate(obj[domain.FieldDate])
		if err != nil {
			return fmt.Errorf("%w: exceptions[%d]: %v", ErrInvalidSettings, i, err)
		}
		if seen[date.String()] {
			return fmt.Errorf("%w: exceptions contain duplicate date %s", ErrInvalidSettings, date)
		}
		seen[date.String()] = true

		if closed, ok := obj[domain.FieldClosed]; ok {
			if _, isBool := closed.(bool); !isBool {
				return fmt.Errorf("%w: exceptions[%d]: closed must be a boolean", ErrInvalidSettings, i)
			}
		}
		if reason, ok := obj[domain.FieldReason]; ok {
			if _, isString := reason.(string); !isString {
				return fmt.Errorf("%w: exceptions[%d]: reason must be a string", ErrInvalidSettings, i)
			}
		}

		if err := validateOptionalInt(obj, domain.FieldCapacity, domain.MinCapacity, domain.MaxCapacity); err != nil {
			return fmt.Errorf("exceptions[%d]: %w", i, err)
		}
		if err := validateOptionalInt(obj, domain.FieldInterval, domain.MinIntervalMinutes, domain.MaxIntervalMinutes); err != nil {
			return fmt.Errorf("exceptions[%d]: %w", i, err)
		}

		start, err := validateOptionalTime(obj, domain.FieldStart, defaultStart)
		if err != nil {
			return fmt.Errorf("exceptions[%d]: %w", i, err)
		}
		end, err := validateOptionalTime(obj, domain.FieldEnd, defaultEnd)
		if err != nil {
			return fmt.Errorf("exceptions[%d]: %w", i, err)
		}
		if !start.IsBefore(end) {
			return fmt.Errorf("%w: exceptions[%d]: start %s must be before end %s", ErrInvalidSettings, i, start, end)
		}
	}
	return nil
}

func parseDate(v interface{}) (types.Date, error) {
	s, ok := v.(string)
	if !ok {
		return types.Date{}, errors.New("date must be a string in YYYY-MM-DD format")
	}
	d, err := types.ParseDate(s)
	if err != nil || d.String() != s {
		return types.Date{}, fmt.Errorf("invalid date %q", s)
	}
	return d, nil
}

// asInteger принимает только целые конечные числа
func asInteger(v interface{}) (int, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		return n, true
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
