package domain

import "github.com/m04kA/SMC-StringingService/pkg/types"

// Default scheduling values used when the settings document omits a field
const (
	DefaultCapacity          = 1
	DefaultIntervalMinutes   = 30
	DefaultBookingWindowDays = 30
	DefaultSpanCount         = 1

	DefaultStartTime types.TimeString = "10:00"
	DefaultEndTime   types.TimeString = "19:00"
)

// DefaultBusinessDays Monday through Friday (time.Weekday numbering, Sunday = 0)
var DefaultBusinessDays = []int{1, 2, 3, 4, 5}

// Bounds every resolved value is clamped to
const (
	MinCapacity          = 1
	MaxCapacity          = 10
	MinIntervalMinutes   = 5
	MaxIntervalMinutes   = 240
	MinBookingWindowDays = 0
	MaxBookingWindowDays = 365
	MinWeekday           = 0
	MaxWeekday           = 6
)

// Validation limits for reservation payloads
const (
	MaxSpanCount                = 12
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxTensionLbs               = 80
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// SettingsKey fixed key of the scheduling settings record
const SettingsKey = "string_service"

// Settings document field names
const (
	FieldCapacity          = "capacity"
	FieldBusinessDays      = "businessDays"
	FieldStart             = "start"
	FieldEnd               = "end"
	FieldInterval          = "interval"
	FieldHolidays          = "holidays"
	FieldExceptions        = "exceptions"
	FieldBookingWindowDays = "bookingWindowDays"
	FieldDate              = "date"
	FieldClosed            = "closed"
	FieldReason            = "reason"
)

// ExcludedStatuses statuses that never occupy a slot
var ExcludedStatuses = []ReservationStatus{
	StatusDraft,
	StatusCancelledByUser,
	StatusCancelledByShop,
}
