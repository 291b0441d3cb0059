package domain

// Billing constants
const (
	// MinBilledHours is charged even for a zero-length session
	MinBilledHours = 1

	DefaultRatePerHour = 10.0
	DefaultSlotCount   = 10
)

// Occupant field limits
const (
	MaxNameLength          = 100
	MaxPhoneLength         = 32
	MaxVehicleNumberLength = 32
)

// TimeFormat is used for every timestamp rendered at the API boundary
const TimeFormat = "2006-01-02T15:04:05.000000Z07:00"
