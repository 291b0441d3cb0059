package domain

import "time"

// Tariff is the hourly billing rule of the lot
type Tariff struct {
	RatePerHour float64
}

// BilledHours charges every started hour in full, with a floor of MinBilledHours
func (t Tariff) BilledHours(elapsed time.Duration) int64 {
	if elapsed <= 0 {
		return MinBilledHours
	}

	hours := int64(elapsed / time.Hour)
	if elapsed%time.Hour != 0 {
		hours++
	}
	if hours < MinBilledHours {
		hours = MinBilledHours
	}
	return hours
}

// Invoice is computed when a booking is closed. It is not persisted.
type Invoice struct {
	SlotNumber int
	Occupant
	StartTime   time.Time
	EndTime     time.Time
	BilledHours int64
	RatePerHour float64
	Amount      float64
}

// Invoice bills the booking from its start time up to endTime
func (t Tariff) Invoice(b *Booking, endTime time.Time) *Invoice {
	hours := t.BilledHours(endTime.Sub(b.StartTime))

	return &Invoice{
		SlotNumber:  b.SlotNumber,
		Occupant:    b.Occupant,
		StartTime:   b.StartTime,
		EndTime:     endTime,
		BilledHours: hours,
		RatePerHour: t.RatePerHour,
		Amount:      float64(hours) * t.RatePerHour,
	}
}
