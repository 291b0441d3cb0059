package domain

import (
	"time"

	"github.com/google/uuid"
)

// LogStatus represents the status of an audit record
type LogStatus string

const (
	LogActive    LogStatus = "active"
	LogCompleted LogStatus = "completed"
	LogCancelled LogStatus = "cancelled"
)

// LogEntry is the permanent audit record of one parking session
type LogEntry struct {
	ID         string
	SlotNumber int
	Occupant
	StartTime time.Time
	EndTime   *time.Time
	Amount    *float64
	Status    LogStatus
}

// NewLogEntry opens an active record for the booking
func NewLogEntry(b *Booking) *LogEntry {
	return &LogEntry{
		ID:         uuid.NewString(),
		SlotNumber: b.SlotNumber,
		Occupant:   b.Occupant,
		StartTime:  b.StartTime,
		Status:     LogActive,
	}
}

// IsFinal returns true if the record can no longer change
func (e *LogEntry) IsFinal() bool {
	return e.Status == LogCompleted || e.Status == LogCancelled
}
