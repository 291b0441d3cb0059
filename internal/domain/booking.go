package domain

import (
	"strings"
	"time"
)

// BookingStatus represents the status of a live booking
type BookingStatus string

const (
	BookingBooked   BookingStatus = "booked"
	BookingOccupied BookingStatus = "occupied"
)

// Occupant identifies who holds a slot
type Occupant struct {
	Name          string
	Phone         string
	VehicleNumber string
}

// Normalize trims surrounding whitespace from every field
func (o Occupant) Normalize() Occupant {
	return Occupant{
		Name:          strings.TrimSpace(o.Name),
		Phone:         strings.TrimSpace(o.Phone),
		VehicleNumber: strings.TrimSpace(o.VehicleNumber),
	}
}

// IsComplete returns true if no field is blank
func (o Occupant) IsComplete() bool {
	return o.Name != "" && o.Phone != "" && o.VehicleNumber != ""
}

// Booking is the live reservation of a slot. At most one exists per slot.
type Booking struct {
	ID         string
	SlotNumber int
	Occupant
	StartTime time.Time
	Status    BookingStatus
}

// IsOccupied returns true if the vehicle has arrived
func (b *Booking) IsOccupied() bool {
	return b.Status == BookingOccupied
}
