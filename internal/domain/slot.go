package domain

// SlotStatus is the lifecycle state of a parking slot
type SlotStatus string

const (
	SlotEmpty    SlotStatus = "empty"
	SlotBooked   SlotStatus = "booked"
	SlotOccupied SlotStatus = "occupied"
)

// Slot is a numbered parking place. CurrentBookingID is set iff Status != SlotEmpty.
type Slot struct {
	Number           int
	Status           SlotStatus
	CurrentBookingID *string
}

// NewEmptySlot returns a slot in its initial state
func NewEmptySlot(number int) *Slot {
	return &Slot{Number: number, Status: SlotEmpty}
}

// IsAvailable returns true if the slot can be booked
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotEmpty
}

// CanBeOccupied returns true if the slot is booked and waiting for the vehicle
func (s *Slot) CanBeOccupied() bool {
	return s.Status == SlotBooked
}

// MarkBooked attaches a booking to an empty slot
func (s *Slot) MarkBooked(bookingID string) {
	id := bookingID
	s.Status = SlotBooked
	s.CurrentBookingID = &id
}

// MarkOccupied moves a booked slot to occupied, keeping the booking reference
func (s *Slot) MarkOccupied() {
	s.Status = SlotOccupied
}

// Release returns the slot to empty
func (s *Slot) Release() {
	s.Status = SlotEmpty
	s.CurrentBookingID = nil
}

// IsConsistent checks the status/booking reference invariant
func (s *Slot) IsConsistent() bool {
	return (s.Status == SlotEmpty) == (s.CurrentBookingID == nil)
}
