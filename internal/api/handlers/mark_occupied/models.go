package mark_occupied

// MarkOccupiedRequest HTTP request model
type MarkOccupiedRequest struct {
	SlotNumber int `json:"slotNumber"`
}
