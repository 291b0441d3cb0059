package reset_slot

// ResetSlotRequest HTTP request model
type ResetSlotRequest struct {
	SlotNumber int `json:"slotNumber"`
}
