package models

// CapacityResult reports how much plaintext a cover image of a given
// size can hold, derived from internal/codec.MaxCapacity.
type CapacityResult struct {
	Width        int `json:"width"`
	Height       int `json:"height"`
	TotalSlots   int `json:"total_slots"`
	BaseCapacity int `json:"base_capacity_bytes"`
	MaxPayload   int `json:"max_payload_bytes"`
}
