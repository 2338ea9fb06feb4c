package dto

// UpdateConfigInput carries the flags to change; absent flags keep their value.
type UpdateConfigInput struct {
	PaletteEnabled  *bool `json:"palette_enabled"`
	MaintenanceMode *bool `json:"maintenance_mode"`
}
