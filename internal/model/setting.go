package model

import "time"

// AppConfig is the single row of storefront feature flags.
type AppConfig struct {
	ID              int       `db:"id" json:"-"`
	PaletteEnabled  bool      `db:"palette_enabled" json:"palette_enabled"`
	MaintenanceMode bool      `db:"maintenance_mode" json:"maintenance_mode"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
