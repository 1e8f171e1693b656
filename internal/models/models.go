package models

import "time"

// the published state of a light entity
type EntityState struct {
	UniqueID  string    `json:"uniqueId"`
	EntityID  string    `json:"entityId"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	On        bool      `json:"on"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// a single recorded state change
type StateRecord struct {
	EventID    string    `json:"eventId"`
	UniqueID   string    `json:"uniqueId"`
	On         bool      `json:"on"`
	RecordedAt time.Time `json:"recordedAt"`
}

type SimulatedDevice struct {
	ID           string   `mapstructure:"id"`
	Name         string   `mapstructure:"name"`
	Capabilities []string `mapstructure:"capabilities"`
	Lights       string   `mapstructure:"lights"`
}

type SimulatedGroup struct {
	ID     string `mapstructure:"id"`
	Name   string `mapstructure:"name"`
	Lights bool   `mapstructure:"lights"`
}
