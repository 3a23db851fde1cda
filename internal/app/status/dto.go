package status

import (
	"crusade/internal/domain/campaign"
	"crusade/internal/domain/galaxy"
)

type Response struct {
	Turn      int                       `json:"turn"`
	Wallets   map[string]map[string]int `json:"wallets"`
	Cooldowns map[string]map[string]int `json:"cooldowns"`
	Order     *campaign.Order           `json:"order,omitempty"`
	Events    []EventView               `json:"events"`
	Planets   []galaxy.Planet           `json:"planets"`
}

// EventView decorates an event with its lifecycle state for the GM display.
type EventView struct {
	campaign.Event
	State string `json:"state"`
}

type MoveTargetsResponse struct {
	PlanetID string   `json:"planet_id"`
	Targets  []string `json:"targets"`
}
