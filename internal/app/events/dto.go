package events

import "crusade/internal/domain/campaign"

// AddRequest creates an explicit event. Duration -1 marks an infinite event;
// StartTurn 0 activates it immediately.
type AddRequest struct {
	Type           string `json:"type"`
	PlanetID       string `json:"planet_id"`
	TargetPlanetID string `json:"target_planet_id,omitempty"`
	Duration       int    `json:"duration"`
	StartTurn      int    `json:"start_turn"`
}

type EventResponse struct {
	OK      bool            `json:"ok"`
	Message string          `json:"message,omitempty"`
	Event   *campaign.Event `json:"event,omitempty"`
}

type ToggleRequest struct {
	PlanetOne string `json:"planet_one"`
	PlanetTwo string `json:"planet_two"`
}

// OrderRequest installs a Galactic Order. Turns is the turn budget; the
// reward payload is surfaced unchanged when the order ends.
type OrderRequest struct {
	Name        string         `json:"name"`
	TargetCount int            `json:"target_count"`
	Turns       int            `json:"turns"`
	Reward      map[string]int `json:"reward,omitempty"`
}

type OrderResponse struct {
	OK      bool            `json:"ok"`
	Message string          `json:"message,omitempty"`
	Order   *campaign.Order `json:"order,omitempty"`
}

type ToggleResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Result  string `json:"result,omitempty"`
}
