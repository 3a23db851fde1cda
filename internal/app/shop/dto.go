package shop

// Request covers both shop purchases and stratagem activation.
type Request struct {
	FactionID      string `json:"faction_id"`
	ItemID         string `json:"item_id"`
	TargetPlanetID string `json:"target_planet_id,omitempty"`
}

// CompleteRequest finishes a two-phase purchase with the second planet.
type CompleteRequest struct {
	FactionID string `json:"faction_id"`
	ItemID    string `json:"item_id"`
	PlanetOne string `json:"planet_one"`
	PlanetTwo string `json:"planet_two"`
}

// Response is the discriminated purchase result. OK false means the request
// was rejected before any state changed.
type Response struct {
	OK                   bool           `json:"ok"`
	Message              string         `json:"message"`
	ItemID               string         `json:"item_id,omitempty"`
	FactionID            string         `json:"faction_id,omitempty"`
	TargetPlanetID       string         `json:"target_planet_id,omitempty"`
	RequiresSecondPlanet bool           `json:"requires_second_planet,omitempty"`
	FirstPlanetID        string         `json:"first_planet_id,omitempty"`
	MutatedPlanets       []string       `json:"mutated_planets,omitempty"`
	CreatedShipID        string         `json:"created_ship_id,omitempty"`
	SpawnedEventID       string         `json:"spawned_event_id,omitempty"`
	CooldownTurns        int            `json:"cooldown_turns,omitempty"`
	Wallet               map[string]int `json:"wallet,omitempty"`
}
