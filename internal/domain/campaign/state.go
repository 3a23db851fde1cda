package campaign

// PendingPurchase records the first half of a two-phase shop purchase. The
// cost is already debited; the effect lands when the second planet arrives.
type PendingPurchase struct {
	ID            string `json:"id"`
	FactionID     string `json:"faction_id"`
	ItemID        string `json:"item_id"`
	FirstPlanetID string `json:"first_planet_id"`
}

// State is the persisted campaign aggregate: the event registry, the faction
// wallets, the stratagem cooldowns, the active galactic order and the turn
// counter. A save/load round-trip must preserve it exactly.
type State struct {
	Turn      int               `json:"turn"`
	Events    Registry          `json:"events"`
	Wallet    Wallet            `json:"wallet"`
	Cooldowns CooldownTable     `json:"cooldowns"`
	Order     *Order            `json:"order,omitempty"`
	Pending   []PendingPurchase `json:"pending_purchases,omitempty"`
	Version   int64             `json:"version"`
}

// NewState returns an empty campaign at turn 1 with allocated maps.
func NewState() State {
	return State{
		Turn:      1,
		Wallet:    Wallet{},
		Cooldowns: CooldownTable{},
		Version:   1,
	}
}

// RemovePending drops the pending purchase with the given id.
func (s *State) RemovePending(id string) bool {
	for i, p := range s.Pending {
		if p.ID == id {
			s.Pending = append(s.Pending[:i], s.Pending[i+1:]...)
			return true
		}
	}
	return false
}
