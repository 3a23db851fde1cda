package campaign

import (
	"math/rand"

	"github.com/google/uuid"
)

// Registry owns every timed campaign event and drives their lifecycle.
type Registry struct {
	Events []Event `json:"events"`
}

// Add creates and stores an event. duration -1 marks an infinite event;
// startTurn 0 makes it active immediately. targetPlanetID is only meaningful
// for route-creating events and may be empty otherwise.
func (r *Registry) Add(t EventType, planetID string, duration, startTurn int, targetPlanetID string) Event {
	evt := Event{
		ID:             uuid.NewString(),
		Type:           t,
		PlanetID:       planetID,
		TargetPlanetID: targetPlanetID,
		Effect:         EffectForType(t),
		StartTurn:      startTurn,
		TurnsRemaining: duration,
	}
	r.Events = append(r.Events, evt)
	return evt
}

// Remove drops the event with the given id, reporting whether it was present.
func (r *Registry) Remove(id string) bool {
	for i, evt := range r.Events {
		if evt.ID == id {
			r.Events = append(r.Events[:i], r.Events[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Registry) All() []Event {
	out := make([]Event, len(r.Events))
	copy(out, r.Events)
	return out
}

func (r *Registry) Get(id string) (Event, bool) {
	for _, evt := range r.Events {
		if evt.ID == id {
			return evt, true
		}
	}
	return Event{}, false
}

// ByPlanet returns every event anchored at or targeting the planet.
func (r *Registry) ByPlanet(planetID string) []Event {
	out := []Event{}
	for _, evt := range r.Events {
		if evt.PlanetID == planetID || evt.TargetPlanetID == planetID {
			out = append(out, evt)
		}
	}
	return out
}

func (r *Registry) ByEffect(effect Effect) []Event {
	out := []Event{}
	for _, evt := range r.Events {
		if evt.Effect == effect {
			out = append(out, evt)
		}
	}
	return out
}

// AdvanceTurn ticks every stored event once, removes the ones that expired on
// this tick and returns them.
func (r *Registry) AdvanceTurn() []Event {
	expired := []Event{}
	remaining := r.Events[:0]
	for i := range r.Events {
		if r.Events[i].Tick() {
			expired = append(expired, r.Events[i])
			continue
		}
		remaining = append(remaining, r.Events[i])
	}
	r.Events = remaining
	return expired
}

// IsRouteBlocked reports whether any active travel-blocking event is anchored
// at either endpoint of the hop.
func (r *Registry) IsRouteBlocked(a, b string) bool {
	for _, evt := range r.Events {
		if evt.Effect != EffectBlocksTravel || !evt.Active() {
			continue
		}
		if evt.PlanetID == a || evt.PlanetID == b {
			return true
		}
	}
	return false
}

// HasWormhole reports whether an active route-creating event connects the two
// planets. Symmetric in its arguments.
func (r *Registry) HasWormhole(a, b string) bool {
	for _, evt := range r.Events {
		if evt.Effect != EffectCreatesRoute || !evt.Active() {
			continue
		}
		if evt.Connects(a, b) {
			return true
		}
	}
	return false
}

// WormholeExits returns the far ends of every active wormhole anchored at the
// planet, in either direction.
func (r *Registry) WormholeExits(planetID string) []string {
	out := []string{}
	for _, evt := range r.Events {
		if evt.Effect != EffectCreatesRoute || !evt.Active() {
			continue
		}
		switch planetID {
		case evt.PlanetID:
			out = append(out, evt.TargetPlanetID)
		case evt.TargetPlanetID:
			out = append(out, evt.PlanetID)
		}
	}
	return out
}

var randomEventTable = []struct {
	Type     EventType
	Weight   int
	Duration int
}{
	{EventWarpStorm, 30, 3},
	{EventWormhole, 20, 4},
	{EventTaintedBounty, 15, 2},
	{EventWaaagh, 10, 3},
	{EventStandardBearer, 10, 2},
	{EventTechCache, 10, 2},
	{EventWarpBlight, 5, 3},
}

// RandomEvent rolls a weighted event type, anchors it at a random planet and
// stores it active immediately. Wormholes pick a distinct target planet.
// Returns false when the planet set is too small to anchor anything.
func (r *Registry) RandomEvent(rng *rand.Rand, planetIDs []string) (Event, bool) {
	if len(planetIDs) == 0 {
		return Event{}, false
	}
	total := 0
	for _, row := range randomEventTable {
		total += row.Weight
	}
	roll := rng.Intn(total)
	var picked EventType
	var duration int
	for _, row := range randomEventTable {
		if roll < row.Weight {
			picked = row.Type
			duration = row.Duration
			break
		}
		roll -= row.Weight
	}

	planetID := planetIDs[rng.Intn(len(planetIDs))]
	targetID := ""
	if picked == EventWormhole {
		if len(planetIDs) < 2 {
			return Event{}, false
		}
		for targetID == "" || targetID == planetID {
			targetID = planetIDs[rng.Intn(len(planetIDs))]
		}
	}
	return r.Add(picked, planetID, duration, 0, targetID), true
}
