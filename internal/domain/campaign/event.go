package campaign

import "fmt"

type EventType string

const (
	EventWarpStorm      EventType = "WARP_STORM"
	EventWormhole       EventType = "WORMHOLE"
	EventTaintedBounty  EventType = "TAINTED_BOUNTY"
	EventWaaagh         EventType = "WAAAGH"
	EventExterminatus   EventType = "EXTERMINATUS"
	EventStandardBearer EventType = "STANDARD_BEARER"
	EventTechCache      EventType = "TECH_CACHE"
	EventWarpBlight     EventType = "WARP_BLIGHT"
)

type Effect string

const (
	EffectBlocksTravel   Effect = "blocks_travel"
	EffectCreatesRoute   Effect = "creates_route"
	EffectBonusResources Effect = "bonus_resources"
	EffectDebuff         Effect = "debuff"
	EffectDestroyPlanet  Effect = "destroy_planet"
	EffectAttackBonus    Effect = "attack_bonus"
	EffectBonusTech      Effect = "bonus_tech"
	EffectOrkInvasion    Effect = "ork_invasion"
	EffectNone           Effect = "none"
)

// InfiniteDuration marks an event that never ticks down once active.
const InfiniteDuration = -1

var effectByEventType = map[EventType]Effect{
	EventWarpStorm:      EffectBlocksTravel,
	EventWormhole:       EffectCreatesRoute,
	EventTaintedBounty:  EffectBonusResources,
	EventWaaagh:         EffectOrkInvasion,
	EventExterminatus:   EffectDestroyPlanet,
	EventStandardBearer: EffectAttackBonus,
	EventTechCache:      EffectBonusTech,
	EventWarpBlight:     EffectDebuff,
}

// EffectForType maps an event type to the effect tag its resolver acts on.
// Unknown types carry no effect.
func EffectForType(t EventType) Effect {
	if effect, ok := effectByEventType[t]; ok {
		return effect
	}
	return EffectNone
}

// Event is a timed campaign occurrence anchored at a planet. An event is in
// exactly one of three states: waiting (StartTurn > 0), active (StartTurn == 0
// and TurnsRemaining > 0 or infinite), expired (TurnsRemaining == 0).
type Event struct {
	ID             string    `json:"id"`
	Type           EventType `json:"type"`
	PlanetID       string    `json:"planet_id"`
	TargetPlanetID string    `json:"target_planet_id,omitempty"`
	Effect         Effect    `json:"effect"`
	StartTurn      int       `json:"start_turn"`
	TurnsRemaining int       `json:"turns_remaining"`
}

func (e Event) Waiting() bool {
	return e.StartTurn > 0
}

func (e Event) Active() bool {
	return e.StartTurn == 0 && (e.TurnsRemaining > 0 || e.TurnsRemaining == InfiniteDuration)
}

func (e Event) Expired() bool {
	return e.StartTurn == 0 && e.TurnsRemaining == 0
}

func (e Event) Infinite() bool {
	return e.TurnsRemaining == InfiniteDuration
}

// Tick advances the event by one turn and reports whether it expired on this
// tick. A waiting event burns down its start delay first; its duration does
// not start counting until the delay is gone. Infinite events never expire.
func (e *Event) Tick() bool {
	if e.StartTurn > 0 {
		if e.TurnsRemaining == 0 {
			panic(fmt.Sprintf("campaign: event %s waiting with zero duration", e.ID))
		}
		e.StartTurn--
		return false
	}
	if e.TurnsRemaining == InfiniteDuration {
		return false
	}
	e.TurnsRemaining--
	return e.TurnsRemaining <= 0
}

// Connects reports whether the event links the two planets in either
// direction. Only meaningful for route-creating events.
func (e Event) Connects(a, b string) bool {
	return (e.PlanetID == a && e.TargetPlanetID == b) ||
		(e.PlanetID == b && e.TargetPlanetID == a)
}
