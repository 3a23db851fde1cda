package campaign

// Item defines a shop item or, when Cooldown > 0, a stratagem. HostileTarget
// items must target a planet the buying faction does not own; every other
// targeted item requires ownership. TwoPlanet items finish through a second
// planet selection before their effect lands.
type Item struct {
	ID             string         `json:"id" yaml:"id"`
	Name           string         `json:"name" yaml:"name"`
	Cost           map[string]int `json:"cost" yaml:"cost"`
	TargetRequired bool           `json:"target_required" yaml:"target_required"`
	HostileTarget  bool           `json:"hostile_target,omitempty" yaml:"hostile_target,omitempty"`
	TwoPlanet      bool           `json:"two_planet,omitempty" yaml:"two_planet,omitempty"`
	Cooldown       int            `json:"cooldown,omitempty" yaml:"cooldown,omitempty"`
	Effect         Effect         `json:"effect" yaml:"effect"`
}

func (i Item) Stratagem() bool {
	return i.Cooldown > 0
}

const (
	ItemDeployShip       = "deploy_ship"
	ItemMiningUpgrade    = "mining_upgrade"
	ItemTradeHub         = "trade_hub"
	ItemEliteTraining    = "elite_training"
	ItemOrbitalDefense   = "orbital_defense"
	ItemWarpBeacon       = "warp_beacon"
	ItemSabotage         = "sabotage"
	ItemInfiltrate       = "infiltrate"
	ItemSuperWeapon      = "super_weapon"
	StratagemShield      = "orbital_shield"
	StratagemWarpSurge   = "warp_surge"
	StratagemRequisition = "rapid_requisition"
)

// DefaultCatalog is the built-in shop table. The static catalog adapter can
// override it from the galaxy file.
func DefaultCatalog() []Item {
	return []Item{
		{ID: ItemDeployShip, Name: "Deploy Ship", Cost: map[string]int{"requisition": 3, "promethium": 1}, TargetRequired: true, Effect: EffectNone},
		{ID: ItemMiningUpgrade, Name: "Mining Upgrade", Cost: map[string]int{"requisition": 2, "ore": 2}, TargetRequired: true, Effect: EffectBonusResources},
		{ID: ItemTradeHub, Name: "Trade Hub", Cost: map[string]int{"requisition": 4}, TargetRequired: true, Effect: EffectBonusResources},
		{ID: ItemEliteTraining, Name: "Elite Training", Cost: map[string]int{"requisition": 3, "food": 2}, TargetRequired: true, Effect: EffectBonusResources},
		{ID: ItemOrbitalDefense, Name: "Orbital Defense", Cost: map[string]int{"requisition": 2, "ore": 3}, TargetRequired: true, Effect: EffectNone},
		{ID: ItemWarpBeacon, Name: "Warp Beacon", Cost: map[string]int{"requisition": 5, "tech": 3}, TargetRequired: true, TwoPlanet: true, Effect: EffectCreatesRoute},
		{ID: ItemSabotage, Name: "Sabotage", Cost: map[string]int{"intel": 2}, TargetRequired: true, HostileTarget: true, Effect: EffectDebuff},
		{ID: ItemInfiltrate, Name: "Infiltrate", Cost: map[string]int{"requisition": 1, "intel": 1}, TargetRequired: true, HostileTarget: true, Effect: EffectDebuff},
		{ID: ItemSuperWeapon, Name: "Super Weapon", Cost: map[string]int{"requisition": 10, "tech": 5, "promethium": 5}, TargetRequired: true, HostileTarget: true, Effect: EffectDestroyPlanet},
		{ID: StratagemShield, Name: "Orbital Shield", Cost: map[string]int{"requisition": 2}, TargetRequired: true, Cooldown: 3, Effect: EffectAttackBonus},
		{ID: StratagemWarpSurge, Name: "Warp Surge", Cost: map[string]int{"tech": 2, "faith": 1}, TargetRequired: true, HostileTarget: true, Cooldown: 4, Effect: EffectBlocksTravel},
		{ID: StratagemRequisition, Name: "Rapid Requisition", Cost: map[string]int{"requisition": 1}, TargetRequired: true, Cooldown: 5, Effect: EffectBonusResources},
	}
}
