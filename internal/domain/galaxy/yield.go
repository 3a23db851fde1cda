package galaxy

// Resource ids used by the base yield tables. The resource catalog may list
// more; unknown ids simply read as zero in wallets.
const (
	ResourceRequisition = "requisition"
	ResourceOre         = "ore"
	ResourcePromethium  = "promethium"
	ResourceFood        = "food"
	ResourceTech        = "tech"
	ResourceFaith       = "faith"
	ResourceIntel       = "intel"
)

// baseYields is the per-turn production table keyed by planet type. Cursed,
// war-torn and corrupted worlds drain their owner instead of producing.
var baseYields = map[PlanetType]map[string]int{
	PlanetForge:     {ResourceRequisition: 2, ResourceOre: 3, ResourceTech: 2},
	PlanetHive:      {ResourceRequisition: 4, ResourceFood: -1},
	PlanetAgri:      {ResourceRequisition: 1, ResourceFood: 4},
	PlanetMining:    {ResourceRequisition: 1, ResourceOre: 4, ResourcePromethium: 2},
	PlanetShrine:    {ResourceRequisition: 1, ResourceFaith: 3},
	PlanetDeath:     {ResourcePromethium: 1},
	PlanetBarren:    {},
	PlanetCursed:    {ResourceRequisition: -2, ResourceFaith: -1},
	PlanetWarTorn:   {ResourceRequisition: -1, ResourceOre: 1},
	PlanetCorrupted: {ResourceRequisition: -1, ResourceFood: -2},
}

// ResourceIDs lists the built-in resource ids in display order.
func ResourceIDs() []string {
	return []string{
		ResourceRequisition,
		ResourceOre,
		ResourcePromethium,
		ResourceFood,
		ResourceTech,
		ResourceFaith,
		ResourceIntel,
	}
}

// BaseYield returns a copy of the production row for the planet type.
func BaseYield(t PlanetType) map[string]int {
	out := map[string]int{}
	for resourceID, amount := range baseYields[t] {
		out[resourceID] = amount
	}
	return out
}

// HarvestYield computes one turn of production for the planet, composing its
// modifiers in the canonical order: flat add, then percent multiply, then
// doubling. Deterministic; destroyed planets yield nothing.
func HarvestYield(p Planet) map[string]int {
	if p.Destroyed {
		return map[string]int{}
	}
	out := BaseYield(p.Type)
	for resourceID, bonus := range p.Modifiers.FlatBonus {
		out[resourceID] += bonus
	}
	if p.Modifiers.YieldPercent != 0 {
		for resourceID, amount := range out {
			out[resourceID] = amount * (100 + p.Modifiers.YieldPercent) / 100
		}
	}
	if p.Modifiers.DoubleYield {
		for resourceID, amount := range out {
			out[resourceID] = amount * 2
		}
	}
	for resourceID, amount := range out {
		if amount == 0 {
			delete(out, resourceID)
		}
	}
	return out
}
