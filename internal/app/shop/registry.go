package shop

import (
	"crusade/internal/domain/campaign"
	"crusade/internal/domain/galaxy"
)

// PurchaseContext carries one purchase through validation and resolution.
// Everything a handler mutates lives here; the usecase persists the state and
// the planets listed in Mutated only after the handler succeeds.
type PurchaseContext struct {
	FactionID string
	Item      campaign.Item
	State     *campaign.State
	Planets   map[string]*galaxy.Planet
	Graph     galaxy.Graph
	Target    *galaxy.Planet

	Outcome Outcome
}

// Outcome is what a resolver reports back on success.
type Outcome struct {
	Message        string
	MutatedPlanets []string
	CreatedShipID  string
	SpawnedEventID string
}

func (pc *PurchaseContext) markMutated(planetID string) {
	for _, id := range pc.Outcome.MutatedPlanets {
		if id == planetID {
			return
		}
	}
	pc.Outcome.MutatedPlanets = append(pc.Outcome.MutatedPlanets, planetID)
}

// ItemHandler resolves one item id. Precheck runs after the generic pipeline
// checks and may still reject; Apply mutates and must not fail on user input.
type ItemHandler interface {
	Precheck(pc *PurchaseContext) error
	Apply(pc *PurchaseContext) error
}

type BaseHandler struct{}

func (BaseHandler) Precheck(*PurchaseContext) error { return nil }

type ItemSpec struct {
	ID      string
	Handler ItemHandler
}

func itemRegistry() map[string]ItemSpec {
	return map[string]ItemSpec{
		campaign.ItemDeployShip:       {ID: campaign.ItemDeployShip, Handler: deployShipHandler{}},
		campaign.ItemMiningUpgrade:    {ID: campaign.ItemMiningUpgrade, Handler: miningUpgradeHandler{}},
		campaign.ItemTradeHub:         {ID: campaign.ItemTradeHub, Handler: tradeHubHandler{}},
		campaign.ItemEliteTraining:    {ID: campaign.ItemEliteTraining, Handler: eliteTrainingHandler{}},
		campaign.ItemOrbitalDefense:   {ID: campaign.ItemOrbitalDefense, Handler: orbitalDefenseHandler{}},
		campaign.ItemSabotage:         {ID: campaign.ItemSabotage, Handler: sabotageHandler{}},
		campaign.ItemInfiltrate:       {ID: campaign.ItemInfiltrate, Handler: infiltrateHandler{}},
		campaign.ItemSuperWeapon:      {ID: campaign.ItemSuperWeapon, Handler: superWeaponHandler{}},
		campaign.StratagemShield:      {ID: campaign.StratagemShield, Handler: orbitalShieldHandler{}},
		campaign.StratagemWarpSurge:   {ID: campaign.StratagemWarpSurge, Handler: warpSurgeHandler{}},
		campaign.StratagemRequisition: {ID: campaign.StratagemRequisition, Handler: rapidRequisitionHandler{}},
	}
}
