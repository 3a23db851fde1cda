package shop

import (
	"fmt"

	"github.com/google/uuid"

	"crusade/internal/domain/campaign"
	"crusade/internal/domain/galaxy"
)

type deployShipHandler struct{ BaseHandler }

func (deployShipHandler) Apply(pc *PurchaseContext) error {
	ship := galaxy.Ship{
		ID:        uuid.NewString(),
		FactionID: pc.FactionID,
		Name:      "Strike Cruiser",
	}
	pc.Target.AddShip(ship)
	pc.markMutated(pc.Target.ID)
	pc.Outcome.CreatedShipID = ship.ID
	pc.Outcome.Message = fmt.Sprintf("ship deployed at %s", pc.Target.Name)
	return nil
}

type miningUpgradeHandler struct{ BaseHandler }

func (miningUpgradeHandler) Apply(pc *PurchaseContext) error {
	if pc.Target.Modifiers.FlatBonus == nil {
		pc.Target.Modifiers.FlatBonus = map[string]int{}
	}
	pc.Target.Modifiers.FlatBonus[galaxy.ResourceOre] += 2
	pc.markMutated(pc.Target.ID)
	pc.Outcome.Message = fmt.Sprintf("mining upgrade installed on %s", pc.Target.Name)
	return nil
}

type tradeHubHandler struct{ BaseHandler }

func (tradeHubHandler) Apply(pc *PurchaseContext) error {
	pc.Target.Modifiers.YieldPercent += 25
	pc.markMutated(pc.Target.ID)
	pc.Outcome.Message = fmt.Sprintf("trade hub established on %s", pc.Target.Name)
	return nil
}

type eliteTrainingHandler struct{}

func (eliteTrainingHandler) Precheck(pc *PurchaseContext) error {
	if pc.Target.Modifiers.DoubleYield {
		return ErrAlreadyApplied
	}
	return nil
}

func (eliteTrainingHandler) Apply(pc *PurchaseContext) error {
	pc.Target.Modifiers.DoubleYield = true
	pc.markMutated(pc.Target.ID)
	pc.Outcome.Message = fmt.Sprintf("elite training regime active on %s", pc.Target.Name)
	return nil
}

type orbitalDefenseHandler struct{ BaseHandler }

func (orbitalDefenseHandler) Apply(pc *PurchaseContext) error {
	pc.Target.AdjustValueTwo(2)
	pc.markMutated(pc.Target.ID)
	pc.Outcome.Message = fmt.Sprintf("orbital defenses of %s reinforced", pc.Target.Name)
	return nil
}

type sabotageHandler struct{ BaseHandler }

func (sabotageHandler) Apply(pc *PurchaseContext) error {
	pc.Target.AdjustValueOne(-2)
	pc.markMutated(pc.Target.ID)
	pc.Outcome.Message = fmt.Sprintf("saboteurs cripple %s", pc.Target.Name)
	return nil
}

type infiltrateHandler struct{ BaseHandler }

func (infiltrateHandler) Apply(pc *PurchaseContext) error {
	pc.State.Wallet.Credit(pc.FactionID, galaxy.ResourceIntel, 1)
	if victim := pc.Target.OwnerID; victim != "" {
		pc.State.Wallet.Debit(victim, galaxy.ResourceIntel, 1)
	}
	pc.Outcome.Message = fmt.Sprintf("agents embedded on %s", pc.Target.Name)
	return nil
}

type superWeaponHandler struct{ BaseHandler }

func (superWeaponHandler) Apply(pc *PurchaseContext) error {
	pc.Target.Destroy()
	pc.markMutated(pc.Target.ID)
	pc.Outcome.Message = fmt.Sprintf("%s has been destroyed", pc.Target.Name)
	return nil
}

type orbitalShieldHandler struct{ BaseHandler }

func (orbitalShieldHandler) Apply(pc *PurchaseContext) error {
	evt := pc.State.Events.Add(campaign.EventStandardBearer, pc.Target.ID, 2, 0, "")
	pc.Target.AdjustValueTwo(1)
	pc.markMutated(pc.Target.ID)
	pc.Outcome.SpawnedEventID = evt.ID
	pc.Outcome.Message = fmt.Sprintf("orbital shield raised over %s", pc.Target.Name)
	return nil
}

type warpSurgeHandler struct{ BaseHandler }

func (warpSurgeHandler) Apply(pc *PurchaseContext) error {
	evt := pc.State.Events.Add(campaign.EventWarpStorm, pc.Target.ID, 2, 0, "")
	pc.Outcome.SpawnedEventID = evt.ID
	pc.Outcome.Message = fmt.Sprintf("warp surge isolates %s", pc.Target.Name)
	return nil
}

type rapidRequisitionHandler struct{ BaseHandler }

func (rapidRequisitionHandler) Apply(pc *PurchaseContext) error {
	for resourceID, amount := range galaxy.HarvestYield(*pc.Target) {
		pc.State.Wallet.Credit(pc.FactionID, resourceID, amount)
	}
	pc.Outcome.Message = fmt.Sprintf("emergency harvest from %s", pc.Target.Name)
	return nil
}
