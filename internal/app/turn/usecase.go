package turn

import (
	"context"
	"errors"

	"crusade/internal/app/ports"
	"crusade/internal/domain/campaign"
	"crusade/internal/domain/galaxy"
)

// UseCase is the turn orchestrator. AdvanceTurn runs the whole step inside
// one transaction; the TxManager serializes it against purchases and against
// itself, so a turn can never be re-entered mid-flight.
type UseCase struct {
	TxManager  ports.TxManager
	StateRepo  ports.CampaignStateRepository
	PlanetRepo ports.PlanetRepository
	Metrics    ports.CampaignMetrics
}

// AdvanceTurn ticks every event, decrements stratagem cooldowns, harvests
// owned planets into faction wallets, advances the galactic order and
// increments the turn counter.
func (u UseCase) AdvanceTurn(ctx context.Context) (Response, error) {
	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		out, err = u.advanceTx(txCtx)
		return err
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess("advance_turn")
	}
	return out, nil
}

func (u UseCase) advanceTx(ctx context.Context) (Response, error) {
	state, err := u.StateRepo.Get(ctx)
	if err != nil {
		return Response{}, err
	}
	version := state.Version

	list, err := u.PlanetRepo.List(ctx)
	if err != nil {
		return Response{}, err
	}
	planets := make(map[string]*galaxy.Planet, len(list))
	for i := range list {
		planets[list[i].ID] = &list[i]
	}
	dirty := map[string]struct{}{}

	// 1. Event lifecycle. Planet-killer events land when they expire.
	expired := state.Events.AdvanceTurn()
	for _, evt := range expired {
		if evt.Effect != campaign.EffectDestroyPlanet {
			continue
		}
		if planet, ok := planets[evt.PlanetID]; ok && !planet.Destroyed {
			planet.Destroy()
			dirty[planet.ID] = struct{}{}
		}
	}

	// 2. Cooldowns.
	state.Cooldowns.TickDown()

	// 3. Harvest. Deterministic: type table plus per-planet modifiers only.
	harvest := map[string]map[string]int{}
	ownedCount := 0
	for _, planet := range planets {
		if planet.OwnerID == "" || planet.Destroyed {
			continue
		}
		ownedCount++
		for resourceID, amount := range galaxy.HarvestYield(*planet) {
			state.Wallet.Credit(planet.OwnerID, resourceID, amount)
			if harvest[planet.OwnerID] == nil {
				harvest[planet.OwnerID] = map[string]int{}
			}
			harvest[planet.OwnerID][resourceID] += amount
		}
	}

	// 4. Galactic order. The reward payload is surfaced on completion and on
	// expiry alike; distribution is the GM layer's call.
	var orderOutcome *campaign.OrderOutcome
	if outcome, done := campaign.AdvanceOrder(state.Order, ownedCount); done {
		orderOutcome = &outcome
	}

	// 5. Turn counter and persistence.
	state.Turn++
	for id := range dirty {
		planets[id].Version++
		if err := u.PlanetRepo.Save(ctx, *planets[id]); err != nil {
			return Response{}, err
		}
	}
	state.Version = version + 1
	if err := u.StateRepo.SaveWithVersion(ctx, state, version); err != nil {
		return Response{}, err
	}

	return Response{
		Turn:          state.Turn,
		ExpiredEvents: expired,
		Harvest:       harvest,
		Order:         orderOutcome,
	}, nil
}
