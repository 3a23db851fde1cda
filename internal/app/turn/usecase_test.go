package turn

import (
	"context"
	"testing"

	"crusade/internal/adapter/repo/memory"
	"crusade/internal/domain/campaign"
	"crusade/internal/domain/galaxy"
)

func newFixture(t *testing.T) (UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.SeedState(campaign.NewState())
	return UseCase{
		TxManager:  memory.NewTxManager(store),
		StateRepo:  memory.NewCampaignStateRepo(store),
		PlanetRepo: memory.NewPlanetRepo(store),
	}, store
}

func TestAdvanceTurn_IncrementsTurnAndExpiresEvents(t *testing.T) {
	uc, store := newFixture(t)
	state, _ := uc.StateRepo.Get(context.Background())
	state.Events.Add(campaign.EventWarpStorm, "p1", 1, 0, "")
	state.Events.Add(campaign.EventWormhole, "p1", 5, 0, "p2")
	seedState(t, uc, state)
	store.SeedPlanet(galaxy.Planet{ID: "p1", Name: "Armageddon", Type: galaxy.PlanetBarren, Version: 1})

	out, err := uc.AdvanceTurn(context.Background())
	if err != nil {
		t.Fatalf("advance error: %v", err)
	}
	if out.Turn != 2 {
		t.Fatalf("turn mismatch: got=%d want=2", out.Turn)
	}
	if len(out.ExpiredEvents) != 1 || out.ExpiredEvents[0].Type != campaign.EventWarpStorm {
		t.Fatalf("expected the one-turn storm to expire, got %v", out.ExpiredEvents)
	}
	after, _ := uc.StateRepo.Get(context.Background())
	if got := len(after.Events.All()); got != 1 {
		t.Fatalf("registry size mismatch: got=%d want=1", got)
	}
}

func TestAdvanceTurn_HarvestCreditsOwners(t *testing.T) {
	uc, store := newFixture(t)
	store.SeedPlanet(galaxy.Planet{ID: "p1", Type: galaxy.PlanetAgri, OwnerID: "imperium", Version: 1})
	store.SeedPlanet(galaxy.Planet{ID: "p2", Type: galaxy.PlanetCursed, OwnerID: "imperium", Version: 1})
	store.SeedPlanet(galaxy.Planet{ID: "p3", Type: galaxy.PlanetMining, OwnerID: "orks", Version: 1})
	store.SeedPlanet(galaxy.Planet{ID: "p4", Type: galaxy.PlanetForge, Version: 1}) // unowned

	out, err := uc.AdvanceTurn(context.Background())
	if err != nil {
		t.Fatalf("advance error: %v", err)
	}

	state, _ := uc.StateRepo.Get(context.Background())
	// Agri (+1 req, +4 food) plus cursed (-2 req, -1 faith).
	if got := state.Wallet.Get("imperium", galaxy.ResourceRequisition); got != -1 {
		t.Fatalf("imperium requisition mismatch: got=%d want=-1", got)
	}
	if got := state.Wallet.Get("imperium", galaxy.ResourceFood); got != 4 {
		t.Fatalf("imperium food mismatch: got=%d want=4", got)
	}
	if got := state.Wallet.Get("imperium", galaxy.ResourceFaith); got != -1 {
		t.Fatalf("imperium faith mismatch: got=%d want=-1", got)
	}
	if got := state.Wallet.Get("orks", galaxy.ResourceOre); got != 4 {
		t.Fatalf("orks ore mismatch: got=%d want=4", got)
	}
	if got := out.Harvest["imperium"][galaxy.ResourceFood]; got != 4 {
		t.Fatalf("harvest summary mismatch: got=%d want=4", got)
	}
	if _, ok := out.Harvest["unowned"]; ok {
		t.Fatalf("unowned planets must not harvest")
	}
}

func TestAdvanceTurn_HarvestDeterministic(t *testing.T) {
	build := func() UseCase {
		uc, store := newFixture(t)
		store.SeedPlanet(galaxy.Planet{
			ID: "p1", Type: galaxy.PlanetMining, OwnerID: "imperium",
			Modifiers: galaxy.Modifiers{FlatBonus: map[string]int{galaxy.ResourceOre: 2}, YieldPercent: 50, DoubleYield: true},
			Version:   1,
		})
		return uc
	}
	first, err := build().AdvanceTurn(context.Background())
	if err != nil {
		t.Fatalf("advance error: %v", err)
	}
	second, err := build().AdvanceTurn(context.Background())
	if err != nil {
		t.Fatalf("advance error: %v", err)
	}
	for resourceID, amount := range first.Harvest["imperium"] {
		if second.Harvest["imperium"][resourceID] != amount {
			t.Fatalf("harvest not deterministic for %s", resourceID)
		}
	}
}

func TestAdvanceTurn_CooldownsDecrement(t *testing.T) {
	uc, _ := newFixture(t)
	state, _ := uc.StateRepo.Get(context.Background())
	state.Cooldowns.Set("imperium", campaign.StratagemShield, 2)
	seedState(t, uc, state)

	if _, err := uc.AdvanceTurn(context.Background()); err != nil {
		t.Fatalf("advance error: %v", err)
	}
	after, _ := uc.StateRepo.Get(context.Background())
	if got := after.Cooldowns.Remaining("imperium", campaign.StratagemShield); got != 1 {
		t.Fatalf("cooldown mismatch: got=%d want=1", got)
	}

	if _, err := uc.AdvanceTurn(context.Background()); err != nil {
		t.Fatalf("advance error: %v", err)
	}
	after, _ = uc.StateRepo.Get(context.Background())
	if got := after.Cooldowns.Remaining("imperium", campaign.StratagemShield); got != 0 {
		t.Fatalf("cooldown should be gone: got=%d", got)
	}
}

func TestAdvanceTurn_ExpiredExterminatusDestroysPlanet(t *testing.T) {
	uc, store := newFixture(t)
	state, _ := uc.StateRepo.Get(context.Background())
	state.Events.Add(campaign.EventExterminatus, "p1", 1, 0, "")
	seedState(t, uc, state)
	store.SeedPlanet(galaxy.Planet{ID: "p1", Type: galaxy.PlanetHive, OwnerID: "orks", Version: 1})

	if _, err := uc.AdvanceTurn(context.Background()); err != nil {
		t.Fatalf("advance error: %v", err)
	}
	planet, _ := memory.NewPlanetRepo(store).GetByID(context.Background(), "p1")
	if !planet.Destroyed || planet.OwnerID != "" {
		t.Fatalf("expected destroyed planet, got %+v", planet)
	}
	// No harvest for a planet destroyed this turn onwards.
	state, _ = uc.StateRepo.Get(context.Background())
	if got := state.Wallet.Get("orks", galaxy.ResourceRequisition); got != 0 {
		t.Fatalf("destroyed planet must not harvest: got=%d", got)
	}
}

func TestAdvanceTurn_OrderCompletionAndExpiry(t *testing.T) {
	uc, store := newFixture(t)
	store.SeedPlanet(galaxy.Planet{ID: "p1", Type: galaxy.PlanetAgri, OwnerID: "imperium", Version: 1})
	store.SeedPlanet(galaxy.Planet{ID: "p2", Type: galaxy.PlanetAgri, OwnerID: "orks", Version: 1})

	state, _ := uc.StateRepo.Get(context.Background())
	state.Order = &campaign.Order{
		ID: "o1", Name: "Claim the Stars", TargetCount: 2, TurnsLeft: 5,
		Reward: map[string]int{"requisition": 5}, Status: campaign.OrderActive,
	}
	seedState(t, uc, state)

	out, err := uc.AdvanceTurn(context.Background())
	if err != nil {
		t.Fatalf("advance error: %v", err)
	}
	if out.Order == nil || !out.Order.Completed {
		t.Fatalf("expected completed order, got %+v", out.Order)
	}
	if out.Order.Reward["requisition"] != 5 {
		t.Fatalf("completion must surface the reward")
	}

	// Expiry path: unreachable target, one turn left.
	state, _ = uc.StateRepo.Get(context.Background())
	state.Order = &campaign.Order{
		ID: "o2", Name: "Impossible Demand", TargetCount: 50, TurnsLeft: 1,
		Reward: map[string]int{"faith": 2}, Status: campaign.OrderActive,
	}
	seedState(t, uc, state)

	out, err = uc.AdvanceTurn(context.Background())
	if err != nil {
		t.Fatalf("advance error: %v", err)
	}
	if out.Order == nil || out.Order.Completed {
		t.Fatalf("expected expired order, got %+v", out.Order)
	}
	if out.Order.Reward["faith"] != 2 {
		t.Fatalf("expiry must surface the reward too")
	}
}

func seedState(t *testing.T, uc UseCase, state campaign.State) {
	t.Helper()
	expected := state.Version
	state.Version = expected + 1
	if err := uc.StateRepo.SaveWithVersion(context.Background(), state, expected); err != nil {
		t.Fatalf("seed state: %v", err)
	}
}
