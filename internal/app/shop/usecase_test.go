package shop

import (
	"context"
	"testing"

	"crusade/internal/adapter/repo/memory"
	"crusade/internal/domain/campaign"
	"crusade/internal/domain/galaxy"
)

type stubFactions struct{}

func (stubFactions) Exists(factionID string) bool {
	return factionID == "imperium" || factionID == "orks"
}

func (stubFactions) IDs() []string { return []string{"imperium", "orks"} }

func newFixture(t *testing.T, wallet campaign.Wallet) (UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	state := campaign.NewState()
	for factionID, balances := range wallet {
		for resourceID, amount := range balances {
			state.Wallet.Credit(factionID, resourceID, amount)
		}
	}
	store.SeedState(state)
	store.SeedPlanet(galaxy.Planet{ID: "p1", Name: "Armageddon", Type: galaxy.PlanetHive, OwnerID: "imperium", ValueOne: 5, Version: 1})
	store.SeedPlanet(galaxy.Planet{ID: "p2", Name: "Gorkog", Type: galaxy.PlanetMining, OwnerID: "orks", ValueOne: 4, Version: 1})
	store.SeedPlanet(galaxy.Planet{ID: "p3", Name: "Baal", Type: galaxy.PlanetShrine, Version: 1})

	uc := UseCase{
		TxManager:  memory.NewTxManager(store),
		StateRepo:  memory.NewCampaignStateRepo(store),
		PlanetRepo: memory.NewPlanetRepo(store),
		Factions:   stubFactions{},
	}
	return uc, store
}

func walletSnapshot(t *testing.T, uc UseCase, factionID string) map[string]int {
	t.Helper()
	state, err := uc.StateRepo.Get(context.Background())
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	return state.Wallet.Balances(factionID)
}

func TestPurchase_UnknownItem(t *testing.T) {
	uc, _ := newFixture(t, campaign.Wallet{"imperium": {"requisition": 10}})

	out, err := uc.Purchase(context.Background(), Request{FactionID: "imperium", ItemID: "nope"})
	if err != nil {
		t.Fatalf("purchase error: %v", err)
	}
	if out.OK {
		t.Fatalf("expected rejection for unknown item")
	}
	if got := walletSnapshot(t, uc, "imperium")["requisition"]; got != 10 {
		t.Fatalf("wallet must be untouched: got=%d want=10", got)
	}
}

func TestPurchase_InsufficientResourcesLeavesWalletUntouched(t *testing.T) {
	uc, _ := newFixture(t, campaign.Wallet{"imperium": {"requisition": 2}})

	out, err := uc.Purchase(context.Background(), Request{FactionID: "imperium", ItemID: campaign.ItemTradeHub, TargetPlanetID: "p1"})
	if err != nil {
		t.Fatalf("purchase error: %v", err)
	}
	if out.OK {
		t.Fatalf("expected rejection: cost 4, balance 2")
	}
	if got := walletSnapshot(t, uc, "imperium")["requisition"]; got != 2 {
		t.Fatalf("wallet changed on failed purchase: got=%d want=2", got)
	}
}

func TestPurchase_DeployShipDebitsExactCost(t *testing.T) {
	uc, store := newFixture(t, campaign.Wallet{"imperium": {"requisition": 3, "promethium": 1}})

	out, err := uc.Purchase(context.Background(), Request{FactionID: "imperium", ItemID: campaign.ItemDeployShip, TargetPlanetID: "p1"})
	if err != nil {
		t.Fatalf("purchase error: %v", err)
	}
	if !out.OK {
		t.Fatalf("expected success, got %q", out.Message)
	}
	if out.CreatedShipID == "" {
		t.Fatalf("expected a created ship id")
	}

	balances := walletSnapshot(t, uc, "imperium")
	if balances["requisition"] != 0 || balances["promethium"] != 0 {
		t.Fatalf("exact-cost debit mismatch: %v", balances)
	}

	planet, err := memory.NewPlanetRepo(store).GetByID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("load planet: %v", err)
	}
	if len(planet.Ships) != 1 || planet.Ships[0].FactionID != "imperium" {
		t.Fatalf("expected one imperial ship, got %+v", planet.Ships)
	}
}

func TestPurchase_TargetValidation(t *testing.T) {
	cases := []struct {
		name   string
		req    Request
		reason string
	}{
		{"missing target", Request{FactionID: "imperium", ItemID: campaign.ItemDeployShip}, ErrTargetRequired.Error()},
		{"unknown planet", Request{FactionID: "imperium", ItemID: campaign.ItemDeployShip, TargetPlanetID: "px"}, ErrUnknownPlanet.Error()},
		{"not owned", Request{FactionID: "imperium", ItemID: campaign.ItemDeployShip, TargetPlanetID: "p2"}, ErrNotOwned.Error()},
		{"hostile item on own planet", Request{FactionID: "imperium", ItemID: campaign.ItemSabotage, TargetPlanetID: "p1"}, ErrOwnTarget.Error()},
		{"unknown faction", Request{FactionID: "eldar", ItemID: campaign.ItemDeployShip, TargetPlanetID: "p1"}, ErrUnknownFaction.Error()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newFixture(t, campaign.Wallet{
				"imperium": {"requisition": 20, "promethium": 5, "intel": 5},
				"eldar":    {"requisition": 20, "promethium": 5},
			})
			out, err := uc.Purchase(context.Background(), tc.req)
			if err != nil {
				t.Fatalf("purchase error: %v", err)
			}
			if out.OK {
				t.Fatalf("expected rejection")
			}
			if out.Message != tc.reason {
				t.Fatalf("message mismatch: got=%q want=%q", out.Message, tc.reason)
			}
			if got := walletSnapshot(t, uc, tc.req.FactionID)["requisition"]; got != 20 && tc.req.FactionID != "eldar" {
				t.Fatalf("wallet changed on rejection: got=%d", got)
			}
		})
	}
}

func TestPurchase_SabotageHitsHostilePlanet(t *testing.T) {
	uc, store := newFixture(t, campaign.Wallet{"imperium": {"intel": 2}})

	out, err := uc.Purchase(context.Background(), Request{FactionID: "imperium", ItemID: campaign.ItemSabotage, TargetPlanetID: "p2"})
	if err != nil {
		t.Fatalf("purchase error: %v", err)
	}
	if !out.OK {
		t.Fatalf("expected success, got %q", out.Message)
	}
	planet, _ := memory.NewPlanetRepo(store).GetByID(context.Background(), "p2")
	if planet.ValueOne != 2 {
		t.Fatalf("sabotage value mismatch: got=%d want=2", planet.ValueOne)
	}
}

func TestPurchase_SuperWeaponDestroysHostilePlanet(t *testing.T) {
	uc, store := newFixture(t, campaign.Wallet{"imperium": {"requisition": 10, "tech": 5, "promethium": 5}})

	out, err := uc.Purchase(context.Background(), Request{FactionID: "imperium", ItemID: campaign.ItemSuperWeapon, TargetPlanetID: "p2"})
	if err != nil {
		t.Fatalf("purchase error: %v", err)
	}
	if !out.OK {
		t.Fatalf("expected success, got %q", out.Message)
	}
	planet, _ := memory.NewPlanetRepo(store).GetByID(context.Background(), "p2")
	if !planet.Destroyed || planet.OwnerID != "" {
		t.Fatalf("expected destroyed, unowned planet: %+v", planet)
	}
}

func TestPurchase_TwoPhaseWarpBeacon(t *testing.T) {
	uc, store := newFixture(t, campaign.Wallet{"imperium": {"requisition": 5, "tech": 3}})

	out, err := uc.Purchase(context.Background(), Request{FactionID: "imperium", ItemID: campaign.ItemWarpBeacon, TargetPlanetID: "p1"})
	if err != nil {
		t.Fatalf("phase one error: %v", err)
	}
	if !out.OK || !out.RequiresSecondPlanet || out.FirstPlanetID != "p1" {
		t.Fatalf("phase one mismatch: %+v", out)
	}
	// Cost debited up front, no edge yet.
	if got := walletSnapshot(t, uc, "imperium")["requisition"]; got != 0 {
		t.Fatalf("phase one debit mismatch: got=%d want=0", got)
	}
	p1, _ := memory.NewPlanetRepo(store).GetByID(context.Background(), "p1")
	if p1.ConnectedTo("p2") {
		t.Fatalf("edge must not exist before phase two")
	}

	done, err := uc.CompleteTwoPlanetPurchase(context.Background(), CompleteRequest{
		FactionID: "imperium", ItemID: campaign.ItemWarpBeacon, PlanetOne: "p1", PlanetTwo: "p2",
	})
	if err != nil {
		t.Fatalf("phase two error: %v", err)
	}
	if !done.OK {
		t.Fatalf("phase two rejected: %q", done.Message)
	}
	p1, _ = memory.NewPlanetRepo(store).GetByID(context.Background(), "p1")
	p2, _ := memory.NewPlanetRepo(store).GetByID(context.Background(), "p2")
	if !p1.ConnectedTo("p2") || !p2.ConnectedTo("p1") {
		t.Fatalf("expected symmetric edge after completion")
	}

	// The pending record is consumed.
	again, err := uc.CompleteTwoPlanetPurchase(context.Background(), CompleteRequest{
		FactionID: "imperium", ItemID: campaign.ItemWarpBeacon, PlanetOne: "p1", PlanetTwo: "p3",
	})
	if err != nil {
		t.Fatalf("repeat completion error: %v", err)
	}
	if again.OK || again.Message != ErrNoPendingPurchase.Error() {
		t.Fatalf("expected no-pending rejection, got %+v", again)
	}
}

func TestCompleteTwoPlanetPurchase_WithoutPriorStepFails(t *testing.T) {
	uc, _ := newFixture(t, campaign.Wallet{"imperium": {"requisition": 5}})

	out, err := uc.CompleteTwoPlanetPurchase(context.Background(), CompleteRequest{
		FactionID: "imperium", ItemID: campaign.ItemWarpBeacon, PlanetOne: "p1", PlanetTwo: "p2",
	})
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if out.OK || out.Message != ErrNoPendingPurchase.Error() {
		t.Fatalf("expected clean failure, got %+v", out)
	}
}

func TestUseStratagem_CooldownWindow(t *testing.T) {
	uc, _ := newFixture(t, campaign.Wallet{"imperium": {"requisition": 10}})

	out, err := uc.UseStratagem(context.Background(), Request{FactionID: "imperium", ItemID: campaign.StratagemShield, TargetPlanetID: "p1"})
	if err != nil {
		t.Fatalf("stratagem error: %v", err)
	}
	if !out.OK || out.CooldownTurns != 3 {
		t.Fatalf("first use mismatch: %+v", out)
	}

	// Blocked while the cooldown holds.
	blocked, err := uc.UseStratagem(context.Background(), Request{FactionID: "imperium", ItemID: campaign.StratagemShield, TargetPlanetID: "p1"})
	if err != nil {
		t.Fatalf("stratagem error: %v", err)
	}
	if blocked.OK {
		t.Fatalf("expected cooldown rejection")
	}

	// Simulate three turn advances worth of cooldown decrement.
	state, _ := uc.StateRepo.Get(context.Background())
	for i := 0; i < 3; i++ {
		if i < 2 && state.Cooldowns.Remaining("imperium", campaign.StratagemShield) == 0 {
			t.Fatalf("cooldown lapsed early at decrement %d", i)
		}
		state.Cooldowns.TickDown()
	}
	version := state.Version
	state.Version = version + 1
	if err := uc.StateRepo.SaveWithVersion(context.Background(), state, version); err != nil {
		t.Fatalf("save state: %v", err)
	}

	again, err := uc.UseStratagem(context.Background(), Request{FactionID: "imperium", ItemID: campaign.StratagemShield, TargetPlanetID: "p1"})
	if err != nil {
		t.Fatalf("stratagem error: %v", err)
	}
	if !again.OK {
		t.Fatalf("expected reuse after cooldown, got %q", again.Message)
	}
}

func TestUseStratagem_RejectsShopItem(t *testing.T) {
	uc, _ := newFixture(t, campaign.Wallet{"imperium": {"requisition": 10, "promethium": 5}})

	out, err := uc.UseStratagem(context.Background(), Request{FactionID: "imperium", ItemID: campaign.ItemDeployShip, TargetPlanetID: "p1"})
	if err != nil {
		t.Fatalf("stratagem error: %v", err)
	}
	if out.OK || out.Message != ErrNotAStratagem.Error() {
		t.Fatalf("expected not-a-stratagem rejection, got %+v", out)
	}

	viaShop, err := uc.Purchase(context.Background(), Request{FactionID: "imperium", ItemID: campaign.StratagemShield, TargetPlanetID: "p1"})
	if err != nil {
		t.Fatalf("purchase error: %v", err)
	}
	if viaShop.OK || viaShop.Message != ErrStratagemViaShop.Error() {
		t.Fatalf("expected shop rejection for stratagem, got %+v", viaShop)
	}
}

func TestUseStratagem_WarpSurgeSpawnsBlockade(t *testing.T) {
	uc, _ := newFixture(t, campaign.Wallet{"imperium": {"tech": 2, "faith": 1}})

	out, err := uc.UseStratagem(context.Background(), Request{FactionID: "imperium", ItemID: campaign.StratagemWarpSurge, TargetPlanetID: "p2"})
	if err != nil {
		t.Fatalf("stratagem error: %v", err)
	}
	if !out.OK || out.SpawnedEventID == "" {
		t.Fatalf("expected spawned event, got %+v", out)
	}
	state, _ := uc.StateRepo.Get(context.Background())
	if !state.Events.IsRouteBlocked("p2", "p1") {
		t.Fatalf("expected blockade on p2")
	}
}

func TestPurchase_InfiltrateStealsIntel(t *testing.T) {
	uc, _ := newFixture(t, campaign.Wallet{
		"imperium": {"requisition": 1, "intel": 1},
		"orks":     {"intel": 3},
	})

	out, err := uc.Purchase(context.Background(), Request{FactionID: "imperium", ItemID: campaign.ItemInfiltrate, TargetPlanetID: "p2"})
	if err != nil {
		t.Fatalf("purchase error: %v", err)
	}
	if !out.OK {
		t.Fatalf("expected success, got %q", out.Message)
	}
	// Cost intel 1 debited, then 1 stolen back: net 1.
	if got := walletSnapshot(t, uc, "imperium")["intel"]; got != 1 {
		t.Fatalf("buyer intel mismatch: got=%d want=1", got)
	}
	if got := walletSnapshot(t, uc, "orks")["intel"]; got != 2 {
		t.Fatalf("victim intel mismatch: got=%d want=2", got)
	}
}
