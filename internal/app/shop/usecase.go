package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"crusade/internal/app/ports"
	"crusade/internal/domain/campaign"
	"crusade/internal/domain/galaxy"
)

var (
	ErrInvalidRequest        = errors.New("invalid purchase request")
	ErrUnknownFaction        = errors.New("unknown faction")
	ErrUnknownItem           = errors.New("unknown item")
	ErrNotAStratagem         = errors.New("item is not a stratagem")
	ErrStratagemViaShop      = errors.New("stratagems are activated, not purchased")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrTargetRequired        = errors.New("target planet required")
	ErrUnknownPlanet         = errors.New("unknown planet")
	ErrPlanetDestroyed       = errors.New("planet is destroyed")
	ErrNotOwned              = errors.New("target planet not owned by faction")
	ErrOwnTarget             = errors.New("target planet owned by faction")
	ErrAlreadyApplied        = errors.New("upgrade already applied")
	ErrCooldownActive        = errors.New("stratagem on cooldown")
	ErrNoPendingPurchase     = errors.New("no pending two-phase purchase")
	ErrRouteExists           = errors.New("route already exists")
)

// CooldownActiveError carries the remaining turns alongside the sentinel.
type CooldownActiveError struct {
	StratagemID string
	Remaining   int
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("stratagem %s on cooldown for %d more turns", e.StratagemID, e.Remaining)
}

func (e *CooldownActiveError) Unwrap() error { return ErrCooldownActive }

const (
	opPurchase  = "purchase"
	opStratagem = "stratagem"
	opComplete  = "complete_purchase"
)

// UseCase is the transaction engine: it validates and applies shop purchases
// and stratagem activations atomically against the campaign state and the
// planet set.
type UseCase struct {
	TxManager  ports.TxManager
	StateRepo  ports.CampaignStateRepository
	PlanetRepo ports.PlanetRepository
	Catalog    ports.ShopCatalog
	Factions   ports.FactionCatalog
	Metrics    ports.CampaignMetrics
}

// Purchase runs the one-shot shop pipeline. Validation failures come back as
// Response{OK:false} with no state mutated; only infrastructure problems are
// returned as errors.
func (u UseCase) Purchase(ctx context.Context, req Request) (Response, error) {
	return u.run(ctx, opPurchase, func(txCtx context.Context) (Response, error) {
		return u.purchaseTx(txCtx, req)
	})
}

// UseStratagem runs the same pipeline gated by the per-faction cooldown and
// sets the cooldown on success.
func (u UseCase) UseStratagem(ctx context.Context, req Request) (Response, error) {
	return u.run(ctx, opStratagem, func(txCtx context.Context) (Response, error) {
		return u.stratagemTx(txCtx, req)
	})
}

// CompleteTwoPlanetPurchase finishes a pending two-phase purchase by adding
// the static route between the two planets.
func (u UseCase) CompleteTwoPlanetPurchase(ctx context.Context, req CompleteRequest) (Response, error) {
	return u.run(ctx, opComplete, func(txCtx context.Context) (Response, error) {
		return u.completeTx(txCtx, req)
	})
}

func (u UseCase) run(ctx context.Context, op string, fn func(ctx context.Context) (Response, error)) (Response, error) {
	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		out, err = fn(txCtx)
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
		if out.OK {
			u.Metrics.RecordSuccess(op)
		} else {
			u.Metrics.RecordRejection(op)
		}
	}
	return out, nil
}

func (u UseCase) purchaseTx(ctx context.Context, req Request) (Response, error) {
	item, ok := u.lookupItem(req.ItemID)
	if !ok {
		return rejected(ErrUnknownItem), nil
	}
	if item.Stratagem() {
		return rejected(ErrStratagemViaShop), nil
	}

	pc, state, version, reject, err := u.prepare(ctx, req, item)
	if err != nil {
		return Response{}, err
	}
	if reject != nil {
		return rejected(reject), nil
	}

	if item.TwoPlanet {
		// Phase one: debit now, remember the first planet, touch nothing else.
		debitCost(state, req.FactionID, item.Cost)
		state.Pending = append(state.Pending, campaign.PendingPurchase{
			ID:            uuid.NewString(),
			FactionID:     req.FactionID,
			ItemID:        item.ID,
			FirstPlanetID: req.TargetPlanetID,
		})
		if err := u.saveState(ctx, state, version); err != nil {
			return Response{}, err
		}
		return Response{
			OK:                   true,
			Message:              "select the second planet to anchor the route",
			ItemID:               item.ID,
			FactionID:            req.FactionID,
			RequiresSecondPlanet: true,
			FirstPlanetID:        req.TargetPlanetID,
			Wallet:               state.Wallet.Balances(req.FactionID),
		}, nil
	}

	spec, ok := itemRegistry()[item.ID]
	if !ok {
		return rejected(ErrUnknownItem), nil
	}
	if err := spec.Handler.Precheck(pc); err != nil {
		return rejected(err), nil
	}

	debitCost(state, req.FactionID, item.Cost)
	if err := spec.Handler.Apply(pc); err != nil {
		return Response{}, err
	}
	if err := u.persist(ctx, pc, state, version); err != nil {
		return Response{}, err
	}
	return resolved(req, item, pc), nil
}

func (u UseCase) stratagemTx(ctx context.Context, req Request) (Response, error) {
	item, ok := u.lookupItem(req.ItemID)
	if !ok {
		return rejected(ErrUnknownItem), nil
	}
	if !item.Stratagem() {
		return rejected(ErrNotAStratagem), nil
	}

	pc, state, version, reject, err := u.prepare(ctx, req, item)
	if err != nil {
		return Response{}, err
	}
	if reject != nil {
		return rejected(reject), nil
	}
	if remaining := state.Cooldowns.Remaining(req.FactionID, item.ID); remaining > 0 {
		return rejected(&CooldownActiveError{StratagemID: item.ID, Remaining: remaining}), nil
	}

	spec, ok := itemRegistry()[item.ID]
	if !ok {
		return rejected(ErrUnknownItem), nil
	}
	if err := spec.Handler.Precheck(pc); err != nil {
		return rejected(err), nil
	}

	debitCost(state, req.FactionID, item.Cost)
	state.Cooldowns.Set(req.FactionID, item.ID, item.Cooldown)
	if err := spec.Handler.Apply(pc); err != nil {
		return Response{}, err
	}
	if err := u.persist(ctx, pc, state, version); err != nil {
		return Response{}, err
	}
	out := resolved(req, item, pc)
	out.CooldownTurns = item.Cooldown
	return out, nil
}

func (u UseCase) completeTx(ctx context.Context, req CompleteRequest) (Response, error) {
	state, err := u.StateRepo.Get(ctx)
	if err != nil {
		return Response{}, err
	}
	version := state.Version

	// Validate before consuming the pending record so a bad second planet can
	// be retried.
	pending, found := findPending(state, req.FactionID, req.ItemID, req.PlanetOne)
	if !found {
		return rejected(ErrNoPendingPurchase), nil
	}
	if req.PlanetTwo == "" || req.PlanetTwo == pending.FirstPlanetID {
		return rejected(ErrUnknownPlanet), nil
	}
	planets, err := u.loadPlanets(ctx)
	if err != nil {
		return Response{}, err
	}
	for _, id := range []string{req.PlanetOne, req.PlanetTwo} {
		p, ok := planets[id]
		if !ok {
			return rejected(ErrUnknownPlanet), nil
		}
		if p.Destroyed {
			return rejected(ErrPlanetDestroyed), nil
		}
	}

	graph := galaxy.Graph{Planets: planets, Events: &state.Events}
	if !graph.AddConnection(req.PlanetOne, req.PlanetTwo) {
		return rejected(ErrRouteExists), nil
	}
	state.RemovePending(pending.ID)

	for _, id := range []string{req.PlanetOne, req.PlanetTwo} {
		planets[id].Version++
		if err := u.PlanetRepo.Save(ctx, *planets[id]); err != nil {
			return Response{}, err
		}
	}
	if err := u.saveState(ctx, &state, version); err != nil {
		return Response{}, err
	}
	return Response{
		OK:             true,
		Message:        fmt.Sprintf("permanent route opened between %s and %s", planets[req.PlanetOne].Name, planets[req.PlanetTwo].Name),
		ItemID:         req.ItemID,
		FactionID:      req.FactionID,
		MutatedPlanets: []string{req.PlanetOne, req.PlanetTwo},
	}, nil
}

// prepare runs the generic pipeline checks shared by purchases and
// stratagems: faction, affordability and target validation. A non-nil reject
// means the request fails with no mutation.
func (u UseCase) prepare(ctx context.Context, req Request, item campaign.Item) (*PurchaseContext, *campaign.State, int64, error, error) {
	if strings.TrimSpace(req.FactionID) == "" {
		return nil, nil, 0, ErrInvalidRequest, nil
	}
	if u.Factions != nil && !u.Factions.Exists(req.FactionID) {
		return nil, nil, 0, ErrUnknownFaction, nil
	}

	state, err := u.StateRepo.Get(ctx)
	if err != nil {
		return nil, nil, 0, nil, err
	}
	version := state.Version

	if !state.Wallet.CanAfford(req.FactionID, item.Cost) {
		return nil, nil, 0, ErrInsufficientResources, nil
	}

	planets, err := u.loadPlanets(ctx)
	if err != nil {
		return nil, nil, 0, nil, err
	}

	pc := &PurchaseContext{
		FactionID: req.FactionID,
		Item:      item,
		State:     &state,
		Planets:   planets,
		Graph:     galaxy.Graph{Planets: planets, Events: &state.Events},
	}

	if item.TargetRequired {
		if req.TargetPlanetID == "" {
			return nil, nil, 0, ErrTargetRequired, nil
		}
		target, ok := planets[req.TargetPlanetID]
		if !ok {
			return nil, nil, 0, ErrUnknownPlanet, nil
		}
		if target.Destroyed {
			return nil, nil, 0, ErrPlanetDestroyed, nil
		}
		if item.HostileTarget {
			if target.OwnerID == req.FactionID {
				return nil, nil, 0, ErrOwnTarget, nil
			}
		} else if target.OwnerID != req.FactionID {
			return nil, nil, 0, ErrNotOwned, nil
		}
		pc.Target = target
	}

	return pc, &state, version, nil, nil
}

func (u UseCase) lookupItem(itemID string) (campaign.Item, bool) {
	if u.Catalog != nil {
		return u.Catalog.Item(itemID)
	}
	for _, item := range campaign.DefaultCatalog() {
		if item.ID == itemID {
			return item, true
		}
	}
	return campaign.Item{}, false
}

func (u UseCase) loadPlanets(ctx context.Context) (map[string]*galaxy.Planet, error) {
	list, err := u.PlanetRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*galaxy.Planet, len(list))
	for i := range list {
		out[list[i].ID] = &list[i]
	}
	return out, nil
}

func (u UseCase) persist(ctx context.Context, pc *PurchaseContext, state *campaign.State, expectedVersion int64) error {
	for _, id := range pc.Outcome.MutatedPlanets {
		planet := pc.Planets[id]
		planet.Version++
		if err := u.PlanetRepo.Save(ctx, *planet); err != nil {
			return err
		}
	}
	return u.saveState(ctx, state, expectedVersion)
}

func (u UseCase) saveState(ctx context.Context, state *campaign.State, expectedVersion int64) error {
	state.Version = expectedVersion + 1
	return u.StateRepo.SaveWithVersion(ctx, *state, expectedVersion)
}

func debitCost(state *campaign.State, factionID string, cost map[string]int) {
	for resourceID, amount := range cost {
		state.Wallet.Debit(factionID, resourceID, amount)
	}
}

func findPending(state campaign.State, factionID, itemID, firstPlanetID string) (campaign.PendingPurchase, bool) {
	for _, p := range state.Pending {
		if p.FactionID == factionID && p.ItemID == itemID && p.FirstPlanetID == firstPlanetID {
			return p, true
		}
	}
	return campaign.PendingPurchase{}, false
}

func rejected(err error) Response {
	return Response{OK: false, Message: err.Error()}
}

func resolved(req Request, item campaign.Item, pc *PurchaseContext) Response {
	return Response{
		OK:             true,
		Message:        pc.Outcome.Message,
		ItemID:         item.ID,
		FactionID:      req.FactionID,
		TargetPlanetID: req.TargetPlanetID,
		MutatedPlanets: pc.Outcome.MutatedPlanets,
		CreatedShipID:  pc.Outcome.CreatedShipID,
		SpawnedEventID: pc.Outcome.SpawnedEventID,
		Wallet:         pc.State.Wallet.Balances(req.FactionID),
	}
}
