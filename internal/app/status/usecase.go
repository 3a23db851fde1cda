package status

import (
	"context"
	"errors"
	"sort"

	"crusade/internal/app/ports"
	"crusade/internal/domain/campaign"
	"crusade/internal/domain/galaxy"
)

var ErrUnknownPlanet = errors.New("unknown planet")

// UseCase serves read-only campaign snapshots to the GM layer.
type UseCase struct {
	StateRepo  ports.CampaignStateRepository
	PlanetRepo ports.PlanetRepository
}

func (u UseCase) Execute(ctx context.Context) (Response, error) {
	state, err := u.StateRepo.Get(ctx)
	if err != nil {
		return Response{}, err
	}
	planets, err := u.PlanetRepo.List(ctx)
	if err != nil {
		return Response{}, err
	}

	events := make([]EventView, 0, len(state.Events.Events))
	for _, evt := range state.Events.All() {
		events = append(events, EventView{Event: evt, State: eventState(evt)})
	}

	return Response{
		Turn:      state.Turn,
		Wallets:   state.Wallet,
		Cooldowns: state.Cooldowns,
		Order:     state.Order,
		Events:    events,
		Planets:   planets,
	}, nil
}

// Events returns events filtered by planet and effect; empty filters match
// everything.
func (u UseCase) Events(ctx context.Context, planetID, effect string) ([]EventView, error) {
	state, err := u.StateRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	out := []EventView{}
	for _, evt := range state.Events.All() {
		if planetID != "" && evt.PlanetID != planetID && evt.TargetPlanetID != planetID {
			continue
		}
		if effect != "" && string(evt.Effect) != effect {
			continue
		}
		out = append(out, EventView{Event: evt, State: eventState(evt)})
	}
	return out, nil
}

// MoveTargets lists the valid one-hop destinations from a planet under the
// current blockades and wormholes.
func (u UseCase) MoveTargets(ctx context.Context, planetID string) (MoveTargetsResponse, error) {
	state, err := u.StateRepo.Get(ctx)
	if err != nil {
		return MoveTargetsResponse{}, err
	}
	list, err := u.PlanetRepo.List(ctx)
	if err != nil {
		return MoveTargetsResponse{}, err
	}
	planets := make(map[string]*galaxy.Planet, len(list))
	for i := range list {
		planets[list[i].ID] = &list[i]
	}
	if _, ok := planets[planetID]; !ok {
		return MoveTargetsResponse{}, ErrUnknownPlanet
	}

	graph := galaxy.Graph{Planets: planets, Events: &state.Events}
	targets := make([]string, 0)
	for id := range graph.ValidMoveTargets(planetID) {
		targets = append(targets, id)
	}
	sort.Strings(targets)
	return MoveTargetsResponse{PlanetID: planetID, Targets: targets}, nil
}

func eventState(evt campaign.Event) string {
	switch {
	case evt.Waiting():
		return "waiting"
	case evt.Active():
		return "active"
	default:
		return "expired"
	}
}
