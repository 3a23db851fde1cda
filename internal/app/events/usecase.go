package events

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"crusade/internal/app/ports"
	"crusade/internal/domain/campaign"
	"crusade/internal/domain/galaxy"
)

var (
	ErrInvalidRequest  = errors.New("invalid event request")
	ErrUnknownPlanet   = errors.New("unknown planet")
	ErrEventNotFound   = errors.New("event not found")
	ErrWormholeTarget  = errors.New("wormhole requires a distinct target planet")
	ErrNoPlanets       = errors.New("no planets to anchor an event")
	ErrSamePlanetEdge  = errors.New("cannot connect a planet to itself")
	ErrDurationInvalid = errors.New("duration must be positive or -1")
	ErrOrderInvalid    = errors.New("order needs a name, a positive target and a positive turn budget")
)

// UseCase is the GM event surface: explicit and random event creation, event
// removal and static route toggling.
type UseCase struct {
	TxManager  ports.TxManager
	StateRepo  ports.CampaignStateRepository
	PlanetRepo ports.PlanetRepository
	Rand       *rand.Rand
}

func (u UseCase) Add(ctx context.Context, req AddRequest) (EventResponse, error) {
	if strings.TrimSpace(req.Type) == "" || strings.TrimSpace(req.PlanetID) == "" {
		return EventResponse{OK: false, Message: ErrInvalidRequest.Error()}, nil
	}
	if req.Duration == 0 || req.Duration < campaign.InfiniteDuration || req.StartTurn < 0 {
		return EventResponse{OK: false, Message: ErrDurationInvalid.Error()}, nil
	}

	var out EventResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.StateRepo.Get(txCtx)
		if err != nil {
			return err
		}
		if _, err := u.PlanetRepo.GetByID(txCtx, req.PlanetID); err != nil {
			if errors.Is(err, ports.ErrNotFound) {
				out = EventResponse{OK: false, Message: ErrUnknownPlanet.Error()}
				return nil
			}
			return err
		}
		eventType := campaign.EventType(req.Type)
		if campaign.EffectForType(eventType) == campaign.EffectCreatesRoute {
			if req.TargetPlanetID == "" || req.TargetPlanetID == req.PlanetID {
				out = EventResponse{OK: false, Message: ErrWormholeTarget.Error()}
				return nil
			}
			if _, err := u.PlanetRepo.GetByID(txCtx, req.TargetPlanetID); err != nil {
				if errors.Is(err, ports.ErrNotFound) {
					out = EventResponse{OK: false, Message: ErrUnknownPlanet.Error()}
					return nil
				}
				return err
			}
		}

		evt := state.Events.Add(eventType, req.PlanetID, req.Duration, req.StartTurn, req.TargetPlanetID)
		if err := u.save(txCtx, &state); err != nil {
			return err
		}
		out = EventResponse{OK: true, Event: &evt}
		return nil
	})
	if err != nil {
		return EventResponse{}, err
	}
	return out, nil
}

func (u UseCase) Remove(ctx context.Context, eventID string) (EventResponse, error) {
	var out EventResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.StateRepo.Get(txCtx)
		if err != nil {
			return err
		}
		if !state.Events.Remove(eventID) {
			out = EventResponse{OK: false, Message: ErrEventNotFound.Error()}
			return nil
		}
		if err := u.save(txCtx, &state); err != nil {
			return err
		}
		out = EventResponse{OK: true}
		return nil
	})
	if err != nil {
		return EventResponse{}, err
	}
	return out, nil
}

// Random rolls a weighted event anchored at a random living planet.
func (u UseCase) Random(ctx context.Context) (EventResponse, error) {
	var out EventResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.StateRepo.Get(txCtx)
		if err != nil {
			return err
		}
		planets, err := u.PlanetRepo.List(txCtx)
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(planets))
		for _, p := range planets {
			if !p.Destroyed {
				ids = append(ids, p.ID)
			}
		}
		rng := u.Rand
		if rng == nil {
			rng = rand.New(rand.NewSource(state.Version))
		}
		evt, ok := state.Events.RandomEvent(rng, ids)
		if !ok {
			out = EventResponse{OK: false, Message: ErrNoPlanets.Error()}
			return nil
		}
		if err := u.save(txCtx, &state); err != nil {
			return err
		}
		out = EventResponse{OK: true, Event: &evt}
		return nil
	})
	if err != nil {
		return EventResponse{}, err
	}
	return out, nil
}

// ToggleConnection flips a static edge on the galaxy map.
func (u UseCase) ToggleConnection(ctx context.Context, req ToggleRequest) (ToggleResponse, error) {
	if req.PlanetOne == req.PlanetTwo {
		return ToggleResponse{OK: false, Message: ErrSamePlanetEdge.Error()}, nil
	}
	var out ToggleResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		list, err := u.PlanetRepo.List(txCtx)
		if err != nil {
			return err
		}
		planets := make(map[string]*galaxy.Planet, len(list))
		for i := range list {
			planets[list[i].ID] = &list[i]
		}
		graph := galaxy.Graph{Planets: planets}
		result, ok := graph.ToggleConnection(req.PlanetOne, req.PlanetTwo)
		if !ok {
			out = ToggleResponse{OK: false, Message: ErrUnknownPlanet.Error()}
			return nil
		}
		for _, id := range []string{req.PlanetOne, req.PlanetTwo} {
			planets[id].Version++
			if err := u.PlanetRepo.Save(txCtx, *planets[id]); err != nil {
				return err
			}
		}
		out = ToggleResponse{OK: true, Result: string(result)}
		return nil
	})
	if err != nil {
		return ToggleResponse{}, err
	}
	return out, nil
}

// SetOrder installs a new active Galactic Order, replacing any current one.
func (u UseCase) SetOrder(ctx context.Context, req OrderRequest) (OrderResponse, error) {
	if strings.TrimSpace(req.Name) == "" || req.TargetCount <= 0 || req.Turns <= 0 {
		return OrderResponse{OK: false, Message: ErrOrderInvalid.Error()}, nil
	}

	var out OrderResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.StateRepo.Get(txCtx)
		if err != nil {
			return err
		}
		order := campaign.Order{
			ID:          uuid.NewString(),
			Name:        req.Name,
			TargetCount: req.TargetCount,
			TurnsLeft:   req.Turns,
			Reward:      req.Reward,
			Status:      campaign.OrderActive,
		}
		state.Order = &order
		if err := u.save(txCtx, &state); err != nil {
			return err
		}
		out = OrderResponse{OK: true, Order: &order}
		return nil
	})
	if err != nil {
		return OrderResponse{}, err
	}
	return out, nil
}

func (u UseCase) save(ctx context.Context, state *campaign.State) error {
	expected := state.Version
	state.Version = expected + 1
	return u.StateRepo.SaveWithVersion(ctx, *state, expected)
}
