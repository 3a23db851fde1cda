package memory

import (
	"context"
	"encoding/json"

	"crusade/internal/app/ports"
	"crusade/internal/domain/campaign"
)

type CampaignStateRepo struct {
	store *Store
}

func NewCampaignStateRepo(store *Store) CampaignStateRepo {
	return CampaignStateRepo{store: store}
}

func (r CampaignStateRepo) Get(_ context.Context) (campaign.State, error) {
	if !r.store.hasState {
		return campaign.State{}, ports.ErrNotFound
	}
	return cloneState(r.store.state), nil
}

func (r CampaignStateRepo) SaveWithVersion(_ context.Context, state campaign.State, expectedVersion int64) error {
	if !r.store.hasState {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.state = cloneState(state)
		r.store.hasState = true
		return nil
	}
	if r.store.state.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.state = cloneState(state)
	return nil
}

// cloneState deep-copies through JSON so callers never alias the stored maps.
// The persisted shape is exactly the wire shape, so this also keeps the
// round-trip contract honest.
func cloneState(state campaign.State) campaign.State {
	b, err := json.Marshal(state)
	if err != nil {
		panic("memory: marshal campaign state: " + err.Error())
	}
	var out campaign.State
	if err := json.Unmarshal(b, &out); err != nil {
		panic("memory: unmarshal campaign state: " + err.Error())
	}
	if out.Wallet == nil {
		out.Wallet = campaign.Wallet{}
	}
	if out.Cooldowns == nil {
		out.Cooldowns = campaign.CooldownTable{}
	}
	return out
}
