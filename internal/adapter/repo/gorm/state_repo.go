package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"crusade/internal/adapter/repo/gorm/model"
	"crusade/internal/app/ports"
	"crusade/internal/domain/campaign"
)

// campaignRowID pins the aggregate to one row; the tracker runs one campaign
// per database.
const campaignRowID = "campaign"

type CampaignStateRepo struct {
	db *gorm.DB
}

func NewCampaignStateRepo(db *gorm.DB) CampaignStateRepo {
	return CampaignStateRepo{db: db}
}

func (r CampaignStateRepo) Get(ctx context.Context) (campaign.State, error) {
	var m model.CampaignState
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", campaignRowID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return campaign.State{}, ports.ErrNotFound
		}
		return campaign.State{}, err
	}
	return decodeState(m)
}

func (r CampaignStateRepo) SaveWithVersion(ctx context.Context, state campaign.State, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	m, err := encodeState(state)
	if err != nil {
		return err
	}
	if expectedVersion == 0 {
		return db.Create(&m).Error
	}
	res := db.Model(&model.CampaignState{}).
		Where("id = ? AND version = ?", campaignRowID, expectedVersion).
		Updates(map[string]any{
			"turn":      m.Turn,
			"events":    m.Events,
			"wallet":    m.Wallet,
			"cooldowns": m.Cooldowns,
			"order_doc": m.OrderDoc,
			"pending":   m.Pending,
			"version":   m.Version,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func encodeState(state campaign.State) (model.CampaignState, error) {
	events, err := json.Marshal(state.Events.Events)
	if err != nil {
		return model.CampaignState{}, fmt.Errorf("encode events: %w", err)
	}
	wallet, err := json.Marshal(state.Wallet)
	if err != nil {
		return model.CampaignState{}, fmt.Errorf("encode wallet: %w", err)
	}
	cooldowns, err := json.Marshal(state.Cooldowns)
	if err != nil {
		return model.CampaignState{}, fmt.Errorf("encode cooldowns: %w", err)
	}
	var orderDoc []byte
	if state.Order != nil {
		if orderDoc, err = json.Marshal(state.Order); err != nil {
			return model.CampaignState{}, fmt.Errorf("encode order: %w", err)
		}
	}
	pending, err := json.Marshal(state.Pending)
	if err != nil {
		return model.CampaignState{}, fmt.Errorf("encode pending: %w", err)
	}
	return model.CampaignState{
		ID:        campaignRowID,
		Turn:      state.Turn,
		Events:    events,
		Wallet:    wallet,
		Cooldowns: cooldowns,
		OrderDoc:  orderDoc,
		Pending:   pending,
		Version:   state.Version,
	}, nil
}

func decodeState(m model.CampaignState) (campaign.State, error) {
	state := campaign.State{
		Turn:      m.Turn,
		Wallet:    campaign.Wallet{},
		Cooldowns: campaign.CooldownTable{},
		Version:   m.Version,
	}
	if len(m.Events) > 0 {
		if err := json.Unmarshal(m.Events, &state.Events.Events); err != nil {
			return campaign.State{}, fmt.Errorf("decode events: %w", err)
		}
	}
	if len(m.Wallet) > 0 {
		if err := json.Unmarshal(m.Wallet, &state.Wallet); err != nil {
			return campaign.State{}, fmt.Errorf("decode wallet: %w", err)
		}
	}
	if len(m.Cooldowns) > 0 {
		if err := json.Unmarshal(m.Cooldowns, &state.Cooldowns); err != nil {
			return campaign.State{}, fmt.Errorf("decode cooldowns: %w", err)
		}
	}
	if len(m.OrderDoc) > 0 {
		state.Order = &campaign.Order{}
		if err := json.Unmarshal(m.OrderDoc, state.Order); err != nil {
			return campaign.State{}, fmt.Errorf("decode order: %w", err)
		}
	}
	if len(m.Pending) > 0 {
		if err := json.Unmarshal(m.Pending, &state.Pending); err != nil {
			return campaign.State{}, fmt.Errorf("decode pending: %w", err)
		}
	}
	return state, nil
}
