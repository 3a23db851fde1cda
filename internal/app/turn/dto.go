package turn

import "crusade/internal/domain/campaign"

// Response summarizes one advanced campaign turn.
type Response struct {
	Turn          int                       `json:"turn"`
	ExpiredEvents []campaign.Event          `json:"expired_events"`
	Harvest       map[string]map[string]int `json:"harvest"`
	Order         *campaign.OrderOutcome    `json:"order,omitempty"`
}
