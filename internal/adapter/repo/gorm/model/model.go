package model

// CampaignState is the single-row campaign aggregate. The nested maps of the
// domain shape (events, wallets, cooldowns, order, pending purchases) are
// stored as JSON blobs so the save/load round-trip preserves them exactly.
type CampaignState struct {
	ID        string `gorm:"primaryKey;column:id"`
	Turn      int    `gorm:"column:turn"`
	Events    []byte `gorm:"column:events;type:jsonb"`
	Wallet    []byte `gorm:"column:wallet;type:jsonb"`
	Cooldowns []byte `gorm:"column:cooldowns;type:jsonb"`
	OrderDoc  []byte `gorm:"column:order_doc;type:jsonb"`
	Pending   []byte `gorm:"column:pending;type:jsonb"`
	Version   int64  `gorm:"column:version"`
}

func (CampaignState) TableName() string { return "campaign_state" }

type Planet struct {
	PlanetID     string `gorm:"primaryKey;column:planet_id"`
	Name         string `gorm:"column:name"`
	Type         string `gorm:"column:type"`
	OwnerID      string `gorm:"column:owner_id"`
	Resources    []byte `gorm:"column:resources;type:jsonb"`
	Connections  []byte `gorm:"column:connections;type:jsonb"`
	ValueOne     int    `gorm:"column:value_one"`
	ValueTwo     int    `gorm:"column:value_two"`
	BattleStatus string `gorm:"column:battle_status"`
	Destroyed    bool   `gorm:"column:destroyed"`
	Modifiers    []byte `gorm:"column:modifiers;type:jsonb"`
	Ships        []byte `gorm:"column:ships;type:jsonb"`
	Version      int64  `gorm:"column:version"`
}

func (Planet) TableName() string { return "planets" }
