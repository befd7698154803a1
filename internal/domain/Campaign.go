package domain

// ResourceStatus é o vocabulário interno para os status de recursos do provedor.
// Valores do provedor são traduzidos na borda (integrator) e nunca circulam aqui.
type ResourceStatus string

const (
	ResourceStatusActive  ResourceStatus = "ACTIVE"
	ResourceStatusPaused  ResourceStatus = "PAUSED"
	ResourceStatusRemoved ResourceStatus = "REMOVED"
)

type ChannelType string

const (
	ChannelTypeSearch         ChannelType = "SEARCH"
	ChannelTypeDisplay        ChannelType = "DISPLAY"
	ChannelTypeShopping       ChannelType = "SHOPPING"
	ChannelTypeVideo          ChannelType = "VIDEO"
	ChannelTypeMultiChannel   ChannelType = "MULTI_CHANNEL"
	ChannelTypePerformanceMax ChannelType = "PERFORMANCE_MAX"
	ChannelTypeDemandGen      ChannelType = "DEMAND_GEN"
	ChannelTypeLocal          ChannelType = "LOCAL"
	ChannelTypeSmart          ChannelType = "SMART"
	ChannelTypeHotel          ChannelType = "HOTEL"
)

// Campaign pertence a uma AdAccount. A chave natural do upsert é
// (external_id, account_id): ids externos só são únicos dentro da conta.
type Campaign struct {
	ID                string         `json:"id"`
	AccountID         string         `json:"account_id"`
	ExternalID        string         `json:"external_id"`
	Name              string         `json:"name"`
	Status            ResourceStatus `json:"status"`
	ChannelType       ChannelType    `json:"channel_type"`
	DailyBudgetMicros int64          `json:"daily_budget_micros"`
	DailyBudget       float64        `json:"daily_budget"`
}
