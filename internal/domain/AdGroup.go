package domain

// AdGroup pertence a uma Campaign. Chave natural: (external_id, campaign_id).
type AdGroup struct {
	ID           string         `json:"id"`
	CampaignID   string         `json:"campaign_id"`
	ExternalID   string         `json:"external_id"`
	Name         string         `json:"name"`
	Status       ResourceStatus `json:"status"`
	CpcBidMicros int64          `json:"cpc_bid_micros"`
	CpcBid       float64        `json:"cpc_bid"`
}
