package domain

// SearchRequest é o corpo do endpoint googleAds:search (GAQL paginado).
type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
	PageSize  int    `json:"pageSize,omitempty"`
}

// SearchRow é uma linha de resultado GAQL; só os objetos selecionados vêm preenchidos.
type SearchRow struct {
	Customer         *Customer         `json:"customer,omitempty"`
	CustomerClient   *CustomerClient   `json:"customerClient,omitempty"`
	Campaign         *Campaign         `json:"campaign,omitempty"`
	CampaignBudget   *CampaignBudget   `json:"campaignBudget,omitempty"`
	AdGroup          *AdGroup          `json:"adGroup,omitempty"`
	AdGroupCriterion *AdGroupCriterion `json:"adGroupCriterion,omitempty"`
	Metrics          *Metrics          `json:"metrics,omitempty"`
	Segments         *Segments         `json:"segments,omitempty"`
}

type SearchResponse struct {
	Results       []SearchRow `json:"results"`
	NextPageToken string      `json:"nextPageToken"`
}
