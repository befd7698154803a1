package domain

type Campaign struct {
	ResourceName           string `json:"resourceName"`
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Status                 string `json:"status"`
	AdvertisingChannelType string `json:"advertisingChannelType"`
}

type CampaignBudget struct {
	ResourceName string `json:"resourceName"`
	AmountMicros string `json:"amountMicros"`
}

type AdGroup struct {
	ResourceName string `json:"resourceName"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	CpcBidMicros string `json:"cpcBidMicros"`
}

// AdGroupCriterion carrega a palavra-chave; o id externo é o criterion id,
// único apenas dentro do grupo de anúncios.
type AdGroupCriterion struct {
	ResourceName string       `json:"resourceName"`
	CriterionID  string       `json:"criterionId"`
	Status       string       `json:"status"`
	Keyword      *KeywordInfo `json:"keyword,omitempty"`
}

type KeywordInfo struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType"`
}
