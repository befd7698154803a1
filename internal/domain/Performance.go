package domain

import (
	"time"
)

// PerformanceRecord é a tabela fato de métricas diárias. As chaves estrangeiras
// de campanha/grupo/palavra-chave podem ser nulas conforme o nível de agregação;
// a chave de unicidade é (account_id, campaign_id, ad_group_id, keyword_id, date).
//
// CostMicros guarda o valor bruto do provedor (micro-unidades). Cost é o valor
// decimal convertido uma única vez na borda do integrator.
type PerformanceRecord struct {
	ID              string    `json:"id"`
	AccountID       string    `json:"account_id"`
	CampaignID      *string   `json:"campaign_id,omitempty"`
	AdGroupID       *string   `json:"ad_group_id,omitempty"`
	KeywordID       *string   `json:"keyword_id,omitempty"`
	Date            time.Time `json:"date"`
	Impressions     int64     `json:"impressions"`
	Clicks          int64     `json:"clicks"`
	CostMicros      int64     `json:"cost_micros"`
	Cost            float64   `json:"cost"`
	Conversions     float64   `json:"conversions"`
	ConversionValue float64   `json:"conversion_value"`
}

// InsightFilters delimita o intervalo de datas de uma sincronização ou consulta.
type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
