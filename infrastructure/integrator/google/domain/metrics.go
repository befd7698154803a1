package domain

// Metrics são as métricas diárias; valores monetários vêm em micro-unidades.
type Metrics struct {
	Impressions      string  `json:"impressions"`
	Clicks           string  `json:"clicks"`
	CostMicros       string  `json:"costMicros"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversionsValue"`
}

type Segments struct {
	Date string `json:"date"`
}
