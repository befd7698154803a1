package domain

type MatchType string

const (
	MatchTypeExact  MatchType = "EXACT"
	MatchTypePhrase MatchType = "PHRASE"
	MatchTypeBroad  MatchType = "BROAD"
)

// Keyword pertence a um AdGroup. Chave natural: (external_id, ad_group_id),
// onde external_id é o criterion id do provedor.
type Keyword struct {
	ID         string         `json:"id"`
	AdGroupID  string         `json:"ad_group_id"`
	ExternalID string         `json:"external_id"`
	Text       string         `json:"text"`
	MatchType  MatchType      `json:"match_type"`
	Status     ResourceStatus `json:"status"`
}
