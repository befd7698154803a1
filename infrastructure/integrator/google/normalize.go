package google

import (
	"strconv"
	"time"

	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// Tradução dos enums do provedor para o vocabulário interno. Valores fora das
// tabelas geram ValidationError em vez de propagarem silenciosamente.

var resourceStatusFromProvider = map[string]domain.ResourceStatus{
	"ENABLED": domain.ResourceStatusActive,
	"PAUSED":  domain.ResourceStatusPaused,
	"REMOVED": domain.ResourceStatusRemoved,
}

var channelTypeFromProvider = map[string]domain.ChannelType{
	"SEARCH":          domain.ChannelTypeSearch,
	"DISPLAY":         domain.ChannelTypeDisplay,
	"SHOPPING":        domain.ChannelTypeShopping,
	"VIDEO":           domain.ChannelTypeVideo,
	"MULTI_CHANNEL":   domain.ChannelTypeMultiChannel,
	"PERFORMANCE_MAX": domain.ChannelTypePerformanceMax,
	"DEMAND_GEN":      domain.ChannelTypeDemandGen,
	"LOCAL":           domain.ChannelTypeLocal,
	"SMART":           domain.ChannelTypeSmart,
	"HOTEL":           domain.ChannelTypeHotel,
}

var matchTypeFromProvider = map[string]domain.MatchType{
	"EXACT":  domain.MatchTypeExact,
	"PHRASE": domain.MatchTypePhrase,
	"BROAD":  domain.MatchTypeBroad,
}

func normalizeResourceStatus(resource, value string) (domain.ResourceStatus, error) {
	status, ok := resourceStatusFromProvider[value]
	if !ok {
		return "", &ValidationError{Resource: resource, Field: "status", Value: value}
	}
	return status, nil
}

func normalizeChannelType(value string) (domain.ChannelType, error) {
	channelType, ok := channelTypeFromProvider[value]
	if !ok {
		return "", &ValidationError{Resource: "campaign", Field: "advertising_channel_type", Value: value}
	}
	return channelType, nil
}

func normalizeMatchType(value string) (domain.MatchType, error) {
	matchType, ok := matchTypeFromProvider[value]
	if !ok {
		return "", &ValidationError{Resource: "keyword", Field: "match_type", Value: value}
	}
	return matchType, nil
}

// parseMicros aceita campo ausente (string vazia) como zero; o mapeamento JSON
// do provedor serializa int64 como string.
func parseMicros(resource, field, value string) (int64, error) {
	if value == "" {
		return 0, nil
	}

	micros, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &ValidationError{Resource: resource, Field: field, Value: value}
	}
	return micros, nil
}

func parseDate(resource, value string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, &ValidationError{Resource: resource, Field: "date", Value: value}
	}
	return date, nil
}
