package google

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	googledomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/utils"
)

// Fetcher busca os recursos do Google Ads já normalizados para o vocabulário
// interno. Registros individuais malformados são pulados e logados; a falha da
// consulta inteira vira ResourceFetchError.
//
// Os ids devolvidos nos campos de vínculo (AccountID, CampaignID, AdGroupID,
// KeywordID) são os ids EXTERNOS do provedor; a reconciliação os converte para
// ids locais antes de persistir.
type Fetcher interface {
	FetchAccounts(client googleclient.Client, managerExternalID string) ([]*domain.AdAccount, error)
	FetchCampaigns(client googleclient.Client, accountExternalID string) ([]*domain.Campaign, error)
	FetchAdGroups(client googleclient.Client, accountExternalID, campaignExternalID string) ([]*domain.AdGroup, error)
	FetchKeywords(client googleclient.Client, accountExternalID, adGroupExternalID string) ([]*domain.Keyword, error)
	FetchPerformance(client googleclient.Client, accountExternalID string, filters *domain.InsightFilters) ([]*domain.PerformanceRecord, error)
}

type AdsIntegrator struct {
	cfg *config.Config
}

func New(cfg *config.Config) Fetcher {
	return &AdsIntegrator{cfg: cfg}
}

// FetchAccounts lista a hierarquia de contas visível pelo customer informado,
// incluindo ele próprio (customer_client de nível zero).
func (s *AdsIntegrator) FetchAccounts(client googleclient.Client, managerExternalID string) ([]*domain.AdAccount, error) {
	query := `SELECT customer_client.id, customer_client.descriptive_name,
		customer_client.currency_code, customer_client.time_zone,
		customer_client.manager, customer_client.status
		FROM customer_client
		WHERE customer_client.status = 'ENABLED'`

	rows, err := client.SearchAll(managerExternalID, query)
	if err != nil {
		return nil, &ResourceFetchError{Kind: domain.ResourceKindAccount, ParentID: managerExternalID, Err: err}
	}

	accounts := make([]*domain.AdAccount, 0, len(rows))
	for _, row := range rows {
		if row.CustomerClient == nil || row.CustomerClient.ID == "" {
			logrus.WithField("manager_id", managerExternalID).
				Warn("sync: linha de customer_client sem id, registro ignorado")
			continue
		}

		accounts = append(accounts, &domain.AdAccount{
			ExternalID:   row.CustomerClient.ID,
			Name:         row.CustomerClient.DescriptiveName,
			CurrencyCode: row.CustomerClient.CurrencyCode,
			Timezone:     row.CustomerClient.TimeZone,
			IsManager:    row.CustomerClient.Manager,
			Status:       domain.AdAccountStatusActive,
			SyncStatus:   domain.SyncStatusIdle,
		})
	}

	return accounts, nil
}

func (s *AdsIntegrator) FetchCampaigns(client googleclient.Client, accountExternalID string) ([]*domain.Campaign, error) {
	query := `SELECT campaign.id, campaign.name, campaign.status,
		campaign.advertising_channel_type, campaign_budget.amount_micros
		FROM campaign
		WHERE campaign.status != 'REMOVED'`

	rows, err := client.SearchAll(accountExternalID, query)
	if err != nil {
		return nil, &ResourceFetchError{Kind: domain.ResourceKindCampaign, ParentID: accountExternalID, Err: err}
	}

	campaigns := make([]*domain.Campaign, 0, len(rows))
	for _, row := range rows {
		if row.Campaign == nil || row.Campaign.ID == "" {
			continue
		}

		status, err := normalizeResourceStatus("campaign", row.Campaign.Status)
		if err != nil {
			logrus.WithError(err).WithField("campaign_id", row.Campaign.ID).
				Warn("sync: campanha com status desconhecido, registro ignorado")
			continue
		}

		channelType, err := normalizeChannelType(row.Campaign.AdvertisingChannelType)
		if err != nil {
			logrus.WithError(err).WithField("campaign_id", row.Campaign.ID).
				Warn("sync: campanha com tipo de canal desconhecido, registro ignorado")
			continue
		}

		budgetMicros := int64(0)
		if row.CampaignBudget != nil {
			budgetMicros, err = parseMicros("campaign_budget", "amount_micros", row.CampaignBudget.AmountMicros)
			if err != nil {
				logrus.WithError(err).WithField("campaign_id", row.Campaign.ID).
					Warn("sync: orçamento de campanha malformado, registro ignorado")
				continue
			}
		}

		campaigns = append(campaigns, &domain.Campaign{
			AccountID:         accountExternalID,
			ExternalID:        row.Campaign.ID,
			Name:              row.Campaign.Name,
			Status:            status,
			ChannelType:       channelType,
			DailyBudgetMicros: budgetMicros,
			DailyBudget:       utils.MicrosToCurrency(budgetMicros),
		})
	}

	return campaigns, nil
}

func (s *AdsIntegrator) FetchAdGroups(client googleclient.Client, accountExternalID, campaignExternalID string) ([]*domain.AdGroup, error) {
	query := fmt.Sprintf(`SELECT ad_group.id, ad_group.name, ad_group.status,
		ad_group.cpc_bid_micros
		FROM ad_group
		WHERE campaign.id = %s AND ad_group.status != 'REMOVED'`, campaignExternalID)

	rows, err := client.SearchAll(accountExternalID, query)
	if err != nil {
		return nil, &ResourceFetchError{Kind: domain.ResourceKindAdGroup, ParentID: campaignExternalID, Err: err}
	}

	adGroups := make([]*domain.AdGroup, 0, len(rows))
	for _, row := range rows {
		if row.AdGroup == nil || row.AdGroup.ID == "" {
			continue
		}

		status, err := normalizeResourceStatus("ad_group", row.AdGroup.Status)
		if err != nil {
			logrus.WithError(err).WithField("ad_group_id", row.AdGroup.ID).
				Warn("sync: grupo de anúncios com status desconhecido, registro ignorado")
			continue
		}

		cpcBidMicros, err := parseMicros("ad_group", "cpc_bid_micros", row.AdGroup.CpcBidMicros)
		if err != nil {
			logrus.WithError(err).WithField("ad_group_id", row.AdGroup.ID).
				Warn("sync: lance de CPC malformado, registro ignorado")
			continue
		}

		adGroups = append(adGroups, &domain.AdGroup{
			CampaignID:   campaignExternalID,
			ExternalID:   row.AdGroup.ID,
			Name:         row.AdGroup.Name,
			Status:       status,
			CpcBidMicros: cpcBidMicros,
			CpcBid:       utils.MicrosToCurrency(cpcBidMicros),
		})
	}

	return adGroups, nil
}

func (s *AdsIntegrator) FetchKeywords(client googleclient.Client, accountExternalID, adGroupExternalID string) ([]*domain.Keyword, error) {
	query := fmt.Sprintf(`SELECT ad_group_criterion.criterion_id,
		ad_group_criterion.status, ad_group_criterion.keyword.text,
		ad_group_criterion.keyword.match_type
		FROM keyword_view
		WHERE ad_group.id = %s AND ad_group_criterion.status != 'REMOVED'`, adGroupExternalID)

	rows, err := client.SearchAll(accountExternalID, query)
	if err != nil {
		return nil, &ResourceFetchError{Kind: domain.ResourceKindKeyword, ParentID: adGroupExternalID, Err: err}
	}

	keywords := make([]*domain.Keyword, 0, len(rows))
	for _, row := range rows {
		if row.AdGroupCriterion == nil || row.AdGroupCriterion.CriterionID == "" || row.AdGroupCriterion.Keyword == nil {
			continue
		}

		status, err := normalizeResourceStatus("keyword", row.AdGroupCriterion.Status)
		if err != nil {
			logrus.WithError(err).WithField("criterion_id", row.AdGroupCriterion.CriterionID).
				Warn("sync: palavra-chave com status desconhecido, registro ignorado")
			continue
		}

		matchType, err := normalizeMatchType(row.AdGroupCriterion.Keyword.MatchType)
		if err != nil {
			logrus.WithError(err).WithField("criterion_id", row.AdGroupCriterion.CriterionID).
				Warn("sync: palavra-chave com tipo de correspondência desconhecido, registro ignorado")
			continue
		}

		keywords = append(keywords, &domain.Keyword{
			AdGroupID:  adGroupExternalID,
			ExternalID: row.AdGroupCriterion.CriterionID,
			Text:       row.AdGroupCriterion.Keyword.Text,
			MatchType:  matchType,
			Status:     status,
		})
	}

	return keywords, nil
}

// FetchPerformance busca as métricas diárias no nível de palavra-chave dentro
// do intervalo de datas informado.
func (s *AdsIntegrator) FetchPerformance(client googleclient.Client, accountExternalID string, filters *domain.InsightFilters) ([]*domain.PerformanceRecord, error) {
	query := fmt.Sprintf(`SELECT segments.date, campaign.id, ad_group.id,
		ad_group_criterion.criterion_id, metrics.impressions, metrics.clicks,
		metrics.cost_micros, metrics.conversions, metrics.conversions_value
		FROM keyword_view
		WHERE segments.date BETWEEN '%s' AND '%s'`,
		filters.StartDate.Format(time.DateOnly),
		filters.EndDate.Format(time.DateOnly),
	)

	rows, err := client.SearchAll(accountExternalID, query)
	if err != nil {
		return nil, &ResourceFetchError{Kind: domain.ResourceKindPerformance, ParentID: accountExternalID, Err: err}
	}

	records := make([]*domain.PerformanceRecord, 0, len(rows))
	for _, row := range rows {
		if row.Metrics == nil || row.Segments == nil {
			continue
		}

		record, err := s.buildPerformanceRecord(accountExternalID, row)
		if err != nil {
			logrus.WithError(err).WithField("account_id", accountExternalID).
				Warn("sync: linha de métricas malformada, registro ignorado")
			continue
		}

		records = append(records, record)
	}

	return records, nil
}

func (s *AdsIntegrator) buildPerformanceRecord(accountExternalID string, row googledomain.SearchRow) (*domain.PerformanceRecord, error) {
	date, err := parseDate("metrics", row.Segments.Date)
	if err != nil {
		return nil, err
	}

	impressions, err := parseMicros("metrics", "impressions", row.Metrics.Impressions)
	if err != nil {
		return nil, err
	}

	clicks, err := parseMicros("metrics", "clicks", row.Metrics.Clicks)
	if err != nil {
		return nil, err
	}

	costMicros, err := parseMicros("metrics", "cost_micros", row.Metrics.CostMicros)
	if err != nil {
		return nil, err
	}

	record := &domain.PerformanceRecord{
		AccountID:       accountExternalID,
		Date:            date,
		Impressions:     impressions,
		Clicks:          clicks,
		CostMicros:      costMicros,
		Cost:            utils.MicrosToCurrency(costMicros),
		Conversions:     row.Metrics.Conversions,
		ConversionValue: row.Metrics.ConversionsValue,
	}

	if row.Campaign != nil && row.Campaign.ID != "" {
		record.CampaignID = &row.Campaign.ID
	}
	if row.AdGroup != nil && row.AdGroup.ID != "" {
		record.AdGroupID = &row.AdGroup.ID
	}
	if row.AdGroupCriterion != nil && row.AdGroupCriterion.CriterionID != "" {
		record.KeywordID = &row.AdGroupCriterion.CriterionID
	}

	return record, nil
}
