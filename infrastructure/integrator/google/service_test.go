package google

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	googledomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/google/domain"
	clientmocks "github.com/vfg2006/ads-manager-api/infrastructure/integrator/google/googleclient/mocks"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testPerformanceFilters() *domain.InsightFilters {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)
	return &domain.InsightFilters{StartDate: &start, EndDate: &end}
}

func TestFetchAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	fetcher := New(&config.Config{})

	rows := []googledomain.SearchRow{
		{
			CustomerClient: &googledomain.CustomerClient{
				ID:              "1111111111",
				DescriptiveName: "Conta Principal",
				CurrencyCode:    "BRL",
				TimeZone:        "America/Sao_Paulo",
				Manager:         false,
			},
		},
		{
			CustomerClient: &googledomain.CustomerClient{
				ID:              "2222222222",
				DescriptiveName: "Conta Manager",
				Manager:         true,
			},
		},
		// Linha sem id deve ser ignorada sem derrubar as demais
		{CustomerClient: &googledomain.CustomerClient{DescriptiveName: "Fantasma"}},
	}

	client.EXPECT().SearchAll("1111111111", gomock.Any()).Return(rows, nil)

	accounts, err := fetcher.FetchAccounts(client, "1111111111")

	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, "1111111111", accounts[0].ExternalID)
	assert.Equal(t, "Conta Principal", accounts[0].Name)
	assert.Equal(t, "BRL", accounts[0].CurrencyCode)
	assert.False(t, accounts[0].IsManager)
	assert.True(t, accounts[1].IsManager)
}

func TestFetchCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	fetcher := New(&config.Config{})

	rows := []googledomain.SearchRow{
		{
			Campaign: &googledomain.Campaign{
				ID:                     "100",
				Name:                   "Campanha Pesquisa",
				Status:                 "ENABLED",
				AdvertisingChannelType: "SEARCH",
			},
			CampaignBudget: &googledomain.CampaignBudget{AmountMicros: "1500000"},
		},
		{
			// Status desconhecido do provedor: registro pulado, irmãos seguem
			Campaign: &googledomain.Campaign{
				ID:                     "101",
				Name:                   "Campanha Experimental",
				Status:                 "EXPERIMENTAL",
				AdvertisingChannelType: "SEARCH",
			},
		},
		{
			// Orçamento malformado: registro pulado
			Campaign: &googledomain.Campaign{
				ID:                     "102",
				Name:                   "Campanha Display",
				Status:                 "PAUSED",
				AdvertisingChannelType: "DISPLAY",
			},
			CampaignBudget: &googledomain.CampaignBudget{AmountMicros: "abc"},
		},
	}

	client.EXPECT().SearchAll("1111111111", gomock.Any()).Return(rows, nil)

	campaigns, err := fetcher.FetchCampaigns(client, "1111111111")

	assert.NoError(t, err)
	assert.Len(t, campaigns, 1)
	assert.Equal(t, "100", campaigns[0].ExternalID)
	assert.Equal(t, domain.ResourceStatusActive, campaigns[0].Status)
	assert.Equal(t, domain.ChannelTypeSearch, campaigns[0].ChannelType)
	assert.Equal(t, int64(1_500_000), campaigns[0].DailyBudgetMicros)
	assert.Equal(t, 1.50, campaigns[0].DailyBudget)
}

func TestFetchCampaigns_FalhaDeBusca(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	fetcher := New(&config.Config{})

	client.EXPECT().SearchAll("1111111111", gomock.Any()).Return(nil, assert.AnError)

	campaigns, err := fetcher.FetchCampaigns(client, "1111111111")

	assert.Nil(t, campaigns)

	var fetchErr *ResourceFetchError
	assert.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, domain.ResourceKindCampaign, fetchErr.Kind)
	assert.Equal(t, "1111111111", fetchErr.ParentID)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestFetchKeywords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	fetcher := New(&config.Config{})

	rows := []googledomain.SearchRow{
		{
			AdGroupCriterion: &googledomain.AdGroupCriterion{
				CriterionID: "10",
				Status:      "ENABLED",
				Keyword:     &googledomain.KeywordInfo{Text: "tenis corrida", MatchType: "EXACT"},
			},
		},
		{
			AdGroupCriterion: &googledomain.AdGroupCriterion{
				CriterionID: "11",
				Status:      "ENABLED",
				Keyword:     &googledomain.KeywordInfo{Text: "tenis barato", MatchType: "NEAR_EXACT"},
			},
		},
		// Critério sem keyword (outro tipo de critério) é ignorado
		{AdGroupCriterion: &googledomain.AdGroupCriterion{CriterionID: "12", Status: "ENABLED"}},
	}

	client.EXPECT().SearchAll("1111111111", gomock.Any()).Return(rows, nil)

	keywords, err := fetcher.FetchKeywords(client, "1111111111", "1001")

	assert.NoError(t, err)
	assert.Len(t, keywords, 1)
	assert.Equal(t, "10", keywords[0].ExternalID)
	assert.Equal(t, "1001", keywords[0].AdGroupID)
	assert.Equal(t, domain.MatchTypeExact, keywords[0].MatchType)
}

func TestFetchPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clientmocks.NewMockClient(ctrl)
	fetcher := New(&config.Config{})

	rows := []googledomain.SearchRow{
		{
			Campaign:         &googledomain.Campaign{ID: "100"},
			AdGroup:          &googledomain.AdGroup{ID: "1001"},
			AdGroupCriterion: &googledomain.AdGroupCriterion{CriterionID: "10"},
			Segments:         &googledomain.Segments{Date: "2024-06-01"},
			Metrics: &googledomain.Metrics{
				Impressions:      "1200",
				Clicks:           "34",
				CostMicros:       "1500000",
				Conversions:      2.5,
				ConversionsValue: 125.9,
			},
		},
		{
			// Data malformada: registro pulado
			Campaign: &googledomain.Campaign{ID: "100"},
			Segments: &googledomain.Segments{Date: "01/06/2024"},
			Metrics:  &googledomain.Metrics{CostMicros: "1"},
		},
	}

	client.EXPECT().SearchAll("1111111111", gomock.Any()).Return(rows, nil)

	records, err := fetcher.FetchPerformance(client, "1111111111", testPerformanceFilters())

	assert.NoError(t, err)
	assert.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "100", *record.CampaignID)
	assert.Equal(t, "1001", *record.AdGroupID)
	assert.Equal(t, "10", *record.KeywordID)
	assert.Equal(t, int64(1200), record.Impressions)
	assert.Equal(t, int64(34), record.Clicks)
	assert.Equal(t, int64(1_500_000), record.CostMicros)
	assert.Equal(t, 1.50, record.Cost)
	assert.Equal(t, 2.5, record.Conversions)
	assert.Equal(t, 125.9, record.ConversionValue)
}

func TestNormalizeEnums(t *testing.T) {
	tests := []struct {
		name     string
		run      func() error
		expected bool
	}{
		{
			name: "Status conhecido é traduzido sem erro",
			run: func() error {
				_, err := normalizeResourceStatus("campaign", "PAUSED")
				return err
			},
		},
		{
			name: "Status desconhecido gera ValidationError",
			run: func() error {
				_, err := normalizeResourceStatus("campaign", "UNSPECIFIED")
				return err
			},
			expected: true,
		},
		{
			name: "Tipo de canal desconhecido gera ValidationError",
			run: func() error {
				_, err := normalizeChannelType("TRAVEL")
				return err
			},
			expected: true,
		},
		{
			name: "Tipo de correspondência desconhecido gera ValidationError",
			run: func() error {
				_, err := normalizeMatchType("NEAR_PHRASE")
				return err
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()

			if !tt.expected {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			assert.True(t, errors.As(err, &validationErr))
		})
	}
}

func TestParseMicros(t *testing.T) {
	micros, err := parseMicros("metrics", "cost_micros", "")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), micros)

	micros, err = parseMicros("metrics", "cost_micros", "1500000")
	assert.NoError(t, err)
	assert.Equal(t, int64(1_500_000), micros)

	_, err = parseMicros("metrics", "cost_micros", "1.5")
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "cost_micros", validationErr.Field)
}
