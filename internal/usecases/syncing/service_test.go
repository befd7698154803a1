package syncing

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	clientmocks "github.com/vfg2006/ads-manager-api/infrastructure/integrator/google/googleclient/mocks"
	googlemocks "github.com/vfg2006/ads-manager-api/infrastructure/integrator/google/mocks"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type syncMocks struct {
	credentialRepo  *mocks.MockCredentialRepository
	accountRepo     *mocks.MockAccountRepository
	campaignRepo    *mocks.MockCampaignRepository
	adGroupRepo     *mocks.MockAdGroupRepository
	keywordRepo     *mocks.MockKeywordRepository
	performanceRepo *mocks.MockPerformanceRepository
	syncRunRepo     *mocks.MockSyncRunRepository
	clientFactory   *clientmocks.MockClientFactory
	fetcher         *googlemocks.MockFetcher
	client          *clientmocks.MockClient
}

func newSyncMocks(ctrl *gomock.Controller) *syncMocks {
	return &syncMocks{
		credentialRepo:  mocks.NewMockCredentialRepository(ctrl),
		accountRepo:     mocks.NewMockAccountRepository(ctrl),
		campaignRepo:    mocks.NewMockCampaignRepository(ctrl),
		adGroupRepo:     mocks.NewMockAdGroupRepository(ctrl),
		keywordRepo:     mocks.NewMockKeywordRepository(ctrl),
		performanceRepo: mocks.NewMockPerformanceRepository(ctrl),
		syncRunRepo:     mocks.NewMockSyncRunRepository(ctrl),
		clientFactory:   clientmocks.NewMockClientFactory(ctrl),
		fetcher:         googlemocks.NewMockFetcher(ctrl),
		client:          clientmocks.NewMockClient(ctrl),
	}
}

func newSyncService(m *syncMocks) *Service {
	cfg := &config.Config{
		AccountSync: config.AccountSync{LookbackDays: 7},
	}

	return NewService(
		cfg,
		m.credentialRepo,
		m.accountRepo,
		m.campaignRepo,
		m.adGroupRepo,
		m.keywordRepo,
		m.performanceRepo,
		m.syncRunRepo,
		m.clientFactory,
		m.fetcher,
	).(*Service)
}

const testExternalAccountID = "1111111111"

func testCredential() *domain.Credential {
	return &domain.Credential{
		ID:                "CRED01",
		UserID:            42,
		Provider:          domain.ProviderGoogle,
		ExternalAccountID: testExternalAccountID,
		AccessToken:       "token",
		RefreshToken:      "refresh",
		TokenExpiry:       time.Now().Add(time.Hour),
		Active:            true,
	}
}

func testFilters() *domain.InsightFilters {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)
	return &domain.InsightFilters{StartDate: &start, EndDate: &end}
}

// testHierarchy monta a hierarquia fixa usada nos cenários: uma conta com duas
// campanhas, um grupo de anúncios por campanha e três palavras-chave por grupo,
// com sete dias de métricas por palavra-chave (42 linhas).
func testHierarchy() (
	accounts []*domain.AdAccount,
	campaigns []*domain.Campaign,
	adGroupsByCampaign map[string][]*domain.AdGroup,
	keywordsByAdGroup map[string][]*domain.Keyword,
	records []*domain.PerformanceRecord,
) {
	accounts = []*domain.AdAccount{
		{
			ExternalID:   testExternalAccountID,
			Name:         "Conta Principal",
			CurrencyCode: "BRL",
			Timezone:     "America/Sao_Paulo",
			Status:       domain.AdAccountStatusActive,
		},
	}

	campaigns = []*domain.Campaign{
		{ExternalID: "100", Name: "Campanha Pesquisa", Status: domain.ResourceStatusActive, ChannelType: domain.ChannelTypeSearch},
		{ExternalID: "200", Name: "Campanha Display", Status: domain.ResourceStatusActive, ChannelType: domain.ChannelTypeDisplay},
	}

	adGroupsByCampaign = map[string][]*domain.AdGroup{
		"100": {{ExternalID: "1001", Name: "Grupo Pesquisa", Status: domain.ResourceStatusActive}},
		"200": {{ExternalID: "2001", Name: "Grupo Display", Status: domain.ResourceStatusActive}},
	}

	// Criterion ids repetidos entre grupos de propósito: eles só são únicos
	// dentro do grupo de anúncios
	keywordsByAdGroup = map[string][]*domain.Keyword{
		"1001": {
			{ExternalID: "10", Text: "tenis corrida", MatchType: domain.MatchTypeExact, Status: domain.ResourceStatusActive},
			{ExternalID: "11", Text: "tenis barato", MatchType: domain.MatchTypePhrase, Status: domain.ResourceStatusActive},
			{ExternalID: "12", Text: "comprar tenis", MatchType: domain.MatchTypeBroad, Status: domain.ResourceStatusActive},
		},
		"2001": {
			{ExternalID: "10", Text: "camiseta esporte", MatchType: domain.MatchTypeExact, Status: domain.ResourceStatusActive},
			{ExternalID: "11", Text: "camiseta time", MatchType: domain.MatchTypePhrase, Status: domain.ResourceStatusActive},
			{ExternalID: "12", Text: "comprar camiseta", MatchType: domain.MatchTypeBroad, Status: domain.ResourceStatusActive},
		},
	}

	adGroupByCampaign := map[string]string{"100": "1001", "200": "2001"}
	for _, campaign := range campaigns {
		campaignExternalID := campaign.ExternalID
		adGroupExternalID := adGroupByCampaign[campaignExternalID]

		for _, keyword := range keywordsByAdGroup[adGroupExternalID] {
			for day := 0; day < 7; day++ {
				campaignID := campaignExternalID
				adGroupID := adGroupExternalID
				keywordID := keyword.ExternalID

				records = append(records, &domain.PerformanceRecord{
					CampaignID:  &campaignID,
					AdGroupID:   &adGroupID,
					KeywordID:   &keywordID,
					Date:        time.Date(2024, 6, 1+day, 0, 0, 0, 0, time.UTC),
					Impressions: 100,
					Clicks:      7,
					CostMicros:  1_500_000,
					Cost:        1.50,
				})
			}
		}
	}

	return accounts, campaigns, adGroupsByCampaign, keywordsByAdGroup, records
}

// setupHierarchyMocks prepara as expectativas comuns do caminho feliz. O
// parâmetro created controla o retorno dos upserts, simulando primeira
// execução (tudo criado) ou reexecução (tudo atualizado).
func setupHierarchyMocks(m *syncMocks, created bool, saved *[]*domain.PerformanceRecord) {
	accounts, campaigns, adGroupsByCampaign, keywordsByAdGroup, records := testHierarchy()

	m.syncRunRepo.EXPECT().Create(gomock.Any()).Return(nil)
	m.credentialRepo.EXPECT().GetActiveByExternalAccountID(testExternalAccountID).Return(testCredential(), nil)
	m.clientFactory.EXPECT().GetClientForCredential(gomock.Any(), testExternalAccountID).Return(m.client, nil)

	m.fetcher.EXPECT().FetchAccounts(m.client, testExternalAccountID).Return(accounts, nil)
	m.accountRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(
		func(account *domain.AdAccount) (string, bool, error) {
			return "ACC-" + account.ExternalID, created, nil
		})

	m.fetcher.EXPECT().FetchCampaigns(m.client, testExternalAccountID).Return(campaigns, nil)
	m.campaignRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(
		func(campaign *domain.Campaign) (string, bool, error) {
			return "CAMP-" + campaign.ExternalID, created, nil
		}).Times(2)

	for campaignExternalID, adGroups := range adGroupsByCampaign {
		m.fetcher.EXPECT().FetchAdGroups(m.client, testExternalAccountID, campaignExternalID).Return(adGroups, nil)
	}
	m.adGroupRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(
		func(adGroup *domain.AdGroup) (string, bool, error) {
			return "AG-" + adGroup.ExternalID, created, nil
		}).Times(2)

	for adGroupExternalID, keywords := range keywordsByAdGroup {
		m.fetcher.EXPECT().FetchKeywords(m.client, testExternalAccountID, adGroupExternalID).Return(keywords, nil)
	}
	m.keywordRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(
		func(keyword *domain.Keyword) (string, bool, error) {
			return fmt.Sprintf("KW-%s-%s", keyword.AdGroupID, keyword.ExternalID), created, nil
		}).Times(6)

	m.fetcher.EXPECT().FetchPerformance(m.client, testExternalAccountID, gomock.Any()).Return(records, nil)
	m.performanceRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(
		func(record *domain.PerformanceRecord) (bool, error) {
			if saved != nil {
				*saved = append(*saved, record)
			}
			return created, nil
		}).Times(42)

	m.accountRepo.EXPECT().SetSyncStatus("ACC-"+testExternalAccountID, domain.SyncStatusIdle, gomock.Not(gomock.Nil())).Return(nil)
	m.syncRunRepo.EXPECT().Finish(gomock.Any()).Return(nil)
}

func TestSyncAccount_HierarquiaCompleta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newSyncMocks(ctrl)
	service := newSyncService(m)

	var saved []*domain.PerformanceRecord
	setupHierarchyMocks(m, true, &saved)

	summary, err := service.SyncAccount(testExternalAccountID, testFilters())

	assert.NoError(t, err)
	assert.NotNil(t, summary)
	assert.Equal(t, domain.SyncRunStatusCompleted, summary.Status)
	assert.Empty(t, summary.Errors)
	assert.NotEmpty(t, summary.RunID)

	expected := map[domain.ResourceKind]int{
		domain.ResourceKindAccount:     1,
		domain.ResourceKindCampaign:    2,
		domain.ResourceKindAdGroup:     2,
		domain.ResourceKindKeyword:     6,
		domain.ResourceKindPerformance: 42,
	}
	for kind, count := range expected {
		assert.Equal(t, count, summary.Counts[kind].Created, "created de %s", kind)
		assert.Equal(t, 0, summary.Counts[kind].Updated, "updated de %s", kind)
	}

	// As linhas de métrica devem ser gravadas com os ids locais desta execução
	assert.Len(t, saved, 42)
	for _, record := range saved {
		assert.Equal(t, "ACC-"+testExternalAccountID, record.AccountID)
		assert.Contains(t, []string{"CAMP-100", "CAMP-200"}, *record.CampaignID)
		assert.Contains(t, []string{"AG-1001", "AG-2001"}, *record.AdGroupID)
		assert.Contains(t, *record.KeywordID, "KW-AG-")
	}
}

func TestSyncAccount_SegundaExecucaoApenasAtualiza(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newSyncMocks(ctrl)
	service := newSyncService(m)

	setupHierarchyMocks(m, false, nil)

	summary, err := service.SyncAccount(testExternalAccountID, testFilters())

	assert.NoError(t, err)
	assert.Equal(t, domain.SyncRunStatusCompleted, summary.Status)

	expected := map[domain.ResourceKind]int{
		domain.ResourceKindAccount:     1,
		domain.ResourceKindCampaign:    2,
		domain.ResourceKindAdGroup:     2,
		domain.ResourceKindKeyword:     6,
		domain.ResourceKindPerformance: 42,
	}
	for kind, count := range expected {
		assert.Equal(t, 0, summary.Counts[kind].Created, "created de %s", kind)
		assert.Equal(t, count, summary.Counts[kind].Updated, "updated de %s", kind)
	}
}

func TestSyncAccount_FalhaParcialNaoImpedeIrmaos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newSyncMocks(ctrl)
	service := newSyncService(m)

	accounts, campaigns, adGroupsByCampaign, keywordsByAdGroup, _ := testHierarchy()

	m.syncRunRepo.EXPECT().Create(gomock.Any()).Return(nil)
	m.credentialRepo.EXPECT().GetActiveByExternalAccountID(testExternalAccountID).Return(testCredential(), nil)
	m.clientFactory.EXPECT().GetClientForCredential(gomock.Any(), testExternalAccountID).Return(m.client, nil)

	m.fetcher.EXPECT().FetchAccounts(m.client, testExternalAccountID).Return(accounts, nil)
	m.accountRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("ACC-LOCAL", true, nil)

	m.fetcher.EXPECT().FetchCampaigns(m.client, testExternalAccountID).Return(campaigns, nil)
	m.campaignRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(
		func(campaign *domain.Campaign) (string, bool, error) {
			return "CAMP-" + campaign.ExternalID, true, nil
		}).Times(2)

	// A campanha 100 falha na busca dos grupos; a 200 segue normalmente
	m.fetcher.EXPECT().FetchAdGroups(m.client, testExternalAccountID, "100").Return(nil, assert.AnError)
	m.fetcher.EXPECT().FetchAdGroups(m.client, testExternalAccountID, "200").Return(adGroupsByCampaign["200"], nil)
	m.adGroupRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("AG-2001", true, nil)

	m.fetcher.EXPECT().FetchKeywords(m.client, testExternalAccountID, "2001").Return(keywordsByAdGroup["2001"], nil)
	m.keywordRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(
		func(keyword *domain.Keyword) (string, bool, error) {
			return "KW-" + keyword.ExternalID, true, nil
		}).Times(3)

	m.fetcher.EXPECT().FetchPerformance(m.client, testExternalAccountID, gomock.Any()).Return(nil, nil)

	// A conta fica marcada como FAILED e sem data de sincronização
	m.accountRepo.EXPECT().SetSyncStatus("ACC-LOCAL", domain.SyncStatusFailed, gomock.Nil()).Return(nil)
	m.syncRunRepo.EXPECT().Finish(gomock.Any()).Return(nil)

	summary, err := service.SyncAccount(testExternalAccountID, testFilters())

	assert.NoError(t, err)
	assert.Equal(t, domain.SyncRunStatusPartialFailure, summary.Status)
	assert.Len(t, summary.Errors, 1)
	assert.Equal(t, domain.ResourceKindAdGroup, summary.Errors[0].ResourceKind)
	assert.Equal(t, "100", summary.Errors[0].ExternalID)

	assert.Equal(t, 2, summary.Counts[domain.ResourceKindCampaign].Created)
	assert.Equal(t, 1, summary.Counts[domain.ResourceKindAdGroup].Created)
	assert.Equal(t, 3, summary.Counts[domain.ResourceKindKeyword].Created)
}

func TestSyncAccount_ContaManagerNaoSincronizaDetalhes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newSyncMocks(ctrl)
	service := newSyncService(m)

	manager := &domain.AdAccount{
		ExternalID: testExternalAccountID,
		Name:       "Conta Manager",
		IsManager:  true,
		Status:     domain.AdAccountStatusActive,
	}

	m.syncRunRepo.EXPECT().Create(gomock.Any()).Return(nil)
	m.credentialRepo.EXPECT().GetActiveByExternalAccountID(testExternalAccountID).Return(testCredential(), nil)
	m.clientFactory.EXPECT().GetClientForCredential(gomock.Any(), testExternalAccountID).Return(m.client, nil)

	m.fetcher.EXPECT().FetchAccounts(m.client, testExternalAccountID).Return([]*domain.AdAccount{manager}, nil)
	m.accountRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("ACC-MANAGER", true, nil)
	m.accountRepo.EXPECT().SetSyncStatus("ACC-MANAGER", domain.SyncStatusIdle, gomock.Not(gomock.Nil())).Return(nil)
	m.syncRunRepo.EXPECT().Finish(gomock.Any()).Return(nil)

	summary, err := service.SyncAccount(testExternalAccountID, testFilters())

	assert.NoError(t, err)
	assert.Equal(t, domain.SyncRunStatusCompleted, summary.Status)
	assert.Equal(t, 1, summary.Counts[domain.ResourceKindAccount].Created)
	assert.Equal(t, 0, summary.Counts[domain.ResourceKindCampaign].Created)
}

func TestSyncAccount_SemCredencialAbortaComoFalha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newSyncMocks(ctrl)
	service := newSyncService(m)

	m.syncRunRepo.EXPECT().Create(gomock.Any()).Return(nil)
	m.credentialRepo.EXPECT().GetActiveByExternalAccountID(testExternalAccountID).Return(nil, nil)
	m.syncRunRepo.EXPECT().Finish(gomock.Any()).DoAndReturn(func(run *domain.SyncRun) error {
		assert.Equal(t, domain.SyncRunStatusFailed, run.Status)
		assert.NotNil(t, run.FinishedAt)
		return nil
	})

	summary, err := service.SyncAccount(testExternalAccountID, nil)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoCredentialForAccount))
	assert.NotNil(t, summary)
	assert.Equal(t, domain.SyncRunStatusFailed, summary.Status)
}

func TestSyncAccount_FalhaDeAutenticacaoAbortaExecucao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newSyncMocks(ctrl)
	service := newSyncService(m)

	m.syncRunRepo.EXPECT().Create(gomock.Any()).Return(nil)
	m.credentialRepo.EXPECT().GetActiveByExternalAccountID(testExternalAccountID).Return(testCredential(), nil)
	m.clientFactory.EXPECT().GetClientForCredential(gomock.Any(), testExternalAccountID).Return(nil, assert.AnError)
	m.syncRunRepo.EXPECT().Finish(gomock.Any()).Return(nil)

	summary, err := service.SyncAccount(testExternalAccountID, testFilters())

	assert.Error(t, err)
	assert.Equal(t, domain.SyncRunStatusFailed, summary.Status)
	// Nenhum fetch foi disparado: os contadores permanecem zerados
	assert.Equal(t, 0, summary.Counts[domain.ResourceKindAccount].Created)
}

func TestSyncAccount_ExecucaoConcorrenteRetornaErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newSyncMocks(ctrl)
	service := newSyncService(m)

	service.runningMutex.Lock()
	service.running[testExternalAccountID] = true
	service.runningMutex.Unlock()

	summary, err := service.SyncAccount(testExternalAccountID, testFilters())

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ErrSyncInProgress)
}
