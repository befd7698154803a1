package syncing

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/google"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/utils"
)

// Syncer reconcilia a hierarquia de recursos do provedor com o banco local.
// Uma execução percorre contas, campanhas, grupos, palavras-chave e métricas
// nessa ordem, garantindo que todo filho seja gravado depois do pai.
type Syncer interface {
	SyncAccount(accountExternalID string, filters *domain.InsightFilters) (*domain.SyncSummary, error)
	ListRecentRuns(limit uint64) ([]*domain.SyncRun, error)
}

type Service struct {
	cfg             *config.Config
	credentialRepo  repository.CredentialRepository
	accountRepo     repository.AccountRepository
	campaignRepo    repository.CampaignRepository
	adGroupRepo     repository.AdGroupRepository
	keywordRepo     repository.KeywordRepository
	performanceRepo repository.PerformanceRepository
	syncRunRepo     repository.SyncRunRepository
	clientFactory   googleclient.ClientFactory
	fetcher         google.Fetcher

	// Trava por conta externa: duas execuções simultâneas da mesma conta
	// produziriam contadores inconsistentes no resumo.
	runningMutex sync.Mutex
	running      map[string]bool
}

func NewService(
	cfg *config.Config,
	credentialRepo repository.CredentialRepository,
	accountRepo repository.AccountRepository,
	campaignRepo repository.CampaignRepository,
	adGroupRepo repository.AdGroupRepository,
	keywordRepo repository.KeywordRepository,
	performanceRepo repository.PerformanceRepository,
	syncRunRepo repository.SyncRunRepository,
	clientFactory googleclient.ClientFactory,
	fetcher google.Fetcher,
) Syncer {
	return &Service{
		cfg:             cfg,
		credentialRepo:  credentialRepo,
		accountRepo:     accountRepo,
		campaignRepo:    campaignRepo,
		adGroupRepo:     adGroupRepo,
		keywordRepo:     keywordRepo,
		performanceRepo: performanceRepo,
		syncRunRepo:     syncRunRepo,
		clientFactory:   clientFactory,
		fetcher:         fetcher,
		running:         make(map[string]bool),
	}
}

// SyncAccount sincroniza a hierarquia completa visível pela conta externa
// informada. Falhas de autenticação abortam a execução inteira; falhas de
// busca de um recurso são registradas e não impedem os irmãos.
func (s *Service) SyncAccount(accountExternalID string, filters *domain.InsightFilters) (*domain.SyncSummary, error) {
	if !s.tryLock(accountExternalID) {
		return nil, ErrSyncInProgress
	}
	defer s.unlock(accountExternalID)

	filters = s.normalizeFilters(filters)

	summary := domain.NewSyncSummary(fmt.Sprintf("account:%s", accountExternalID))

	run := &domain.SyncRun{
		Scope:     summary.Scope,
		Status:    domain.SyncRunStatusRunning,
		StartedAt: summary.StartedAt,
		Counts:    summary.Counts,
		Errors:    summary.Errors,
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, &SyncAbortedError{Scope: summary.Scope, Err: err}
	}
	run.ID = runID
	summary.RunID = runID

	if err := s.syncRunRepo.Create(run); err != nil {
		logrus.WithError(err).Error("sync: erro ao registrar início da execução")
		return nil, &SyncAbortedError{Scope: summary.Scope, Err: ErrDatabaseOperation}
	}

	credential, err := s.credentialRepo.GetActiveByExternalAccountID(accountExternalID)
	if err != nil {
		s.finish(run, summary, domain.SyncRunStatusFailed)
		return summary, &SyncAbortedError{Scope: summary.Scope, Err: ErrDatabaseOperation}
	}

	if credential == nil {
		s.finish(run, summary, domain.SyncRunStatusFailed)
		return summary, &SyncAbortedError{Scope: summary.Scope, Err: ErrNoCredentialForAccount}
	}

	client, err := s.clientFactory.GetClientForCredential(credential, credential.ExternalAccountID)
	if err != nil {
		// Sem cliente autenticado não há o que reconciliar
		logrus.WithError(err).WithField("account_id", accountExternalID).
			Error("sync: falha ao obter cliente autenticado, execução abortada")
		s.finish(run, summary, domain.SyncRunStatusFailed)
		return summary, err
	}

	s.syncHierarchy(client, credential, summary, accountExternalID, filters)

	status := domain.SyncRunStatusCompleted
	if summary.HasErrors() {
		status = domain.SyncRunStatusPartialFailure
	}
	s.finish(run, summary, status)

	logrus.WithFields(logrus.Fields{
		"run_id": summary.RunID,
		"scope":  summary.Scope,
		"status": summary.Status,
		"errors": len(summary.Errors),
	}).Info("sync: execução concluída")

	return summary, nil
}

func (s *Service) ListRecentRuns(limit uint64) ([]*domain.SyncRun, error) {
	return s.syncRunRepo.ListRecent(limit)
}

// syncHierarchy percorre contas e, para contas não-manager, campanhas, grupos,
// palavras-chave e métricas, sempre gravando o pai antes dos filhos.
func (s *Service) syncHierarchy(
	client googleclient.Client,
	credential *domain.Credential,
	summary *domain.SyncSummary,
	accountExternalID string,
	filters *domain.InsightFilters,
) {
	accounts, err := s.fetcher.FetchAccounts(client, accountExternalID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountExternalID).
			Error("sync: erro ao buscar contas do provedor")
		summary.AddError(domain.ResourceKindAccount, accountExternalID, err)
		return
	}

	for _, account := range accounts {
		accountID, err := utils.GenerateID()
		if err != nil {
			summary.AddError(domain.ResourceKindAccount, account.ExternalID, err)
			continue
		}

		account.ID = accountID
		account.UserID = credential.UserID
		account.SyncStatus = domain.SyncStatusRunning

		localID, created, err := s.accountRepo.SaveOrUpdate(account)
		if err != nil {
			logrus.WithError(err).WithField("external_id", account.ExternalID).
				Error("sync: erro ao salvar conta")
			summary.AddError(domain.ResourceKindAccount, account.ExternalID, err)
			continue
		}
		summary.Record(domain.ResourceKindAccount, created)

		// Contas manager não têm campanhas próprias
		if account.IsManager {
			now := time.Now()
			if err := s.accountRepo.SetSyncStatus(localID, domain.SyncStatusIdle, &now); err != nil {
				logrus.WithError(err).Warn("sync: erro ao atualizar status da conta manager")
			}
			continue
		}

		errorsBefore := len(summary.Errors)
		s.syncAccountDetails(client, summary, localID, account.ExternalID, filters)

		now := time.Now()
		status := domain.SyncStatusIdle
		syncedAt := &now
		if len(summary.Errors) > errorsBefore {
			status = domain.SyncStatusFailed
			syncedAt = nil
		}

		if err := s.accountRepo.SetSyncStatus(localID, status, syncedAt); err != nil {
			logrus.WithError(err).WithField("account_id", localID).
				Warn("sync: erro ao atualizar status de sincronização da conta")
		}
	}
}

func (s *Service) syncAccountDetails(
	client googleclient.Client,
	summary *domain.SyncSummary,
	accountID, accountExternalID string,
	filters *domain.InsightFilters,
) {
	campaignIDs := make(map[string]string)
	adGroupIDs := make(map[string]string)
	keywordIDs := make(map[string]string)

	campaigns, err := s.fetcher.FetchCampaigns(client, accountExternalID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountExternalID).
			Error("sync: erro ao buscar campanhas")
		summary.AddError(domain.ResourceKindCampaign, accountExternalID, err)
		return
	}

	for _, campaign := range campaigns {
		campaignExternalID := campaign.ExternalID

		id, err := utils.GenerateID()
		if err != nil {
			summary.AddError(domain.ResourceKindCampaign, campaignExternalID, err)
			continue
		}

		campaign.ID = id
		campaign.AccountID = accountID

		localID, created, err := s.campaignRepo.SaveOrUpdate(campaign)
		if err != nil {
			logrus.WithError(err).WithField("external_id", campaignExternalID).
				Error("sync: erro ao salvar campanha")
			summary.AddError(domain.ResourceKindCampaign, campaignExternalID, err)
			continue
		}
		summary.Record(domain.ResourceKindCampaign, created)
		campaignIDs[campaignExternalID] = localID

		s.syncAdGroups(client, summary, accountExternalID, campaignExternalID, localID, adGroupIDs, keywordIDs)
	}

	s.syncPerformance(client, summary, accountID, accountExternalID, filters, campaignIDs, adGroupIDs, keywordIDs)
}

func (s *Service) syncAdGroups(
	client googleclient.Client,
	summary *domain.SyncSummary,
	accountExternalID, campaignExternalID, campaignID string,
	adGroupIDs, keywordIDs map[string]string,
) {
	adGroups, err := s.fetcher.FetchAdGroups(client, accountExternalID, campaignExternalID)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignExternalID).
			Error("sync: erro ao buscar grupos de anúncios")
		summary.AddError(domain.ResourceKindAdGroup, campaignExternalID, err)
		return
	}

	for _, adGroup := range adGroups {
		adGroupExternalID := adGroup.ExternalID

		id, err := utils.GenerateID()
		if err != nil {
			summary.AddError(domain.ResourceKindAdGroup, adGroupExternalID, err)
			continue
		}

		adGroup.ID = id
		adGroup.CampaignID = campaignID

		localID, created, err := s.adGroupRepo.SaveOrUpdate(adGroup)
		if err != nil {
			logrus.WithError(err).WithField("external_id", adGroupExternalID).
				Error("sync: erro ao salvar grupo de anúncios")
			summary.AddError(domain.ResourceKindAdGroup, adGroupExternalID, err)
			continue
		}
		summary.Record(domain.ResourceKindAdGroup, created)
		adGroupIDs[adGroupExternalID] = localID

		s.syncKeywords(client, summary, accountExternalID, adGroupExternalID, localID, keywordIDs)
	}
}

func (s *Service) syncKeywords(
	client googleclient.Client,
	summary *domain.SyncSummary,
	accountExternalID, adGroupExternalID, adGroupID string,
	keywordIDs map[string]string,
) {
	keywords, err := s.fetcher.FetchKeywords(client, accountExternalID, adGroupExternalID)
	if err != nil {
		logrus.WithError(err).WithField("ad_group_id", adGroupExternalID).
			Error("sync: erro ao buscar palavras-chave")
		summary.AddError(domain.ResourceKindKeyword, adGroupExternalID, err)
		return
	}

	for _, keyword := range keywords {
		keywordExternalID := keyword.ExternalID

		id, err := utils.GenerateID()
		if err != nil {
			summary.AddError(domain.ResourceKindKeyword, keywordExternalID, err)
			continue
		}

		keyword.ID = id
		keyword.AdGroupID = adGroupID

		localID, created, err := s.keywordRepo.SaveOrUpdate(keyword)
		if err != nil {
			logrus.WithError(err).WithField("external_id", keywordExternalID).
				Error("sync: erro ao salvar palavra-chave")
			summary.AddError(domain.ResourceKindKeyword, keywordExternalID, err)
			continue
		}
		summary.Record(domain.ResourceKindKeyword, created)

		// Criterion ids só são únicos dentro do grupo de anúncios
		keywordIDs[keywordKey(adGroupExternalID, keywordExternalID)] = localID
	}
}

// syncPerformance grava as métricas diárias resolvendo os ids externos das
// linhas para os ids locais gravados nesta mesma execução.
func (s *Service) syncPerformance(
	client googleclient.Client,
	summary *domain.SyncSummary,
	accountID, accountExternalID string,
	filters *domain.InsightFilters,
	campaignIDs, adGroupIDs, keywordIDs map[string]string,
) {
	records, err := s.fetcher.FetchPerformance(client, accountExternalID, filters)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountExternalID).
			Error("sync: erro ao buscar métricas de desempenho")
		summary.AddError(domain.ResourceKindPerformance, accountExternalID, err)
		return
	}

	for _, record := range records {
		if !s.resolvePerformanceIDs(record, accountID, campaignIDs, adGroupIDs, keywordIDs) {
			logrus.WithFields(logrus.Fields{
				"account_id": accountExternalID,
				"date":       record.Date.Format(time.DateOnly),
			}).Warn("sync: métrica referencia recurso não sincronizado, registro ignorado")
			continue
		}

		id, err := utils.GenerateID()
		if err != nil {
			summary.AddError(domain.ResourceKindPerformance, accountExternalID, err)
			continue
		}
		record.ID = id

		created, err := s.performanceRepo.SaveOrUpdate(record)
		if err != nil {
			logrus.WithError(err).WithField("account_id", accountExternalID).
				Error("sync: erro ao salvar métrica de desempenho")
			summary.AddError(domain.ResourceKindPerformance, accountExternalID, err)
			continue
		}
		summary.Record(domain.ResourceKindPerformance, created)
	}
}

// resolvePerformanceIDs troca os ids externos da linha de métrica pelos ids
// locais. Devolve false quando algum vínculo não foi sincronizado nesta execução.
func (s *Service) resolvePerformanceIDs(
	record *domain.PerformanceRecord,
	accountID string,
	campaignIDs, adGroupIDs, keywordIDs map[string]string,
) bool {
	record.AccountID = accountID

	var adGroupExternalID string
	if record.AdGroupID != nil {
		adGroupExternalID = *record.AdGroupID
	}

	if record.CampaignID != nil {
		localID, ok := campaignIDs[*record.CampaignID]
		if !ok {
			return false
		}
		record.CampaignID = &localID
	}

	if record.AdGroupID != nil {
		localID, ok := adGroupIDs[adGroupExternalID]
		if !ok {
			return false
		}
		record.AdGroupID = &localID
	}

	if record.KeywordID != nil {
		localID, ok := keywordIDs[keywordKey(adGroupExternalID, *record.KeywordID)]
		if !ok {
			return false
		}
		record.KeywordID = &localID
	}

	return true
}

func (s *Service) finish(run *domain.SyncRun, summary *domain.SyncSummary, status domain.SyncRunStatus) {
	now := time.Now()

	summary.Status = status
	summary.FinishedAt = now

	run.Status = status
	run.FinishedAt = &now
	run.Counts = summary.Counts
	run.Errors = summary.Errors

	if err := s.syncRunRepo.Finish(run); err != nil {
		logrus.WithError(err).WithField("run_id", run.ID).
			Error("sync: erro ao registrar fim da execução")
	}
}

func (s *Service) normalizeFilters(filters *domain.InsightFilters) *domain.InsightFilters {
	if filters == nil {
		filters = &domain.InsightFilters{}
	}

	if filters.EndDate == nil {
		end := time.Now()
		filters.EndDate = &end
	}

	if filters.StartDate == nil {
		start := filters.EndDate.AddDate(0, 0, -s.cfg.AccountSync.LookbackDays)
		filters.StartDate = &start
	}

	return filters
}

func (s *Service) tryLock(accountExternalID string) bool {
	s.runningMutex.Lock()
	defer s.runningMutex.Unlock()

	if s.running[accountExternalID] {
		return false
	}

	s.running[accountExternalID] = true
	return true
}

func (s *Service) unlock(accountExternalID string) {
	s.runningMutex.Lock()
	defer s.runningMutex.Unlock()

	delete(s.running, accountExternalID)
}

func keywordKey(adGroupExternalID, criterionID string) string {
	return adGroupExternalID + ":" + criterionID
}
