package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/syncing"
)

// AccountSyncConfig representa a configuração do agendador de sincronização de contas
type AccountSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// AccountSyncService gerencia o agendamento e execução da sincronização das
// contas conectadas. Cada credencial ativa dispara uma execução independente.
type AccountSyncService struct {
	scheduler           *gocron.Scheduler
	config              AccountSyncConfig
	appConfig           *config.Config
	credentialRepo      repository.CredentialRepository
	syncer              syncing.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAccountSyncService cria uma nova instância do serviço de sincronização de contas
func NewAccountSyncService(
	credentialRepo repository.CredentialRepository,
	syncer syncing.Syncer,
	appConfig *config.Config,
) *AccountSyncService {
	// Criar a configuração com base na config global
	syncConfig := AccountSyncConfig{
		CronSchedule:        appConfig.AccountSync.CronSchedule,
		LookbackDays:        appConfig.AccountSync.LookbackDays,
		RequestDelaySeconds: appConfig.AccountSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.AccountSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.AccountSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de contas carregada")

	return &AccountSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		appConfig:      appConfig,
		credentialRepo: credentialRepo,
		syncer:         syncer,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *AccountSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de contas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de contas")

	// Agendar a sincronização das contas conectadas
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllConnectedAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de contas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de contas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllConnectedAccounts sincroniza a hierarquia de todas as credenciais ativas
func (s *AccountSyncService) syncAllConnectedAccounts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de contas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de todas as credenciais ativas")

	credentials, err := s.credentialRepo.ListActive()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar credenciais ativas para sincronização")
		return
	}

	if len(credentials) == 0 {
		logrus.Info("Nenhuma credencial ativa encontrada para sincronização")
		return
	}

	filters := s.buildFilters()

	logrus.WithFields(logrus.Fields{
		"credentials": len(credentials),
		"start_date":  filters.StartDate.Format(time.DateOnly),
		"end_date":    filters.EndDate.Format(time.DateOnly),
	}).Info("Período para sincronização de contas")

	s.processCredentials(credentials, filters)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":    duration.String(),
		"credentials": len(credentials),
		"days":        s.config.LookbackDays,
	}).Info("Sincronização de contas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// buildFilters cria o intervalo de datas da sincronização agendada
func (s *AccountSyncService) buildFilters() *domain.InsightFilters {
	endDate := time.Now().AddDate(0, 0, -1) // Até ontem: o dia corrente ainda muda
	startDate := endDate.AddDate(0, 0, -s.config.LookbackDays+1)

	return &domain.InsightFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	}
}

// processCredentials dispara a sincronização de cada credencial com concorrência limitada
func (s *AccountSyncService) processCredentials(credentials []*domain.Credential, filters *domain.InsightFilters) {
	// Criar um canal para controlar o número de workers concorrentes
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, credential := range credentials {
		if credential.ExternalAccountID == "" {
			logrus.WithField("credential_id", credential.ID).Warn("Credencial sem conta externa. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(cred *domain.Credential) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"credential_id":       cred.ID,
				"external_account_id": cred.ExternalAccountID,
				"user_id":             cred.UserID,
			}).Info("Sincronizando hierarquia da credencial")

			summary, err := s.syncer.SyncAccount(cred.ExternalAccountID, filters)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"credential_id":       cred.ID,
					"external_account_id": cred.ExternalAccountID,
					"error":               err.Error(),
				}).Error("Erro na sincronização agendada da credencial")
				return
			}

			logrus.WithFields(logrus.Fields{
				"run_id":              summary.RunID,
				"external_account_id": cred.ExternalAccountID,
				"status":              summary.Status,
				"errors":              len(summary.Errors),
			}).Info("Sincronização agendada da credencial concluída")

			// Aguardar antes da próxima credencial para evitar sobrecarga na API
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(credential)
	}

	// Aguardar todos os workers terminarem
	wg.Wait()
}

// TriggerManualSync inicia manualmente uma sincronização de todas as credenciais
func (s *AccountSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de contas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de contas")
	go s.syncAllConnectedAccounts()
}

// GetStatus retorna o status atual do agendador
func (s *AccountSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"retention_policy":       "dados mantidos permanentemente",
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
