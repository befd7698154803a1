package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/google"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/api"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/scheduler"
	"github.com/vfg2006/ads-manager-api/internal/usecases/account"
	"github.com/vfg2006/ads-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-manager-api/internal/usecases/connecting"
	"github.com/vfg2006/ads-manager-api/internal/usecases/syncing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	credentialRepo := repository.NewCredentialRepository(pgConn)
	accountRepo := repository.NewAccountRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	adGroupRepo := repository.NewAdGroupRepository(pgConn)
	keywordRepo := repository.NewKeywordRepository(pgConn)
	performanceRepo := repository.NewPerformanceRepository(pgConn)
	syncRunRepo := repository.NewSyncRunRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, accountRepo, cfg)

	// Camada de acesso ao Google Ads: renovação de token e fábrica de clientes
	tokenRefresher := googleclient.NewTokenRefresher(cfg, credentialRepo)
	clientFactory := googleclient.NewFactory(cfg, credentialRepo, tokenRefresher)
	fetcher := google.New(cfg)

	connectService := connecting.NewService(cfg, credentialRepo, clientFactory)

	syncService := syncing.NewService(
		cfg,
		credentialRepo,
		accountRepo,
		campaignRepo,
		adGroupRepo,
		keywordRepo,
		performanceRepo,
		syncRunRepo,
		clientFactory,
		fetcher,
	)

	accountService := account.NewService(accountRepo, campaignRepo, performanceRepo)

	// Inicializa o agendador de sincronização de contas
	accountSyncService := scheduler.NewAccountSyncService(credentialRepo, syncService, cfg)

	if err := accountSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de contas")
	} else {
		logrus.Info("Agendador de sincronização de contas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		accountService,
		connectService,
		syncService,
		authenticator,
		accountSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
