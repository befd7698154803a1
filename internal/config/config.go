package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	GoogleAds   GoogleAds   `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	AccountSync AccountSync `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// GoogleAds concentra as credenciais de aplicação do Google Ads.
// ClientID/ClientSecret são do app OAuth; DeveloperToken é o token de
// aplicação exigido pela API de consultas.
type GoogleAds struct {
	BaseURL         string   `mapstructure:"google_ads_base_url"`
	URL             string   `mapstructure:"-"`
	Version         string   `mapstructure:"google_ads_version"`
	ClientID        string   `mapstructure:"google_oauth_client_id"`
	ClientSecret    string   `mapstructure:"google_oauth_client_secret"`
	RedirectURL     string   `mapstructure:"google_oauth_redirect_url"`
	TokenURL        string   `mapstructure:"google_oauth_token_url"`
	AuthURL         string   `mapstructure:"google_oauth_auth_url"`
	Scopes          []string `mapstructure:"google_oauth_scopes"`
	DeveloperToken  string   `mapstructure:"google_ads_developer_token"`
	RefreshSkewMins int      `mapstructure:"google_token_refresh_skew_minutes"`
	RequestTimeoutS int      `mapstructure:"google_ads_request_timeout_seconds"`
	SearchPageSize  int      `mapstructure:"google_ads_search_page_size"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// AccountSync controla o agendador da sincronização completa de contas.
type AccountSync struct {
	CronSchedule        string `mapstructure:"account_sync_cron"`
	LookbackDays        int    `mapstructure:"account_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"account_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"account_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"account_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_manager")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_OAUTH_CLIENT_ID", "your_client_id")
	viper.SetDefault("GOOGLE_OAUTH_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GOOGLE_OAUTH_REDIRECT_URL", "http://localhost:8000/v1/oauth/google/callback")
	viper.SetDefault("GOOGLE_OAUTH_AUTH_URL", "https://accounts.google.com/o/oauth2/auth")
	viper.SetDefault("GOOGLE_OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_OAUTH_SCOPES", "https://www.googleapis.com/auth/adwords")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "your_developer_token")
	viper.SetDefault("GOOGLE_TOKEN_REFRESH_SKEW_MINUTES", 5)
	viper.SetDefault("GOOGLE_ADS_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("GOOGLE_ADS_SEARCH_PAGE_SIZE", 500)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults do agendador de sincronização
	viper.SetDefault("ACCOUNT_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("ACCOUNT_SYNC_LOOKBACK_DAYS", 7)         // 7 dias de métricas por execução
	viper.SetDefault("ACCOUNT_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre contas
	viper.SetDefault("ACCOUNT_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 contas em paralelo
	viper.SetDefault("ACCOUNT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
