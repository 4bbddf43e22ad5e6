package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Dashboard       Dashboard       `mapstructure:",squash"`
	Generation      Generation      `mapstructure:",squash"`
	Render          Render          `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	SnapshotRefresh SnapshotRefresh `mapstructure:",squash"`
	Report          Report          `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
	// DemoMode libera dados sintéticos (séries de fluxo de caixa) nas respostas
	DemoMode bool `mapstructure:"demo_mode"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Database é opcional: sem URL o arquivo de transcrições fica em memória
type Database struct {
	URL             string        `mapstructure:"database_url"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Dashboard struct {
	BaseURL string        `mapstructure:"dashboard_base_url"`
	Timeout time.Duration `mapstructure:"dashboard_timeout"`
}

type Generation struct {
	Driver  string        `mapstructure:"generation_driver"`
	BaseURL string        `mapstructure:"generation_base_url"`
	Model   string        `mapstructure:"generation_model"`
	APIKey  string        `mapstructure:"generation_api_key"`
	Timeout time.Duration `mapstructure:"generation_timeout"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type Auth struct {
	Enabled              bool          `mapstructure:"auth_enabled"`
	Secret               string        `mapstructure:"auth_secret"`
	OperatorEmail        string        `mapstructure:"auth_operator_email"`
	OperatorPasswordHash string        `mapstructure:"auth_operator_password_hash"`
	TokenTTL             time.Duration `mapstructure:"auth_token_ttl"`
}

type SnapshotRefresh struct {
	Interval             time.Duration `mapstructure:"snapshot_refresh_interval"`
	Enabled              bool          `mapstructure:"snapshot_refresh_enabled"`
	AutoGenerateInsights bool          `mapstructure:"snapshot_refresh_autogenerate_insights"`
}

type Report struct {
	Palette []string `mapstructure:"report_palette"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 5)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("DASHBOARD_BASE_URL", "https://zaidawn.site/wp-json/ims/v1")
	viper.SetDefault("DASHBOARD_TIMEOUT", "30s")

	viper.SetDefault("GENERATION_DRIVER", "rest")
	viper.SetDefault("GENERATION_BASE_URL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("GENERATION_MODEL", "gemini-2.0-flash")
	viper.SetDefault("GENERATION_API_KEY", "") // nunca versionar a chave
	viper.SetDefault("GENERATION_TIMEOUT", "60s")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_OPERATOR_EMAIL", "")
	viper.SetDefault("AUTH_OPERATOR_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	// Atualização do snapshot a cada 5 minutos
	viper.SetDefault("SNAPSHOT_REFRESH_INTERVAL", "5m")
	viper.SetDefault("SNAPSHOT_REFRESH_ENABLED", true)
	viper.SetDefault("SNAPSHOT_REFRESH_AUTOGENERATE_INSIGHTS", true)

	viper.SetDefault("REPORT_PALETTE", "#3b82f6,#10b981,#f59e0b,#ef4444,#8b5cf6,#ec4899")

	viper.SetDefault("DEMO_MODE", false)
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FILE", "")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Report.Palette = trimAll(config.Report.Palette)
	config.Server.AllowedOrigins = trimAll(config.Server.AllowedOrigins)
	config.Dashboard.BaseURL = strings.TrimRight(config.Dashboard.BaseURL, "/")
	config.Generation.BaseURL = strings.TrimRight(config.Generation.BaseURL, "/")

	// A chave da API de geração pode vir de um secret file do Render
	if config.Generation.APIKey == "" && config.Render.ServiceID != "" {
		var storage SecretStorage = NewRenderClient(config)
		secrets, err := storage.ListSecrets(config.Render.ServiceID)
		if err != nil {
			logrus.WithError(err).Warn("Não foi possível obter os secrets do Render")
		} else if key, ok := secrets[GenerationAPIKeySecret]; ok {
			config.Generation.APIKey = strings.TrimSpace(key)
		}
	}

	if config.Generation.APIKey == "" {
		logrus.Warn("GENERATION_API_KEY não configurada: chamadas de geração irão falhar")
	}

	return config, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
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
