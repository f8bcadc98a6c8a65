package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	DocStore       DocStore       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Backend        Backend        `mapstructure:",squash"`
	Alerts         Alerts         `mapstructure:",squash"`
	LowStockAlerts LowStockAlerts `mapstructure:",squash"`
	Views          Views          `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
}

// DocStore escolhe o adaptador dos documentos em tempo real: postgres, mongo ou memory
type DocStore struct {
	Driver        string `mapstructure:"docstore_driver"`
	MongoURI      string `mapstructure:"docstore_mongo_uri"`
	MongoDatabase string `mapstructure:"docstore_mongo_database"`
	NotifyChannel string `mapstructure:"docstore_notify_channel"`
	SeedDemoData  bool   `mapstructure:"docstore_seed_demo_data"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	TokenTTL             time.Duration `mapstructure:"auth_token_ttl"`
	AllowedEmails        []string      `mapstructure:"auth_allowed_emails"`
	AdminEmails          []string      `mapstructure:"auth_admin_emails"`
	SessionSweepInterval time.Duration `mapstructure:"auth_session_sweep_interval"`
}

// Backend são os endpoints externos de upload, previsão e SMS
type Backend struct {
	BaseURL        string        `mapstructure:"backend_base_url"`
	SMSAPIKey      string        `mapstructure:"backend_sms_api_key"`
	Timeout        time.Duration `mapstructure:"backend_timeout"`
	MaxUploadBytes int64         `mapstructure:"backend_max_upload_bytes"`
}

type Alerts struct {
	Channel        string `mapstructure:"alerts_channel"`
	TelegramToken  string `mapstructure:"alerts_telegram_token"`
	TelegramChatID int64  `mapstructure:"alerts_telegram_chat_id"`
}

type LowStockAlerts struct {
	CronSchedule string  `mapstructure:"low_stock_alerts_cron"`
	Threshold    float64 `mapstructure:"low_stock_alerts_threshold"`
	PhoneNumber  string  `mapstructure:"low_stock_alerts_phone"`
	Enabled      bool    `mapstructure:"low_stock_alerts_enabled"`
}

type Views struct {
	LowStockThreshold float64 `mapstructure:"views_low_stock_threshold"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/inventory?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "5m")

	viper.SetDefault("DOCSTORE_DRIVER", "postgres")
	viper.SetDefault("DOCSTORE_MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("DOCSTORE_MONGO_DATABASE", "inventory")
	viper.SetDefault("DOCSTORE_NOTIFY_CHANNEL", "documents_changed")
	viper.SetDefault("DOCSTORE_SEED_DEMO_DATA", false)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_ALLOWED_EMAILS", "")
	viper.SetDefault("AUTH_ADMIN_EMAILS", "")
	viper.SetDefault("AUTH_SESSION_SWEEP_INTERVAL", "5m")

	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:5000")
	viper.SetDefault("BACKEND_SMS_API_KEY", "")
	viper.SetDefault("BACKEND_TIMEOUT", "30s")
	viper.SetDefault("BACKEND_MAX_UPLOAD_BYTES", 10<<20) // 10MB

	viper.SetDefault("ALERTS_CHANNEL", "sms")
	viper.SetDefault("ALERTS_TELEGRAM_TOKEN", "")
	viper.SetDefault("ALERTS_TELEGRAM_CHAT_ID", 0)

	viper.SetDefault("LOW_STOCK_ALERTS_CRON", "0 8 * * *") // Todos os dias às 8h da manhã
	viper.SetDefault("LOW_STOCK_ALERTS_THRESHOLD", 20)
	viper.SetDefault("LOW_STOCK_ALERTS_PHONE", "")
	viper.SetDefault("LOW_STOCK_ALERTS_ENABLED", false)

	viper.SetDefault("VIEWS_LOW_STOCK_THRESHOLD", 20)

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

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	config.Auth.AllowedEmails = compact(config.Auth.AllowedEmails)
	config.Auth.AdminEmails = compact(config.Auth.AdminEmails)
	config.Server.AllowedOrigins = compact(config.Server.AllowedOrigins)

	return config, nil
}

// compact remove entradas vazias geradas por variáveis como "a@x.com,"
func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
