package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// WhatsApp assistant specifics
	Meta   MetaConfig
	Gemini GeminiConfig
	Google GoogleConfig
	Store  StoreConfig
	Agent  AgentConfig

	// Dashboard
	Admin AdminConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// MetaConfig holds WhatsApp Cloud API credentials.
type MetaConfig struct {
	AccessToken   string
	PhoneNumberID string
	VerifyToken   string
	APIURL        string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// GoogleConfig covers the Calendar, Gmail and Sheets integrations.
type GoogleConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	SheetID         string
}

type StoreConfig struct {
	Path string
}

type AgentConfig struct {
	Timezone string
	MaxSteps int
}

type AdminConfig struct {
	JWTSecret         string
	BootstrapUser     string
	BootstrapPassword string
}

type WebhookConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Meta / WhatsApp Cloud API
	cfg.Meta.AccessToken = viper.GetString("meta.access_token")
	cfg.Meta.PhoneNumberID = viper.GetString("meta.phone_number_id")
	cfg.Meta.VerifyToken = viper.GetString("meta.verify_token")
	cfg.Meta.APIURL = viper.GetString("meta.api_url")
	if token := viper.GetString("meta_access_token"); token != "" {
		cfg.Meta.AccessToken = token
	}
	if id := viper.GetString("meta_phone_number_id"); id != "" {
		cfg.Meta.PhoneNumberID = id
	}
	if token := viper.GetString("meta_verify_token"); token != "" {
		cfg.Meta.VerifyToken = token
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}

	// Google Workspace
	cfg.Google.CredentialsPath = viper.GetString("google.credentials_path")
	cfg.Google.TokenPath = viper.GetString("google.token_path")
	cfg.Google.CalendarID = viper.GetString("google.calendar_id")
	cfg.Google.SheetID = viper.GetString("google.sheet_id")
	if creds := viper.GetString("google_credentials"); creds != "" {
		cfg.Google.CredentialsPath = creds
	}
	if sheet := viper.GetString("google_sheet_id"); sheet != "" {
		cfg.Google.SheetID = sheet
	}

	// Conversation store
	cfg.Store.Path = viper.GetString("store.path")

	// Agent
	cfg.Agent.Timezone = viper.GetString("agent.timezone")
	cfg.Agent.MaxSteps = viper.GetInt("agent.max_steps")

	// Admin dashboard
	cfg.Admin.JWTSecret = viper.GetString("admin.jwt_secret")
	cfg.Admin.BootstrapUser = viper.GetString("admin.bootstrap_user")
	cfg.Admin.BootstrapPassword = viper.GetString("admin.bootstrap_password")
	if secret := viper.GetString("admin_jwt_secret"); secret != "" {
		cfg.Admin.JWTSecret = secret
	}
	if pw := viper.GetString("admin_bootstrap_password"); pw != "" {
		cfg.Admin.BootstrapPassword = pw
	}

	// Webhooks
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// Hard requirements: the service cannot answer anyone without these.
	if cfg.Meta.VerifyToken == "" {
		return nil, fmt.Errorf("meta.verify_token is required (or set META_VERIFY_TOKEN)")
	}
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini.api_key is required (or set GEMINI_API_KEY)")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("meta.api_url", "https://graph.facebook.com/v17.0")
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("google.credentials_path", "credentials.json")
	viper.SetDefault("google.token_path", "token.json")
	viper.SetDefault("google.calendar_id", "primary")
	viper.SetDefault("store.path", "chat_history.db")
	viper.SetDefault("agent.timezone", "Asia/Karachi")
	viper.SetDefault("agent.max_steps", 5)
	viper.SetDefault("admin.bootstrap_user", "admin")
	viper.SetDefault("webhook.rate_limit_per_min", 60)
}
