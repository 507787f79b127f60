package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Draft store backends.
const (
	DraftStoreMemory   = "memory"
	DraftStoreDynamoDB = "dynamodb"
)

// Config holds the service configuration. Values come from the environment
// (optionally a .env file loaded by godotenv in main) with defaults below.
type Config struct {
	App      AppConfig      `mapstructure:",squash"`
	WhatsApp WhatsAppConfig `mapstructure:",squash"`
	Drafts   DraftsConfig   `mapstructure:",squash"`
	DynamoDB DynamoDBConfig `mapstructure:",squash"`
}

type AppConfig struct {
	Env              string        `mapstructure:"app_env"`
	Port             int           `mapstructure:"http_port"`
	LogLevel         string        `mapstructure:"log_level"`
	ShutdownTimeout  time.Duration `mapstructure:"shutdown_timeout"`
	CORSAllowOrigins string        `mapstructure:"cors_allow_origins"`
	SessionCookie    string        `mapstructure:"session_cookie"`
}

type WhatsAppConfig struct {
	BaseURL string `mapstructure:"whatsapp_base_url"`
	Phone   string `mapstructure:"whatsapp_phone"`
}

type DraftsConfig struct {
	Store         string        `mapstructure:"draft_store"`
	TTL           time.Duration `mapstructure:"draft_ttl"`
	SweepInterval time.Duration `mapstructure:"draft_sweep_interval"`
	Table         string        `mapstructure:"drafts_table"`
}

// DynamoDBConfig mirrors the variables read by the DynamoDB client.
type DynamoDBConfig struct {
	Region          string `mapstructure:"aws_region"`
	AccessKeyID     string `mapstructure:"aws_access_key_id"`
	SecretAccessKey string `mapstructure:"aws_secret_access_key"`
	Endpoint        string `mapstructure:"dynamodb_endpoint"`
}

func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, "production")
}

// AllowedOrigins splits CORS_ALLOW_ORIGINS on commas.
func (a AppConfig) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(a.CORSAllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	setDefaults(v)

	// AutomaticEnv only resolves keys viper already knows about; every key
	// has a default, so bind them all explicitly for Unmarshal.
	for _, key := range v.AllKeys() {
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to bind config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("http_port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("cors_allow_origins", "*")
	v.SetDefault("session_cookie", "fabar_session")

	v.SetDefault("whatsapp_base_url", "https://api.whatsapp.com/send")
	v.SetDefault("whatsapp_phone", "556191362933")

	v.SetDefault("draft_store", DraftStoreMemory)
	v.SetDefault("draft_ttl", 2*time.Hour)
	v.SetDefault("draft_sweep_interval", time.Minute)
	v.SetDefault("drafts_table", "quote_drafts")

	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("aws_access_key_id", "local")
	v.SetDefault("aws_secret_access_key", "local")
	v.SetDefault("dynamodb_endpoint", "")
}

// Validate checks the values the service cannot start without.
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.App.Port)
	}
	if strings.TrimSpace(c.WhatsApp.Phone) == "" {
		return errors.New("WHATSAPP_PHONE is required")
	}
	if strings.TrimSpace(c.App.SessionCookie) == "" {
		return errors.New("SESSION_COOKIE is required")
	}
	switch c.Drafts.Store {
	case DraftStoreMemory, DraftStoreDynamoDB:
	default:
		return fmt.Errorf("invalid DRAFT_STORE %q", c.Drafts.Store)
	}
	if c.Drafts.TTL <= 0 {
		return errors.New("DRAFT_TTL must be positive")
	}
	if c.Drafts.Store == DraftStoreDynamoDB && strings.TrimSpace(c.Drafts.Table) == "" {
		return errors.New("DRAFTS_TABLE is required for the dynamodb draft store")
	}
	return nil
}
