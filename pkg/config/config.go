package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/fx"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type Env string

const (
	EnvDev  Env = "dev"
	EnvProd Env = "prod"
)

// StoreBackend selects which record store holds product/plan records.
type StoreBackend string

const (
	// StoreBackendMemory keeps records in a process-local list.
	StoreBackendMemory StoreBackend = "memory"
	// StoreBackendAirtable keeps records in Airtable tables.
	StoreBackendAirtable StoreBackend = "airtable"
	// StoreBackendProvider keeps records at the payment provider itself:
	// one-time records are invoices, subscription records are plans.
	StoreBackendProvider StoreBackend = "provider"
)

type StoreConfig struct {
	Backend StoreBackend `mapstructure:"backend"`
}

// AirtableConfig is validated lazily: a missing PAT or base id surfaces as a
// store-unavailable error on first use, not at startup.
type AirtableConfig struct {
	PAT         string `mapstructure:"pat"`
	BaseID      string `mapstructure:"base_id"`
	OrdersTable string `mapstructure:"orders_table"`
	PlansTable  string `mapstructure:"plans_table"`
}

type NOWPaymentsConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	Email          string `mapstructure:"email"`
	Password       string `mapstructure:"password"`
	IPNSecret      string `mapstructure:"ipn_secret"`
	IPNCallbackURL string `mapstructure:"ipn_callback_url"`
	// IntervalDays is the recurring billing interval for subscription plans.
	IntervalDays int `mapstructure:"interval_days"`
}

type CheckoutConfig struct {
	// PublicBaseURL is the origin used for generated checkout URLs. When
	// empty, the request's Origin header is used instead.
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// AutomationConfig points checkout submissions at a no-code automation
// webhook. When the URL is set, the submit endpoint delegates to it instead
// of calling the payment provider directly.
type AutomationConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
}

type Config struct {
	Env         Env               `mapstructure:"env"`
	Server      ServerConfig      `mapstructure:"server"`
	Store       StoreConfig       `mapstructure:"store"`
	Airtable    AirtableConfig    `mapstructure:"airtable"`
	NOWPayments NOWPaymentsConfig `mapstructure:"nowpayments"`
	Checkout    CheckoutConfig    `mapstructure:"checkout"`
	Automation  AutomationConfig  `mapstructure:"automation"`
	MetricsAddr string            `mapstructure:"metrics_addr"`
}

func New() (*Config, error) {
	v := viper.New()
	// Allow overriding config file via env:
	// - APP_CONFIG_FILE: absolute or relative file path (e.g., /etc/app/prod.yaml)
	// - APP_CONFIG_NAME: config base name without extension (default: "config")
	if file := os.Getenv("APP_CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
	} else {
		cfgName := os.Getenv("APP_CONFIG_NAME")
		if cfgName == "" {
			cfgName = "config"
		}
		v.SetConfigName(cfgName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("env", "dev")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8888)
	v.SetDefault("metrics_addr", ":90")
	v.SetDefault("store.backend", string(StoreBackendMemory))
	v.SetDefault("airtable.orders_table", "Orders")
	v.SetDefault("airtable.plans_table", "SubscriptionPlans")
	v.SetDefault("nowpayments.base_url", "https://api.nowpayments.io/v1")
	v.SetDefault("nowpayments.interval_days", 30)

	if err := v.ReadInConfig(); err != nil {
		_ = err
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &c, nil
}

var Module = fx.Options(
	fx.Provide(New),
)
