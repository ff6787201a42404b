package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config/local.yaml"

// Storage backends for cart and checkout state.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Payment gateways.
const (
	GatewaySimulated = "simulated"
	GatewayStripe    = "stripe"
)

type HTTPServer struct {
	Addr            string        `yaml:"address"          env:"HTTP_ADDRESS"     env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type CacheConfig struct {
	Backend    string        `yaml:"backend"     env:"STORAGE_BACKEND" env-default:"memory"`
	DefaultTTL time.Duration `yaml:"default_ttl" env:"STORAGE_TTL"     env-default:"720h"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST"     env:"REDIS_HOST"     env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT"     env:"REDIS_PORT"     env-default:"6379"`
	Username string `yaml:"REDIS_USER"     env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB"       env:"REDIS_DB"       env-default:"0"`
}

type Catalog struct {
	Seed         uint64 `yaml:"seed"          env:"CATALOG_SEED"          env-default:"2024"`
	ProductCount int    `yaml:"product_count" env:"CATALOG_PRODUCT_COUNT" env-default:"72"`
	PageSize     int    `yaml:"page_size"     env:"CATALOG_PAGE_SIZE"     env-default:"12"`
}

type Checkout struct {
	PaymentDelay time.Duration `yaml:"payment_delay" env:"CHECKOUT_PAYMENT_DELAY" env-default:"2s"`
	TaxRate      float64       `yaml:"tax_rate"      env:"CHECKOUT_TAX_RATE"      env-default:"0.18"`
	ShippingFee  float64       `yaml:"shipping_fee"  env:"CHECKOUT_SHIPPING_FEE"  env-default:"0"`
	Gateway      string        `yaml:"gateway"       env:"CHECKOUT_GATEWAY"       env-default:"simulated"`
	Currency     string        `yaml:"currency"      env:"CHECKOUT_CURRENCY"      env-default:"inr"`
}

// RateConfig limits payment attempts per session. An omitted or zero value
// takes the default; negative values are rejected.
type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE"  env:"WINDOW_SIZE"  env-default:"1m"`
}

type Stripe struct {
	APIKey              string   `yaml:"STRIPE_API_KEY"              env:"STRIPE_API_KEY"              env-default:""`
	PaymentMethod       string   `yaml:"STRIPE_PAYMENT_METHOD"       env:"STRIPE_PAYMENT_METHOD"       env-default:"pm_card_visa"`
	SupportedCurrencies []string `yaml:"STRIPE_SUPPORTED_CURRENCIES" env:"STRIPE_SUPPORTED_CURRENCIES" env-default:"inr"`
}

type SendGrid struct {
	APIKey    string `yaml:"API_KEY"    env:"SENDGRID_API_KEY"`
	FromEmail string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"orders@bikestore.local"`
	FromName  string `yaml:"FROM_NAME"  env:"SENDGRID_FROM_NAME"  env-default:"Bike Storefront"`
}

type RabbitMQ struct {
	URL   string `yaml:"RABBITMQ_URL"   env:"RABBITMQ_URL"`
	Queue string `yaml:"RABBITMQ_QUEUE" env:"RABBITMQ_QUEUE" env-default:"orders.placed"`
}

type Otel struct {
	Enabled          bool    `yaml:"ENABLED"           env:"OTEL_ENABLED"           env-default:"false"`
	ServiceName      string  `yaml:"SERVICE_NAME"      env:"OTEL_SERVICE_NAME"      env-default:"bike-storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT" env-default:"localhost:4318"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO"     env:"OTEL_SAMPLER_RATIO"     env-default:"1"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Cache        CacheConfig  `yaml:"cache"`
	RedisConnect RedisConnect `yaml:"redis"`
	Catalog      Catalog      `yaml:"catalog"`
	Checkout     Checkout     `yaml:"checkout"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Stripe       Stripe       `yaml:"stripe"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	RabbitMQ     RabbitMQ     `yaml:"rabbitmq"`
	Otel         Otel         `yaml:"otel"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "path to the config file")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			configPath = defaultConfigPath
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg
}

func LoadConfigFromPath(configPath string) (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Cache.Backend)
	}

	switch c.Checkout.Gateway {
	case GatewaySimulated:
	case GatewayStripe:
		if c.Stripe.APIKey == "" {
			return fmt.Errorf("stripe gateway requires STRIPE_API_KEY")
		}
	default:
		return fmt.Errorf("unknown payment gateway %q", c.Checkout.Gateway)
	}

	if c.RateConfig.MaxAttempts < 0 || c.RateConfig.WindowSize < 0 {
		return fmt.Errorf("rate limit needs a positive attempt count and window")
	}

	if c.Checkout.TaxRate < 0 {
		return fmt.Errorf("tax rate must not be negative")
	}

	return nil
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s/%d", r.Username, r.Password, r.Host, r.Port, r.DB)
}

func (r *RedisConnect) Addr() string {
	return r.Host + ":" + r.Port
}
