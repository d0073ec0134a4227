package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type FulfillmentConfig struct {
	Env           string `yaml:"env" env:"ENV" env-default:"local"`
	BaseHost      string `yaml:"base_host" env:"BASE_HOST" env-required:"true"`
	HTTPServer    `yaml:"http_server"`
	GRPCServer    `yaml:"grpc_server"`
	FulfillmentDB `yaml:"fulfillment_db"`
	Redis         `yaml:"redis"`
	Idempotency   `yaml:"idempotency"`
	Kafka         `yaml:"kafka"`
	Expiry        `yaml:"expiry"`
	Confirmation  `yaml:"confirmation"`
	Commerce      `yaml:"commerce"`
	CardGateway   `yaml:"card_gateway"`
	LoanGateway   `yaml:"loan_gateway"`
	HoldGateway   `yaml:"hold_gateway"`
	Notifier      `yaml:"notifier"`
}

type HTTPServer struct {
	Host         string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port         string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"30s"`
}

type GRPCServer struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50051"`
}

type FulfillmentDB struct {
	Dsn            string        `yaml:"dsn" env:"FULFILLMENT_DB_DSN" env-required:"true"`
	MigrationsPath string        `yaml:"migrations_path" env:"MIGRATIONS_PATH"`
	MaxOpenConns   int           `yaml:"max_open_conns" env-default:"20"`
	MaxIdleConns   int           `yaml:"max_idle_conns" env-default:"5"`
	ConnMaxLife    time.Duration `yaml:"conn_max_life" env-default:"30m"`
}

type Redis struct {
	URL string `yaml:"url" env:"REDIS_URL" env-default:"redis://localhost:6379/0"`
}

type Idempotency struct {
	CachePrefix     string        `yaml:"cache_prefix" env-default:"order:result:"`
	CacheTTL        time.Duration `yaml:"cache_ttl" env-default:"30s"`
	LockTimeout     time.Duration `yaml:"lock_timeout" env-default:"75s"`
	BlockingTimeout time.Duration `yaml:"blocking_timeout" env-default:"10s"`
	RetryDelay      time.Duration `yaml:"retry_delay" env-default:"100ms"`
}

type Kafka struct {
	Brokers     []string      `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	TasksTopic  string        `yaml:"tasks_topic" env-default:"fulfillment.tasks"`
	GroupID     string        `yaml:"group_id" env-default:"fulfillment-worker"`
	MaxAttempts int           `yaml:"max_attempts" env-default:"5"`
	Workers     int           `yaml:"workers" env-default:"4"`
	RetryDelay  time.Duration `yaml:"retry_delay" env-default:"5s"`
}

type Expiry struct {
	Interval time.Duration `yaml:"interval" env-default:"5m"`
	MaxAge   time.Duration `yaml:"max_age" env-default:"24h"`
}

type Confirmation struct {
	MaxRequests int `yaml:"max_requests" env-default:"3"`
}

type Commerce struct {
	URL       string        `yaml:"url" env:"COMMERCE_URL"`
	Token     string        `yaml:"token" env:"COMMERCE_TOKEN"`
	ChannelID string        `yaml:"channel_id" env:"COMMERCE_CHANNEL_ID"`
	Timeout   time.Duration `yaml:"timeout" env-default:"15s"`
}

type CardGateway struct {
	Host                string        `yaml:"host" env:"CARD_GATEWAY_HOST"`
	InitPaymentPath     string        `yaml:"init_payment_path" env-default:"init_payment.php"`
	StatusPath          string        `yaml:"status_path" env-default:"get_status3.php"`
	StatusSignaturePath string        `yaml:"status_signature_path" env-default:"status_v2"`
	PrivateKeyPath      string        `yaml:"private_key_path" env:"CARD_GATEWAY_PRIVATE_KEY_PEM_PATH"`
	TestMode            bool          `yaml:"test_mode" env:"CARD_GATEWAY_TEST_MODE"`
	Timeout             time.Duration `yaml:"timeout" env-default:"15s"`
}

type LoanGateway struct {
	Host         string        `yaml:"host" env:"LOAN_GATEWAY_HOST"`
	AuthPath     string        `yaml:"auth_path" env-default:"/api/v1/auth/token/"`
	SendOTPPath  string        `yaml:"send_otp_path" env-default:"/api/v1/otp/send/"`
	VerifyPath   string        `yaml:"validate_otp_path" env-default:"/api/v1/otp/validate/"`
	ApplyPath    string        `yaml:"apply_path" env-default:"/api/v1/loan/apply/"`
	StatusPath   string        `yaml:"status_path" env-default:"/api/v1/loan/status/"`
	SetOfferPath string        `yaml:"set_offer_path" env-default:"/api/v1/loan/set-offer/"`
	Username     string        `yaml:"username" env:"LOAN_GATEWAY_USERNAME"`
	Password     string        `yaml:"password" env:"LOAN_GATEWAY_PASSWORD"`
	Channel      string        `yaml:"channel" env-default:"FASTBACK"`
	Period       int           `yaml:"period" env-default:"24"`
	Timeout      time.Duration `yaml:"timeout" env-default:"15s"`
}

type HoldGateway struct {
	Enabled      bool          `yaml:"enabled" env:"HOLD_GATEWAY_ENABLED"`
	BaseURL      string        `yaml:"base_url" env:"HOLD_GATEWAY_BASE_URL"`
	InitPath     string        `yaml:"init_path" env-default:"/api/v1/payments/init"`
	ConfirmPath  string        `yaml:"confirm_path" env-default:"/api/v1/payments/confirm"`
	InitToken    string        `yaml:"init_token" env:"HOLD_GATEWAY_INIT_TOKEN"`
	ConfirmToken string        `yaml:"confirm_token" env:"HOLD_GATEWAY_CONFIRM_TOKEN"`
	Timeout      time.Duration `yaml:"timeout" env-default:"15s"`
}

type Notifier struct {
	URL     string        `yaml:"url" env:"NOTIFIER_URL"`
	Token   string        `yaml:"token" env:"NOTIFIER_TOKEN"`
	Timeout time.Duration `yaml:"timeout" env-default:"10s"`
}

// lockMargin is added on top of the slowest guarded call chain.
const lockMargin = 5 * time.Second

// OrderLockTimeout is the idempotency lock TTL for order creation. The lock must outlive the
// worst case of the guarded work: three commerce calls and, when enabled, the hold initialization.
// A configured lock_timeout below that floor is raised to it.
func (c *FulfillmentConfig) OrderLockTimeout() time.Duration {
	floor := 3*c.Commerce.Timeout + lockMargin
	if c.HoldGateway.Enabled {
		floor += c.HoldGateway.Timeout
	}
	return max(c.Idempotency.LockTimeout, floor)
}

func MustLoad() *FulfillmentConfig {
	configPath := os.Getenv("FULFILLMENT_CONFIG_PATH")
	if configPath == "" {
		log.Fatalf("FULFILLMENT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}
	return cfg
}

// Load reads the YAML file at path and applies environment overrides.
func Load(path string) (*FulfillmentConfig, error) {
	var cfg FulfillmentConfig
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
