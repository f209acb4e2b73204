package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Ledger drivers
const (
	DriverDynamoDB = "dynamodb"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	ServiceName string     `mapstructure:"service_name"`
	Env         string     `mapstructure:"env"`
	Port        string     `mapstructure:"port"`
	Ledger      Ledger     `mapstructure:"ledger"`
	Database    Database   `mapstructure:"database"`
	AWS         AWS        `mapstructure:"aws"`
	Activities  Activities `mapstructure:"activities"`
	Redis       Redis      `mapstructure:"redis"`
	Telemetry   Telemetry  `mapstructure:"telemetry"`
	Courier     Courier    `mapstructure:"courier"`
	Billing     Billing    `mapstructure:"billing"`
}

type Ledger struct {
	Driver    string         `mapstructure:"driver"`
	BookTable string         `mapstructure:"book_table"`
	UserTable string         `mapstructure:"user_table"`
	Books     []SeedBook     `mapstructure:"books"`
	Customers []SeedCustomer `mapstructure:"customers"`
}

// SeedBook preloads the memory ledger
type SeedBook struct {
	BookID   string `mapstructure:"book_id"`
	Quantity int64  `mapstructure:"quantity"`
	Price    int64  `mapstructure:"price"`
}

// SeedCustomer preloads the memory ledger
type SeedCustomer struct {
	UserID string `mapstructure:"user_id"`
	Points int64  `mapstructure:"points"`
}

type Database struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type AWS struct {
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	SNSTopicArn     string `mapstructure:"sns_topic_arn"`
	SQSQueueURL     string `mapstructure:"sqs_queue_url"`
}

// Activities maps step names to Step Functions activity ARNs
type Activities struct {
	WorkerName string            `mapstructure:"worker_name"`
	ARNs       map[string]string `mapstructure:"arns"`
}

// ARN looks up a step's activity. Viper lowercases map keys, so the match
// ignores case.
func (a Activities) ARN(step string) (string, bool) {
	arn, ok := a.ARNs[strings.ToLower(step)]
	return arn, ok && arn != ""
}

type Redis struct {
	Addr      string        `mapstructure:"addr"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	KeyPrefix string        `mapstructure:"key_prefix"`
	TTL       time.Duration `mapstructure:"ttl"`
	ClaimTTL  time.Duration `mapstructure:"claim_ttl"`
}

type Telemetry struct {
	Enabled      bool   `mapstructure:"enabled"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

type Courier struct {
	Contacts          []string `mapstructure:"contacts"`
	Workers           int32    `mapstructure:"workers"`
	BatchSize         int32    `mapstructure:"batch_size"`
	VisibilityTimeout int32    `mapstructure:"visibility_timeout"`
}

type Billing struct {
	DeclineAbove int64 `mapstructure:"decline_above"`
}

// ReadConfig loads the JSON file named by ENVIRONMENT (default "local") from
// this directory, with FULFILLMENT_* environment overrides.
func ReadConfig(serviceName string) (*Config, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("unable to get current file")
	}

	v := viper.New()
	v.SetConfigName(getConfigName())
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Dir(filename))
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("FULFILLMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, serviceName)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.ServiceName = serviceName

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func getConfigName() string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		return "local"
	}
	return env
}

func setDefaults(v *viper.Viper, serviceName string) {
	v.SetDefault("env", getEnv("ENV", "local"))
	v.SetDefault("port", getEnv("PORT", "8080"))

	v.SetDefault("ledger.driver", DriverDynamoDB)
	v.SetDefault("ledger.book_table", "bookTable")
	v.SetDefault("ledger.user_table", "userTable")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "bookstore")
	v.SetDefault("database.ssl_mode", "disable")

	v.SetDefault("aws.access_key_id", getEnv("AWS_ACCESS_KEY_ID", "test"))
	v.SetDefault("aws.secret_access_key", getEnv("AWS_SECRET_ACCESS_KEY", "test"))
	v.SetDefault("aws.region", getEnv("AWS_DEFAULT_REGION", "us-east-1"))
	v.SetDefault("aws.endpoint", getEnv("AWS_ENDPOINT_URL", "http://localhost:4566"))
	v.SetDefault("aws.sns_topic_arn", getEnv("SNS_TOPIC_ARN", ""))
	v.SetDefault("aws.sqs_queue_url", getEnv("SQS_QUEUE_URL", "http://localhost:4566/000000000000/OrdersQueue"))

	v.SetDefault("activities.worker_name", serviceName)

	v.SetDefault("redis.addr", getEnv("REDIS_ADDR", "localhost:6379"))
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", serviceName)
	v.SetDefault("redis.ttl", 24*time.Hour)
	v.SetDefault("redis.claim_ttl", 2*time.Minute)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.otlp_endpoint", "localhost:4318")

	v.SetDefault("courier.workers", 4)
	v.SetDefault("courier.batch_size", 1)
	v.SetDefault("courier.visibility_timeout", 30)

	v.SetDefault("billing.decline_above", 0)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Validate rejects settings the processes cannot start with
func (c *Config) Validate() error {
	switch c.Ledger.Driver {
	case DriverDynamoDB, DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unknown ledger driver %q", c.Ledger.Driver)
	}

	if c.Courier.BatchSize < 1 || c.Courier.BatchSize > 10 {
		return fmt.Errorf("courier batch size must be between 1 and 10, got %d", c.Courier.BatchSize)
	}

	if c.Billing.DeclineAbove < 0 {
		return fmt.Errorf("billing decline threshold must not be negative")
	}

	return nil
}

// GetDatabaseURL constructs database URL from config
func (c *Config) GetDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}
