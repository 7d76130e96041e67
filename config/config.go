package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	dotEnvFile                = ".env"
	defaultMaxRequestBodySize = "100KB"

	defaultJWTExpiresIn           = 24 * time.Hour
	defaultJWTRefreshWindow       = 3 * time.Minute
	defaultOTPTTL                 = 2 * time.Minute
	defaultOTPResendCooldown      = 30 * time.Second
	defaultDistanceTimeout        = 5 * time.Second
	defaultSpeedKmh               = 30.0
	defaultPlatformCommissionRate = "0.18"
	defaultNotificationQueueSize  = 256
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	JWT *JWTConfig `json:"jwt" yaml:"jwt"`

	OTP *OTPConfig `json:"otp" yaml:"otp"`

	// SMS gateway used to deliver OTP codes
	SMS *SMSConfig `json:"sms" yaml:"sms"`

	// Distance lookup used by the delivery fee calculator
	Distance *DistanceConfig `json:"distance" yaml:"distance"`

	Settlement *SettlementConfig `json:"settlement" yaml:"settlement"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Notification *NotificationConfig `json:"notification" yaml:"notification"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// JWTConfig defines session token lifetime
type JWTConfig struct {
	ExpiresIn time.Duration `json:"expiresIn" yaml:"expiresIn"`

	// A token with at most this much validity left is replaced on refresh
	RefreshWindow time.Duration `json:"refreshWindow" yaml:"refreshWindow"`
}

// OTPConfig defines one-time code issuance
type OTPConfig struct {
	TTL            time.Duration `json:"ttl" yaml:"ttl"`
	ResendCooldown time.Duration `json:"resendCooldown" yaml:"resendCooldown"`
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
}

// SMSConfig defines the ClickSend gateway
type SMSConfig struct {
	BaseURL  string        `json:"baseUrl" yaml:"baseUrl"`
	Username string        `json:"username" yaml:"username"`
	APIKey   string        `json:"apiKey" yaml:"apiKey"`
	Source   string        `json:"source" yaml:"source"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// DistanceConfig defines the distance/duration provider
type DistanceConfig struct {
	// Provider type: "google" for the Distance Matrix API or "haversine" for offline estimates
	Provider string `json:"provider" yaml:"provider"`

	// Full Distance Matrix JSON endpoint, query string excluded
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	APIKey  string `json:"apiKey" yaml:"apiKey"`

	// Upper bound for one lookup; exceeding it fails the placement
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Travel speed assumed by the haversine provider
	DefaultSpeedKmh float64 `json:"defaultSpeedKmh" yaml:"defaultSpeedKmh"`
}

// SettlementConfig defines the income split
type SettlementConfig struct {
	// Share of the line subtotal kept by the platform, e.g. "0.18"
	PlatformCommissionRate string `json:"platformCommissionRate" yaml:"platformCommissionRate"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "direct" for in-process FCM
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// NotificationConfig defines order notification dispatch
type NotificationConfig struct {
	// Buffered events awaiting publication; further events are dropped
	QueueSize int `json:"queueSize" yaml:"queueSize"`

	// click_action sent with shop notifications
	ClickAction string `json:"clickAction" yaml:"clickAction"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// loadDotEnv exports variables from an optional .env file without overriding
// variables already present in the environment.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return errors.Wrapf(err, "stat %s", path)
	}

	return errors.Wrapf(godotenv.Load(path), "load %s", path)
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.JWT == nil {
		cfg.JWT = &JWTConfig{}
	}
	if cfg.JWT.ExpiresIn <= 0 {
		cfg.JWT.ExpiresIn = defaultJWTExpiresIn
	}
	if cfg.JWT.RefreshWindow <= 0 {
		cfg.JWT.RefreshWindow = defaultJWTRefreshWindow
	}

	if cfg.OTP == nil {
		cfg.OTP = &OTPConfig{}
	}
	if cfg.OTP.TTL <= 0 {
		cfg.OTP.TTL = defaultOTPTTL
	}
	if cfg.OTP.ResendCooldown <= 0 {
		cfg.OTP.ResendCooldown = defaultOTPResendCooldown
	}

	if cfg.Distance == nil {
		cfg.Distance = &DistanceConfig{}
	}
	if cfg.Distance.Timeout <= 0 {
		cfg.Distance.Timeout = defaultDistanceTimeout
	}
	if cfg.Distance.DefaultSpeedKmh <= 0 {
		cfg.Distance.DefaultSpeedKmh = defaultSpeedKmh
	}

	if cfg.Settlement == nil {
		cfg.Settlement = &SettlementConfig{}
	}
	if strings.TrimSpace(cfg.Settlement.PlatformCommissionRate) == "" {
		cfg.Settlement.PlatformCommissionRate = defaultPlatformCommissionRate
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if cfg.Notification.QueueSize <= 0 {
		cfg.Notification.QueueSize = defaultNotificationQueueSize
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
