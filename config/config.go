package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultTimezone            = "Asia/Manila"
	defaultWindowStart         = "07:00"
	defaultWindowEnd           = "17:00"
	defaultCooldown            = time.Hour
	defaultDispatchConcurrency = 8
	defaultHistoryLimit        = 50
	defaultSMSTimeout          = 10 * time.Second
	defaultSafeZoneTTL         = 5 * time.Minute
	defaultMQTTTopic           = "safetrack/devices/+/location"
	maxMQTTQoS                 = 2

	DispatchModeSync  = "sync"
	DispatchModeAsync = "async"
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

	Database DatabaseConfig `json:"database" yaml:"database"`

	Alerting AlertingConfig `json:"alerting" yaml:"alerting"`

	SMS SMSConfig `json:"sms" yaml:"sms"`

	// Redis caches the active safe zone; nil disables the cache
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// MQTT device ingestion; nil or disabled skips the subscriber
	MQTT *MQTTConfig `json:"mqtt" yaml:"mqtt"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for async alert dispatch
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

type DatabaseConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// Queries slower than this are logged as warnings; zero keeps the default
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// AlertingConfig controls when boundary alerts fire and how they are dispatched
type AlertingConfig struct {
	// IANA zone the alerting window is evaluated in
	Timezone string `json:"timezone" yaml:"timezone"`

	// Window bounds as HH:MM, start inclusive, end exclusive
	WindowStart string `json:"windowStart" yaml:"windowStart"`
	WindowEnd   string `json:"windowEnd" yaml:"windowEnd"`

	Cooldown time.Duration `json:"cooldown" yaml:"cooldown"`

	// "sync" dispatches inline, "async" publishes to Pub/Sub for the worker
	DispatchMode string `json:"dispatchMode" yaml:"dispatchMode"`

	DispatchConcurrency int `json:"dispatchConcurrency" yaml:"dispatchConcurrency"`

	// Default page size for location history queries
	HistoryLimit int `json:"historyLimit" yaml:"historyLimit"`
}

// SMSConfig defines the HTTP SMS gateway
type SMSConfig struct {
	BaseURL           string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey            string        `json:"apiKey" yaml:"apiKey"`
	SenderName        string        `json:"senderName" yaml:"senderName"`
	Timeout           time.Duration `json:"timeout" yaml:"timeout"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
}

type RedisConfig struct {
	Addr        string        `json:"addr" yaml:"addr"`
	Password    string        `json:"password" yaml:"password"`
	DB          int           `json:"db" yaml:"db"`
	SafeZoneTTL time.Duration `json:"safeZoneTTL" yaml:"safeZoneTTL"`
}

type MQTTConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Broker   string `json:"broker" yaml:"broker"`
	ClientID string `json:"clientId" yaml:"clientId"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Topic    string `json:"topic" yaml:"topic"`
	QoS      byte   `json:"qos" yaml:"qos"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Expected audience of push tokens; empty disables verification
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// EnvConfigFile, when set, names the config file to load and skips the search.
const EnvConfigFile = "SAFETRACK_CONFIG_FILE"

// LoadWithEnv loads <currEnv>.yaml from the first search path holding it, then
// overlays environment variables. POSTGRES_SSLMODE lands on postgres.sslMode
// because env keys are matched against the keys the YAML already has.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	configFile, err := locateConfigFile(currEnv, configPath)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", configFile)
	}

	yamlKeys := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, yamlKeys), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			// env overrides arrive lower-cased
			MatchName: strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func locateConfigFile(currEnv string, configPath []string) (string, error) {
	if explicit := os.Getenv(EnvConfigFile); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, "%s", EnvConfigFile)
		}

		return explicit, nil
	}

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	alerting := &cfg.Alerting
	if alerting.Timezone == "" {
		alerting.Timezone = defaultTimezone
	}
	if alerting.WindowStart == "" {
		alerting.WindowStart = defaultWindowStart
	}
	if alerting.WindowEnd == "" {
		alerting.WindowEnd = defaultWindowEnd
	}
	if alerting.Cooldown <= 0 {
		alerting.Cooldown = defaultCooldown
	}
	if alerting.DispatchMode == "" {
		alerting.DispatchMode = DispatchModeSync
	}
	if alerting.DispatchConcurrency <= 0 {
		alerting.DispatchConcurrency = defaultDispatchConcurrency
	}
	if alerting.HistoryLimit <= 0 {
		alerting.HistoryLimit = defaultHistoryLimit
	}

	if cfg.SMS.Timeout <= 0 {
		cfg.SMS.Timeout = defaultSMSTimeout
	}

	if cfg.Redis != nil && cfg.Redis.SafeZoneTTL <= 0 {
		cfg.Redis.SafeZoneTTL = defaultSafeZoneTTL
	}

	if cfg.MQTT != nil && cfg.MQTT.Topic == "" {
		cfg.MQTT.Topic = defaultMQTTTopic
	}
}

func (cfg *Config) validate() error {
	switch cfg.Alerting.DispatchMode {
	case DispatchModeSync:
	case DispatchModeAsync:
		if cfg.PubSub == nil {
			return errors.New("alerting.dispatchMode async requires a pubsub section")
		}
	default:
		return errors.Errorf("unknown alerting.dispatchMode %q", cfg.Alerting.DispatchMode)
	}

	if _, err := time.LoadLocation(cfg.Alerting.Timezone); err != nil {
		return errors.Wrapf(err, "alerting.timezone %q", cfg.Alerting.Timezone)
	}

	if cfg.SMS.RequestsPerSecond < 0 {
		return errors.New("sms.requestsPerSecond must not be negative")
	}

	if cfg.MQTT != nil && cfg.MQTT.Enabled {
		if strings.TrimSpace(cfg.MQTT.Broker) == "" {
			return errors.New("mqtt.broker is required when mqtt is enabled")
		}
		if cfg.MQTT.QoS > maxMQTTQoS {
			return errors.Errorf("mqtt.qos %d is not 0, 1 or 2", cfg.MQTT.QoS)
		}
	}

	return nil
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
