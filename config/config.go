package config

import (
	"net"
	"net/url"
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
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultTokenTTL           = 24 * time.Hour
	defaultOpenAITimeout      = 60 * time.Second
	defaultWorkerPort         = 8081
	replicaEnvPrefix          = "POSTGRES_REPLICAS_"
)

// dotenvFiles are loaded in order; values already present in the environment win.
var dotenvFiles = []string{".env.development.local", ".env"}

// envAliases maps the flat variable names used by existing deployments onto config keys.
var envAliases = map[string]string{
	"SECRET_KEY":     "auth.secretKey",
	"POSTGRES_URL":   "postgres.url",
	"DATABASE_URL":   "postgres.url",
	"OPENAI_API_KEY": "openai.apiKey",
}

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

	CORS *CORSConfig `json:"cors" yaml:"cors"`

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	OpenAI *OpenAIConfig `json:"openai" yaml:"openai"`

	// PubSub configuration for health alert events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Archive configuration for voice chat uploads
	Archive *ArchiveConfig `json:"archive" yaml:"archive"`

	// QRCode configuration for pet tags
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CORSConfig lists the origins allowed to call the API from a browser or Expo client.
type CORSConfig struct {
	AllowOrigins     []string `json:"allowOrigins" yaml:"allowOrigins"`
	AllowCredentials bool     `json:"allowCredentials" yaml:"allowCredentials"`
}

// ConnectionConfig is a single PostgreSQL endpoint.
type ConnectionConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     string `json:"port" yaml:"port"`
	UserName string `json:"userName" yaml:"userName"`
	Password string `json:"password" yaml:"password"`
}

// PostgresConfig describes the primary database and optional read replicas.
// URL takes precedence over Master when both are set.
type PostgresConfig struct {
	URL                string             `json:"url" yaml:"url"`
	Master             ConnectionConfig   `json:"master" yaml:"master"`
	Replicas           []ConnectionConfig `json:"replicas" yaml:"replicas"`
	Database           string             `json:"database" yaml:"database"`
	SSLMode            string             `json:"sslMode" yaml:"sslMode"`
	MaxIdleConns       int                `json:"maxIdleConns" yaml:"maxIdleConns"`
	MaxOpenConns       int                `json:"maxOpenConns" yaml:"maxOpenConns"`
	ConnMaxLifetime    time.Duration      `json:"connMaxLifetime" yaml:"connMaxLifetime"`
	// SlowQueryThreshold marks queries logged as slow. Zero keeps the default.
	SlowQueryThreshold time.Duration      `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	AutoMigrate        bool               `json:"autoMigrate" yaml:"autoMigrate"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	SecretKey  string        `json:"secretKey" yaml:"secretKey"`
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
}

// OpenAIConfig defines the upstream AI service settings
type OpenAIConfig struct {
	APIKey             string        `json:"apiKey" yaml:"apiKey"`
	BaseURL            string        `json:"baseUrl" yaml:"baseUrl"`
	ChatModel          string        `json:"chatModel" yaml:"chatModel"`
	TranscriptionModel string        `json:"transcriptionModel" yaml:"transcriptionModel"`
	SpeechModel        string        `json:"speechModel" yaml:"speechModel"`
	Voice              string        `json:"voice" yaml:"voice"`
	Timeout            time.Duration `json:"timeout" yaml:"timeout"`
}

// PubSubConfig defines configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "rabbitmq". Empty disables publishing.
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	RabbitMQURL string `json:"rabbitmqUrl" yaml:"rabbitmqUrl"`
	QueueName   string `json:"queueName" yaml:"queueName"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// ArchiveConfig points at a gocloud blob bucket, e.g. file:///var/lib/hauspet/audio or s3://bucket?region=us-east-1
type ArchiveConfig struct {
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Prefix    string `json:"prefix" yaml:"prefix"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type WorkerConfig struct {
	Port           int  `json:"port" yaml:"port"`
	VerifyPushAuth bool `json:"verifyPushAuth" yaml:"verifyPushAuth"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			if alias, ok := envAliases[k]; ok {
				return alias, v
			}
			if strings.HasPrefix(k, replicaEnvPrefix) {
				// Collected separately by buildReplicasFromEnv.
				return "", nil
			}

			// POSTGRES_SSLMODE -> postgres.sslMode
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New builds the process configuration once at startup. The returned value is
// shared read-only by every component.
func New() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewWorker builds the configuration for the alert worker, which never calls OpenAI
// or signs tokens and so only needs the database.
func NewWorker() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	if err := cfg.validatePostgres(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func load() (*Config, error) {
	if err := loadDotenv(dotenvFiles...); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
	if replicas := buildReplicasFromEnv(); len(replicas) > 0 {
		cfg.Postgres.Replicas = replicas
	}

	return cfg, nil
}

// Validate reports the first missing setting the service cannot start without.
func (cfg *Config) Validate() error {
	if cfg.Auth == nil || strings.TrimSpace(cfg.Auth.SecretKey) == "" {
		return errors.New("auth.secretKey (SECRET_KEY) must be set")
	}
	if err := cfg.validatePostgres(); err != nil {
		return err
	}
	if cfg.OpenAI == nil || strings.TrimSpace(cfg.OpenAI.APIKey) == "" {
		return errors.New("openai.apiKey (OPENAI_API_KEY) must be set")
	}

	return nil
}

func (cfg *Config) validatePostgres() error {
	if cfg.Postgres == nil || (cfg.Postgres.URL == "" && cfg.Postgres.Master.Host == "") {
		return errors.New("postgres.url (POSTGRES_URL) or postgres.master.host must be set")
	}

	return nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Postgres == nil {
		cfg.Postgres = &PostgresConfig{}
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}
	if cfg.OpenAI == nil {
		cfg.OpenAI = &OpenAIConfig{}
	}
	if cfg.OpenAI.Timeout <= 0 {
		cfg.OpenAI.Timeout = defaultOpenAITimeout
	}
	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port <= 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
	if cfg.CORS == nil {
		cfg.CORS = &CORSConfig{
			AllowOrigins:     []string{"http://localhost:8081", "exp://*"},
			AllowCredentials: true,
		}
	}
}

// DSN returns a key/value connection string for the primary, or the URL when one is configured.
func (p *PostgresConfig) DSN() string {
	if p.URL != "" {
		return normalizePostgresURL(p.URL)
	}

	return p.connDSN(p.Master)
}

// ReplicaDSNs returns connection strings for every configured replica.
func (p *PostgresConfig) ReplicaDSNs() []string {
	dsns := make([]string, 0, len(p.Replicas))
	for _, replica := range p.Replicas {
		dsns = append(dsns, p.connDSN(replica))
	}

	return dsns
}

// MigrationURL returns the primary connection in URL form, as required by golang-migrate.
func (p *PostgresConfig) MigrationURL() string {
	if p.URL != "" {
		return normalizePostgresURL(p.URL)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.Master.UserName, p.Master.Password),
		Host:   net.JoinHostPort(p.Master.Host, p.Master.Port),
		Path:   "/" + p.Database,
	}
	if p.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{p.SSLMode}}.Encode()
	}

	return u.String()
}

func (p *PostgresConfig) connDSN(conn ConnectionConfig) string {
	parts := []string{
		"host=" + conn.Host,
		"port=" + conn.Port,
		"user=" + conn.UserName,
		"password=" + conn.Password,
		"dbname=" + p.Database,
	}
	if p.SSLMode != "" {
		parts = append(parts, "sslmode="+p.SSLMode)
	}

	return strings.Join(parts, " ")
}

// normalizePostgresURL accepts the postgresql:// scheme some hosting providers hand out.
func normalizePostgresURL(raw string) string {
	if rest, ok := strings.CutPrefix(raw, "postgresql://"); ok {
		return "postgres://" + rest
	}

	return raw
}

func loadDotenv(files ...string) error {
	for _, name := range files {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return errors.Wrapf(err, "load %s", name)
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
// Format: POSTGRES_REPLICAS_{index}_{HOST|PORT|USERNAME|PASSWORD}
func buildReplicasFromEnv() []ConnectionConfig {
	var replicas []ConnectionConfig

	for i := 0; ; i++ {
		prefix := replicaEnvPrefix + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
