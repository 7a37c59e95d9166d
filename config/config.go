package config

import (
	"os"
	"path/filepath"
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

	DefaultFeishuHost        = "https://open.feishu.cn"
	DefaultRequestTimeout    = 10 * time.Second
	DefaultCacheTTL          = 300 * time.Second
	DefaultTokenSafetyMargin = 5 * time.Minute
	DefaultCommentsFile      = "comments.json"
	DefaultAuthor            = "anonymous"
	DefaultPublishTimeout    = 5 * time.Second

	CommentsDriverFile     = "file"
	CommentsDriverPostgres = "postgres"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		// Debug enables request logging and the cache-clear endpoint.
		Debug bool `json:"debug" yaml:"debug"`
		Log   Log  `json:"log" yaml:"log"`
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

	Feishu *FeishuConfig `json:"feishu" yaml:"feishu"`

	Cache *CacheConfig `json:"cache" yaml:"cache"`

	Comments *CommentsConfig `json:"comments" yaml:"comments"`

	// Postgres is only required when comments.driver is "postgres".
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// QRCode configuration for article share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for comment events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FeishuConfig holds the upstream Bitable credentials and table coordinates.
type FeishuConfig struct {
	Host      string `json:"host" yaml:"host"`
	AppID     string `json:"appId" yaml:"appId"`
	AppSecret string `json:"appSecret" yaml:"appSecret"`
	// BaseID is the Bitable app token (the "base" holding the table).
	BaseID         string        `json:"baseId" yaml:"baseId"`
	TableID        string        `json:"tableId" yaml:"tableId"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
	Fields         FieldMapping  `json:"fields" yaml:"fields"`
}

// FieldMapping names the Bitable columns each article attribute is read from.
type FieldMapping struct {
	Title   string `json:"title" yaml:"title"`
	Date    string `json:"date" yaml:"date"`
	Quote   string `json:"quote" yaml:"quote"`
	Summary string `json:"summary" yaml:"summary"`
	Link    string `json:"link" yaml:"link"`
}

// DefaultFieldMapping returns the column names used by the blog table.
func DefaultFieldMapping() FieldMapping {
	return FieldMapping{
		Title:   "标题",
		Date:    "创建日期",
		Quote:   "金句输出",
		Summary: "概要内容输出",
		Link:    "AI知识文章链接",
	}
}

type CacheConfig struct {
	// TTL bounds how long a fetched record set is served without hitting upstream.
	TTL time.Duration `json:"ttl" yaml:"ttl"`
	// TokenSafetyMargin is subtracted from the upstream token lifetime.
	TokenSafetyMargin time.Duration `json:"tokenSafetyMargin" yaml:"tokenSafetyMargin"`
}

type CommentsConfig struct {
	// Driver is "file" (JSON array file) or "postgres".
	Driver        string `json:"driver" yaml:"driver"`
	FilePath      string `json:"filePath" yaml:"filePath"`
	DefaultAuthor string `json:"defaultAuthor" yaml:"defaultAuthor"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	// BaseURL is used to build a share URL for articles without an outbound link.
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider is "local" (HTTP push to LocalEndpoint), "google", or empty to disable events.
	Provider      string `json:"provider" yaml:"provider"`
	ProjectID     string `json:"projectId" yaml:"projectId"`
	TopicID       string `json:"topicId" yaml:"topicId"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
	// PublishTimeout bounds how long a comment submission waits for the broker.
	PublishTimeout time.Duration `json:"publishTimeout" yaml:"publishTimeout"`
	// OrderByArticle delivers the events of one article in submission order.
	OrderByArticle bool `json:"orderByArticle" yaml:"orderByArticle"`
	// PushAudience is the audience expected in push tokens. Empty means the push URL.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
	// PushServiceAccount, when set, must match the email claim of push tokens.
	PushServiceAccount string `json:"pushServiceAccount" yaml:"pushServiceAccount"`
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

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override YAML; FEISHU_APPSECRET -> feishu.appSecret
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
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

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section with its documented default.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Feishu == nil {
		cfg.Feishu = &FeishuConfig{}
	}
	if cfg.Feishu.Host == "" {
		cfg.Feishu.Host = DefaultFeishuHost
	}
	cfg.Feishu.Host = strings.TrimRight(cfg.Feishu.Host, "/")
	if cfg.Feishu.RequestTimeout <= 0 {
		cfg.Feishu.RequestTimeout = DefaultRequestTimeout
	}
	cfg.Feishu.Fields = cfg.Feishu.Fields.withDefaults()

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = DefaultCacheTTL
	}
	if cfg.Cache.TokenSafetyMargin <= 0 {
		cfg.Cache.TokenSafetyMargin = DefaultTokenSafetyMargin
	}

	if cfg.Comments == nil {
		cfg.Comments = &CommentsConfig{}
	}
	if cfg.Comments.Driver == "" {
		cfg.Comments.Driver = CommentsDriverFile
	}
	if cfg.Comments.FilePath == "" {
		cfg.Comments.FilePath = DefaultCommentsFile
	}
	if strings.TrimSpace(cfg.Comments.DefaultAuthor) == "" {
		cfg.Comments.DefaultAuthor = DefaultAuthor
	}

	if cfg.PubSub != nil && cfg.PubSub.PublishTimeout <= 0 {
		cfg.PubSub.PublishTimeout = DefaultPublishTimeout
	}
}

// Validate reports configuration that cannot be served.
func (cfg *Config) Validate() error {
	switch cfg.Comments.Driver {
	case CommentsDriverFile:
	case CommentsDriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres section is required for the postgres comments driver")
		}
	default:
		return errors.Errorf("unknown comments driver: %s", cfg.Comments.Driver)
	}

	return nil
}

func (m FieldMapping) withDefaults() FieldMapping {
	def := DefaultFieldMapping()
	if m.Title == "" {
		m.Title = def.Title
	}
	if m.Date == "" {
		m.Date = def.Date
	}
	if m.Quote == "" {
		m.Quote = def.Quote
	}
	if m.Summary == "" {
		m.Summary = def.Summary
	}
	if m.Link == "" {
		m.Link = def.Link
	}

	return m
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
