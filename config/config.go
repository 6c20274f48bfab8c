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
)

const (
	defaultPath      = "."
	defaultEnvPrefix = "STOREFRONT_"

	defaultGatewayBaseURL = "http://127.0.0.1:8000/api"
	defaultGatewayTimeout = 30 * time.Second
	defaultServiceName    = "storefront"

	defaultDevGatewayPort       = 8000
	defaultDevGatewayAccessTTL  = 15 * time.Minute
	defaultDevGatewayRefreshTTL = 24 * time.Hour * 7
	defaultMaxRequestBodySize   = "10MB"
	defaultMediaBucketURL       = "mem://"

	// ClearStrategyRefresh only re-reads the remote cart; the remote cart is left untouched.
	ClearStrategyRefresh = "refresh"
	// ClearStrategyRemoveEach issues one remove call per cart line before re-reading the cart.
	ClearStrategyRemoveEach = "remove-each"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Gateway GatewayConfig `json:"gateway" yaml:"gateway"`

	Session SessionConfig `json:"session" yaml:"session"`

	Cart CartConfig `json:"cart" yaml:"cart"`

	// QRCode configuration for product share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// DevGateway configuration for the local in-memory backend
	DevGateway *DevGatewayConfig `json:"devGateway" yaml:"devGateway"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GatewayConfig points the client at the remote REST backend
type GatewayConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SessionConfig defines where the token pair is persisted.
// BucketURL is any gocloud.dev blob URL, e.g. file:///home/me/.config/storefront or mem://
type SessionConfig struct {
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// CartConfig tunes the cart provider
type CartConfig struct {
	ClearStrategy string `json:"clearStrategy" yaml:"clearStrategy"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// DevGatewayConfig defines the local development backend
type DevGatewayConfig struct {
	Port               int           `json:"port" yaml:"port"`
	SecretKey          string        `json:"secretKey" yaml:"secretKey"`
	AccessTTL          time.Duration `json:"accessTtl" yaml:"accessTtl"`
	RefreshTTL         time.Duration `json:"refreshTtl" yaml:"refreshTtl"`
	MaxRequestBodySize string        `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	MediaBucketURL     string        `json:"mediaBucketUrl" yaml:"mediaBucketUrl"`
	Seed               bool          `json:"seed" yaml:"seed"`
	AdminUsername      string        `json:"adminUsername" yaml:"adminUsername"`
	AdminPassword      string        `json:"adminPassword" yaml:"adminPassword"`
}

// LoadWithEnv loads an optional <currEnv>.yaml file and STOREFRONT_* environment overrides through koanf.
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
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	// A CLI must run without a config file, so a missing file only means defaults + env.
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := koanfInstance.Load(file.Provider(candidate), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", candidate)
		}

		break
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: defaultEnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// STOREFRONT_GATEWAY_BASEURL -> gateway.baseUrl
			key := canonicalizeEnvKey(strings.TrimPrefix(k, defaultEnvPrefix), existingConfigMap)

			return key, v
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

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewDevGateway loads the same configuration for the development backend.
// A missing devGateway section means a seeded catalog with default settings.
func NewDevGateway() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.DevGateway == nil {
		cfg.DevGateway = &DevGatewayConfig{Seed: true}
	}
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.Env.ServiceName) == "" {
		cfg.Env.ServiceName = defaultServiceName
	}
	if strings.TrimSpace(cfg.Gateway.BaseURL) == "" {
		cfg.Gateway.BaseURL = defaultGatewayBaseURL
	}
	cfg.Gateway.BaseURL = strings.TrimRight(cfg.Gateway.BaseURL, "/")
	if cfg.Gateway.Timeout <= 0 {
		cfg.Gateway.Timeout = defaultGatewayTimeout
	}

	if strings.TrimSpace(cfg.Session.BucketURL) == "" {
		bucketURL, err := defaultSessionBucketURL()
		if err != nil {
			return err
		}
		cfg.Session.BucketURL = bucketURL
	}

	switch cfg.Cart.ClearStrategy {
	case "":
		cfg.Cart.ClearStrategy = ClearStrategyRefresh
	case ClearStrategyRefresh, ClearStrategyRemoveEach:
	default:
		return errors.Errorf("unknown cart clear strategy: %s", cfg.Cart.ClearStrategy)
	}

	if cfg.DevGateway != nil {
		if cfg.DevGateway.Port == 0 {
			cfg.DevGateway.Port = defaultDevGatewayPort
		}
		if cfg.DevGateway.AccessTTL <= 0 {
			cfg.DevGateway.AccessTTL = defaultDevGatewayAccessTTL
		}
		if cfg.DevGateway.RefreshTTL <= 0 {
			cfg.DevGateway.RefreshTTL = defaultDevGatewayRefreshTTL
		}
		if strings.TrimSpace(cfg.DevGateway.MaxRequestBodySize) == "" {
			cfg.DevGateway.MaxRequestBodySize = defaultMaxRequestBodySize
		}
		if strings.TrimSpace(cfg.DevGateway.MediaBucketURL) == "" {
			cfg.DevGateway.MediaBucketURL = defaultMediaBucketURL
		}
	}

	return nil
}

// defaultSessionBucketURL keeps the token pair next to other per-user application state.
func defaultSessionBucketURL() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "os.UserConfigDir")
	}

	return "file://" + filepath.ToSlash(filepath.Join(dir, defaultServiceName)) + "?create_dir=true", nil
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
