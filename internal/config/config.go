package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults applied before the config file and environment are read.
const (
	DefaultServerAddr        = "localhost"
	DefaultServerPort        = "5000"
	DefaultDownstreamURL     = "http://127.0.0.1:3000/search"
	DefaultDownstreamTimeout = 10 * time.Second
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
)

type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Downstream struct {
		URL       string        `mapstructure:"url"`
		Timeout   time.Duration `mapstructure:"timeout"`
		RateLimit float64       `mapstructure:"rate_limit"` // requests per second, 0 disables limiting
	} `mapstructure:"downstream"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"` // "text" or "json"
	} `mapstructure:"log"`

	// Vocabulary overrides the built-in words per category. Categories left out
	// keep their defaults.
	Vocabulary map[string][]string `mapstructure:"vocabulary"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", DefaultServerAddr)
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("downstream.url", DefaultDownstreamURL)
	v.SetDefault("downstream.timeout", DefaultDownstreamTimeout)
	v.SetDefault("downstream.rate_limit", 0)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
}

// LoadConfig reads config.yaml from the working directory, if present, and
// overlays QUERYKEYS_* environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	return load(v)
}

// LoadConfigFile reads configuration from an explicit path.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// e.g. downstream.url -> QUERYKEYS_DOWNSTREAM_URL
	v.SetEnvPrefix("QUERYKEYS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &config, nil
}

// ListenAddr joins the server address and port.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Addr, c.Server.Port)
}
