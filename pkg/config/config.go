package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Log      LogConfig      `yaml:"log"`
	Server   ServerConfig   `yaml:"server"`
	Telegram TelegramConfig `yaml:"telegram"`
	Finnhub  FinnhubConfig  `yaml:"finnhub"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Dispatch DispatchConfig `yaml:"dispatch"`
}

type AppConfig struct {
	Name        string `yaml:"name" default:"marketbell"`
	Environment string `yaml:"environment" default:"production"`
}

type LogConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error fatal panic"`
	Format string `yaml:"format" default:"json" validate:"oneof=json console"`
	Output string `yaml:"output" default:"stdout"`
}

type ServerConfig struct {
	Host                   string   `yaml:"host" default:"0.0.0.0"`
	Port                   int      `yaml:"port" default:"8080" validate:"gt=0,lte=65535"`
	ReadTimeoutSeconds     int      `yaml:"read_timeout_seconds" default:"15" validate:"gt=0"`
	WriteTimeoutSeconds    int      `yaml:"write_timeout_seconds" default:"15" validate:"gt=0"`
	ShutdownTimeoutSeconds int      `yaml:"shutdown_timeout_seconds" default:"10" validate:"gt=0"`
	CORSOrigins            []string `yaml:"cors_origins"`
}

func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

type TelegramConfig struct {
	Token              string `yaml:"token" validate:"required"`
	ChannelID          string `yaml:"channel_id" validate:"required"`
	BaseURL            string `yaml:"base_url" default:"https://api.telegram.org"`
	TimeoutSeconds     int    `yaml:"timeout_seconds" default:"10" validate:"gt=0"`
	PollTimeoutSeconds int    `yaml:"poll_timeout_seconds" default:"30" validate:"gte=0"`
	Polling            *bool  `yaml:"polling"`
}

func (t TelegramConfig) Timeout() time.Duration {
	return time.Duration(t.TimeoutSeconds) * time.Second
}

func (t TelegramConfig) PollTimeout() time.Duration {
	return time.Duration(t.PollTimeoutSeconds) * time.Second
}

// PollingEnabled defaults to true when the key is absent from the file.
func (t TelegramConfig) PollingEnabled() bool {
	return t.Polling == nil || *t.Polling
}

type FinnhubConfig struct {
	APIKey         string `yaml:"api_key" validate:"required"`
	BaseURL        string `yaml:"base_url" default:"https://finnhub.io/api/v1"`
	TimeoutSeconds int    `yaml:"timeout_seconds" default:"10" validate:"gt=0"`
}

func (f FinnhubConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

type ScheduleConfig struct {
	Symbols   []string `yaml:"symbols" default:"[\"SPY\",\"QQQ\",\"EURUSD\"]" validate:"min=1"`
	NewsLimit int      `yaml:"news_limit" default:"4" validate:"gt=0"`
}

type DispatchConfig struct {
	Burst     float64 `yaml:"burst" default:"20" validate:"gt=0"`
	PerSecond float64 `yaml:"per_second" default:"1" validate:"gt=0"`
}

// envOverrides is processed separately from Config so that the envconfig
// and defaults libraries never read each other's struct tags.
type envOverrides struct {
	TelegramToken string   `envconfig:"TELEGRAM_TOKEN"`
	ChannelID     string   `envconfig:"CHANNEL_ID"`
	FinnhubAPIKey string   `envconfig:"FINNHUB_API_KEY"`
	LogLevel      string   `envconfig:"LOG_LEVEL"`
	HTTPPort      int      `envconfig:"HTTP_PORT"`
	Symbols       []string `envconfig:"SYMBOLS"`
}

// Load reads a YAML configuration file and applies defaults. A missing file
// is not an error: defaults plus environment variables describe a complete
// setup. Validation happens in LoadWithEnv, after the env overlay.
func Load(path string) (*Config, error) {
	var c Config

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	// Pick up a local .env if present; absence is fine.
	_ = godotenv.Load()

	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if env.TelegramToken != "" {
		c.Telegram.Token = env.TelegramToken
	}
	if env.ChannelID != "" {
		c.Telegram.ChannelID = env.ChannelID
	}
	if env.FinnhubAPIKey != "" {
		c.Finnhub.APIKey = env.FinnhubAPIKey
	}
	if env.LogLevel != "" {
		c.Log.Level = env.LogLevel
	}
	if env.HTTPPort != 0 {
		c.Server.Port = env.HTTPPort
	}
	if len(env.Symbols) > 0 {
		c.Schedule.Symbols = env.Symbols
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

var validate = validator.New()

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram token is required (set TELEGRAM_TOKEN)")
	}
	if c.Telegram.ChannelID == "" {
		return fmt.Errorf("destination channel id is required (set CHANNEL_ID)")
	}
	if c.Finnhub.APIKey == "" {
		return fmt.Errorf("finnhub api key is required (set FINNHUB_API_KEY)")
	}
	if err := validate.Struct(c); err != nil {
		return err
	}
	return nil
}
