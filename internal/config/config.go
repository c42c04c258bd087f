package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/validator"
)

// DefaultFile is looked up under the XDG config directories when no path is given.
const DefaultFile = "mech-tic-toe/config.yml"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	LogLevel         string        `yaml:"log-level" env:"MTT_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	UI               string        `yaml:"ui" env:"MTT_UI" env-default:"text" validate:"oneof=text json tui"`
	Difficulty       string        `yaml:"difficulty" env:"MTT_DIFFICULTY" env-default:"hard" validate:"oneof=easy medium hard"`
	ThinkDelay       time.Duration `yaml:"think-delay" env:"MTT_THINK_DELAY" validate:"min=0s"`
	Seed             uint64        `yaml:"seed" env:"MTT_SEED" env-default:"0"`
	MaxInputAttempts int           `yaml:"max-input-attempts" env:"MTT_MAX_INPUT_ATTEMPTS" env-default:"0" validate:"min=0"`
	Rematch          bool          `yaml:"rematch" env:"MTT_REMATCH"`
	Telemetry        Telemetry     `yaml:"telemetry"`
}

type Telemetry struct {
	Exporter    string `yaml:"exporter" env:"MTT_TELEMETRY_EXPORTER" env-default:"none" validate:"oneof=none stdout otlp"`
	Endpoint    string `yaml:"endpoint" env:"MTT_OTLP_ENDPOINT" env-default:"localhost:4317" validate:"required_if=Exporter otlp"`
	ServiceName string `yaml:"service-name" env:"MTT_SERVICE_NAME" env-default:"mech-tic-toe" validate:"required"`
}

// Default returns the config before any file or environment is applied.
// Zero is a meaningful value for these fields, so their defaults live here
// rather than in env-default tags, which only fill zero fields.
func Default() Config {
	return Config{
		ThinkDelay: time.Second,
		Rematch:    true,
	}
}

// Load reads the config file at path, or the XDG default file when path is
// empty, then applies environment overrides. A missing default file is not an
// error: defaults and environment still apply. The result is not validated so
// callers can apply flag overrides first.
func Load(path string) (*Config, error) {
	def := Default()
	cfg := &def

	if path == "" {
		if found, err := xdg.SearchConfigFile(DefaultFile); err == nil {
			path = found
		}
	}

	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
	}
	return cfg, nil
}

// MustLoad loads and validates the config, panicking on failure.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) Validate() error {
	if err := validator.GetValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, validator.Describe(err))
	}
	return nil
}
