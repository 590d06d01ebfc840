package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/limaJavier/scheduling/pkg/model"
	"github.com/mitchellh/mapstructure"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultConfigPath = "config.json"
	DefaultEnvPath    = ".env"
)

// Environment variables overriding the keys of config.json
var envKeys = map[string]string{
	"COLLATION":           "collation",
	"MAX_SCENARIOS":       "maxScenarios",
	"REQUIRE_ALL_COURSES": "requireAllCourses",
	"LOG_LEVEL":           "logLevel",
	"ADDR":                "addr",
	"ALLOWED_ORIGINS":     "allowedOrigins",
}

type Config struct {
	Collation         string   `mapstructure:"collation"`
	MaxScenarios      int      `mapstructure:"maxScenarios"`
	RequireAllCourses bool     `mapstructure:"requireAllCourses"`
	LogLevel          string   `mapstructure:"logLevel"`
	Addr              string   `mapstructure:"addr"`
	AllowedOrigins    []string `mapstructure:"allowedOrigins"`
}

func Default() Config {
	return Config{
		Collation:      model.ByteOrder.Name(),
		LogLevel:       log.InfoLevel.String(),
		Addr:           ":3000",
		AllowedOrigins: []string{"*"},
	}
}

// Load starts from the defaults, applies configPath and then the variables of envPath and the process environment, the
// latter taking precedence. Missing files are ignored
func Load(configPath, envPath string) (Config, error) {
	config := Default()

	bytes, err := os.ReadFile(configPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("cannot read %v: %w", configPath, err)
	} else if err == nil {
		var configJson map[string]any
		if err := json.Unmarshal(bytes, &configJson); err != nil {
			return Config{}, fmt.Errorf("cannot parse %v: %w", configPath, err)
		}
		if err := decode(configJson, &config); err != nil {
			return Config{}, fmt.Errorf("cannot decode %v: %w", configPath, err)
		}
	}

	env, err := godotenv.Read(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("cannot read %v: %w", envPath, err)
	} else if env == nil {
		env = make(map[string]string)
	}

	overrides := make(map[string]any)
	for variable, key := range envKeys {
		if value, ok := os.LookupEnv(variable); ok {
			overrides[key] = value
		} else if value, ok := env[variable]; ok {
			overrides[key] = value
		}
	}
	if err := decode(overrides, &config); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	if err := config.validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Scheduler builds the scheduler described by the configuration
func (config Config) Scheduler() (model.Scheduler, error) {
	collation, err := model.CollationByName(config.Collation)
	if err != nil {
		return nil, err
	}
	return model.NewBacktrackingScheduler(collation, config.MaxScenarios, config.RequireAllCourses), nil
}

// ApplyLogLevel sets the level of the standard logrus logger
func (config Config) ApplyLogLevel() error {
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

func (config Config) validate() error {
	if _, err := model.CollationByName(config.Collation); err != nil {
		return err
	} else if config.MaxScenarios < 0 {
		return fmt.Errorf("maxScenarios cannot be negative: %v", config.MaxScenarios)
	} else if _, err := log.ParseLevel(config.LogLevel); err != nil {
		return err
	}
	return nil
}

func decode(input map[string]any, config *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToSliceHookFunc(","),
		// Environment values are strings
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		ZeroFields:       true,
		Result:           config,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(input); err != nil {
		return err
	}
	config.AllowedOrigins = cleanOrigins(config.AllowedOrigins)
	return nil
}

func cleanOrigins(origins []string) []string {
	cleaned := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin = strings.TrimSpace(origin); origin != "" {
			cleaned = append(cleaned, origin)
		}
	}
	return cleaned
}
