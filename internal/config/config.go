// Package config loads and validates the studybuddy configuration.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Backend  BackendConfig  `mapstructure:"backend"`
	Review   ReviewConfig   `mapstructure:"review"`
	Sidekick SidekickConfig `mapstructure:"sidekick"`
	Journal  JournalConfig  `mapstructure:"journal"`
	Database DatabaseConfig `mapstructure:"database"`
	Exports  ExportsConfig  `mapstructure:"exports"`
	Ingest   IngestConfig   `mapstructure:"ingest"`
}

type BackendConfig struct {
	URL            string `mapstructure:"url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gt=0"`
	RetryAttempts  uint   `mapstructure:"retry_attempts"`
}

// ReviewConfig carries the grading vocabulary. The tokens belong to the
// backend; the client only offers them as menu choices and passes the
// chosen one through verbatim.
type ReviewConfig struct {
	Results []string `mapstructure:"results" validate:"min=1,dive,required"`
	DeckID  int64    `mapstructure:"deck_id"`
}

type SidekickConfig struct {
	// Template is optional - if not specified, will use embedded fallback template
	TemplateFile string `mapstructure:"template_file" validate:"omitempty,file"`
}

type JournalConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ExportsConfig struct {
	Directory string `mapstructure:"directory"`
}

type IngestConfig struct {
	CacheDirectory string `mapstructure:"cache_directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/studybuddy")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("backend.url", "http://localhost:8000")
	v.SetDefault("backend.timeout_seconds", 30)
	v.SetDefault("backend.retry_attempts", 3)
	// The deployed backend's grading vocabulary. Override when the
	// backend accepts different result tokens.
	v.SetDefault("review.results", []string{"again", "good", "easy"})
	v.SetDefault("sidekick.template_file", "")
	v.SetDefault("journal.enabled", false)
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "studybuddy")
	v.SetDefault("database.username", "studybuddy")
	v.SetDefault("exports.directory", "exports")
	v.SetDefault("ingest.cache_directory", filepath.Join("cache", "ingest"))

	// Bind the backend URL to an environment variable so a shell can
	// target a non-default deployment without editing the config file
	if err := v.BindEnv("backend.url", "STUDYBUDDY_BACKEND_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind STUDYBUDDY_BACKEND_URL environment variable: %w", err)
	}

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
