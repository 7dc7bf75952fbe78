package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "taskdesk/internal/shared/config"
)

type Config struct {
	Server   sharedConfig.ServerConfig   `mapstructure:"server"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
	Sheets   sharedConfig.SheetsConfig   `mapstructure:"sheets"`
	Notifier sharedConfig.NotifierConfig `mapstructure:"notifier"`
	Business sharedConfig.BusinessConfig `mapstructure:"business"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("TASKDESK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func validate(cfg *Config) error {
	if cfg.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("sheets.spreadsheet_id is required")
	}
	if cfg.Sheets.CredentialsFile == "" && cfg.Sheets.CredentialsJSON == "" {
		return fmt.Errorf("one of sheets.credentials_file or sheets.credentials_json is required")
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Sheets defaults
	viper.SetDefault("sheets.task_sheet_title", "tasks")
	viper.SetDefault("sheets.roster_sheet_title", "staff")

	// Notifier defaults (empty webhook URL disables notification)
	viper.SetDefault("notifier.webhook_url", "")
	viper.SetDefault("notifier.app_url", "")

	// Business defaults
	viper.SetDefault("business.timezone", "Asia/Tokyo")
}
