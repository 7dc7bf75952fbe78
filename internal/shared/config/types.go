package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// SheetsConfig addresses the backing spreadsheet. Exactly one of
// CredentialsFile or CredentialsJSON must be set.
type SheetsConfig struct {
	SpreadsheetID    string `mapstructure:"spreadsheet_id"`
	CredentialsFile  string `mapstructure:"credentials_file"`
	CredentialsJSON  string `mapstructure:"credentials_json"`
	TaskSheetTitle   string `mapstructure:"task_sheet_title"`
	RosterSheetTitle string `mapstructure:"roster_sheet_title"`
}

// NotifierConfig configures the chat webhook. An empty WebhookURL
// disables notification entirely; AppURL, when set, is appended to
// every message as a link back to the tracker.
type NotifierConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
	AppURL     string `mapstructure:"app_url"`
}

type BusinessConfig struct {
	Timezone string `mapstructure:"timezone"`
}
