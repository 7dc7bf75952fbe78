package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"taskdesk/internal/shared/config"
)

// NewService builds a Sheets API client from the configured service
// account credentials. Inline JSON wins over a credentials file path so
// containerized deployments can inject the key through the environment;
// inline JSON is parsed eagerly so a bad key fails at startup, not on
// the first request.
func NewService(ctx context.Context, cfg config.SheetsConfig) (*sheets.Service, error) {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		creds, err := google.CredentialsFromJSON(ctx, []byte(cfg.CredentialsJSON), sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("failed to parse sheets credentials JSON: %w", err)
		}
		opts = append(opts, option.WithCredentials(creds))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile), option.WithScopes(sheets.SpreadsheetsScope))
	default:
		return nil, fmt.Errorf("sheets credentials are not configured")
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return svc, nil
}
