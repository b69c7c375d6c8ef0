package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"certgen/internal"
	"certgen/internal/config"
)

// Connector appends one row per submission to a Google Sheet, for
// deployments that keep the remote table in a spreadsheet instead of a
// table API.
type Connector struct {
	service       *sheets.Service
	spreadsheetID string
	appendRange   string
}

func NewConnector(cfg config.Config) (*Connector, error) {
	if err := cfg.Require("SHEETS_CLIENT_ID", cfg.SheetsClientID); err != nil {
		return nil, err
	}
	if err := cfg.Require("SHEETS_CLIENT_SECRET", cfg.SheetsClientSecret); err != nil {
		return nil, err
	}
	if err := cfg.Require("SHEETS_REFRESH_TOKEN", cfg.SheetsRefreshToken); err != nil {
		return nil, err
	}
	if err := cfg.Require("SHEETS_SPREADSHEET_ID", cfg.SheetsSpreadsheetID); err != nil {
		return nil, err
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.SheetsClientID,
		ClientSecret: cfg.SheetsClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  cfg.SheetsRedirectURI,
		Scopes:       []string{sheets.SpreadsheetsScope},
	}

	tokenSource := oauthCfg.TokenSource(context.Background(), &oauth2.Token{RefreshToken: cfg.SheetsRefreshToken})
	svc, err := sheets.NewService(context.Background(), option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &Connector{
		service:       svc,
		spreadsheetID: cfg.SheetsSpreadsheetID,
		appendRange:   cfg.SheetsRange,
	}, nil
}

func (c *Connector) Insert(ctx context.Context, record internal.SubmissionRecord) error {
	values := &sheets.ValueRange{
		Values: [][]any{{
			record.Name,
			record.SchoolName,
			record.SchoolNumber,
			record.ContactNumber,
			record.ICNumber,
			record.Timestamp,
		}},
	}

	resp, err := c.service.Spreadsheets.Values.
		Append(c.spreadsheetID, c.appendRange, values).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append submission row: %w", err)
	}
	if resp.Updates == nil || resp.Updates.UpdatedRows == 0 {
		return fmt.Errorf("append submission row: no rows written")
	}
	return nil
}
