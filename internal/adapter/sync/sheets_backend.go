package sync

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/eduardopaniago/GestaoFrota/internal/usecase/interfaces"
)

// Sheets caps a cell at 50k characters; chunk below that.
const sheetsCellLimit = 40000

// SheetsBackend stores the backup chunked down column A of a Google Sheet.
// It exists because the business already keeps its spreadsheets in Drive
// and wanted the backup next to them.
type SheetsBackend struct {
	service       *sheets.Service
	spreadsheetID string
}

var _ interfaces.ISyncBackend = (*SheetsBackend)(nil)

// NewSheetsBackend authenticates with the service-account credentials in
// GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_CREDENTIALS.
func NewSheetsBackend(ctx context.Context, sheetURL string) (*SheetsBackend, error) {
	spreadsheetID, err := extractSpreadsheetID(sheetURL)
	if err != nil {
		return nil, err
	}

	var creds []byte
	if credsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credsFile != "" {
		creds, err = os.ReadFile(credsFile)
		if err != nil {
			return nil, fmt.Errorf("reading credentials file: %w", err)
		}
	} else if credsJSON := os.Getenv("GOOGLE_CREDENTIALS"); credsJSON != "" {
		creds = []byte(credsJSON)
	} else {
		return nil, fmt.Errorf("sheets sync requires GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_CREDENTIALS")
	}

	config, err := google.JWTConfigFromJSON(creds, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parsing credentials: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}
	return &SheetsBackend{service: service, spreadsheetID: spreadsheetID}, nil
}

func extractSpreadsheetID(url string) (string, error) {
	re := regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)
	matches := re.FindStringSubmatch(url)
	if len(matches) < 2 {
		// Accept a bare spreadsheet ID too.
		if url != "" && !strings.Contains(url, "/") {
			return url, nil
		}
		return "", fmt.Errorf("invalid Google Sheets URL %q", url)
	}
	return matches[1], nil
}

func (b *SheetsBackend) Name() string { return "sheets" }

func (b *SheetsBackend) Upload(ctx context.Context, key string, blob []byte) error {
	var values [][]interface{}
	payload := string(blob)
	for len(payload) > 0 {
		chunk := payload
		if len(chunk) > sheetsCellLimit {
			chunk = chunk[:sheetsCellLimit]
		}
		values = append(values, []interface{}{chunk})
		payload = payload[len(chunk):]
	}

	if _, err := b.service.Spreadsheets.Values.Clear(
		b.spreadsheetID, columnRange(key), &sheets.ClearValuesRequest{},
	).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clearing previous backup: %w", err)
	}

	_, err := b.service.Spreadsheets.Values.Update(
		b.spreadsheetID, columnRange(key), &sheets.ValueRange{Values: values},
	).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("writing backup to sheet: %w", err)
	}
	return nil
}

func (b *SheetsBackend) Download(ctx context.Context, key string) ([]byte, error) {
	resp, err := b.service.Spreadsheets.Values.Get(b.spreadsheetID, columnRange(key)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading backup from sheet: %w", err)
	}
	var sb strings.Builder
	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		if chunk, ok := row[0].(string); ok {
			sb.WriteString(chunk)
		}
	}
	if sb.Len() == 0 {
		return nil, interfaces.ErrRemoteNotFound
	}
	return []byte(sb.String()), nil
}

func columnRange(sheetName string) string {
	return fmt.Sprintf("%s!A:A", sheetName)
}
