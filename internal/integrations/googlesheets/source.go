package googlesheets

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/P3RALT/SysEstoque/pkg/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

// InventorySource reads the stock sheet directly through the Sheets API,
// bypassing the Apps Script web app. Used as the preferred refresh source
// when service-account credentials are configured.
type InventorySource struct {
	sheetsService *sheets.Service
	spreadsheetID string
	readRange     string
}

// NewInventorySource builds the source from GOOGLE_SHEETS_CREDENTIALS_JSON
// (or a local credentials file for development) and
// INVENTORY_SPREADSHEET_ID. Returns an error when neither credential path
// is available; callers fall back to the web app source.
func NewInventorySource() (*InventorySource, error) {
	ctx := context.Background()

	spreadsheetID := os.Getenv("INVENTORY_SPREADSHEET_ID")
	if spreadsheetID == "" {
		return nil, fmt.Errorf("INVENTORY_SPREADSHEET_ID não configurado")
	}

	credentialsJSON := os.Getenv("GOOGLE_SHEETS_CREDENTIALS_JSON")
	var credentials *google.Credentials
	var err error

	if credentialsJSON != "" {
		credentials, err = google.CredentialsFromJSON(ctx, []byte(credentialsJSON), sheets.SpreadsheetsReadonlyScope)
	} else {
		credentialsFile := "configs/google-credentials.json"
		b, readErr := os.ReadFile(credentialsFile)
		if readErr != nil {
			return nil, fmt.Errorf("não foi possível ler o arquivo de credenciais: %v", readErr)
		}
		credentials, err = google.CredentialsFromJSON(ctx, b, sheets.SpreadsheetsReadonlyScope)
	}

	if err != nil {
		return nil, fmt.Errorf("não foi possível carregar as credenciais Google: %v", err)
	}

	client := oauth2.NewClient(ctx, credentials.TokenSource)
	sheetsService, err := sheets.New(client)
	if err != nil {
		return nil, fmt.Errorf("não foi possível criar o cliente Google Sheets: %v", err)
	}

	readRange := os.Getenv("INVENTORY_SHEET_RANGE")
	if readRange == "" {
		readRange = "A1:E999"
	}

	return &InventorySource{
		sheetsService: sheetsService,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
	}, nil
}

func (s *InventorySource) Name() string {
	return "sheets-api"
}

func (s *InventorySource) Fetch(ctx context.Context) ([]models.InventoryRecord, error) {
	resp, err := s.sheetsService.Spreadsheets.Values.
		Get(s.spreadsheetID, s.readRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("não foi possível ler a planilha: %v", err)
	}

	if len(resp.Values) == 0 {
		log.Printf("Nenhum dado encontrado no intervalo %s", s.readRange)
		return []models.InventoryRecord{}, nil
	}

	return ParseInventory(resp.Values), nil
}
