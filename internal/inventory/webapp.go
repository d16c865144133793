package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/P3RALT/SysEstoque/pkg/models"
)

// WebAppClient talks to the Google Apps Script web app backing the stock
// sheet: GET returns the full sheet as a JSON array, POST applies a
// requisition to decrement stock.
type WebAppClient struct {
	url    string
	client *http.Client
}

func NewWebAppClient(url string) *WebAppClient {
	return &WebAppClient{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *WebAppClient) Name() string {
	return "webapp"
}

// webAppRow tolerates Quantidade arriving as either a number or a quoted
// string, which the Apps Script endpoint does depending on cell formatting.
type webAppRow struct {
	Item        string      `json:"Item"`
	Category    string      `json:"Categoria"`
	Description string      `json:"Descrição"`
	Quantity    sheetNumber `json:"Quantidade"`
	Unit        string      `json:"Unidade"`
}

type sheetNumber int

func (n *sheetNumber) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	// Cells formatted as floats ("12.0") still mean whole units.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("quantidade inválida %q: %w", s, err)
	}

	*n = sheetNumber(int(f))
	return nil
}

func (c *WebAppClient) Fetch(ctx context.Context) ([]models.InventoryRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro de conexão com a planilha: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("planilha retornou %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro lendo resposta da planilha: %w", err)
	}

	var rows []webAppRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadShape, err)
	}

	records := make([]models.InventoryRecord, 0, len(rows))
	for _, row := range rows {
		if row.Item == "" {
			continue
		}
		records = append(records, models.InventoryRecord{
			Item:        row.Item,
			Category:    row.Category,
			Description: row.Description,
			Quantity:    int(row.Quantity),
			Unit:        row.Unit,
		})
	}

	return records, nil
}

// WriteBackError carries the raw server message when the stock update is
// refused.
type WriteBackError struct {
	StatusCode int
	Message    string
}

func (e *WriteBackError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("atualização de estoque recusada (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return "atualização de estoque recusada: " + e.Message
}

type WriteBackItem struct {
	Item     string `json:"Item"`
	Category string `json:"Categoria"`
	Quantity int    `json:"Quantidade"`
}

type WriteBackRequest struct {
	User  models.SessionUser `json:"usuario"`
	Items []WriteBackItem    `json:"itens"`
	Date  string             `json:"data"`
}

// ServerAck is decoded best-effort; only HTTP status decides success.
type ServerAck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewWriteBackRequest translates a requisition's form categories into sheet
// categories. An unmapped category is a configuration gap and aborts the
// whole write-back rather than dropping the line.
func NewWriteBackRequest(req models.Requisition) (*WriteBackRequest, error) {
	items := make([]WriteBackItem, 0, len(req.Lines))
	for _, line := range req.Lines {
		sheet, err := SheetCategory(line.Category)
		if err != nil {
			return nil, err
		}
		items = append(items, WriteBackItem{
			Item:     line.Name,
			Category: sheet,
			Quantity: line.Quantity,
		})
	}

	return &WriteBackRequest{
		User:  req.User,
		Items: items,
		Date:  req.CreatedAt.Format("02/01/2006 15:04:05"),
	}, nil
}

// WriteBack POSTs the requisition so the sheet decrements stock. Best
// effort: callers must not couple the user-visible outcome to it.
func (c *WebAppClient) WriteBack(ctx context.Context, writeBack WriteBackRequest) (*ServerAck, error) {
	payload, err := json.Marshal(writeBack)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar payload de estoque: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro de conexão com o servidor: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &WriteBackError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	ack := &ServerAck{Success: true}
	if err := json.Unmarshal(body, ack); err != nil {
		// Any response shape is accepted on a 2xx.
		return &ServerAck{Success: true, Message: strings.TrimSpace(string(body))}, nil
	}

	return ack, nil
}
