package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/P3RALT/SysEstoque/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestFetchToleratesStringQuantities(t *testing.T) {
	// The Apps Script endpoint serializes Quantidade as a number or a quoted
	// string depending on how the cell is formatted.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[
			{"Item":"Caneta","Categoria":"Suprimentos de Escritório","Descrição":"Azul","Quantidade":"12","Unidade":"un"},
			{"Item":"Mouse","Categoria":"Materiais Periféricos","Quantidade":3.0,"Unidade":"un"},
			{"Item":"","Categoria":"Suprimentos de Escritório","Quantidade":1}
		]`))
	}))
	defer server.Close()

	records, err := NewWebAppClient(server.URL).Fetch(context.Background())

	assert.NoError(t, err)
	// The row without an item name is skipped.
	assert.Len(t, records, 2)
	assert.Equal(t, 12, records[0].Quantity)
	assert.Equal(t, 3, records[1].Quantity)
}

func TestFetchRejectsNonArrayBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"error":"script not deployed"}`))
	}))
	defer server.Close()

	_, err := NewWebAppClient(server.URL).Fetch(context.Background())

	assert.ErrorIs(t, err, ErrBadShape)
}

func TestFetchNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewWebAppClient(server.URL).Fetch(context.Background())

	assert.Error(t, err)
}

func writeBackRequisition() models.Requisition {
	created, _ := time.Parse("02/01/2006 15:04:05", "15/03/2025 10:30:00")
	return models.Requisition{
		User: models.SessionUser{Name: "Ana", Email: "ana@imobiliarialopes.com.br"},
		Lines: []models.RequisitionLine{
			{Name: "Caneta", Quantity: 5, Category: models.CategoryOfficeSupplies},
			{Name: "Toner HP 85A", Quantity: 1, Category: models.CategoryTonerExchange},
		},
		CreatedAt: created,
	}
}

func TestNewWriteBackRequestTranslatesCategories(t *testing.T) {
	wb, err := NewWriteBackRequest(writeBackRequisition())

	assert.NoError(t, err)
	assert.Equal(t, "Ana", wb.User.Name)
	assert.Equal(t, "15/03/2025 10:30:00", wb.Date)
	assert.Equal(t, "Suprimentos de Escritório", wb.Items[0].Category)
	assert.Equal(t, "Toners de Impressora", wb.Items[1].Category)
}

func TestNewWriteBackRequestUnknownCategoryAborts(t *testing.T) {
	req := writeBackRequisition()
	req.Lines = append(req.Lines, models.RequisitionLine{Name: "X", Quantity: 1, Category: "Categoria Fantasma"})

	wb, err := NewWriteBackRequest(req)

	assert.Nil(t, wb)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestWriteBackSuccess(t *testing.T) {
	var received WriteBackRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"success":true,"message":"estoque atualizado"}`))
	}))
	defer server.Close()

	wb, err := NewWriteBackRequest(writeBackRequisition())
	assert.NoError(t, err)

	ack, err := NewWebAppClient(server.URL).WriteBack(context.Background(), *wb)

	assert.NoError(t, err)
	assert.True(t, ack.Success)
	assert.Equal(t, "estoque atualizado", ack.Message)
	assert.Len(t, received.Items, 2)
}

func TestWriteBackAcceptsAnyBodyOn2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	wb, _ := NewWriteBackRequest(writeBackRequisition())
	ack, err := NewWebAppClient(server.URL).WriteBack(context.Background(), *wb)

	assert.NoError(t, err)
	assert.True(t, ack.Success)
}

func TestWriteBackNon2xxReturnsServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "item não encontrado na planilha", http.StatusConflict)
	}))
	defer server.Close()

	wb, _ := NewWriteBackRequest(writeBackRequisition())
	_, err := NewWebAppClient(server.URL).WriteBack(context.Background(), *wb)

	var wbErr *WriteBackError
	assert.ErrorAs(t, err, &wbErr)
	assert.Equal(t, http.StatusConflict, wbErr.StatusCode)
	assert.Contains(t, wbErr.Message, "item não encontrado")
}
