package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/P3RALT/SysEstoque/internal/inventory"
	"github.com/P3RALT/SysEstoque/internal/notification"
	"github.com/P3RALT/SysEstoque/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeDispatcher struct {
	result   notification.Result
	lastReq  models.Requisition
	lastOpts notification.Options
	calls    int
}

func (f *fakeDispatcher) Dispatch(_ context.Context, req models.Requisition, opts notification.Options) notification.Result {
	f.calls++
	f.lastReq = req
	f.lastOpts = opts
	return f.result
}

type fakeStockSync struct {
	requests chan inventory.WriteBackRequest
}

func newFakeStockSync() *fakeStockSync {
	return &fakeStockSync{requests: make(chan inventory.WriteBackRequest, 1)}
}

func (f *fakeStockSync) WriteBack(_ context.Context, wb inventory.WriteBackRequest) (*inventory.ServerAck, error) {
	f.requests <- wb
	return &inventory.ServerAck{Success: true}, nil
}

type fakeReqLog struct {
	outcomes []string
}

func (f *fakeReqLog) Log(outcome string, _ models.Requisition) {
	f.outcomes = append(f.outcomes, outcome)
}

func sampleMirror() *inventory.Mirror {
	m := inventory.NewMirror()
	// No sources configured: refresh installs the sample dataset.
	_ = m.Refresh(context.Background())
	return m
}

func setupSendContext(body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userName", "Ana")
	c.Set("userEmail", "rh@imobiliarialopes.com.br")
	c.Request = httptest.NewRequest("POST", "/cart/send", bytes.NewBuffer(body))
	return c, w
}

func TestSendRequisitionEmptyCart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dispatcher := &fakeDispatcher{}
	handler := NewHandler(NewStore(), sampleMirror(), dispatcher, newFakeStockSync(), &fakeReqLog{})

	c, w := setupSendContext(nil)
	handler.SendRequisition(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, dispatcher.calls, "dispatch must not run on an empty cart")
}

func TestSendRequisitionDelivered(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := NewStore()
	_, err := store.AddLine("rh@imobiliarialopes.com.br", models.RequisitionLine{
		Name: "Caneta", Quantity: 5, Category: models.CategoryOfficeSupplies,
	})
	assert.NoError(t, err)

	dispatcher := &fakeDispatcher{result: notification.Result{Outcome: notification.OutcomeSent}}
	stock := newFakeStockSync()
	reqLog := &fakeReqLog{}
	handler := NewHandler(store, sampleMirror(), dispatcher, stock, reqLog)

	c, w := setupSendContext(nil)
	handler.SendRequisition(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, dispatcher.calls)
	assert.Equal(t, "Ana", dispatcher.lastReq.User.Name)
	assert.True(t, store.Empty("rh@imobiliarialopes.com.br"), "delivered outcome clears the cart")
	assert.Equal(t, []string{"sent"}, reqLog.outcomes)

	// The write-back runs detached from the response.
	select {
	case wb := <-stock.requests:
		assert.Len(t, wb.Items, 1)
		assert.Equal(t, "Caneta", wb.Items[0].Item)
		assert.Equal(t, "Suprimentos de Escritório", wb.Items[0].Category)
	case <-time.After(2 * time.Second):
		t.Fatal("write-back was never invoked")
	}
}

func TestSendRequisitionAbandoned(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := NewStore()
	_, err := store.AddLine("rh@imobiliarialopes.com.br", models.RequisitionLine{
		Name: "Caneta", Quantity: 5, Category: models.CategoryOfficeSupplies,
	})
	assert.NoError(t, err)

	dispatcher := &fakeDispatcher{result: notification.Result{Outcome: notification.OutcomeAbandoned}}
	stock := newFakeStockSync()
	reqLog := &fakeReqLog{}
	handler := NewHandler(store, sampleMirror(), dispatcher, stock, reqLog)

	c, w := setupSendContext(nil)
	handler.SendRequisition(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, store.Empty("rh@imobiliarialopes.com.br"), "abandoned dispatch keeps the cart")
	assert.Empty(t, reqLog.outcomes)

	select {
	case <-stock.requests:
		t.Fatal("abandoned dispatch must not touch stock")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSendRequisitionForwardsManualCopyConsent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := NewStore()
	_, _ = store.AddLine("rh@imobiliarialopes.com.br", models.RequisitionLine{
		Name: "Caneta", Quantity: 5, Category: models.CategoryOfficeSupplies,
	})

	dispatcher := &fakeDispatcher{result: notification.Result{Outcome: notification.OutcomeCopiedForManualSend}}
	handler := NewHandler(store, sampleMirror(), dispatcher, newFakeStockSync(), &fakeReqLog{})

	body, _ := json.Marshal(map[string]bool{"manual_copy_consent": true})
	c, w := setupSendContext(body)
	handler.SendRequisition(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, dispatcher.lastOpts.ManualCopyConsent)
}

func TestAddItemWarnsOnStockMismatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(NewStore(), sampleMirror(), &fakeDispatcher{}, newFakeStockSync(), &fakeReqLog{})

	tests := []struct {
		name        string
		line        models.RequisitionLine
		wantWarning bool
	}{
		{
			name:        "within stock",
			line:        models.RequisitionLine{Name: "Caneta", Quantity: 5, Category: models.CategoryOfficeSupplies},
			wantWarning: false,
		},
		{
			name:        "above stock",
			line:        models.RequisitionLine{Name: "Mouse", Quantity: 10, Category: models.CategoryPeripherals},
			wantWarning: true,
		},
		{
			name:        "unknown item",
			line:        models.RequisitionLine{Name: "Impressora 3D", Quantity: 1, Category: models.CategoryPeripherals},
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Set("userName", "Ana")
			c.Set("userEmail", "rh@imobiliarialopes.com.br")

			body, _ := json.Marshal(tt.line)
			c.Request = httptest.NewRequest("POST", "/cart/items", bytes.NewBuffer(body))

			handler.AddItem(c)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

			_, hasWarning := response["warning"]
			assert.Equal(t, tt.wantWarning, hasWarning)
		})
	}
}
