package cart

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/P3RALT/SysEstoque/internal/inventory"
	"github.com/P3RALT/SysEstoque/internal/notification"
	"github.com/P3RALT/SysEstoque/pkg/models"
	"github.com/P3RALT/SysEstoque/pkg/security"

	"github.com/gin-gonic/gin"
)

// Dispatcher runs the notification fallback chain for a submission.
type Dispatcher interface {
	Dispatch(ctx context.Context, req models.Requisition, opts notification.Options) notification.Result
}

// StockSync is the best-effort write-back to the remote stock sheet.
type StockSync interface {
	WriteBack(ctx context.Context, writeBack inventory.WriteBackRequest) (*inventory.ServerAck, error)
}

// RequisitionLogger records dispatch outcomes; failures are its own problem.
type RequisitionLogger interface {
	Log(outcome string, req models.Requisition)
}

type Handler struct {
	store      *Store
	mirror     *inventory.Mirror
	dispatcher Dispatcher
	stock      StockSync
	reqLog     RequisitionLogger
}

func NewHandler(store *Store, mirror *inventory.Mirror, dispatcher Dispatcher, stock StockSync, reqLog RequisitionLogger) *Handler {
	return &Handler{
		store:      store,
		mirror:     mirror,
		dispatcher: dispatcher,
		stock:      stock,
		reqLog:     reqLog,
	}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/cart", h.GetCart)
	router.POST("/cart/items", h.AddItem)
	router.DELETE("/cart/items/:id", h.RemoveItem)
	router.DELETE("/cart", h.ClearCart)
	router.POST("/cart/send", h.SendRequisition)
}

func (h *Handler) GetCart(c *gin.Context) {
	_, email, err := security.SessionUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
		return
	}

	lines := h.store.Lines(email)
	c.JSON(http.StatusOK, gin.H{"items": lines, "empty": len(lines) == 0})
}

func (h *Handler) AddItem(c *gin.Context) {
	_, email, err := security.SessionUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
		return
	}

	var req models.RequisitionLine
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	line, err := h.store.AddLine(email, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Por favor, preencha pelo menos um item e sua quantidade.",
			"details": err.Error(),
		})
		return
	}

	response := gin.H{"item": line, "message": "Item adicionado ao carrinho!"}

	// Stock validation is advisory: the cart does not require a populated
	// mirror, a stale snapshot only produces a warning.
	if _, found := h.mirror.Lookup(line.Category, line.Name); !found {
		response["warning"] = "Item não encontrado no inventário."
	} else if !h.mirror.ValidateQuantity(line.Category, line.Name, line.Quantity) {
		available := h.mirror.AvailableQuantity(line.Category, line.Name)
		response["warning"] = "Quantidade solicitada acima do estoque disponível (" + strconv.Itoa(available) + ")."
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) RemoveItem(c *gin.Context) {
	_, email, err := security.SessionUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID", "details": err.Error()})
		return
	}

	if !h.store.RemoveLine(email, id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item não encontrado no carrinho"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removido do carrinho",
		"empty":   h.store.Empty(email),
	})
}

func (h *Handler) ClearCart(c *gin.Context) {
	_, email, err := security.SessionUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
		return
	}

	h.store.Clear(email)
	c.JSON(http.StatusOK, gin.H{"message": "Carrinho esvaziado", "empty": true})
}

// SendRequisition runs the delivery chain over the current cart snapshot.
// Any delivered outcome clears the cart and kicks off the stock write-back;
// the write-back result never changes what the user is told.
func (h *Handler) SendRequisition(c *gin.Context) {
	name, email, err := security.SessionUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
		return
	}

	var req struct {
		ManualCopyConsent bool `json:"manual_copy_consent"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
	}

	lines := h.store.Snapshot(email)
	if len(lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Adicione pelo menos um item antes de enviar."})
		return
	}

	requisition := models.Requisition{
		User:      models.SessionUser{Name: name, Email: email},
		Lines:     lines,
		CreatedAt: time.Now(),
	}

	result := h.dispatcher.Dispatch(c.Request.Context(), requisition, notification.Options{
		ManualCopyConsent: req.ManualCopyConsent,
	})

	if result.Outcome.Delivered() {
		h.store.Clear(email)
		h.reqLog.Log(string(result.Outcome), requisition)
		go h.writeBack(requisition)
	}

	c.JSON(http.StatusOK, result)
}

// writeBack decrements stock in the remote sheet after a delivered
// requisition. Fire and forget: a failure here is logged and the user still
// sees the requisition as sent. Known consistency gap, kept on purpose.
func (h *Handler) writeBack(requisition models.Requisition) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	writeBack, err := inventory.NewWriteBackRequest(requisition)
	if err != nil {
		log.Printf("Write-back não montado: %v", err)
		return
	}

	ack, err := h.stock.WriteBack(ctx, *writeBack)
	if err != nil {
		var wbErr *inventory.WriteBackError
		if errors.As(err, &wbErr) {
			log.Printf("Write-back recusado pelo servidor: %v", wbErr)
		} else {
			log.Printf("Write-back falhou: %v", err)
		}
		return
	}

	log.Printf("Estoque atualizado na planilha: %s", ack.Message)
}
