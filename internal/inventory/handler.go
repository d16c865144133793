package inventory

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	mirror *Mirror
}

func NewHandler(mirror *Mirror) *Handler {
	return &Handler{mirror: mirror}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/inventory", h.GetInventory)
	router.GET("/inventory/categories/:category", h.GetCategory)
	router.POST("/inventory/refresh", h.RefreshInventory)
}

func (h *Handler) GetInventory(c *gin.Context) {
	c.JSON(http.StatusOK, h.mirror.Records())
}

// GetCategory feeds the catalog page's per-category item lists. The path
// parameter is the form-facing label.
func (h *Handler) GetCategory(c *gin.Context) {
	category := c.Param("category")

	items, err := h.mirror.ItemsByCategory(category)
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Categoria desconhecida", "details": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao listar categoria", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// RefreshInventory replaces the whole snapshot. A fetch failure still
// answers 200: the mirror has fallen back to the sample dataset and the
// page keeps working, which is the point.
func (h *Handler) RefreshInventory(c *gin.Context) {
	if err := h.mirror.Refresh(c.Request.Context()); err != nil {
		log.Printf("Refresh do inventário falhou: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"status":  "fallback",
			"message": "Inventário remoto indisponível, usando dados de exemplo",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "items": len(h.mirror.Records())})
}
