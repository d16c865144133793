package requisitionlog

import (
	"net/http"

	"github.com/P3RALT/SysEstoque/pkg/security"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repository *Repository
}

func NewHandler(r *Repository) *Handler {
	return &Handler{repository: r}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/requisitions", h.GetRequisitions)
}

// GetRequisitions lists the calling user's past dispatch outcomes, newest
// first.
func (h *Handler) GetRequisitions(c *gin.Context) {
	_, email, err := security.SessionUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
		return
	}

	entries, err := h.repository.GetEntriesByUser(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao listar requisições", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requisitions": entries})
}
