package access

import (
	"errors"
	"log"
	"net/http"

	"github.com/P3RALT/SysEstoque/pkg/models"
	"github.com/P3RALT/SysEstoque/pkg/security"

	"github.com/gin-gonic/gin"
)

// SessionStore persists the logged-in user across page loads.
type SessionStore interface {
	Save(user models.SessionUser) error
	Load(email string) (*models.SessionUser, error)
}

type LoginHandler struct {
	gate     *Gate
	sessions SessionStore
}

func NewLoginHandler(gate *Gate, sessions SessionStore) *LoginHandler {
	return &LoginHandler{gate: gate, sessions: sessions}
}

func (h *LoginHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/auth", h.Login)
}

func (h *LoginHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/auth/session", h.GetSession)
}

func (h *LoginHandler) Login(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	user, err := h.gate.Authenticate(req.Name, req.Email)
	if err != nil {
		status, code, message := gateError(err)
		c.JSON(status, gin.H{"error": message, "code": code, "field": gateField(err)})
		return
	}

	if err := h.sessions.Save(*user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao salvar sessão", "details": err.Error()})
		return
	}

	token, err := security.GenerateSessionToken(user.Name, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"user":    user,
		"message": "Bem-vindo, " + user.Name + "! Acesso autorizado",
	})
}

// GetSession returns the persisted user for prefilling the login form.
// Absence is not an error and storage failure never blocks page init.
func (h *LoginHandler) GetSession(c *gin.Context) {
	_, email, err := security.SessionUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
		return
	}

	user, err := h.sessions.Load(email)
	if err != nil {
		log.Printf("Erro ao carregar sessão para %s: %v", email, err)
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func gateError(err error) (status int, code string, message string) {
	switch {
	case errors.Is(err, ErrEmptyName):
		return http.StatusBadRequest, "EMPTY_NAME", "Por favor, digite seu nome."
	case errors.Is(err, ErrInvalidEmailFormat):
		return http.StatusBadRequest, "INVALID_EMAIL_FORMAT", "Por favor, digite um e-mail válido."
	case errors.Is(err, ErrEmailNotAuthorized):
		return http.StatusUnauthorized, "EMAIL_NOT_AUTHORIZED",
			"E-mail não cadastrado. Verifique com o administrador da Imobiliária Lopes Contagem."
	default:
		return http.StatusInternalServerError, "INTERNAL", "Erro ao processar formulário. Tente novamente."
	}
}

// gateField tells the client which input should regain focus.
func gateField(err error) string {
	if errors.Is(err, ErrEmptyName) {
		return "name"
	}
	return "email"
}
