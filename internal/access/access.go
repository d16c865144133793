package access

import (
	"errors"
	"regexp"
	"strings"

	"github.com/P3RALT/SysEstoque/pkg/models"
)

var (
	ErrEmptyName          = errors.New("nome não informado")
	ErrInvalidEmailFormat = errors.New("formato de e-mail inválido")
	ErrEmailNotAuthorized = errors.New("e-mail não cadastrado")
)

// Same shape rule as the login form: one @, at least one dot after it,
// no whitespace anywhere.
var emailFormat = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Gate validates a name/email pair against the allow-list. It is UX gating
// for an internal form, not an access-control boundary.
type Gate struct {
	allowed []string
}

func NewGate(allowedEmails []string) *Gate {
	return &Gate{allowed: allowedEmails}
}

// Authenticate trims both inputs and checks them in order: empty name,
// e-mail shape, allow-list membership (case-insensitive). On success it
// returns the SessionUser exactly as typed (trimmed).
func (g *Gate) Authenticate(name string, email string) (*models.SessionUser, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, ErrEmptyName
	}

	if email == "" || !emailFormat.MatchString(email) {
		return nil, ErrInvalidEmailFormat
	}

	if !g.isRegistered(email) {
		return nil, ErrEmailNotAuthorized
	}

	return &models.SessionUser{Name: name, Email: email}, nil
}

func (g *Gate) isRegistered(email string) bool {
	for _, e := range g.allowed {
		if strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}
