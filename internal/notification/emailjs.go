package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/P3RALT/SysEstoque/internal/config"
	"github.com/P3RALT/SysEstoque/pkg/models"
)

// EmailJSStrategy submits the requisition to the hosted templated e-mail
// service. First and only channel that actually delivers without user help.
type EmailJSStrategy struct {
	cfg            config.EmailJSConfig
	categoryGroups map[string]string
	client         *http.Client
}

func NewEmailJSStrategy(cfg config.EmailJSConfig, categoryGroups map[string]string) *EmailJSStrategy {
	return &EmailJSStrategy{
		cfg:            cfg,
		categoryGroups: categoryGroups,
		// The client timeout bounds the whole attempt so the chain can
		// never hang here past the configured window.
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *EmailJSStrategy) Name() string {
	return "templated_email"
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (s *EmailJSStrategy) Attempt(ctx context.Context, req models.Requisition, _ Options) (*Result, error) {
	recipients, err := DestinationEmails(req.Lines, s.categoryGroups)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(emailJSRequest{
		ServiceID:      s.cfg.ServiceID,
		TemplateID:     s.cfg.TemplateID,
		UserID:         s.cfg.PublicKey,
		TemplateParams: TemplateParams(req, recipients),
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao montar payload do email: %w", err)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, s.cfg.Endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("erro no envio do email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("emailjs returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	return &Result{
		Outcome: OutcomeSent,
		Message: "Requisição enviada com sucesso! Email de notificação enviado para os responsáveis.",
	}, nil
}
