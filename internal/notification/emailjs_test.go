package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/P3RALT/SysEstoque/internal/config"

	"github.com/stretchr/testify/assert"
)

func emailJSTestConfig(endpoint string) config.EmailJSConfig {
	return config.EmailJSConfig{
		Endpoint:   endpoint,
		ServiceID:  "service_test",
		TemplateID: "template_test",
		PublicKey:  "public_test",
		Timeout:    2 * time.Second,
	}
}

func TestEmailJSAttemptSendsTemplatePayload(t *testing.T) {
	var captured emailJSRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s := NewEmailJSStrategy(emailJSTestConfig(server.URL), config.Load().CategoryGroups)

	result, err := s.Attempt(context.Background(), testRequisition(), Options{})

	assert.NoError(t, err)
	assert.Equal(t, OutcomeSent, result.Outcome)
	assert.Equal(t, "service_test", captured.ServiceID)
	assert.Equal(t, "template_test", captured.TemplateID)
	assert.Equal(t, "public_test", captured.UserID)
	assert.Equal(t, "rh@imobiliarialopes.com.br", captured.TemplateParams["to_email"])
	assert.Equal(t, "1", captured.TemplateParams["total_items"])
	assert.Contains(t, captured.TemplateParams["items_list"], "Caneta")
}

func TestEmailJSAttemptNon200FallsThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer server.Close()

	s := NewEmailJSStrategy(emailJSTestConfig(server.URL), config.Load().CategoryGroups)

	result, err := s.Attempt(context.Background(), testRequisition(), Options{})

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestEmailJSAttemptConnectionRefusedFallsThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close()

	s := NewEmailJSStrategy(emailJSTestConfig(server.URL), config.Load().CategoryGroups)

	result, err := s.Attempt(context.Background(), testRequisition(), Options{})

	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestEmailJSChainFallsBackToMailto(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	groups := config.Load().CategoryGroups
	d := NewDispatcher(
		NewEmailJSStrategy(emailJSTestConfig(server.URL), groups),
		NewMailtoStrategy(groups),
		NewClipboardStrategy(),
	)

	result := d.Dispatch(context.Background(), testRequisition(), Options{})

	assert.Equal(t, OutcomeHandoffOpened, result.Outcome)
	assert.Equal(t, []string{"templated_email", "mailto_handoff"}, result.Attempts)
	assert.Contains(t, result.MailtoURI, "rh@imobiliarialopes.com.br")
}
