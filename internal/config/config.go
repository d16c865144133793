package config

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"github.com/P3RALT/SysEstoque/pkg/models"
)

// Emails autorizados no deployment da Imobiliária Lopes Contagem. Override
// com ALLOWED_EMAILS (lista separada por vírgula).
var defaultAllowedEmails = []string{
	"supervisorcomercial@imobiliarialopes.com.br",
	"suporte@imobiliarialopes.com.br",
	"sinistros@imobiliarialopes.com.br",
	"supervisora@imobiliarialopes.com.br",
	"supervisorsvistoria@imobiliarialopes.com.br",
	"marcelosilva@imobiliarialopes.com.br",
	"rh@imobiliarialopes.com.br",
}

// Destination groups for outbound notifications.
const (
	GroupHR      = "rh@imobiliarialopes.com.br"
	GroupSupport = "suporte@imobiliarialopes.com.br"
)

// Config aggregates everything read from the environment. The category to
// destination-group mapping is data, not behavior: it can be replaced via
// CATEGORY_GROUP_EMAILS without touching code.
type Config struct {
	AllowedEmails   []string
	CategoryGroups  map[string]string
	SheetsWebAppURL string
	EmailJS         EmailJSConfig
}

type EmailJSConfig struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	Timeout    time.Duration
}

func defaultCategoryGroups() map[string]string {
	return map[string]string{
		models.CategoryOfficeMaterials: GroupHR,
		models.CategoryOfficeSupplies:  GroupHR,
		models.CategoryInspectionPlate: GroupHR,
		models.CategoryPeripherals:     GroupSupport,
		models.CategoryTonerExchange:   GroupSupport,
	}
}

func Load() *Config {
	cfg := &Config{
		AllowedEmails:  defaultAllowedEmails,
		CategoryGroups: defaultCategoryGroups(),
		SheetsWebAppURL: getEnv("SHEETS_WEBAPP_URL",
			"https://script.google.com/macros/s/AKfycbw1da_DGkSv9IxpXz6pSCjMoXf9SJkF6D4Tus17qcDksTANQ-WJYvUNfSMSqu-EzY7jkA/exec"),
		EmailJS: EmailJSConfig{
			Endpoint:   getEnv("EMAILJS_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send"),
			ServiceID:  getEnv("EMAILJS_SERVICE_ID", "service_7j9fmai"),
			TemplateID: getEnv("EMAILJS_TEMPLATE_ID", "template_684yy78"),
			PublicKey:  getEnv("EMAILJS_PUBLIC_KEY", "D-KPvFhn-l8LN2H4V"),
			Timeout:    15 * time.Second,
		},
	}

	if raw := os.Getenv("ALLOWED_EMAILS"); raw != "" {
		var emails []string
		for _, e := range strings.Split(raw, ",") {
			if e = strings.TrimSpace(e); e != "" {
				emails = append(emails, e)
			}
		}
		if len(emails) > 0 {
			cfg.AllowedEmails = emails
		}
	}

	if raw := os.Getenv("CATEGORY_GROUP_EMAILS"); raw != "" {
		groups := make(map[string]string)
		if err := json.Unmarshal([]byte(raw), &groups); err != nil {
			log.Printf("Warning: invalid CATEGORY_GROUP_EMAILS, using defaults: %v", err)
		} else {
			cfg.CategoryGroups = groups
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
