package notification

import (
	"context"
	"net/url"
	"strings"

	"github.com/P3RALT/SysEstoque/pkg/models"
)

// MailtoStrategy builds a pre-filled compose request for the platform's
// default mail handler. It cannot observe whether the draft is ever sent:
// its success means "handoff was attempted", nothing more.
type MailtoStrategy struct {
	categoryGroups map[string]string
}

func NewMailtoStrategy(categoryGroups map[string]string) *MailtoStrategy {
	return &MailtoStrategy{categoryGroups: categoryGroups}
}

func (s *MailtoStrategy) Name() string {
	return "mailto_handoff"
}

func (s *MailtoStrategy) Attempt(_ context.Context, req models.Requisition, _ Options) (*Result, error) {
	recipients, err := DestinationEmails(req.Lines, s.categoryGroups)
	if err != nil {
		return nil, err
	}

	return &Result{
		Outcome:   OutcomeHandoffOpened,
		Message:   "Cliente de email aberto! Preencha e envie manualmente.",
		MailtoURI: MailtoURI(recipients, Subject(req), BodyText(req)),
	}, nil
}

// MailtoURI percent-encodes subject and body; query encoding would turn
// spaces into '+', which some mail clients render literally.
func MailtoURI(recipients []string, subject string, body string) string {
	q := url.Values{}
	q.Set("subject", subject)
	q.Set("body", body)
	query := strings.ReplaceAll(q.Encode(), "+", "%20")

	return "mailto:" + strings.Join(recipients, ",") + "?" + query
}
