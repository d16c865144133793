package notification

import (
	"context"

	"github.com/P3RALT/SysEstoque/pkg/models"
)

// ClipboardStrategy is the last resort: hand the user a plain-text summary
// to copy and send by hand. It only proceeds with the explicit consent
// collected on the send request; declining abandons the dispatch.
type ClipboardStrategy struct{}

func NewClipboardStrategy() *ClipboardStrategy {
	return &ClipboardStrategy{}
}

func (s *ClipboardStrategy) Name() string {
	return "clipboard_fallback"
}

func (s *ClipboardStrategy) Attempt(_ context.Context, req models.Requisition, opts Options) (*Result, error) {
	if !opts.ManualCopyConsent {
		return &Result{
			Outcome: OutcomeAbandoned,
			Message: "Envio cancelado. Nenhum item foi enviado.",
		}, nil
	}

	return &Result{
		Outcome: OutcomeCopiedForManualSend,
		Message: "Dados copiados! Cole no seu email e envie para os responsáveis.",
		Summary: SummaryText(req),
	}, nil
}
