package notification

import (
	"context"
	"errors"
	"log"

	"github.com/P3RALT/SysEstoque/pkg/models"
)

// Outcome is the terminal state of a dispatch attempt. Sent means the
// templated e-mail service accepted the payload; the two fallback outcomes
// only mean the user was handed the means to finish delivery manually.
type Outcome string

const (
	OutcomeSent                Outcome = "sent"
	OutcomeHandoffOpened       Outcome = "handoff_opened"
	OutcomeCopiedForManualSend Outcome = "copied_for_manual_send"
	OutcomeAbandoned           Outcome = "abandoned"
)

// Delivered reports whether the outcome should count as a submitted
// requisition (clears the cart, triggers the stock write-back).
func (o Outcome) Delivered() bool {
	return o != OutcomeAbandoned
}

// Options carries the user's choices into the chain. ManualCopyConsent is
// the "proceed or abandon" answer for the clipboard fallback, collected
// with the send action.
type Options struct {
	ManualCopyConsent bool
}

type Result struct {
	Outcome   Outcome  `json:"outcome"`
	Message   string   `json:"message"`
	MailtoURI string   `json:"mailto_uri,omitempty"`
	Summary   string   `json:"summary,omitempty"`
	Attempts  []string `json:"attempts"`
}

// Strategy is one delivery channel. Returning an error means "fall through
// to the next strategy"; a Result is terminal.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, req models.Requisition, opts Options) (*Result, error)
}

// Dispatcher walks an ordered strategy chain, strictly sequential, stopping
// at the first strategy that reaches a terminal state.
type Dispatcher struct {
	strategies []Strategy
}

func NewDispatcher(strategies ...Strategy) *Dispatcher {
	return &Dispatcher{strategies: strategies}
}

func (d *Dispatcher) Dispatch(ctx context.Context, req models.Requisition, opts Options) Result {
	var attempts []string

	for _, strategy := range d.strategies {
		attempts = append(attempts, strategy.Name())

		result, err := strategy.Attempt(ctx, req, opts)
		if err != nil {
			// A category without a destination group would fail every
			// channel the same way; falling through would hand the user a
			// fake success. Stop and name the gap instead.
			if errors.Is(err, ErrUnmappedCategory) {
				log.Printf("Despacho interrompido por falha de configuração: %v", err)
				return Result{
					Outcome:  OutcomeAbandoned,
					Message:  "Erro de configuração: " + err.Error() + ". Nenhum item foi enviado; avise o administrador.",
					Attempts: attempts,
				}
			}

			log.Printf("Envio via %s falhou, tentando próximo canal: %v", strategy.Name(), err)
			continue
		}

		result.Attempts = attempts
		return *result
	}

	return Result{
		Outcome:  OutcomeAbandoned,
		Message:  "Sistema temporariamente indisponível. Anote os itens e tente mais tarde.",
		Attempts: attempts,
	}
}
