package notification

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/P3RALT/SysEstoque/pkg/models"
)

// DateLayout is the pt-BR timestamp shown in every outbound channel.
const DateLayout = "02/01/2006 15:04:05"

// ErrUnmappedCategory marks a category absent from the destination-group
// mapping (possible via the CATEGORY_GROUP_EMAILS override). It is a
// configuration gap, not a delivery failure: the dispatcher stops the
// chain on it instead of falling through.
var ErrUnmappedCategory = errors.New("sem grupo de destino configurado")

// DestinationEmails resolves the deduplicated union of destination group
// addresses for the cart's categories, in first-appearance order. A
// category missing from the mapping fails the resolution instead of being
// silently dropped.
func DestinationEmails(lines []models.RequisitionLine, categoryGroups map[string]string) ([]string, error) {
	var emails []string
	seen := make(map[string]bool)

	for _, line := range lines {
		email, ok := categoryGroups[line.Category]
		if !ok {
			return nil, fmt.Errorf("categoria %q %w", line.Category, ErrUnmappedCategory)
		}
		if seen[email] {
			continue
		}
		seen[email] = true
		emails = append(emails, email)
	}

	if len(emails) == 0 {
		return nil, fmt.Errorf("nenhum e-mail de destino para as categorias selecionadas")
	}

	return emails, nil
}

// TemplateParams builds the flat, all-string parameter map the e-mail
// template expects.
func TemplateParams(req models.Requisition, recipients []string) map[string]string {
	items := make([]string, 0, len(req.Lines))
	for _, line := range req.Lines {
		items = append(items, fmt.Sprintf("• %s - %d unid. (%s)", line.Name, line.Quantity, line.Category))
	}

	return map[string]string{
		"to_email":         strings.Join(recipients, ", "),
		"user_name":        req.User.Name,
		"user_email":       req.User.Email,
		"requisition_date": req.CreatedAt.Format(DateLayout),
		"total_items":      strconv.Itoa(len(req.Lines)),
		"items_list":       strings.Join(items, "\n"),
	}
}

func Subject(req models.Requisition) string {
	return "Solicitação de Materiais - " + req.User.Name
}

// BodyText mirrors the e-mail template for the mailto handoff.
func BodyText(req models.Requisition) string {
	var b strings.Builder

	b.WriteString("Solicitação de Materiais\n\n")
	fmt.Fprintf(&b, "Usuário: %s\n", req.User.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.User.Email)
	fmt.Fprintf(&b, "Data: %s\n\n", req.CreatedAt.Format(DateLayout))
	fmt.Fprintf(&b, "ITENS SOLICITADOS (%d itens):\n", len(req.Lines))
	for _, line := range req.Lines {
		fmt.Fprintf(&b, "• %s - %d unid. (%s)\n", line.Name, line.Quantity, line.Category)
	}
	fmt.Fprintf(&b, "\nTotal de itens: %d", len(req.Lines))

	return b.String()
}

// SummaryText is the plain-text version handed to the clipboard fallback.
func SummaryText(req models.Requisition) string {
	var b strings.Builder

	b.WriteString("SOLICITAÇÃO DE MATERIAIS\n\n")
	fmt.Fprintf(&b, "Usuário: %s (%s)\n", req.User.Name, req.User.Email)
	fmt.Fprintf(&b, "Data: %s\n\n", req.CreatedAt.Format(DateLayout))
	b.WriteString("Itens:\n")
	for _, line := range req.Lines {
		fmt.Fprintf(&b, "%s - %d unid (%s)\n", line.Name, line.Quantity, line.Category)
	}
	fmt.Fprintf(&b, "\nTotal: %d itens", len(req.Lines))

	return b.String()
}
