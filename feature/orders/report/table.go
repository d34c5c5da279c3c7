package report

import (
	"fmt"
	"strings"

	"order-status/core/reconcile"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	statusStyles = map[string]lipgloss.Style{
		FamilyShipped: cellStyle.Background(lipgloss.Color(ColorShipped)).Foreground(lipgloss.Color("#155724")),
		FamilyPending: cellStyle.Background(lipgloss.Color(ColorPending)).Foreground(lipgloss.Color("#721c24")),
	}
)

// Heading returns the "Pedido → Albarán" line of a report.
func Heading(r *reconcile.Report) string {
	waybills := "-"
	if len(r.Waybills) > 0 {
		waybills = strings.Join(r.Waybills, ", ")
	}
	return fmt.Sprintf("Pedido: %s → Albarán: %s", r.DocNumber, waybills)
}

// RenderTable renders the report for a terminal. Color is applied to the Status cell only.
func RenderTable(r *reconcile.Report, opts Options) string {
	header := Header(opts)
	statusCol := len(header) - 1

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(header...).
		Rows(Records(r.Rows, opts)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == statusCol && row >= 0 && row < len(r.Rows) {
				if style, ok := statusStyles[StatusFamily(r.Rows[row].Status)]; ok {
					return style
				}
			}
			return cellStyle
		})

	var sb strings.Builder
	sb.WriteString(headingStyle.Render(Heading(r)))
	sb.WriteString("\n")
	sb.WriteString(t.String())
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%d lines: %d shipped, %d extra, %d pending\n",
		r.Summary.Lines, r.Summary.Shipped, r.Summary.Extra, r.Summary.Pending)
	return sb.String()
}
