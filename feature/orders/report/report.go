package report

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"order-status/core/reconcile"
)

// Column headers of the exported report.
const (
	ColumnSKU          = "SKU"
	ColumnProductName  = "Product Name"
	ColumnUnitsOrdered = "Units Ordered"
	ColumnUnitsShipped = "Units Shipped"
	ColumnUnitsPending = "Units Pending"
	ColumnStatus       = "Status"
)

// Status families used for highlighting.
const (
	FamilyShipped = "shipped"
	FamilyPending = "pending"
)

// Highlight colors of the Status cell.
const (
	ColorShipped = "#d4edda"
	ColorPending = "#f8d7da"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Content types of the export formats.
const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ErrUnsupportedFormat is returned for an unknown export format.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat parses an export format name, case-insensitively.
// An empty name selects CSV.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return ContentTypeXLSX
	}
	return ContentTypeCSV
}

// Options controls the report layout.
type Options struct {
	// IncludePending adds a Units Pending column before Status.
	IncludePending bool
}

// Header returns the column headers in display order.
func Header(opts Options) []string {
	header := []string{ColumnSKU, ColumnProductName, ColumnUnitsOrdered, ColumnUnitsShipped}
	if opts.IncludePending {
		header = append(header, ColumnUnitsPending)
	}
	return append(header, ColumnStatus)
}

// Record returns the cells of one row, aligned with Header.
func Record(row reconcile.Row, opts Options) []string {
	record := []string{row.SKU, row.ProductName, strconv.Itoa(row.UnitsOrdered), row.UnitsShipped}
	if opts.IncludePending {
		record = append(record, strconv.Itoa(row.UnitsPending))
	}
	return append(record, row.Status)
}

// Records returns the cells of every row.
func Records(rows []reconcile.Row, opts Options) [][]string {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, Record(row, opts))
	}
	return records
}

// StatusFamily returns FamilyShipped for "Enviado" statuses, FamilyPending for
// "Pendiente" statuses and "" otherwise.
func StatusFamily(status string) string {
	switch {
	case strings.Contains(status, reconcile.StatusShipped):
		return FamilyShipped
	case strings.Contains(status, reconcile.StatusPending):
		return FamilyPending
	default:
		return ""
	}
}

// FamilyColor returns the highlight color of a status family.
func FamilyColor(family string) string {
	switch family {
	case FamilyShipped:
		return ColorShipped
	case FamilyPending:
		return ColorPending
	default:
		return ""
	}
}

// AnnotatedRow is a report row with its status family.
type AnnotatedRow struct {
	reconcile.Row
	Family string `json:"status_family"`
}

// Annotate adds the status family to every row.
func Annotate(rows []reconcile.Row) []AnnotatedRow {
	annotated := make([]AnnotatedRow, 0, len(rows))
	for _, row := range rows {
		annotated = append(annotated, AnnotatedRow{Row: row, Family: StatusFamily(row.Status)})
	}
	return annotated
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName returns the export file name of an order.
func FileName(docNumber string, format Format) string {
	base := strings.Trim(unsafeName.ReplaceAllString(strings.TrimSpace(docNumber), "_"), "_.")
	if base == "" {
		base = "order"
	}
	return fmt.Sprintf("%s_status.%s", base, format)
}

// SheetName returns a valid worksheet name for an order: at most 31 characters
// and none of : \ / ? * [ ].
func SheetName(docNumber string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.TrimSpace(docNumber))
	name = strings.Trim(name, "'")

	if runes := []rune(name); len(runes) > 31 {
		name = string(runes[:31])
	}
	if name == "" {
		return "Order"
	}
	return name
}
