package report

import (
	"fmt"
	"io"
	"strings"

	"order-status/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes the rows as a single sheet workbook named after the order.
// Only the Status cells are filled, green for shipped and red for pending.
func WriteXLSX(w io.Writer, docNumber string, rows []reconcile.Row, opts Options) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(docNumber)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	familyStyles := make(map[string]int, 2)
	for _, family := range []string{FamilyShipped, FamilyPending} {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{
				Type:    "pattern",
				Pattern: 1,
				Color:   []string{strings.TrimPrefix(FamilyColor(family), "#")},
			},
		})
		if err != nil {
			return err
		}
		familyStyles[family] = id
	}

	header := Header(opts)
	statusCol := len(header)

	if err := setRow(f, sheet, 1, toCells(header)); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, first, last, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		rowNo := i + 2
		cells := []any{row.SKU, row.ProductName, row.UnitsOrdered, row.UnitsShipped}
		if opts.IncludePending {
			cells = append(cells, row.UnitsPending)
		}
		cells = append(cells, row.Status)

		if err := setRow(f, sheet, rowNo, cells); err != nil {
			return err
		}

		if style, ok := familyStyles[StatusFamily(row.Status)]; ok {
			cell, _ := excelize.CoordinatesToCellName(statusCol, rowNo)
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return err
			}
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetColWidth(sheet, "A", lastCol, 20); err != nil {
		return err
	}

	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, rowNo int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
