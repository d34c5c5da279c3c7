package report

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"order-status/core/reconcile"
)

// bom is the UTF-8 byte order mark spreadsheet programs use to detect the encoding.
var bom = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the rows as UTF-8 CSV with a byte order mark.
func WriteCSV(w io.Writer, rows []reconcile.Row, opts Options) error {
	if _, err := w.Write(bom); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header(opts)); err != nil {
		return err
	}
	if err := cw.WriteAll(Records(rows, opts)); err != nil {
		return err
	}
	return cw.Error()
}

// ParseCSV reads a report written by WriteCSV. Rows are rebuilt from SKU,
// Product Name, Units Ordered and Units Shipped, so Status and Units Pending
// are derived again rather than trusted.
func ParseCSV(r io.Reader) ([]reconcile.Row, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && bytes.Equal(head, bom) {
		_, _ = br.Discard(len(bom))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty report")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{ColumnSKU, ColumnProductName, ColumnUnitsOrdered, ColumnUnitsShipped} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	rows := make([]reconcile.Row, 0)
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		cell := func(column string) string {
			if i := index[column]; i < len(record) {
				return record[i]
			}
			return ""
		}

		ordered, err := strconv.Atoi(strings.TrimSpace(cell(ColumnUnitsOrdered)))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid %s: %w", line, ColumnUnitsOrdered, err)
		}
		sent, err := parseShipped(cell(ColumnUnitsShipped))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rows = append(rows, reconcile.NewRow(cell(ColumnSKU), cell(ColumnProductName), ordered, sent))
	}
	return rows, nil
}

// parseShipped reads the sent count of a "sent/ordered" display string.
func parseShipped(s string) (int, error) {
	sent, _, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return 0, fmt.Errorf("invalid %s %q", ColumnUnitsShipped, s)
	}
	n, err := strconv.Atoi(sent)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", ColumnUnitsShipped, s, err)
	}
	return n, nil
}
