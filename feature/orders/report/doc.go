// Package report formats reconciliation reports for people.
//
// Every format shares one column layout (see Header): SKU, Product Name, Units
// Ordered, Units Shipped, an optional Units Pending and Status. WriteCSV emits
// UTF-8 with a byte order mark, WriteXLSX a single sheet workbook with the
// Status cell highlighted by family, and RenderTable a table for terminals.
// ParseCSV reads an exported CSV back into rows.
package report
