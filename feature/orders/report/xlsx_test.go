package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "SO1001", sampleRows, Options{}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"SO1001"}, f.GetSheetList())

	rows, err := f.GetRows("SO1001")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, Header(Options{}), rows[0])
	assert.Equal(t, []string{"B2", "Gadget, large", "5", "3/5", "Pendiente (Falta 2)"}, rows[2])

	fillOf := func(cell string) string {
		styleID, err := f.GetCellStyle("SO1001", cell)
		require.NoError(t, err)
		style, err := f.GetStyle(styleID)
		require.NoError(t, err)
		if len(style.Fill.Color) == 0 {
			return ""
		}
		return strings.ToLower(style.Fill.Color[0])
	}

	assert.Contains(t, fillOf("E2"), "d4edda")
	assert.Contains(t, fillOf("E3"), "f8d7da")
	assert.Contains(t, fillOf("E4"), "d4edda")
	assert.Empty(t, fillOf("A2"), "only the Status cell is highlighted")
	assert.Empty(t, fillOf("D3"))
}

func TestWriteXLSX_PendingColumn(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "SO/1001", sampleRows[1:2], Options{IncludePending: true}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("SO_1001")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Units Pending", rows[0][4])
	assert.Equal(t, "2", rows[1][4])
	assert.Equal(t, "Pendiente (Falta 2)", rows[1][5])
}
