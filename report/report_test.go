package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/ivo0509/Glitchy-Game-Emporium/store"
)

func TestExportCatalog(t *testing.T) {
	s, err := store.Open(store.DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, s.Seed())

	var buf bytes.Buffer
	require.NoError(t, ExportCatalog(s.DB(), &buf))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	sheet, ok := file.Sheet["Catalog"]
	require.True(t, ok)

	require.Len(t, sheet.Rows, 4) // header + three seeded games
	assert.Equal(t, "ID", sheet.Rows[0].Cells[0].String())
	names := map[string]bool{}
	for _, row := range sheet.Rows[1:] {
		names[row.Cells[1].String()] = true
	}
	assert.True(t, names["Cyberpunk 2078"])
	assert.True(t, names["Star Citizen"])
}

func TestExportSalesHistory(t *testing.T) {
	s, err := store.Open(store.DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, s.Seed())

	var buf bytes.Buffer
	require.NoError(t, ExportSalesHistory(s.DB(), "seller1", &buf))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	sheet, ok := file.Sheet["Sales"]
	require.True(t, ok)

	require.Len(t, sheet.Rows, 4) // header + two points + total
	totalRow := sheet.Rows[3]
	assert.Equal(t, "Total", totalRow.Cells[0].String())
	total, err := totalRow.Cells[1].Float()
	require.NoError(t, err)
	assert.InDelta(t, 210.49, total, 1e-6)
}

func TestExportSalesHistoryEmptySeller(t *testing.T) {
	s, err := store.Open(store.DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, s.Seed())

	var buf bytes.Buffer
	require.NoError(t, ExportSalesHistory(s.DB(), "no-such-seller", &buf))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	sheet := file.Sheet["Sales"]
	require.NotNil(t, sheet)
	require.Len(t, sheet.Rows, 2) // header + zero total
	total, err := sheet.Rows[1].Cells[1].Float()
	require.NoError(t, err)
	assert.InDelta(t, 0, total, 1e-9)
}
