package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildSheet(t *testing.T, rows [][]string) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}
	return f
}

func TestLoadContactsWithHeader(t *testing.T) {
	f := buildSheet(t, [][]string{
		{"Nome", "Telefone"},
		{"Maria Silva", "(11) 99999-1234"},
		{"João Souza", "85 8765-4321"},
		{"Sem Numero", "---"},
		{"", ""},
	})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	contacts, skipped, err := LoadContacts(buf)
	require.NoError(t, err)

	require.Len(t, contacts, 2)
	assert.Equal(t, Contact{Name: "Maria Silva", Phone: "5511999991234"}, contacts[0])
	assert.Equal(t, Contact{Name: "João Souza", Phone: "5585987654321"}, contacts[1])
	require.Len(t, skipped, 1)
	assert.Contains(t, skipped[0], "row 4")
}

func TestLoadContactsWithoutHeader(t *testing.T) {
	f := buildSheet(t, [][]string{
		{"Ana Lima", "11 98888-7777"},
	})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	contacts, skipped, err := LoadContacts(buf)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, contacts, 1)
	assert.Equal(t, "5511988887777", contacts[0].Phone)
}
