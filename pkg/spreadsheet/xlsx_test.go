package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildXLSX(t *testing.T) {
	content, err := BuildXLSX(sampleTable())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	const sheet = "DC_Records_October_2025"
	require.Contains(t, f.GetSheetList(), sheet)

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	assert.Equal(t, []string{"Date", "Patient Name", "DC"}, rows[0])

	// group-header row: merged label, subtotal in the last column
	assert.Equal(t, "DR. A K JHA", rows[1][0])
	assert.Equal(t, "510", rows[1][2])

	assert.Equal(t, "01 10 2025", rows[2][0])
	assert.Equal(t, "SUNITA DEVI 32 YRS", rows[2][1])
	assert.Equal(t, "360", rows[2][2])

	assert.Equal(t, "DR. S PRASAD", rows[4][0])
}

func TestBuildXLSXTruncatesLongWorksheetName(t *testing.T) {
	table := sampleTable()
	table.Worksheet = "DC_Records_A_Very_Long_Worksheet_Name_2025"

	content, err := BuildXLSX(table)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 1)
	assert.Equal(t, table.Worksheet[:31], sheets[0])
}
