package spreadsheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() GroupedTable {
	return GroupedTable{
		Worksheet: "DC_Records_October_2025",
		Columns:   []string{"Date", "Patient Name", "DC"},
		Classes:   []string{"text-center", "", "text-right"},
		Groups: []RowGroup{
			{
				Label:    "DR. A K JHA",
				Subtotal: "510",
				Rows: []DataRow{
					{Cells: []string{"01 10 2025", "SUNITA DEVI 32 YRS", "360"}},
					{Cells: []string{"02 10 2025", "RAMESH KUMAR 45 YRS", "150"}, Canceled: true},
				},
			},
			{
				Label:    "DR. S PRASAD",
				Subtotal: "90",
				Rows: []DataRow{
					{Cells: []string{"03 10 2025", "GEETA DEVI 50 YRS", "90"}},
				},
			},
		},
	}
}

func TestBuildXLS(t *testing.T) {
	body := string(BuildXLS(sampleTable()))

	t.Run("workbook metadata", func(t *testing.T) {
		assert.Contains(t, body, "<x:Name>DC_Records_October_2025</x:Name>")
		assert.Contains(t, body, "x:ExcelWorkbook")
		assert.Contains(t, body, "<!--[if gte mso 9]>")
	})

	t.Run("header row", func(t *testing.T) {
		assert.Contains(t, body, `<th class="header">Date</th>`)
		assert.Contains(t, body, `<th class="header">Patient Name</th>`)
		assert.Contains(t, body, `<th class="header">DC</th>`)
	})

	t.Run("group rows span all but the subtotal column", func(t *testing.T) {
		assert.Contains(t, body, `<td colspan="2" class="group-header"><b>DR. A K JHA</b></td><td class="dc-cell">510</td>`)
		assert.Contains(t, body, `<td class="dc-cell">90</td>`)
	})

	t.Run("data cells carry their column class", func(t *testing.T) {
		assert.Contains(t, body, `<td class="text-center">01 10 2025</td>`)
		assert.Contains(t, body, "<td>SUNITA DEVI 32 YRS</td>")
		assert.Contains(t, body, `<td class="text-right">360</td>`)
	})

	t.Run("groups render in input order", func(t *testing.T) {
		require.True(t, strings.Index(body, "DR. A K JHA") < strings.Index(body, "DR. S PRASAD"))
		require.True(t, strings.Index(body, "SUNITA DEVI") < strings.Index(body, "RAMESH KUMAR"))
	})
}

func TestBuildXLSEscapesHTML(t *testing.T) {
	table := GroupedTable{
		Worksheet: "A<B",
		Columns:   []string{"Name & Age"},
		Groups: []RowGroup{
			{Label: "DR. <SCRIPT>", Subtotal: "0", Rows: []DataRow{
				{Cells: []string{`"quoted"`}},
			}},
		},
	}

	body := string(BuildXLS(table))
	assert.Contains(t, body, "A&lt;B")
	assert.Contains(t, body, "Name &amp; Age")
	assert.Contains(t, body, "DR. &lt;SCRIPT&gt;")
	assert.NotContains(t, body, "<SCRIPT>")
}

func TestDocumentChaining(t *testing.T) {
	body := string(NewDocument("Sheet").
		HeaderRow([]string{"A", "B"}).
		GroupRow("G", "10", 1).
		Row([]string{"x", "y"}, nil).
		Bytes())

	assert.True(t, strings.HasPrefix(body, "<html"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(body), "</html>"))
	assert.Contains(t, body, "<td>x</td><td>y</td>")
}
