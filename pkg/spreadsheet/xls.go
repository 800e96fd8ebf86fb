package spreadsheet

import (
	"fmt"
	"html"
	"strings"
)

// MIMETypeXLS is the content type Excel expects for legacy HTML workbooks.
const MIMETypeXLS = "application/vnd.ms-excel"

// Document builds a legacy .xls HTML workbook: an HTML table wrapped in
// Excel worksheet metadata comments. Methods chain.
type Document struct {
	buf strings.Builder
}

// NewDocument opens a workbook whose single worksheet carries the given name.
func NewDocument(worksheet string) *Document {
	d := &Document{}
	d.buf.WriteString(`<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:x="urn:schemas-microsoft-com:office:excel" xmlns="http://www.w3.org/TR/REC-html40">
<head>
<!--[if gte mso 9]>
<xml>
  <x:ExcelWorkbook>
    <x:ExcelWorksheets>
      <x:ExcelWorksheet>
        <x:Name>` + html.EscapeString(worksheet) + `</x:Name>
        <x:WorksheetOptions>
          <x:DisplayGridlines/>
        </x:WorksheetOptions>
      </x:ExcelWorksheet>
    </x:ExcelWorksheets>
  </x:ExcelWorkbook>
</xml>
<![endif]-->
<style>
  body { font-family: Arial, sans-serif; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border: 1px solid #000000; padding: 5px; }
  .header { font-weight: bold; background-color: #dff0d8; text-align: center; }
  .group-header { font-weight: bold; background-color: #fffcf0; text-align: left; }
  .dc-cell { background-color: #fff2cc; font-weight: bold; text-align: right; }
  .text-right { text-align: right; }
  .text-center { text-align: center; }
</style>
</head>
<body>
<table>
`)
	return d
}

// HeaderRow writes the column label row.
func (d *Document) HeaderRow(columns []string) *Document {
	d.buf.WriteString("<thead><tr>")
	for _, col := range columns {
		d.buf.WriteString(`<th class="header">` + html.EscapeString(col) + "</th>")
	}
	d.buf.WriteString("</tr></thead>\n<tbody>\n")
	return d
}

// GroupRow writes a bold group-header row spanning span columns, with the
// group subtotal in the final cell.
func (d *Document) GroupRow(label, subtotal string, span int) *Document {
	fmt.Fprintf(&d.buf, `<tr><td colspan="%d" class="group-header"><b>%s</b></td><td class="dc-cell">%s</td></tr>`,
		span, html.EscapeString(label), html.EscapeString(subtotal))
	d.buf.WriteString("\n")
	return d
}

// Row writes one data row. classes supplies the per-column cell class and may
// be shorter than cells.
func (d *Document) Row(cells, classes []string) *Document {
	d.buf.WriteString("<tr>")
	for i, cell := range cells {
		class := ""
		if i < len(classes) {
			class = classes[i]
		}
		if class != "" {
			d.buf.WriteString(`<td class="` + class + `">`)
		} else {
			d.buf.WriteString("<td>")
		}
		d.buf.WriteString(html.EscapeString(cell))
		d.buf.WriteString("</td>")
	}
	d.buf.WriteString("</tr>\n")
	return d
}

// Bytes closes the document and returns its content.
func (d *Document) Bytes() []byte {
	d.buf.WriteString("</tbody>\n</table>\n</body>\n</html>\n")
	return []byte(d.buf.String())
}

// BuildXLS renders a GroupedTable as a legacy .xls HTML workbook.
func BuildXLS(table GroupedTable) []byte {
	doc := NewDocument(table.Worksheet)
	doc.HeaderRow(table.Columns)
	for _, group := range table.Groups {
		doc.GroupRow(group.Label, group.Subtotal, len(table.Columns)-1)
		for _, row := range group.Rows {
			doc.Row(row.Cells, table.Classes)
		}
	}
	return doc.Bytes()
}
