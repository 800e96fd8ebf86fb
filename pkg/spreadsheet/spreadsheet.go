// Package spreadsheet renders referrer-grouped report tables as
// spreadsheet-application documents: a legacy .xls HTML document that Excel
// opens natively, and a modern .xlsx workbook.
package spreadsheet

// GroupedTable describes one worksheet: a header row of column labels
// followed by labelled row groups, each carrying a subtotal rendered in the
// last column of its group-header row.
type GroupedTable struct {
	Worksheet string
	Columns   []string
	// Classes carries a per-column cell class for the legacy HTML rendition
	// ("", "text-right" or "text-center"). Optional.
	Classes []string
	Groups  []RowGroup
}

// RowGroup is one labelled group of data rows
type RowGroup struct {
	Label    string
	Subtotal string
	Rows     []DataRow
}

// DataRow is one data row. Canceled rows are rendered struck through in the
// .xlsx rendition; the legacy rendition prints them like any other row.
type DataRow struct {
	Cells    []string
	Canceled bool
}
