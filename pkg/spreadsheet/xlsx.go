package spreadsheet

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// MIMETypeXLSX is the content type for OOXML workbooks.
const MIMETypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BuildXLSX renders a GroupedTable as a modern .xlsx workbook with the same
// structure as the legacy rendition: header row, then per group a bold
// group-header row with the subtotal in the last column, followed by the
// group's data rows. Canceled rows are struck through.
func BuildXLSX(table GroupedTable) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open, so Close only on error paths

	sheetName := table.Worksheet
	// Excel caps sheet names at 31 characters
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DFF0D8"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	groupStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFFCF0"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create group style: %w", err)
	}

	subtotalStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#FFF2CC"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create subtotal style: %w", err)
	}

	canceledStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Strike: true, Color: "#CC0000"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create canceled style: %w", err)
	}

	rowIdx := 1
	for col, label := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, label); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	lastCol := len(table.Columns)
	for _, group := range table.Groups {
		rowIdx++
		firstCell, _ := excelize.CoordinatesToCellName(1, rowIdx)
		spanEnd, _ := excelize.CoordinatesToCellName(lastCol-1, rowIdx)
		subtotalCell, _ := excelize.CoordinatesToCellName(lastCol, rowIdx)

		if err := f.MergeCell(sheetName, firstCell, spanEnd); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to merge group row: %w", err)
		}
		if err := f.SetCellValue(sheetName, firstCell, group.Label); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set group label: %w", err)
		}
		if err := f.SetCellStyle(sheetName, firstCell, spanEnd, groupStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set group style: %w", err)
		}
		setCellAuto(f, sheetName, subtotalCell, group.Subtotal)
		if err := f.SetCellStyle(sheetName, subtotalCell, subtotalCell, subtotalStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set subtotal style: %w", err)
		}

		for _, row := range group.Rows {
			rowIdx++
			for col, value := range row.Cells {
				cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
				if err != nil {
					f.Close()
					return nil, fmt.Errorf("failed to convert coordinates: %w", err)
				}
				setCellAuto(f, sheetName, cell, value)
				if row.Canceled {
					if err := f.SetCellStyle(sheetName, cell, cell, canceledStyle); err != nil {
						f.Close()
						return nil, fmt.Errorf("failed to set canceled style: %w", err)
					}
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// setCellAuto writes numeric-looking values as numbers so spreadsheet
// formulas work on exported amounts.
func setCellAuto(f *excelize.File, sheet, cell, value string) {
	if n, err := strconv.ParseFloat(value, 64); err == nil && value != "" {
		_ = f.SetCellValue(sheet, cell, n)
		return
	}
	_ = f.SetCellValue(sheet, cell, value)
}
