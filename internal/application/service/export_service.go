package service

import (
	"archive/zip"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/medilabs/dcreport-api/internal/domain/entity"
	"github.com/medilabs/dcreport-api/pkg/apperror"
	"github.com/medilabs/dcreport-api/pkg/spreadsheet"
)

// ErrNoExportData is reported when the filtered set has nothing to export.
// It is a notice to the user, not a server fault.
var ErrNoExportData = apperror.NewBadRequestError("No data to export")

// ExportFormat selects the spreadsheet rendition
type ExportFormat string

const (
	FormatXLS  ExportFormat = "xls"
	FormatXLSX ExportFormat = "xlsx"
)

// ArchiveName is the filename of the ZIP bundling the monthly files
const ArchiveName = "DC_Records_Export.zip"

// unknownBucket names the catch-all file for unclassifiable dates
const unknownBucket = "DC_Records_Unknown_Date"

var exportColumns = []string{
	"Date", "Patient Name", "Test Name", "Remark",
	"Gross Amount", "Discount", "Payment Received", "Balance", "DC",
}

var exportClasses = []string{
	"text-center", "", "", "",
	"text-right", "text-right", "text-right", "text-right", "text-right",
}

// ExportFile is one generated monthly report document
type ExportFile struct {
	Name    string
	Content []byte
}

// ExportService generates the monthly referrer-grouped report documents
type ExportService struct {
	logger *zap.Logger
}

// NewExportService creates a new export service
func NewExportService(logger *zap.Logger) *ExportService {
	return &ExportService{logger: logger}
}

// monthBucket keys records by calendar month; unknown collects records whose
// date never parsed or whose month token is out of range.
type monthBucket struct {
	month   time.Month
	year    int
	unknown bool
}

// BuildFiles renders one document per distinct (month, year) present in the
// input, plus one "Unknown Date" document when any record cannot be
// classified. Records inside each document are grouped by referrer, sorted
// by referrer name, keeping insertion order within a group.
func (s *ExportService) BuildFiles(records []entity.CaseRecord, format ExportFormat) ([]ExportFile, error) {
	if len(records) == 0 {
		return nil, ErrNoExportData
	}

	buckets := make(map[monthBucket][]entity.CaseRecord)
	for _, rec := range records {
		key := monthBucket{unknown: true}
		if month, year, ok := rec.Date.MonthKey(); ok {
			key = monthBucket{month: month, year: year}
		}
		buckets[key] = append(buckets[key], rec)
	}

	keys := make([]monthBucket, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	// chronological, catch-all last
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].unknown != keys[j].unknown {
			return keys[j].unknown
		}
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	files := make([]ExportFile, 0, len(keys))
	for _, key := range keys {
		name := unknownBucket
		if !key.unknown {
			name = fmt.Sprintf("DC_Records_%s_%d", key.month.String(), key.year)
		}

		table := buildTable(name, buckets[key])
		var content []byte
		var err error
		switch format {
		case FormatXLSX:
			content, err = spreadsheet.BuildXLSX(table)
			if err != nil {
				return nil, err
			}
			name += ".xlsx"
		default:
			content = spreadsheet.BuildXLS(table)
			name += ".xls"
		}

		files = append(files, ExportFile{Name: name, Content: content})
	}

	s.logger.Info("export generated",
		zap.Int("records", len(records)),
		zap.Int("files", len(files)),
		zap.String("format", string(format)))
	return files, nil
}

// WriteArchive bundles the generated files into a single ZIP stream
func (s *ExportService) WriteArchive(w io.Writer, files []ExportFile) error {
	zw := zip.NewWriter(w)
	for _, file := range files {
		entry, err := zw.Create(file.Name)
		if err != nil {
			return err
		}
		if _, err := entry.Write(file.Content); err != nil {
			return err
		}
	}
	return zw.Close()
}

// buildTable shapes one month's records into the grouped spreadsheet layout
func buildTable(worksheet string, records []entity.CaseRecord) spreadsheet.GroupedTable {
	groups := GroupCasesByReferrer(records)

	table := spreadsheet.GroupedTable{
		Worksheet: worksheet,
		Columns:   exportColumns,
		Classes:   exportClasses,
		Groups:    make([]spreadsheet.RowGroup, 0, len(groups)),
	}
	for _, group := range groups {
		rows := make([]spreadsheet.DataRow, 0, len(group.Cases))
		for _, c := range group.Cases {
			rows = append(rows, spreadsheet.DataRow{
				Cells: []string{
					c.Date.Display(),
					c.PatientName,
					c.Investigations,
					c.Remark,
					formatAmount(c.TotalFee),
					formatAmount(c.Discount),
					formatAmount(c.FeePaid),
					formatAmount(c.FeeDue),
					strconv.FormatInt(c.DCAmount, 10),
				},
				Canceled: c.Canceled,
			})
		}
		table.Groups = append(table.Groups, spreadsheet.RowGroup{
			Label:    group.Referrer,
			Subtotal: strconv.FormatInt(group.DCTotal, 10),
			Rows:     rows,
		})
	}
	return table
}

// formatAmount prints a monetary cell value without trailing zeros
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
