package service

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/medilabs/dcreport-api/internal/domain/entity"
)

func exportRecord(id, sourceDate, referrer string) entity.CaseRecord {
	return entity.CaseRecord{
		ID:             id,
		Date:           entity.ParseSourceDate(sourceDate),
		PatientName:    "PATIENT " + id,
		Referrer:       referrer,
		Investigations: "USG KUB",
		TotalFee:       1000,
		FeePaid:        1000,
		DCAmount:       300,
		Remark:         entity.RemarkDefault,
	}
}

func TestExportServiceBuildFiles(t *testing.T) {
	svc := NewExportService(zap.NewNop())

	t.Run("empty input is a user-facing error", func(t *testing.T) {
		_, err := svc.BuildFiles(nil, FormatXLS)
		assert.ErrorIs(t, err, ErrNoExportData)
	})

	t.Run("one file per month, chronological, unknown last", func(t *testing.T) {
		records := []entity.CaseRecord{
			exportRecord("1", "11/3/2025", "DR. A"),
			exportRecord("2", "10/7/2025", "DR. B"),
			exportRecord("3", "13/5/2025", "DR. C"), // month token out of range
			exportRecord("4", "10/9/2025", "DR. B"),
			exportRecord("5", "", "DR. D"),
			exportRecord("6", "1/2/2026", "DR. A"),
		}

		files, err := svc.BuildFiles(records, FormatXLS)
		require.NoError(t, err)
		require.Len(t, files, 4)

		assert.Equal(t, "DC_Records_October_2025.xls", files[0].Name)
		assert.Equal(t, "DC_Records_November_2025.xls", files[1].Name)
		assert.Equal(t, "DC_Records_January_2026.xls", files[2].Name)
		assert.Equal(t, "DC_Records_Unknown_Date.xls", files[3].Name)

		for _, f := range files {
			assert.NotEmpty(t, f.Content, f.Name)
		}
	})

	t.Run("xls body carries grouped rows", func(t *testing.T) {
		records := []entity.CaseRecord{
			exportRecord("1", "10/7/2025", "DR. B"),
			exportRecord("2", "10/9/2025", "DR. A"),
		}

		files, err := svc.BuildFiles(records, FormatXLS)
		require.NoError(t, err)
		require.Len(t, files, 1)

		body := string(files[0].Content)
		assert.Contains(t, body, "DC_Records_October_2025")
		assert.Contains(t, body, "Patient Name")
		assert.Contains(t, body, "PATIENT 1")
		assert.Contains(t, body, "PATIENT 2")
		// referrer groups sorted by name
		assert.Less(t, strings.Index(body, "DR. A"), strings.Index(body, "DR. B"))
	})

	t.Run("xlsx format produces workbook files", func(t *testing.T) {
		files, err := svc.BuildFiles([]entity.CaseRecord{
			exportRecord("1", "10/7/2025", "DR. A"),
		}, FormatXLSX)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "DC_Records_October_2025.xlsx", files[0].Name)
		// xlsx containers are ZIPs
		assert.True(t, bytes.HasPrefix(files[0].Content, []byte("PK")))
	})
}

func TestExportServiceWriteArchive(t *testing.T) {
	svc := NewExportService(zap.NewNop())

	files := []ExportFile{
		{Name: "DC_Records_October_2025.xls", Content: []byte("first")},
		{Name: "DC_Records_Unknown_Date.xls", Content: []byte("second")},
	}

	var buf bytes.Buffer
	require.NoError(t, svc.WriteArchive(&buf, files))

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, reader.File, 2)

	for i, want := range files {
		assert.Equal(t, want.Name, reader.File[i].Name)

		rc, err := reader.File[i].Open()
		require.NoError(t, err)
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, want.Content, got)
	}
}
