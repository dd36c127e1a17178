package excel

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"stylebook/internal/errors"
	"stylebook/internal/testkit"
	"stylebook/models"
	"stylebook/ports"
)

var _ ports.ResultExporter = (*Exporter)(nil)

func TestNewExporterRejectsInvalidConfig(t *testing.T) {
	_, err := NewExporter(ExportConfig{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	partial := ExportConfig{Headers: map[int]string{1: "スタイリスト"}}
	_, err = NewExporter(partial)
	require.Error(t, err)

	shifted := DefaultExportConfig()
	delete(shifted.Headers, ColImage)
	shifted.Headers[10] = "画像"
	_, err = NewExporter(shifted)
	require.Error(t, err)
}

func TestExportToFileWritesHeadersAndRows(t *testing.T) {
	exporter, err := NewExporter(DefaultExportConfig())
	require.NoError(t, err)

	results := []ports.ResultRecord{
		&models.ProcessResult{
			Stylist: models.Stylist{Name: "田中"},
			Coupon:  models.Coupon{Name: "カット+トリートメント"},
			Template: models.StyleTemplate{
				Comment: "大人可愛い",
				Title:   "ゆるふわボブ",
				Menu:    "カット",
				Hashtag: "#ボブ",
			},
			Attributes: models.AttributeAnalysis{Sex: "レディース", Length: "ミディアム"},
			Image:      "img_001.jpg",
		},
		&models.ProcessResult{
			Stylist: models.Stylist{Name: "佐藤"},
			Coupon:  models.Coupon{Name: "メンズカット"},
			Template: models.StyleTemplate{
				Comment: "爽やかショート",
				Title:   "アップバング",
				Menu:    "カット+パーマ",
				Hashtag: "#メンズ",
			},
			Attributes: models.AttributeAnalysis{Sex: "メンズ", Length: "ショート"},
			Image:      "img_002.jpg",
		},
	}

	outputPath := filepath.Join(t.TempDir(), "results.xlsx")
	path, err := exporter.ExportToFile(results, outputPath)
	require.NoError(t, err)
	assert.Equal(t, outputPath, path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, SheetTitle, f.GetSheetName(0))

	rows, err := f.GetRows(SheetTitle)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"スタイリスト", "クーポン", "コメント", "スタイル", "性別", "長さ", "メニュー", "ハッシュタグ", "画像",
	}, rows[0])
	assert.Equal(t, []string{
		"田中", "カット+トリートメント", "大人可愛い", "ゆるふわボブ", "レディース", "ミディアム", "カット", "#ボブ", "img_001.jpg",
	}, rows[1])
	assert.Equal(t, []string{
		"佐藤", "メンズカット", "爽やかショート", "アップバング", "メンズ", "ショート", "カット+パーマ", "#メンズ", "img_002.jpg",
	}, rows[2])
}

func TestExportToFileCreatesParentDirectory(t *testing.T) {
	exporter, err := NewExporter(DefaultExportConfig())
	require.NoError(t, err)

	outputPath := filepath.Join(t.TempDir(), "nested", "deeper", "results.xlsx")
	_, err = exporter.ExportToFile(testkit.SampleResults(1), outputPath)
	require.NoError(t, err)

	_, err = os.Stat(outputPath)
	assert.NoError(t, err)
}

func TestExportToFileBacksUpExistingFile(t *testing.T) {
	exporter, err := NewExporter(DefaultExportConfig())
	require.NoError(t, err)

	dir := t.TempDir()
	outputPath := filepath.Join(dir, "results.xlsx")

	original := []byte("pre-export contents")
	require.NoError(t, os.WriteFile(outputPath, original, 0o644))

	_, err = exporter.ExportToFile(testkit.SampleResults(1), outputPath)
	require.NoError(t, err)

	backups, err := filepath.Glob(filepath.Join(dir, "results_*_backup.xlsx"))
	require.NoError(t, err)
	require.Len(t, backups, 1)

	backupData, err := os.ReadFile(backups[0])
	require.NoError(t, err)
	assert.Equal(t, original, backupData)

	// The output itself was overwritten with a real workbook
	f, err := excelize.OpenFile(outputPath)
	require.NoError(t, err)
	f.Close()
}

func TestExportToBytesRoundTrip(t *testing.T) {
	exporter, err := NewExporter(DefaultExportConfig())
	require.NoError(t, err)

	results := testkit.SampleResults(2)
	data, err := exporter.ExportToBytes(results)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetTitle)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "スタイリスト", rows[0][0])
	for i, result := range results {
		row := rows[i+1]
		assert.Equal(t, result.StylistName(), row[0])
		assert.Equal(t, result.CouponName(), row[1])
		assert.Equal(t, result.Comment(), row[2])
		assert.Equal(t, result.Title(), row[3])
		assert.Equal(t, result.Sex(), row[4])
		assert.Equal(t, result.Length(), row[5])
		assert.Equal(t, result.Menu(), row[6])
		assert.Equal(t, result.Hashtag(), row[7])
		assert.Equal(t, result.ImageName(), row[8])
	}
}

func TestExportToBytesLeavesNoTransientArtifact(t *testing.T) {
	before, err := filepath.Glob(filepath.Join(os.TempDir(), "stylebook_*.xlsx"))
	require.NoError(t, err)

	exporter, err := NewExporter(DefaultExportConfig())
	require.NoError(t, err)

	_, err = exporter.ExportToBytes(testkit.SampleResults(3))
	require.NoError(t, err)

	after, err := filepath.Glob(filepath.Join(os.TempDir(), "stylebook_*.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestExportIsDeterministicAcrossCalls(t *testing.T) {
	exporter, err := NewExporter(DefaultExportConfig())
	require.NoError(t, err)

	results := testkit.SampleResults(2)

	first, err := exporter.ExportToBytes(results)
	require.NoError(t, err)
	second, err := exporter.ExportToBytes(results)
	require.NoError(t, err)

	rowsOf := func(data []byte) ([][]string, map[string]float64) {
		f, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows(SheetTitle)
		require.NoError(t, err)
		widths := make(map[string]float64)
		for _, col := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"} {
			w, err := f.GetColWidth(SheetTitle, col)
			require.NoError(t, err)
			widths[col] = w
		}
		return rows, widths
	}

	firstRows, firstWidths := rowsOf(first)
	secondRows, secondWidths := rowsOf(second)
	assert.Equal(t, firstRows, secondRows)
	assert.Equal(t, firstWidths, secondWidths)
}

func TestColumnWidthsStayWithinBounds(t *testing.T) {
	exporter, err := NewExporter(DefaultExportConfig())
	require.NoError(t, err)

	long := &models.ProcessResult{
		Stylist: models.Stylist{Name: "とてもとてもとてもとてもとてもとてもとてもとてもとてもとてもとても長い名前のスタイリストさんです"},
		Coupon:  models.Coupon{Name: "短い"},
	}

	data, err := exporter.ExportToBytes([]ports.ResultRecord{long})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	for _, col := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"} {
		width, err := f.GetColWidth(SheetTitle, col)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, width, minColumnWidth, "column %s", col)
		assert.LessOrEqual(t, width, maxColumnWidth, "column %s", col)
	}

	// The very long name hits the cap; short columns sit at the floor
	widthA, err := f.GetColWidth(SheetTitle, "A")
	require.NoError(t, err)
	assert.Equal(t, maxColumnWidth, widthA)

	widthI, err := f.GetColWidth(SheetTitle, "I")
	require.NoError(t, err)
	assert.Equal(t, minColumnWidth, widthI)
}

func TestColumnWidthClampAndMonotonicity(t *testing.T) {
	assert.Equal(t, minColumnWidth, columnWidth(0))
	assert.Equal(t, minColumnWidth, columnWidth(7))
	assert.Equal(t, maxColumnWidth, columnWidth(100))

	// Strictly increasing between the clamp bounds
	previous := columnWidth(8)
	for length := 9; length <= 43; length++ {
		current := columnWidth(length)
		assert.Greater(t, current, previous, "length %d", length)
		previous = current
	}
}

func TestHeaderAndDataStyles(t *testing.T) {
	exporter, err := NewExporter(DefaultExportConfig())
	require.NoError(t, err)

	data, err := exporter.ExportToBytes(testkit.SampleResults(1))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	headerStyleID, err := f.GetCellStyle(SheetTitle, "A1")
	require.NoError(t, err)
	headerStyle, err := f.GetStyle(headerStyleID)
	require.NoError(t, err)

	require.NotNil(t, headerStyle.Font)
	assert.True(t, headerStyle.Font.Bold)
	assert.Equal(t, 12.0, headerStyle.Font.Size)
	require.NotNil(t, headerStyle.Alignment)
	assert.Equal(t, "center", headerStyle.Alignment.Horizontal)
	assert.Equal(t, "center", headerStyle.Alignment.Vertical)
	assert.True(t, headerStyle.Alignment.WrapText)

	dataStyleID, err := f.GetCellStyle(SheetTitle, "A2")
	require.NoError(t, err)
	dataStyle, err := f.GetStyle(dataStyleID)
	require.NoError(t, err)

	require.NotNil(t, dataStyle.Alignment)
	assert.Equal(t, "center", dataStyle.Alignment.Vertical)
	assert.True(t, dataStyle.Alignment.WrapText)

	// The hashtag column carries the same visible style as the row
	hashtagStyleID, err := f.GetCellStyle(SheetTitle, "H2")
	require.NoError(t, err)
	assert.Equal(t, dataStyleID, hashtagStyleID)
}

func TestExportEmptyResultList(t *testing.T) {
	exporter, err := NewExporter(DefaultExportConfig())
	require.NoError(t, err)

	data, err := exporter.ExportToBytes(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetTitle)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "スタイリスト", rows[0][0])
}

func TestExportErrorCarriesTargetPath(t *testing.T) {
	exporter, err := NewExporter(DefaultExportConfig())
	require.NoError(t, err)

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// Parent "directory" is a regular file, so MkdirAll fails
	outputPath := filepath.Join(blocker, "results.xlsx")
	_, err = exporter.ExportToFile(testkit.SampleResults(1), outputPath)
	require.Error(t, err)
	assert.Equal(t, errors.CodeExportError, errors.GetCode(err))
	assert.Contains(t, err.Error(), outputPath)
}
