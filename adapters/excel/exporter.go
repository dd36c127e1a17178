package excel

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"stylebook/internal/errors"
	"stylebook/ports"
)

// Column width bounds and the padding factor applied to the longest cell value
const (
	minColumnWidth    = 10.0
	maxColumnWidth    = 50.0
	columnWidthFactor = 1.1
	columnWidthPad    = 2
)

// Header row styling
const headerFillColor = "4472C4"

// Exporter renders analysis results into a styled single-sheet workbook.
// It is stateless apart from its header configuration; each export call
// builds a fresh workbook.
type Exporter struct {
	config ExportConfig
}

// NewExporter creates an exporter with the given header configuration
func NewExporter(config ExportConfig) (*Exporter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Exporter{config: config}, nil
}

// ExportToFile writes the results to outputPath as a styled workbook and
// returns the path. The parent directory is created if absent; an existing
// file at outputPath is copied to a timestamped backup before being
// overwritten.
func (e *Exporter) ExportToFile(results []ports.ResultRecord, outputPath string) (string, error) {
	log.Printf("[Exporter] Starting export: results=%d, output=%s", len(results), outputPath)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return "", errors.ExportError("failed to create output directory", outputPath, err)
	}

	if _, err := os.Stat(outputPath); err == nil {
		backupPath, err := e.createBackup(outputPath)
		if err != nil {
			return "", errors.ExportError("failed to back up existing file", outputPath, err)
		}
		log.Printf("[Exporter] Backed up existing file: %s", backupPath)
	}

	f, err := e.buildWorkbook(results)
	if err != nil {
		return "", errors.ExportError("failed to build workbook", outputPath, err)
	}
	defer f.Close()

	if err := f.SaveAs(outputPath); err != nil {
		return "", errors.ExportError("failed to save workbook", outputPath, err)
	}

	log.Printf("[Exporter] Saved workbook: %s", outputPath)
	return outputPath, nil
}

// ExportToBytes builds the same workbook and returns its serialized bytes.
// The workbook is staged through a per-call-unique transient file which is
// removed on both success and failure paths.
func (e *Exporter) ExportToBytes(results []ports.ResultRecord) ([]byte, error) {
	log.Printf("[Exporter] Starting binary export: results=%d", len(results))

	f, err := e.buildWorkbook(results)
	if err != nil {
		return nil, errors.ExportError("failed to build workbook", "", err)
	}
	defer f.Close()

	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("stylebook_%s.xlsx", uuid.NewString()))
	defer os.Remove(tmpPath)

	if err := f.SaveAs(tmpPath); err != nil {
		return nil, errors.ExportError("failed to save transient workbook", "", err)
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, errors.ExportError("failed to read transient workbook", "", err)
	}

	log.Printf("[Exporter] Generated workbook binary: %d bytes", len(data))
	return data, nil
}

// buildWorkbook runs the full construction pipeline: headers, data rows,
// column widths, styles
func (e *Exporter) buildWorkbook(results []ports.ResultRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetTitle); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := e.setHeaders(f); err != nil {
		f.Close()
		return nil, err
	}
	if err := e.addData(f, results); err != nil {
		f.Close()
		return nil, err
	}
	if err := e.adjustColumnWidths(f); err != nil {
		f.Close()
		return nil, err
	}
	if err := e.applyStyles(f, len(results)); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// setHeaders writes the configured labels into row 1
func (e *Exporter) setHeaders(f *excelize.File) error {
	for col, label := range e.config.Headers {
		cell, err := excelize.CoordinatesToCellName(col, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell for column %d: %w", col, err)
		}
		if err := f.SetCellValue(SheetTitle, cell, label); err != nil {
			return fmt.Errorf("failed to write header %q: %w", label, err)
		}
	}
	return nil
}

// addData writes one row per result starting at row 2, binding the nine
// record fields to columns 1..9 in fixed order
func (e *Exporter) addData(f *excelize.File, results []ports.ResultRecord) error {
	for i, result := range results {
		row := i + 2 // row 1 holds the headers
		values := []string{
			result.StylistName(),
			result.CouponName(),
			result.Comment(),
			result.Title(),
			result.Sex(),
			result.Length(),
			result.Menu(),
			result.Hashtag(),
			result.ImageName(),
		}
		for idx, value := range values {
			cell, err := excelize.CoordinatesToCellName(idx+1, row)
			if err != nil {
				return fmt.Errorf("failed to resolve cell at row %d column %d: %w", row, idx+1, err)
			}
			if err := f.SetCellValue(SheetTitle, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d column %d: %w", row, idx+1, err)
			}
		}
	}
	return nil
}

// adjustColumnWidths sizes every populated column to its longest cell value,
// headers included
func (e *Exporter) adjustColumnWidths(f *excelize.File) error {
	rows, err := f.GetRows(SheetTitle)
	if err != nil {
		return fmt.Errorf("failed to scan sheet for column widths: %w", err)
	}

	maxLengths := make(map[int]int)
	for _, row := range rows {
		for idx, value := range row {
			if n := utf8.RuneCountInString(value); n > maxLengths[idx] {
				maxLengths[idx] = n
			}
		}
	}

	for idx, maxLength := range maxLengths {
		name, err := excelize.ColumnNumberToName(idx + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column name for index %d: %w", idx, err)
		}
		if err := f.SetColWidth(SheetTitle, name, name, columnWidth(maxLength)); err != nil {
			return fmt.Errorf("failed to set width for column %s: %w", name, err)
		}
	}
	return nil
}

// columnWidth pads the longest cell length and clamps it to the display range
func columnWidth(maxLength int) float64 {
	width := float64(maxLength+columnWidthPad) * columnWidthFactor
	if width < minColumnWidth {
		return minColumnWidth
	}
	if width > maxColumnWidth {
		return maxColumnWidth
	}
	return width
}

// applyStyles styles the header row and all data cells. Every cell in the
// configured column range gets thin borders; data rows (the hashtag column
// included) get middle-vertical alignment with text wrapping.
func (e *Exporter) applyStyles(f *excelize.File, resultCount int) error {
	thinBorder := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder,
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    thinBorder,
	})
	if err != nil {
		return fmt.Errorf("failed to create data style: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(e.config.Headers))
	if err != nil {
		return fmt.Errorf("failed to resolve last column name: %w", err)
	}

	if err := f.SetCellStyle(SheetTitle, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	if resultCount > 0 {
		endCell := fmt.Sprintf("%s%d", lastCol, resultCount+1)
		if err := f.SetCellStyle(SheetTitle, "A2", endCell, dataStyle); err != nil {
			return fmt.Errorf("failed to style data rows: %w", err)
		}
	}
	return nil
}

// createBackup copies the file at path to a timestamped sibling and returns
// the backup path
func (e *Exporter) createBackup(path string) (string, error) {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	timestamp := time.Now().Format("20060102_150405")
	backupPath := filepath.Join(filepath.Dir(path), fmt.Sprintf("%s_%s_backup%s", stem, timestamp, ext))

	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(backupPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return backupPath, nil
}
