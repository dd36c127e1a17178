package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"stylebook/models"
	"stylebook/ports"
)

// ResultReader loads previously exported result sheets from Excel or CSV files
type ResultReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewResultReader creates a reader for an exported result sheet
func NewResultReader(filePath string) *ResultReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &ResultReader{filePath: filePath, fileType: fileType}
}

// ReadSheet reads the file into header-keyed rows
func (r *ResultReader) ReadSheet() (*SheetData, error) {
	log.Printf("[ResultReader] Reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("result file not found: %s", r.filePath)
	}

	var (
		rows [][]string
		err  error
	)
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readSheetRows()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("result file must have a header row and at least one data row")
	}

	return r.processRows(rows), nil
}

// ReadResults reads the file and rebuilds the analysis results from its rows.
// Column-to-field binding is positional, matching the export layout.
func (r *ResultReader) ReadResults() ([]ports.ResultRecord, error) {
	data, err := r.ReadSheet()
	if err != nil {
		return nil, err
	}

	records := make([]ports.ResultRecord, 0, len(data.Rows))
	for _, row := range data.Rows {
		cells := make([]string, ColumnCount)
		for i := 0; i < ColumnCount && i < len(data.Headers); i++ {
			cells[i] = row[data.Headers[i]]
		}
		records = append(records, &models.ProcessResult{
			Stylist: models.Stylist{Name: cells[ColStylist-1]},
			Coupon:  models.Coupon{Name: cells[ColCoupon-1]},
			Template: models.StyleTemplate{
				Comment: cells[ColComment-1],
				Title:   cells[ColTitle-1],
				Menu:    cells[ColMenu-1],
				Hashtag: cells[ColHashtag-1],
			},
			Attributes: models.AttributeAnalysis{
				Sex:    cells[ColSex-1],
				Length: cells[ColLength-1],
			},
			Image: cells[ColImage-1],
		})
	}

	log.Printf("[ResultReader] Rebuilt %d results from %s", len(records), r.filePath)
	return records, nil
}

// readSheetRows reads all rows from the first sheet of an xlsx file
func (r *ResultReader) readSheetRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return rows, nil
}

// readCSVRows reads all rows from a CSV file
func (r *ResultReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

// processRows converts raw string rows into SheetData
func (r *ResultReader) processRows(rows [][]string) *SheetData {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	var dataRows []RawRowData
	for i := 1; i < len(rows); i++ {
		rowData := make(RawRowData)
		for j, cell := range rows[i] {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	log.Printf("[ResultReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &SheetData{
		Headers: headers,
		Rows:    dataRows,
	}
}
