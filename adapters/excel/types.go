package excel

// RawRowData represents one sheet row as header-keyed string values
type RawRowData map[string]string

// SheetData represents a parsed result sheet
type SheetData struct {
	Headers []string     // Column headers from row 1
	Rows    []RawRowData // Data rows
}
