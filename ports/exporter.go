package ports

// ResultExporter renders analysis results into a styled single-sheet workbook
type ResultExporter interface {
	// ExportToFile writes the workbook to outputPath and returns the path.
	// An existing file at outputPath is backed up before being overwritten.
	ExportToFile(results []ResultRecord, outputPath string) (string, error)

	// ExportToBytes returns the serialized workbook without leaving any
	// file behind.
	ExportToBytes(results []ResultRecord) ([]byte, error)
}
