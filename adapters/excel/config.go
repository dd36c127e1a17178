package excel

import (
	"fmt"

	"stylebook/internal/errors"
)

// SheetTitle is the fixed name of the single output sheet
const SheetTitle = "スタイルタイトル"

// Column positions of the nine result fields (1-indexed)
const (
	ColStylist = 1
	ColCoupon  = 2
	ColComment = 3
	ColTitle   = 4
	ColSex     = 5
	ColLength  = 6
	ColMenu    = 7
	ColHashtag = 8
	ColImage   = 9

	// ColumnCount is fixed: the row writer binds the nine record fields to
	// columns 1..9 positionally, independent of the header labels.
	ColumnCount = 9
)

// ExportConfig maps 1-indexed column positions to header labels
type ExportConfig struct {
	Headers map[int]string `json:"headers"`
}

// DefaultExportConfig returns the standard nine-column header set
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Headers: map[int]string{
			ColStylist: "スタイリスト",
			ColCoupon:  "クーポン",
			ColComment: "コメント",
			ColTitle:   "スタイル",
			ColSex:     "性別",
			ColLength:  "長さ",
			ColMenu:    "メニュー",
			ColHashtag: "ハッシュタグ",
			ColImage:   "画像",
		},
	}
}

// Validate checks the header mapping against the fixed nine-column contract
func (c ExportConfig) Validate() error {
	if len(c.Headers) == 0 {
		return errors.InvalidInput("export config has no header columns")
	}
	if len(c.Headers) != ColumnCount {
		return errors.InvalidInput(fmt.Sprintf("export config must have exactly %d header columns, got %d", ColumnCount, len(c.Headers)))
	}
	for col := 1; col <= ColumnCount; col++ {
		if _, ok := c.Headers[col]; !ok {
			return errors.InvalidInput(fmt.Sprintf("export config is missing a header for column %d", col))
		}
	}
	return nil
}
