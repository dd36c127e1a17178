package ports

import "context"

// ResultRecord exposes the nine fields of one analysis result, in the order
// they are rendered into a spreadsheet row. Producers implement this instead
// of the exporter reaching into their internals.
type ResultRecord interface {
	StylistName() string
	CouponName() string
	Comment() string
	Title() string
	Sex() string
	Length() string
	Menu() string
	Hashtag() string
	ImageName() string
}

// ResultSource defines the interface for loading analysis results
type ResultSource interface {
	ListResults(ctx context.Context) ([]ResultRecord, error)
}
