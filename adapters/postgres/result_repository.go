package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"stylebook/models"
	"stylebook/ports"
)

// resultRepository implements the ResultSource interface over Postgres
type resultRepository struct {
	db *sqlx.DB
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *sqlx.DB) ports.ResultSource {
	return &resultRepository{db: db}
}

// ListResults retrieves all analysis results ordered by creation time
func (r *resultRepository) ListResults(ctx context.Context) ([]ports.ResultRecord, error) {
	query := `SELECT
		COALESCE(stylist_name, '') as stylist_name,
		COALESCE(coupon_name, '') as coupon_name,
		COALESCE(comment, '') as comment,
		COALESCE(title, '') as title,
		COALESCE(sex, '') as sex,
		COALESCE(length, '') as length,
		COALESCE(menu, '') as menu,
		COALESCE(hashtag, '') as hashtag,
		COALESCE(image_name, '') as image_name
	FROM process_results ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query process results: %w", err)
	}
	defer rows.Close()

	var records []ports.ResultRecord
	for rows.Next() {
		var stylist, coupon, comment, title, sex, length, menu, hashtag, image string
		if err := rows.Scan(&stylist, &coupon, &comment, &title, &sex, &length, &menu, &hashtag, &image); err != nil {
			return nil, fmt.Errorf("failed to scan process result: %w", err)
		}
		records = append(records, &models.ProcessResult{
			Stylist: models.Stylist{Name: stylist},
			Coupon:  models.Coupon{Name: coupon},
			Template: models.StyleTemplate{
				Comment: comment,
				Title:   title,
				Menu:    menu,
				Hashtag: hashtag,
			},
			Attributes: models.AttributeAnalysis{
				Sex:    sex,
				Length: length,
			},
			Image: image,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate process results: %w", err)
	}

	return records, nil
}
