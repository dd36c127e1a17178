package testkit

import (
	"fmt"

	"stylebook/models"
	"stylebook/ports"
)

// SampleResults returns deterministic analysis results for tests
func SampleResults(count int) []ports.ResultRecord {
	sexes := []string{"レディース", "メンズ"}
	lengths := []string{"ショート", "ミディアム", "ロング"}

	results := make([]ports.ResultRecord, 0, count)
	for i := 0; i < count; i++ {
		n := i + 1
		results = append(results, &models.ProcessResult{
			Stylist: models.Stylist{Name: fmt.Sprintf("スタイリスト%d", n)},
			Coupon:  models.Coupon{Name: fmt.Sprintf("カットクーポン%d", n)},
			Template: models.StyleTemplate{
				Comment: fmt.Sprintf("柔らかい質感のスタイル %d", n),
				Title:   fmt.Sprintf("ナチュラルボブ%d", n),
				Menu:    "カット+カラー",
				Hashtag: "#ボブ #ナチュラル",
			},
			Attributes: models.AttributeAnalysis{
				Sex:    sexes[i%len(sexes)],
				Length: lengths[i%len(lengths)],
			},
			Image: fmt.Sprintf("style_%03d.jpg", n),
		})
	}
	return results
}
