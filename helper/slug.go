package helper

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueSlug slugifies name and appends -1, -2... until no other row
// of the model's table uses it. excludeID skips the row being renamed.
func GenerateUniqueSlug(tx *gorm.DB, m any, name string, excludeID uint) string {
	base := slug.Make(name)
	if base == "" {
		base = "item"
	}
	result := base
	i := 1

	for {
		var count int64
		q := tx.Model(m).Where("slug = ?", result)
		if excludeID != 0 {
			q = q.Where("id <> ?", excludeID)
		}
		q.Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
