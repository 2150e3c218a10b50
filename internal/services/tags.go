package services

import (
	"github.com/pixperk/pocketmind-server/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertTags idempotently ensures a Tag row exists for every name before the
// owning entity is written. Must run inside the same transaction as that
// write so partial tag creation is never observable on its own. Concurrent
// upserts of the same name are serialized by the unique primary key.
func upsertTags(tx *gorm.DB, names []string) ([]models.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}

	rows := make([]models.Tag, 0, len(names))
	for _, name := range names {
		rows = append(rows, models.Tag{Name: name, Color: models.DefaultTagColor})
	}

	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return nil, err
	}

	var tags []models.Tag
	if err := tx.Where("name IN ?", names).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
