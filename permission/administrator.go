package permission

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func grant(db *gorm.DB, userId uint32, name string) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entity{UserId: userId, Name: name}).Error
}

func replace(db *gorm.DB, userId uint32, names []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", userId).Delete(&entity{}).Error
		if err != nil {
			return err
		}
		for _, n := range names {
			if err = grant(tx, userId, n); err != nil {
				return err
			}
		}
		return nil
	})
}
