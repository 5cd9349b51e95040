package permission

import (
	"aa-wizard-industry/database"
	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

func getForUser(userId uint32) database.EntityProvider[[]entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		var results []entity
		err := db.Where("user_id = ?", userId).Order("name").Find(&results).Error
		if err != nil {
			return model.ErrorProvider[[]entity](err)
		}
		return model.FixedProvider(results)
	}
}

func countForUser(db *gorm.DB, userId uint32, name string) (int64, error) {
	var count int64
	err := db.Model(&entity{}).Where("user_id = ? AND name = ?", userId, name).Count(&count).Error
	return count, err
}

func makePermission(e entity) (Model, error) {
	return Model{userId: e.UserId, name: e.Name}, nil
}
