package owner

import (
	"gorm.io/gorm"
)

// bind returns the owner for the binding, creating it when missing.
func bind(db *gorm.DB, kind Kind, userId uint32, characterId uint32, corporationId uint32) (Model, error) {
	var e entity
	where := map[string]interface{}{"kind": string(kind), "user_id": userId, "character_id": characterId, "corporation_id": corporationId}
	err := db.Where(where).
		Attrs(&entity{Kind: string(kind), UserId: userId, CharacterId: characterId, CorporationId: corporationId}).
		FirstOrCreate(&e).Error
	if err != nil {
		return Model{}, err
	}
	return makeOwner(e)
}

func updateAssetsETag(db *gorm.DB, id uint32, etag string) error {
	return db.Model(&entity{ID: id}).Update("assets_etag", etag).Error
}
