package credential

import (
	"gorm.io/gorm"
	"time"
)

func create(db *gorm.DB, v Vault, characterId uint32, accessToken string, refreshToken string, expiry time.Time, scopes []string) (Model, error) {
	sealed, err := v.Seal(refreshToken)
	if err != nil {
		return Model{}, err
	}
	e := &entity{
		CharacterId:  characterId,
		AccessToken:  accessToken,
		RefreshToken: sealed,
		Expiry:       expiry,
		Scopes:       joinScopes(scopes),
	}
	err = db.Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return NewModel(e.ID, characterId, accessToken, refreshToken, expiry, scopes), nil
}

func updateTokens(db *gorm.DB, v Vault, id uint32, accessToken string, refreshToken string, expiry time.Time) error {
	sealed, err := v.Seal(refreshToken)
	if err != nil {
		return err
	}
	return db.Model(&entity{ID: id}).Select("AccessToken", "RefreshToken", "Expiry").Updates(&entity{AccessToken: accessToken, RefreshToken: sealed, Expiry: expiry}).Error
}

func remove(db *gorm.DB, id uint32) error {
	return db.Where(&entity{ID: id}).Delete(&entity{}).Error
}
