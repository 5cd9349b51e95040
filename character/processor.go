package character

import (
	"aa-wizard-industry/database"
	"errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("character not found")

func GetById(_ logrus.FieldLogger, db *gorm.DB) func(characterId uint32) (Model, error) {
	return func(characterId uint32) (Model, error) {
		m, err := database.ModelProvider[Model, entity](db)(getById(characterId), makeCharacter)()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Model{}, ErrNotFound
		}
		return m, err
	}
}

func GetForUser(_ logrus.FieldLogger, db *gorm.DB) func(userId uint32) ([]Model, error) {
	return func(userId uint32) ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(getForUser(userId), makeCharacter)()
	}
}

// GetForCorporation returns the linked characters of the corporation in ascending id order.
func GetForCorporation(_ logrus.FieldLogger, db *gorm.DB) func(corporationId uint32) ([]Model, error) {
	return func(corporationId uint32) ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(getForCorporation(corporationId), makeCharacter)()
	}
}

// Link records the character as one of the user's characters, moving it when another user held it.
func Link(l logrus.FieldLogger, db *gorm.DB) func(characterId uint32, name string, corporationId uint32, userId uint32) (Model, error) {
	return func(characterId uint32, name string, corporationId uint32, userId uint32) (Model, error) {
		m, err := upsert(db, NewModel(characterId, name, corporationId, userId))
		if err != nil {
			l.WithError(err).Errorf("Unable to link character [%d] to user [%d].", characterId, userId)
			return Model{}, err
		}
		l.Debugf("Linked character [%d] [%s] of corporation [%d] to user [%d].", characterId, name, corporationId, userId)
		return m, nil
	}
}

func Unlink(l logrus.FieldLogger, db *gorm.DB) func(characterId uint32) error {
	return func(characterId uint32) error {
		err := remove(db, characterId)
		if err != nil {
			l.WithError(err).Errorf("Unable to unlink character [%d].", characterId)
		}
		return err
	}
}
