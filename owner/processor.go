package owner

import (
	"aa-wizard-industry/character"
	"aa-wizard-industry/credential"
	"aa-wizard-industry/database"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"strconv"
)

var (
	ErrNotOwned      = errors.New("character not owned")
	ErrMissingScopes = errors.New("character has no credential with the required scopes")
)

var CharacterSetupScopes = []string{
	credential.ScopeCharacterBlueprints,
	credential.ScopeCharacterAssets,
	credential.ScopeCharacterContracts,
	credential.ScopeCharacterJobs,
	credential.ScopeCharacterOrders,
}

var CorporationSetupScopes = []string{
	credential.ScopeCorporationBlueprint,
	credential.ScopeCorporationAssets,
	credential.ScopeCorporationContracts,
	credential.ScopeCorporationJobs,
	credential.ScopeCorporationOrders,
	credential.ScopeCharacterRoles,
}

// NotOwnedError tells the acting user which character they tried to use.
type NotOwnedError struct {
	Name string
}

func (e NotOwnedError) Error() string {
	return fmt.Sprintf("You can only use your main or alt characters to add corporations. However, character %s is neither.", e.Name)
}

func (e NotOwnedError) Unwrap() error {
	return ErrNotOwned
}

func GetById(_ logrus.FieldLogger, db *gorm.DB) func(id uint32) (Model, error) {
	return func(id uint32) (Model, error) {
		return database.ModelProvider[Model, entity](db)(getById(id), makeOwner)()
	}
}

func GetAll(_ logrus.FieldLogger, db *gorm.DB) ([]Model, error) {
	return database.ModelSliceProvider[Model, entity](db)(getAll(), makeOwner)()
}

func GetForUser(_ logrus.FieldLogger, db *gorm.DB) func(userId uint32) ([]Model, error) {
	return func(userId uint32) ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(getForUser(userId), makeOwner)()
	}
}

func GetForCorporation(_ logrus.FieldLogger, db *gorm.DB) func(corporationId uint32) ([]Model, error) {
	return func(corporationId uint32) ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(getForCorporation(corporationId), makeOwner)()
	}
}

func UpdateAssetsETag(l logrus.FieldLogger, db *gorm.DB) func(id uint32, etag string) error {
	return func(id uint32, etag string) error {
		err := updateAssetsETag(db, id, etag)
		if err != nil {
			l.WithError(err).Errorf("Unable to store assets etag of owner [%d].", id)
		}
		return err
	}
}

func SetupCharacter(l logrus.FieldLogger, db *gorm.DB, s credential.Settings) func(userId uint32, characterId uint32) (Model, error) {
	return setup(l, db, s, KindCharacter, CharacterSetupScopes)
}

func SetupCorporation(l logrus.FieldLogger, db *gorm.DB, s credential.Settings) func(userId uint32, characterId uint32) (Model, error) {
	return setup(l, db, s, KindCorporation, CorporationSetupScopes)
}

func setup(l logrus.FieldLogger, db *gorm.DB, s credential.Settings, kind Kind, scopes []string) func(userId uint32, characterId uint32) (Model, error) {
	return func(userId uint32, characterId uint32) (Model, error) {
		c, err := character.GetById(l, db)(characterId)
		if errors.Is(err, character.ErrNotFound) {
			return Model{}, NotOwnedError{Name: strconv.Itoa(int(characterId))}
		}
		if err != nil {
			return Model{}, err
		}
		if c.UserId() != userId {
			l.Infof("User [%d] attempted to set up [%s] with character [%d] of another user.", userId, kind, characterId)
			return Model{}, NotOwnedError{Name: c.Name()}
		}

		cs, err := credential.GetForCharacters(l, db, s)(characterId)
		if err != nil {
			return Model{}, err
		}
		if len(credential.Candidates(credential.Query{Scopes: scopes}, cs)) == 0 {
			return Model{}, ErrMissingScopes
		}

		var m Model
		err = db.Transaction(func(tx *gorm.DB) error {
			var err error
			m, err = bind(tx, kind, userId, characterId, c.CorporationId())
			return err
		})
		if err != nil {
			l.WithError(err).Errorf("Unable to set up [%s] owner for character [%d].", kind, characterId)
			return Model{}, err
		}
		l.Infof("Owner [%d] [%s] set up for user [%d] with character [%d] of corporation [%d].", m.Id(), kind, userId, characterId, c.CorporationId())
		return m, nil
	}
}
