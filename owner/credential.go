package owner

import (
	"aa-wizard-industry/character"
	"aa-wizard-industry/credential"
	"aa-wizard-industry/esi"
	"context"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Requirement is what a sync needs from the credential it acts with.
type Requirement struct {
	CharacterScopes   []string
	CorporationScopes []string
	// CorporationRole is checked only for corporation owners.
	CorporationRole string
}

// Credential picks the credential a sync of the owner acts with. A character owner uses its own character. A
// corporation owner searches its own character first, then the other linked characters of the corporation, and
// takes the first that holds the scopes and the role. credential.ErrNotFound means no candidate qualified.
func Credential(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, s credential.Settings, c *esi.Client) func(o Model, r Requirement) (credential.Model, error) {
	return func(o Model, r Requirement) (credential.Model, error) {
		if !o.Corporation() {
			return credential.Select(l, ctx, db, s, c)(credential.Query{
				PreferredCharacterId: o.CharacterId(),
				Scopes:               r.CharacterScopes,
			})
		}

		cs, err := character.GetForCorporation(l, db)(o.CorporationId())
		if err != nil {
			return credential.Model{}, err
		}
		ids := make([]uint32, 0, len(cs))
		for _, ch := range cs {
			ids = append(ids, ch.Id())
		}
		return credential.Select(l, ctx, db, s, c)(credential.Query{
			PreferredCharacterId: o.CharacterId(),
			CharacterIds:         ids,
			Scopes:               r.CorporationScopes,
			Role:                 r.CorporationRole,
		})
	}
}
