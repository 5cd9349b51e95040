package credential

import (
	"aa-wizard-industry/database"
	"aa-wizard-industry/esi"
	"context"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
	"os"
	"sort"
	"time"
)

const (
	EnvClientId     = "EVE_CLIENT_ID"
	EnvClientSecret = "EVE_CLIENT_SECRET"
	EnvTokenUrl     = "EVE_TOKEN_URL"

	defaultTokenUrl = "https://login.eveonline.com/v2/oauth/token"
	expiryMargin    = time.Minute
)

var ErrNotFound = errors.New("no qualifying credential")

// Settings carries what is needed to open and refresh stored credentials.
type Settings struct {
	vault Vault
	oauth *oauth2.Config
	now   func() time.Time
}

func NewSettings(vault Vault, oauth *oauth2.Config) Settings {
	return Settings{vault: vault, oauth: oauth, now: time.Now}
}

func (s Settings) SetClock(now func() time.Time) Settings {
	s.now = now
	return s
}

func SettingsFromEnv() (Settings, error) {
	v, err := VaultFromEnv()
	if err != nil {
		return Settings{}, err
	}
	tokenUrl := defaultTokenUrl
	if val, ok := os.LookupEnv(EnvTokenUrl); ok {
		tokenUrl = val
	}
	return NewSettings(v, &oauth2.Config{
		ClientID:     os.Getenv(EnvClientId),
		ClientSecret: os.Getenv(EnvClientSecret),
		Endpoint:     oauth2.Endpoint{TokenURL: tokenUrl, AuthStyle: oauth2.AuthStyleInHeader},
	}), nil
}

func Create(l logrus.FieldLogger, db *gorm.DB, s Settings) func(characterId uint32, accessToken string, refreshToken string, expiry time.Time, scopes []string) (Model, error) {
	return func(characterId uint32, accessToken string, refreshToken string, expiry time.Time, scopes []string) (Model, error) {
		m, err := create(db, s.vault, characterId, accessToken, refreshToken, expiry, scopes)
		if err != nil {
			l.WithError(err).Errorf("Unable to store credential for character [%d].", characterId)
			return Model{}, err
		}
		l.Debugf("Stored credential [%d] for character [%d] with [%d] scopes.", m.Id(), characterId, len(scopes))
		return m, nil
	}
}

func Delete(l logrus.FieldLogger, db *gorm.DB) func(id uint32) error {
	return func(id uint32) error {
		err := remove(db, id)
		if err != nil {
			l.WithError(err).Errorf("Unable to delete credential [%d].", id)
		}
		return err
	}
}

func GetById(_ logrus.FieldLogger, db *gorm.DB, s Settings) func(id uint32) (Model, error) {
	return func(id uint32) (Model, error) {
		return database.ModelProvider[Model, entity](db)(getById(id), makeCredential(s.vault))()
	}
}

// GetForCharacters returns the credentials of the characters in ascending id order.
func GetForCharacters(_ logrus.FieldLogger, db *gorm.DB, s Settings) func(characterIds ...uint32) ([]Model, error) {
	return func(characterIds ...uint32) ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(getForCharacters(characterIds), makeCredential(s.vault))()
	}
}

// Refresh returns the credential unchanged while its access token is valid, otherwise exchanges the refresh token
// and stores the new pair.
func Refresh(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, s Settings) func(m Model) (Model, error) {
	return func(m Model) (Model, error) {
		if m.Valid(s.now(), expiryMargin) {
			return m, nil
		}
		t, err := s.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: m.refreshToken}).Token()
		if err != nil {
			l.WithError(err).Warnf("Unable to refresh credential [%d] of character [%d].", m.Id(), m.CharacterId())
			return Model{}, fmt.Errorf("refreshing credential %d: %w", m.Id(), err)
		}
		rt := t.RefreshToken
		if rt == "" {
			rt = m.refreshToken
		}
		err = updateTokens(db, s.vault, m.id, t.AccessToken, rt, t.Expiry)
		if err != nil {
			return Model{}, err
		}
		l.Debugf("Refreshed credential [%d] of character [%d].", m.Id(), m.CharacterId())
		return NewModel(m.id, m.characterId, t.AccessToken, rt, t.Expiry, m.scopes), nil
	}
}

// Query describes the credential a sync needs.
type Query struct {
	// PreferredCharacterId is searched before the other characters.
	PreferredCharacterId uint32
	CharacterIds         []uint32
	Scopes               []string
	// Role is an in-game corporation role the holder must have. Empty skips the role check.
	Role string
}

// Candidates orders the credentials of the query: those of the preferred character first, then by ascending id.
func Candidates(q Query, ms []Model) []Model {
	result := make([]Model, 0, len(ms))
	for _, m := range ms {
		if m.HasScopes(q.Scopes...) {
			result = append(result, m)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		pi := result[i].characterId == q.PreferredCharacterId
		pj := result[j].characterId == q.PreferredCharacterId
		if pi != pj {
			return pi
		}
		return result[i].id < result[j].id
	})
	return result
}

// Select walks the candidates in order and returns the first whose token refreshes and whose character holds the
// role. ErrNotFound means no candidate qualified.
func Select(l logrus.FieldLogger, ctx context.Context, db *gorm.DB, s Settings, c *esi.Client) func(q Query) (Model, error) {
	return func(q Query) (Model, error) {
		ids := q.CharacterIds
		if q.PreferredCharacterId != 0 {
			ids = append([]uint32{q.PreferredCharacterId}, ids...)
		}
		ms, err := GetForCharacters(l, db, s)(ids...)
		if err != nil {
			return Model{}, err
		}
		for _, m := range Candidates(q, ms) {
			m, err = Refresh(l, ctx, db, s)(m)
			if err != nil {
				continue
			}
			if q.Role == "" {
				return m, nil
			}
			roles, err := c.CharacterRoles(ctx, m.AccessToken(), m.CharacterId())
			if err != nil {
				l.WithError(err).Debugf("Unable to read roles of character [%d].", m.CharacterId())
				continue
			}
			if roles.Has(q.Role) {
				return m, nil
			}
			l.Debugf("Character [%d] lacks role [%s].", m.CharacterId(), q.Role)
		}
		return Model{}, ErrNotFound
	}
}
