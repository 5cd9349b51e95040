package credential

import (
	"strings"
	"time"
)

const (
	ScopeCharacterAssets      = "esi-assets.read_assets.v1"
	ScopeCorporationAssets    = "esi-assets.read_corporation_assets.v1"
	ScopeCharacterJobs        = "esi-industry.read_character_jobs.v1"
	ScopeCorporationJobs      = "esi-industry.read_corporation_jobs.v1"
	ScopeCharacterBlueprints  = "esi-characters.read_blueprints.v1"
	ScopeCorporationBlueprint = "esi-corporations.read_blueprints.v1"
	ScopeCharacterContracts   = "esi-contracts.read_character_contracts.v1"
	ScopeCorporationContracts = "esi-contracts.read_corporation_contracts.v1"
	ScopeCharacterOrders      = "esi-markets.read_character_orders.v1"
	ScopeCorporationOrders    = "esi-markets.read_corporation_orders.v1"
	ScopeCharacterRoles       = "esi-characters.read_corporation_roles.v1"

	RoleDirector       = "Director"
	RoleFactoryManager = "Factory_Manager"
)

// Model is a delegated ESI token of one character. The refresh token is held in the clear only in memory.
type Model struct {
	id           uint32
	characterId  uint32
	accessToken  string
	refreshToken string
	expiry       time.Time
	scopes       []string
}

func NewModel(id uint32, characterId uint32, accessToken string, refreshToken string, expiry time.Time, scopes []string) Model {
	return Model{id: id, characterId: characterId, accessToken: accessToken, refreshToken: refreshToken, expiry: expiry, scopes: scopes}
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) CharacterId() uint32 {
	return m.characterId
}

func (m Model) AccessToken() string {
	return m.accessToken
}

func (m Model) Expiry() time.Time {
	return m.expiry
}

func (m Model) Scopes() []string {
	return m.scopes
}

func (m Model) HasScopes(scopes ...string) bool {
	for _, s := range scopes {
		found := false
		for _, h := range m.scopes {
			if h == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Valid reports whether the access token outlives now by the given margin.
func (m Model) Valid(now time.Time, margin time.Duration) bool {
	return m.accessToken != "" && m.expiry.After(now.Add(margin))
}

func joinScopes(scopes []string) string {
	return strings.Join(scopes, " ")
}

func splitScopes(scopes string) []string {
	return strings.Fields(scopes)
}
