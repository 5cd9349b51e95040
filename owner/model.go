package owner

import "fmt"

type Kind string

const (
	KindCharacter   Kind = "CHARACTER"
	KindCorporation Kind = "CORPORATION"
)

func (k Kind) Valid() bool {
	return k == KindCharacter || k == KindCorporation
}

// Scope names whose data a row belongs to: a character id for KindCharacter, a corporation id for KindCorporation.
type Scope struct {
	Kind Kind
	Id   uint32
}

func (s Scope) String() string {
	return fmt.Sprintf("%s:%d", s.Kind, s.Id)
}

type Model struct {
	id            uint32
	kind          Kind
	userId        uint32
	characterId   uint32
	corporationId uint32
	assetsETag    string
}

func NewModel(id uint32, kind Kind, userId uint32, characterId uint32, corporationId uint32, assetsETag string) Model {
	return Model{id: id, kind: kind, userId: userId, characterId: characterId, corporationId: corporationId, assetsETag: assetsETag}
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) Kind() Kind {
	return m.kind
}

func (m Model) UserId() uint32 {
	return m.userId
}

// CharacterId is the character whose credentials are tried first.
func (m Model) CharacterId() uint32 {
	return m.characterId
}

func (m Model) CorporationId() uint32 {
	return m.corporationId
}

func (m Model) AssetsETag() string {
	return m.assetsETag
}

func (m Model) Corporation() bool {
	return m.kind == KindCorporation
}

func (m Model) Scope() Scope {
	if m.kind == KindCorporation {
		return Scope{Kind: KindCorporation, Id: m.corporationId}
	}
	return Scope{Kind: KindCharacter, Id: m.characterId}
}
