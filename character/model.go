package character

// Model is an in-game character linked to a host platform user as their main or alt.
type Model struct {
	id            uint32
	name          string
	corporationId uint32
	userId        uint32
}

func NewModel(id uint32, name string, corporationId uint32, userId uint32) Model {
	return Model{id: id, name: name, corporationId: corporationId, userId: userId}
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) Name() string {
	return m.name
}

func (m Model) CorporationId() uint32 {
	return m.corporationId
}

func (m Model) UserId() uint32 {
	return m.userId
}
