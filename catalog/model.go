package catalog

import "sync"

// Blueprint is one buildable blueprint of the catalog.
type Blueprint struct {
	typeId   uint32
	name     string
	baseCost float64
	owned    bool
}

func NewBlueprint(typeId uint32, name string, baseCost float64, owned bool) Blueprint {
	return Blueprint{typeId: typeId, name: name, baseCost: baseCost, owned: owned}
}

func (b Blueprint) TypeId() uint32 {
	return b.typeId
}

func (b Blueprint) Name() string {
	return b.name
}

func (b Blueprint) BaseCost() float64 {
	return b.baseCost
}

func (b Blueprint) Owned() bool {
	return b.owned
}

// Group is a market group node. Its aggregates are computed on first use and kept for the life of the node, so a
// group must not be changed once read.
type Group struct {
	id          uint32
	name        string
	description string
	blueprints  []Blueprint
	children    []*Group

	once  sync.Once
	total int
	owned int
	cost  float64
}

func NewGroup(id uint32, name string, description string, blueprints []Blueprint, children []*Group) *Group {
	return &Group{id: id, name: name, description: description, blueprints: blueprints, children: children}
}

func (g *Group) Id() uint32 {
	return g.id
}

func (g *Group) Name() string {
	return g.name
}

func (g *Group) Description() string {
	return g.description
}

func (g *Group) Blueprints() []Blueprint {
	return g.blueprints
}

func (g *Group) Children() []*Group {
	return g.children
}

func (g *Group) aggregate() {
	g.once.Do(func() {
		g.total = len(g.blueprints)
		for _, b := range g.blueprints {
			if b.owned {
				g.owned++
			} else {
				g.cost += b.baseCost
			}
		}
		for _, c := range g.children {
			g.total += c.Total()
			g.owned += c.Owned()
			g.cost += c.Cost()
		}
	})
}

// Total counts the blueprints of the group and its descendants.
func (g *Group) Total() int {
	g.aggregate()
	return g.total
}

// Owned counts the owned blueprints of the group and its descendants.
func (g *Group) Owned() int {
	g.aggregate()
	return g.owned
}

// Cost is the summed base cost of the blueprints not yet owned, i.e. the cost to complete the group.
func (g *Group) Cost() float64 {
	g.aggregate()
	return g.cost
}

type Model struct {
	groups []*Group
}

func NewModel(groups []*Group) Model {
	return Model{groups: groups}
}

func (m Model) Groups() []*Group {
	return m.groups
}

func (m Model) AllTotal() int {
	total := 0
	for _, g := range m.groups {
		total += g.Total()
	}
	return total
}

func (m Model) AllOwned() int {
	owned := 0
	for _, g := range m.groups {
		owned += g.Owned()
	}
	return owned
}

func (m Model) AllCosts() float64 {
	cost := 0.0
	for _, g := range m.groups {
		cost += g.Cost()
	}
	return cost
}
