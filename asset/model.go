package asset

import "aa-wizard-industry/owner"

type Model struct {
	id            uint64
	scope         owner.Scope
	itemId        int64
	typeId        uint32
	quantity      int32
	locationId    int64
	locationFlag  string
	singleton     bool
	blueprintCopy bool
	name          string
	locationRef   int64
	systemRef     uint32
}

func (m Model) Id() uint64 {
	return m.id
}

func (m Model) Scope() owner.Scope {
	return m.scope
}

func (m Model) ItemId() int64 {
	return m.itemId
}

func (m Model) TypeId() uint32 {
	return m.typeId
}

func (m Model) Quantity() int32 {
	return m.quantity
}

// LocationId is the raw location reported by ESI. It may be another item's id.
func (m Model) LocationId() int64 {
	return m.locationId
}

func (m Model) LocationFlag() string {
	return m.locationFlag
}

func (m Model) Singleton() bool {
	return m.singleton
}

func (m Model) BlueprintCopy() bool {
	return m.blueprintCopy
}

func (m Model) Name() string {
	return m.name
}

// LocationRef is the stored location the asset sits in, zero when unresolved.
func (m Model) LocationRef() int64 {
	return m.locationRef
}

func (m Model) SystemRef() uint32 {
	return m.systemRef
}

type builder struct {
	m Model
}

func newBuilder(scope owner.Scope, itemId int64, typeId uint32) *builder {
	return &builder{m: Model{scope: scope, itemId: itemId, typeId: typeId}}
}

func (b *builder) SetQuantity(q int32) *builder {
	b.m.quantity = q
	return b
}

func (b *builder) SetLocation(id int64, flag string) *builder {
	b.m.locationId = id
	b.m.locationFlag = flag
	return b
}

func (b *builder) SetSingleton(singleton bool, blueprintCopy bool) *builder {
	b.m.singleton = singleton
	b.m.blueprintCopy = blueprintCopy
	return b
}

func (b *builder) SetRefs(locationRef int64, systemRef uint32) *builder {
	b.m.locationRef = locationRef
	b.m.systemRef = systemRef
	return b
}

func (b *builder) Build() Model {
	return b.m
}
